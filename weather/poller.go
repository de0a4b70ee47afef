package weather

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"garden-api/domain"
)

const (
	defaultInterval = 30 * time.Minute
	fetchTimeout    = 30 * time.Second
)

// Source is anything that can fetch live weather for a city.
type Source interface {
	GetCurrentWeather(ctx context.Context, city string) (domain.WeatherData, error)
}

// Poller refreshes the weather on a fixed interval and publishes the most
// recent result. A failed fetch substitutes the static fallback; the
// poller never affects any other state and is independent of the stores.
type Poller struct {
	source   Source
	city     string
	interval time.Duration
	logger   *log.Logger

	mu      sync.RWMutex
	current domain.WeatherData

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPoller creates a poller serving the fallback payload until the first
// refresh completes.
func NewPoller(source Source, city string, interval time.Duration, logger *log.Logger) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Poller{
		source:   source,
		city:     city,
		interval: interval,
		logger:   logger,
		current:  domain.FallbackWeather(),
		stopCh:   make(chan struct{}),
	}
}

// Start performs an immediate refresh and then polls on the interval
// until Stop is called.
func (p *Poller) Start() {
	p.refresh()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-p.stopCh:
				return
			case <-ticker.C:
				p.refresh()
			}
		}
	}()
}

// Stop cancels the refresh timer and waits for the loop to exit.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

// Current returns the most recently published payload.
func (p *Poller) Current() domain.WeatherData {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

func (p *Poller) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	data, err := p.source.GetCurrentWeather(ctx, p.city)
	if err != nil {
		p.logger.WithFields(log.Fields{"city": p.city, "error": err.Error()}).Warn("weather refresh failed, serving fallback")
		data = domain.FallbackWeather()
	}

	p.mu.Lock()
	p.current = data
	p.mu.Unlock()
}
