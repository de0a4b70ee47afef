package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"

	"garden-api/domain"
)

const maxResponseSize = 64 * 1024

// Client fetches current weather for a city from the upstream service.
// The response is decoded straight into domain.WeatherData; the dashboard
// neither validates nor transforms the payload.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a weather client for the given upstream URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// GetCurrentWeather fetches the live payload for the given city.
func (c *Client) GetCurrentWeather(ctx context.Context, city string) (domain.WeatherData, error) {
	u := c.baseURL + "?city=" + url.QueryEscape(city)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.WeatherData{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.WeatherData{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.WeatherData{}, fmt.Errorf("weather upstream status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return domain.WeatherData{}, err
	}

	var data domain.WeatherData
	if err := sonic.Unmarshal(body, &data); err != nil {
		return domain.WeatherData{}, err
	}
	return data, nil
}
