package api

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "garden-api/api"

type zoneRequestMetrics struct {
	logger         *log.Logger
	span           trace.Span
	start          time.Time
	filterDuration time.Duration
	encodeDuration time.Duration
	areaFilter     string
	queryProvided  bool
	zonesReturned  int
	errorStage     string
}

func newZoneRequestMetrics(ctx context.Context, logger *log.Logger) (*zoneRequestMetrics, context.Context) {
	spanCtx, span := otel.Tracer(tracerName).Start(ctx, "zones.list")
	return &zoneRequestMetrics{
		logger: logger,
		span:   span,
		start:  time.Now(),
	}, spanCtx
}

func (m *zoneRequestMetrics) ObserveFilter(duration time.Duration) {
	if duration <= 0 {
		return
	}
	m.filterDuration = duration
}

func (m *zoneRequestMetrics) ObserveEncode(duration time.Duration) {
	if duration <= 0 {
		return
	}
	m.encodeDuration = duration
}

func (m *zoneRequestMetrics) SetFilter(area string, queryProvided bool) {
	m.areaFilter = area
	m.queryProvided = queryProvided
}

func (m *zoneRequestMetrics) SetZonesReturned(count int) {
	if count < 0 {
		count = 0
	}
	m.zonesReturned = count
}

func (m *zoneRequestMetrics) SetErrorStage(stage string) {
	if stage == "" {
		return
	}
	m.errorStage = stage
}

func (m *zoneRequestMetrics) Log(status int, err error) {
	if m == nil {
		return
	}

	if m.span != nil {
		m.span.SetAttributes(
			attribute.Int("http.status_code", status),
			attribute.String("zones.area_filter", m.areaFilter),
			attribute.Bool("zones.query_provided", m.queryProvided),
			attribute.Int("zones.returned", m.zonesReturned),
		)
		if m.errorStage != "" {
			m.span.SetAttributes(attribute.String("zones.error_stage", m.errorStage))
		}
		if err != nil {
			m.span.SetStatus(codes.Error, err.Error())
		}
		m.span.End()
	}

	if m.logger == nil {
		return
	}

	fields := log.Fields{
		"route":          "/api/zones",
		"status":         status,
		"total_ms":       durationToMillis(time.Since(m.start)),
		"area_filter":    m.areaFilter,
		"query_provided": m.queryProvided,
		"zones_returned": m.zonesReturned,
	}
	if m.filterDuration > 0 {
		fields["filter_ms"] = durationToMillis(m.filterDuration)
	}
	if m.encodeDuration > 0 {
		fields["encode_ms"] = durationToMillis(m.encodeDuration)
	}
	if m.errorStage != "" {
		fields["error_stage"] = m.errorStage
	}
	if err != nil {
		fields["error"] = err.Error()
	}

	m.logger.WithFields(fields).Info("zones.request.metrics")
}

func durationToMillis(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(d) / float64(time.Millisecond)
}
