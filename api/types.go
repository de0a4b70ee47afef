package api

import (
	"context"

	"garden-api/domain"
)

// Zones abstracts the zone store for handlers.
type Zones interface {
	Zones() []domain.Zone
	Create(ctx context.Context, in domain.CreateZoneInput) (domain.Zone, error)
}

// Checklist abstracts quest completion state for handlers.
type Checklist interface {
	Snapshot() domain.Checklist
	Toggle(ctx context.Context, index int) (domain.Checklist, error)
}

// InvalidQuestIndexError is returned when a toggle addresses an index
// outside the static quest list.
type InvalidQuestIndexError interface {
	error
	InvalidQuestIndex()
}

// WeatherSource serves the most recently fetched weather payload, live or
// fallback. It never fails.
type WeatherSource interface {
	Current() domain.WeatherData
}

// Identifier forwards a photo to the plant-identification collaborator.
type Identifier interface {
	Identify(ctx context.Context, imageBase64 string) ([]domain.Suggestion, error)
}

// Deduper prevents reprocessing of retried create requests.
type Deduper interface {
	// Add records the idempotency key and returns true if it was newly added.
	Add(ctx context.Context, key string) (bool, error)
	// Remove deletes a previously added key, used when the create fails.
	Remove(ctx context.Context, key string) error
}
