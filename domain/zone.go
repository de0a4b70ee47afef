package domain

import (
	"errors"

	"github.com/bytedance/sonic"
)

// Area is one of the fixed yard areas a zone can belong to.
type Area string

const (
	AreaFrontYard Area = "Front Yard"
	AreaBackYard  Area = "Back Yard"
	AreaSideYard  Area = "Side Yard"
	AreaSouthSide Area = "South Side"
	AreaYardTotal Area = "Yard (Total)"

	// AreaAll is the filter sentinel meaning "no area restriction".
	// It is never stored on a zone.
	AreaAll Area = "All"
)

// Areas lists the storable areas in display order.
func Areas() []Area {
	return []Area{AreaFrontYard, AreaBackYard, AreaSideYard, AreaSouthSide, AreaYardTotal}
}

// ParseArea maps a raw string onto a storable area.
func ParseArea(raw string) (Area, bool) {
	for _, a := range Areas() {
		if raw == string(a) {
			return a, true
		}
	}
	return "", false
}

// Orientation describes which compass direction a zone faces.
type Orientation string

const (
	OrientationWest  Orientation = "West"
	OrientationEast  Orientation = "East"
	OrientationSouth Orientation = "South"
	OrientationNA    Orientation = "N/A"
)

// OrientationForArea derives the orientation from the area. The mapping is
// unconditional and overrides anything a client might send.
func OrientationForArea(area Area) Orientation {
	switch area {
	case AreaFrontYard:
		return OrientationWest
	case AreaBackYard:
		return OrientationEast
	case AreaSouthSide:
		return OrientationSouth
	default:
		return OrientationNA
	}
}

// Zone is a named yard area or plant, optionally nesting subzones one
// level deep in practice (the type permits more).
type Zone struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Area        Area        `json:"area"`
	Type        string      `json:"type,omitempty"`
	Orientation Orientation `json:"orientation,omitempty"`
	Sun         string      `json:"sun,omitempty"`
	Health      *float64    `json:"health"`
	Notes       []string    `json:"notes,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Emoji       string      `json:"emoji,omitempty"`
	Subzones    []Zone      `json:"subzones,omitempty"`
}

var (
	// ErrZoneNameNotText rejects records whose name is missing or not JSON text.
	ErrZoneNameNotText = errors.New("zone record: name is not text")
	// ErrZoneAreaNotText rejects records whose area is missing or not JSON text.
	ErrZoneAreaNotText = errors.New("zone record: area is not text")
)

// ParseZone decodes a stored record and rejects it when it fails shape
// validation. Exactly two fields are checked: name must be text and area
// must be text. Nested subzones are not independently validated.
func ParseZone(data []byte) (Zone, error) {
	var probe struct {
		Name any `json:"name"`
		Area any `json:"area"`
	}
	if err := sonic.Unmarshal(data, &probe); err != nil {
		return Zone{}, err
	}
	if _, ok := probe.Name.(string); !ok {
		return Zone{}, ErrZoneNameNotText
	}
	if _, ok := probe.Area.(string); !ok {
		return Zone{}, ErrZoneAreaNotText
	}
	var z Zone
	if err := sonic.Unmarshal(data, &z); err != nil {
		return Zone{}, err
	}
	return z, nil
}

const (
	defaultZoneName = "New Plant"
	onboardingNote  = "Water deeply every other day for the first two weeks."
)

// CreateZoneInput carries the caller-supplied fields for a new zone.
// SuggestionName holds the top accepted plant-identification suggestion,
// if the zone came from the AI-assisted flow.
type CreateZoneInput struct {
	Name           string
	Area           Area
	Type           string
	Sun            string
	Emoji          string
	Tags           []string
	SuggestionName string
}

// NewZone builds a zone record from creation input. The name falls back
// to the accepted suggestion, then to a fixed default; orientation is
// derived from the area; notes start with the single onboarding note and
// health is reserved (always nil).
func NewZone(id string, in CreateZoneInput) Zone {
	name := in.Name
	if name == "" {
		name = in.SuggestionName
	}
	if name == "" {
		name = defaultZoneName
	}
	return Zone{
		ID:          id,
		Name:        name,
		Area:        in.Area,
		Type:        in.Type,
		Orientation: OrientationForArea(in.Area),
		Sun:         in.Sun,
		Notes:       []string{onboardingNote},
		Tags:        in.Tags,
		Emoji:       in.Emoji,
	}
}
