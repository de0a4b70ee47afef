package api

import "garden-api/domain"

const (
	// postZoneMaxSize caps manual zone entry bodies at 64 KiB.
	postZoneMaxSize = 64 * 1024
	// postIdentifyMaxSize allows up to 8 MiB of base64 photo.
	postIdentifyMaxSize = 8 * 1024 * 1024
)

// POST /api/zones request body.
type createZoneRequest struct {
	Name           string   `json:"name"`
	Area           string   `json:"area"`
	Type           string   `json:"type"`
	Sun            string   `json:"sun"`
	Emoji          string   `json:"emoji"`
	Tags           []string `json:"tags"`
	SuggestionName string   `json:"suggestionName"`
}

// GET /api/zones response body.
type zonesResponse struct {
	Zones []domain.Zone `json:"zones"`
}

// GET /api/quests and POST /api/quests/:index/toggle response body.
// Quests appear in display order; Index always refers to the original,
// unsorted static list position.
type questsResponse struct {
	Quests            []questView `json:"quests"`
	CompletedCount    int         `json:"completedCount"`
	CompletionPercent int         `json:"completionPercent"`
}

type questView struct {
	Index     int              `json:"index"`
	Text      string           `json:"text"`
	Frequency domain.Frequency `json:"frequency"`
	Done      bool             `json:"done"`
}

// POST /api/identify request and response bodies.
type identifyRequest struct {
	ImageBase64 string `json:"imageBase64"`
}

type identifyResponse struct {
	Suggestions []domain.Suggestion `json:"suggestions"`
}
