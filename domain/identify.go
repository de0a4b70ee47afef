package domain

import "github.com/bytedance/sonic"

// Suggestion is one plant-identification candidate relayed from the
// upstream API. Details is passed through verbatim; the core only ever
// reads an optional sunlight hint from it.
type Suggestion struct {
	Name        string                 `json:"name"`
	Probability float64                `json:"probability"`
	Details     sonic.NoCopyRawMessage `json:"details,omitempty"`
}
