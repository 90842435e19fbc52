package domain

// SuggestionType classifies a suggestion.
type SuggestionType string

const (
	SuggestionOptimization SuggestionType = "optimization"
	SuggestionOpportunity  SuggestionType = "opportunity"
	SuggestionAlert        SuggestionType = "alert"
)

// Priority ranks how urgently a suggestion should be acted upon.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// Suggestion is a human-readable optimisation hint derived from metrics. It
// is computed per request and never stored.
type Suggestion struct {
	Type        SuggestionType `json:"type"`
	Category    string         `json:"category"`
	Priority    Priority       `json:"priority"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Affected    []string       `json:"affected"`
	Action      string         `json:"recommended_action"`
}
