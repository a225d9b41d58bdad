package models

import "time"

// Categories assigned by the enrichment engine.
const (
	CategoryCoding      = "Coding"
	CategoryWriting     = "Writing"
	CategoryMath        = "Math"
	CategoryAIAnalytics = "AI/Analytics"
	CategoryGeneral     = "General"
)

// Sources assigned by the enrichment engine when the caller supplies none.
const (
	SourceUser   = "User"
	SourceSystem = "System"
)

// Prompt is a text prompt submitted by a user.
//
// Category and Source are derived by the enrichment engine; a caller-supplied
// Source is preserved.
type Prompt struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// UserID is the username of the owner.
	UserID string `json:"user_id"`

	// InputText is the prompt body, 3 to 1000 characters.
	InputText string `json:"input_text"`

	// ResponseText is an optional response recorded with the prompt.
	ResponseText *string `json:"response_text,omitempty"`

	// Category is the classification label, e.g. "Coding".
	Category string `json:"category"`

	// Source is the origin label, e.g. "User" or "System".
	Source string `json:"source"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Prompt model.
func (p Prompt) TableName() string {
	return "prompts"
}

// BatchResult reports the outcome of a single prompt in a batch submission.
type BatchResult struct {
	Prompt   string `json:"prompt"`
	Success  bool   `json:"success"`
	ID       int64  `json:"id,omitempty"`
	Category string `json:"category,omitempty"`
	Source   string `json:"source,omitempty"`
	Error    string `json:"error,omitempty"`
}

// BatchResponse is the body returned for a batch submission.
type BatchResponse struct {
	Results []BatchResult `json:"results"`
}
