package models

// SavedQuery is a natural-language question kept for reuse
type SavedQuery struct {
	ID      int    `json:"id" example:"1"`
	Query   string `json:"query" validate:"trimmed_required" example:"tell me about what was said about quality"`
	Context string `json:"context" example:"All Data Sources"`
	Date    string `json:"date" example:"Nov 14, 2025"`
}
