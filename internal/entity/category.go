package entity

// CategorySummary describes one business category backed by a legacy table.
type CategorySummary struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Total       int    `json:"total"`
	Description string `json:"description"`
}
