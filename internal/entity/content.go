package entity

// ContentItem is the normalized shape shared by blog posts, case studies and
// templates. The three content tables use different column names for the same
// logical fields, so they go through the same normalization engine as
// companies, with their own table profiles.
type ContentItem struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Excerpt     string  `json:"excerpt"`
	Body        string  `json:"body"`
	CoverImage  string  `json:"coverImage,omitempty"`
	Published   bool    `json:"published"`
	PublishedAt *string `json:"publishedAt"`
	UpdatedAt   *string `json:"updatedAt"`
}
