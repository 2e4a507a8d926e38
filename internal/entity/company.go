package entity

// SocialLink is one outbound contact link derived from whichever contact
// columns resolved for a company row.
type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

// CompanyRecord is the canonical, JSON-safe projection of one raw row from a
// legacy category table. Every field is a plain string, bool, slice or nil,
// never a driver type such as time.Time or []byte.
type CompanyRecord struct {
	ID               string       `json:"id"`
	Slug             string       `json:"slug"`
	Name             string       `json:"name"`
	Tagline          string       `json:"tagline"`
	ShortDescription string       `json:"shortDescription"`
	Description      string       `json:"description"`
	Phones           []string     `json:"phones"`
	Emails           []string     `json:"emails"`
	Services         []string     `json:"services"`
	Address          string       `json:"address"`
	Gallery          []string     `json:"gallery"`
	Logo             string       `json:"logo,omitempty"`
	CoverImage       string       `json:"coverImage,omitempty"`
	SocialLinks      []SocialLink `json:"socialLinks"`
	Highlight        bool         `json:"highlight"`
	CreatedAt        *string      `json:"createdAt"`
	UpdatedAt        *string      `json:"updatedAt"`
}
