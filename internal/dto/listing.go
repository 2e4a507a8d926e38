package dto

// ListQuery carries sanitized pagination parameters for listing endpoints.
type ListQuery struct {
	Page     int
	PageSize int
}

// Offset converts page/pageSize into a SQL offset.
func (q ListQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.PageSize
}

// ListEnvelope is the paginated payload shape shared by every list endpoint.
type ListEnvelope struct {
	Items    any `json:"items"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}
