package request

// ByUUIDRequest is a common struct for endpoints keyed by a UUID path parameter (resources).
type ByUUIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Validate performs custom validation for ByUUIDRequest.
func (r *ByUUIDRequest) Validate() error {
	return nil
}

// ListParams holds the shared pagination query parameters for list endpoints.
type ListParams struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Normalize fills in defaults for unset pagination values.
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
}
