package dto

// ErrorResponse cuerpo de error HTTP. Details lleva conteos de referencias
// cuando aplica (DependencyViolation, InUseError).
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]int `json:"details,omitempty"`
}

// Pagination metadatos de página en listados page/limit.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// NewPagination calcula Pages con techo.
func NewPagination(total, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Total: total, Page: page, Limit: limit, Pages: pages}
}
