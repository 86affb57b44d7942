package pagination

// Response is a generic paginated response envelope. The pagination fields
// sit alongside the data array rather than in a nested object, matching the
// shape list endpoints return to clients.
//
// Example usage:
//
//	response := pagination.NewResponse(articles, total, params)
//	// response is of type pagination.Response[ArticleDTO]
type Response[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewResponse builds a paginated response from the current page's data,
// the total item count and the request's pagination params.
func NewResponse[T any](data []T, total int64, params Params) Response[T] {
	return Response[T]{
		Data:       data,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: CalculateTotalPages(total, params.PageSize),
	}
}
