package types

// ListResponse represents a list response with the number of items returned
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewListResponse creates a new list response
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{
		Items: items,
		Total: len(items),
	}
}
