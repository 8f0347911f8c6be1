package models

// Page is one slice of a listing plus the total row count behind it.
type Page[T any] struct {
	Data     []T `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// NewPage reports page as at least 1 and PageSize as the number of items
// actually returned. A nil slice is encoded as [].
func NewPage[T any](items []T, total, page int) Page[T] {
	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Data:     items,
		Total:    total,
		Page:     max(page, 1),
		PageSize: len(items),
	}
}
