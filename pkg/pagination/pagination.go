package pagination

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrInvalidPage  = errors.New("invalid_page")
	ErrInvalidLimit = errors.New("invalid_limit")
)

// UnknownSortFieldError reports a sort field outside the entity's allow-list.
type UnknownSortFieldError struct {
	Field string
}

func (e *UnknownSortFieldError) Error() string {
	return fmt.Sprintf("unknown sort field %q", e.Field)
}

// Params is the page/limit pair taken from the query string.
type Params struct {
	Page  int
	Limit int
}

func (p Params) Validate() error {
	if p.Page < 1 {
		return ErrInvalidPage
	}
	if p.Limit < 1 {
		return ErrInvalidLimit
	}
	return nil
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Order is one resolved sort key. Column is a trusted column expression from
// an allow-list, never raw client input.
type Order struct {
	Column string
	Desc   bool
}

// ParseSort resolves "field,asc" / "field,desc" tokens against the entity's
// sortable-column allow-list. Direction defaults to ascending. An unknown
// field name is a validation error, not a query to attempt.
func ParseSort(values []string, allowed map[string]string) ([]Order, error) {
	if len(values) == 0 {
		return nil, nil
	}

	orders := make([]Order, 0, len(values))
	for _, value := range values {
		parts := strings.SplitN(value, ",", 2)
		name := strings.TrimSpace(parts[0])
		if name == "" {
			continue
		}

		column, ok := allowed[name]
		if !ok {
			return nil, &UnknownSortFieldError{Field: name}
		}

		desc := len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc")
		orders = append(orders, Order{Column: column, Desc: desc})
	}
	return orders, nil
}

// Apply adds the ORDER BY keys in sequence (stable multi-key sort), then the
// page window. Count the statement before calling Apply: total is the size
// of the full matching set.
func Apply(stmt *gorm.DB, orders []Order, p Params) *gorm.DB {
	for _, o := range orders {
		direction := "ASC"
		if o.Desc {
			direction = "DESC"
		}
		stmt = stmt.Order(o.Column + " " + direction)
	}
	return stmt.Offset(p.Offset()).Limit(p.Limit)
}

// Page is the paginated payload nested under "data" in the envelope.
type Page[T any] struct {
	Content    []T   `json:"content"`
	Total      int64 `json:"total"`
	Limit      int   `json:"limit"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	IsFirst    bool  `json:"isFirst"`
	IsLast     bool  `json:"isLast"`
}

// NewPage computes the page bookkeeping. TotalPages is 0 for an empty set,
// so IsLast stays false there; IsFirst and IsLast are each derived from the
// requested page alone.
func NewPage[T any](content []T, total int64, p Params) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Page[T]{
		Content:    content,
		Total:      total,
		Limit:      p.Limit,
		Page:       p.Page,
		TotalPages: totalPages,
		IsFirst:    p.Page == 1,
		IsLast:     p.Page == totalPages,
	}
}
