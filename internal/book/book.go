package book

import (
	"errors"

	"booklist/internal/entity"
)

// ErrNotFound is returned when a book id has no matching row.
var ErrNotFound = errors.New("book not found")

// Result is a normalized search hit. It is never persisted as-is: the
// external id only identifies the volume on the results page, the
// store assigns its own id on insert.
type Result struct {
	entity.Book
	ExternalID string
}
