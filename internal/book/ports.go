package book

import (
	"context"

	"booklist/internal/entity"
)

// Store defines the contract for book persistence.
type Store interface {
	ListAll(ctx context.Context) ([]entity.Book, error)
	GetByID(ctx context.Context, id int64) (entity.Book, error)
	Insert(ctx context.Context, b entity.Book) (int64, error)
	Update(ctx context.Context, id int64, b entity.Book) error
	Delete(ctx context.Context, id int64) error
	ListBookshelves(ctx context.Context) ([]string, error)
}
