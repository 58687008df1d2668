package store

// Store gateway implementation (Postgres). The only component that
// issues SQL; everything else holds transient copies of Book values.

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"booklist/internal/book"
	"booklist/internal/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func (r *BookPG) ListAll(ctx context.Context) ([]entity.Book, error) {
	const query = `
	SELECT id, title, author, isbn, image_url, description, bookshelf
	FROM books
	ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.ImageURL, &b.Description, &b.Bookshelf); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (r *BookPG) GetByID(ctx context.Context, id int64) (entity.Book, error) {
	const query = `
	SELECT id, title, author, isbn, image_url, description, bookshelf
	FROM books
	WHERE id = $1
	`
	var b entity.Book
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.ImageURL, &b.Description, &b.Bookshelf,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, book.ErrNotFound
		}
		return entity.Book{}, fmt.Errorf("get book %d: %w", id, err)
	}
	return b, nil
}

// Insert writes a new row and returns the store-assigned id. The
// bookshelf label is lower-cased before the write.
func (r *BookPG) Insert(ctx context.Context, b entity.Book) (int64, error) {
	const query = `
	INSERT INTO books (title, author, isbn, image_url, description, bookshelf)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query,
		b.Title, b.Author, b.ISBN, b.ImageURL, b.Description, strings.ToLower(b.Bookshelf),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert book: %w", err)
	}
	return id, nil
}

// Update overwrites the full record. Partial patches are not supported.
func (r *BookPG) Update(ctx context.Context, id int64, b entity.Book) error {
	const query = `
	UPDATE books
	SET title = $1, author = $2, isbn = $3, image_url = $4, description = $5, bookshelf = $6
	WHERE id = $7
	`
	tag, err := r.db.Exec(ctx, query,
		b.Title, b.Author, b.ISBN, b.ImageURL, b.Description, strings.ToLower(b.Bookshelf), id,
	)
	if err != nil {
		return fmt.Errorf("update book %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrNotFound
	}
	return nil
}

// Delete removes the row if present. Deleting an absent id is not an
// error.
func (r *BookPG) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	return nil
}

func (r *BookPG) ListBookshelves(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT bookshelf FROM books ORDER BY bookshelf`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bookshelves: %w", err)
	}
	defer rows.Close()

	var shelves []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan bookshelf: %w", err)
		}
		shelves = append(shelves, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookshelves: %w", err)
	}
	return shelves, nil
}
