package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"booklist/internal/book"
	"booklist/internal/entity"
	"booklist/internal/httpx"
	"booklist/internal/platform/googlebooks"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// Searcher is the outbound lookup the search page depends on.
type Searcher interface {
	Search(ctx context.Context, term, mode string) ([]googlebooks.Volume, error)
}

type Handler struct {
	store    book.Store
	searcher Searcher
	validate *validator.Validate
}

func NewHandler(store book.Store, searcher Searcher) *Handler {
	return &Handler{
		store:    store,
		searcher: searcher,
		validate: validator.New(),
	}
}

// appError carries a handler failure to the shared error view. A nil
// return means the handler already wrote its response.
type appError struct {
	Err     error
	Message string
	Code    int
}

type appHandler func(http.ResponseWriter, *http.Request) *appError

func (fn appHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e := fn(w, r)
	if e == nil {
		return
	}
	log.Printf("handler error: status=%d message=%q err=%v request_id=%s",
		e.Code, e.Message, e.Err, httpx.RequestIDFrom(r))

	w.WriteHeader(e.Code)
	d := struct {
		Data interface{}
	}{
		Data: e,
	}
	if err := errorTmpl.t.Execute(w, d); err != nil {
		log.Printf("could not write error template: %v", err)
	}
}

func appErrorf(err error, format string, v ...interface{}) *appError {
	return &appError{
		Err:     err,
		Message: fmt.Sprintf(format, v...),
		Code:    http.StatusInternalServerError,
	}
}

// storeErrorf maps store failures onto the error view, keeping the
// missing-row case distinct from connection-level trouble.
func storeErrorf(err error, format string, v ...interface{}) *appError {
	e := appErrorf(err, format, v...)
	if errors.Is(err, book.ErrNotFound) {
		e.Code = http.StatusNotFound
	}
	return e
}

type searchForm struct {
	Term string `validate:"required"`
	Mode string `validate:"required,oneof=title author"`
}

type bookForm struct {
	Title       string `validate:"required"`
	Author      string
	ISBN        string
	ImageURL    string
	Description string
	Bookshelf   string `validate:"required"`
}

func bookFromForm(r *http.Request) bookForm {
	return bookForm{
		Title:       r.PostFormValue("title"),
		Author:      r.PostFormValue("author"),
		ISBN:        r.PostFormValue("isbn"),
		ImageURL:    r.PostFormValue("image_url"),
		Description: r.PostFormValue("description"),
		Bookshelf:   r.PostFormValue("bookshelf"),
	}
}

func (f bookForm) toEntity() entity.Book {
	return entity.Book{
		Title:       f.Title,
		Author:      f.Author,
		ISBN:        f.ISBN,
		ImageURL:    f.ImageURL,
		Description: f.Description,
		Bookshelf:   f.Bookshelf,
	}
}

func bookID(r *http.Request) int64 {
	// Route pattern restricts {id} to digits.
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

type listData struct {
	Books []entity.Book
}

type detailData struct {
	Book        entity.Book
	Bookshelves []string
}

type resultsData struct {
	Results []book.Result
	Term    string
	Mode    string
}

// listBooks handles GET /
func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) *appError {
	books, err := h.store.ListAll(r.Context())
	if err != nil {
		return storeErrorf(err, "could not list books: %v", err)
	}
	return listTmpl.Execute(w, r, listData{Books: books})
}

// newSearch handles GET /searches/new
func (h *Handler) newSearch(w http.ResponseWriter, r *http.Request) *appError {
	return searchTmpl.Execute(w, r, nil)
}

// createSearch handles POST /searches. The form submits two values
// under the same name: the term and the mode, in that order.
func (h *Handler) createSearch(w http.ResponseWriter, r *http.Request) *appError {
	if err := r.ParseForm(); err != nil {
		return &appError{Err: err, Message: "could not parse search form", Code: http.StatusBadRequest}
	}

	var form searchForm
	if vals := r.PostForm["search"]; len(vals) > 0 {
		form.Term = vals[0]
		if len(vals) > 1 {
			form.Mode = vals[1]
		}
	}
	if err := h.validate.Struct(form); err != nil {
		return &appError{Err: err, Message: "search needs a term and a mode of title or author", Code: http.StatusBadRequest}
	}

	volumes, err := h.searcher.Search(r.Context(), form.Term, form.Mode)
	if err != nil {
		return appErrorf(err, "could not search for books: %v", err)
	}

	results := make([]book.Result, 0, len(volumes))
	for _, v := range volumes {
		results = append(results, book.Normalize(v.VolumeInfo))
	}
	return resultsTmpl.Execute(w, r, resultsData{Results: results, Term: form.Term, Mode: form.Mode})
}

// showBook handles GET /books/{id}. The bookshelf labels feed the
// select control on the edit form.
func (h *Handler) showBook(w http.ResponseWriter, r *http.Request) *appError {
	shelves, err := h.store.ListBookshelves(r.Context())
	if err != nil {
		return storeErrorf(err, "could not list bookshelves: %v", err)
	}
	b, err := h.store.GetByID(r.Context(), bookID(r))
	if err != nil {
		return storeErrorf(err, "could not find book: %v", err)
	}
	return detailTmpl.Execute(w, r, detailData{Book: b, Bookshelves: shelves})
}

// createBook handles POST /books
func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) *appError {
	form := bookFromForm(r)
	if err := h.validate.Struct(form); err != nil {
		return &appError{Err: err, Message: "a book needs at least a title and a bookshelf", Code: http.StatusBadRequest}
	}

	id, err := h.store.Insert(r.Context(), form.toEntity())
	if err != nil {
		return storeErrorf(err, "could not save book: %v", err)
	}
	http.Redirect(w, r, fmt.Sprintf("/books/%d", id), http.StatusSeeOther)
	return nil
}

// updateBook handles PUT /books/{id}, a full-record overwrite.
func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) *appError {
	id := bookID(r)
	form := bookFromForm(r)
	if err := h.validate.Struct(form); err != nil {
		return &appError{Err: err, Message: "a book needs at least a title and a bookshelf", Code: http.StatusBadRequest}
	}

	if err := h.store.Update(r.Context(), id, form.toEntity()); err != nil {
		return storeErrorf(err, "could not update book: %v", err)
	}
	http.Redirect(w, r, fmt.Sprintf("/books/%d", id), http.StatusSeeOther)
	return nil
}

// deleteBook handles DELETE /books/{id}
func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) *appError {
	if err := h.store.Delete(r.Context(), bookID(r)); err != nil {
		return storeErrorf(err, "could not delete book: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
	return nil
}
