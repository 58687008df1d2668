package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"booklist/internal/entity"
)

// TestBook is a fully populated book for tests.
var TestBook = entity.Book{
	ID:          7,
	Title:       "Dune",
	Author:      "Frank Herbert",
	ISBN:        "ISBN_13 9780441013593",
	ImageURL:    "https://books.google.com/books/content?id=B1hSG45JCX4C",
	Description: "A landmark of science fiction.",
	Bookshelf:   "fiction",
}

// BookFormValues encodes a book the way the HTML forms submit it.
func BookFormValues(b entity.Book) url.Values {
	return url.Values{
		"title":       {b.Title},
		"author":      {b.Author},
		"isbn":        {b.ISBN},
		"image_url":   {b.ImageURL},
		"description": {b.Description},
		"bookshelf":   {b.Bookshelf},
	}
}

// NewFormRequest creates a form-encoded request for testing.
func NewFormRequest(method, path string, form url.Values) *http.Request {
	var body string
	if form != nil {
		body = form.Encode()
	}
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// NewOverrideRequest creates the POST a browser form sends when the
// intended verb rides in the hidden _method field.
func NewOverrideRequest(intended, path string, form url.Values) *http.Request {
	if form == nil {
		form = url.Values{}
	}
	form.Set("_method", intended)
	return NewFormRequest(http.MethodPost, path, form)
}
