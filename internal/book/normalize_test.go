package book

import (
	"testing"

	"booklist/internal/entity"
	"booklist/internal/platform/googlebooks"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_AllFieldsPresent(t *testing.T) {
	v := googlebooks.VolumeInfo{
		Title:   "Dune",
		Authors: []string{"Frank Herbert", "Someone Else"},
		IndustryIdentifiers: []googlebooks.IndustryIdentifier{
			{Type: "ISBN_13", Identifier: "9780441013593"},
			{Type: "ISBN_10", Identifier: "0441013597"},
		},
		ImageLinks:  &googlebooks.ImageLinks{SmallThumbnail: "https://books.google.com/cover.jpg"},
		Description: "A landmark of science fiction.",
	}

	r := Normalize(v)

	assert.Equal(t, "Dune", r.Title)
	assert.Equal(t, "Frank Herbert", r.Author, "only the first author is kept")
	assert.Equal(t, "ISBN_13 9780441013593", r.ISBN)
	assert.Equal(t, "https://books.google.com/cover.jpg", r.ImageURL)
	assert.Equal(t, "A landmark of science fiction.", r.Description)
	assert.Equal(t, "9780441013593", r.ExternalID)
}

func TestNormalize_EmptyRecordGetsDefaults(t *testing.T) {
	r := Normalize(googlebooks.VolumeInfo{})

	assert.Equal(t, entity.DefaultTitle, r.Title)
	assert.Equal(t, entity.DefaultAuthor, r.Author)
	assert.Equal(t, entity.DefaultISBN, r.ISBN)
	assert.Equal(t, entity.PlaceholderImage, r.ImageURL)
	assert.Equal(t, entity.DefaultDescription, r.Description)
	assert.Equal(t, "", r.ExternalID)
}

func TestNormalize_ThumbnailScheme(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "leading http upgraded",
			in:   "http://books.google.com/cover.jpg",
			want: "https://books.google.com/cover.jpg",
		},
		{
			name: "https untouched",
			in:   "https://books.google.com/cover.jpg",
			want: "https://books.google.com/cover.jpg",
		},
		{
			name: "embedded http untouched",
			in:   "https://cache.example.com/fetch?src=http://books.google.com/cover.jpg",
			want: "https://cache.example.com/fetch?src=http://books.google.com/cover.jpg",
		},
		{
			name: "only the leading occurrence is rewritten",
			in:   "http://cache.example.com/fetch?src=http://books.google.com/cover.jpg",
			want: "https://cache.example.com/fetch?src=http://books.google.com/cover.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := googlebooks.VolumeInfo{ImageLinks: &googlebooks.ImageLinks{SmallThumbnail: tt.in}}
			assert.Equal(t, tt.want, Normalize(v).ImageURL)
		})
	}
}

func TestNormalize_PartialRecords(t *testing.T) {
	t.Run("image links present but thumbnail empty", func(t *testing.T) {
		v := googlebooks.VolumeInfo{ImageLinks: &googlebooks.ImageLinks{}}
		assert.Equal(t, entity.PlaceholderImage, Normalize(v).ImageURL)
	})

	t.Run("title only", func(t *testing.T) {
		r := Normalize(googlebooks.VolumeInfo{Title: "Dune"})
		assert.Equal(t, "Dune", r.Title)
		assert.Equal(t, entity.DefaultAuthor, r.Author)
		assert.Equal(t, entity.DefaultISBN, r.ISBN)
	})
}
