package book

import (
	"strings"

	"booklist/internal/entity"
	"booklist/internal/platform/googlebooks"
)

// Normalize maps one raw volume record into the app's fixed book
// shape. Every upstream field is optional; absent fields fall back to
// the entity defaults, so this never fails.
func Normalize(v googlebooks.VolumeInfo) Result {
	r := Result{
		Book: entity.Book{
			Title:       entity.DefaultTitle,
			Author:      entity.DefaultAuthor,
			ISBN:        entity.DefaultISBN,
			ImageURL:    entity.PlaceholderImage,
			Description: entity.DefaultDescription,
		},
	}

	if v.Title != "" {
		r.Title = v.Title
	}
	if len(v.Authors) > 0 {
		r.Author = v.Authors[0]
	}
	if len(v.IndustryIdentifiers) > 0 {
		id := v.IndustryIdentifiers[0].Identifier
		r.ISBN = "ISBN_13 " + id
		r.ExternalID = id
	}
	if v.ImageLinks != nil && v.ImageLinks.SmallThumbnail != "" {
		r.ImageURL = upgradeScheme(v.ImageLinks.SmallThumbnail)
	}
	if v.Description != "" {
		r.Description = v.Description
	}
	return r
}

// upgradeScheme rewrites a leading http:// to https://. Occurrences
// elsewhere in the URL are left alone.
func upgradeScheme(u string) string {
	if strings.HasPrefix(u, "http://") {
		return "https://" + strings.TrimPrefix(u, "http://")
	}
	return u
}
