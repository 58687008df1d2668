package entity

// Defaults substituted by the normalizer when the upstream record
// omits a field. Every column is non-null, so these always apply.
const (
	DefaultTitle       = "No title available"
	DefaultAuthor      = "No author available"
	DefaultISBN        = "No ISBN available"
	DefaultDescription = "No description available"
	PlaceholderImage   = "https://i.imgur.com/J5LVHEL.jpg"
)

type Book struct {
	ID          int64
	Title       string
	Author      string
	ISBN        string
	ImageURL    string
	Description string
	Bookshelf   string
}
