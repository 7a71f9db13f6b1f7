package book

import (
	"slices"
	"strings"

	"bookcatalog/internal/apperr"

	"github.com/samber/lo"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = apperr.NotFound("book not found")

// Book is a book as returned to clients: the name of its first linked
// author and the byte-wise ascending names of its genres.
type Book struct {
	ID     int64    `json:"id"`
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Year   int      `json:"year"`
	Genres []string `json:"genres"`
}

// Input is the create and update payload. On update a nil Author or Genres
// leaves the existing links untouched.
type Input struct {
	Title  string   `json:"title" validate:"notblank,max=500"`
	Author *string  `json:"author,omitempty" validate:"omitempty,max=255"`
	Year   *int     `json:"year,omitempty"`
	Genres []string `json:"genres,omitempty"`
}

// AuthorName returns the trimmed author name, empty when absent.
func (in Input) AuthorName() string {
	if in.Author == nil {
		return ""
	}
	return strings.TrimSpace(*in.Author)
}

// NormalizeGenres trims names, drops blanks and duplicates and sorts the
// result. The returned slice is never nil.
func NormalizeGenres(genres []string) []string {
	out := lo.Uniq(lo.FilterMap(genres, func(g string, _ int) (string, bool) {
		g = strings.TrimSpace(g)
		return g, g != ""
	}))
	slices.Sort(out)
	return out
}

// fromInput builds the client view of a freshly created book.
func fromInput(id int64, in Input) Book {
	b := Book{
		ID:     id,
		Title:  strings.TrimSpace(in.Title),
		Author: in.AuthorName(),
		Genres: NormalizeGenres(in.Genres),
	}
	if in.Year != nil {
		b.Year = *in.Year
	}
	return b
}
