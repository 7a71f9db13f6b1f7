package book

import (
	"context"
	"strings"

	"bookcatalog/internal/apperr"
)

// Lookup selects how GET /api/books/{id} interprets its path value.
type Lookup string

const (
	// LookupByID treats the value as a primary key.
	LookupByID Lookup = "id"
	// LookupByOffset treats the value as a zero-based position in id order.
	LookupByOffset Lookup = "offset"
)

var errBlankTitle = apperr.Validation("title cannot be blank")

// Service provides book-related business logic.
type Service struct {
	repo   Repository
	lookup Lookup
}

// NewService creates a new book service.
func NewService(repo Repository, lookup Lookup) *Service {
	if lookup != LookupByOffset {
		lookup = LookupByID
	}
	return &Service{repo: repo, lookup: lookup}
}

// List returns one page of books matching q and the total number of matches.
func (s *Service) List(ctx context.Context, q Query) ([]Book, int, error) {
	return s.repo.List(ctx, q)
}

// Get returns a single book according to the configured lookup mode.
func (s *Service) Get(ctx context.Context, id int64) (Book, error) {
	if s.lookup == LookupByOffset {
		return s.repo.GetAt(ctx, id)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (Book, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Book{}, errBlankTitle
	}
	return s.repo.Create(ctx, in)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Book, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Book{}, errBlankTitle
	}
	return s.repo.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ByAuthor(ctx context.Context, authorID int64) ([]Book, error) {
	return s.repo.SearchByAuthor(ctx, authorID)
}

func (s *Service) ByTitle(ctx context.Context, title string) ([]Book, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errBlankTitle
	}
	return s.repo.SearchByTitle(ctx, title)
}
