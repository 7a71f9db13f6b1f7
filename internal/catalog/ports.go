package catalog

import "context"

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=catalog

// Repository lists authors and genres one page at a time.
type Repository interface {
	ListAuthors(ctx context.Context, page int) ([]Author, error)
	ListGenres(ctx context.Context, page int) ([]Genre, error)
}
