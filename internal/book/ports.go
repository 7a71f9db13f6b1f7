package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	List(ctx context.Context, q Query) ([]Book, int, error)
	GetByID(ctx context.Context, id int64) (Book, error)
	GetAt(ctx context.Context, offset int64) (Book, error)
	Create(ctx context.Context, in Input) (Book, error)
	Update(ctx context.Context, id int64, in Input) (Book, error)
	Delete(ctx context.Context, id int64) error
	SearchByAuthor(ctx context.Context, authorID int64) ([]Book, error)
	SearchByTitle(ctx context.Context, title string) ([]Book, error)
}
