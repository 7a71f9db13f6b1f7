// Package fixture resets the catalog and loads the seed books.
package fixture

import (
	"context"
	"fmt"
	"time"

	"bookcatalog/internal/book"

	"github.com/jackc/pgx/v5/pgxpool"
)

const resetSQL = `TRUNCATE book_authors, book_genres, books, authors, genres RESTART IDENTITY`

// Resetter empties every catalog relation.
type Resetter interface {
	Reset(ctx context.Context) error
}

// Creator stores one book with its author and genres.
type Creator interface {
	Create(ctx context.Context, in book.Input) (book.Book, error)
}

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

// Reset truncates all five relations and restarts their id sequences at 1.
func (r *PostgresRepo) Reset(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.db.Exec(ctx, resetSQL); err != nil {
		return fmt.Errorf("reset db: %w", err)
	}
	return nil
}

// Load creates inputs one after another so ids follow slice order.
func Load(ctx context.Context, c Creator, inputs []book.Input) ([]book.Book, error) {
	out := make([]book.Book, 0, len(inputs))
	for i, in := range inputs {
		b, err := c.Create(ctx, in)
		if err != nil {
			return out, fmt.Errorf("load fixture %d (%s): %w", i, in.Title, err)
		}
		out = append(out, b)
	}
	return out, nil
}
