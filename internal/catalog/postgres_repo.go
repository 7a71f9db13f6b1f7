package catalog

import (
	"context"
	"fmt"
	"time"

	"bookcatalog/internal/pagination"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

const (
	listAuthorsSQL = `SELECT id, name FROM authors ORDER BY id LIMIT $1 OFFSET $2`
	listGenresSQL  = `SELECT id, name FROM genres ORDER BY name COLLATE "C", id LIMIT $1 OFFSET $2`
)

func (r *PostgresRepo) ListAuthors(ctx context.Context, page int) ([]Author, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, listAuthorsSQL, pagination.PageSize, pagination.Offset(page))
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	authors, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Author])
	if err != nil {
		return nil, fmt.Errorf("scan authors: %w", err)
	}
	if authors == nil {
		authors = []Author{}
	}
	return authors, nil
}

func (r *PostgresRepo) ListGenres(ctx context.Context, page int) ([]Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, listGenresSQL, pagination.PageSize, pagination.Offset(page))
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	genres, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Genre])
	if err != nil {
		return nil, fmt.Errorf("scan genres: %w", err)
	}
	if genres == nil {
		genres = []Genre{}
	}
	return genres, nil
}
