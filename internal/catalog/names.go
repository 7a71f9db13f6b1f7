package catalog

import (
	"context"
	"fmt"

	"bookcatalog/internal/platform/postgres"

	"github.com/jackc/pgx/v5"
)

// Names creates author and genre rows. With Dedupe set, an existing row with
// the exact same name is reused instead of inserting a duplicate.
//
// Dedupe is best effort: names carry no unique constraint, so two concurrent
// transactions creating the same new name can both insert it. Reads pick the
// oldest row, so such duplicates only waste a row.
type Names struct {
	Dedupe bool
}

func insertSQL(table string) string {
	return fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1) RETURNING id`, table)
}

// lookupOrCreateSQL returns the id of the oldest row named $1, inserting one
// when none exists.
func lookupOrCreateSQL(table string) string {
	return fmt.Sprintf(`
		WITH existing AS (
			SELECT id FROM %[1]s WHERE name = $1::text ORDER BY id LIMIT 1
		), inserted AS (
			INSERT INTO %[1]s (name)
			SELECT $1::text WHERE NOT EXISTS (SELECT 1 FROM existing)
			RETURNING id
		)
		SELECT id FROM existing
		UNION ALL
		SELECT id FROM inserted`, table)
}

var (
	createAuthorSQL = insertSQL("authors")
	createGenreSQL  = insertSQL("genres")
	upsertAuthorSQL = lookupOrCreateSQL("authors")
	upsertGenreSQL  = lookupOrCreateSQL("genres")
)

func (n Names) authorSQL() string {
	if n.Dedupe {
		return upsertAuthorSQL
	}
	return createAuthorSQL
}

func (n Names) genreSQL() string {
	if n.Dedupe {
		return upsertGenreSQL
	}
	return createGenreSQL
}

// CreateAuthor inserts one author row and returns its id.
func CreateAuthor(ctx context.Context, q postgres.Querier, name string) (int64, error) {
	return scanID(ctx, q, createAuthorSQL, name, "create author")
}

// CreateGenre inserts one genre row and returns its id.
func CreateGenre(ctx context.Context, q postgres.Querier, name string) (int64, error) {
	return scanID(ctx, q, createGenreSQL, name, "create genre")
}

// UpsertAuthor returns the id of the author named name, creating it if needed.
func UpsertAuthor(ctx context.Context, q postgres.Querier, name string) (int64, error) {
	return scanID(ctx, q, upsertAuthorSQL, name, "upsert author")
}

// UpsertGenre returns the id of the genre named name, creating it if needed.
func UpsertGenre(ctx context.Context, q postgres.Querier, name string) (int64, error) {
	return scanID(ctx, q, upsertGenreSQL, name, "upsert genre")
}

// Author returns the id of an author row for name under the dedupe policy.
func (n Names) Author(ctx context.Context, q postgres.Querier, name string) (int64, error) {
	if n.Dedupe {
		return UpsertAuthor(ctx, q, name)
	}
	return CreateAuthor(ctx, q, name)
}

// Genre returns the id of a genre row for name under the dedupe policy.
func (n Names) Genre(ctx context.Context, q postgres.Querier, name string) (int64, error) {
	if n.Dedupe {
		return UpsertGenre(ctx, q, name)
	}
	return CreateGenre(ctx, q, name)
}

func scanID(ctx context.Context, q postgres.Querier, sql, name, op string) (int64, error) {
	var id int64
	if err := q.QueryRow(ctx, sql, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s %q: %w", op, name, err)
	}
	return id, nil
}

// QueueAuthor adds the author creation to b. id is set once the batch
// results are read.
func (n Names) QueueAuthor(b *pgx.Batch, name string, id *int64) {
	queueID(b, n.authorSQL(), name, id, "author")
}

// QueueGenre adds the genre creation to b. id is set once the batch results
// are read.
func (n Names) QueueGenre(b *pgx.Batch, name string, id *int64) {
	queueID(b, n.genreSQL(), name, id, "genre")
}

func queueID(b *pgx.Batch, sql, name string, id *int64, kind string) {
	b.Queue(sql, name).QueryRow(func(row pgx.Row) error {
		if err := row.Scan(id); err != nil {
			return fmt.Errorf("create %s %q: %w", kind, name, err)
		}
		return nil
	})
}
