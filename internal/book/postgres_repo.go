package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/platform/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const searchLimit = 100

const (
	createBookSQL     = `INSERT INTO books (title, year) VALUES ($1, $2) RETURNING id`
	joinBookAuthorSQL = `INSERT INTO book_authors (book_id, author_id) VALUES ($1, $2)`
	joinBookGenreSQL  = `INSERT INTO book_genres (book_id, genre_id) VALUES ($1, $2)`
	updateBookSQL     = `UPDATE books SET title = $2, year = COALESCE($3, year) WHERE id = $1`
	unlinkAuthorsSQL  = `DELETE FROM book_authors WHERE book_id = $1`
	unlinkGenresSQL   = `DELETE FROM book_genres WHERE book_id = $1`
	deleteBookSQL     = `DELETE FROM books WHERE id = $1`
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	names   catalog.Names
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, names catalog.Names, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, names: names, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// CreateBook inserts one book row and returns its id.
func CreateBook(ctx context.Context, q postgres.Querier, title string, year *int) (int64, error) {
	var id int64
	if err := q.QueryRow(ctx, createBookSQL, title, year).Scan(&id); err != nil {
		return 0, fmt.Errorf("create book: %w", err)
	}
	return id, nil
}

// JoinBookAuthor links a book to an author. Duplicate links are not guarded.
func JoinBookAuthor(ctx context.Context, q postgres.Querier, bookID, authorID int64) error {
	if _, err := q.Exec(ctx, joinBookAuthorSQL, bookID, authorID); err != nil {
		return fmt.Errorf("join book %d author %d: %w", bookID, authorID, err)
	}
	return nil
}

// JoinBookGenre links a book to a genre. Duplicate links are not guarded.
func JoinBookGenre(ctx context.Context, q postgres.Querier, bookID, genreID int64) error {
	if _, err := q.Exec(ctx, joinBookGenreSQL, bookID, genreID); err != nil {
		return fmt.Errorf("join book %d genre %d: %w", bookID, genreID, err)
	}
	return nil
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Book, int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	countSQL, countArgs, err := BuildCountQuery(q)
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	sql, args, err := BuildListQuery(q)
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}
	books, err := queryBooks(ctx, r.db, sql, args)
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	return books, total, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return getByID(ctx, r.db, id)
}

// GetAt returns the book at a zero-based position in id order.
func (r *PostgresRepo) GetAt(ctx context.Context, offset int64) (Book, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	sql, args, err := buildGetAt(offset)
	if err != nil {
		return Book{}, fmt.Errorf("build get query: %w", err)
	}
	return queryBook(ctx, r.db, sql, args)
}

// Create stores a book with its author and genres in one transaction.
// Book, author and genre rows are pipelined in a first batch and the join
// rows in a second one.
func (r *PostgresRepo) Create(ctx context.Context, in Input) (Book, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	out := fromInput(0, in)
	err := postgres.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var authorID int64
		genreIDs := make([]int64, len(out.Genres))

		rows := &pgx.Batch{}
		rows.Queue(createBookSQL, out.Title, in.Year).QueryRow(func(row pgx.Row) error {
			if err := row.Scan(&out.ID); err != nil {
				return fmt.Errorf("create book: %w", err)
			}
			return nil
		})
		if out.Author != "" {
			r.names.QueueAuthor(rows, out.Author, &authorID)
		}
		for i, g := range out.Genres {
			r.names.QueueGenre(rows, g, &genreIDs[i])
		}
		if err := tx.SendBatch(ctx, rows).Close(); err != nil {
			return err
		}

		joins := &pgx.Batch{}
		if out.Author != "" {
			joins.Queue(joinBookAuthorSQL, out.ID, authorID)
		}
		for _, id := range genreIDs {
			joins.Queue(joinBookGenreSQL, out.ID, id)
		}
		if err := execBatch(ctx, tx, joins); err != nil {
			return fmt.Errorf("join book %d: %w", out.ID, err)
		}
		return nil
	})
	if err != nil {
		return Book{}, err
	}
	return out, nil
}

// Update rewrites title and year, and replaces the author or genre links
// when the input carries them.
func (r *PostgresRepo) Update(ctx context.Context, id int64, in Input) (Book, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var out Book
	err := postgres.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, updateBookSQL, id, strings.TrimSpace(in.Title), in.Year)
		if err != nil {
			return fmt.Errorf("update book %d: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}

		if in.Author != nil {
			if _, err := tx.Exec(ctx, unlinkAuthorsSQL, id); err != nil {
				return fmt.Errorf("unlink authors of book %d: %w", id, err)
			}
			if name := in.AuthorName(); name != "" {
				authorID, err := r.names.Author(ctx, tx, name)
				if err != nil {
					return err
				}
				if err := JoinBookAuthor(ctx, tx, id, authorID); err != nil {
					return err
				}
			}
		}

		if in.Genres != nil {
			if _, err := tx.Exec(ctx, unlinkGenresSQL, id); err != nil {
				return fmt.Errorf("unlink genres of book %d: %w", id, err)
			}
			for _, name := range NormalizeGenres(in.Genres) {
				genreID, err := r.names.Genre(ctx, tx, name)
				if err != nil {
					return err
				}
				if err := JoinBookGenre(ctx, tx, id, genreID); err != nil {
					return err
				}
			}
		}

		out, err = getByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return Book{}, err
	}
	return out, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return postgres.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		b := &pgx.Batch{}
		b.Queue(unlinkAuthorsSQL, id)
		b.Queue(unlinkGenresSQL, id)
		b.Queue(deleteBookSQL, id)

		br := tx.SendBatch(ctx, b)
		var deleted int64
		for range b.Len() {
			tag, err := br.Exec()
			if err != nil {
				br.Close()
				return fmt.Errorf("delete book %d: %w", id, err)
			}
			deleted = tag.RowsAffected()
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("delete book %d: %w", id, err)
		}
		if deleted == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *PostgresRepo) SearchByAuthor(ctx context.Context, authorID int64) ([]Book, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	sql, args, err := buildByAuthor(authorID)
	if err != nil {
		return nil, fmt.Errorf("build author search: %w", err)
	}
	books, err := queryBooks(ctx, r.db, sql, args)
	if err != nil {
		return nil, fmt.Errorf("search books by author %d: %w", authorID, err)
	}
	return books, nil
}

func (r *PostgresRepo) SearchByTitle(ctx context.Context, title string) ([]Book, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	sql, args, err := buildByTitle(title, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("build title search: %w", err)
	}
	books, err := queryBooks(ctx, r.db, sql, args)
	if err != nil {
		return nil, fmt.Errorf("search books by title: %w", err)
	}
	return books, nil
}

func getByID(ctx context.Context, q postgres.Querier, id int64) (Book, error) {
	sql, args, err := buildGetByID(id)
	if err != nil {
		return Book{}, fmt.Errorf("build get query: %w", err)
	}
	return queryBook(ctx, q, sql, args)
}

func queryBook(ctx context.Context, q postgres.Querier, sql string, args []any) (Book, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return Book{}, fmt.Errorf("get book: %w", err)
	}
	b, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[Book])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("scan book: %w", err)
	}
	return withGenres(b), nil
}

func queryBooks(ctx context.Context, q postgres.Querier, sql string, args []any) ([]Book, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	books, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Book])
	if err != nil {
		return nil, err
	}
	out := make([]Book, 0, len(books))
	for _, b := range books {
		out = append(out, withGenres(b))
	}
	return out, nil
}

func withGenres(b Book) Book {
	if b.Genres == nil {
		b.Genres = []string{}
	}
	return b
}

func execBatch(ctx context.Context, q postgres.Querier, b *pgx.Batch) error {
	if b.Len() == 0 {
		return nil
	}
	br := q.SendBatch(ctx, b)
	for range b.Len() {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return err
		}
	}
	return br.Close()
}
