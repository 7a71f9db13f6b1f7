package book

import (
	"net/url"
	"strconv"
	"strings"

	"bookcatalog/internal/pagination"

	"github.com/Masterminds/squirrel"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const (
	authorSubquery = `(SELECT authors.name FROM authors JOIN book_authors ON book_authors.author_id = authors.id ` +
		`WHERE book_authors.book_id = books.id ORDER BY book_authors.author_id LIMIT 1)`
	genresSubquery = `ARRAY(SELECT genres.name FROM genres JOIN book_genres ON book_genres.genre_id = genres.id ` +
		`WHERE book_genres.book_id = books.id ORDER BY genres.name COLLATE "C")`
)

// bookColumns must stay in Book field order.
var bookColumns = []string{
	"books.id",
	"books.title",
	"COALESCE(" + authorSubquery + ", '') AS author",
	"COALESCE(books.year, 0) AS year",
	genresSubquery + " AS genres",
}

// Query holds the recognised listing options. Zero values mean absent.
type Query struct {
	Page   int
	Title  string
	Author string
	Year   *int
	Count  *int
}

// ParseQuery reads listing options from URL parameters. A missing or
// malformed page is page 1; malformed year and count are ignored.
func ParseQuery(v url.Values) Query {
	q := Query{
		Page:   pagination.ParsePage(v.Get("page")),
		Title:  strings.TrimSpace(v.Get("title")),
		Author: strings.TrimSpace(v.Get("author")),
	}
	if n, err := strconv.Atoi(strings.TrimSpace(v.Get("year"))); err == nil {
		q.Year = &n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(v.Get("count"))); err == nil {
		q.Count = &n
	}
	return q
}

// TitleContains matches books whose title contains the text, ignoring case.
type TitleContains string

func (p TitleContains) ToSql() (string, []any, error) {
	return "books.title ILIKE ?", []any{likePattern(string(p))}, nil
}

// AuthorContains matches books whose displayed author contains the text,
// ignoring case.
type AuthorContains string

func (p AuthorContains) ToSql() (string, []any, error) {
	return authorSubquery + " ILIKE ?", []any{likePattern(string(p))}, nil
}

// YearEquals matches books published in exactly that year. The argument is
// bound as bigint so years outside the column's range match nothing.
type YearEquals int

func (p YearEquals) ToSql() (string, []any, error) {
	return "books.year = ?::bigint", []any{int64(p)}, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps s for a substring match, with LIKE wildcards in s
// matched literally.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// Predicates returns the filters present in q, always in the order title,
// author, year.
func (q Query) Predicates() []squirrel.Sqlizer {
	var preds []squirrel.Sqlizer
	if q.Title != "" {
		preds = append(preds, TitleContains(q.Title))
	}
	if q.Author != "" {
		preds = append(preds, AuthorContains(q.Author))
	}
	if q.Year != nil {
		preds = append(preds, YearEquals(*q.Year))
	}
	return preds
}

// Limit is the page size, capped by a positive count.
func (q Query) Limit() int {
	if q.Count != nil && *q.Count >= 1 && *q.Count < pagination.PageSize {
		return *q.Count
	}
	return pagination.PageSize
}

func selectBooks() squirrel.SelectBuilder {
	return psql.Select(bookColumns...).From("books")
}

func where(sb squirrel.SelectBuilder, preds []squirrel.Sqlizer) squirrel.SelectBuilder {
	if len(preds) == 0 {
		return sb
	}
	return sb.Where(squirrel.And(preds))
}

// BuildListQuery returns the statement and arguments for one page of books
// matching q.
func BuildListQuery(q Query) (string, []any, error) {
	return where(selectBooks(), q.Predicates()).
		OrderBy("books.id").
		Limit(uint64(q.Limit())).
		Offset(uint64(pagination.Offset(q.Page))).
		ToSql()
}

// BuildCountQuery returns the statement counting every book matching q.
func BuildCountQuery(q Query) (string, []any, error) {
	return where(psql.Select("COUNT(*)").From("books"), q.Predicates()).ToSql()
}

func buildGetByID(id int64) (string, []any, error) {
	return selectBooks().Where(squirrel.Eq{"books.id": id}).ToSql()
}

func buildGetAt(offset int64) (string, []any, error) {
	return selectBooks().OrderBy("books.id").Limit(1).Offset(uint64(offset)).ToSql()
}

func buildByAuthor(authorID int64) (string, []any, error) {
	return selectBooks().
		Where(squirrel.Expr("EXISTS (SELECT 1 FROM book_authors WHERE book_authors.book_id = books.id AND book_authors.author_id = ?)", authorID)).
		OrderBy("books.id").
		ToSql()
}

func buildByTitle(title string, limit int) (string, []any, error) {
	return selectBooks().
		Where(TitleContains(title)).
		OrderBy("books.id").
		Limit(uint64(limit)).
		ToSql()
}
