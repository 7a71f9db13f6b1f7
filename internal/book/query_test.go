package book

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"bookcatalog/internal/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Query
	}{
		{"empty", "", Query{Page: 1}},
		{"page", "page=3", Query{Page: 3}},
		{"bad page", "page=abc", Query{Page: 1}},
		{"negative page", "page=-2", Query{Page: 1}},
		{"filters", "title=wORld&author=+phil+&year=1953", Query{Page: 1, Title: "wORld", Author: "phil", Year: intPtr(1953)}},
		{"bad year and count", "year=soon&count=many", Query{Page: 1}},
		{"count", "count=5", Query{Page: 1, Count: intPtr(5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := url.ParseQuery(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ParseQuery(v))
		})
	}
}

func TestBuildListQuery_NoFilters(t *testing.T) {
	sql, args, err := BuildListQuery(Query{Page: 1})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sql, "SELECT books.id, books.title, COALESCE("))
	assert.NotContains(t, sql, "WHERE (")
	assert.True(t, strings.HasSuffix(sql, "FROM books ORDER BY books.id LIMIT 10 OFFSET 0"), sql)
	assert.Empty(t, args)
}

func TestBuildListQuery_Pagination(t *testing.T) {
	sql, _, err := BuildListQuery(Query{Page: 3})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(sql, "LIMIT 10 OFFSET 20"), sql)
}

func TestBuildListQuery_HugePageKeepsOffsetInRange(t *testing.T) {
	v := url.Values{"page": {"1000000000000000000"}}
	sql, _, err := BuildListQuery(ParseQuery(v))
	require.NoError(t, err)

	want := fmt.Sprintf("LIMIT 10 OFFSET %d", (pagination.MaxPage-1)*pagination.PageSize)
	assert.True(t, strings.HasSuffix(sql, want), sql)
}

func TestBuildListQuery_CountCapsLimit(t *testing.T) {
	tests := []struct {
		count *int
		limit string
	}{
		{nil, "LIMIT 10 OFFSET 10"},
		{intPtr(4), "LIMIT 4 OFFSET 10"},
		{intPtr(50), "LIMIT 10 OFFSET 10"},
		{intPtr(0), "LIMIT 10 OFFSET 10"},
	}
	for _, tt := range tests {
		sql, _, err := BuildListQuery(Query{Page: 2, Count: tt.count})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(sql, tt.limit), sql)
	}
}

func TestBuildListQuery_PredicatesInOrder(t *testing.T) {
	q := Query{Page: 1, Year: intPtr(1953), Author: "phil", Title: "th"}

	sql, args, err := BuildListQuery(q)
	require.NoError(t, err)

	where := "WHERE (books.title ILIKE $1 AND " + authorSubquery + " ILIKE $2 AND books.year = $3::bigint)"
	assert.Contains(t, sql, where)
	assert.Equal(t, []any{"%th%", "%phil%", int64(1953)}, args)
}

func TestBuildListQuery_SingleFilterStartsAtOne(t *testing.T) {
	sql, args, err := BuildListQuery(Query{Page: 1, Year: intPtr(1953)})
	require.NoError(t, err)

	assert.Contains(t, sql, "WHERE (books.year = $1::bigint)")
	assert.Equal(t, []any{int64(1953)}, args)
}

func TestBuildCountQuery(t *testing.T) {
	sql, args, err := BuildCountQuery(Query{Page: 4, Title: "world"})
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM books WHERE (books.title ILIKE $1)", sql)
	assert.Equal(t, []any{"%world%"}, args)

	sql, _, err = BuildCountQuery(Query{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM books", sql)
}

func TestLikePattern_EscapesWildcards(t *testing.T) {
	assert.Equal(t, `%50\%\_off\\%`, likePattern(`50%_off\`))
	assert.Equal(t, "%Philip%", likePattern("Philip"))
}

func TestBuildGetQueries(t *testing.T) {
	sql, args, err := buildGetByID(12)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(sql, "FROM books WHERE books.id = $1"), sql)
	assert.Equal(t, []any{int64(12)}, args)

	sql, args, err = buildGetAt(12)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(sql, "FROM books ORDER BY books.id LIMIT 1 OFFSET 12"), sql)
	assert.Empty(t, args)
}

func TestBuildSearchQueries(t *testing.T) {
	sql, args, err := buildByAuthor(7)
	require.NoError(t, err)
	assert.Contains(t, sql, "book_authors.author_id = $1")
	assert.Equal(t, []any{int64(7)}, args)

	sql, args, err = buildByTitle("dune", 100)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(sql, "WHERE books.title ILIKE $1 ORDER BY books.id LIMIT 100"), sql)
	assert.Equal(t, []any{"%dune%"}, args)
}
