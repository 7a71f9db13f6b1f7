package pagination

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// PageSize is the fixed number of records per page for every listing.
const PageSize = 10

// MaxPage is the last page whose offset still fits in an int.
const MaxPage = math.MaxInt / PageSize

// ParsePage coerces a raw page parameter. Absent, non-numeric and
// non-positive values all mean the first page; pages past MaxPage,
// including ones too large for an int, are clamped to MaxPage.
func ParsePage(raw string) int {
	raw = strings.TrimSpace(raw)
	page, err := strconv.Atoi(raw)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange && !strings.HasPrefix(raw, "-") {
			return MaxPage
		}
		return 1
	}
	if page < 1 {
		return 1
	}
	return min(page, MaxPage)
}

// Offset returns the number of rows skipped before page.
func Offset(page int) int {
	page = max(1, min(page, MaxPage))
	return (page - 1) * PageSize
}
