// Package query builds list filters and orderings from untrusted request
// input. Only allow-listed column identifiers and the ASC/DESC keywords
// are ever interpolated into a clause; every literal value is bound.
package query

import (
	"strings"

	"gorm.io/gorm"

	"helperdesk/internal/shared/authorization"
)

// ListQuery carries the optional search/sort/filter parameters of a
// list request, already syntactically parsed but not yet validated
// against an entity's allow-lists.
type ListQuery struct {
	Search    string
	SortBy    string
	SortOrder string
	Rank      *authorization.Rank
	Page      int
	PageSize  int
}

// Spec declares, per entity, which logical fields may be sorted on and
// which columns participate in free-text search. Column strings in a
// Spec are trusted identifiers; they are the only thing structurally
// interpolated into SQL.
type Spec struct {
	// DefaultOrder is the fail-safe ordering (primary id ascending).
	DefaultOrder string
	// Sortable maps logical sort field names to column identifiers.
	Sortable map[string]string
	// SearchText columns are matched with LOWER(col) LIKE ?.
	SearchText []string
	// SearchCast columns are numeric; matched via CAST(col AS CHAR) so a
	// search for "3" matches id 3 or a warning count of 3.
	SearchCast []string
	// RankColumn, when set, enables the exact-match rank filter.
	RankColumn string
}

// Order resolves the validated ORDER BY clause. An unrecognized or
// absent sort field silently falls back to the default ordering; an
// unrecognized direction falls back to ASC. Both are deliberate
// fail-safe defaults, never errors.
func (s Spec) Order(sortBy, sortOrder string) string {
	column, ok := s.Sortable[strings.ToLower(strings.TrimSpace(sortBy))]
	if !ok {
		return s.DefaultOrder
	}

	direction := "ASC"
	if strings.EqualFold(strings.TrimSpace(sortOrder), "DESC") {
		direction = "DESC"
	}
	return column + " " + direction
}

// Filter returns a GORM scope applying only the search and rank
// predicates. Counting queries use it without the ordering.
func (s Spec) Filter(q ListQuery) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if search := strings.TrimSpace(q.Search); search != "" {
			clause, args := s.searchPredicate(search)
			tx = tx.Where(clause, args...)
		}
		if s.RankColumn != "" && q.Rank != nil {
			tx = tx.Where(s.RankColumn+" = ?", q.Rank.String())
		}
		return tx
	}
}

// Scope applies the predicates plus the validated ordering.
func (s Spec) Scope(q ListQuery) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return s.Filter(q)(tx).Order(s.Order(q.SortBy, q.SortOrder))
	}
}

// searchPredicate ORs a case-insensitive substring match across every
// searchable column. The pattern is bound once per column.
func (s Spec) searchPredicate(search string) (string, []interface{}) {
	pattern := "%" + strings.ToLower(search) + "%"

	var parts []string
	var args []interface{}
	for _, col := range s.SearchText {
		parts = append(parts, "LOWER("+col+") LIKE ?")
		args = append(args, pattern)
	}
	for _, col := range s.SearchCast {
		parts = append(parts, "CAST("+col+" AS CHAR) LIKE ?")
		args = append(args, pattern)
	}

	return "(" + strings.Join(parts, " OR ") + ")", args
}

// Offset returns the pagination offset for the query.
func (q ListQuery) Offset() int {
	if q.Page <= 1 {
		return 0
	}
	return (q.Page - 1) * q.PageSize
}
