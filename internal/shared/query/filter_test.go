package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSpec = Spec{
	DefaultOrder: "helpers.id ASC",
	Sortable: map[string]string{
		"id":            "helpers.id",
		"name":          "helpers.name",
		"warning_count": "helpers.warning_count",
	},
	SearchText: []string{"helpers.name"},
	SearchCast: []string{"helpers.id", "helpers.warning_count"},
	RankColumn: "helpers.rank",
}

func TestSpec_Order(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		expected  string
	}{
		{"known field ascending", "name", "asc", "helpers.name ASC"},
		{"known field descending", "name", "DESC", "helpers.name DESC"},
		{"direction case-insensitive", "id", "dEsC", "helpers.id DESC"},
		{"sort field case-insensitive", "NAME", "asc", "helpers.name ASC"},
		{"unknown field falls back to default", "password_hash", "desc", "helpers.id ASC"},
		{"empty field falls back to default", "", "desc", "helpers.id ASC"},
		{"unknown direction falls back to ASC", "name", "sideways", "helpers.name ASC"},
		{"injection attempt falls back to default", "id; DROP TABLE helpers", "asc", "helpers.id ASC"},
		{"surrounding whitespace trimmed", " name ", " desc ", "helpers.name DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, testSpec.Order(tt.sortBy, tt.sortOrder))
		})
	}
}

func TestSpec_SearchPredicate(t *testing.T) {
	clause, args := testSpec.searchPredicate("Bob")

	assert.Equal(t, "(LOWER(helpers.name) LIKE ? OR CAST(helpers.id AS CHAR) LIKE ? OR CAST(helpers.warning_count AS CHAR) LIKE ?)", clause)
	assert.Len(t, args, 3)
	for _, arg := range args {
		assert.Equal(t, "%bob%", arg)
	}
}

func TestListQuery_Offset(t *testing.T) {
	assert.Equal(t, 0, ListQuery{Page: 0, PageSize: 20}.Offset())
	assert.Equal(t, 0, ListQuery{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 20, ListQuery{Page: 2, PageSize: 20}.Offset())
	assert.Equal(t, 90, ListQuery{Page: 10, PageSize: 10}.Offset())
}
