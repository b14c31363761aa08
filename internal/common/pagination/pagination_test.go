package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		query string
		want  Params
	}{
		{"", Params{Page: 1, PerPage: DefaultPerPage}},
		{"?page=3&per_page=5", Params{Page: 3, PerPage: 5}},
		{"?page=0&per_page=-2", Params{Page: 1, PerPage: DefaultPerPage}},
		{"?page=two&per_page=many", Params{Page: 1, PerPage: DefaultPerPage}},
		{"?per_page=1000", Params{Page: 1, PerPage: MaxPerPage}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/pipelines"+tt.query, nil)
			assert.Equal(t, tt.want, ParseParams(r))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := Paginate(items, Params{Page: 2, PerPage: 2})
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, Meta{Page: 2, PerPage: 2, TotalPages: 3, TotalResults: 5}, meta)

	page, _ = Paginate(items, Params{Page: 3, PerPage: 2})
	assert.Equal(t, []int{5}, page)

	page, meta = Paginate(items, Params{Page: 9, PerPage: 2})
	assert.NotNil(t, page)
	assert.Empty(t, page)
	assert.Equal(t, 5, meta.TotalResults)

	page, meta = Paginate([]int{}, Params{Page: 1, PerPage: 20})
	assert.Empty(t, page)
	assert.Equal(t, 1, meta.TotalPages)
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(10, 0))
	assert.Equal(t, 1, CalculateTotalPages(0, 20))
	assert.Equal(t, 1, CalculateTotalPages(20, 20))
	assert.Equal(t, 2, CalculateTotalPages(21, 20))
}
