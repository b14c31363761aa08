// Package pagination slices list responses into pages
package pagination

import (
	"net/http"
	"strconv"
)

// DefaultPerPage is the default number of items per page
const DefaultPerPage = 20

// MaxPerPage is the maximum allowed items per page
const MaxPerPage = 100

// Params represents pagination parameters
type Params struct {
	Page    int
	PerPage int
}

// Meta describes the page returned alongside a list
type Meta struct {
	Page         int `json:"page" example:"1"`
	PerPage      int `json:"per_page" example:"20"`
	TotalPages   int `json:"total_pages" example:"1"`
	TotalResults int `json:"total_results" example:"2"`
}

// ParseParams extracts pagination parameters from the query string.
// Missing or malformed values fall back to the first page of DefaultPerPage.
func ParseParams(r *http.Request) Params {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return Params{Page: page, PerPage: perPage}
}

// Offset is the index of the first item on the page
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Paginate returns the items on the requested page. A page past the end is
// empty, never nil.
func Paginate[T any](items []T, p Params) ([]T, Meta) {
	meta := Meta{
		Page:         p.Page,
		PerPage:      p.PerPage,
		TotalPages:   CalculateTotalPages(len(items), p.PerPage),
		TotalResults: len(items),
	}

	start := p.Offset()
	if start >= len(items) {
		return []T{}, meta
	}
	end := start + p.PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], meta
}

// CalculateTotalPages calculates the total number of pages
func CalculateTotalPages(totalResults, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := (totalResults + perPage - 1) / perPage
	if pages < 1 {
		return 1
	}
	return pages
}
