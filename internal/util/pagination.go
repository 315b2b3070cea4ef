package util

import (
	"math"
	"strconv"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage keeps (page-1)*size inside int.
	MaxPage = math.MaxInt / MaxPageSize
)

func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func Calculate(page, size int) (offset int, limit int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	offset = (page - 1) * size
	limit = size
	return offset, limit
}

type Page struct {
	Number int
	Offset int
	Limit  int
}

// ParsePage reads the page and size query values, falling back to defaults
// for anything missing or malformed.
func ParsePage(page, size string) Page {
	n := ParseIntDefault(page, 1)
	if n < 1 {
		n = 1
	}
	if n > MaxPage {
		n = MaxPage
	}
	offset, limit := Calculate(n, ParseIntDefault(size, DefaultPageSize))
	return Page{Number: n, Offset: offset, Limit: limit}
}

type Meta struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

func (p Page) Meta(total int64) Meta {
	return Meta{
		Page:       p.Number,
		Size:       p.Limit,
		Total:      total,
		TotalPages: (total + int64(p.Limit) - 1) / int64(p.Limit),
		HasPrev:    p.Number > 1,
		HasNext:    int64(p.Offset+p.Limit) < total,
	}
}
