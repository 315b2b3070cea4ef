package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		name          string
		page, size    int
		offset, limit int
	}{
		{"defaults", 0, 0, 0, DefaultPageSize},
		{"second page", 2, 10, 10, 10},
		{"size capped", 1, 500, 0, MaxPageSize},
		{"negative page", -3, 5, 0, 5},
		{"page clamped", math.MaxInt, 100, (MaxPage - 1) * 100, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			offset, limit := Calculate(tc.page, tc.size)
			assert.Equal(t, tc.offset, offset)
			assert.Equal(t, tc.limit, limit)
		})
	}
}

func TestParsePage_Meta(t *testing.T) {
	p := ParsePage("2", "10")
	m := p.Meta(25)

	assert.Equal(t, 2, m.Page)
	assert.Equal(t, 10, m.Size)
	assert.Equal(t, int64(3), m.TotalPages)
	assert.True(t, m.HasPrev)
	assert.True(t, m.HasNext)

	last := ParsePage("3", "10").Meta(25)
	assert.False(t, last.HasNext)
}

func TestParsePage_Garbage(t *testing.T) {
	p := ParsePage("abc", "-1")
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, DefaultPageSize, p.Limit)
	assert.Equal(t, int64(0), p.Meta(0).TotalPages)
}

func TestParsePage_HugePage(t *testing.T) {
	p := ParsePage("100000000000000000", "100")
	assert.Equal(t, MaxPage, p.Number)
	assert.Equal(t, 100, p.Limit)
	assert.Positive(t, p.Offset)
	assert.Equal(t, (MaxPage-1)*100, p.Offset)

	m := p.Meta(5)
	assert.Equal(t, MaxPage, m.Page)
	assert.False(t, m.HasNext)
}
