package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 6, 13)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 6, p.Offset())
}

func TestNewPaginationDefaults(t *testing.T) {
	p := NewPagination(0, 0, 13)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 6, p.PerPage)
	assert.Equal(t, 0, p.Offset())
}

func TestNewPaginationCeiling(t *testing.T) {
	cases := []struct {
		total int
		want  int
	}{
		{0, 0},
		{1, 1},
		{6, 1},
		{7, 2},
		{12, 2},
		{13, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NewPagination(1, 6, tc.total).TotalPages, "total=%d", tc.total)
	}
}
