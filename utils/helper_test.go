package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage(t *testing.T) {
	cases := []struct {
		name                string
		page, limit         int
		wantLimit, wantSkip int
	}{
		{"defaults", 0, 0, 10, 0},
		{"second page", 2, 5, 5, 5},
		{"limit capped", 1, 500, 100, 0},
		{"negative page", -3, 20, 20, 0},
		{"huge page clamped", math.MaxInt, 100, 100, (MaxPage - 1) * 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			limit, offset := Page(tc.page, tc.limit, 10, 100)
			assert.Equal(t, tc.wantLimit, limit)
			assert.Equal(t, tc.wantSkip, offset)
			assert.GreaterOrEqual(t, offset, 0)
		})
	}
}
