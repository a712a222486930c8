package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)

func TestYearCandidates(t *testing.T) {
	tests := []struct {
		name       string
		yy, mm, dd int
		now        time.Time
		expected   []int
	}{
		{
			name: "ambiguous between both centuries",
			yy:   5, mm: 3, dd: 10,
			now:      now,
			expected: []int{1905, 2005},
		},
		{
			name: "future century completion dropped",
			yy:   93, mm: 4, dd: 1,
			now:      now,
			expected: []int{1993},
		},
		{
			name: "leap day only real in 2000",
			yy:   0, mm: 2, dd: 29,
			now:      now,
			expected: []int{2000},
		},
		{
			name: "leap day real in both 1904 and 2004",
			yy:   4, mm: 2, dd: 29,
			now:      now,
			expected: []int{1904, 2004},
		},
		{
			name: "impossible month",
			yy:   93, mm: 13, dd: 1,
			now:      now,
			expected: nil,
		},
		{
			name: "day zero",
			yy:   93, mm: 4, dd: 0,
			now:      now,
			expected: nil,
		},
		{
			name: "april has thirty days",
			yy:   93, mm: 4, dd: 31,
			now:      now,
			expected: nil,
		},
		{
			name: "both completions in the future",
			yy:   96, mm: 1, dd: 1,
			now:      time.Date(1995, time.June, 15, 0, 0, 0, 0, time.UTC),
			expected: nil,
		},
		{
			name: "tomorrow survives via the one-day slack",
			yy:   26, mm: 8, dd: 28,
			now:      now,
			expected: []int{1926, 2026},
		},
		{
			name: "two days out is rejected",
			yy:   26, mm: 8, dd: 29,
			now:      now,
			expected: []int{1926},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, YearCandidates(tt.yy, tt.mm, tt.dd, tt.now))
		})
	}
}

func TestYearNotAfterCutoff(t *testing.T) {
	assert.True(t, YearNotAfterCutoff(1999, now))
	assert.True(t, YearNotAfterCutoff(2026, now))
	assert.False(t, YearNotAfterCutoff(2027, now))
	// December 31 23:00: the new year starts within the slack window.
	eve := time.Date(2026, time.December, 31, 23, 0, 0, 0, time.UTC)
	assert.True(t, YearNotAfterCutoff(2027, eve))
}
