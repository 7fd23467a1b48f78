package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccordionToggle(t *testing.T) {
	a := NewAccordion(7)
	assert.Equal(t, Closed, a.Open)

	a = a.Toggle(2)
	assert.True(t, a.IsOpen(2))

	// opening another entry collapses the first
	a = a.Toggle(5)
	assert.True(t, a.IsOpen(5))
	assert.False(t, a.IsOpen(2))

	// toggling the open entry collapses it
	a = a.Toggle(5)
	assert.Equal(t, Closed, a.Open)

	// out of range indexes are ignored
	a = a.Toggle(3).Toggle(7).Toggle(-1)
	assert.Equal(t, 3, a.Open)
}

func TestAccordionAtMostOneOpen(t *testing.T) {
	a := NewAccordion(7)
	for _, i := range []int{0, 6, 3, 3, 1, 1, 4, 9} {
		a = a.Toggle(i)
		open := 0
		for j := 0; j < a.Size; j++ {
			if a.IsOpen(j) {
				open++
			}
		}
		assert.LessOrEqual(t, open, 1)
	}
}

func TestParseAccordion(t *testing.T) {
	tests := []struct {
		open string
		want int
	}{
		{"", Closed},
		{"-1", Closed},
		{"0", 0},
		{"6", 6},
		{"7", Closed},
		{"two", Closed},
	}
	for _, tt := range tests {
		t.Run(tt.open, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAccordion(tt.open, 7).Open)
		})
	}
}
