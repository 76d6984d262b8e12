package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollides(t *testing.T) {
	paddle := Rect{X: 100, Y: 100, Width: 75, Height: 15}

	tests := []struct {
		name     string
		ball     Rect
		expected bool
	}{
		{"inside", Rect{X: 120, Y: 105, Width: 15, Height: 15}, true},
		{"overlap left edge", Rect{X: 90, Y: 100, Width: 15, Height: 15}, true},
		{"overlap bottom edge", Rect{X: 120, Y: 110, Width: 15, Height: 15}, true},
		{"touching left edge", Rect{X: 85, Y: 100, Width: 15, Height: 15}, false},
		{"touching right edge", Rect{X: 175, Y: 100, Width: 15, Height: 15}, false},
		{"touching top edge", Rect{X: 120, Y: 85, Width: 15, Height: 15}, false},
		{"touching bottom edge", Rect{X: 120, Y: 115, Width: 15, Height: 15}, false},
		{"far away", Rect{X: 500, Y: 500, Width: 15, Height: 15}, false},
		{"same column different row", Rect{X: 120, Y: 300, Width: 15, Height: 15}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Collides(tt.ball, paddle))
			assert.Equal(t, tt.expected, Collides(paddle, tt.ball))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 15.0, clamp(3, 15, 710))
	assert.Equal(t, 710.0, clamp(800, 15, 710))
	assert.Equal(t, 300.0, clamp(300, 15, 710))
}
