package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAABBEdges(t *testing.T) {
	b := NewAABB(10, 20, 5, 7)
	assert.InDelta(t, 5.0, b.Left(), 1e-9)
	assert.InDelta(t, 15.0, b.Right(), 1e-9)
	assert.InDelta(t, 13.0, b.Top(), 1e-9)
	assert.InDelta(t, 27.0, b.Bottom(), 1e-9)
}

func TestAABBOverlaps(t *testing.T) {
	a := NewAABB(0, 0, 5, 5)

	assert.True(t, a.Overlaps(NewAABB(8, 0, 5, 5)))
	assert.False(t, a.Overlaps(NewAABB(20, 0, 5, 5)))

	// Touching edges do not count as overlap
	assert.False(t, a.Overlaps(NewAABB(10, 0, 5, 5)))
}

func TestNewAABBPanicsOnNegativeExtent(t *testing.T) {
	assert.Panics(t, func() { NewAABB(0, 0, -1, 5) })
}
