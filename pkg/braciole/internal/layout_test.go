package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGridDimensionsRaggedLastRow(t *testing.T) {
	// 7 items in 3 columns: rows [0 1 2] [3 4 5] [6]
	dims := CalculateGridDimensions(1280, 720, UniformPadding(20), 3, 7)

	assert.Equal(t, 3, dims.Columns)
	assert.Equal(t, 3, dims.Rows)
	assert.Greater(t, dims.CellWidth, int32(0))
	assert.Greater(t, dims.CellHeight, int32(0))

	// Item 6 sits alone in row 2, column 0.
	r6 := dims.CellRect(6)
	r0 := dims.CellRect(0)
	assert.Equal(t, r0.X, r6.X)
	assert.Equal(t, r0.Y+2*(dims.CellHeight+dims.CellSpacing), r6.Y)
}

func TestCalculateGridDimensionsClampsColumns(t *testing.T) {
	dims := CalculateGridDimensions(640, 480, UniformPadding(10), 0, 4)
	assert.Equal(t, 1, dims.Columns)
	assert.Equal(t, 4, dims.Rows)
}

func TestCellRectRowMajorOrder(t *testing.T) {
	dims := CalculateGridDimensions(1024, 768, UniformPadding(0), 4, 8)

	for i := 0; i < 8; i++ {
		r := dims.CellRect(i)
		assert.Equal(t, dims.StartX+int32(i%4)*(dims.CellWidth+dims.CellSpacing), r.X, "index %d", i)
		assert.Equal(t, dims.StartY+int32(i/4)*(dims.CellHeight+dims.CellSpacing), r.Y, "index %d", i)
	}
}
