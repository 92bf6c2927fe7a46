package internal

import "github.com/veandco/go-sdl2/sdl"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// GridDimensions holds calculated grid cell geometry.
// This is computed once from window dimensions and reused per frame.
type GridDimensions struct {
	WindowWidth  int32
	WindowHeight int32
	StartX       int32
	StartY       int32
	CellWidth    int32
	CellHeight   int32
	CellSpacing  int32
	Columns      int
	Rows         int
}

// CalculateGridDimensions computes cell geometry for a row-major grid of
// itemCount items laid out in rows of columns cells. The last row may be
// ragged; its cells keep the same size as full rows.
func CalculateGridDimensions(windowWidth, windowHeight int32, margins Padding, columns, itemCount int) GridDimensions {
	if columns < 1 {
		columns = 1
	}

	rows := (itemCount + columns - 1) / columns
	if rows < 1 {
		rows = 1
	}

	spacing := int32(6)
	contentWidth := windowWidth - margins.Left - margins.Right
	contentHeight := windowHeight - margins.Top - margins.Bottom

	cellWidth := (contentWidth - spacing*int32(columns-1)) / int32(columns)
	cellHeight := (contentHeight - spacing*int32(rows-1)) / int32(rows)

	return GridDimensions{
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		StartX:       margins.Left,
		StartY:       margins.Top,
		CellWidth:    cellWidth,
		CellHeight:   cellHeight,
		CellSpacing:  spacing,
		Columns:      columns,
		Rows:         rows,
	}
}

// CellRect returns the rectangle for the cell at the given flat index.
func (d GridDimensions) CellRect(index int) sdl.Rect {
	row := index / d.Columns
	col := index % d.Columns

	return sdl.Rect{
		X: d.StartX + int32(col)*(d.CellWidth+d.CellSpacing),
		Y: d.StartY + int32(row)*(d.CellHeight+d.CellSpacing),
		W: d.CellWidth,
		H: d.CellHeight,
	}
}
