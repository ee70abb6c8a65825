package plot

import (
	"image/color"
	"math"
)

// ItemLine is a line segment between two freely placeable positions.
type ItemLine struct {
	ItemBase

	// Start and End define the line segment endpoints.
	Start *Position
	End   *Position

	pen         Pen
	selectedPen Pen
}

// NewItemLine creates a line item and registers it with the plot.
func NewItemLine(p *Plot) *ItemLine {
	l := &ItemLine{
		pen:         SolidPen(color.Black),
		selectedPen: Pen{Color: color.RGBA{B: 255, A: 255}, Width: 2, Style: PenSolid},
	}
	l.initItem(l, p)
	l.Start = l.createPosition("start")
	l.End = l.createPosition("end")
	l.Start.SetCoords(0, 0)
	l.End.SetCoords(1, 1)
	p.addItem(l)
	return l
}

// SetPen sets the line pen.
func (l *ItemLine) SetPen(pen Pen) { l.pen = pen }

// SetSelectedPen sets the pen used while the item is selected.
func (l *ItemLine) SetSelectedPen(pen Pen) { l.selectedPen = pen }

func (l *ItemLine) mainPen() Pen {
	if l.selected {
		return l.selectedPen
	}
	return l.pen
}

// SelectTest returns the distance from pos to the line segment.
func (l *ItemLine) SelectTest(pos Point) float64 {
	if !l.selectable {
		return -1
	}
	return math.Sqrt(distSqrToLine(l.Start.PixelPoint(), l.End.PixelPoint(), pos))
}

// Draw paints the line segment.
func (l *ItemLine) Draw(c Canvas) {
	l.ApplyDefaultAntialiasingHint(c)
	c.SetPen(l.mainPen())
	c.DrawLine(l.Start.PixelPoint(), l.End.PixelPoint())
}
