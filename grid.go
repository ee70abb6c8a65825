package plot

import (
	"image/color"
	"math"
)

// Grid draws grid lines at the tick positions of one axis, optional
// sub-grid lines at the sub-tick positions, and an emphasized zero line
// where the axis crosses zero. Every axis owns exactly one grid; the
// grid is a layerable of its own so it can sit on a different layer than
// the axis (by default the "grid" layer, below everything else).
type Grid struct {
	LayerableBase

	axis *Axis

	subGridVisible bool
	antialiasedSub bool
	antialiasedZL  bool
	pen            Pen
	subGridPen     Pen
	zeroLinePen    Pen
}

func newGrid(axis *Axis) *Grid {
	g := &Grid{
		axis:        axis,
		pen:         Pen{Color: color.RGBA{R: 200, G: 200, B: 200, A: 255}, Width: 0, Style: PenDot},
		subGridPen:  Pen{Color: color.RGBA{R: 220, G: 220, B: 220, A: 255}, Width: 0, Style: PenDot},
		zeroLinePen: Pen{Color: color.RGBA{R: 200, G: 200, B: 200, A: 255}, Width: 0, Style: PenSolid},
	}
	g.initLayerable(g, axis.plot)
	g.SetAntialiased(false)
	g.SetAntialiasedSubGrid(false)
	g.SetAntialiasedZeroLine(false)
	return g
}

// SubGridVisible reports whether sub-grid lines are drawn.
func (g *Grid) SubGridVisible() bool { return g.subGridVisible }

// SetSubGridVisible sets whether sub-grid lines are drawn at the axis's
// sub-tick positions.
func (g *Grid) SetSubGridVisible(visible bool) { g.subGridVisible = visible }

// SetAntialiasedSubGrid sets whether sub-grid lines are antialiased.
func (g *Grid) SetAntialiasedSubGrid(on bool) { g.antialiasedSub = on }

// SetAntialiasedZeroLine sets whether the zero line is antialiased.
func (g *Grid) SetAntialiasedZeroLine(on bool) { g.antialiasedZL = on }

// SetPen sets the pen of the grid lines.
func (g *Grid) SetPen(pen Pen) { g.pen = pen }

// SetSubGridPen sets the pen of the sub-grid lines.
func (g *Grid) SetSubGridPen(pen Pen) { g.subGridPen = pen }

// SetZeroLinePen sets the pen of the zero line. Set a PenNone pen to
// draw the ordinary grid line at zero instead.
func (g *Grid) SetZeroLinePen(pen Pen) { g.zeroLinePen = pen }

// ApplyDefaultAntialiasingHint applies the grid line antialiasing policy
// to the canvas.
func (g *Grid) ApplyDefaultAntialiasingHint(c Canvas) {
	g.applyAntialiasingHint(c, g.Antialiased(), AEGrid)
}

// Draw paints sub-grid lines first, then the grid lines, so the grid
// stays on top of its sub-grid.
func (g *Grid) Draw(c Canvas) {
	if g.subGridVisible {
		g.drawSubGridLines(c)
	}
	g.drawGridLines(c)
}

// drawGridLines draws one line per visible tick, substituting the zero
// line pen for the tick closest to zero when a zero line is configured
// and zero is in range.
func (g *Grid) drawGridLines(c Canvas) {
	a := g.axis
	low, high := a.lowestVisibleTick, a.highestVisibleTick

	// find the zero line tick, if the zero line pen is active:
	zeroLineIndex := -1
	if g.zeroLinePen.Visible() && a.rng.Lower < 0 && a.rng.Upper > 0 {
		zeroLineTolerance := a.rng.Size() * 1e-6
		for i := low; i <= high && i < len(a.tickVector); i++ {
			if math.Abs(a.tickVector[i]) < zeroLineTolerance {
				zeroLineIndex = i
				break
			}
		}
	}

	g.applyAntialiasingHint(c, g.Antialiased(), AEGrid)
	c.SetPen(g.pen)
	for i := low; i <= high && i < len(a.tickVector); i++ {
		if i == zeroLineIndex {
			g.applyAntialiasingHint(c, g.antialiasedZL, AEZeroLine)
			c.SetPen(g.zeroLinePen)
		}
		t := a.CoordToPixel(a.tickVector[i])
		if a.Orientation() == Horizontal {
			c.DrawLine(Pt(t, a.axisRect.Top()), Pt(t, a.axisRect.Bottom()))
		} else {
			c.DrawLine(Pt(a.axisRect.Left(), t), Pt(a.axisRect.Right(), t))
		}
		if i == zeroLineIndex {
			g.applyAntialiasingHint(c, g.Antialiased(), AEGrid)
			c.SetPen(g.pen)
		}
	}
}

// drawSubGridLines draws one line per sub-tick.
func (g *Grid) drawSubGridLines(c Canvas) {
	a := g.axis
	g.applyAntialiasingHint(c, g.antialiasedSub, AESubGrid)
	c.SetPen(g.subGridPen)
	for _, st := range a.subTickVector {
		t := a.CoordToPixel(st)
		if a.Orientation() == Horizontal {
			c.DrawLine(Pt(t, a.axisRect.Top()), Pt(t, a.axisRect.Bottom()))
		} else {
			c.DrawLine(Pt(a.axisRect.Left(), t), Pt(a.axisRect.Right(), t))
		}
	}
}
