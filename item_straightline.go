package plot

import (
	"image/color"
	"math"
)

// ItemStraightLine is an infinite straight line through two positions.
type ItemStraightLine struct {
	ItemBase

	// Point1 and Point2 define the line; the drawn line extends beyond
	// both of them to the clip rect borders.
	Point1 *Position
	Point2 *Position

	pen         Pen
	selectedPen Pen
}

// NewItemStraightLine creates a straight line item and registers it with
// the plot.
func NewItemStraightLine(p *Plot) *ItemStraightLine {
	l := &ItemStraightLine{
		pen:         SolidPen(color.Black),
		selectedPen: Pen{Color: color.RGBA{B: 255, A: 255}, Width: 2, Style: PenSolid},
	}
	l.initItem(l, p)
	l.Point1 = l.createPosition("point1")
	l.Point2 = l.createPosition("point2")
	l.Point1.SetCoords(0, 0)
	l.Point2.SetCoords(1, 1)
	p.addItem(l)
	return l
}

// SetPen sets the line pen.
func (l *ItemStraightLine) SetPen(pen Pen) { l.pen = pen }

// SetSelectedPen sets the pen used while the item is selected.
func (l *ItemStraightLine) SetSelectedPen(pen Pen) { l.selectedPen = pen }

func (l *ItemStraightLine) mainPen() Pen {
	if l.selected {
		return l.selectedPen
	}
	return l.pen
}

// SelectTest returns the perpendicular distance from pos to the infinite
// line.
func (l *ItemStraightLine) SelectTest(pos Point) float64 {
	if !l.selectable {
		return -1
	}
	p1, p2 := l.Point1.PixelPoint(), l.Point2.PixelPoint()
	v := p2.Sub(p1)
	if v.LengthSquared() < 1e-12 {
		return p1.Distance(pos)
	}
	// distance to the unbounded line, not the segment
	mu := pos.Sub(p1).Dot(v) / v.LengthSquared()
	return p1.Add(v.Mul(mu)).Distance(pos)
}

// Draw paints the line clipped to the clip rect.
func (l *ItemStraightLine) Draw(c Canvas) {
	p1, p2 := l.Point1.PixelPoint(), l.Point2.PixelPoint()
	if p1 == p2 {
		return
	}
	start, end, visible := clipInfiniteLine(p1, p2, l.ClipRect().Expanded(l.mainPen().Width))
	if !visible {
		return
	}
	l.ApplyDefaultAntialiasingHint(c)
	c.SetPen(l.mainPen())
	c.DrawLine(start, end)
}

// clipInfiniteLine intersects the infinite line through p1 and p2 with
// the rect borders and returns the visible segment.
func clipInfiniteLine(p1, p2 Point, rect Rect) (start, end Point, visible bool) {
	v := p2.Sub(p1)
	var hits []Point
	if v.X != 0 {
		for _, x := range [2]float64{rect.Left(), rect.Right()} {
			mu := (x - p1.X) / v.X
			y := p1.Y + mu*v.Y
			if y >= rect.Top() && y <= rect.Bottom() {
				hits = append(hits, Pt(x, y))
			}
		}
	}
	if v.Y != 0 {
		for _, y := range [2]float64{rect.Top(), rect.Bottom()} {
			mu := (y - p1.Y) / v.Y
			x := p1.X + mu*v.X
			if x >= rect.Left() && x <= rect.Right() {
				hits = append(hits, Pt(x, y))
			}
		}
	}
	if len(hits) < 2 {
		return Point{}, Point{}, false
	}
	// take the two most distant intersection points; corners can produce
	// duplicates
	start, end = hits[0], hits[1]
	maxDist := start.Distance(end)
	for i := 0; i < len(hits); i++ {
		for j := i + 1; j < len(hits); j++ {
			if d := hits[i].Distance(hits[j]); d > maxDist {
				start, end, maxDist = hits[i], hits[j], d
			}
		}
	}
	if maxDist < math.SmallestNonzeroFloat64 {
		return Point{}, Point{}, false
	}
	return start, end, true
}
