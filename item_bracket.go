package plot

import (
	"image/color"
	"math"
)

// BracketStyle defines the shape of an ItemBracket.
type BracketStyle int

const (
	// BracketSquare draws a rectangular bracket.
	BracketSquare BracketStyle = iota
	// BracketRound draws a bracket of two smooth arcs.
	BracketRound
	// BracketCurly draws a curly brace.
	BracketCurly
)

// Anchor ids of ItemBracket.
const bracketAnchorCenter = 0

// ItemBracket is a bracket spanning two positions, embracing the area
// left of the direction from Left to Right. Its center anchor sits at
// the bracket tip, which items like text labels attach to.
type ItemBracket struct {
	ItemBase

	// Left and Right are the bracket endpoints.
	Left  *Position
	Right *Position

	// Center is the bracket tip.
	Center *Anchor

	pen         Pen
	selectedPen Pen
	length      float64
	style       BracketStyle
}

// NewItemBracket creates a bracket item and registers it with the plot.
func NewItemBracket(p *Plot) *ItemBracket {
	b := &ItemBracket{
		pen:         SolidPen(color.Black),
		selectedPen: Pen{Color: color.RGBA{B: 255, A: 255}, Width: 2, Style: PenSolid},
		length:      8,
	}
	b.initItem(b, p)
	b.Left = b.createPosition("left")
	b.Right = b.createPosition("right")
	b.Center = b.createAnchor("center", bracketAnchorCenter)
	p.addItem(b)
	return b
}

// SetPen sets the bracket pen.
func (b *ItemBracket) SetPen(pen Pen) { b.pen = pen }

// SetSelectedPen sets the pen used while the item is selected.
func (b *ItemBracket) SetSelectedPen(pen Pen) { b.selectedPen = pen }

// SetLength sets how far the bracket extends from its baseline, in
// pixels.
func (b *ItemBracket) SetLength(length float64) { b.length = length }

// SetStyle sets the bracket shape.
func (b *ItemBracket) SetStyle(style BracketStyle) { b.style = style }

func (b *ItemBracket) mainPen() Pen {
	if b.selected {
		return b.selectedPen
	}
	return b.pen
}

// geometry returns the baseline direction and the outward normal of the
// bracket, both unit vectors, and reports whether the endpoints are
// distinct.
func (b *ItemBracket) geometry() (left, right, dir, normal Point, ok bool) {
	left, right = b.Left.PixelPoint(), b.Right.PixelPoint()
	v := right.Sub(left)
	length := v.Length()
	if length < 1e-9 {
		return left, right, Point{}, Point{}, false
	}
	dir = v.Mul(1 / length)
	normal = Pt(dir.Y, -dir.X)
	return left, right, dir, normal, true
}

// anchorPixelPoint resolves the center anchor at the bracket tip.
func (b *ItemBracket) anchorPixelPoint(anchorID int) Point {
	if anchorID == bracketAnchorCenter {
		left, right, _, normal, ok := b.geometry()
		mid := left.Add(right).Mul(0.5)
		if !ok {
			return mid
		}
		return mid.Add(normal.Mul(b.length))
	}
	return b.ItemBase.anchorPixelPoint(anchorID)
}

// SelectTest returns the distance to the bracket baseline shifted to the
// tip depth, which approximates the drawn shape for all styles.
func (b *ItemBracket) SelectTest(pos Point) float64 {
	if !b.selectable {
		return -1
	}
	left, right, _, normal, ok := b.geometry()
	if !ok {
		return left.Distance(pos)
	}
	shift := normal.Mul(b.length / 2)
	return math.Sqrt(distSqrToLine(left.Add(shift), right.Add(shift), pos))
}

// Draw paints the bracket.
func (b *ItemBracket) Draw(c Canvas) {
	left, right, dir, normal, ok := b.geometry()
	if !ok {
		return
	}
	b.ApplyDefaultAntialiasingHint(c)
	c.SetPen(b.mainPen())
	c.SetBrush(Brush{})

	out := normal.Mul(b.length)
	switch b.style {
	case BracketSquare:
		c.DrawPolyline([]Point{left, left.Add(out), right.Add(out), right})
	case BracketRound:
		// approximate the arcs with short polylines
		c.DrawPolyline(b.roundPath(left, right, dir, out))
	case BracketCurly:
		mid := left.Add(right).Mul(0.5)
		tip := mid.Add(out)
		span := right.Sub(left).Length()
		ear := dir.Mul(math.Min(b.length, span/4))
		c.DrawPolyline([]Point{left, left.Add(out.Mul(0.5)).Add(ear), tip.Sub(ear), tip})
		c.DrawPolyline([]Point{right, right.Add(out.Mul(0.5)).Sub(ear), tip.Add(ear), tip})
	}
}

// roundPath samples the two quarter arcs of a round bracket.
func (b *ItemBracket) roundPath(left, right, dir, out Point) []Point {
	const steps = 8
	span := right.Sub(left).Length()
	ear := math.Min(b.length, span/4)
	pts := make([]Point, 0, 2*steps+2)
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		sin, cos := math.Sincos(t * math.Pi / 2)
		pts = append(pts, left.Add(out.Mul(sin)).Add(dir.Mul(ear*(1-cos))))
	}
	for i := steps; i >= 0; i-- {
		t := float64(i) / steps
		sin, cos := math.Sincos(t * math.Pi / 2)
		pts = append(pts, right.Add(out.Mul(sin)).Sub(dir.Mul(ear*(1-cos))))
	}
	return pts
}
