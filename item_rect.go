package plot

import "image/color"

// Anchor ids of ItemRect.
const (
	rectAnchorTop = iota
	rectAnchorTopRight
	rectAnchorRight
	rectAnchorBottomRight
	rectAnchorBottom
	rectAnchorBottomLeft
	rectAnchorLeft
)

// ItemRect is a rectangle spanned by two positions, with anchors on its
// edge midpoints and remaining corners.
type ItemRect struct {
	ItemBase

	// TopLeft and BottomRight span the rectangle.
	TopLeft     *Position
	BottomRight *Position

	// Edge midpoint and corner anchors.
	Top          *Anchor
	TopRightA    *Anchor
	Right        *Anchor
	BottomRightA *Anchor
	Bottom       *Anchor
	BottomLeftA  *Anchor
	Left         *Anchor

	pen           Pen
	selectedPen   Pen
	brush         Brush
	selectedBrush Brush
}

// NewItemRect creates a rect item and registers it with the plot.
func NewItemRect(p *Plot) *ItemRect {
	r := &ItemRect{
		pen:         SolidPen(color.Black),
		selectedPen: Pen{Color: color.RGBA{B: 255, A: 255}, Width: 2, Style: PenSolid},
	}
	r.initItem(r, p)
	r.TopLeft = r.createPosition("topLeft")
	r.BottomRight = r.createPosition("bottomRight")
	r.TopLeft.SetCoords(0, 1)
	r.BottomRight.SetCoords(1, 0)
	r.Top = r.createAnchor("top", rectAnchorTop)
	r.TopRightA = r.createAnchor("topRight", rectAnchorTopRight)
	r.Right = r.createAnchor("right", rectAnchorRight)
	r.BottomRightA = r.createAnchor("bottomRightCorner", rectAnchorBottomRight)
	r.Bottom = r.createAnchor("bottom", rectAnchorBottom)
	r.BottomLeftA = r.createAnchor("bottomLeft", rectAnchorBottomLeft)
	r.Left = r.createAnchor("left", rectAnchorLeft)
	p.addItem(r)
	return r
}

// SetPen sets the outline pen.
func (r *ItemRect) SetPen(pen Pen) { r.pen = pen }

// SetSelectedPen sets the outline pen used while the item is selected.
func (r *ItemRect) SetSelectedPen(pen Pen) { r.selectedPen = pen }

// SetBrush sets the fill brush.
func (r *ItemRect) SetBrush(brush Brush) { r.brush = brush }

// SetSelectedBrush sets the fill brush used while the item is selected.
func (r *ItemRect) SetSelectedBrush(brush Brush) { r.selectedBrush = brush }

func (r *ItemRect) mainPen() Pen {
	if r.selected {
		return r.selectedPen
	}
	return r.pen
}

func (r *ItemRect) mainBrush() Brush {
	if r.selected {
		return r.selectedBrush
	}
	return r.brush
}

// rect returns the current pixel rectangle.
func (r *ItemRect) rect() Rect {
	return RectFromPoints(r.TopLeft.PixelPoint(), r.BottomRight.PixelPoint())
}

// anchorPixelPoint resolves the edge and corner anchors from the two
// defining positions.
func (r *ItemRect) anchorPixelPoint(anchorID int) Point {
	rect := r.rect()
	switch anchorID {
	case rectAnchorTop:
		return Pt(rect.Center().X, rect.Top())
	case rectAnchorTopRight:
		return rect.TopRight()
	case rectAnchorRight:
		return Pt(rect.Right(), rect.Center().Y)
	case rectAnchorBottomRight:
		return rect.BottomRight()
	case rectAnchorBottom:
		return Pt(rect.Center().X, rect.Bottom())
	case rectAnchorBottomLeft:
		return rect.BottomLeft()
	case rectAnchorLeft:
		return Pt(rect.Left(), rect.Center().Y)
	}
	return r.ItemBase.anchorPixelPoint(anchorID)
}

// SelectTest returns the distance to the rectangle outline; filled rects
// also hit on their interior, with a distance just below the selection
// tolerance.
func (r *ItemRect) SelectTest(pos Point) float64 {
	tol := 8.0
	if r.plot != nil {
		tol = r.plot.selectionTolerance
	}
	return rectSelectTest(r.rect(), pos, r.brush.Visible(), r.selectable, tol)
}

// Draw paints the rectangle.
func (r *ItemRect) Draw(c Canvas) {
	r.ApplyDefaultAntialiasingHint(c)
	c.SetPen(r.mainPen())
	c.SetBrush(r.mainBrush())
	c.DrawRect(r.rect())
}
