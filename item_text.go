package plot

import (
	"image/color"
	"math"
)

// Anchor ids of ItemText.
const (
	textAnchorTopLeft = iota
	textAnchorTop
	textAnchorTopRight
	textAnchorRight
	textAnchorBottomRight
	textAnchorBottom
	textAnchorBottomLeft
	textAnchorLeft
)

// ItemText is a text label placed by a single position, with optional
// rotation, padding, frame and fill. Its anchors sit on the corners and
// edge midpoints of the padded text box.
type ItemText struct {
	ItemBase

	// Pos places the text according to the position alignment.
	Pos *Position

	TopLeft     *Anchor
	Top         *Anchor
	TopRight    *Anchor
	Right       *Anchor
	BottomRight *Anchor
	Bottom      *Anchor
	BottomLeft  *Anchor
	Left        *Anchor

	text          string
	font          Font
	selectedFont  Font
	textColor     color.Color
	selectedColor color.Color
	pen           Pen
	selectedPen   Pen
	brush         Brush
	selectedBrush Brush
	align         TextAlign
	rotation      float64
	padding       float64
}

// NewItemText creates a text item and registers it with the plot.
func NewItemText(p *Plot) *ItemText {
	t := &ItemText{
		font:          DefaultFont,
		selectedFont:  Font{Size: DefaultFont.Size, Bold: true},
		textColor:     color.Black,
		selectedColor: color.RGBA{B: 255, A: 255},
		align:         AlignCenter,
	}
	t.initItem(t, p)
	t.Pos = t.createPosition("position")
	t.TopLeft = t.createAnchor("topLeft", textAnchorTopLeft)
	t.Top = t.createAnchor("top", textAnchorTop)
	t.TopRight = t.createAnchor("topRight", textAnchorTopRight)
	t.Right = t.createAnchor("right", textAnchorRight)
	t.BottomRight = t.createAnchor("bottomRight", textAnchorBottomRight)
	t.Bottom = t.createAnchor("bottom", textAnchorBottom)
	t.BottomLeft = t.createAnchor("bottomLeft", textAnchorBottomLeft)
	t.Left = t.createAnchor("left", textAnchorLeft)
	p.addItem(t)
	return t
}

// SetText sets the displayed text.
func (t *ItemText) SetText(text string) { t.text = text }

// Text returns the displayed text.
func (t *ItemText) Text() string { return t.text }

// SetFont sets the text font.
func (t *ItemText) SetFont(f Font) { t.font = f }

// SetColor sets the text color.
func (t *ItemText) SetColor(c color.Color) { t.textColor = c }

// SetPen sets the pen of the frame around the text. The zero pen draws
// no frame.
func (t *ItemText) SetPen(pen Pen) { t.pen = pen }

// SetSelectedPen sets the frame pen used while the item is selected.
func (t *ItemText) SetSelectedPen(pen Pen) { t.selectedPen = pen }

// SetBrush sets the brush filling the text box.
func (t *ItemText) SetBrush(brush Brush) { t.brush = brush }

// SetTextAlignment sets how the text box is placed relative to Pos.
func (t *ItemText) SetTextAlignment(align TextAlign) { t.align = align }

// SetRotation sets the text rotation in degrees.
func (t *ItemText) SetRotation(degrees float64) { t.rotation = degrees }

// SetPadding sets the distance between the text and its frame.
func (t *ItemText) SetPadding(padding float64) { t.padding = padding }

func (t *ItemText) mainPen() Pen {
	if t.selected {
		return t.selectedPen
	}
	return t.pen
}

func (t *ItemText) mainBrush() Brush {
	if t.selected {
		return t.selectedBrush
	}
	return t.brush
}

func (t *ItemText) mainFont() Font {
	if t.selected {
		return t.selectedFont
	}
	return t.font
}

func (t *ItemText) mainColor() color.Color {
	if t.selected {
		return t.selectedColor
	}
	return t.textColor
}

// textBox computes the unrotated pixel box of the padded text, aligned
// relative to Pos. Text extent falls back to a nominal estimate when the
// plot has no canvas yet.
func (t *ItemText) textBox() Rect {
	w := float64(len(t.text)) * t.font.Size * 0.6
	h := t.font.Size
	if t.plot != nil && t.plot.canvas != nil {
		w, h = t.plot.canvas.MeasureText(t.text, t.mainFont())
	}
	w += 2 * t.padding
	h += 2 * t.padding

	p := t.Pos.PixelPoint()
	switch t.align {
	case AlignTopLeft:
		return R(p.X, p.Y, w, h)
	case AlignTopCenter:
		return R(p.X-w/2, p.Y, w, h)
	case AlignBottomCenter:
		return R(p.X-w/2, p.Y-h, w, h)
	case AlignCenterLeft:
		return R(p.X, p.Y-h/2, w, h)
	case AlignCenterRight:
		return R(p.X-w, p.Y-h/2, w, h)
	default:
		return R(p.X-w/2, p.Y-h/2, w, h)
	}
}

// anchorPixelPoint resolves the text box anchors, rotating them around
// Pos along with the text.
func (t *ItemText) anchorPixelPoint(anchorID int) Point {
	box := t.textBox()
	var pt Point
	switch anchorID {
	case textAnchorTopLeft:
		pt = box.TopLeft()
	case textAnchorTop:
		pt = Pt(box.Center().X, box.Top())
	case textAnchorTopRight:
		pt = box.TopRight()
	case textAnchorRight:
		pt = Pt(box.Right(), box.Center().Y)
	case textAnchorBottomRight:
		pt = box.BottomRight()
	case textAnchorBottom:
		pt = Pt(box.Center().X, box.Bottom())
	case textAnchorBottomLeft:
		pt = box.BottomLeft()
	case textAnchorLeft:
		pt = Pt(box.Left(), box.Center().Y)
	default:
		return t.ItemBase.anchorPixelPoint(anchorID)
	}
	if t.rotation != 0 {
		pt = rotateAround(pt, t.Pos.PixelPoint(), t.rotation)
	}
	return pt
}

// SelectTest returns the distance to the text box; the interior hits
// with a distance just below the selection tolerance. The test is done
// in the text's rotated frame.
func (t *ItemText) SelectTest(pos Point) float64 {
	if !t.selectable {
		return -1
	}
	tol := 8.0
	if t.plot != nil {
		tol = t.plot.selectionTolerance
	}
	if t.rotation != 0 {
		pos = rotateAround(pos, t.Pos.PixelPoint(), -t.rotation)
	}
	return rectSelectTest(t.textBox(), pos, true, true, tol)
}

// Draw paints fill and frame of the text box, then the text.
func (t *ItemText) Draw(c Canvas) {
	t.ApplyDefaultAntialiasingHint(c)
	box := t.textBox()
	if t.mainBrush().Visible() || t.mainPen().Visible() {
		c.SetPen(t.mainPen())
		c.SetBrush(t.mainBrush())
		c.DrawRect(box)
	}
	c.SetPen(SolidPen(t.mainColor()))
	c.DrawText(box.Center(), t.text, t.mainFont(), AlignCenter, t.rotation)
}

// rotateAround rotates pt around center by degrees.
func rotateAround(pt, center Point, degrees float64) Point {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	v := pt.Sub(center)
	return center.Add(Pt(v.X*cos-v.Y*sin, v.X*sin+v.Y*cos))
}
