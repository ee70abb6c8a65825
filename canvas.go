package plot

import "image/color"

// PenStyle specifies how a pen strokes lines.
type PenStyle int

const (
	// PenNone draws nothing.
	PenNone PenStyle = iota
	// PenSolid draws a continuous line.
	PenSolid
	// PenDash draws a dashed line.
	PenDash
	// PenDot draws a dotted line.
	PenDot
)

// Pen describes how outlines and lines are stroked.
// The zero value is an invisible pen.
type Pen struct {
	Color color.Color
	Width float64
	Style PenStyle
}

// SolidPen returns a one pixel wide solid pen of the given color.
func SolidPen(c color.Color) Pen {
	return Pen{Color: c, Width: 1, Style: PenSolid}
}

// Visible reports whether drawing with the pen produces output.
func (p Pen) Visible() bool {
	return p.Style != PenNone && p.Color != nil
}

// BrushStyle specifies how a brush fills shapes.
type BrushStyle int

const (
	// BrushNone fills nothing.
	BrushNone BrushStyle = iota
	// BrushSolid fills with a uniform color.
	BrushSolid
)

// Brush describes how closed shapes are filled.
// The zero value is an invisible brush.
type Brush struct {
	Color color.Color
	Style BrushStyle
}

// SolidBrush returns a solid brush of the given color.
func SolidBrush(c color.Color) Brush {
	return Brush{Color: c, Style: BrushSolid}
}

// Visible reports whether filling with the brush produces output.
func (b Brush) Visible() bool {
	return b.Style != BrushNone && b.Color != nil
}

// Font describes the text style used for labels. The core treats text
// shaping and rasterization as an external capability; only the nominal
// size travels through this struct, everything else is up to the canvas.
type Font struct {
	// Size is the nominal glyph size in pixels.
	Size float64
	// Bold requests a heavier weight if the canvas supports it.
	Bold bool
}

// DefaultFont is the font used by axes, legends and items unless
// configured otherwise.
var DefaultFont = Font{Size: 11}

// TextAlign specifies horizontal and vertical alignment of drawn text
// relative to its position.
type TextAlign int

const (
	// AlignTopLeft places the text's top-left corner at the position.
	AlignTopLeft TextAlign = iota
	// AlignTopCenter centers the text horizontally below the position.
	AlignTopCenter
	// AlignCenter centers the text on the position.
	AlignCenter
	// AlignBottomCenter centers the text horizontally above the position.
	AlignBottomCenter
	// AlignCenterLeft centers the text vertically right of the position.
	AlignCenterLeft
	// AlignCenterRight centers the text vertically left of the position.
	AlignCenterRight
)

// Canvas is the drawing capability consumed by the plotting core.
//
// A Canvas is a thin, stateful painter: pens, brushes and the
// antialiasing hint are set once and apply to subsequent draw calls.
// Implementations live outside the core; ggcanvas adapts a gg context.
// All coordinates are pixels with the origin at the top-left corner.
type Canvas interface {
	// SetPen sets the pen used by subsequent stroke operations.
	SetPen(pen Pen)
	// SetBrush sets the brush used by subsequent fill operations.
	SetBrush(brush Brush)
	// SetAntialiasing toggles the antialiasing hint for subsequent
	// draw calls.
	SetAntialiasing(enabled bool)

	// DrawLine strokes a line segment from p1 to p2.
	DrawLine(p1, p2 Point)
	// DrawPolyline strokes connected line segments through pts.
	DrawPolyline(pts []Point)
	// DrawRect strokes and fills the rectangle with the current pen
	// and brush.
	DrawRect(r Rect)
	// DrawPolygon fills the closed polygon with the current brush and
	// strokes its outline with the current pen.
	DrawPolygon(pts []Point)
	// DrawEllipse strokes and fills the ellipse centered on center.
	DrawEllipse(center Point, rx, ry float64)

	// DrawText draws text at pos with the given alignment, rotated by
	// rotation degrees around the aligned bounding box center.
	DrawText(pos Point, text string, font Font, align TextAlign, rotation float64)
	// MeasureText returns the width and height of text in pixels as it
	// would be drawn unrotated.
	MeasureText(text string, font Font) (w, h float64)

	// SetClipRect restricts subsequent drawing to r.
	SetClipRect(r Rect)
	// ClearClip removes the clip set by SetClipRect.
	ClearClip()
}
