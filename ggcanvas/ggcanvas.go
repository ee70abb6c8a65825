// Package ggcanvas adapts a gg drawing context to the plot.Canvas
// interface, so plots render through the gg rasterizer (and through its
// GPU pipeline where available).
//
//	dc := gg.NewContext(800, 600)
//	canvas := ggcanvas.New(dc, fontSource)
//	p := plot.New(plot.WithCanvas(canvas), plot.WithViewport(plot.R(0, 0, 800, 600)))
package ggcanvas

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/plot"
)

// Canvas implements plot.Canvas on a gg.Context.
type Canvas struct {
	dc     *gg.Context
	source *text.FontSource

	pen   plot.Pen
	brush plot.Brush

	faceSize float64
}

// New creates a canvas drawing onto dc. The font source provides the
// faces for tick labels and titles; a nil source disables text output,
// which still renders all geometry.
func New(dc *gg.Context, source *text.FontSource) *Canvas {
	return &Canvas{dc: dc, source: source, faceSize: -1}
}

// NewWithFont creates a canvas with a font source parsed from raw TTF or
// OTF data.
func NewWithFont(dc *gg.Context, fontData []byte) (*Canvas, error) {
	source, err := text.NewFontSource(fontData)
	if err != nil {
		return nil, fmt.Errorf("ggcanvas: load font: %w", err)
	}
	return New(dc, source), nil
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context { return c.dc }

// SetPen sets the pen used by subsequent stroke operations.
func (c *Canvas) SetPen(pen plot.Pen) { c.pen = pen }

// SetBrush sets the brush used by subsequent fill operations.
func (c *Canvas) SetBrush(brush plot.Brush) { c.brush = brush }

// SetAntialiasing is accepted for interface completeness; gg's
// rasterizer always antialiases.
func (c *Canvas) SetAntialiasing(bool) {}

// applyPen loads the pen into the gg context and reports whether the
// pen draws at all.
func (c *Canvas) applyPen() bool {
	if !c.pen.Visible() {
		return false
	}
	c.dc.SetColor(c.pen.Color)
	width := c.pen.Width
	if width <= 0 {
		width = 1
	}
	c.dc.SetLineWidth(width)
	switch c.pen.Style {
	case plot.PenDash:
		c.dc.SetDash(4*width, 2*width)
	case plot.PenDot:
		c.dc.SetDash(width, 2*width)
	default:
		c.dc.ClearDash()
	}
	return true
}

// DrawLine strokes a line segment from p1 to p2.
func (c *Canvas) DrawLine(p1, p2 plot.Point) {
	if !c.applyPen() {
		return
	}
	c.dc.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
	c.dc.Stroke()
}

// DrawPolyline strokes connected line segments through pts.
func (c *Canvas) DrawPolyline(pts []plot.Point) {
	if len(pts) < 2 || !c.applyPen() {
		return
	}
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.Stroke()
}

// DrawRect fills and strokes the rectangle with the current brush and
// pen.
func (c *Canvas) DrawRect(r plot.Rect) {
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.fillStroke()
}

// DrawPolygon fills the closed polygon with the current brush and
// strokes its outline with the current pen.
func (c *Canvas) DrawPolygon(pts []plot.Point) {
	if len(pts) < 3 {
		return
	}
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	c.fillStroke()
}

// DrawEllipse fills and strokes the ellipse centered on center.
func (c *Canvas) DrawEllipse(center plot.Point, rx, ry float64) {
	c.dc.DrawEllipse(center.X, center.Y, rx, ry)
	c.fillStroke()
}

// fillStroke finishes the current path with the brush fill and the pen
// stroke.
func (c *Canvas) fillStroke() {
	if c.brush.Visible() {
		c.dc.SetColor(c.brush.Color)
		if c.pen.Visible() {
			c.dc.FillPreserve()
		} else {
			c.dc.Fill()
			return
		}
	}
	if c.applyPen() {
		c.dc.Stroke()
	} else {
		c.dc.ClearPath()
	}
}

// ensureFace loads a face matching the font into the gg context.
func (c *Canvas) ensureFace(font plot.Font) bool {
	if c.source == nil {
		return false
	}
	// The source carries a single weight, so Bold only affects
	// measurement via the caller's padding, not face selection.
	if c.faceSize == font.Size {
		return true
	}
	c.dc.SetFont(c.source.Face(font.Size))
	c.faceSize = font.Size
	return true
}

// DrawText draws text at pos with the given alignment, rotated by
// rotation degrees around the aligned position.
func (c *Canvas) DrawText(pos plot.Point, s string, font plot.Font, align plot.TextAlign, rotation float64) {
	if s == "" || !c.ensureFace(font) {
		return
	}
	c.dc.SetColor(c.pen.Color)
	ax, ay := anchorFor(align)
	if rotation != 0 {
		c.dc.Push()
		c.dc.RotateAbout(rotation*math.Pi/180, pos.X, pos.Y)
		c.dc.DrawStringAnchored(s, pos.X, pos.Y, ax, ay)
		c.dc.Pop()
		return
	}
	c.dc.DrawStringAnchored(s, pos.X, pos.Y, ax, ay)
}

// MeasureText returns the width and height of text in pixels.
func (c *Canvas) MeasureText(s string, font plot.Font) (w, h float64) {
	if !c.ensureFace(font) {
		// nominal estimate so layout stays sane without fonts
		return float64(len(s)) * font.Size * 0.6, font.Size
	}
	return c.dc.MeasureString(s)
}

// SetClipRect restricts subsequent drawing to r.
func (c *Canvas) SetClipRect(r plot.Rect) {
	c.dc.ResetClip()
	c.dc.ClipRect(r.X, r.Y, r.W, r.H)
}

// ClearClip removes the clip set by SetClipRect.
func (c *Canvas) ClearClip() { c.dc.ResetClip() }

func anchorFor(align plot.TextAlign) (ax, ay float64) {
	switch align {
	case plot.AlignTopLeft:
		return 0, 0
	case plot.AlignTopCenter:
		return 0.5, 0
	case plot.AlignBottomCenter:
		return 0.5, 1
	case plot.AlignCenterLeft:
		return 0, 0.5
	case plot.AlignCenterRight:
		return 1, 0.5
	default:
		return 0.5, 0.5
	}
}
