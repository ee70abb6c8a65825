package plot

// recordingCanvas is a Canvas that records draw calls for inspection and
// measures text with a fixed-width metric, so layout math is testable
// without a real rasterizer.
type recordingCanvas struct {
	lines     [][2]Point
	polylines [][]Point
	rects     []Rect
	texts     []recordedText
	pen       Pen
	brush     Brush
	aa        bool
	clip      Rect
	clipped   bool
}

type recordedText struct {
	pos      Point
	text     string
	font     Font
	align    TextAlign
	rotation float64
}

func (rc *recordingCanvas) SetPen(pen Pen)             { rc.pen = pen }
func (rc *recordingCanvas) SetBrush(brush Brush)       { rc.brush = brush }
func (rc *recordingCanvas) SetAntialiasing(on bool)    { rc.aa = on }
func (rc *recordingCanvas) DrawLine(p1, p2 Point)      { rc.lines = append(rc.lines, [2]Point{p1, p2}) }
func (rc *recordingCanvas) DrawPolyline(pts []Point)   { rc.polylines = append(rc.polylines, pts) }
func (rc *recordingCanvas) DrawRect(r Rect)            { rc.rects = append(rc.rects, r) }
func (rc *recordingCanvas) DrawPolygon(pts []Point)    { rc.polylines = append(rc.polylines, pts) }
func (rc *recordingCanvas) DrawEllipse(Point, float64, float64) {}

func (rc *recordingCanvas) DrawText(pos Point, text string, font Font, align TextAlign, rotation float64) {
	rc.texts = append(rc.texts, recordedText{pos, text, font, align, rotation})
}

func (rc *recordingCanvas) MeasureText(text string, font Font) (w, h float64) {
	return float64(len(text)) * font.Size * 0.6, font.Size
}

func (rc *recordingCanvas) SetClipRect(r Rect) { rc.clip, rc.clipped = r, true }
func (rc *recordingCanvas) ClearClip()         { rc.clipped = false }
