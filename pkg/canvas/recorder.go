package canvas

import (
	"fmt"
	"image/color"
)

// Op is one recorded drawing call.
type Op struct {
	Kind  string // rect, stroke, circle, line, text
	X, Y  float32
	W, H  float32
	Text  string
	Color color.Color
}

func (o Op) String() string {
	if o.Kind == "text" {
		return fmt.Sprintf("text %q at (%v,%v)", o.Text, o.X, o.Y)
	}
	return fmt.Sprintf("%s (%v,%v %vx%v)", o.Kind, o.X, o.Y, o.W, o.H)
}

// Recorder is a Canvas that keeps the calls made on it. Used by tests and
// by headless tools.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) FillRect(x, y, w, h float32, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h, width float32, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke", X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float32, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "circle", X: cx, Y: cy, W: radius, H: radius, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float32, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "line", X: x0, Y: y0, W: x1 - x0, H: y1 - y0, Color: c})
}

func (r *Recorder) DrawText(s string, x, y int, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: float32(x), Y: float32(y), Text: s, Color: c})
}

// Texts returns the strings drawn so far, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset drops the recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
