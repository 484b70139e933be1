// Package render draws controller frames with the gg 2D graphics library.
//
// The renderer centres the drawing surface's origin on the canvas, so a
// Frame produced from centred pointer coordinates maps directly onto the
// image.
//
// Quick start:
//
//	r, err := render.New(render.WithSize(800, 600), render.WithHUD(true))
//	if err != nil { ... }
//	dc := r.Render(ctrl.Frame())
//	defer dc.Close()
//	_ = dc.SavePNG("frame.png")
package render

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/fourier"
)

// Palette holds the colours used for one frame.
type Palette struct {
	Background gg.RGBA
	Grid       gg.RGBA
	Axes       gg.RGBA
	Drawing    gg.RGBA // path while recording
	Outline    gg.RGBA // path once frozen
	TraceOld   gg.RGBA // oldest trace entries
	TraceNew   gg.RGBA // newest trace entries
	Circle     gg.RGBA
	Arm        gg.RGBA
	Pen        gg.RGBA
	Text       gg.RGBA
}

// DefaultPalette is a dark theme with a yellow pen.
var DefaultPalette = Palette{
	Background: gg.Hex("#131319"),
	Grid:       gg.Hex("#282835"),
	Axes:       gg.Hex("#4D4D66"),
	Drawing:    gg.Hex("#FFDB4C"),
	Outline:    gg.Hex("#75759B"),
	TraceOld:   gg.Hex("#75759B"),
	TraceNew:   gg.Hex("#FFDB4C"),
	Circle:     gg.Hex("#C1C1FF30"),
	Arm:        gg.Hex("#C1C1FF50"),
	Pen:        gg.Hex("#FFDB4C"),
	Text:       gg.Hex("#C1C1FF"),
}

// Option configures a Renderer.
type Option func(*options)

type options struct {
	width, height int
	gridSpacing   float64
	palette       Palette
	hud           bool
	fontSize      float64
	scale         float64
}

func defaultOptions() options {
	return options{
		width:       800,
		height:      600,
		gridSpacing: 85,
		palette:     DefaultPalette,
		fontSize:    14,
		scale:       1,
	}
}

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// WithGridSpacing sets the distance between grid lines; 0 hides the grid.
func WithGridSpacing(d float64) Option {
	return func(o *options) {
		o.gridSpacing = d
	}
}

// WithPalette replaces DefaultPalette.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithHUD enables the status line in the top-left corner.
func WithHUD(on bool) Option {
	return func(o *options) {
		o.hud = on
	}
}

// WithScale magnifies the drawing around the canvas centre.
func WithScale(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.scale = s
		}
	}
}

// Renderer draws Frames. It is safe to reuse across frames but not for
// concurrent use.
type Renderer struct {
	opts    options
	face    text.Face
	printer *message.Printer
}

// New creates a Renderer. The HUD font is loaded only when the HUD is on.
func New(opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("render: invalid size %dx%d", o.width, o.height)
	}

	r := &Renderer{opts: o, printer: message.NewPrinter(language.English)}
	if o.hud {
		source, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("render: load HUD font: %w", err)
		}
		r.face = source.Face(o.fontSize)
	}
	return r, nil
}

// Size returns the canvas size.
func (r *Renderer) Size() (width, height int) {
	return r.opts.width, r.opts.height
}

// Render draws f onto a new context. The caller owns the context and must
// Close it.
func (r *Renderer) Render(f fourier.Frame) *gg.Context {
	dc := gg.NewContext(r.opts.width, r.opts.height)
	r.Draw(dc, f)
	return dc
}

// Draw paints f over the whole of dc.
func (r *Renderer) Draw(dc *gg.Context, f fourier.Frame) {
	p := r.opts.palette
	w, h := float64(dc.Width()), float64(dc.Height())

	dc.ClearWithColor(p.Background)

	dc.Push()
	dc.Translate(w/2+float64(dc.Width()%2)/2, h/2+float64(dc.Height()%2)/2)
	r.drawGrid(dc, w, h)
	dc.Scale(r.opts.scale, r.opts.scale)

	r.drawPath(dc, f)
	r.drawTrace(dc, f.Trace)
	if f.State == fourier.StateReplaying {
		r.drawChain(dc, f.Chain)
		setColor(dc, p.Pen)
		dc.DrawCircle(f.Position.Re, f.Position.Im, 5/r.opts.scale)
		_ = dc.Fill()
	}
	dc.Pop()

	if r.face != nil {
		r.drawHUD(dc, f)
	}
}

func (r *Renderer) drawGrid(dc *gg.Context, w, h float64) {
	p := r.opts.palette
	if d := r.opts.gridSpacing; d > 0 {
		setColor(dc, p.Grid)
		dc.SetLineWidth(2)
		for x := 1.0; x <= w; x += d {
			dc.DrawLine(x, -h/2, x, h/2)
			dc.DrawLine(-x, -h/2, -x, h/2)
		}
		for y := 1.0; y <= h; y += d {
			dc.DrawLine(-w/2, y, w/2, y)
			dc.DrawLine(-w/2, -y, w/2, -y)
		}
		_ = dc.Stroke()
	}

	setColor(dc, p.Axes)
	dc.SetLineWidth(4)
	dc.DrawLine(0, -h/2, 0, h/2)
	dc.DrawLine(-w/2, 0, w/2, 0)
	_ = dc.Stroke()
}

func (r *Renderer) drawPath(dc *gg.Context, f fourier.Frame) {
	if len(f.Path) < 2 {
		return
	}
	p := r.opts.palette
	if f.State == fourier.StateRecording {
		setColor(dc, p.Drawing)
		dc.SetLineWidth(4 / r.opts.scale)
	} else {
		setColor(dc, p.Outline)
		dc.SetLineWidth(2 / r.opts.scale)
	}
	dc.MoveTo(f.Path[0].Re, f.Path[0].Im)
	for _, pt := range f.Path[1:] {
		dc.LineTo(pt.Re, pt.Im)
	}
	_ = dc.Stroke()
}

// drawTrace strokes each trace segment separately so colour and width can
// follow its age: old segments are thin and muted, new ones wide and bright.
func (r *Renderer) drawTrace(dc *gg.Context, trace []fourier.Complex) {
	if len(trace) <= 2 {
		return
	}
	p := r.opts.palette
	for i := 0; i < len(trace)-1; i++ {
		t := fourier.FadeWeight(i, len(trace))
		setColor(dc, p.TraceNew.Lerp(p.TraceOld, t*t))
		dc.SetLineWidth(math.Max(4*(1-t), 0.01) / r.opts.scale)
		a, b := trace[i], trace[i+1]
		dc.DrawLine(a.Re, a.Im, b.Re, b.Im)
		_ = dc.Stroke()
	}
}

func (r *Renderer) drawChain(dc *gg.Context, chain []fourier.Segment) {
	p := r.opts.palette
	dc.SetLineWidth(1 / r.opts.scale)
	for _, s := range chain {
		if !s.Visible {
			continue
		}
		setColor(dc, p.Circle)
		dc.DrawCircle(s.Center.Re, s.Center.Im, s.Radius)
		_ = dc.Stroke()

		setColor(dc, p.Arm)
		dc.DrawLine(s.Center.Re, s.Center.Im, s.End.Re, s.End.Im)
		_ = dc.Stroke()
	}
}

func (r *Renderer) drawHUD(dc *gg.Context, f fourier.Frame) {
	dc.SetFont(r.face)
	setColor(dc, r.opts.palette.Text)
	line := r.printer.Sprintf("%s  points %d  terms %d  t %.2fs  trace %d",
		f.State, len(f.Path), f.Terms, f.Time, len(f.Trace))
	dc.DrawString(line, 12, 12+r.opts.fontSize)
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}
