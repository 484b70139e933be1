package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/fourier"
)

// A terminal cell is roughly twice as tall as it is wide. One cell maps to
// cellW×cellH surface units, so every cell crossed by the pointer clears
// the recorder's minimum distance.
const (
	cellW = 8.0
	cellH = 16.0
)

var (
	styleDrawing = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xFFDB4C))
	styleOutline = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x75759B))
	styleCircle  = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x3A3A5C))
	styleArm     = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x6E6EA8))
	stylePen     = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xFFDB4C)).Bold(true)
	styleAxes    = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x282835))
	styleStatus  = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xC1C1FF))
)

// canvas maps between terminal cells and the centred drawing surface.
type canvas struct {
	screen        tcell.Screen
	width, height int
}

func newCanvas(s tcell.Screen) *canvas {
	c := &canvas{screen: s}
	c.resize()
	return c
}

func (c *canvas) resize() {
	c.width, c.height = c.screen.Size()
}

// toSurface converts a cell position into surface coordinates.
func (c *canvas) toSurface(x, y int) fourier.Complex {
	return fourier.C(
		(float64(x)-float64(c.width)/2)*cellW,
		(float64(y)-float64(c.height)/2)*cellH,
	)
}

// toCell converts surface coordinates into the nearest cell.
func (c *canvas) toCell(p fourier.Complex) (int, int) {
	return int(math.Round(p.Re/cellW + float64(c.width)/2)),
		int(math.Round(p.Im/cellH + float64(c.height)/2))
}

func (c *canvas) plot(p fourier.Complex, r rune, style tcell.Style) {
	x, y := c.toCell(p)
	if x < 0 || y < 1 || x >= c.width || y >= c.height {
		return
	}
	c.screen.SetContent(x, y, r, nil, style)
}

// line plots a straight run of cells from a to b.
func (c *canvas) line(a, b fourier.Complex, r rune, style tcell.Style) {
	ax, ay := c.toCell(a)
	bx, by := c.toCell(b)
	steps := max(abs(bx-ax), abs(by-ay), 1)
	for i := 0; i <= steps; i++ {
		c.plot(a.Lerp(b, float64(i)/float64(steps)), r, style)
	}
}

func (c *canvas) circle(center fourier.Complex, radius float64, r rune, style tcell.Style) {
	steps := max(int(2*math.Pi*radius/cellW), 8)
	for i := range steps {
		c.plot(center.Add(fourier.Rot(2*math.Pi*float64(i)/float64(steps)).Scale(radius)), r, style)
	}
}

// draw renders one controller frame and the status line.
func (c *canvas) draw(f fourier.Frame, accuracy float64) {
	c.screen.Clear()

	c.line(c.toSurface(0, c.height/2), c.toSurface(c.width, c.height/2), '─', styleAxes)
	c.line(c.toSurface(c.width/2, 1), c.toSurface(c.width/2, c.height), '│', styleAxes)

	pathStyle := styleOutline
	if f.State == fourier.StateRecording {
		pathStyle = styleDrawing
	}
	for i := 1; i < len(f.Path); i++ {
		c.line(f.Path[i-1], f.Path[i], '·', pathStyle)
	}

	for i := 0; i+1 < len(f.Trace); i++ {
		c.line(f.Trace[i], f.Trace[i+1], '•', traceStyle(fourier.FadeWeight(i, len(f.Trace))))
	}

	if f.State == fourier.StateReplaying {
		for _, s := range f.Chain {
			if !s.Visible {
				continue
			}
			c.circle(s.Center, s.Radius, '.', styleCircle)
			c.line(s.Center, s.End, '∙', styleArm)
		}
		c.plot(f.Position, '●', stylePen)
	}

	status := fmt.Sprintf(" %s | accuracy %.2f | terms %d | points %d | drag to draw, +/- accuracy, c clear, q quit",
		f.State, accuracy, f.Terms, len(f.Path))
	for x, r := range []rune(status) {
		if x >= c.width {
			break
		}
		c.screen.SetContent(x, 0, r, nil, styleStatus)
	}

	c.screen.Show()
}

// traceStyle fades from the pen colour (age 0) to the outline colour (age 1).
func traceStyle(age float64) tcell.Style {
	t := age * age
	lerp := func(a, b float64) int32 { return int32(math.Round(a + (b-a)*t)) }
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(
		lerp(255, 117), lerp(219, 117), lerp(76, 155)))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
