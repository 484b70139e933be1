// Command fourierterm is an interactive terminal front-end: drag with the
// left mouse button to draw a closed curve, release to watch it redrawn by
// epicycles.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/fourier"
)

type app struct {
	screen   tcell.Screen
	canvas   *canvas
	ctrl     *fourier.Controller
	accuracy float64
	fps      float64
	pressed  bool
}

func newApp(screen tcell.Screen, accuracy, fps float64, opts ...fourier.ControllerOption) *app {
	return &app{
		screen:   screen,
		canvas:   newCanvas(screen),
		ctrl:     fourier.NewController(opts...),
		accuracy: fourier.ClampAccuracy(accuracy),
		fps:      fps,
	}
}

// handleEvent applies one terminal event and reports whether to keep running.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case '+', '=':
				a.accuracy = fourier.ClampAccuracy(a.accuracy + 0.05)
			case '-':
				a.accuracy = fourier.ClampAccuracy(a.accuracy - 0.05)
			case 'c':
				a.ctrl.Begin()
				a.ctrl.Finish(a.accuracy)
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		switch {
		case down && !a.pressed:
			a.pressed = true
			a.ctrl.Begin()
			a.ctrl.AddSample(a.canvas.toSurface(x, y))
		case down:
			a.ctrl.AddSample(a.canvas.toSurface(x, y))
		case a.pressed:
			a.pressed = false
			a.ctrl.Finish(a.accuracy)
		}

	case *tcell.EventResize:
		a.canvas.resize()
		a.screen.Sync()
	}
	return true
}

func (a *app) tick() {
	a.ctrl.Tick(a.fps)
	a.canvas.draw(a.ctrl.Frame(), a.accuracy)
}

func (a *app) run() {
	ticker := time.NewTicker(time.Duration(float64(time.Second) / a.fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.tick()
		}
	}
}

func main() {
	var (
		accuracy = flag.Float64("accuracy", 0.5, "fraction of frequency pairs to keep, 0..1")
		fps      = flag.Float64("fps", 30, "frame rate")
		interp   = flag.Int("interp", 20, "sub-samples per path segment")
		logFile  = flag.String("log", "", "write debug log to this file")
	)
	flag.Parse()

	if *fps <= 0 {
		fmt.Fprintln(os.Stderr, "fourierterm: -fps must be positive")
		os.Exit(2)
	}

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fourierterm: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		fourier.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	defer screen.Fini()

	a := newApp(screen, *accuracy, *fps,
		fourier.WithBackground(1),
		fourier.WithEngineOptions(fourier.WithInterpolation(*interp)),
	)
	defer a.ctrl.Close()

	a.run()
}
