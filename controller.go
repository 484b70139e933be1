package fourier

import (
	"context"
	"slices"

	"github.com/gogpu/fourier/internal/parallel"
)

// ComputeFunc computes coefficients for a finished path. The controller
// calls it with a context that is cancelled once the result is no longer
// wanted.
type ComputeFunc func(ctx context.Context, path DrawPath, accuracy float64) (*Coefficients, error)

// Executor runs coefficient jobs off the caller's goroutine. Go reports
// false when the job was not accepted.
type Executor interface {
	Go(job func()) bool
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithEngineOptions sets the options passed to ComputeCoefficientsContext.
func WithEngineOptions(opts ...Option) ControllerOption {
	return func(c *Controller) {
		c.engineOpts = slices.Clone(opts)
	}
}

// WithCompute replaces the coefficient engine.
func WithCompute(fn ComputeFunc) ControllerOption {
	return func(c *Controller) {
		c.compute = fn
	}
}

// WithExecutor runs coefficient jobs on exec. Results are applied by Poll
// or Tick on the controller's goroutine.
func WithExecutor(exec Executor) ControllerOption {
	return func(c *Controller) {
		c.exec = exec
	}
}

// WithBackground runs coefficient jobs on a pool of n goroutines owned by
// the controller and released by Close.
func WithBackground(n int) ControllerOption {
	return func(c *Controller) {
		c.pool = parallel.NewPool(n)
		c.exec = c.pool
	}
}

// WithTrace replaces the default trace buffer.
func WithTrace(b *TraceBuffer) ControllerOption {
	return func(c *Controller) {
		c.trace = b
	}
}

// WithRecorderOptions configures the controller's Recorder.
func WithRecorderOptions(opts ...RecorderOption) ControllerOption {
	return func(c *Controller) {
		c.recorder = NewRecorder(opts...)
	}
}

// result is a finished coefficient job tagged with its session.
type result struct {
	generation uint64
	coef       *Coefficients
	err        error
}

// Controller owns one drawing session: the recorder, the coefficients
// derived from its path, the animation clock and the trace.
//
// All methods must be called from a single goroutine, typically the one
// handling pointer events and frame ticks. Only the coefficient
// computation may run elsewhere; its result is tagged with the generation
// of the session that requested it and dropped if another Begin happened
// in between.
type Controller struct {
	recorder *Recorder
	trace    *TraceBuffer
	clock    Clock

	state      State
	generation uint64
	path       DrawPath
	coef       *Coefficients
	position   Complex
	chain      []Segment

	engineOpts []Option
	compute    ComputeFunc
	exec       Executor
	pool       *parallel.Pool
	cancel     context.CancelFunc
	results    chan result
}

// NewController creates an idle controller. Without WithExecutor or
// WithBackground, coefficients are computed synchronously inside Finish.
func NewController(opts ...ControllerOption) *Controller {
	c := &Controller{
		recorder: NewRecorder(),
		trace:    NewDefaultTraceBuffer(),
		results:  make(chan result, 4),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.compute == nil {
		engineOpts := c.engineOpts
		c.compute = func(ctx context.Context, path DrawPath, accuracy float64) (*Coefficients, error) {
			return ComputeCoefficientsContext(ctx, path, accuracy, engineOpts...)
		}
	}
	return c
}

// Begin starts a new recording from any state. Coefficients, trace and
// clock of the previous session are discarded and any computation still
// running for it is cancelled.
func (c *Controller) Begin() {
	c.generation++
	c.stopPending()

	c.coef = nil
	c.chain = c.chain[:0]
	c.position = Complex{}
	c.trace.Clear()
	c.clock.Reset()

	c.path = DrawPath{}
	c.recorder.Begin()
	c.setState(StateRecording)
}

// AddSample records a pointer position while recording and reports
// whether it was accepted. In any other state it does nothing.
func (c *Controller) AddSample(p Complex) bool {
	if c.state != StateRecording {
		return false
	}
	return c.recorder.Add(p)
}

// Finish ends the recording and requests coefficients at the given
// accuracy. An empty path returns the controller to StateIdle. Otherwise
// the controller enters StateComputing until the result is applied; with
// the default synchronous engine that happens before Finish returns.
// Finish does nothing unless the controller is recording.
func (c *Controller) Finish(accuracy float64) {
	if c.state != StateRecording {
		return
	}

	c.path = c.recorder.Finish()
	if c.path.Len() == 0 {
		Logger().Debug("fourier: empty recording discarded", "generation", c.generation)
		c.setState(StateIdle)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.setState(StateComputing)

	gen, path, compute, results := c.generation, c.path, c.compute, c.results
	job := func() {
		coef, err := compute(ctx, path, accuracy)
		select {
		case results <- result{generation: gen, coef: coef, err: err}:
		case <-ctx.Done():
		}
	}

	if c.exec == nil {
		job()
		c.Poll()
		return
	}
	if !c.exec.Go(job) {
		Logger().Warn("fourier: executor rejected coefficient job", "generation", gen)
		c.stopPending()
		c.setState(StateIdle)
	}
}

// Poll applies a finished computation for the current session, if any,
// and discards results of superseded sessions. It reports whether the
// state changed.
func (c *Controller) Poll() bool {
	changed := false
	for {
		select {
		case r := <-c.results:
			if c.apply(r) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (c *Controller) apply(r result) bool {
	if r.generation != c.generation || c.state != StateComputing {
		Logger().Debug("fourier: stale coefficients dropped",
			"generation", r.generation, "current", c.generation)
		return false
	}
	c.stopPending()

	if r.err != nil {
		Logger().Warn("fourier: coefficient computation failed", "err", r.err)
		c.path = DrawPath{}
		c.setState(StateIdle)
		return true
	}

	c.coef = r.coef
	c.clock.Reset()
	c.position, c.chain = EvaluateInto(c.chain, c.coef, 0)
	c.setState(StateReplaying)
	return true
}

// Tick advances one frame. Pending results are applied first; then, while
// replaying, the clock moves by 1/framerate and the new position is pushed
// into the trace.
func (c *Controller) Tick(framerate float64) {
	c.Poll()
	if c.state != StateReplaying {
		return
	}
	if !c.clock.Advance(framerate) {
		return
	}
	c.position, c.chain = EvaluateInto(c.chain, c.coef, c.clock.Time())
	c.trace.Push(c.position)
}

// Close cancels pending work and stops a pool created by WithBackground.
func (c *Controller) Close() {
	c.stopPending()
	if c.pool != nil {
		c.pool.Close()
	}
}

func (c *Controller) stopPending() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}
	Logger().Info("fourier: state change",
		"from", c.state.String(), "to", s.String(), "generation", c.generation)
	c.state = s
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Generation returns the token of the current session. It increases on
// every Begin.
func (c *Controller) Generation() uint64 { return c.generation }

// Time returns the animation clock.
func (c *Controller) Time() float64 { return c.clock.Time() }

// Coefficients returns the current series, or nil outside StateReplaying.
func (c *Controller) Coefficients() *Coefficients { return c.coef }

// Position returns the reconstructed position of the current frame.
func (c *Controller) Position() Complex { return c.position }

// Path returns a copy of the in-progress or finished path.
func (c *Controller) Path() []Complex {
	if c.state == StateRecording {
		return c.recorder.Points()
	}
	return c.path.Points()
}

// Chain returns a copy of the current epicycle chain.
func (c *Controller) Chain() []Segment { return slices.Clone(c.chain) }

// Trace returns the trace, oldest to newest.
func (c *Controller) Trace() []Complex { return c.trace.Points() }

// Frame is a snapshot of everything a renderer needs for one frame.
type Frame struct {
	State      State
	Generation uint64
	Time       float64
	Terms      int
	Path       []Complex
	Chain      []Segment
	Position   Complex
	Trace      []Complex
}

// Frame returns a snapshot of the current frame. The snapshot shares no
// storage with the controller.
func (c *Controller) Frame() Frame {
	return Frame{
		State:      c.state,
		Generation: c.generation,
		Time:       c.clock.Time(),
		Terms:      c.coef.Terms(),
		Path:       c.Path(),
		Chain:      c.Chain(),
		Position:   c.position,
		Trace:      c.Trace(),
	}
}
