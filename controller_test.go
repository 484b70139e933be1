package fourier

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// goExecutor runs every job on its own goroutine and can wait for them.
type goExecutor struct {
	wg sync.WaitGroup
}

func (e *goExecutor) Go(job func()) bool {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		job()
	}()
	return true
}

type rejectExecutor struct{}

func (rejectExecutor) Go(func()) bool { return false }

func record(c *Controller, pts ...Complex) {
	c.Begin()
	for _, p := range pts {
		c.AddSample(p)
	}
}

func squarePoints(r float64) []Complex {
	return []Complex{C(r, r), C(-r, r), C(-r, -r), C(r, -r)}
}

// waitFor polls until cond holds or the deadline passes.
func waitFor(t *testing.T, c *Controller, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out in state %s", c.State())
		}
		c.Poll()
		time.Sleep(time.Millisecond)
	}
}

func TestController_InitialState(t *testing.T) {
	c := NewController()
	defer c.Close()

	if c.State() != StateIdle {
		t.Errorf("State() = %s, want idle", c.State())
	}
	if c.Coefficients() != nil {
		t.Error("new controller has coefficients")
	}
	if c.AddSample(C(1, 1)) {
		t.Error("AddSample accepted while idle")
	}
	c.Finish(1)
	if c.State() != StateIdle {
		t.Errorf("Finish while idle moved to %s", c.State())
	}
}

func TestController_RecordAndReplay(t *testing.T) {
	c := NewController()
	defer c.Close()

	record(c, squarePoints(100)...)
	if c.State() != StateRecording {
		t.Fatalf("State() = %s, want recording", c.State())
	}
	if c.Coefficients() != nil {
		t.Error("coefficients present while recording")
	}
	if got := len(c.Path()); got != 4 {
		t.Errorf("len(Path()) = %d while recording, want 4", got)
	}

	c.Finish(1)
	if c.State() != StateReplaying {
		t.Fatalf("State() = %s after Finish, want replaying", c.State())
	}
	coef := c.Coefficients()
	if coef == nil || coef.Terms() != 1 {
		t.Fatalf("Coefficients() = %+v, want one pair", coef)
	}
	if c.Time() != 0 {
		t.Errorf("Time() = %v, want 0", c.Time())
	}
	if !c.Position().Approx(C(100, 100), 1e-9) {
		t.Errorf("Position() at t=0 = %v, want first corner", c.Position())
	}

	// The path is frozen once coefficients exist.
	if c.AddSample(C(500, 500)) {
		t.Error("AddSample accepted while replaying")
	}
	if got := len(c.Path()); got != 4 {
		t.Errorf("len(Path()) = %d after replay started, want 4", got)
	}

	c.Tick(60)
	if math.Abs(c.Time()-1.0/60) > 1e-12 {
		t.Errorf("Time() after one tick = %v, want 1/60", c.Time())
	}
	want, _ := Evaluate(coef, 1.0/60)
	if !c.Position().Approx(want, 1e-12) {
		t.Errorf("Position() = %v, want %v", c.Position(), want)
	}
	if got := len(c.Trace()); got != 1 {
		t.Errorf("len(Trace()) = %d, want 1", got)
	}
	if got := len(c.Chain()); got != 3 {
		t.Errorf("len(Chain()) = %d, want 3", got)
	}
}

func TestController_TraceBounded(t *testing.T) {
	c := NewController()
	defer c.Close()

	record(c, squarePoints(150)...)
	c.Finish(1)
	for range 2000 {
		c.Tick(30)
	}
	trace := c.Trace()
	if len(trace) > DefaultTraceCapacity {
		t.Errorf("len(Trace()) = %d, exceeds %d", len(trace), DefaultTraceCapacity)
	}
	for i := 1; i < len(trace); i++ {
		if trace[i].Dist(trace[i-1]) <= DefaultTraceSpacing {
			t.Fatalf("trace entries %d and %d too close", i-1, i)
		}
	}
}

func TestController_EmptyRecording(t *testing.T) {
	c := NewController()
	defer c.Close()

	c.Begin()
	c.Finish(0.5)
	if c.State() != StateIdle {
		t.Errorf("State() = %s after empty recording, want idle", c.State())
	}
	c.Tick(60)
	if c.Time() != 0 {
		t.Errorf("idle controller advanced its clock to %v", c.Time())
	}
}

func TestController_SingleSample(t *testing.T) {
	c := NewController()
	defer c.Close()

	record(c, C(5, 5))
	c.Finish(1)
	if c.State() != StateReplaying {
		t.Fatalf("State() = %s, want replaying", c.State())
	}
	for range 10 {
		c.Tick(24)
		if c.Position() != C(5, 5) {
			t.Fatalf("Position() = %v, want (5,5)", c.Position())
		}
	}
}

func TestController_BeginResetsSession(t *testing.T) {
	c := NewController()
	defer c.Close()

	record(c, squarePoints(100)...)
	c.Finish(1)
	for range 30 {
		c.Tick(60)
	}
	gen := c.Generation()

	c.Begin()
	if c.State() != StateRecording {
		t.Errorf("State() = %s, want recording", c.State())
	}
	if c.Generation() != gen+1 {
		t.Errorf("Generation() = %d, want %d", c.Generation(), gen+1)
	}
	if c.Coefficients() != nil {
		t.Error("coefficients survived Begin")
	}
	if len(c.Trace()) != 0 || len(c.Path()) != 0 || len(c.Chain()) != 0 {
		t.Error("trace, path or chain survived Begin")
	}
	if c.Time() != 0 {
		t.Errorf("Time() = %v after Begin, want 0", c.Time())
	}
}

func TestController_InvalidFramerate(t *testing.T) {
	c := NewController()
	defer c.Close()

	record(c, squarePoints(100)...)
	c.Finish(1)
	for _, fr := range []float64{0, -1, math.NaN()} {
		c.Tick(fr)
	}
	if c.Time() != 0 {
		t.Errorf("Time() = %v after invalid ticks, want 0", c.Time())
	}
}

func TestController_ComputeError(t *testing.T) {
	boom := errors.New("boom")
	c := NewController(WithCompute(func(context.Context, DrawPath, float64) (*Coefficients, error) {
		return nil, boom
	}))
	defer c.Close()

	record(c, squarePoints(100)...)
	c.Finish(1)
	if c.State() != StateIdle {
		t.Errorf("State() = %s after failed computation, want idle", c.State())
	}
	if c.Coefficients() != nil {
		t.Error("coefficients set after failed computation")
	}
}

func TestController_ExecutorRejects(t *testing.T) {
	c := NewController(WithExecutor(rejectExecutor{}))
	defer c.Close()

	record(c, squarePoints(100)...)
	c.Finish(1)
	if c.State() != StateIdle {
		t.Errorf("State() = %s after rejected job, want idle", c.State())
	}
}

func TestController_StaleResultDropped(t *testing.T) {
	exec := &goExecutor{}
	releaseFirst := make(chan struct{})
	releaseSecond := make(chan struct{})

	c := NewController(
		WithExecutor(exec),
		WithCompute(func(_ context.Context, path DrawPath, acc float64) (*Coefficients, error) {
			// The engine ignores cancellation here so the stale result
			// really arrives.
			if path.At(0) == C(1000, 0) {
				<-releaseFirst
			} else {
				<-releaseSecond
			}
			return ComputeCoefficients(path, acc)
		}),
	)
	defer c.Close()

	record(c, C(1000, 0), C(0, 1000), C(-1000, 0))
	c.Finish(1)
	if c.State() != StateComputing {
		t.Fatalf("State() = %s, want computing", c.State())
	}

	second := squarePoints(50)
	record(c, second...)
	c.Finish(1)
	if c.Generation() != 2 {
		t.Fatalf("Generation() = %d, want 2", c.Generation())
	}

	// The first session's result lands while the second is still computing.
	close(releaseFirst)
	time.Sleep(10 * time.Millisecond)
	if c.Poll() {
		t.Error("Poll() applied a stale result")
	}
	if c.State() != StateComputing {
		t.Fatalf("State() = %s after stale result, want computing", c.State())
	}

	close(releaseSecond)
	waitFor(t, c, func() bool { return c.State() == StateReplaying })
	exec.wg.Wait()
	c.Poll()

	want, _ := ComputeCoefficients(NewDrawPath(second...), 1)
	if diff := cmp.Diff(want, c.Coefficients(), approxOpt); diff != "" {
		t.Errorf("coefficients are not the second session's (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(second, c.Path()); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestController_StaleResultAfterReplay(t *testing.T) {
	exec := &goExecutor{}
	release := make(chan struct{})

	c := NewController(
		WithExecutor(exec),
		WithCompute(func(_ context.Context, path DrawPath, acc float64) (*Coefficients, error) {
			if path.Len() == 3 {
				<-release
			}
			return ComputeCoefficients(path, acc)
		}),
	)
	defer c.Close()

	record(c, C(1000, 0), C(0, 1000), C(-1000, 0))
	c.Finish(1)

	second := squarePoints(50)
	record(c, second...)
	c.Finish(1)
	waitFor(t, c, func() bool { return c.State() == StateReplaying })
	for range 5 {
		c.Tick(60)
	}
	tm := c.Time()

	close(release)
	exec.wg.Wait()
	c.Tick(60)

	if c.Path()[0] != second[0] {
		t.Errorf("stale result replaced the path: %v", c.Path())
	}
	if !c.Coefficients().Zero.Approx(C(0, 0), 1e-9) {
		t.Errorf("Zero = %v, want the square's centroid", c.Coefficients().Zero)
	}
	if math.Abs(c.Time()-(tm+1.0/60)) > 1e-12 {
		t.Errorf("clock was reset by a stale result: %v", c.Time())
	}
}

func TestController_BeginCancelsPending(t *testing.T) {
	exec := &goExecutor{}
	cancelled := make(chan struct{})

	c := NewController(
		WithExecutor(exec),
		WithCompute(func(ctx context.Context, _ DrawPath, _ float64) (*Coefficients, error) {
			<-ctx.Done()
			close(cancelled)
			return nil, ctx.Err()
		}),
	)
	defer c.Close()

	record(c, squarePoints(10)...)
	c.Finish(1)
	c.Begin()

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("Begin did not cancel the pending computation")
	}
	exec.wg.Wait()
	c.Poll()
	if c.State() != StateRecording {
		t.Errorf("State() = %s, want recording", c.State())
	}
}

func TestController_Background(t *testing.T) {
	c := NewController(WithBackground(2), WithEngineOptions(WithInterpolation(4)))
	defer c.Close()

	record(c, squarePoints(80)...)
	c.Finish(1)
	waitFor(t, c, func() bool { return c.State() == StateReplaying })

	// 4 corners × 4 sub-samples = 16 samples, M_max = 7.
	if got := c.Coefficients().Terms(); got != 7 {
		t.Errorf("Terms() = %d, want 7", got)
	}
}

func TestController_Frame(t *testing.T) {
	c := NewController()
	defer c.Close()

	record(c, squarePoints(100)...)
	c.Finish(1)
	c.Tick(60)
	c.Tick(60)

	f := c.Frame()
	if f.State != StateReplaying || f.Terms != 1 || f.Generation != 1 {
		t.Errorf("Frame() = %+v", f)
	}
	if len(f.Chain) != 3 || len(f.Path) != 4 || len(f.Trace) != 2 {
		t.Errorf("Frame() sizes: chain=%d path=%d trace=%d", len(f.Chain), len(f.Path), len(f.Trace))
	}
	if f.Position != c.Position() {
		t.Errorf("Frame().Position = %v, want %v", f.Position, c.Position())
	}

	// Snapshots must not change with later frames.
	chain0 := f.Chain[1]
	c.Tick(60)
	if f.Chain[1] != chain0 {
		t.Error("Frame().Chain aliases controller storage")
	}
}

func TestController_Periodic(t *testing.T) {
	c := NewController()
	defer c.Close()

	record(c, squarePoints(100)...)
	c.Finish(1)

	// 2π seconds at 1/(2π) fps is exactly one frame.
	c.Tick(1 / (2 * math.Pi))
	if !c.Position().Approx(C(100, 100), 1e-9) {
		t.Errorf("Position() after one period = %v, want (100,100)", c.Position())
	}
}
