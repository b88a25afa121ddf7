package contention

import (
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/roach88/hitcount/internal/latch"
	"github.com/roach88/hitcount/internal/report"
)

// Harness runs contention experiments for a fixed Config.
//
// A Harness holds no per-run state: every call to Run creates fresh shared
// state, signals and gate, so a Harness may be reused and called from
// several goroutines.
type Harness struct {
	cfg      Config
	logger   *slog.Logger
	observer Observer
	runIDs   RunIDGenerator
}

// HarnessOption configures a Harness.
type HarnessOption func(*Harness)

// WithLogger sets the logger. Default: logs are discarded.
func WithLogger(logger *slog.Logger) HarnessOption {
	return func(h *Harness) {
		h.logger = logger
	}
}

// WithObserver installs an instrumentation observer. Default: NopObserver.
func WithObserver(obs Observer) HarnessOption {
	return func(h *Harness) {
		h.observer = obs
	}
}

// WithRunIDGenerator overrides how run ids are produced.
// Default: UUIDv7Generator.
func WithRunIDGenerator(gen RunIDGenerator) HarnessOption {
	return func(h *Harness) {
		h.runIDs = gen
	}
}

// New creates a Harness for cfg. The config is validated on Run.
func New(cfg Config, opts ...HarnessOption) *Harness {
	h := &Harness{
		cfg:      cfg,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer: NopObserver{},
		runIDs:   UUIDv7Generator{},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Run executes cfg with default options.
func Run(ctx context.Context, cfg Config) (*report.Report, error) {
	return New(cfg).Run(ctx)
}

// Config returns the harness configuration.
func (h *Harness) Config() Config {
	return h.cfg
}

// Run performs one run and returns the per-worker hit counts.
//
// Run blocks for roughly Config.Duration. It returns a *RuntimeError when the
// config is invalid, when a worker terminates abnormally, or when ctx is
// cancelled before the window elapses. In every failure case all workers
// have been joined before Run returns and no report is produced.
func (h *Harness) Run(ctx context.Context) (*report.Report, error) {
	if err := h.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, NewCancelledError(err)
	}

	runID := h.runIDs.Generate()
	log := h.logger.With("run_id", runID)

	n := h.cfg.Workers
	st := newSharedState(n)
	ready := latch.NewSignals(n)
	gate := latch.NewGate()

	// gctx is cancelled when the caller cancels or when a worker fails, which
	// cuts both coordinator waits short.
	g, gctx := errgroup.WithContext(ctx)
	for id := 0; id < n; id++ {
		g.Go(func() error {
			return h.work(id, st, ready[id], gate)
		})
	}
	log.Debug("workers launched", "workers", n)

	waitErr := latch.WaitAll(gctx, ready)
	if waitErr == nil {
		log.Debug("all workers ready")
		h.openGate(gate)
		waitErr = sleepContext(gctx, h.cfg.Duration)
	}

	// A panicking worker may have raised the flag already.
	st.stop.Raise()
	h.observer.StopRaised(time.Now())
	// Workers still parked on the gate after an early exit see the raised
	// stop flag and return without entering the critical section.
	h.openGate(gate)
	log.Debug("stop raised")

	if err := g.Wait(); err != nil {
		log.Error("worker failed", "error", err)
		return nil, err
	}
	log.Debug("workers joined")

	if waitErr != nil {
		log.Error("run cancelled", "error", waitErr)
		return nil, NewCancelledError(waitErr)
	}

	rep := report.New(runID, h.cfg.Duration, h.cfg.Backoff, st.snapshot())
	log.Info("run finished", "summary", rep.Summary())
	return rep, nil
}

// work is the worker loop for worker id.
func (h *Harness) work(id int, st *sharedState, ready *latch.Signal, gate *latch.Gate) (err error) {
	defer func() {
		if r := recover(); r != nil {
			// Siblings must not keep spinning, and the coordinator must not
			// wait on a signal this worker will never set.
			st.stop.Raise()
			ready.Set()
			err = NewWorkerPanicError(id, r)
		}
	}()

	h.observer.WorkerReady(id)
	ready.Set()
	<-gate.Done()
	h.observer.LoopEntered(id, time.Now())

	for !st.stop.Raised() {
		st.hit(id, h.observer)
		if h.cfg.Backoff > 0 {
			time.Sleep(h.cfg.Backoff)
		}
	}
	return nil
}

// openGate opens the gate and notifies the observer on the transition.
// The timestamp is taken before opening so that it precedes every loop entry.
func (h *Harness) openGate(gate *latch.Gate) {
	at := time.Now()
	if gate.Open() {
		h.observer.GateOpened(at)
	}
}

// sleepContext sleeps for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
