// Package engine tests candidate passwords against salted digests
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"saltcrackr/hashfn"
	"saltcrackr/source"
	"saltcrackr/target"
)

const (
	// Sources larger than LargeSourceThreshold, or of unknown size, report every SparseInterval
	// candidates, smaller ones every DenseInterval.
	LargeSourceThreshold = 50000
	SparseInterval       = 10000
	DenseInterval        = 1000
)

var (
	// ErrNoHashFunction when an engine is configured without a hash function
	ErrNoHashFunction = errors.New("no hash function configured")
	// ErrSchemeMismatch when a target was validated against a different hash function than the engine's
	ErrSchemeMismatch = errors.New("target scheme does not match engine hash function")
)

// IntervalPolicy picks how many candidates pass between progress events
type IntervalPolicy func(total int64, known bool) int64

// DefaultInterval reports sparsely for large or unbounded sources
func DefaultInterval(total int64, known bool) int64 {
	if !known || total > LargeSourceThreshold {
		return SparseInterval
	}
	return DenseInterval
}

type Config struct {
	Hash hashfn.Function
	// ReportEvery fixes the progress interval, overriding Interval when positive
	ReportEvery int64
	Interval    IntervalPolicy
	Reporter    Reporter
	// Workers is the number of targets searched concurrently by RunBatch
	Workers int
}

// Engine holds configuration only; every run keeps its state on the stack
type Engine struct {
	hash     hashfn.Function
	every    int64
	interval IntervalPolicy
	reporter Reporter
	workers  int
}

func New(cfg Config) (*Engine, error) {
	if cfg.Hash == nil {
		return nil, ErrNoHashFunction
	}

	e := &Engine{
		hash:     cfg.Hash,
		every:    cfg.ReportEvery,
		interval: cfg.Interval,
		reporter: cfg.Reporter,
		workers:  cfg.Workers,
	}

	if e.interval == nil {
		e.interval = DefaultInterval
	}

	if e.reporter == nil {
		e.reporter = Nop
	}

	if e.workers < 1 {
		e.workers = 1
	}

	return e, nil
}

// Hash is the function every target must have been validated against
func (e *Engine) Hash() hashfn.Function {
	return e.hash
}

func (e *Engine) check(t target.Descriptor) error {
	if t.Scheme() != e.hash.Name() {
		return fmt.Errorf("%w: %s uses %q, engine uses %q",
			ErrSchemeMismatch, t.Label(), t.Scheme(), e.hash.Name())
	}
	return nil
}

func (e *Engine) reportEvery(total int64, known bool) int64 {
	if e.every > 0 {
		return e.every
	}

	if n := e.interval(total, known); n > 0 {
		return n
	}

	return DenseInterval
}

// Run searches src in order for the first candidate reproducing t's digest. The only error is
// a target bound to another hash function; source problems and cancellation are outcomes.
func (e *Engine) Run(ctx context.Context, t target.Descriptor, src source.Source) (Result, error) {
	if err := e.check(t); err != nil {
		return Result{}, err
	}

	return e.run(ctx, t, src), nil
}

type stopwatch struct {
	start  time.Time
	paused time.Duration
}

func (s *stopwatch) elapsed() time.Duration {
	return time.Since(s.start) - s.paused
}

// exclude runs fn off the clock
func (s *stopwatch) exclude(fn func()) {
	began := time.Now()
	fn()
	s.paused += time.Since(began)
}

func (e *Engine) run(ctx context.Context, t target.Descriptor, src source.Source) (res Result) {
	res.Target = t
	defer func() {
		e.reporter.Done(res)
	}()

	total, known := src.Size(ctx)
	every := e.reportEvery(total, known)

	clock := stopwatch{start: time.Now()}

	if err := ctx.Err(); err != nil {
		res.Outcome, res.Err = Cancelled, err
		return res
	}

	cur, err := src.Open(ctx)
	if err != nil {
		res.Outcome = Failed
		res.Err = fmt.Errorf("open candidate source: %w", err)
		res.Elapsed = clock.elapsed()
		return res
	}
	defer cur.Close()

	salt, want := t.Salt(), t.Digest()

	for cur.Next() {
		candidate := cur.Candidate()
		digest := e.hash.Digest(salt, candidate)
		res.Tested++

		checkpoint := res.Tested%every == 0
		if checkpoint {
			elapsed := clock.elapsed()
			ev := Event{
				Target:  t,
				Tested:  res.Tested,
				Total:   total,
				Known:   known,
				Elapsed: elapsed,
				Rate:    rate(res.Tested, elapsed),
			}
			clock.exclude(func() { e.reporter.Progress(ev) })
		}

		if digest == want {
			res.Outcome = Found
			res.Password = candidate
			res.Elapsed = clock.elapsed()
			return res
		}

		if checkpoint {
			if err := ctx.Err(); err != nil {
				res.Outcome, res.Err = Cancelled, err
				res.Elapsed = clock.elapsed()
				return res
			}
		}
	}

	res.Elapsed = clock.elapsed()

	if err := cur.Err(); err != nil {
		res.Outcome = Failed
		res.Err = fmt.Errorf("read candidate source: %w", err)
		return res
	}

	res.Outcome = NotFound
	return res
}
