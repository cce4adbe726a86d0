/*
Package profile times small workloads and broadcasts the results.

A Profiler runs a list of suites, each for a configured number of iterations,
and publishes one Result per suite. Any number of subscribers may listen for
results while the profiler is running.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package profile

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/guiguan/caster"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

var (
	// ErrInvalidConfig signals an invalid profiler configuration.
	ErrInvalidConfig = errors.New("profile: invalid configuration")
	// ErrClosed signals that the profiler has already finished.
	ErrClosed = errors.New("profile: profiler closed")
)

// DefaultIterations is the number of runs per suite if none is configured.
const DefaultIterations = 1000

// Config configures a Profiler.
type Config struct {
	Iterations int // runs per suite
}

func (cfg Config) normalized() Config {
	if cfg.Iterations == 0 {
		cfg.Iterations = DefaultIterations
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Iterations < 0 {
		return fmt.Errorf("%w: iterations must be positive, is %d", ErrInvalidConfig, cfg.Iterations)
	}
	return nil
}

// Suite is a named workload. Setup, if set, is called before every run of Run
// and is not included in the timing.
type Suite struct {
	Name  string
	Setup func()
	Run   func()
}

// Result is the timing of a suite.
type Result struct {
	Suite      string
	Iterations int
	Total      time.Duration
}

// PerOp returns the average duration of a single run.
func (r Result) PerOp() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Iterations)
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %d runs in %v (%v/op)", r.Suite, r.Iterations, r.Total, r.PerOp())
}

// Profiler runs suites and broadcasts their results. A profiler can run only
// once; it is closed after Run returns.
type Profiler struct {
	cfg     Config
	cast    *caster.Caster // broadcaster for results
	started atomic.Bool
	closed  atomic.Bool
}

// New creates a profiler with validated configuration.
func New(cfg Config) (*Profiler, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Profiler{
		cfg:  cfg.normalized(),
		cast: caster.New(nil),
	}, nil
}

// Subscribe returns a channel receiving the result of every suite run after
// the call. The channel is closed when the profiler finishes or ctx is done.
// Subscribing to a finished profiler returns ErrClosed.
func (p *Profiler) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, error) {
	if p.closed.Load() {
		return nil, ErrClosed
	}
	ch, ok := p.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrClosed
	}
	return ch, nil
}

// Run times all suites one after the other and publishes each Result to the
// subscribers. Run stops early if ctx is cancelled, returning the results
// collected so far together with ctx's error.
func (p *Profiler) Run(ctx context.Context, suites ...Suite) ([]Result, error) {
	if p.started.Swap(true) {
		return nil, ErrClosed
	}
	defer func() {
		p.closed.Store(true)
		p.cast.Close()
	}()
	results := make([]Result, 0, len(suites))
	for _, s := range suites {
		if s.Run == nil {
			return results, fmt.Errorf("%w: suite %q has no workload", ErrInvalidConfig, s.Name)
		}
		r := Result{Suite: s.Name}
		for range p.cfg.Iterations {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			if s.Setup != nil {
				s.Setup()
			}
			start := time.Now()
			s.Run()
			r.Total += time.Since(start)
			r.Iterations++
		}
		tracer().Debugf("profile: %s", r)
		p.cast.Pub(r)
		results = append(results, r)
	}
	return results, nil
}
