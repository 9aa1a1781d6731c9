// SPDX-License-Identifier: MIT
// Package: sweep
//
// sweep.go: exhaustive round-trip verification.
//
// Contract:
//   - Every (n, r, λ) with MinN ≤ n ≤ MaxN, 1 ≤ r < n and λ ⊢ n with at most
//     r parts is checked exactly once.
//   - Jobs are one per (n, r); they share nothing but the result collector.
//   - Cancellation of ctx stops the run between partitions.

package sweep

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/jordan/completion"
	"github.com/katalvlaran/jordan/jordan"
	"github.com/katalvlaran/jordan/partition"
)

// ErrMismatch is returned when at least one triple fails its round trip.
var ErrMismatch = errors.New("sweep: round trip mismatch")

// Failure records one failing triple.
type Failure struct {
	N, R      int
	Partition partition.Partition
	Got       partition.Partition // recovered type; nil when an error occurred first
	Err       string              // construction/verification error, if any
}

// Report summarizes a sweep.
type Report struct {
	RunID    string
	Checked  int            // triples verified
	Splices  int            // entries emitted across all completions
	Cases    map[string]int // emitted entries per splice case label
	Failures []Failure
	Elapsed  time.Duration
}

// Check builds the completion of (n, r, p), verifies its shape and returns
// its recovered Jordan type. The nilpotency index read off the support
// digraph must equal the largest recovered block. A nil error with
// got.Equal(p) is a pass.
func Check(n, r int, p partition.Partition, opts ...completion.Option) (got partition.Partition, err error) {
	gamma, err := completion.Complete(n, r, p, opts...)
	if err != nil {
		return nil, err
	}
	if err = completion.VerifyShape(gamma, r); err != nil {
		return nil, err
	}
	if got, err = jordan.Type(gamma); err != nil {
		return nil, err
	}
	idx, err := jordan.Index(gamma)
	if err != nil {
		return got, err
	}
	if idx != got[0] {
		return got, fmt.Errorf("index %d, largest block %d: %w", idx, got[0], ErrMismatch)
	}

	return got, nil
}

// collector merges per-job tallies under a mutex.
type collector struct {
	mu     sync.Mutex
	report Report
}

func (c *collector) merge(checked, splices int, cases map[string]int, fails []Failure) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.report.Checked += checked
	c.report.Splices += splices
	for k, v := range cases {
		c.report.Cases[k] += v
	}
	c.report.Failures = append(c.report.Failures, fails...)
}

// Run executes the sweep described by cfg.
// MAIN DESCRIPTION:
//   - Validate cfg, tag the run with a UUID, fan (n, r) jobs out on an
//     errgroup limited to cfg.Workers, and merge their tallies.
//
// Behavior highlights:
//   - FailFast cancels outstanding jobs on the first failure.
//   - The Report is returned even when err != nil.
//
// Errors:
//   - ErrBadConfig, ErrMismatch (wrapped with the failure count), ctx errors.
func Run(ctx context.Context, cfg Config, log *zap.Logger) (Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	runID := uuid.NewString()
	log = log.With(zap.String("run_id", runID))
	log.Info("sweep started",
		zap.Int("min_n", cfg.MinN),
		zap.Int("max_n", cfg.MaxN),
		zap.Int("workers", cfg.Workers),
		zap.Bool("fail_fast", cfg.FailFast))

	start := time.Now()
	col := &collector{report: Report{RunID: runID, Cases: map[string]int{}}}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for n := cfg.MinN; n <= cfg.MaxN; n++ {
		for r := 1; r < n; r++ {
			if gctx.Err() != nil {
				break
			}
			n, r := n, r // per-iteration copies (go 1.21 loop semantics)
			g.Go(func() error { return runJob(gctx, cfg, log, col, n, r) })
		}
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err() // canceled before any job started
	}

	rep := col.report
	rep.Elapsed = time.Since(start)
	if err == nil && len(rep.Failures) > 0 {
		err = fmt.Errorf("%d failing triples: %w", len(rep.Failures), ErrMismatch)
	}
	if err != nil {
		log.Error("sweep failed", zap.Error(err), zap.Int("checked", rep.Checked))
		return rep, err
	}
	log.Info("sweep finished",
		zap.Int("checked", rep.Checked),
		zap.Int("splices", rep.Splices),
		zap.Duration("elapsed", rep.Elapsed))

	return rep, nil
}

// runJob checks every partition of n with at most r parts.
func runJob(ctx context.Context, cfg Config, log *zap.Logger, col *collector, n, r int) error {
	var (
		checked, splices int
		cases            = map[string]int{}
		fails            []Failure
		ctxErr           error
	)
	onSplice := func(s completion.Splice) {
		splices++
		cases[s.Case.String()]++
		if cfg.TraceSplices {
			log.Debug("splice",
				zap.Int("n", n), zap.Int("r", r),
				zap.Stringer("case", s.Case),
				zap.Int("row", s.Row), zap.Int("col", s.Col),
				zap.Int("stock", s.Stock), zap.Int("cion", s.Cion))
		}
	}

	partition.Each(n, r, func(p partition.Partition) bool {
		if ctxErr = ctx.Err(); ctxErr != nil {
			return false
		}
		got, err := Check(n, r, p, completion.WithOnSplice(onSplice))
		checked++
		if err == nil && got.Equal(p) {
			return true
		}
		f := Failure{N: n, R: r, Partition: p.Clone(), Got: got}
		if err != nil {
			f.Err = err.Error()
		}
		fails = append(fails, f)
		log.Warn("round trip failed",
			zap.Int("n", n), zap.Int("r", r),
			zap.Stringer("partition", f.Partition),
			zap.Stringer("got", got),
			zap.String("err", f.Err))

		return !cfg.FailFast
	})

	col.merge(checked, splices, cases, fails)
	if ctxErr != nil {
		return ctxErr
	}
	if cfg.FailFast && len(fails) > 0 {
		return fmt.Errorf("n=%d r=%d: %w", n, r, ErrMismatch)
	}

	return nil
}
