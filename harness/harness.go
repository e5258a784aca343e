package harness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dawit-Getachew/In-place-benchmark/array"
	"github.com/Dawit-Getachew/In-place-benchmark/scenario"
)

// Config describes one sweep: the full cross-product of implementations,
// array sizes, scenarios, and repetitions, all driven from a single seed.
type Config struct {
	Impls     []string
	Sizes     []int
	Scenarios []scenario.Scenario
	Seed      int64
	Reps      int
}

// Runner executes sweeps sequentially, single-threaded, and forwards each
// record to every sink.
type Runner struct {
	cfg    Config
	logger *slog.Logger
	sinks  []Sink
}

// NewRunner creates a Runner for the given sweep configuration. Records are
// fanned out to the sinks in argument order.
func NewRunner(cfg Config, logger *slog.Logger, sinks ...Sink) *Runner {
	return &Runner{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "runner")),
		sinks:  sinks,
	}
}

// Run executes the configured sweep and returns the emitted records.
// Iteration order is fixed (implementation, then size, then scenario, then
// repetition) so sink output is deterministic given the configuration.
// Every repetition gets a fresh array and a freshly seeded random stream; no
// state is shared between executions. An (implementation, size) pair the
// layout cannot back is skipped with a warning; an unknown implementation
// name is fatal. The first sink error aborts the run, leaving whatever
// prefix was already written.
func (r *Runner) Run(ctx context.Context) ([]Record, error) {
	if r.cfg.Reps <= 0 {
		return nil, fmt.Errorf("repetition count must be positive, got %d", r.cfg.Reps)
	}
	for _, impl := range r.cfg.Impls {
		if err := array.Validate(impl); err != nil {
			return nil, err
		}
	}

	var records []Record
	for _, impl := range r.cfg.Impls {
		for _, n := range r.cfg.Sizes {
			if _, err := array.New(impl, n); err != nil {
				if errors.Is(err, array.ErrUnsupportedSize) {
					r.logger.Warn("skipping size",
						slog.String("impl", impl),
						slog.Int("n", n),
						slog.String("reason", err.Error()),
					)
					continue
				}
				return records, err
			}

			r.logger.Info("running size",
				slog.String("impl", impl),
				slog.Int("n", n),
			)

			for _, sc := range r.cfg.Scenarios {
				for rep := 1; rep <= r.cfg.Reps; rep++ {
					if err := ctx.Err(); err != nil {
						return records, err
					}

					rec, err := r.runOne(impl, n, sc, rep)
					if err != nil {
						return records, err
					}

					for _, s := range r.sinks {
						if err := s.WriteRecord(rec); err != nil {
							return records, fmt.Errorf("write record: %w", err)
						}
					}
					records = append(records, rec)
				}
			}
		}
	}

	r.logger.Info("sweep complete", slog.Int("records", len(records)))
	return records, nil
}

func (r *Runner) runOne(impl string, n int, sc scenario.Scenario, rep int) (Record, error) {
	arr, err := array.New(impl, n)
	if err != nil {
		return Record{}, err
	}

	r.logger.Debug("running scenario",
		slog.String("impl", impl),
		slog.String("scenario", sc.Name),
		slog.Int("n", n),
		slog.Int("rep", rep),
	)

	met, err := scenario.Run(sc, arr, n, r.cfg.Seed)
	if err != nil {
		return Record{}, fmt.Errorf("run %s: %w", sc.Name, err)
	}

	rec := Record{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Impl:      arr.Name(),
		Scenario:  sc.Name,
		N:         n,
		Seed:      r.cfg.Seed,
		Rep:       rep,
		Ops:       met.Ops,
		TotalNs:   met.TotalNs,
		NsPerOp:   met.NsPerOp,
		InitNs:    met.InitNs,
	}
	if cp, ok := arr.(array.CounterProvider); ok {
		c := cp.Counters()
		rec.Relocations = c.Relocations
		rec.Conversions = c.Conversions
	}
	return rec, nil
}
