// Package main provides the CLI entry point for inplace-bench, a
// micro-benchmark harness measuring fixed-size array access-pattern latency.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dawit-Getachew/In-place-benchmark/array"
	"github.com/Dawit-Getachew/In-place-benchmark/config"
	"github.com/Dawit-Getachew/In-place-benchmark/harness"
	"github.com/Dawit-Getachew/In-place-benchmark/report"
	"github.com/Dawit-Getachew/In-place-benchmark/scenario"
	"github.com/Dawit-Getachew/In-place-benchmark/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "inplace-bench",
		Short: "Latency micro-benchmarks for fixed-size array access patterns",
		Long: `Inplace-bench measures the latency characteristics of fixed-size int64
array implementations under a fixed catalogue of deterministic access
patterns (sequential write, random read/write, mixed ratios, adversarial
hotspot) and appends one normalized record per execution to a CSV file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger))
	root.AddCommand(newVerifyCmd(logger))
	root.AddCommand(newListCmd())

	return root
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		ns         string
		reps       int
		seed       int64
		impls      []string
		scenarios  []string
		outfile    string
		sqlitePath string
		configPath string
		outputJSON bool
	)

	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark sweep",
		Long: `Run the full cross-product of implementations, array sizes, scenarios,
and repetitions, writing one measurement record per execution.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()

			if configPath != "" {
				var err error
				cfg, err = config.LoadFile(configPath, cfg)
				if err != nil {
					return err
				}
			}

			// Explicit flags override both defaults and the config file.
			flags := cmd.Flags()
			if flags.Changed("Ns") {
				if sizes := config.ParseSizes(ns); len(sizes) > 0 {
					cfg.Sizes = sizes
				} else {
					logger.Warn("no valid sizes in --Ns, keeping defaults",
						slog.String("Ns", ns))
				}
			}
			if flags.Changed("reps") {
				if reps > 0 {
					cfg.Reps = reps
				} else {
					logger.Warn("ignoring non-positive --reps",
						slog.Int("reps", reps))
				}
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("impls") {
				cfg.Impls = impls
			}
			if flags.Changed("scenarios") {
				cfg.Scenarios = scenarios
			}
			if flags.Changed("outfile") {
				cfg.Outfile = outfile
			}
			if flags.Changed("sqlite") {
				cfg.SQLite = sqlitePath
			}

			return runSweep(cmd.Context(), logger, cfg, outputJSON)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&ns, "Ns", "10000,100000,1000000",
		"Comma-separated array sizes; k/m/g suffixes allowed")
	flags.IntVar(&reps, "reps", defaults.Reps,
		"Repetitions per (size, scenario, seed) tuple")
	flags.Int64Var(&seed, "seed", defaults.Seed,
		"Random seed for all scenario executions")
	flags.StringSliceVar(&impls, "impls", defaults.Impls,
		"Array implementations to benchmark (slice,inplace)")
	flags.StringSliceVar(&scenarios, "scenarios", defaults.Scenarios,
		"Scenario subset to run (default: full catalogue)")
	flags.StringVar(&outfile, "outfile", defaults.Outfile,
		"Destination CSV file")
	flags.StringVar(&sqlitePath, "sqlite", "",
		"Also mirror records into a SQLite database at this path")
	flags.StringVar(&configPath, "config", "",
		"YAML or JSON config file; explicit flags override it")
	flags.BoolVar(&outputJSON, "json", false,
		"Print records as JSON instead of a markdown table")

	return cmd
}

func runSweep(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.Config,
	outputJSON bool,
) error {
	scens, err := scenario.ParseAll(cfg.Scenarios)
	if err != nil {
		return err
	}
	for _, impl := range cfg.Impls {
		if err := array.Validate(impl); err != nil {
			return err
		}
	}

	out, err := os.Create(cfg.Outfile)
	if err != nil {
		return fmt.Errorf("create %s: %w", cfg.Outfile, err)
	}
	defer out.Close()

	csvSink, err := report.NewCSV(out)
	if err != nil {
		return fmt.Errorf("open CSV sink: %w", err)
	}

	sinks := []harness.Sink{csvSink}
	if cfg.SQLite != "" {
		db, err := store.Open(cfg.SQLite)
		if err != nil {
			return fmt.Errorf("open SQLite sink: %w", err)
		}
		defer db.Close()

		sinks = append(sinks, db)
	}

	logger.InfoContext(ctx, "starting sweep",
		slog.Any("impls", cfg.Impls),
		slog.Any("sizes", cfg.Sizes),
		slog.Int("scenarios", len(scens)),
		slog.Int64("seed", cfg.Seed),
		slog.Int("reps", cfg.Reps),
	)

	runner := harness.NewRunner(harness.Config{
		Impls:     cfg.Impls,
		Sizes:     cfg.Sizes,
		Scenarios: scens,
		Seed:      cfg.Seed,
		Reps:      cfg.Reps,
	}, logger, sinks...)

	records, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "results written",
		slog.Int("records", len(records)),
		slog.String("outfile", cfg.Outfile),
	)

	if outputJSON {
		return report.GenerateJSON(os.Stdout, records)
	}

	return report.Generate(os.Stdout, records)
}

func newVerifyCmd(logger *slog.Logger) *cobra.Command {
	var (
		impl string
		n    int
		seed int64
		ops  int
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check an implementation against the slice reference",
		Long: `Replay a seeded stream of interleaved init/read/write operations on the
named implementation and on the slice reference, reporting the first
divergence.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.InfoContext(cmd.Context(), "verifying",
				slog.String("impl", impl),
				slog.Int("n", n),
				slog.Int64("seed", seed),
				slog.Int("ops", ops),
			)

			if err := array.Verify(impl, n, seed, ops); err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}

			fmt.Printf("%s verified against slice reference (N=%d seed=%d ops=%d)\n",
				impl, n, seed, ops)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&impl, "impl", "inplace", "Implementation to verify")
	flags.IntVar(&n, "n", 10000, "Array size")
	flags.Int64Var(&seed, "seed", config.DefaultSeed, "Random seed")
	flags.IntVar(&ops, "ops", 1000, "Number of operations to replay")

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known scenarios and implementations",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("Scenarios:")
			for _, name := range scenario.Names() {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println("Implementations:")
			for _, name := range array.Known() {
				fmt.Printf("  %s\n", name)
			}
		},
	}
}
