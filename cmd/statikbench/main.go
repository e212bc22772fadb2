// Package main provides the CLI entry point for statikbench, the
// benchmark tooling for the statik dependency analyzer: it generates
// synthetic project fixtures and compares timing reports between runs.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"statikbench/config"
	"statikbench/fixture"
	"statikbench/report"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "statikbench",
		Short: "Benchmark tooling for the statik dependency analyzer",
		Long: `Statikbench generates deterministic synthetic projects used as
benchmark fixtures for statik, and compares timing reports from two
benchmark runs to surface speedups and regressions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCmd(logger))
	root.AddCommand(newCompareCmd(logger))

	return root
}

func newGenerateCmd(logger *slog.Logger) *cobra.Command {
	var (
		outputDir  string
		sizes      []string
		seed       int64
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate synthetic benchmark projects",
		Long: `Generate deterministic synthetic TypeScript projects of preset
sizes, used as reproducible input fixtures for statik benchmarks.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), logger, generateOptions{
				outputDir:  outputDir,
				sizes:      sizes,
				seed:       seed,
				configPath: configPath,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&outputDir, "output-dir", "",
		"Base output directory (default: /tmp/statik-bench)")
	flags.StringSliceVar(&sizes, "sizes", nil,
		"Project sizes to generate (default: all configured sizes)")
	flags.Int64Var(&seed, "seed", 0,
		"Random seed for generation (0 = profile default)")
	flags.StringVar(&configPath, "config", "",
		"Path to a generation profile file")

	return cmd
}

type generateOptions struct {
	outputDir  string
	sizes      []string
	seed       int64
	configPath string
}

func runGenerate(
	ctx context.Context,
	logger *slog.Logger,
	opts generateOptions,
) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	for _, w := range cfg.Validate() {
		logger.WarnContext(ctx, "config warning", slog.String("warning", w))
	}

	outputDir := opts.outputDir
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	seed := opts.seed
	if seed == 0 {
		seed = cfg.Seed
	}

	sizes := opts.sizes
	if len(sizes) == 0 {
		sizes = sizeNames(cfg.Sizes)
	}

	logger.InfoContext(ctx, "generating benchmark projects",
		slog.String("output_dir", outputDir),
		slog.Int64("seed", seed),
		slog.Any("sizes", sizes),
	)

	for _, size := range sizes {
		numFiles, ok := cfg.Sizes[size]
		if !ok {
			return fmt.Errorf("unknown size %q (configured: %s)",
				size, strings.Join(sizeNames(cfg.Sizes), ", "))
		}

		projectDir := filepath.Join(outputDir, size)

		gen := fixture.NewGenerator(fixture.Config{
			NumFiles: numFiles,
			Seed:     seed,
		})

		summary, err := gen.Generate(projectDir)
		if err != nil {
			return fmt.Errorf("generate %s: %w", size, err)
		}

		logger.InfoContext(ctx, "project generated",
			slog.String("size", size),
			slog.String("dir", projectDir),
			slog.Int("units", summary.UnitsWritten),
			slog.Int("references", summary.ReferencesCreated),
			slog.Int("exports", summary.ExportsCreated),
		)
	}

	return nil
}

// sizeNames orders configured sizes small, medium, large first, then
// any custom names alphabetically.
func sizeNames(sizes map[string]int) []string {
	rank := map[string]int{"small": 0, "medium": 1, "large": 2}

	names := make([]string, 0, len(sizes))
	for name := range sizes {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		ri, iok := rank[names[i]]
		rj, jok := rank[names[j]]

		switch {
		case iok && jok:
			return ri < rj
		case iok:
			return true
		case jok:
			return false
		default:
			return names[i] < names[j]
		}
	})

	return names
}

func newCompareCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <baseline> <candidate>",
		Short: "Compare two benchmark result files",
		Long: `Parse two timing reports and print a side-by-side comparison
table with percentage change and speedup ratio per command.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			baseline := report.ParseFile(args[0])
			candidate := report.ParseFile(args[1])

			if len(baseline) == 0 {
				logger.Warn("no timing data in baseline report",
					slog.String("path", args[0]))
			}
			if len(candidate) == 0 {
				logger.Warn("no timing data in candidate report",
					slog.String("path", args[1]))
			}

			report.Compare(os.Stdout, args[0], args[1], baseline, candidate)

			return nil
		},
	}
}
