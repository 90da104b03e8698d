package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool

	width     int
	height    int
	speed     int
	algorithm string
	pivot     string
	shrink    float64
	base      int
	alpha     float64
	beta      float64
	generate  string
	zoom      int
	captures  int
	seed      uint64

	outFile string
	gifFile string
	svgFile string
	noSave  bool
	asJSON  bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "sortviz",
		Short:        "animated sorting algorithm lab",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".sortviz", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.IntVar(&width, "width", config.DefaultWidth, "cells per row")
	pf.IntVar(&height, "height", config.DefaultHeight, "number of rows")
	pf.IntVar(&speed, "speed", config.DefaultSpeed, "replay ticks per frame")
	pf.StringVar(&algorithm, "algorithm", config.DefaultAlgorithm, "sorting algorithm")
	pf.StringVar(&pivot, "pivot", "Start", "quick sort pivot: Start, Middle, End, Random")
	pf.Float64Var(&shrink, "shrink", config.DefaultShrinkFactor, "comb sort shrink factor")
	pf.IntVar(&base, "base", config.DefaultBase, "radix sort base")
	pf.Float64Var(&alpha, "alpha", 1, "shuffle bias, Beta alpha")
	pf.Float64Var(&beta, "beta", 1, "shuffle bias, Beta beta")
	pf.StringVar(&generate, "generate", config.GenerateIncreasing, "initial order: Increasing or Decreasing")
	pf.IntVar(&zoom, "zoom", config.DefaultZoom, "pixels per cell")
	pf.IntVar(&captures, "captures", config.DefaultCaptures, "filmstrip rows")
	pf.Uint64Var(&seed, "seed", 0, "random seed (0 for time-seeded)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate a session in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a session headless and record it",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().StringVarP(&outFile, "out", "o", "", "write filmstrip png")
	runCmd.Flags().StringVar(&gifFile, "gif", "", "write captures as animated gif")
	runCmd.Flags().StringVar(&svgFile, "svg", "", "write final surface as svg")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the run")

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm...]",
		Short: "compare trace lengths over the same shuffle",
		RunE:  compareAlgorithms,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().BoolVar(&asJSON, "json", false, "print metadata as json")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot ops per row of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list sorting algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list session presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(liveCmd, runCmd, compareCmd, listCmd, showCmd, plotCmd, algorithmsCmd, presetsCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, file, environment and explicit
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
		cfg = p
	}
	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, err
		}
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if flags.Changed("pivot") {
		cfg.Pivot = pivot
	}
	if flags.Changed("shrink") {
		cfg.ShrinkFactor = shrink
	}
	if flags.Changed("base") {
		cfg.Base = base
	}
	if flags.Changed("alpha") {
		cfg.Distribution.Alpha = alpha
	}
	if flags.Changed("beta") {
		cfg.Distribution.Beta = beta
	}
	if flags.Changed("generate") {
		cfg.Generate = generate
	}
	if flags.Changed("zoom") {
		cfg.Zoom = zoom
	}
	if flags.Changed("captures") {
		cfg.Captures = captures
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
