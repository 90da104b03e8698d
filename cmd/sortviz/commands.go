package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorts"
	"github.com/san-kum/sortviz/internal/storage"
	"github.com/san-kum/sortviz/internal/viz"
	"github.com/spf13/cobra"
)

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// the terminal belongs to the TUI; session logs go to a file when asked
	logger := log.New(io.Discard)
	if verbose {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return err
		}
		f, err := os.Create(filepath.Join(dataDir, "live.log"))
		if err != nil {
			return err
		}
		defer f.Close()
		logger = newLogger(f, log.DebugLevel)
	}

	surface := viz.NewSurface(cfg.Width, cfg.Height, cfg.Zoom)
	s, err := session.New(*cfg, session.WithRenderer(surface), session.WithLogger(logger))
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(s, surface, "."), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err = p.Run()
	return err
}

func runHeadless(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	surface := viz.NewSurface(cfg.Width, cfg.Height, cfg.Zoom)
	s, err := session.New(*cfg, session.WithRenderer(surface), session.WithLogger(logger))
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	if err := s.Run(cmd.Context()); err != nil {
		return err
	}
	st := s.Stats()
	prog.done(fmt.Sprintf("sorted %d rows with %s", st.Rows, sorts.Title(st.Algorithm)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "algorithm\t%s\n", sorts.Title(st.Algorithm))
	fmt.Fprintf(w, "rows\t%d × %d\n", st.Rows, st.Width)
	fmt.Fprintf(w, "ticks\t%d\n", st.Ticks)
	fmt.Fprintf(w, "ops\t%d (%d swaps, %d writes)\n", st.Ops(), st.Swaps, st.Writes)
	fmt.Fprintf(w, "mean ops/row\t%.1f\n", st.MeanOps())
	fmt.Fprintf(w, "captures\t%d\n", st.Captures)
	if err := w.Flush(); err != nil {
		return err
	}

	if outFile != "" {
		if err := export.SavePNG(outFile, s.Filmstrip()); err != nil {
			return err
		}
		logger.Info("wrote filmstrip", "path", outFile)
	}
	if gifFile != "" {
		if err := export.SaveGIF(gifFile, s.Captures(), export.DefaultDelay); err != nil {
			return err
		}
		logger.Info("wrote gif", "path", gifFile, "frames", len(s.Captures()))
	}
	if svgFile != "" {
		if err := export.SaveSVG(svgFile, surface.Image(), surface.Zoom(), float64(surface.Zoom())); err != nil {
			return err
		}
		logger.Info("wrote svg", "path", svgFile)
	}

	if noSave {
		return nil
	}
	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(*cfg, st, s.Filmstrip())
	if err != nil {
		return err
	}
	fmt.Printf("\nrun: %s\n", runID)
	return nil
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	algs := args
	if len(algs) == 0 {
		algs = sorts.List()
	}
	cmpSeed := cfg.Seed
	if cmpSeed == 0 {
		cmpSeed = 1
	}

	stats, err := session.Compare(cmd.Context(), *cfg, cmpSeed, algs, logger)
	if err != nil {
		return err
	}

	fmt.Printf("comparing %d algorithms on %d × %d (seed=%d)\n\n", len(algs), cfg.Height, cfg.Width, cmpSeed)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tKIND\tFRAMES\tSWAPS\tWRITES\tOPS/ROW")
	for _, st := range stats {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.1f\n",
			sorts.Title(st.Algorithm), st.Kind, st.TotalFrames, st.Swaps, st.Writes, st.MeanOps())
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tROWS\tWIDTH\tFRAMES\tOPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			run.ID,
			sorts.Title(run.Algorithm),
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Rows,
			run.Width,
			run.TotalFrames,
			run.Swaps+run.Writes,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s\n", meta.ID)
	fmt.Fprintf(w, "time\t%s\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "algorithm\t%s (%s)\n", sorts.Title(meta.Algorithm), meta.Kind)
	switch sorts.Uses(meta.Algorithm) {
	case "pivot":
		fmt.Fprintf(w, "pivot\t%s\n", meta.Config.Pivot)
	case "shrink_factor":
		fmt.Fprintf(w, "shrink factor\t%.2f\n", meta.Config.ShrinkFactor)
	case "base":
		fmt.Fprintf(w, "base\t%d\n", meta.Config.Base)
	}
	fmt.Fprintf(w, "rows\t%d × %d (%s)\n", meta.Rows, meta.Width, meta.Config.Generate)
	fmt.Fprintf(w, "shuffle\tBeta(%.2f, %.2f) seed %d\n", meta.Config.Distribution.Alpha, meta.Config.Distribution.Beta, meta.Config.Seed)
	fmt.Fprintf(w, "frames\t%d\n", meta.TotalFrames)
	fmt.Fprintf(w, "ticks\t%d\n", meta.Ticks)
	fmt.Fprintf(w, "swaps\t%d\n", meta.Swaps)
	fmt.Fprintf(w, "writes\t%d\n", meta.Writes)
	fmt.Fprintf(w, "captures\t%d\n", meta.Captures)
	fmt.Fprintf(w, "elapsed\t%s\n", meta.Elapsed)
	if path := st.FilmstripPath(meta.ID); path != "" {
		fmt.Fprintf(w, "filmstrip\t%s\n", path)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	ops, err := st.LoadRowOps(runID)
	if err != nil {
		return err
	}
	if len(ops) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("algorithm: %s\n", sorts.Title(meta.Algorithm))
	fmt.Printf("rows: %d\n\n", len(ops))

	data := make([]float64, len(ops))
	for i, n := range ops {
		data[i] = float64(n)
	}
	// asciigraph needs at least two points
	if len(data) == 1 {
		data = append(data, data[0])
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("ops per row"))
	fmt.Println(graph)
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tKIND\tPARAM")
	for _, name := range sorts.List() {
		s, err := sorts.New(name, sorts.DefaultParams())
		if err != nil {
			return err
		}
		param := sorts.Uses(name)
		if param == "" {
			param = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, sorts.Title(name), s.Kind(), param)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tALGORITHM\tROWS\tWIDTH\tSPEED\tSHAPE")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\tα=%.2f β=%.2f\n",
			name, p.Algorithm, p.Height, p.Width, p.Speed, p.Distribution.Alpha, p.Distribution.Beta)
	}
	return w.Flush()
}
