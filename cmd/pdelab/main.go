package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pdelab/internal/analysis"
	"github.com/san-kum/pdelab/internal/config"
	"github.com/san-kum/pdelab/internal/experiment"
	"github.com/san-kum/pdelab/internal/export"
	"github.com/san-kum/pdelab/internal/pde"
	"github.com/san-kum/pdelab/internal/sim"
	"github.com/san-kum/pdelab/internal/storage"
	"github.com/san-kum/pdelab/internal/viz"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	dataDir       string
	scheme        string
	waveform      string
	gridN         int
	domainL       float64
	cflRatio      float64
	waveSpeed     float64
	viscosity     float64
	steps         int
	snapshotEvery int
	configFile    string
	preset        string
	logEvery      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pdelab",
		Short: "finite-difference lab for 1-D hyperbolic PDEs",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".pdelab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [equation]",
		Short: "run a simulation (burgers or advection)",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of time steps")
	runCmd.Flags().IntVar(&snapshotEvery, "snapshot-every", 10, "snapshot stride")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().IntVar(&logEvery, "log-every", 50, "progress log stride (0 disables)")

	liveCmd := &cobra.Command{
		Use:   "live [equation]",
		Short: "animate a simulation in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the initial and final field of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [run_id]",
		Short: "power spectrum of the final field",
		Args:  cobra.ExactArgs(1),
		RunE:  spectrumRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run snapshots to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run snapshots to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render the final field of a stored run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [equation] [scheme1] [scheme2] ...",
		Short: "compare schemes on the same initial condition",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareSchemes,
	}
	addSimFlags(compareCmd)
	compareCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of time steps")

	presetsCmd := &cobra.Command{
		Use:   "presets [equation]",
		Short: "list available presets for an equation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for equation: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, spectrumCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, compareCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&scheme, "scheme", "", "scheme (default per equation)")
	cmd.Flags().StringVar(&waveform, "waveform", "", "initial waveform (default per equation)")
	cmd.Flags().IntVar(&gridN, "n", config.DefaultN, "grid points")
	cmd.Flags().Float64Var(&domainL, "l", config.DefaultL, "domain length")
	cmd.Flags().Float64Var(&cflRatio, "cfl", config.DefaultCFL, "CFL ratio (burgers)")
	cmd.Flags().Float64Var(&waveSpeed, "c", config.DefaultWaveSpeed, "wave speed (advection)")
	cmd.Flags().Float64Var(&viscosity, "nu", config.DefaultViscosity, "viscosity (burgers)")
}

// buildConfig resolves preset, config file, and flags: preset first,
// file next, explicit flags win.
func buildConfig(cmd *cobra.Command, equation string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Equation = equation
	switch equation {
	case "burgers":
		cfg.Scheme = "godunov"
		cfg.Waveform = "sine"
	case "advection":
		cfg.Scheme = "lax_wendroff"
		cfg.Waveform = "gaussian"
	}

	if preset != "" {
		p := config.GetPreset(equation, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(equation))
		}
		*cfg = *p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *fileCfg
		cfg.Equation = equation
	}

	if cmd.Flags().Changed("scheme") {
		cfg.Scheme = scheme
	}
	if cmd.Flags().Changed("waveform") {
		cfg.Waveform = waveform
	}
	if cmd.Flags().Changed("n") {
		cfg.N = gridN
	}
	if cmd.Flags().Changed("l") {
		cfg.L = domainL
	}
	if cmd.Flags().Changed("cfl") {
		cfg.CFL = cflRatio
	}
	if cmd.Flags().Changed("c") {
		cfg.WaveSpeed = waveSpeed
	}
	if cmd.Flags().Changed("nu") {
		cfg.Viscosity = viscosity
	}
	if f := cmd.Flags().Lookup("steps"); f != nil && f.Changed {
		cfg.Steps = steps
	}
	if f := cmd.Flags().Lookup("snapshot-every"); f != nil && f.Changed {
		cfg.SnapshotEvery = snapshotEvery
	}

	return cfg, nil
}

// progressLogger logs field extrema at a fixed step cadence.
type progressLogger struct {
	every int
	count int
}

func (p *progressLogger) OnStep(u pde.Field, t float64) {
	p.count++
	if p.every <= 0 || p.count%p.every != 0 {
		return
	}
	log.WithFields(log.Fields{
		"t":    fmt.Sprintf("%.4f", t),
		"step": p.count,
		"umin": fmt.Sprintf("%.4f", u.Min()),
		"umax": fmt.Sprintf("%.4f", u.Max()),
	}).Info("advancing")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	s, err := registry.Build(cfg)
	if err != nil {
		return err
	}
	for _, m := range registry.DefaultMetrics(cfg.Equation) {
		s.AddMetric(m)
	}
	s.AddObserver(&progressLogger{every: logEvery})

	log.WithFields(log.Fields{
		"equation": cfg.Equation,
		"scheme":   cfg.Scheme,
		"waveform": cfg.Waveform,
		"n":        cfg.N,
		"dt":       fmt.Sprintf("%.3g", s.Dt()),
	}).Info("starting run")

	start := time.Now()
	result, err := s.Run(context.Background(), pde.RunConfig{
		Steps:         cfg.Steps,
		SnapshotEvery: cfg.SnapshotEvery,
		ValidateField: true,
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if result.Diverged {
		log.WithField("step", result.StepsTaken).Warn("field diverged; run stopped early")
	}

	runID, err := st.Save(cfg, s.Dt(), result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	build := func() (*sim.Simulation, error) { return registry.Build(cfg) }

	// Validate once before entering the TUI so bad configs fail loudly.
	if _, err := build(); err != nil {
		return err
	}

	label := fmt.Sprintf("%s / %s / %s", cfg.Equation, cfg.Scheme, cfg.Waveform)
	m := viz.NewModel(build, label)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
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
	fmt.Fprintln(w, "ID\tEQUATION\tSCHEME\tWAVEFORM\tN\tDT\tSTEPS\tDIVERGED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.3g\t%d\t%v\n",
			run.ID, run.Equation, run.Scheme, run.Waveform,
			run.N, run.Dt, run.Steps, run.Diverged)
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

	snaps, times, err := st.LoadSnapshots(runID)
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("%s / %s / %s, N=%d, dt=%.3g\n\n", meta.Equation, meta.Scheme, meta.Waveform, meta.N, meta.Dt)

	first, last := snaps[0], snaps[len(snaps)-1]

	fmt.Println(asciigraph.Plot(first,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("u(x) at t=%.4f", times[0])),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(last,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("u(x) at t=%.4f", times[len(times)-1])),
	))

	return nil
}

func spectrumRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	snaps, _, err := st.LoadSnapshots(runID)
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		return fmt.Errorf("no data")
	}

	last := snaps[len(snaps)-1]
	ps := analysis.PowerSpectrum(last)

	plotData := ps
	if len(plotData) > 4 {
		plotData = ps[:len(ps)/4]
	}

	fmt.Printf("power spectrum: %s (%s/%s)\n\n", meta.ID, meta.Equation, meta.Scheme)
	fmt.Println(asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power per wavenumber"),
	))

	mode, share := analysis.DominantMode(ps)
	fmt.Printf("\ndominant mode: k=%d (%.1f%% of total power)\n", mode, 100*share)

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	snaps, times, err := st.LoadSnapshots(runID)
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range snaps[0] {
		header = append(header, fmt.Sprintf("u%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range snaps {
		row := []string{strconv.FormatFloat(times[i], 'g', -1, 64)}
		for _, val := range snaps[i] {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	snaps, times, err := st.LoadSnapshots(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, snaps, times)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	snaps, _, err := st.LoadSnapshots(runID)
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		return fmt.Errorf("no data to export")
	}

	last := snaps[len(snaps)-1]
	x := make([]float64, len(last))
	dx := meta.L / float64(meta.N)
	for i := range x {
		x[i] = float64(i) * dx
	}

	svg := export.FieldToSVG(x, last, 800, 400, "#00ff00")
	outPath := runID + ".svg"
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func compareSchemes(cmd *cobra.Command, args []string) error {
	equation := args[0]
	schemeNames := args[1:]

	registry := experiment.NewRegistry()

	cfgs := make([]*config.Config, 0, len(schemeNames))
	for _, name := range schemeNames {
		cfg, err := buildConfig(cmd, equation)
		if err != nil {
			return err
		}
		cfg.Scheme = name
		cfgs = append(cfgs, cfg)
	}

	start := time.Now()
	results, err := registry.RunAll(context.Background(), cfgs)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCHEME\tFINAL MAX|U|\tCONS. DRIFT\tTV RATIO\tDIVERGED")

	for i, result := range results {
		final := result.Snapshots[len(result.Snapshots)-1]
		fmt.Fprintf(w, "%s\t%.4g\t%.3g\t%.4f\t%v\n",
			schemeNames[i],
			final.MaxAbs(),
			result.Metrics["conservation_drift"],
			result.Metrics["total_variation_ratio"],
			result.Diverged,
		)
	}

	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d runs in %v\n", len(results), elapsed)
	return nil
}
