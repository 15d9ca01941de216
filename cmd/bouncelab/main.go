package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bouncelab/internal/config"
	"github.com/san-kum/bouncelab/internal/engine"
	"github.com/san-kum/bouncelab/internal/export"
	"github.com/san-kum/bouncelab/internal/metrics"
	"github.com/san-kum/bouncelab/internal/storage"
	"github.com/san-kum/bouncelab/internal/viz"
	"github.com/san-kum/bouncelab/internal/world"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string

	count     int
	friction  float64
	bounce    float64
	velocity  float64
	fps       int
	seed      int64
	repRadius float64
	repForce  float64
	frames    int
	noSave    bool
	theme     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bouncelab",
		Short: "bouncing bodies playground",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live view when no command given
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".bouncelab", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().IntVar(&count, "count", config.DefaultCount, "number of bodies")
	rootCmd.PersistentFlags().Float64Var(&friction, "friction", config.DefaultFriction, "per-frame velocity retention")
	rootCmd.PersistentFlags().Float64Var(&bounce, "bounce", config.DefaultBounceEnergy, "wall bounce energy factor")
	rootCmd.PersistentFlags().Float64Var(&velocity, "velocity", config.DefaultVelocity, "initial velocity band")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.PersistentFlags().Float64Var(&repRadius, "repel-radius", config.DefaultRepelRadius, "pointer influence radius")
	rootCmd.PersistentFlags().Float64Var(&repForce, "repel-force", config.DefaultRepelForce, "pointer force at zero distance")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&theme, "theme", "", "color theme")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless bounded run, saved to the data directory",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", 600, "number of frames")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip persisting the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot body trajectories of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run trails as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark stepping throughput",
		RunE:  benchWorld,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBODIES\tRADIUS\tFRICTION\tBOUNCE")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%g-%g\t%g\t%g\n",
					name, p.Count, p.SizeRange.Min, p.SizeRange.Max, p.Friction, p.BounceEnergy)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(liveCmd, runCmd, listCmd, plotCmd, exportCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig builds the effective configuration: preset, then config
// file, then any explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		c := *p
		cfg = &c
	}

	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = count
	}
	if flags.Changed("friction") {
		cfg.Friction = friction
	}
	if flags.Changed("bounce") {
		cfg.BounceEnergy = bounce
	}
	if flags.Changed("velocity") {
		cfg.Velocity = velocity
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("repel-radius") {
		cfg.Repulsion.Radius = repRadius
	}
	if flags.Changed("repel-force") {
		cfg.Repulsion.MaxForce = repForce
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildEngine(cfg *config.Config) (*engine.Engine, error) {
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	w, err := world.New(cfg.Viewport.Width, cfg.Viewport.Height, cfg.Tunables(), cfg.SpawnParams(), s)
	if err != nil {
		return nil, err
	}
	return engine.New(w, cfg.FPS)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if theme != "" {
		viz.SetTheme(theme)
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	m := viz.NewModel(eng, cfg.FPS)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	for _, m := range metrics.Defaults() {
		eng.AddMetric(m)
	}

	fmt.Printf("stepping %d bodies for %d frames...\n", cfg.Count, frames)
	start := time.Now()

	result, err := eng.RunFrames(context.Background(), frames)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	fmt.Printf("completed in %v\n", elapsed)

	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg, result)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.4f\n", name, val)
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
	fmt.Fprintln(w, "ID\tTIME\tBODIES\tFRAMES\tFPS\tFRICTION\tBOUNCE")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%g\t%g\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Count,
			run.Frames,
			run.FPS,
			run.Friction,
			run.BounceEnergy,
		)
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

	frames, times, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("bodies: %d, frames: %d\n\n", meta.Count, len(frames))

	maxBodies := 3
	if meta.Count < maxBodies {
		maxBodies = meta.Count
	}

	for b := 0; b < maxBodies; b++ {
		for axis, label := range []string{"x", "y"} {
			data := make([]float64, len(frames))
			for i := range frames {
				col := b*2 + axis
				if col < len(frames[i]) {
					data[i] = frames[i][col]
				}
			}

			graph := asciigraph.Plot(data,
				asciigraph.Height(8),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("body %d %s vs time", b, label)),
			)
			fmt.Println(graph)
			fmt.Println()
		}
	}

	_ = times

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	frames, times, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, frames, times)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, times, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := 0; i < len(frames[0])/2; i++ {
		header = append(header, fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range frames {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range frames[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	frames, _, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to export")
	}

	snapshots := make([]world.Snapshot, 0, len(frames))
	for _, frame := range frames {
		snap := world.Snapshot{Width: meta.Width, Height: meta.Height}
		for b := 0; b*2+1 < len(frame); b++ {
			r := 0.0
			if b < len(meta.Radii) {
				r = meta.Radii[b]
			}
			snap.Bodies = append(snap.Bodies, world.View{ID: b, X: frame[b*2], Y: frame[b*2+1], R: r})
		}
		snapshots = append(snapshots, snap)
	}

	fmt.Println(export.TrailsToSVG(snapshots))
	return nil
}

func benchWorld(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	counts := []int{8, 24, 64, 128}
	benchFrames := 2000

	fmt.Printf("benchmarking %d frames per configuration\n\n", benchFrames)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODIES\tFRAMES\tTIME\tFRAMES/SEC")

	for _, n := range counts {
		c := *cfg
		c.Count = n
		c.Seed = 42
		// Small bodies so high counts still fit the viewport.
		c.SizeRange = config.SizeRange{Min: 3, Max: 8}

		eng, err := buildEngine(&c)
		if err != nil {
			return err
		}

		start := time.Now()
		if _, err := eng.RunFrames(context.Background(), benchFrames); err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n",
			n, benchFrames, elapsed.Round(time.Millisecond), float64(benchFrames)/elapsed.Seconds())
	}

	return w.Flush()
}
