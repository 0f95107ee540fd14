package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbitsim/internal/analysis"
	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/experiment"
	"github.com/san-kum/orbitsim/internal/export"
	"github.com/san-kum/orbitsim/internal/gui"
	"github.com/san-kum/orbitsim/internal/logging"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/optim"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/storage"
	"github.com/san-kum/orbitsim/internal/tui"
	"github.com/san-kum/orbitsim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	logFormat  string
	trailCap   int
	velScale   float64
	fps        int
	theme      string
	// run
	frames   int
	launches []string
	name     string
	// plot / export
	satID   int
	svgPath string
	// search
	launchAt   string
	speedRange []float64
	angleRange []float64
)

// main wires the cobra commands. With no subcommand the raylib window opens.
func main() {
	rootCmd := &cobra.Command{
		Use:           "orbitsim",
		Short:         "interactive two-body orbit sandbox",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".orbitsim", "data directory for headless runs")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "physics preset (see 'orbitsim presets')")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "", "log format: text or json")
	pf.IntVar(&trailCap, "trail-cap", 0, "keep at most N trail points per satellite (0 = unbounded)")
	pf.Float64Var(&velScale, "vel-scale", config.DefaultVelScale, "drag length divisor for launch velocity")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the simulation window",
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the simulation in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	tuiCmd.Flags().StringVar(&theme, "theme", "space", "colour theme: "+strings.Join(viz.ThemeNames(), ", "))

	runCmd := &cobra.Command{
		Use:   "run [scenario.yaml...]",
		Short: "replay launch scenarios headless and save the runs",
		Args:  cobra.ArbitraryArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", 1200, "frames to simulate")
	runCmd.Flags().StringArrayVar(&launches, "launch", nil, "launch at frame 0 as x,y,vx,vy (repeatable)")
	runCmd.Flags().StringVar(&name, "name", "run", "scenario name")

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "grid search launch speed and angle for the longest survival",
		RunE:  searchLaunch,
	}
	searchCmd.Flags().StringVar(&launchAt, "at", "650,400", "launch point x,y")
	searchCmd.Flags().Float64SliceVar(&speedRange, "speed", []float64{0.5, 5, 0.25}, "speed range from,to,step")
	searchCmd.Flags().Float64SliceVar(&angleRange, "angle", []float64{0, 345, 15}, "angle range in degrees from,to,step")
	searchCmd.Flags().IntVar(&frames, "frames", 1200, "frames to simulate per candidate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot distance from the planet per satellite",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&satID, "satellite", 0, "only plot this satellite id")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "estimate orbital periods",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write run trajectories as CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render run trajectories to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&svgPath, "output", "o", "", "output file (default <run_id>.svg)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list physics presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tG\tPLANET\tRADIUS\tSATELLITE\tVEL_SCALE\tTRAIL_CAP")
			for _, n := range config.ListPresets() {
				p := config.Presets[n]
				fmt.Fprintf(w, "%s\t%.2f\t%.1f\t%.1f\t%.1f\t%.1f\t%d\n",
					n, p.G, p.PlanetMass, p.PlanetRadius, p.SatelliteMass, p.VelScale, p.TrailCap)
			}
			w.Flush()
		},
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, searchCmd, listCmd, plotCmd, analyzeCmd, exportCSVCmd, exportSVGCmd, presetsCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: defaults, then config
// file, then preset physics, then explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Resolve(configFile, preset)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("trail-cap") {
		cfg.Physics.TrailCap = trailCap
	}
	if flags.Changed("vel-scale") {
		cfg.Physics.VelScale = velScale
	}
	if flags.Changed("theme") {
		cfg.Render.Theme = theme
	}
	if flags.Changed("fps") {
		cfg.Window.FPS = fps
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.New(cfg.Log)

	if err := gui.Run(cfg, log); err != nil {
		if errors.Is(err, gui.ErrAssetLoad) {
			log.Error("startup failed", "err", err)
		}
		return err
	}
	return nil
}

// parseLaunch reads "x,y,vx,vy".
func parseLaunch(s string) (orbit.Point, orbit.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return orbit.Point{}, orbit.Point{}, fmt.Errorf("launch %q: want x,y,vx,vy", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return orbit.Point{}, orbit.Point{}, fmt.Errorf("launch %q: %w", s, err)
		}
		vals[i] = v
	}
	return orbit.Point{X: vals[0], Y: vals[1]}, orbit.Point{X: vals[2], Y: vals[3]}, nil
}

func buildScenarios(cfg *config.Config, args []string) ([]*experiment.Scenario, error) {
	if len(args) > 0 {
		scenarios := make([]*experiment.Scenario, 0, len(args))
		for _, path := range args {
			sc, err := experiment.LoadScenario(path)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			scenarios = append(scenarios, sc)
		}
		return scenarios, nil
	}
	if len(launches) == 0 {
		return nil, fmt.Errorf("need a scenario file or at least one --launch")
	}

	sc := &experiment.Scenario{Name: name, Frames: frames}
	for _, l := range launches {
		at, vel, err := parseLaunch(l)
		if err != nil {
			return nil, err
		}
		sc.Presses = append(sc.Presses, experiment.LaunchPresses(0, at, vel, cfg.Physics.VelScale)...)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return []*experiment.Scenario{sc}, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.New(cfg.Log)

	scenarios, err := buildScenarios(cfg, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	params := cfg.Params()
	for _, sc := range scenarios {
		log.Debug("queued scenario", "name", sc.Name, "frames", sc.Frames, "presses", len(sc.Presses))
	}
	fmt.Printf("running %d scenario(s)...\n", len(scenarios))
	start := time.Now()

	results, err := experiment.NewBatch(params, scenarios, metrics.Defaults).Run(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n", time.Since(start))

	for i, result := range results {
		sc := scenarios[i]
		runID, err := st.Save(sc.Name, params, result)
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		log.Info("run saved", "id", runID, "frames", result.Frames)

		fmt.Printf("\nrun id: %s (%s, %d frames)\n", runID, sc.Name, result.Frames)
		fmt.Printf("launched: %d  escaped: %d  collided: %d  alive: %d\n",
			result.Stats.Launched, result.Stats.Escaped, result.Stats.Collided,
			result.Stats.Launched-result.Stats.Escaped-result.Stats.Collided)
		fmt.Println("metrics:")
		for _, n := range sortedKeys(result.Metrics) {
			fmt.Printf("  %s: %.6f\n", n, result.Metrics[n])
		}
	}
	return nil
}

func parseRange(flag string, r []float64) ([]float64, error) {
	if len(r) == 1 {
		return r, nil
	}
	if len(r) != 3 {
		return nil, fmt.Errorf("--%s: want a single value or from,to,step", flag)
	}
	vals := optim.Range(r[0], r[1], r[2])
	if len(vals) == 0 {
		return nil, fmt.Errorf("--%s: empty range %v", flag, r)
	}
	return vals, nil
}

func searchLaunch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.New(cfg.Log)

	at, _, err := parseLaunch(launchAt + ",0,0")
	if err != nil {
		return err
	}
	speeds, err := parseRange("speed", speedRange)
	if err != nil {
		return err
	}
	angles, err := parseRange("angle", angleRange)
	if err != nil {
		return err
	}

	params := cfg.Params()
	build := func(p map[string]float64) (*experiment.Experiment, error) {
		rad := p["angle"] * math.Pi / 180
		vel := orbit.Point{X: p["speed"] * math.Cos(rad), Y: p["speed"] * math.Sin(rad)}
		sc := &experiment.Scenario{
			Name:    "search",
			Frames:  frames,
			Presses: experiment.LaunchPresses(0, at, vel, params.VelScale),
		}
		return experiment.New(params, sc), nil
	}

	fmt.Printf("searching %d launches from (%.0f, %.0f) over %d frames...\n",
		len(speeds)*len(angles), at.X, at.Y, frames)
	start := time.Now()

	g := optim.NewGridSearch([]string{"speed", "angle"}, [][]float64{speeds, angles})
	best, all, err := g.Search(context.Background(), build, optim.Survival)
	if err != nil {
		return err
	}
	log.Debug("search finished", "candidates", len(all), "elapsed", time.Since(start))

	survivors := 0
	for _, c := range all {
		if int(c.Score) >= frames {
			survivors++
		}
	}

	fmt.Printf("best: speed %.3f angle %.1f survived %.0f frames\n",
		best.Params["speed"], best.Params["angle"], best.Score)
	fmt.Printf("%d of %d launches survived the whole run\n", survivors, len(all))
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
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
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tFRAMES\tLAUNCHED\tESCAPED\tCOLLIDED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Launched,
			run.Escaped,
			run.Collided,
		)
	}
	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, []*experiment.Track, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	tracks, err := st.LoadTracks(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(tracks) == 0 {
		return nil, nil, fmt.Errorf("run %s has no satellites", runID)
	}
	return meta, tracks, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, tracks, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n\n", meta.Scenario)

	for _, tr := range tracks {
		if satID != 0 && tr.ID != satID {
			continue
		}
		radii := tr.Radii(meta.Planet.Pos())
		if len(radii) < 2 {
			continue
		}
		caption := fmt.Sprintf("satellite %d: distance from planet (%s at frame %d)", tr.ID, tr.Fate, tr.EndFrame)
		graph := asciigraph.Plot(radii,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, tracks, err := loadRun(args[0])
	if err != nil {
		return err
	}

	g := meta.Params.G
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SAT\tFATE\tSAMPLES\tMIN_R\tMAX_R\tENERGY\tPERIOD\tKEPLER")
	for _, tr := range tracks {
		radii := tr.Radii(meta.Planet.Pos())
		if len(radii) == 0 {
			continue
		}
		minR, maxR := radii[0], radii[0]
		for _, r := range radii {
			minR = min(minR, r)
			maxR = max(maxR, r)
		}
		energy := tr.Samples[0].Energy

		period := "-"
		if p := analysis.DominantPeriod(radii); p > 0 && len(radii) >= int(2*p) {
			period = fmt.Sprintf("%.1f", p)
		}
		kepler := "-"
		if p := analysis.KeplerPeriod(energy, g*meta.Planet.Mass); p > 0 {
			kepler = fmt.Sprintf("%.1f", p)
		}

		fmt.Fprintf(w, "%d\t%s\t%d\t%.1f\t%.1f\t%.4f\t%s\t%s\n",
			tr.ID, tr.Fate, len(tr.Samples), minR, maxR, energy, period, kepler)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nmetrics:")
	for _, n := range sortedKeys(meta.Metrics) {
		fmt.Printf("  %s: %.6f\n", n, meta.Metrics[n])
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, tracks, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.WriteTracksCSV(os.Stdout, tracks)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	meta, tracks, err := loadRun(args[0])
	if err != nil {
		return err
	}

	path := svgPath
	if path == "" {
		path = meta.ID + ".svg"
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := export.TracksToSVG(f, meta.Params.Bounds, meta.Planet, tracks); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
