package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/san-kum/trimesh/internal/config"
	"github.com/san-kum/trimesh/internal/gui"
	"github.com/san-kum/trimesh/internal/sim"
	"github.com/san-kum/trimesh/internal/viz"
)

var (
	configFile string
	preset     string
	seed       int64
	points     int
	width      float64
	height     float64
	framerate  float64
	corners    bool
	fps        int

	outFile  string
	jsonFile string
	scale    float64
	runs     int
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "trimesh",
		Short:        "real-time delaunay mesh of moving points",
		SilenceUsage: true,
		RunE:         runLive,
	}
	addSimFlags(rootCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the mesh in the terminal",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "watch the mesh in a native window",
		RunE:  runGUI,
	}
	addSimFlags(guiCmd)

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "run headless and write the final mesh as svg (and json)",
		RunE:  runSnapshot,
	}
	addSimFlags(snapshotCmd)
	snapshotCmd.Flags().Float64("time", 5.0, "simulated seconds before the snapshot")
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "mesh.svg", "svg output path")
	snapshotCmd.Flags().StringVar(&jsonFile, "json", "", "also write the frame as json")
	snapshotCmd.Flags().Float64Var(&scale, "scale", 1.0, "svg scale factor")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "run headless and summarise mesh metrics",
		RunE:  runStats,
	}
	addSimFlags(statsCmd)
	statsCmd.Flags().Float64("time", 10.0, "simulated seconds")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency analysis of triangle churn",
		RunE:  runAnalyze,
	}
	addSimFlags(analyzeCmd)
	analyzeCmd.Flags().Float64("time", 10.0, "simulated seconds")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark triangulation across point counts",
		RunE:  runBench,
	}
	benchCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	benchCmd.Flags().IntVar(&runs, "runs", 20, "triangulations per point count")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(headingStyle.Render("presets"))
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-14s %s\n", name, mutedStyle.Render(fmt.Sprintf(
					"%gx%g  %d points  %gHz  speed %g±%g  retarget %g±%g  corners=%v",
					p.Width, p.Height, p.Points, p.Framerate,
					p.Speed.Mean, p.Speed.Variance, p.Retarget.Mean, p.Retarget.Variance, p.Corners)))
			}
			return nil
		},
	}

	rootCmd.AddCommand(liveCmd, guiCmd, snapshotCmd, statsCmd, analyzeCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: time based)")
	cmd.Flags().IntVarP(&points, "points", "n", config.DefaultPoints, "number of moving points")
	cmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "domain width")
	cmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "domain height")
	cmd.Flags().Float64Var(&framerate, "framerate", config.DefaultFramerate, "simulation steps per second")
	cmd.Flags().BoolVar(&corners, "corners", false, "anchor the four domain corners")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "render rate for live view")
}

// resolveConfig applies the preset, then the config file, then any flags
// given explicitly on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("points") {
		cfg.Points = points
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("framerate") {
		cfg.Framerate = framerate
	}
	if flags.Changed("corners") {
		cfg.Corners = corners
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func builder(cfg *config.Config) func(int64) *sim.Simulation {
	return func(seed int64) *sim.Simulation {
		c := *cfg
		c.Seed = seed
		return c.NewSimulation()
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m := viz.NewModel(builder(cfg), cfg.Seed, cfg.FPS, "trimesh")
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("live view: %w", err)
	}
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	gui.Run(builder(cfg), cfg.Seed, "trimesh")
	return nil
}
