package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/san-kum/bsviz/internal/config"
	"github.com/san-kum/bsviz/internal/export"
	"github.com/san-kum/bsviz/internal/search"
	"github.com/san-kum/bsviz/internal/session"
	"github.com/san-kum/bsviz/internal/viz"
)

var (
	configFile string
	preset     string
	arrayFlag  string
	arrayFile  string
	target     float64
	format     string
	theme      string
	verbose    bool
	plotWidth  int
	plotHeight int
	outFile    string

	logger = zap.NewNop()
)

const tuiLogFile = "bsviz.log"

// main runs the bsviz CLI. Without a subcommand it opens the interactive
// view; it exits with status 1 when a command returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	logger = zap.NewNop()

	rootCmd := &cobra.Command{
		Use:          "bsviz",
		Short:        "step through a binary search",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// the interactive view owns the terminal, stderr logs would tear it
			if cmd.Name() == "bsviz" || cmd.Name() == "tui" {
				return nil
			}
			return initLogger("stderr")
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	addInputFlags(rootCmd)
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "print every search step, one per line",
		Args:  cobra.NoArgs,
		RunE:  runTrace,
	}
	addInputFlags(traceCmd)
	traceCmd.Flags().StringVarP(&format, "format", "f", config.DefaultFormat, "output format (text, json, csv)")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "chart how the search window shrinks",
		Args:  cobra.NoArgs,
		RunE:  runPlot,
	}
	addInputFlags(plotCmd)
	plotCmd.Flags().IntVar(&plotWidth, "width", 60, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive step-through view",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	addInputFlags(tuiCmd)
	tuiCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in arrays",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "render every step as an svg storyboard",
		Args:  cobra.NoArgs,
		RunE:  runSVG,
	}
	addInputFlags(svgCmd)
	svgCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	svgCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	rootCmd.AddCommand(traceCmd, plotCmd, tuiCmd, svgCmd, presetsCmd)
	return rootCmd
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&arrayFlag, "array", "a", "", "sorted values, e.g. \"2,5,8,12\"")
	cmd.Flags().StringVar(&arrayFile, "file", "", "read sorted values from a file")
	cmd.Flags().Float64VarP(&target, "target", "t", config.DefaultTarget, "value to search for")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a built-in array and target")
	cmd.MarkFlagsMutuallyExclusive("array", "file")
}

func initLogger(output string) error {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{output}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

// resolveConfig layers preset, config file and explicit flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(cfg, configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("array") {
		vals, err := config.ParseValues(arrayFlag)
		if err != nil {
			return nil, fmt.Errorf("--array: %w", err)
		}
		cfg.Array = vals
	}
	if flags.Changed("file") {
		vals, err := config.ReadValues(arrayFile)
		if err != nil {
			return nil, fmt.Errorf("--file: %w", err)
		}
		cfg.Array = vals
	}
	if flags.Changed("target") {
		cfg.Target = target
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Lookup("theme") != nil && flags.Changed("theme") {
		cfg.Theme = theme
	}
	if verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("config resolved",
		zap.Int("size", len(cfg.Array)),
		zap.Float64("target", cfg.Target),
		zap.String("format", cfg.Format))
	return cfg, nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	tr, err := search.Plan(cfg.Array, cfg.Target)
	if err != nil {
		return err
	}
	if tr.Len() > search.MaxSteps(len(tr.Array)) {
		logger.Warn("trace longer than expected", zap.Int("steps", tr.Len()))
	}

	_, found := tr.Found()
	logger.Debug("trace planned", zap.Int("steps", tr.Len()), zap.Bool("found", found))

	return export.Write(cmd.OutOrStdout(), cfg.Format, tr)
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	tr, err := search.Plan(cfg.Array, cfg.Target)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "array: %s\n", formatValues(tr.Array))
	if idx, ok := tr.Found(); ok {
		fmt.Fprintf(out, "target %s found at index %d after %d steps\n\n", formatValue(tr.Target), idx, tr.Len()-1)
	} else {
		fmt.Fprintf(out, "target %s absent, %d steps\n\n", formatValue(tr.Target), tr.Len()-1)
	}
	fmt.Fprintln(out, export.PlotSearchSpace(tr, plotWidth, plotHeight))
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	if verbose {
		if err := initLogger(tuiLogFile); err != nil {
			return err
		}
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := session.New(cfg.Array, cfg.Target, session.WithLogger(logger))
	if err != nil {
		return err
	}
	return viz.Run(sess, cfg.Theme)
}

func runSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	tr, err := search.Plan(cfg.Array, cfg.Target)
	if err != nil {
		return err
	}
	// Validate has already rejected unknown names; empty selects the default
	th, _ := viz.GetTheme(cfg.Theme)
	doc := viz.TraceToSVG(tr, th)

	if outFile == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), doc)
		return err
	}
	if err := os.WriteFile(outFile, []byte(doc), 0644); err != nil {
		return err
	}
	logger.Info("svg written", zap.String("path", outFile), zap.Int("steps", tr.Len()))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTARGET\tSIZE\tARRAY")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", name, formatValue(p.Target), len(p.Array), formatValues(p.Array))
	}
	return w.Flush()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatValues(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = formatValue(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
