package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/unitlab/internal/catalog"
	"github.com/san-kum/unitlab/internal/config"
	"github.com/san-kum/unitlab/internal/constants"
	"github.com/san-kum/unitlab/internal/conversion"
	"github.com/san-kum/unitlab/internal/export"
	"github.com/san-kum/unitlab/internal/logging"
	"github.com/san-kum/unitlab/internal/metrics"
	"github.com/san-kum/unitlab/internal/viz"
)

var (
	configFile  string
	catalogs    []string
	verbose     bool
	showMetrics bool
	repName     string
	bound       uint64
	lossy       bool
	format      string
	outFile     string
	samples     int
	step        float64
	preset      string

	cfg           *config.Config
	boundDeclared bool
	registry      *catalog.Registry
	counters      *metrics.Conversions
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "unitlab",
		Short:             "exact unit algebra and conversion-safety lab",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringSliceVar(&catalogs, "catalog", nil, "unit definition globs (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&showMetrics, "metrics", false, "print plan cache counters on exit")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "representation preset (group/name)")

	unitsCmd := &cobra.Command{
		Use:   "units",
		Short: "list registered units",
		Args:  cobra.NoArgs,
		RunE:  listUnits,
	}

	dimCmd := &cobra.Command{
		Use:   "dim [expr]",
		Short: "show dimension and magnitude of a unit expression",
		Args:  cobra.ExactArgs(1),
		RunE:  showDimension,
	}

	convertCmd := &cobra.Command{
		Use:   "convert [value] [from] [to]",
		Short: "convert a value between units",
		Args:  cobra.ExactArgs(3),
		RunE:  convertCommand,
	}
	addRepFlags(convertCmd)
	convertCmd.Flags().BoolVar(&lossy, "lossy", false, "accept truncation")

	classifyCmd := &cobra.Command{
		Use:   "classify [from] [to]",
		Short: "classify a conversion for a representation",
		Args:  cobra.ExactArgs(2),
		RunE:  classifyCommand,
	}
	addRepFlags(classifyCmd)

	constantsCmd := &cobra.Command{
		Use:   "constants",
		Short: "list physical constants",
		Args:  cobra.NoArgs,
		RunE:  listConstants,
	}

	exportCmd := &cobra.Command{
		Use:   "export [unit]",
		Short: "export the conversion table of a unit",
		Args:  cobra.ExactArgs(1),
		RunE:  exportTable,
	}
	addRepFlags(exportCmd)
	exportCmd.Flags().StringVar(&format, "format", "json", "output format (json, csv)")
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	plotCmd := &cobra.Command{
		Use:   "plot [from] [to]",
		Short: "plot float64 round-trip error",
		Args:  cobra.ExactArgs(2),
		RunE:  plotRoundTrip,
	}
	plotCmd.Flags().IntVar(&samples, "samples", 100, "number of sample values")
	plotCmd.Flags().Float64Var(&step, "step", 1, "spacing between sample values")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive converter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := resolveRep(cmd)
			if err != nil {
				return err
			}
			return viz.RunInteractive(registry, rep)
		},
	}
	addRepFlags(tuiCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [group]",
		Short: "list representation presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	rootCmd.AddCommand(unitsCmd, dimCmd, convertCmd, classifyCmd, constantsCmd, exportCmd, plotCmd, tuiCmd, presetsCmd)

	if err := run(rootCmd, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes root, then reports counters and flushes logs whether or not
// the command failed.
func run(root *cobra.Command, stderr io.Writer) error {
	err := root.Execute()
	if showMetrics && counters != nil {
		fmt.Fprint(stderr, metricsTable(counters))
	}
	logging.Sync()
	return err
}

func addRepFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&repName, "rep", "", "representation (int8..uint64, float32, float64)")
	cmd.Flags().Uint64Var(&bound, "bound", 0, "largest absolute value to convert")
}

// setup loads config, logging and the unit registry before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg = config.DefaultConfig()
	if configFile != "" {
		if cfg, err = config.Load(configFile); err != nil {
			return err
		}
	}
	boundDeclared = configFile != "" || preset != ""
	if preset != "" {
		p, err := presetConfig(preset)
		if err != nil {
			return err
		}
		cfg.Representation, cfg.Bound, cfg.Lossy = p.Representation, p.Bound, p.Lossy
	}

	logCfg := cfg.Logging
	if verbose {
		logCfg.Level = "debug"
	}
	if err := logging.Initialize(logCfg); err != nil {
		return err
	}

	counters = metrics.NewConversions(prometheus.NewRegistry())
	conversion.DefaultCache = conversion.NewCache(counters)

	registry = catalog.Builtin()
	patterns := append(append([]string{}, cfg.Catalogs...), catalogs...)
	if len(patterns) > 0 {
		n, err := registry.LoadGlob(patterns...)
		if err != nil {
			return err
		}
		logging.Debug("catalog files loaded", zap.Int("files", n))
	}
	registry.Freeze()
	return nil
}

func presetConfig(name string) (*config.Config, error) {
	for _, group := range config.ListGroups() {
		for _, p := range config.ListPresets(group) {
			if name == group+"/"+p {
				return config.GetPreset(group, p), nil
			}
		}
	}
	return nil, fmt.Errorf("unknown preset: %s", name)
}

// resolveRep applies --rep and --bound over the configured representation.
// resolveRep merges flags over the config. The bound stays zero, meaning the
// default, unless a flag, preset or config file declares it; convert only
// vets against a declared bound.
func resolveRep(cmd *cobra.Command) (conversion.Rep, error) {
	name, b := cfg.Representation, uint64(0)
	if boundDeclared {
		b = cfg.Bound
	}
	if cmd.Flags().Changed("rep") {
		name = repName
	}
	if cmd.Flags().Changed("bound") {
		b = bound
	}
	rep, err := conversion.ParseRep(name)
	if err != nil {
		return rep, err
	}
	return rep.WithBound(b), nil
}

func listUnits(cmd *cobra.Command, args []string) error {
	var rows [][]string
	for _, e := range registry.Entries() {
		mag, kind := "", "ratio"
		if e.Affine {
			kind = "affine"
			mag = e.Scale.Magnitude().String() + " @ " + e.Scale.Origin().String()
		} else {
			mag = e.Unit.Magnitude().String()
		}
		rows = append(rows, []string{e.Name, e.Symbol, e.Dimension().String(), kind, mag})
	}
	fmt.Print(viz.Table([]string{"NAME", "SYMBOL", "DIM", "KIND", "MAGNITUDE"}, rows))
	return nil
}

func showDimension(cmd *cobra.Command, args []string) error {
	if e, ok := registry.Entry(args[0]); ok && e.Affine {
		fmt.Printf("%s  %s\n", viz.Title.Render(e.Name), e.Scale)
		fmt.Printf("dimension  %s\norigin     %s\n", e.Dimension(), e.Scale.Origin())
		return nil
	}
	u, err := registry.Parse(args[0])
	if err != nil {
		return err
	}
	m := u.Magnitude()
	fmt.Printf("%s\n", viz.Title.Render(args[0]))
	fmt.Printf("dimension  %s\n", u.Dimension())
	fmt.Printf("magnitude  %s\n", m)
	fmt.Printf("value      %s\n", strconv.FormatFloat(m.Float64(), 'g', -1, 64))
	if m.IsRational() {
		num, errN := m.Numerator()
		den, errD := m.Denominator()
		if errN == nil && errD == nil {
			fmt.Printf("ratio      %d/%d\n", num, den)
		}
	}
	return nil
}

func classifyCommand(cmd *cobra.Command, args []string) error {
	rep, err := resolveRep(cmd)
	if err != nil {
		return err
	}
	from, err := registry.Parse(args[0])
	if err != nil {
		return err
	}
	to, err := registry.Parse(args[1])
	if err != nil {
		return err
	}
	p := conversion.DefaultCache.Plan(from, to, rep)

	fmt.Printf("%s -> %s  %s\n", from, to, viz.ClassBadge(p.Class, 0))
	fmt.Printf("rep      %s\n", rep)
	if p.Class == conversion.Rejected {
		fmt.Printf("reason   %s\n", viz.ErrorText.Render(p.Err.Error()))
		return nil
	}
	fmt.Printf("factor   %s (%s)\n", p.Ratio, strconv.FormatFloat(p.Factor, 'g', -1, 64))
	if !p.Irrational && rep.Kind == conversion.KindIntegral {
		fmt.Printf("ratio    %d/%d, %s\n", p.Num, p.Den, p.Order)
	}
	if p.NeedsAcknowledgement() {
		fmt.Println(viz.Subtle.Render("needs --lossy or divisible values"))
	}
	return nil
}

func listConstants(cmd *cobra.Command, args []string) error {
	var rows [][]string
	for _, c := range constants.All {
		rows = append(rows, []string{
			c.Name,
			c.Unit().Dimension().String(),
			c.Magnitude().String(),
			strconv.FormatFloat(c.Quantity().Approximate(), 'g', 10, 64),
		})
	}
	fmt.Print(viz.Table([]string{"NAME", "DIM", "MAGNITUDE", "BASE VALUE"}, rows))
	return nil
}

func exportTable(cmd *cobra.Command, args []string) error {
	rep, err := resolveRep(cmd)
	if err != nil {
		return err
	}
	tbl, err := export.Build(cmd.Context(), registry, args[0], rep, conversion.DefaultCache)
	if err != nil {
		return err
	}
	if outFile == "" {
		return export.Write(os.Stdout, format, tbl)
	}
	if err := export.Save(outFile, format, tbl); err != nil {
		return err
	}
	logging.Info("exported conversion table", zap.String("unit", args[0]), zap.String("path", outFile), zap.Int("rows", len(tbl.Rows)))
	return nil
}

func plotRoundTrip(cmd *cobra.Command, args []string) error {
	from, err := registry.Parse(args[0])
	if err != nil {
		return err
	}
	to, err := registry.Parse(args[1])
	if err != nil {
		return err
	}
	plot, err := viz.PlotRoundTrip(from, to, samples, step)
	if err != nil {
		return err
	}
	fmt.Println(plot)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	groups := config.ListGroups()
	if len(args) == 1 {
		groups = []string{args[0]}
	}
	var rows [][]string
	for _, g := range groups {
		names := config.ListPresets(g)
		if names == nil {
			return fmt.Errorf("unknown preset group: %s", g)
		}
		for _, n := range names {
			p := config.GetPreset(g, n)
			rep, err := p.Rep()
			if err != nil {
				return err
			}
			rows = append(rows, []string{g + "/" + n, rep.String(), strconv.FormatBool(p.Lossy)})
		}
	}
	fmt.Print(viz.Table([]string{"PRESET", "REP", "LOSSY"}, rows))
	return nil
}

func metricsTable(c *metrics.Conversions) string {
	snap := c.Snapshot()
	var rows [][]string
	for _, k := range sortedKeys(snap) {
		rows = append(rows, []string{k, strconv.FormatFloat(snap[k], 'g', -1, 64)})
	}
	rows = append(rows, []string{"hit_ratio", strconv.FormatFloat(c.Value(), 'f', 3, 64)})
	return c.Name() + "\n" + viz.Table([]string{"COUNTER", "VALUE"}, rows)
}
