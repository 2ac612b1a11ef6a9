package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/gzlab/internal/config"
	"github.com/san-kum/gzlab/internal/export"
	"github.com/san-kum/gzlab/internal/stability"
	"github.com/san-kum/gzlab/internal/store"
	"github.com/san-kum/gzlab/internal/sweep"
	"github.com/san-kum/gzlab/internal/tui"
)

var (
	dataDir    string
	vesselFile string
	vesselName string

	draft    float64
	kg       float64
	gmMethod string
	saveRun  bool

	kgMin  float64
	kgMax  float64
	kgStep float64

	genMin  float64
	genMax  float64
	genStep float64
	outPath string

	svgWidth  int
	svgHeight int
)

// main registers the gzlab commands; with no subcommand it opens the
// interactive analyzer.
func main() {
	rootCmd := &cobra.Command{
		Use:   "gzlab",
		Short: "vessel statical stability (gz curve) analyzer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gzlab", "data directory for saved runs")
	rootCmd.PersistentFlags().StringVar(&vesselFile, "vessel-file", "", "vessel dataset file (yaml)")
	rootCmd.PersistentFlags().StringVar(&vesselName, "vessel", "delmonte", "built-in vessel dataset")

	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "compute a gz curve for one draft and kg",
		RunE:  computeCurve,
	}
	computeCmd.Flags().Float64Var(&draft, "draft", 10.0, "draft (m)")
	computeCmd.Flags().Float64Var(&kg, "kg", config.DefaultKG, "height of center of gravity above keel (m)")
	computeCmd.Flags().StringVar(&gmMethod, "gm", "slope", "gm estimation method (slope, form)")
	computeCmd.Flags().BoolVar(&saveRun, "save", false, "save the run to the data directory")

	hydroCmd := &cobra.Command{
		Use:   "hydro",
		Short: "show the hydrostatic table or interpolate one displacement",
		RunE:  showHydro,
	}
	hydroCmd.Flags().Float64Var(&draft, "draft", 0, "draft to interpolate (m); 0 shows the full table")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep kg at a fixed draft and report the limiting kg",
		RunE:  sweepKG,
	}
	sweepCmd.Flags().Float64Var(&draft, "draft", 10.0, "draft (m)")
	sweepCmd.Flags().Float64Var(&kgMin, "kg-min", config.DefaultMinKG, "sweep start (m)")
	sweepCmd.Flags().Float64Var(&kgMax, "kg-max", config.DefaultMaxKG, "sweep end (m)")
	sweepCmd.Flags().Float64Var(&kgStep, "kg-step", 0.5, "sweep step (m)")
	sweepCmd.Flags().StringVar(&gmMethod, "gm", "slope", "gm estimation method (slope, form)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showSavedRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run's curve to csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run to json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a saved run's curve to svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outPath, "out", "curve.svg", "output file")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 640, "svg width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 360, "svg height")

	genTableCmd := &cobra.Command{
		Use:   "gen-table",
		Short: "generate a hydrostatic table from the legacy quadratic formula",
		RunE:  genTable,
	}
	genTableCmd.Flags().Float64Var(&genMin, "min", 2.0, "minimum draft (m)")
	genTableCmd.Flags().Float64Var(&genMax, "max", 14.0, "maximum draft (m)")
	genTableCmd.Flags().Float64Var(&genStep, "step", 1.0, "draft step (m)")
	genTableCmd.Flags().StringVar(&outPath, "out", "", "write the points as yaml instead of printing")

	vesselsCmd := &cobra.Command{
		Use:   "vessels",
		Short: "list built-in vessel datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListVessels() {
				fmt.Println(name)
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive analyzer",
		RunE:  runTUI,
	}

	rootCmd.AddCommand(computeCmd, hydroCmd, sweepCmd, listCmd, showCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, genTableCmd, vesselsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadVessel resolves the dataset from --vessel-file or the built-in
// preset named by --vessel.
func loadVessel() (*config.Vessel, error) {
	if vesselFile != "" {
		return config.Load(vesselFile)
	}
	v := config.VesselPreset(vesselName)
	if v == nil {
		return nil, fmt.Errorf("unknown vessel: %s (available: %v)", vesselName, config.ListVessels())
	}
	return v, nil
}

func loadComputer() (*stability.Computer, string, error) {
	v, err := loadVessel()
	if err != nil {
		return nil, "", err
	}
	c, err := v.Build()
	if err != nil {
		return nil, "", err
	}
	return c, v.Name, nil
}

func computeCurve(cmd *cobra.Command, args []string) error {
	c, name, err := loadComputer()
	if err != nil {
		return err
	}
	gm, err := stability.EstimatorByName(gmMethod)
	if err != nil {
		return err
	}

	curve, err := c.Curve(draft, kg)
	if err != nil {
		return err
	}
	sum, err := stability.Summarize(curve, draft, kg, gm)
	if err != nil {
		return err
	}

	fmt.Printf("%s  draft %.2f m  kg %.2f m\n\n", name, draft, kg)

	graph := asciigraph.Plot(curve.GZValues(),
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption("gz (m) vs heel angle"),
	)
	fmt.Println(graph)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ANGLE\tGZ")
	for _, p := range curve.Points {
		fmt.Fprintf(w, "%.0f°\t%.4f\n", p.AngleDeg, p.GZ)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("displacement: %.0f t\n", sum.Displacement)
	fmt.Printf("max gz: %.3f m at %.0f°\n", sum.MaxGZ, sum.AngleOfMaxGZ)
	fmt.Printf("gm (%s): %.3f m\n", sum.GMMethod, sum.GM)
	if sum.Stable() {
		fmt.Println("positive initial stability")
	} else {
		fmt.Println("warning: negative gm, vessel is unstable")
	}

	if saveRun {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(name, draft, kg, curve, sum)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func showHydro(cmd *cobra.Command, args []string) error {
	v, err := loadVessel()
	if err != nil {
		return err
	}

	if draft != 0 {
		c, err := v.Build()
		if err != nil {
			return err
		}
		disp, err := c.Displacement(draft)
		if err != nil {
			return err
		}
		fmt.Printf("displacement at %.2f m draft: %.1f t\n", draft, disp)
		return nil
	}

	fmt.Printf("hydrostatic table: %s\n\n", v.Name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DRAFT\tDISPLACEMENT")
	for _, p := range v.Hydrostatics {
		fmt.Fprintf(w, "%.1f m\t%.0f t\n", p.Draft, p.Displacement)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	data := make([]float64, len(v.Hydrostatics))
	for i, p := range v.Hydrostatics {
		data[i] = p.Displacement
	}
	fmt.Println()
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("displacement (t) vs draft"),
	)
	fmt.Println(graph)

	return nil
}

func sweepKG(cmd *cobra.Command, args []string) error {
	c, name, err := loadComputer()
	if err != nil {
		return err
	}
	gm, err := stability.EstimatorByName(gmMethod)
	if err != nil {
		return err
	}

	kgs, err := sweep.KGRange(kgMin, kgMax, kgStep)
	if err != nil {
		return err
	}

	results, err := sweep.Run(c, draft, kgs, gm)
	if err != nil {
		return err
	}

	fmt.Printf("%s  draft %.2f m  kg %.1f..%.1f step %.2f\n\n", name, draft, kgMin, kgMax, kgStep)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KG\tGM\tMAX GZ\tAT")
	for _, r := range results {
		fmt.Fprintf(w, "%.2f\t%.3f\t%.3f\t%.0f°\n",
			r.KG, r.Summary.GM, r.Summary.MaxGZ, r.Summary.AngleOfMaxGZ)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	limit, found, err := sweep.LimitingKG(c, draft, kgs, gm)
	if err != nil {
		return err
	}
	fmt.Println()
	if found {
		fmt.Printf("limiting kg (gm > 0, %.2f m resolution): %.2f m\n", kgStep, limit)
	} else {
		fmt.Println("no swept kg yields positive gm")
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVESSEL\tTIME\tDRAFT\tKG\tGM\tMAX GZ")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.2f\t%.3f\t%.3f\n",
			run.ID,
			run.Vessel,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Draft,
			run.KG,
			run.Metrics["gm"],
			run.Metrics["max_gz"],
		)
	}
	return w.Flush()
}

func showSavedRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	curve, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("vessel: %s  draft %.2f m  kg %.2f m\n\n", meta.Vessel, meta.Draft, meta.KG)

	graph := asciigraph.Plot(curve.GZValues(),
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption("gz (m) vs heel angle"),
	)
	fmt.Println(graph)
	fmt.Println()
	fmt.Printf("displacement: %.0f t\n", meta.Metrics["displacement"])
	fmt.Printf("max gz: %.3f m at %.0f°\n", meta.Metrics["max_gz"], meta.Metrics["angle_of_max_gz"])
	fmt.Printf("gm (%s): %.3f m\n", meta.GMMethod, meta.Metrics["gm"])

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	curve, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}
	return export.WriteCSV(os.Stdout, curve)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	curve, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}

	run := export.Run{
		ID:     meta.ID,
		Vessel: meta.Vessel,
		Draft:  meta.Draft,
		KG:     meta.KG,
		Summary: &stability.Summary{
			Displacement: meta.Metrics["displacement"],
			MaxGZ:        meta.Metrics["max_gz"],
			AngleOfMaxGZ: meta.Metrics["angle_of_max_gz"],
			GM:           meta.Metrics["gm"],
			GMMethod:     meta.GMMethod,
		},
		Points: curve.Points,
	}
	return export.WriteJSON(os.Stdout, run)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	curve, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}

	svg := export.CurveToSVG(curve, svgWidth, svgHeight, "#00ff88")
	if svg == "" {
		return fmt.Errorf("curve too short to plot")
	}
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func genTable(cmd *cobra.Command, args []string) error {
	pts, err := config.GenerateHydrostatics(genMin, genMax, genStep)
	if err != nil {
		return err
	}

	if outPath != "" {
		v := &config.Vessel{Hydrostatics: pts}
		if err := config.Save(outPath, v); err != nil {
			return err
		}
		fmt.Printf("wrote %d points to %s (add a kn grid before loading)\n", len(pts), outPath)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DRAFT\tDISPLACEMENT")
	for _, p := range pts {
		fmt.Fprintf(w, "%.1f m\t%.1f t\n", p.Draft, p.Displacement)
	}
	return w.Flush()
}

func runTUI(cmd *cobra.Command, args []string) error {
	c, name, err := loadComputer()
	if err != nil {
		return err
	}
	return tui.Run(c, name, store.New(dataDir))
}
