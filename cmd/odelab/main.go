package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	dataDir  string
	logLevel string
	noColor  bool
	logger   = slog.New(slog.DiscardHandler)

	// model run flags, shared by run, live, phase and compare
	method     string
	coupling   string
	tn         float64
	steps      int
	initState  []float64
	limit      float64
	params     []string
	outputs    []string
	storeRun   bool
	runName    string
	preset     string
	configFile string

	// batch
	jobs int

	// export-json
	exportOut string

	// live
	frames    int
	frameRate int
	theme     string

	// order
	orderBase   int
	orderLevels int

	// sweep
	sweepParam     string
	sweepMin       float64
	sweepMax       float64
	sweepPoints    int
	sweepSeries    int
	sweepTransient float64

	// advect
	nx          int
	nt          int
	viscosities []float64
	xMax        float64
	tMax        float64
	dt          float64
	clip        float64
)

func main() {
	rootCmd := newRootCmd()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "odelab",
		Short:         "explicit Runge-Kutta lab for population and epidemic models",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(os.Stderr, logLevel, noColor)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odelab", "run store directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "solve a model",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runModel,
	}
	addSetupFlags(runCmd)
	runCmd.Flags().StringArrayVar(&outputs, "out", nil, "output file (.png .svg .pdf .html .txt .gif), repeatable")
	runCmd.Flags().BoolVar(&storeRun, "store", true, "save the run in the data directory")
	runCmd.Flags().StringVar(&runName, "name", "", "run name")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	batchCmd := &cobra.Command{
		Use:   "batch [file.yaml]",
		Short: "run every experiment of a batch file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().IntVar(&jobs, "jobs", 0, "concurrent experiments (0: one per CPU)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringArrayVar(&outputs, "out", nil, "also write the chart to file, repeatable")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&exportOut, "out", "", "output file instead of stdout")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list models and their parameters",
		RunE:  listModels,
	}

	methodsCmd := &cobra.Command{
		Use:   "methods",
		Short: "list integration methods",
		RunE:  listMethods,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE:  listPresets,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [model] [method1] [method2] ...",
		Short: "compare methods on the same model",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareMethods,
	}
	addSetupFlags(compareCmd)

	orderCmd := &cobra.Command{
		Use:   "order [method...]",
		Short: "estimate the convergence order of methods on y' = y",
		RunE:  observedOrder,
	}
	orderCmd.Flags().IntVar(&orderBase, "steps", 10, "coarsest step count")
	orderCmd.Flags().IntVar(&orderLevels, "levels", 4, "number of step halvings")

	sweepCmd := &cobra.Command{
		Use:   "sweep [model]",
		Short: "sweep a model parameter and record where a series settles",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addSetupFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "vary", "", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&sweepMin, "from", 0, "first parameter value")
	sweepCmd.Flags().Float64Var(&sweepMax, "to", 1, "last parameter value")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 20, "number of parameter values")
	sweepCmd.Flags().IntVar(&sweepSeries, "series", 0, "index of the recorded series")
	sweepCmd.Flags().Float64Var(&sweepTransient, "transient", 0.5, "fraction of the run discarded before recording")
	sweepCmd.Flags().StringArrayVar(&outputs, "out", nil, "also write the chart to file, repeatable")
	_ = sweepCmd.MarkFlagRequired("vary")

	advectCmd := &cobra.Command{
		Use:       "advect [burgers|viscous|flow2d]",
		Short:     "run a finite-difference advection experiment",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"burgers", "viscous", "flow2d"},
		RunE:      runAdvect,
	}
	advectCmd.Flags().IntVar(&nx, "nx", 0, "grid points in x (0: default)")
	advectCmd.Flags().IntVar(&nt, "nt", 0, "time levels, or steps for flow2d (0: default)")
	advectCmd.Flags().Float64SliceVar(&viscosities, "viscosity", []float64{0.001, 0.05, 0.01}, "viscosities compared by the viscous run")
	advectCmd.Flags().Float64Var(&xMax, "x-max", 0, "domain length (0: default)")
	advectCmd.Flags().Float64Var(&tMax, "t-max", 0, "time horizon (0: default)")
	advectCmd.Flags().Float64Var(&dt, "dt", 0, "flow2d time step (0: default)")
	advectCmd.Flags().Float64Var(&clip, "limit", 1000, "clip burgers values to [-limit, limit], 0 disables")
	advectCmd.Flags().StringArrayVar(&outputs, "out", nil, "output file, repeatable (.gif animates burgers)")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "solve a model and play the trajectory in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSetupFlags(liveCmd)
	liveCmd.Flags().IntVar(&frames, "frames", 120, "number of frames")
	liveCmd.Flags().IntVar(&frameRate, "fps", 15, "frame rate")
	liveCmd.Flags().StringVar(&theme, "theme", "cyberpunk", "color theme")

	phaseCmd := &cobra.Command{
		Use:   "phase [model]",
		Short: "phase-plane plot of a two-state model",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	addSetupFlags(phaseCmd)
	phaseCmd.Flags().StringArrayVar(&outputs, "out", nil, "also write the chart to file, repeatable")

	rootCmd.AddCommand(runCmd, batchCmd, listCmd, plotCmd, exportJSONCmd, modelsCmd, methodsCmd,
		presetsCmd, compareCmd, orderCmd, sweepCmd, advectCmd, liveCmd, phaseCmd)
	return rootCmd
}

func addSetupFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&method, "method", "rk4", "integration method")
	cmd.Flags().StringVar(&coupling, "coupling", "staggered", "coupling of multi-state models (staggered, simultaneous)")
	cmd.Flags().Float64Var(&tn, "tn", 0, "time horizon (0: model default)")
	cmd.Flags().IntVar(&steps, "steps", 0, "step count (0: model default)")
	cmd.Flags().Float64SliceVar(&initState, "init", nil, "initial state, comma separated")
	cmd.Flags().Float64Var(&limit, "limit", 0, "saturate derivatives to [-limit, limit], 0 disables")
	cmd.Flags().StringArrayVar(&params, "param", nil, "parameter override name=value, repeatable")
}
