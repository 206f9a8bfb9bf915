package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/soypat/boolde"
	"github.com/soypat/boolde/internal/luatransition"
	"github.com/soypat/boolde/plotdata"
	"github.com/soypat/boolde/series"
)

var (
	logLevel   string
	outputJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "boolde",
	Short: "Boolean delay equation simulator",
}

var runCmd = &cobra.Command{
	Use:   "run <model.yaml>",
	Short: "Solve a BDE model described in a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logger := logrus.New()
		logger.SetLevel(level)

		mf, err := loadModelFile(args[0])
		if err != nil {
			return err
		}
		logger.Infof("loaded model: %d variables, %d forcing inputs, %d delays",
			len(mf.Variables), len(mf.Forcing), len(mf.Delays))

		stol := mf.seriesTolerance()
		history := make([]series.BooleanSeries, len(mf.History))
		for i, sf := range mf.History {
			s, err := sf.build(stol, series.WithLabel(mf.Variables[i]))
			if err != nil {
				return fmt.Errorf("building history for %s: %w", mf.Variables[i], err)
			}
			history[i] = s
		}
		forcingSeries := make([]series.BooleanSeries, len(mf.ForcingSeries))
		for i, sf := range mf.ForcingSeries {
			s, err := sf.build(stol, series.WithLabel(mf.Forcing[i]))
			if err != nil {
				return fmt.Errorf("building forcing series for %s: %w", mf.Forcing[i], err)
			}
			forcingSeries[i] = s
		}

		script, err := mf.luaScript()
		if err != nil {
			return err
		}
		adapter, err := luatransition.New(script)
		if err != nil {
			return err
		}
		defer adapter.Close()

		model := boolde.Model{
			Variables:     symbolsOf(mf.Variables),
			Forcing:       symbolsOf(mf.Forcing),
			Delays:        mf.Delays,
			Transition:    boolde.TransitionFunc(adapter.Evaluate),
			History:       history,
			ForcingSeries: forcingSeries,
			Tolerance:     mf.tolerance(),
		}

		var cfg boolde.Config
		cfg.Log = logger
		cfg.Algorithm.MaxSwitchDensity = mf.Algorithm.MaxSwitchDensity

		engine, err := boolde.NewEngine(model, cfg)
		if err != nil {
			return err
		}
		results, err := engine.Solve(mf.EndTime)
		if err != nil {
			return err
		}

		if outputJSON {
			return printJSON(results)
		}
		return printTabular(results, mf.Variables)
	},
}

func symbolsOf(names []string) []boolde.Symbol {
	out := make([]boolde.Symbol, len(names))
	for i, n := range names {
		out[i] = boolde.Symbol(n)
	}
	return out
}

func printTabular(results map[boolde.Symbol]series.BooleanSeries, order []string) error {
	list := make([]series.BooleanSeries, 0, len(order))
	for _, name := range order {
		list = append(list, results[boolde.Symbol(name)])
	}
	return plotdata.PrintTabular(os.Stdout, "time", list, plotdata.TabularOptions{})
}

func printJSON(results map[boolde.Symbol]series.BooleanSeries) error {
	out := make(map[string]plotdata.StepPlotData, len(results))
	for sym, s := range results {
		out[string(sym)] = plotdata.ToStepPlotData(s)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error)")
	runCmd.Flags().BoolVar(&outputJSON, "json", false, "Emit step-plot JSON instead of a tabular printout")
	rootCmd.AddCommand(runCmd)
}
