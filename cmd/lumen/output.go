package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lumen/internal/diag"
	"lumen/internal/diagfmt"
	"lumen/internal/driver"
)

type globalFlags struct {
	color          bool
	quiet          bool
	timings        bool
	maxDiagnostics int
	jobs           int
	pathMode       diagfmt.PathMode
	// tui renders per-file progress while resolving; only diag sets it.
	tui bool
}

func readGlobalFlags(cmd *cobra.Command) (globalFlags, error) {
	var g globalFlags
	flags := cmd.Root().PersistentFlags()

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return g, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "on":
		g.color = true
	case "off":
	case "auto":
		g.color = isTerminal(os.Stderr)
	default:
		return g, fmt.Errorf("unknown color mode %q (want auto, on or off)", colorFlag)
	}
	if g.quiet, err = flags.GetBool("quiet"); err != nil {
		return g, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if g.timings, err = flags.GetBool("timings"); err != nil {
		return g, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if g.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return g, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if g.jobs, err = flags.GetInt("jobs"); err != nil {
		return g, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	pathMode, err := flags.GetString("path-mode")
	if err != nil {
		return g, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	var ok bool
	if g.pathMode, ok = diagfmt.ParsePathMode(pathMode); !ok {
		return g, fmt.Errorf("unknown path mode %q", pathMode)
	}
	return g, nil
}

// resolve runs the driver over args. jsonTimings folds the phase timings
// into the bag instead of printing them.
func resolve(cmd *cobra.Command, args []string, g globalFlags, jsonTimings bool) (*driver.Result, error) {
	opts := driver.Options{
		MaxDiagnostics: g.maxDiagnostics,
		Jobs:           g.jobs,
		Timings:        g.timings && jsonTimings,
	}
	var res *driver.Result
	var err error
	if g.tui {
		res, err = runNamesWithUI(cmd.Context(), "resolving names", args, opts)
	} else {
		res, err = driver.Names(cmd.Context(), args, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("resolution failed: %w", err)
	}
	res.Bag.Sort()
	return res, nil
}

// reportPretty prints the diagnostics of res to stderr and returns
// errReported when any of them is an error.
func reportPretty(cmd *cobra.Command, res *driver.Result, g globalFlags) error {
	if res.Bag.Len() > 0 {
		diagfmt.Pretty(cmd.ErrOrStderr(), res.Bag, res.FileSet, diagfmt.PrettyOpts{
			Color:     g.color,
			Context:   1,
			PathMode:  g.pathMode,
			ShowNotes: true,
		})
	}
	if g.timings && !g.quiet {
		fmt.Fprint(cmd.ErrOrStderr(), res.Timer.Summary())
	}
	if res.Bag.HasErrors() {
		return errReported
	}
	return nil
}

func errorCount(bag *diag.Bag) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			n++
		}
	}
	return n
}
