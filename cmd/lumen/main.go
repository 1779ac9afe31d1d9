package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lumen/internal/prof"
	"lumen/internal/version"
)

// errReported means diagnostics with errors were printed; the process
// exits non-zero without printing anything more.
var errReported = errors.New("errors reported")

var rootCmd = &cobra.Command{
	Use:           "lumen",
	Short:         "Name resolution for lumen modules",
	Long:          `lumen resolves every identifier of a set of lumen modules to a unique symbol`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupTracing(cmd); err != nil {
			return err
		}
		return startProfiling(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		finishRun(false)
	},
}

var profSession *prof.Session

func startProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	cpu, err := flags.GetString("cpuprofile")
	if err != nil {
		return fmt.Errorf("failed to get cpuprofile flag: %w", err)
	}
	mem, err := flags.GetString("memprofile")
	if err != nil {
		return fmt.Errorf("failed to get memprofile flag: %w", err)
	}
	profSession, err = prof.Start(cpu, mem)
	return err
}

// finishRun stops profiling and tracing; it is safe to call twice.
func finishRun(failed bool) {
	if err := profSession.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "lumen: %v\n", err)
	}
	profSession = nil
	finishTracing(failed)
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(namesCmd)
	rootCmd.AddCommand(diagCmd)
	rootCmd.AddCommand(sigCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().Int("jobs", 0, "max parallel parse workers (0=auto)")
	rootCmd.PersistentFlags().String("path-mode", "auto", "how file paths are shown (auto|absolute|relative|basename)")
	rootCmd.PersistentFlags().String("trace", "", "write trace events to this file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "", "trace output format (text|ndjson); inferred from --trace when empty")
	rootCmd.PersistentFlags().Int("trace-ring-size", 4096, "events kept in memory at --trace-level error")
	rootCmd.PersistentFlags().String("cpuprofile", "", "write a CPU profile to this file")
	rootCmd.PersistentFlags().String("memprofile", "", "write a heap profile to this file on exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "lumen: %v\n", err)
		}
		finishRun(true)
		os.Exit(1)
	}
}

// isTerminal also accepts Cygwin and MSYS ptys, which term reports as pipes.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) || isatty.IsCygwinTerminal(f.Fd())
}
