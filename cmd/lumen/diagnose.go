package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lumen/internal/diagfmt"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] [file.lm|directory ...]",
	Short: "Check lumen sources and report diagnostics",
	Long:  `Run the lexer, parser and name resolution and report every diagnostic found`,
	RunE:  runDiagnose,
}

func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	diagCmd.Flags().Bool("with-notes", false, "include diagnostic notes in json output")
	diagCmd.Flags().Bool("no-positions", false, "omit line/column positions from json output")
	diagCmd.Flags().String("ui", string(uiModeAuto), "progress UI for pretty output (auto|on|off)")
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	noPositions, err := cmd.Flags().GetBool("no-positions")
	if err != nil {
		return fmt.Errorf("failed to get no-positions flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}

	switch format {
	case "pretty":
		g.tui = progressUIEnabled(mode, g.quiet)
		res, err := resolve(cmd, args, g, false)
		if err != nil {
			return err
		}
		if err := reportPretty(cmd, res, g); err != nil {
			if !g.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d error(s)\n", errorCount(res.Bag))
			}
			return err
		}
		if !g.quiet {
			fmt.Fprintln(cmd.ErrOrStderr(), "no errors")
		}
		return nil
	case "json":
		res, err := resolve(cmd, args, g, true)
		if err != nil {
			return err
		}
		if err := diagfmt.JSON(cmd.OutOrStdout(), res.Bag, res.FileSet, diagfmt.JSONOpts{
			IncludePositions: !noPositions,
			PathMode:         g.pathMode,
			Max:              g.maxDiagnostics,
			IncludeNotes:     withNotes,
		}); err != nil {
			return fmt.Errorf("failed to encode diagnostics: %w", err)
		}
		if res.Bag.HasErrors() {
			return errReported
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
