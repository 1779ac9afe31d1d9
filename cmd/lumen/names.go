package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lumen/internal/nast"
)

var namesCmd = &cobra.Command{
	Use:   "names [flags] [file.lm|directory ...]",
	Short: "Print the program with every name resolved",
	Long: `Resolve every identifier and print the program with each name shown as
name/stamp. Without arguments the lumen.toml of the current directory is used.`,
	RunE: runNames,
}

func runNames(cmd *cobra.Command, args []string) error {
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}
	res, err := resolve(cmd, args, g, false)
	if err != nil {
		return err
	}
	if err := reportPretty(cmd, res, g); err != nil {
		return err
	}
	if err := nast.Fprint(cmd.OutOrStdout(), res.Naming.Program); err != nil {
		return fmt.Errorf("failed to print program: %w", err)
	}
	if !g.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d modules, %d files\n", len(res.Naming.Program.Modules), len(res.Files))
	}
	return nil
}
