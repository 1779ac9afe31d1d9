package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lumen/internal/driver"
)

var sigCmd = &cobra.Command{
	Use:   "sig [flags] [file.lm|directory ...]",
	Short: "Export the signature of every module",
	Long: `Resolve the program and export, per module, the stamp of every type,
constructor, field and value it makes visible. With --from an existing
export is read back and re-encoded instead.`,
	RunE: runSig,
}

func init() {
	sigCmd.Flags().String("format", "yaml", "output format (msgpack|yaml|json); inferred from -o when not set")
	sigCmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")
	sigCmd.Flags().String("from", "", "read an existing export instead of resolving sources")
}

func runSig(cmd *cobra.Command, args []string) error {
	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	from, err := cmd.Flags().GetString("from")
	if err != nil {
		return fmt.Errorf("failed to get from flag: %w", err)
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}

	format, err := driver.ParseSigFormat(formatStr)
	if err != nil {
		return err
	}
	if output != "" && !cmd.Flags().Changed("format") {
		format = driver.SigFormatForPath(output)
	}
	if output == "" && format == driver.SigMsgpack && isTerminal(os.Stdout) {
		return errors.New("refusing to write msgpack to a terminal; use -o")
	}

	var sf *driver.SignatureFile
	if from != "" {
		if len(args) > 0 {
			return errors.New("--from does not take source arguments")
		}
		if sf, err = driver.ReadSignatures(from); err != nil {
			return err
		}
	} else {
		res, err := resolve(cmd, args, g, false)
		if err != nil {
			return err
		}
		if err := reportPretty(cmd, res, g); err != nil {
			return err
		}
		sf = driver.Signatures(res)
	}

	if output == "" {
		return driver.EncodeSignatures(cmd.OutOrStdout(), format, sf)
	}
	if err := driver.WriteSignatures(output, format, sf); err != nil {
		return fmt.Errorf("failed to write signatures: %w", err)
	}
	if !g.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d module signatures to %s\n", len(sf.Modules), output)
	}
	return nil
}
