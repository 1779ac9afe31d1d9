package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lumen/internal/trace"
)

var activeTracer trace.Tracer

// setupTracing builds the tracer selected by the trace flags and attaches
// it to the command context.
func setupTracing(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	output, err := flags.GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return fmt.Errorf("invalid trace level: %w", err)
	}
	// A destination without a level means the user wants phases.
	if level == trace.LevelOff && output != "" {
		level = trace.LevelPhase
	}

	cfg := trace.Config{Level: level, OutputPath: output, RingSize: ringSize}
	switch strings.ToLower(formatStr) {
	case "":
	case "text":
		f := trace.FormatText
		cfg.Format = &f
	case "ndjson", "json":
		f := trace.FormatNDJSON
		cfg.Format = &f
	default:
		return fmt.Errorf("unknown trace format %q (want text or ndjson)", formatStr)
	}

	tracer, err := trace.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	activeTracer = tracer
	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)
	return nil
}

// finishTracing flushes and closes the tracer. After a failed command the
// in-memory ring, if any, is dumped to stderr first.
func finishTracing(failed bool) {
	tracer := activeTracer
	if tracer == nil {
		return
	}
	activeTracer = nil

	if ring, ok := tracer.(*trace.RingTracer); ok && failed {
		fmt.Fprintln(os.Stderr, "trace: last events before failure")
		if err := ring.Dump(os.Stderr, trace.FormatText); err != nil {
			fmt.Fprintf(os.Stderr, "trace: dump error: %v\n", err)
		}
	}
	if err := tracer.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "trace: flush error: %v\n", err)
	}
	if err := tracer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "trace: close error: %v\n", err)
	}
}
