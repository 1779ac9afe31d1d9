package trace

import (
	"fmt"
	"io"
	"os"
)

// Tracer receives trace events. Implementations must be safe for
// concurrent use.
type Tracer interface {
	Emit(ev *Event)
	Flush() error
	Close() error
	Level() Level
	// Enabled reports Level() > LevelOff.
	Enabled() bool
}

// Config selects and configures a Tracer.
type Config struct {
	Level Level
	// Output receives the events. When nil, OutputPath is opened; "" and
	// "-" mean stderr.
	Output     io.Writer
	OutputPath string
	// Format defaults to FormatForPath(OutputPath).
	Format   *Format
	RingSize int
}

// New builds the tracer for cfg: Nop when off, a RingTracer at level
// error, a StreamTracer otherwise.
func New(cfg Config) (Tracer, error) {
	switch cfg.Level {
	case LevelOff:
		return Nop, nil
	case LevelError:
		return NewRingTracer(cfg.RingSize, cfg.Level), nil
	}

	w, err := openOutput(cfg)
	if err != nil {
		return nil, err
	}
	format := FormatForPath(cfg.OutputPath)
	if cfg.Format != nil {
		format = *cfg.Format
	}
	return NewStreamTracer(w, cfg.Level, format), nil
}

func openOutput(cfg Config) (io.Writer, error) {
	if cfg.Output != nil {
		return cfg.Output, nil
	}
	if cfg.OutputPath == "" || cfg.OutputPath == "-" {
		return nopCloser{os.Stderr}, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, nil
}

// nopCloser keeps Close from closing stderr.
type nopCloser struct{ io.Writer }
