package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Tracer receives events from spans. Implementations must be safe for
// concurrent use: files are checked in parallel.
type Tracer interface {
	Emit(ev *Event)
	Flush() error
	Close() error
	Level() Level
	Enabled() bool
}

// Config selects what is traced and where it goes.
type Config struct {
	Level      Level
	Format     Format
	Output     io.Writer // takes precedence over OutputPath
	OutputPath string    // file path; "" or "-" is stderr
}

// New builds the Tracer for cfg: Nop when the level is off, otherwise a
// StreamTracer over the configured output.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	w := cfg.Output
	if w == nil {
		var err error
		if w, err = createOutput(cfg.OutputPath); err != nil {
			return nil, err
		}
	}
	return NewStreamTracer(w, cfg.Level, resolveFormat(cfg.Format, cfg.OutputPath)), nil
}

func resolveFormat(f Format, path string) Format {
	if f != FormatAuto {
		return f
	}
	switch filepath.Ext(path) {
	case ".ndjson", ".jsonl":
		return FormatNDJSON
	default:
		return FormatText
	}
}

func createOutput(path string) (io.Writer, error) {
	if path == "" || path == "-" {
		// stderr outlives the tracer; Close must leave it open
		return struct{ io.Writer }{os.Stderr}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, nil
}
