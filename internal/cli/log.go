package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tonal/internal/colour"
)

// newLogger returns the CLI logger writing to w.
func newLogger(w io.Writer, level hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:        "tonal",
		Output:      w,
		Level:       level,
		DisableTime: true,
	})
}

// logWarnings reports generation advisories. They never fail a command.
func logWarnings(logger hclog.Logger, warnings []colour.Warning) {
	for _, w := range warnings {
		args := []any{"colour", w.Colour, "code", string(w.Code)}
		if w.Band != "" {
			args = append(args, "band", string(w.Band))
		}
		logger.Warn(w.Message, args...)
	}
}
