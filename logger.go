package main

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// The transpiler passes log gate counts at debug level. The TUI disables the
// logger entirely (it owns the terminal), and `go test` binaries start muted
// so test output stays clean.
var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger().Level(zerolog.InfoLevel)

	if strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// Logger returns the process-wide logger.
func Logger() zerolog.Logger {
	return logger
}

// SetLogOutput redirects the logger.
func SetLogOutput(w io.Writer) {
	logger = logger.Output(w)
}

// SetLogLevel adjusts the minimum logged level.
func SetLogLevel(level zerolog.Level) {
	logger = logger.Level(level)
}

// DisableLogging mutes the logger.
func DisableLogging() {
	logger = zerolog.Nop()
}
