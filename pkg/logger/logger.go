package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the process-wide logger.
type Options struct {
	ServiceName string
	Level       string
	Format      string
	Output      io.Writer
}

var base = newLogger(Options{ServiceName: "nanocart"})

// Init replaces the default logger. Call it once from main before serving.
func Init(opts Options) {
	base = newLogger(opts)
}

func newLogger(opts Options) zerolog.Logger {
	var output io.Writer = opts.Output
	if output == nil {
		output = os.Stdout
	}
	if strings.EqualFold(opts.Format, "console") {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: "15:04:05"}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(output).
		With().
		Timestamp().
		Str("service", opts.ServiceName).
		Logger().
		Level(ParseLevel(opts.Level))
}

func ParseLevel(value string) zerolog.Level {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return zerolog.InfoLevel
	}
	if lvl, err := zerolog.ParseLevel(value); err == nil {
		return lvl
	}
	return zerolog.InfoLevel
}

// Logger exposes the underlying zerolog logger for structured fields.
func Logger() *zerolog.Logger {
	return &base
}

func Info(format string, v ...interface{}) {
	base.Info().Msg(fmt.Sprintf(format, v...))
}

func Error(format string, v ...interface{}) {
	base.Error().Msg(fmt.Sprintf(format, v...))
}

func Debug(format string, v ...interface{}) {
	base.Debug().Msg(fmt.Sprintf(format, v...))
}

func Warn(format string, v ...interface{}) {
	base.Warn().Msg(fmt.Sprintf(format, v...))
}

func Fatal(format string, v ...interface{}) {
	base.Fatal().Msg(fmt.Sprintf(format, v...))
}
