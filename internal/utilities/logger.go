package utilities

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/antonio-alexander/go-bizadmin/internal"

	"github.com/rs/zerolog"
)

type Level int

const (
	Error Level = 1
	Info  Level = 2
	Debug Level = 3
	Trace Level = 4
)

func (l Level) String() string {
	switch l {
	default:
		return ""
	case Error:
		return "error"
	case Info:
		return "info"
	case Debug:
		return "debug"
	case Trace:
		return "trace"
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	default:
		return zerolog.ErrorLevel
	case Info:
		return zerolog.InfoLevel
	case Debug:
		return zerolog.DebugLevel
	case Trace:
		return zerolog.TraceLevel
	}
}

type Logger interface {
	Error(ctx context.Context, format string, v ...any)
	Info(ctx context.Context, format string, v ...any)
	Debug(ctx context.Context, format string, v ...any)
	Trace(ctx context.Context, format string, v ...any)
}

type logger struct {
	config struct {
		Level  Level
		Format string
	}
	writer io.Writer
	zerolog.Logger
}

func atoLogLevel(a string) Level {
	switch strings.ToLower(a) {
	default:
		return Error
	case "info":
		return Info
	case "debug":
		return Debug
	case "trace":
		return Trace
	}
}

// NewLogger creates a logger writing to stdout (or the first io.Writer
// provided) at the error level until configured.
func NewLogger(parameters ...any) interface {
	internal.Configurer
	Logger
} {
	l := &logger{writer: os.Stdout}
	for _, parameter := range parameters {
		switch p := parameter.(type) {
		case io.Writer:
			l.writer = p
		}
	}
	l.config.Level = Error
	l.build()
	return l
}

// NewNopLogger returns a logger that drops everything.
func NewNopLogger() Logger {
	return &logger{Logger: zerolog.Nop()}
}

func (l *logger) build() {
	writer := l.writer
	if l.config.Format == "console" {
		writer = zerolog.ConsoleWriter{Out: l.writer, TimeFormat: time.RFC3339}
	}
	l.Logger = zerolog.New(writer).With().Timestamp().Logger().
		Level(l.config.Level.zerolog())
}

func (l *logger) Configure(envs map[string]string) error {
	l.config.Level = Error
	if logLevel, ok := envs["LOG_LEVEL"]; ok {
		l.config.Level = atoLogLevel(logLevel)
	}
	if logFormat, ok := envs["LOG_FORMAT"]; ok {
		l.config.Format = strings.ToLower(logFormat)
	}
	l.build()
	return nil
}

func (l *logger) log(ctx context.Context, event *zerolog.Event, format string, v ...any) {
	if event == nil {
		return
	}
	if correlationId := internal.CorrelationIdFromCtx(ctx); correlationId != "" {
		event = event.Str("correlation_id", correlationId)
	}
	event.Msgf(format, v...)
}

func (l *logger) Error(ctx context.Context, format string, v ...any) {
	l.log(ctx, l.Logger.Error(), format, v...)
}

func (l *logger) Info(ctx context.Context, format string, v ...any) {
	l.log(ctx, l.Logger.Info(), format, v...)
}

func (l *logger) Debug(ctx context.Context, format string, v ...any) {
	l.log(ctx, l.Logger.Debug(), format, v...)
}

func (l *logger) Trace(ctx context.Context, format string, v ...any) {
	l.log(ctx, l.Logger.Trace(), format, v...)
}
