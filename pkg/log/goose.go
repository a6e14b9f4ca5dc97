package log

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// GooseLogger routes goose migration output through zerolog. Progress
// lines go to debug so routine startups stay quiet.
type GooseLogger struct {
	logger *zerolog.Logger
}

// Fatalf logs at error level instead of exiting; goose returns the
// failure to the caller as well.
func (g *GooseLogger) Fatalf(format string, v ...interface{}) {
	g.logger.Error().Str("component", "goose").Msg(trim(format, v...))
}

func (g *GooseLogger) Printf(format string, v ...interface{}) {
	g.logger.Debug().Str("component", "goose").Msg(trim(format, v...))
}

func trim(format string, v ...interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}

func NewGooseLoggerFromCtx(ctx context.Context) *GooseLogger {
	return &GooseLogger{
		logger: FromCtx(ctx),
	}
}
