// Package logging wires zerolog into the engine's Logger interface.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a zerolog logger. Console output is human readable; json
// switches to structured lines for log collectors.
func New(w io.Writer, debug, json bool) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	if !json {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Adapter satisfies calculation.Logger on top of zerolog
type Adapter struct {
	Log zerolog.Logger
}

// NewAdapter wraps l, tagging every event with the component name
func NewAdapter(l zerolog.Logger, component string) Adapter {
	return Adapter{Log: l.With().Str("component", component).Logger()}
}

func (a Adapter) Debugf(format string, args ...any) { a.Log.Debug().Msg(fmt.Sprintf(format, args...)) }
func (a Adapter) Infof(format string, args ...any)  { a.Log.Info().Msg(fmt.Sprintf(format, args...)) }
func (a Adapter) Warnf(format string, args ...any)  { a.Log.Warn().Msg(fmt.Sprintf(format, args...)) }
func (a Adapter) Errorf(format string, args ...any) { a.Log.Error().Msg(fmt.Sprintf(format, args...)) }
