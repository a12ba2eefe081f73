/*
Package ztrace implements schuko tracing on top of zerolog.

Library packages write to traces selected by key, e.g.

	tracing.Select("langid").Infof("loaded %d profiles", n)

Commands install a Selector to route all of these traces to one zerolog
logger, either as JSON lines or in console format:

	tracing.SetTraceSelector(ztrace.NewSelector(os.Stderr, ztrace.Console, tracing.LevelInfo))

Every trace logs its key in field "trace".
*/
package ztrace

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/rs/zerolog"
)

// Format selects the output format of traces.
type Format int

const (
	Console Format = iota // human readable, one line per event
	JSON                  // one JSON object per event
)

// ParseFormat accepts "console" and "json", ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "console":
		return Console, nil
	case "json":
		return JSON, nil
	}
	return Console, fmt.Errorf("unknown log format %q", s)
}

func (f Format) String() string {
	if f == JSON {
		return "json"
	}
	return "console"
}

// Tracer is a tracing.Trace writing to a zerolog.Logger.
type Tracer struct {
	key    string
	format Format
	level  tracing.TraceLevel
	logger zerolog.Logger
}

var _ tracing.Trace = (*Tracer)(nil)

// New creates a tracer for key, writing to w.
func New(key string, w io.Writer, format Format, level tracing.TraceLevel) *Tracer {
	t := &Tracer{key: key, format: format, level: level}
	t.SetOutput(w)
	return t
}

func zerologLevel(l tracing.TraceLevel) zerolog.Level {
	switch l {
	case tracing.LevelError:
		return zerolog.ErrorLevel
	case tracing.LevelDebug:
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// SetOutput redirects the tracer to w. Fields attached with P are dropped.
func (t *Tracer) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	if t.format == Console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}
	t.logger = zerolog.New(w).Level(zerologLevel(t.level)).With().
		Timestamp().
		Str("trace", t.key).
		Logger()
}

// SetTraceLevel sets the minimum level of events to log.
func (t *Tracer) SetTraceLevel(l tracing.TraceLevel) {
	t.level = l
	t.logger = t.logger.Level(zerologLevel(l))
}

// GetTraceLevel returns the minimum level of events to log.
func (t *Tracer) GetTraceLevel() tracing.TraceLevel {
	return t.level
}

// P returns a tracer which adds field key to every event.
func (t *Tracer) P(key string, val interface{}) tracing.Trace {
	child := *t
	child.logger = t.logger.With().Interface(key, val).Logger()
	return &child
}

func (t *Tracer) Errorf(format string, args ...interface{}) {
	t.logger.Error().Msgf(format, args...)
}

func (t *Tracer) Infof(format string, args ...interface{}) {
	t.logger.Info().Msgf(format, args...)
}

func (t *Tracer) Debugf(format string, args ...interface{}) {
	t.logger.Debug().Msgf(format, args...)
}

// --- Selector --------------------------------------------------------------

// Selector hands out one Tracer per key, all writing to the same output.
// It implements tracing.TraceSelector.
type Selector struct {
	mu      sync.Mutex
	out     io.Writer
	format  Format
	level   tracing.TraceLevel
	tracers map[string]*Tracer
}

// NewSelector creates a selector for tracers writing to w.
func NewSelector(w io.Writer, format Format, level tracing.TraceLevel) *Selector {
	return &Selector{
		out:     w,
		format:  format,
		level:   level,
		tracers: make(map[string]*Tracer),
	}
}

// Select returns the tracer for key, creating it on first use.
func (s *Selector) Select(key string) tracing.Trace {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tracers[key]
	if !ok {
		t = New(key, s.out, s.format, s.level)
		s.tracers[key] = t
	}
	return t
}
