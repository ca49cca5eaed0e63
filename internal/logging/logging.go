// Package logging reports compile events through a charmbracelet logger.
package logging

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/hanpama/trailgen/internal/eventbus"
	"github.com/hanpama/trailgen/internal/events"
	"github.com/hanpama/trailgen/internal/runid"
)

var formatters = map[string]log.Formatter{
	"":       log.TextFormatter,
	"text":   log.TextFormatter,
	"json":   log.JSONFormatter,
	"logfmt": log.LogfmtFormatter,
}

// New returns a logger writing to w. Empty level and format mean info and
// text.
func New(w io.Writer, level, format string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		var err error
		if lvl, err = log.ParseLevel(level); err != nil {
			return nil, err
		}
	}
	f, ok := formatters[format]
	if !ok {
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return log.NewWithOptions(w, log.Options{Level: lvl, Prefix: "trailgen", Formatter: f}), nil
}

// Attach logs compile events of bus to logger. Diagnostics are warnings.
func Attach(bus *eventbus.Bus, logger *log.Logger) (detach func()) {
	with := func(ctx context.Context) *log.Logger {
		if rid, ok := runid.FromContext(ctx); ok {
			return logger.With("run", rid)
		}
		return logger
	}
	unsubs := []func(){
		eventbus.Subscribe(bus, func(ctx context.Context, e events.CompileStart) {
			with(ctx).Debug("compile started", "package", e.Package, "sources", e.Sources)
		}),
		eventbus.Subscribe(bus, func(ctx context.Context, e events.PassFinish) {
			with(ctx).Debug("pass finished", "pass", e.Pass, "diagnostics", e.Diagnostics, "duration", e.Duration)
		}),
		eventbus.Subscribe(bus, func(ctx context.Context, e events.DiagnosticRecorded) {
			d := e.Diagnostic
			with(ctx).Warn(d.Message(), "kind", d.Kind, "pos", position(d.File, d.Line, d.Column))
		}),
		eventbus.Subscribe(bus, func(ctx context.Context, e events.CompileFinish) {
			if e.Err != nil {
				with(ctx).Error("compile failed", "package", e.Package, "err", e.Err)
				return
			}
			with(ctx).Info("compile finished", "package", e.Package, "bytes", e.Bytes,
				"diagnostics", e.Diagnostics, "duration", e.Duration)
		}),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

func position(file string, line, column int) string {
	if file == "" {
		return "-"
	}
	return fmt.Sprintf("%s:%d:%d", file, line, column)
}
