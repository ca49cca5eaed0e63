// Package compile runs one trailgen compilation: load the schema, generate
// the trail package and write it out.
package compile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hanpama/trailgen/internal/codegen"
	"github.com/hanpama/trailgen/internal/config"
	"github.com/hanpama/trailgen/internal/eventbus"
	"github.com/hanpama/trailgen/internal/events"
	"github.com/hanpama/trailgen/internal/ir"
	"github.com/hanpama/trailgen/internal/runid"
)

type Output struct {
	RunID       string
	Path        string
	Source      []byte
	Diagnostics []ir.Diagnostic
}

// Run compiles the schema named by cfg. When write is false the generated
// source is returned without touching the file system. Diagnostics do not
// make Run fail; callers decide how to treat them.
func Run(ctx context.Context, cfg *config.Config, bus *eventbus.Bus, write bool) (out *Output, err error) {
	ctx, rid := runid.NewContext(ctx)
	start := time.Now()
	eventbus.Publish(ctx, bus, events.CompileStart{Package: cfg.Package, Sources: cfg.Schema})
	out = &Output{RunID: rid, Path: cfg.Output}
	defer func() {
		eventbus.Publish(ctx, bus, events.CompileFinish{
			Package:     cfg.Package,
			Diagnostics: len(out.Diagnostics),
			Bytes:       len(out.Source),
			Err:         err,
			Duration:    time.Since(start),
		})
	}()

	doc, err := ir.Load(ctx, cfg.Schema...)
	if err != nil {
		return out, fmt.Errorf("load schema: %w", err)
	}
	res, err := codegen.Generate(ctx, doc, codegen.Options{
		Package:   cfg.Package,
		Ownership: cfg.OwnershipOf,
		Bus:       bus,
	})
	if err != nil {
		return out, fmt.Errorf("generate: %w", err)
	}
	out.Source = res.Source
	out.Diagnostics = res.Diagnostics.List()

	if !write {
		return out, nil
	}
	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return out, fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(cfg.Output, res.Source, 0o644); err != nil {
		return out, fmt.Errorf("write output: %w", err)
	}
	return out, nil
}
