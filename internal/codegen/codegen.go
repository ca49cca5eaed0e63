// Package codegen turns a schema document into the Go source of a query
// trail API, its value converters and resolver scaffolding.
package codegen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/token"
	"time"

	"github.com/dave/jennifer/jen"

	"github.com/hanpama/trailgen/internal/config"
	"github.com/hanpama/trailgen/internal/eventbus"
	"github.com/hanpama/trailgen/internal/events"
	"github.com/hanpama/trailgen/internal/ir"
	language "github.com/hanpama/trailgen/internal/language"
)

// ErrNoQueryType is returned for a schema without a query root.
var ErrNoQueryType = errors.New("codegen: schema has no query root type")

type Options struct {
	// Package is the name of the generated package.
	Package string
	// Ownership selects the return convention of a resolver method. Nil
	// means every field is borrowed.
	Ownership func(typeName, field string) config.Ownership
	// Bus receives pass and diagnostic events. May be nil.
	Bus *eventbus.Bus
}

type Result struct {
	Source      []byte
	Diagnostics *ir.Diagnostics
}

type pass struct {
	name string
	run  func(*generator)
}

var passes = []pass{
	{"unions", (*generator).checkUnions},
	{"types", (*generator).genTypes},
	{"trails", (*generator).genTrails},
	{"conversions", (*generator).genConversions},
	{"resolvers", (*generator).genResolvers},
	{"schema", (*generator).genSchema},
}

type generator struct {
	ctx   context.Context
	opts  Options
	reg   *ir.Registry
	doc   *ir.Document
	f     *jen.File
	diags *ir.Diagnostics
	pass  string

	layouts    map[string]*typeMethods
	enums      map[string]*enumLayout
	plans      map[*language.ArgumentDefinition]*argPlan
	fieldPlans map[*language.FieldDefinition]*argPlan
}

// Generate runs every pass over doc. Diagnostics never stop generation; the
// returned error is reserved for problems that leave no usable output.
func Generate(ctx context.Context, doc *ir.Document, opts Options) (*Result, error) {
	if doc.Schema.QueryType == "" {
		return nil, ErrNoQueryType
	}
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("codegen: invalid package name %q", opts.Package)
	}
	if opts.Ownership == nil {
		opts.Ownership = func(string, string) config.Ownership { return config.Borrowed }
	}

	f := jen.NewFile(opts.Package)
	f.HeaderComment("Code generated by trailgen. DO NOT EDIT.")
	f.ImportName(runtimePath, "querytrail")

	g := &generator{
		ctx:        ctx,
		opts:       opts,
		reg:        ir.NewRegistry(doc),
		doc:        doc,
		f:          f,
		diags:      ir.NewDiagnostics(),
		layouts:    map[string]*typeMethods{},
		enums:      map[string]*enumLayout{},
		plans:      map[*language.ArgumentDefinition]*argPlan{},
		fieldPlans: map[*language.FieldDefinition]*argPlan{},
	}
	for _, p := range passes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g.pass = p.name
		before := g.diags.Len()
		start := time.Now()
		eventbus.Publish(ctx, opts.Bus, events.PassStart{Pass: p.name})
		p.run(g)
		eventbus.Publish(ctx, opts.Bus, events.PassFinish{
			Pass:        p.name,
			Diagnostics: g.diags.Len() - before,
			Duration:    time.Since(start),
		})
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("codegen: render: %w", err)
	}
	return &Result{Source: buf.Bytes(), Diagnostics: g.diags}, nil
}

func (g *generator) report(d ir.Diagnostic) {
	if g.diags.Add(d) {
		eventbus.Publish(g.ctx, g.opts.Bus, events.DiagnosticRecorded{Pass: g.pass, Diagnostic: d})
	}
}

func (g *generator) checkUnions() {
	for _, def := range g.doc.Definitions {
		if def.Kind != language.Union {
			continue
		}
		found := ir.NewDiagnostics()
		ir.CheckUnion(g.reg, def.Name, found)
		for _, d := range found.List() {
			g.report(d)
		}
	}
}

// definitions returns the definitions of the given kinds in declaration
// order.
func (g *generator) definitions(kinds ...language.DefinitionKind) []*language.Definition {
	var out []*language.Definition
	for _, def := range g.doc.Definitions {
		for _, k := range kinds {
			if def.Kind == k {
				out = append(out, def)
				break
			}
		}
	}
	return out
}

// describe emits a GraphQL description as line comments.
func (g *generator) describe(desc string) {
	for _, line := range splitLines(desc) {
		g.f.Comment(line)
	}
}

func (g *generator) owned(typeName, field string) bool {
	return g.opts.Ownership(typeName, field) == config.Owned
}
