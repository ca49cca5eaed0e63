package codegen

import (
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/hanpama/trailgen/internal/ir"
	language "github.com/hanpama/trailgen/internal/language"
	"github.com/hanpama/trailgen/querytrail"
)

// specialScalar is a declared scalar with a dedicated Go type.
type specialScalar struct {
	goType   func() *jen.Statement
	runtime  string
	declared func(ir.Scalars) bool
	check    func(querytrail.Value) error
}

func discard[T any](conv func(querytrail.Value) (T, error)) func(querytrail.Value) error {
	return func(v querytrail.Value) error {
		_, err := conv(v)
		return err
	}
}

var specialScalars = map[string]specialScalar{
	"URL": {
		goType:   func() *jen.Statement { return jen.Qual("net/url", "URL") },
		runtime:  "URL",
		declared: func(s ir.Scalars) bool { return s.URL },
		check:    discard(querytrail.URL),
	},
	"UUID": {
		goType:   func() *jen.Statement { return jen.Qual("github.com/google/uuid", "UUID") },
		runtime:  "UUID",
		declared: func(s ir.Scalars) bool { return s.UUID },
		check:    discard(querytrail.UUID),
	},
	"Date": {
		goType:   func() *jen.Statement { return jen.Qual("time", "Time") },
		runtime:  "Date",
		declared: func(s ir.Scalars) bool { return s.Date },
		check:    discard(querytrail.Date),
	},
	"DateTime": {
		goType:   func() *jen.Statement { return jen.Qual("time", "Time") },
		runtime:  "DateTime",
		declared: func(s ir.Scalars) bool { return s.DateTime },
		check:    discard(querytrail.DateTime),
	},
	"NaiveDateTime": {
		goType:   func() *jen.Statement { return jen.Qual("time", "Time") },
		runtime:  "NaiveDateTime",
		declared: func(s ir.Scalars) bool { return s.NaiveDateTime },
		check:    discard(querytrail.NaiveDateTime),
	},
}

// specialScalarOrder fixes the emission order of special scalar converters.
var specialScalarOrder = []string{"URL", "UUID", "Date", "DateTime", "NaiveDateTime"}

func (g *generator) special(name string) (specialScalar, bool) {
	s, ok := specialScalars[name]
	if !ok || !s.declared(g.reg.Scalars) {
		return specialScalar{}, false
	}
	return s, true
}

// namedType returns the Go type of a named leaf or input type.
func (g *generator) namedType(name string) *jen.Statement {
	switch name {
	case "Int":
		return jen.Int32()
	case "Float":
		return jen.Float64()
	case "String":
		return jen.String()
	case "Boolean":
		return jen.Bool()
	case "ID":
		return jen.Qual(runtimePath, "ID")
	}
	if s, ok := g.special(name); ok {
		return s.goType()
	}
	return jen.Id(typeName(name))
}

// inputType returns the Go type of an argument or input field: nullable
// becomes a pointer and list becomes a slice.
func (g *generator) inputType(t *ir.Type) *jen.Statement {
	switch t.Kind {
	case ir.NullableType:
		return jen.Op("*").Add(g.inputType(t.Of))
	case ir.ListType:
		return jen.Index().Add(g.inputType(t.Of))
	}
	return g.namedType(t.Name)
}

// outputType returns the Go result type of a resolver method. Borrowed
// results are pointers unless the type is already a reference.
func (g *generator) outputType(t *ir.Type, owned bool) *jen.Statement {
	code, ref := g.outputShape(t)
	if !ref && !owned {
		return jen.Op("*").Add(code)
	}
	return code
}

func (g *generator) outputShape(t *ir.Type) (*jen.Statement, bool) {
	switch t.Kind {
	case ir.NullableType:
		inner, ref := g.outputShape(t.Of)
		if ref {
			return inner, true
		}
		return jen.Op("*").Add(inner), true
	case ir.ListType:
		inner, _ := g.outputShape(t.Of)
		return jen.Index().Add(inner), true
	}
	kind, _ := g.reg.Kind(t.Name)
	switch kind {
	case language.Object:
		return jen.Id(fieldsName(t.Name)), true
	case language.Interface, language.Union:
		return jen.Id(typeName(t.Name)), true
	}
	return g.namedType(t.Name), false
}

// converter returns an expression of type func(querytrail.Value) (T, error)
// where T is inputType(t).
func (g *generator) converter(t *ir.Type) *jen.Statement {
	switch t.Kind {
	case ir.NullableType:
		return jen.Qual(runtimePath, "OptionalOf").Call(g.converter(t.Of))
	case ir.ListType:
		return jen.Qual(runtimePath, "ListOf").Call(g.converter(t.Of))
	}
	switch t.Name {
	case "Int", "Float", "String", "Boolean":
		return jen.Qual(runtimePath, t.Name)
	case "ID":
		return jen.Qual(runtimePath, "ToID")
	}
	return jen.Id(converterName(t.Name))
}

func splitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
