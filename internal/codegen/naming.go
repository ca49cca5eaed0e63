package codegen

import (
	"go/token"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"

	"github.com/hanpama/trailgen/internal/ir"
	language "github.com/hanpama/trailgen/internal/language"
)

const runtimePath = "github.com/hanpama/trailgen/querytrail"

func init() {
	for _, a := range []string{"ID", "URL", "UUID", "API", "HTTP", "JSON"} {
		strcase.ConfigureAcronym(strings.ToLower(a), a)
	}
}

// typeName exports a GraphQL type name without otherwise changing it, so
// that names like URLInfo survive.
func typeName(name string) string {
	r := []rune(name)
	if len(r) > 0 && unicode.IsLower(r[0]) {
		r[0] = unicode.ToUpper(r[0])
	}
	return string(r)
}

func methodName(field string) string { return strcase.ToCamel(field) }

// lowerCamel is strcase.ToCamel with the first rune lowered. A name that is
// a single acronym is lowered entirely so that "ID" becomes "id".
func lowerCamel(s string) string {
	camel := strcase.ToCamel(s)
	if camel == "" {
		return ""
	}
	if strings.ToUpper(camel) == camel {
		return strings.ToLower(camel)
	}
	r := []rune(camel)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// reservedParams are names used by generated function bodies.
var reservedParams = map[string]bool{
	"ctx": true, "trail": true, "args": true, "err": true,
	"sel": true, "obj": true, "field": true, "querytrail": true,
}

// paramName returns a Go parameter name for an argument that cannot clash
// with keywords or the names generated code uses itself.
func paramName(arg string) string {
	name := lowerCamel(arg)
	if name == "" || token.IsKeyword(name) || reservedParams[name] {
		name += "Arg"
	}
	return name
}

func enumConstName(enum, value string) string {
	return typeName(enum) + strcase.ToCamel(strings.ToLower(value))
}

// enumLayout is the constant naming of one enum. values holds each value
// once, in declaration order.
type enumLayout struct {
	values []*language.EnumValueDefinition
	consts map[string]string
}

// enumConsts returns the memoized constant layout of an enum. A value whose
// constant name is already taken gets a Value suffix and a diagnostic.
func (g *generator) enumConsts(enum string) *enumLayout {
	if l, ok := g.enums[enum]; ok {
		return l
	}
	l := &enumLayout{consts: map[string]string{}}
	taken := map[string]bool{}
	if def := g.doc.ForName(enum); def != nil {
		for _, v := range def.EnumValues {
			if _, ok := l.consts[v.Name]; ok {
				continue
			}
			name := enumConstName(enum, v.Name)
			if taken[name] {
				g.report(ir.DiagnosticEnumValueCollision(enum, v.Name, name, v.Position))
				for taken[name] {
					name += "Value"
				}
			}
			taken[name] = true
			l.consts[v.Name] = name
			l.values = append(l.values, v)
		}
	}
	g.enums[enum] = l
	return l
}

func trailName(t string) string { return typeName(t) + "Trail" }
func walkedTrailName(t string) string { return "Walked" + typeName(t) + "Trail" }
func fieldsName(t string) string { return typeName(t) + "Fields" }
func resolveFuncName(t string) string { return "resolve" + typeName(t) + "Field" }

// converterName is the generated function converting a Value to a declared
// enum, scalar or input type.
func converterName(t string) string {
	return lowerCamel(t) + "FromValue"
}

// typeMethods is the method layout shared by the trail and resolver types of
// one schema type.
type typeMethods struct {
	// field name -> Go method name
	fields map[string]string
	// field name -> argument handle method on the walked trail
	args map[string]string
}

// allocateMethods assigns method names to the fields of typ. Names generated
// for the type itself are reserved first; a field whose name is taken gets a
// Field suffix and a diagnostic.
func (g *generator) allocateMethods(typ string, fields []*language.FieldDefinition, downcasts []string) *typeMethods {
	m := &typeMethods{fields: map[string]string{}, args: map[string]string{}}
	taken := map[string]bool{
		"Walk":         true,
		trailName(typ): true,
	}
	if g.reg.Abstract(typ) {
		taken["TypeName"] = true
	}
	for _, d := range downcasts {
		taken["As"+typeName(d)] = true
	}
	for _, f := range fields {
		if _, ok := m.fields[f.Name]; ok {
			continue
		}
		name := methodName(f.Name)
		if taken[name] || taken[name+"Args"] {
			g.report(ir.DiagnosticMethodNameCollision(typ, f.Name, name, f.Position))
			name += "Field"
		}
		taken[name] = true
		taken[name+"Args"] = true
		m.fields[f.Name] = name
		m.args[f.Name] = name + "Args"
	}
	return m
}

// methods returns the memoized method layout of a type.
func (g *generator) methods(typ string) *typeMethods {
	if m, ok := g.layouts[typ]; ok {
		return m
	}
	fields, _ := g.fieldsOf(typ)
	m := g.allocateMethods(typ, fields, g.reg.PossibleTypes(typ))
	g.layouts[typ] = m
	return m
}

// fieldsOf returns the fields of an object, interface or union type, each
// name once, together with the type that declares each field.
func (g *generator) fieldsOf(typ string) ([]*language.FieldDefinition, []string) {
	kind, _ := g.reg.Kind(typ)
	if kind == language.Union {
		set := ir.NewUnionFieldSet(g.reg, typ)
		return set.Fields, set.Owners
	}
	var (
		fields []*language.FieldDefinition
		owners []string
		seen   = map[string]bool{}
	)
	for _, f := range g.reg.Fields(typ) {
		if seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		fields = append(fields, f)
		owners = append(owners, typ)
	}
	return fields, owners
}
