package codegen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/hanpama/trailgen/internal/ir"
	language "github.com/hanpama/trailgen/internal/language"
	"github.com/hanpama/trailgen/querytrail"
)

type planMode uint8

const (
	planRequired planMode = iota
	planOptional
	// planLiteral defaults are emitted as Go literals.
	planLiteral
	// planValue defaults are emitted as querytrail.Value expressions and
	// converted on use.
	planValue
)

// argPlan is how generated code reads one argument or input field.
type argPlan struct {
	mode planMode
	// typ is the type of the Go result. A valid default strips the outer
	// nullable layer since the result is then always present.
	typ *ir.Type
	def querytrail.Value
}

// argumentPlan returns the memoized plan of a field argument.
func (g *generator) argumentPlan(owner string, field *language.FieldDefinition, arg *language.ArgumentDefinition) *argPlan {
	if p, ok := g.plans[arg]; ok {
		return p
	}
	p := g.plan(owner, field.Name, arg.Name, ir.Normalize(arg.Type), arg.DefaultValue)
	g.plans[arg] = p
	return p
}

// plan decides how a value of declared type t is read. A default that does
// not fit t is reported and ignored; a null default is no default.
func (g *generator) plan(owner, field, arg string, t *ir.Type, def *language.Value) *argPlan {
	p := &argPlan{mode: planRequired, typ: t}
	if t.Nullable() {
		p.mode = planOptional
	}
	if def == nil {
		return p
	}
	v := querytrail.ValueFromAST(def, nil)
	if v.IsNull() {
		return p
	}
	if err := g.checkValue(t, v); err != nil {
		g.report(ir.DiagnosticDefaultValueMismatch(owner, field, arg, t, err.Error(), def.Position))
		return p
	}
	p.typ = t.NonNull()
	p.def = v
	if g.literalType(p.typ) {
		p.mode = planLiteral
	} else {
		p.mode = planValue
	}
	return p
}

// read returns the expression reading name from args according to p. Its
// type is (inputType(p.typ), error).
func (g *generator) read(p *argPlan, args jen.Code, name string) *jen.Statement {
	switch p.mode {
	case planOptional:
		return jen.Qual(runtimePath, "Optional").Call(args, jen.Lit(name), g.converter(p.typ.Of))
	case planLiteral:
		return jen.Qual(runtimePath, "WithDefault").Call(args, jen.Lit(name), g.converter(p.typ), g.literal(p.typ, p.def))
	case planValue:
		return jen.Qual(runtimePath, "WithDefaultValue").Call(args, jen.Lit(name), g.converter(p.typ), valueLiteral(p.def))
	}
	return jen.Qual(runtimePath, "Required").Call(args, jen.Lit(name), g.converter(p.typ))
}

// checkValue reports whether v converts to t with the converters the
// generated code will use.
func (g *generator) checkValue(t *ir.Type, v querytrail.Value) error {
	switch t.Kind {
	case ir.NullableType:
		if v.IsNull() {
			return nil
		}
		return g.checkValue(t.Of, v)
	case ir.ListType:
		if v.Kind() != querytrail.KindList {
			return &querytrail.ConversionError{Expected: "List", Actual: v.Kind()}
		}
		for i, item := range v.Items() {
			if err := g.checkValue(t.Of, item); err != nil {
				return fmt.Errorf("list item %d: %w", i, err)
			}
		}
		return nil
	}

	var err error
	switch t.Name {
	case "Int":
		_, err = querytrail.Int(v)
	case "Float":
		_, err = querytrail.Float(v)
	case "String":
		_, err = querytrail.String(v)
	case "Boolean":
		_, err = querytrail.Boolean(v)
	case "ID":
		_, err = querytrail.ToID(v)
	default:
		if s, ok := g.special(t.Name); ok {
			return s.check(v)
		}
		return g.checkDeclared(t.Name, v)
	}
	return err
}

func (g *generator) checkDeclared(name string, v querytrail.Value) error {
	def := g.doc.ForName(name)
	if def == nil {
		return fmt.Errorf("unknown type %s", name)
	}
	switch def.Kind {
	case language.Enum:
		value, err := querytrail.EnumName(v)
		if err != nil {
			return err
		}
		if def.EnumValues.ForName(value) == nil {
			return &querytrail.ConversionError{Expected: name, Actual: v.Kind(), Detail: fmt.Sprintf("unknown value %q", value)}
		}
	case language.Scalar:
		if _, err := querytrail.String(v); err != nil {
			return err
		}
	case language.InputObject:
		if v.Kind() != querytrail.KindObject {
			return &querytrail.ConversionError{Expected: name, Actual: v.Kind()}
		}
		for _, f := range v.Fields() {
			if def.Fields.ForName(f.Name) == nil {
				return fmt.Errorf("unknown field %q of %s", f.Name, name)
			}
		}
		for _, f := range def.Fields {
			ft := ir.Normalize(f.Type)
			fv, ok := v.Field(f.Name)
			if !ok {
				if !ft.Nullable() && f.DefaultValue == nil {
					return fmt.Errorf("field %q: %w", f.Name, querytrail.ErrMissingArgument)
				}
				continue
			}
			if err := g.checkValue(ft, fv); err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}
		}
	default:
		return fmt.Errorf("%s is not an input type", name)
	}
	return nil
}

// literalType reports whether values of t have a Go literal form: builtin
// scalars and enums, possibly wrapped in lists and nullable layers.
func (g *generator) literalType(t *ir.Type) bool {
	name := t.NamedType()
	if ir.IsBuiltinScalar(name) {
		return true
	}
	kind, _ := g.reg.Kind(name)
	return kind == language.Enum
}

// literal renders a checked value of a literal type.
func (g *generator) literal(t *ir.Type, v querytrail.Value) *jen.Statement {
	switch t.Kind {
	case ir.NullableType:
		if v.IsNull() {
			return jen.Nil()
		}
		return jen.Qual(runtimePath, "Ptr").Types(g.inputType(t.Of)).Call(g.literal(t.Of, v))
	case ir.ListType:
		items := make([]jen.Code, len(v.Items()))
		for i, item := range v.Items() {
			items[i] = g.literal(t.Of, item)
		}
		return jen.Index().Add(g.inputType(t.Of)).Values(items...)
	}
	switch t.Name {
	case "Int":
		n, _ := querytrail.Int(v)
		return jen.Lit(int(n))
	case "Float":
		f, _ := querytrail.Float(v)
		return jen.Lit(f)
	case "String":
		s, _ := querytrail.String(v)
		return jen.Lit(s)
	case "Boolean":
		b, _ := querytrail.Boolean(v)
		return jen.Lit(b)
	case "ID":
		id, _ := querytrail.ToID(v)
		return jen.Qual(runtimePath, "ID").Call(jen.Lit(string(id)))
	}
	name, _ := querytrail.EnumName(v)
	return jen.Id(g.enumConsts(t.Name).consts[name])
}

// valueLiteral renders an expression rebuilding v at run time.
func valueLiteral(v querytrail.Value) *jen.Statement {
	q := func(name string) *jen.Statement { return jen.Qual(runtimePath, name) }
	switch v.Kind() {
	case querytrail.KindInt:
		return q("IntValue").Call(jen.Lit(v.Scalar().(int64)))
	case querytrail.KindFloat:
		return q("FloatValue").Call(jen.Lit(v.Scalar().(float64)))
	case querytrail.KindString:
		return q("StringValue").Call(jen.Lit(v.Scalar().(string)))
	case querytrail.KindBoolean:
		return q("BooleanValue").Call(jen.Lit(v.Scalar().(bool)))
	case querytrail.KindEnum:
		return q("EnumValue").Call(jen.Lit(v.Scalar().(string)))
	case querytrail.KindList:
		items := make([]jen.Code, len(v.Items()))
		for i, item := range v.Items() {
			items[i] = valueLiteral(item)
		}
		return q("ListValue").Call(items...)
	case querytrail.KindObject:
		fields := make([]jen.Code, len(v.Fields()))
		for i, f := range v.Fields() {
			fields[i] = q("ObjectField").Values(jen.Dict{
				jen.Id("Name"):  jen.Lit(f.Name),
				jen.Id("Value"): valueLiteral(f.Value),
			})
		}
		return q("ObjectValue").Call(fields...)
	}
	return q("NullValue").Call()
}
