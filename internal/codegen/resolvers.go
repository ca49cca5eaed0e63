package codegen

import (
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/hanpama/trailgen/internal/ir"
	language "github.com/hanpama/trailgen/internal/language"
)

// genResolvers emits the interfaces users implement: one per abstract type
// and one Fields interface per object, each followed by the binding that
// dispatches a field name to its method.
func (g *generator) genResolvers() {
	for _, def := range g.definitions(language.Interface, language.Union) {
		g.describe(def.Description)
		if len(splitLines(def.Description)) == 0 {
			g.f.Commentf("%s is a value of one of: %s.", typeName(def.Name), strings.Join(g.reg.PossibleTypes(def.Name), ", "))
		}
		g.f.Type().Id(typeName(def.Name)).Interface(jen.Qual(runtimePath, "Typed"))
	}
	for _, def := range g.definitions(language.Object) {
		g.genFieldsInterface(def)
		g.genBinding(def)
	}
}

// relation reports whether a field's resolver receives a walked trail.
func (g *generator) relation(f *language.FieldDefinition) bool {
	return !g.reg.IsLeaf(ir.Normalize(f.Type).NamedType())
}

func (g *generator) genFieldsInterface(def *language.Definition) {
	layout := g.methods(def.Name)
	fields, owners := g.fieldsOf(def.Name)

	g.describe(def.Description)
	if len(splitLines(def.Description)) == 0 {
		g.f.Commentf("%s resolves the fields of %s.", fieldsName(def.Name), def.Name)
	}
	g.f.Type().Id(fieldsName(def.Name)).InterfaceFunc(func(grp *jen.Group) {
		if g.reg.Abstract(def.Name) {
			grp.Qual(runtimePath, "Typed")
		}
		for i, f := range fields {
			for _, line := range splitLines(f.Description) {
				grp.Comment(line)
			}
			params := []jen.Code{jen.Id("ctx").Qual("context", "Context")}
			if g.relation(f) {
				params = append(params, jen.Id("trail").Id(walkedTrailName(ir.Normalize(f.Type).NamedType())))
			}
			for _, arg := range f.Arguments {
				p := g.argumentPlan(owners[i], f, arg)
				params = append(params, jen.Id(paramName(arg.Name)).Add(g.inputType(p.typ)))
			}
			result := g.outputType(ir.Normalize(f.Type), g.owned(def.Name, f.Name))
			grp.Id(layout.fields[f.Name]).Params(params...).Params(result, jen.Error())
		}
	})
}

func (g *generator) genBinding(def *language.Definition) {
	layout := g.methods(def.Name)
	fields, _ := g.fieldsOf(def.Name)

	needsSel := false
	for _, f := range fields {
		if g.relation(f) || len(f.Arguments) > 0 {
			needsSel = true
			break
		}
	}

	g.f.Func().Id(resolveFuncName(def.Name)).
		Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("obj").Id(fieldsName(def.Name)), jen.Id("field").String()).
		Params(jen.Id("any"), jen.Error()).
		BlockFunc(func(grp *jen.Group) {
			if needsSel {
				grp.List(jen.Id("sel"), jen.Id("_")).Op(":=").Qual(runtimePath, "SelectionFromContext").Call(jen.Id("ctx"))
			}
			if len(fields) > 0 {
				grp.Switch(jen.Id("field")).BlockFunc(func(sw *jen.Group) {
					for _, f := range fields {
						sw.Case(jen.Lit(f.Name)).BlockFunc(func(c *jen.Group) {
							g.genBindingCase(c, def.Name, f, layout)
						})
					}
				})
			}
			grp.Return(jen.Nil(), jen.Qual(runtimePath, "UnknownField").Call(jen.Lit(def.Name), jen.Id("field")))
		})
}

func (g *generator) genBindingCase(c *jen.Group, typ string, f *language.FieldDefinition, layout *typeMethods) {
	call := []jen.Code{jen.Id("ctx")}
	if g.relation(f) {
		named := ir.Normalize(f.Type).NamedType()
		call = append(call, jen.Id(walkedTrailName(named)).Values(
			jen.Id(trailName(named)).Values(jen.Dict{
				jen.Id("trail"): jen.Qual(runtimePath, "NewTrail").Call(jen.Id("sel")),
			}),
		))
	}
	if len(f.Arguments) > 0 {
		handle := argsTypeName(typ, layout.fields[f.Name])
		c.Id("args").Op(":=").Id(handle).Values(jen.Dict{
			jen.Id("args"): jen.Qual(runtimePath, "ArgsOf").Call(jen.Lit(f.Name), jen.Id("sel")),
		})
		for _, arg := range f.Arguments {
			name := paramName(arg.Name)
			c.List(jen.Id(name), jen.Err()).Op(":=").Id("args").Dot(methodName(arg.Name)).Call()
			c.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err()))
			call = append(call, jen.Id(name))
		}
	}
	c.Return(jen.Id("obj").Dot(layout.fields[f.Name]).Call(call...))
}
