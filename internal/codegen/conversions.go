package codegen

import (
	"github.com/dave/jennifer/jen"

	language "github.com/hanpama/trailgen/internal/language"
)

// genConversions emits one FromValue function per declared special scalar,
// enum, custom scalar and input object.
func (g *generator) genConversions() {
	for _, name := range specialScalarOrder {
		s, ok := g.special(name)
		if !ok {
			continue
		}
		g.f.Func().Id(converterName(name)).Params(jen.Id("v").Qual(runtimePath, "Value")).
			Params(s.goType(), jen.Error()).
			Block(jen.Return(jen.Qual(runtimePath, s.runtime).Call(jen.Id("v"))))
	}

	for _, def := range g.definitions(language.Enum, language.Scalar, language.InputObject) {
		switch def.Kind {
		case language.Enum:
			g.genEnumConversion(def)
		case language.Scalar:
			if _, ok := g.special(def.Name); !ok {
				g.genScalarConversion(def)
			}
		case language.InputObject:
			g.genInputConversion(def)
		}
	}
}

func (g *generator) conversionFunc(def *language.Definition) *jen.Statement {
	return g.f.Func().Id(converterName(def.Name)).
		Params(jen.Id("v").Qual(runtimePath, "Value")).
		Params(jen.Id(typeName(def.Name)), jen.Error())
}

func (g *generator) genEnumConversion(def *language.Definition) {
	name := typeName(def.Name)
	g.conversionFunc(def).BlockFunc(func(grp *jen.Group) {
		grp.List(jen.Id("name"), jen.Err()).Op(":=").Qual(runtimePath, "EnumName").Call(jen.Id("v"))
		grp.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Lit(""), jen.Err()))
		if layout := g.enumConsts(def.Name); len(layout.values) > 0 {
			cases := make([]jen.Code, len(layout.values))
			for i, v := range layout.values {
				cases[i] = jen.Id(layout.consts[v.Name])
			}
			grp.Switch(jen.Id(name).Call(jen.Id("name"))).Block(
				jen.Case(cases...).Block(jen.Return(jen.Id(name).Call(jen.Id("name")), jen.Nil())),
			)
		}
		grp.Return(jen.Lit(""), jen.Op("&").Qual(runtimePath, "ConversionError").Values(jen.Dict{
			jen.Id("Expected"): jen.Lit(def.Name),
			jen.Id("Actual"):   jen.Id("v").Dot("Kind").Call(),
			jen.Id("Detail"):   jen.Qual("fmt", "Sprintf").Call(jen.Lit("unknown value %q"), jen.Id("name")),
		}))
	})
}

func (g *generator) genScalarConversion(def *language.Definition) {
	g.conversionFunc(def).Block(
		jen.List(jen.Id("s"), jen.Err()).Op(":=").Qual(runtimePath, "String").Call(jen.Id("v")),
		jen.Return(jen.Id(typeName(def.Name)).Call(jen.Id("s")), jen.Err()),
	)
}

func (g *generator) genInputConversion(def *language.Definition) {
	g.conversionFunc(def).BlockFunc(func(grp *jen.Group) {
		grp.Var().Id("out").Id(typeName(def.Name))
		in := jen.Id("in")
		if len(def.Fields) == 0 {
			in = jen.Id("_")
		}
		grp.List(in, jen.Err()).Op(":=").Qual(runtimePath, "InputArgs").Call(jen.Lit(def.Name), jen.Id("v"))
		grp.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Id("out"), jen.Err()))
		for _, f := range def.Fields {
			p := g.inputFieldPlan(def.Name, f)
			grp.If(
				jen.List(jen.Id("out").Dot(methodName(f.Name)), jen.Err()).Op("=").Add(g.read(p, jen.Id("in"), f.Name)),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(jen.Id("out"), jen.Err()))
		}
		grp.Return(jen.Id("out"), jen.Nil())
	})
}
