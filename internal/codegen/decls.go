package codegen

import (
	"github.com/dave/jennifer/jen"

	"github.com/hanpama/trailgen/internal/ir"
	language "github.com/hanpama/trailgen/internal/language"
)

func (g *generator) genTypes() {
	for _, def := range g.definitions(language.Enum, language.Scalar, language.InputObject) {
		switch def.Kind {
		case language.Enum:
			g.genEnum(def)
		case language.Scalar:
			if _, ok := g.special(def.Name); !ok {
				g.genScalar(def)
			}
		case language.InputObject:
			g.genInput(def)
		}
	}
}

func (g *generator) genEnum(def *language.Definition) {
	name := typeName(def.Name)
	g.describe(def.Description)
	g.f.Type().Id(name).String()
	layout := g.enumConsts(def.Name)
	if len(layout.values) == 0 {
		return
	}
	g.f.Const().DefsFunc(func(grp *jen.Group) {
		for _, v := range layout.values {
			for _, line := range splitLines(v.Description) {
				grp.Comment(line)
			}
			grp.Id(layout.consts[v.Name]).Id(name).Op("=").Lit(v.Name)
		}
	})
}

// genScalar declares a custom scalar. Its values travel as strings.
func (g *generator) genScalar(def *language.Definition) {
	g.describe(def.Description)
	g.f.Type().Id(typeName(def.Name)).String()
}

func (g *generator) genInput(def *language.Definition) {
	g.describe(def.Description)
	g.f.Type().Id(typeName(def.Name)).StructFunc(func(grp *jen.Group) {
		for _, f := range def.Fields {
			for _, line := range splitLines(f.Description) {
				grp.Comment(line)
			}
			p := g.inputFieldPlan(def.Name, f)
			grp.Id(methodName(f.Name)).Add(g.inputType(p.typ)).Tag(map[string]string{"json": f.Name})
		}
	})
}

// inputFieldPlan returns the memoized plan of an input object field.
func (g *generator) inputFieldPlan(owner string, f *language.FieldDefinition) *argPlan {
	if p, ok := g.fieldPlans[f]; ok {
		return p
	}
	p := g.plan(owner, f.Name, "", ir.Normalize(f.Type), f.DefaultValue)
	g.fieldPlans[f] = p
	return p
}
