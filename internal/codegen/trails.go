package codegen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/hanpama/trailgen/internal/ir"
	language "github.com/hanpama/trailgen/internal/language"
)

// genTrails emits the navigation types. Every object, interface and union
// gets a trail, a walked trail that unlocks arguments and downcasts, and
// one argument handle per field with arguments.
func (g *generator) genTrails() {
	for _, def := range g.definitions(language.Object, language.Interface, language.Union) {
		g.genTrail(def)
	}
	for _, root := range []string{g.doc.Schema.QueryType, g.doc.Schema.MutationType} {
		if root == "" {
			continue
		}
		walked := walkedTrailName(root)
		g.f.Commentf("New%s starts navigation at the %s root.", walked, root)
		g.f.Func().Id("New"+walked).
			Params(jen.Id("sel").Qual(runtimePath, "Selection")).
			Id(walked).
			Block(jen.Return(jen.Id(walked).Values(
				jen.Id(trailName(root)).Values(jen.Dict{
					jen.Id("trail"): jen.Qual(runtimePath, "NewTrail").Call(jen.Id("sel")),
				}),
			)))
	}
}

func (g *generator) genTrail(def *language.Definition) {
	trail, walked := trailName(def.Name), walkedTrailName(def.Name)
	layout := g.methods(def.Name)
	fields, owners := g.fieldsOf(def.Name)

	g.f.Commentf("%s navigates the selection beneath a field of type %s.", trail, def.Name)
	g.f.Type().Id(trail).Struct(jen.Id("trail").Qual(runtimePath, "Trail"))
	g.f.Commentf("%s is a %s known to be selected.", walked, trail)
	g.f.Type().Id(walked).Struct(jen.Id(trail))

	g.f.Comment("Walk reports whether the trail is selected. Arguments and downcasts")
	g.f.Comment("are only reachable through the walked trail.")
	g.f.Func().Params(jen.Id("t").Id(trail)).Id("Walk").Params().Params(jen.Id(walked), jen.Bool()).
		Block(jen.Return(jen.Id(walked).Values(jen.Id("t")), jen.Id("t").Dot("trail").Dot("Present").Call()))

	for i, f := range fields {
		g.genTrailField(def.Name, owners[i], f, layout)
	}

	for _, possible := range g.reg.PossibleTypes(def.Name) {
		target := walkedTrailName(possible)
		g.f.Commentf("As%s narrows the walked trail to the %s branch.", typeName(possible), possible)
		g.f.Func().Params(jen.Id("t").Id(walked)).Id("As"+typeName(possible)).Params().Id(target).
			Block(jen.Return(jen.Id(target).Values(
				jen.Id(trailName(possible)).Values(jen.Dict{
					jen.Id("trail"): jen.Id("t").Dot("trail"),
				}),
			)))
	}
}

func (g *generator) genTrailField(typ, owner string, f *language.FieldDefinition, layout *typeMethods) {
	trail, walked := trailName(typ), walkedTrailName(typ)
	method := layout.fields[f.Name]
	named := ir.Normalize(f.Type).NamedType()

	for _, line := range splitLines(f.Description) {
		g.f.Comment(line)
	}
	recv := jen.Id("t").Id(trail)
	if g.reg.IsLeaf(named) {
		g.f.Func().Params(recv).Id(method).Params().Bool().
			Block(jen.Return(jen.Id("t").Dot("trail").Dot("Selected").Call(jen.Lit(f.Name))))
	} else {
		g.f.Func().Params(recv).Id(method).Params().Id(trailName(named)).
			Block(jen.Return(jen.Id(trailName(named)).Values(jen.Dict{
				jen.Id("trail"): jen.Id("t").Dot("trail").Dot("Child").Call(jen.Lit(f.Name)),
			})))
	}

	argsMethod := layout.args[f.Name]
	walkedRecv := jen.Id("t").Id(walked)
	if len(f.Arguments) == 0 {
		g.f.Func().Params(walkedRecv).Id(argsMethod).Params().Struct().
			Block(jen.Return(jen.Struct().Values()))
		return
	}

	handle := argsTypeName(typ, method)
	g.f.Func().Params(walkedRecv).Id(argsMethod).Params().Id(handle).
		Block(jen.Return(jen.Id(handle).Values(jen.Dict{
			jen.Id("args"): jen.Id("t").Dot("trail").Dot("Args").Call(jen.Lit(f.Name)),
		})))

	g.f.Commentf("%s reads the arguments of %s.%s.", handle, typ, f.Name)
	g.f.Type().Id(handle).Struct(jen.Id("args").Qual(runtimePath, "Args"))
	for _, arg := range f.Arguments {
		p := g.argumentPlan(owner, f, arg)
		for _, line := range splitLines(arg.Description) {
			g.f.Comment(line)
		}
		g.f.Func().Params(jen.Id("a").Id(handle)).Id(methodName(arg.Name)).Params().
			Params(g.inputType(p.typ), jen.Error()).
			Block(jen.Return(g.read(p, jen.Id("a").Dot("args"), arg.Name)))
	}
}

func argsTypeName(typ, method string) string {
	return fmt.Sprintf("%s%sArgs", typeName(typ), method)
}
