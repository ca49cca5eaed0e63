package codegen

import (
	"github.com/dave/jennifer/jen"

	language "github.com/hanpama/trailgen/internal/language"
)

type rootField struct {
	field string
	typ   string
}

func (g *generator) roots() []rootField {
	var out []rootField
	if t := g.doc.Schema.QueryType; t != "" {
		out = append(out, rootField{"Query", t})
	}
	if t := g.doc.Schema.MutationType; t != "" {
		out = append(out, rootField{"Mutation", t})
	}
	return out
}

// genSchema emits Schema, the entry point an execution engine calls to
// resolve fields and abstract types.
func (g *generator) genSchema() {
	roots := g.roots()

	g.f.Comment("Schema holds the root resolvers.")
	g.f.Type().Id("Schema").StructFunc(func(grp *jen.Group) {
		for _, r := range roots {
			grp.Id(r.field).Id(fieldsName(r.typ))
		}
	})

	g.f.Comment("ResolveField resolves field of objectType on source. A nil source")
	g.f.Comment("resolves against the root resolver of objectType. The selection of")
	g.f.Comment("the field is read from ctx, see querytrail.WithSelection.")
	g.f.Func().Params(jen.Id("s").Op("*").Id("Schema")).Id("ResolveField").
		Params(
			jen.Id("ctx").Qual("context", "Context"),
			jen.List(jen.Id("objectType"), jen.Id("field")).String(),
			jen.Id("source").Id("any"),
		).
		Params(jen.Id("any"), jen.Error()).
		BlockFunc(func(grp *jen.Group) {
			objects := g.definitions(language.Object)
			if len(objects) > 0 {
				grp.Switch(jen.Id("objectType")).BlockFunc(func(sw *jen.Group) {
					for _, def := range objects {
						sw.Case(jen.Lit(def.Name)).BlockFunc(func(c *jen.Group) {
							g.genResolveCase(c, def.Name, roots)
						})
					}
				})
			}
			grp.Return(jen.Nil(), jen.Qual(runtimePath, "UnknownType").Call(jen.Id("objectType")))
		})

	g.f.Comment("ResolveType returns the object type of value, a result of a field of")
	g.f.Comment("type abstractType.")
	g.f.Func().Params(jen.Id("s").Op("*").Id("Schema")).Id("ResolveType").
		Params(jen.Id("abstractType").String(), jen.Id("value").Id("any")).
		Params(jen.String(), jen.Error()).
		BlockFunc(func(grp *jen.Group) {
			grp.List(jen.Id("typed"), jen.Id("ok")).Op(":=").Id("value").Assert(jen.Qual(runtimePath, "Typed"))
			grp.If(jen.Op("!").Id("ok")).Block(jen.Return(jen.Lit(""), jen.Op("&").Qual(runtimePath, "SourceError").Values(jen.Dict{
				jen.Id("TypeName"): jen.Id("abstractType"),
				jen.Id("Source"):   jen.Id("value"),
			})))
			grp.Id("name").Op(":=").Id("typed").Dot("TypeName").Call()
			grp.Switch(jen.Id("abstractType")).BlockFunc(func(sw *jen.Group) {
				for _, def := range g.definitions(language.Interface, language.Union) {
					possible := g.reg.PossibleTypes(def.Name)
					sw.Case(jen.Lit(def.Name)).BlockFunc(func(c *jen.Group) {
						if len(possible) == 0 {
							return
						}
						cases := make([]jen.Code, len(possible))
						for i, p := range possible {
							cases[i] = jen.Lit(p)
						}
						c.Switch(jen.Id("name")).Block(jen.Case(cases...).Block(jen.Return(jen.Id("name"), jen.Nil())))
					})
				}
				sw.Default().Block(jen.Return(jen.Lit(""), jen.Qual(runtimePath, "UnknownType").Call(jen.Id("abstractType"))))
			})
			grp.Return(jen.Lit(""), jen.Qual(runtimePath, "ImpossibleType").Call(jen.Id("abstractType"), jen.Id("name")))
		})
}

func (g *generator) genResolveCase(c *jen.Group, typ string, roots []rootField) {
	fields := fieldsName(typ)
	sourceErr := func() *jen.Statement {
		return jen.Return(jen.Nil(), jen.Op("&").Qual(runtimePath, "SourceError").Values(jen.Dict{
			jen.Id("TypeName"): jen.Lit(typ),
			jen.Id("Source"):   jen.Id("source"),
		}))
	}

	var root string
	for _, r := range roots {
		if r.typ == typ {
			root = r.field
			break
		}
	}
	if root != "" {
		c.If(jen.Id("source").Op("==").Nil()).Block(
			jen.If(jen.Id("s").Dot(root).Op("==").Nil()).Block(sourceErr()),
			jen.Return(jen.Id(resolveFuncName(typ)).Call(jen.Id("ctx"), jen.Id("s").Dot(root), jen.Id("field"))),
		)
	}
	c.List(jen.Id("obj"), jen.Id("ok")).Op(":=").Id("source").Assert(jen.Id(fields))
	c.If(jen.Op("!").Id("ok")).Block(sourceErr())
	c.Return(jen.Id(resolveFuncName(typ)).Call(jen.Id("ctx"), jen.Id("obj"), jen.Id("field")))
}
