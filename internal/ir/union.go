package ir

import (
	language "github.com/hanpama/trailgen/internal/language"
)

// UnionFieldSet is the fields declared by any member of a union,
// deduplicated by name in member order. The first declaration of a name is
// the one kept.
type UnionFieldSet struct {
	Union  string
	Fields []*language.FieldDefinition
	// Owners[i] is the member type that first declared Fields[i].
	Owners []string
}

func NewUnionFieldSet(r *Registry, union string) *UnionFieldSet {
	set := &UnionFieldSet{Union: union}
	seen := map[string]bool{}
	for _, member := range r.Members(union) {
		for _, f := range r.Fields(member) {
			if seen[f.Name] {
				continue
			}
			seen[f.Name] = true
			set.Fields = append(set.Fields, f)
			set.Owners = append(set.Owners, member)
		}
	}
	return set
}

// CheckUnion compares each member field with the most recently seen field of
// the same name in the union and records one diagnostic per disagreement.
func CheckUnion(r *Registry, union string, diags *Diagnostics) {
	type seenField struct {
		owner string
		typ   *Type
	}
	last := map[string]seenField{}
	for _, member := range r.Members(union) {
		for _, f := range r.Fields(member) {
			t := Normalize(f.Type)
			if prev, ok := last[f.Name]; ok && !prev.typ.Equal(t) {
				diags.Add(diagnosticUnionFieldTypeMismatch(union, f.Name, prev.owner, member, prev.typ, t, f.Position))
			}
			last[f.Name] = seenField{owner: member, typ: t}
		}
	}
}

// CheckUnions runs CheckUnion for every union of the document.
func CheckUnions(r *Registry, diags *Diagnostics) {
	for _, def := range r.Doc.Definitions {
		if def.Kind == language.Union {
			CheckUnion(r, def.Name, diags)
		}
	}
}
