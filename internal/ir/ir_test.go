package ir_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/hanpama/trailgen/internal/ir"
	language "github.com/hanpama/trailgen/internal/language"
)

func mustBuild(t *testing.T, sdl string) *ir.Document {
	t.Helper()
	doc, err := ir.Build(context.Background(), ir.NewInMemoryDiscovery(ir.Source{Name: "schema.graphql", Content: sdl}))
	require.NoError(t, err)
	return doc
}

const mismatchedUnion = `
type Query { search: [Entity!]! }
union Entity = User | Company
type User { name: String! country: Country! }
type Company { name: String! country: OtherCountry! }
type Country { code: String! }
type OtherCountry { code: String! }
`

func TestNormalize(t *testing.T) {
	for _, tc := range []struct {
		sdl  string
		want *ir.Type
	}{
		{"Int", ir.NullableOf(ir.Named("Int"))},
		{"Int!", ir.Named("Int")},
		{"[Int!]", ir.NullableOf(ir.ListOf(ir.Named("Int")))},
		{"[[Int]!]!", ir.ListOf(ir.ListOf(ir.NullableOf(ir.Named("Int"))))},
	} {
		t.Run(tc.sdl, func(t *testing.T) {
			doc := mustBuild(t, "type Query { f: "+tc.sdl+" }")
			got := ir.Normalize(doc.ForName("Query").Fields[0].Type)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("normalized type mismatch (-want +got):\n%s", diff)
			}
			require.Equal(t, tc.sdl, got.String())
			require.Equal(t, "Int", got.NamedType())
		})
	}
}

func TestRegistryFieldIndex(t *testing.T) {
	doc := mustBuild(t, `
		schema { query: Root }
		type Root { user: User }
		interface Node { id: ID! }
		type User implements Node { id: ID! name: String }
		extend type User { email: String }
		scalar URL
		scalar Date
		enum Color { RED }
	`)
	reg := ir.NewRegistry(doc)

	index := reg.FieldIndex()
	require.Len(t, index, 2)
	require.Contains(t, index, "Root")
	names := []string{}
	for _, f := range index["User"] {
		names = append(names, f.Name)
	}
	require.Equal(t, []string{"id", "name", "email"}, names)

	require.Equal(t, ir.Scalars{URL: true, Date: true}, reg.Scalars)
	require.Equal(t, []string{"User"}, reg.Implementors("Node"))
	require.Len(t, reg.Fields("Node"), 1)
	require.True(t, reg.IsLeaf("Color"))
	require.True(t, reg.IsLeaf("Int"))
	require.False(t, reg.IsLeaf("User"))
	require.True(t, reg.Abstract("User"))
	require.Equal(t, "Root", doc.Schema.QueryType)
}

func TestCheckUnionMismatch(t *testing.T) {
	reg := ir.NewRegistry(mustBuild(t, mismatchedUnion))
	diags := ir.NewDiagnostics()
	ir.CheckUnions(reg, diags)

	list := diags.List()
	require.Len(t, list, 1)
	d := list[0]
	require.Equal(t, ir.UnionFieldTypeMismatch, d.Kind)
	require.Equal(t, "Entity", d.Type)
	require.Equal(t, "country", d.Field)
	require.Equal(t, "User", d.TypeA)
	require.Equal(t, "Company", d.TypeB)
	require.Equal(t, "Country!", d.FieldTypeA)
	require.Equal(t, "OtherCountry!", d.FieldTypeB)
	require.Equal(t, "schema.graphql", d.File)
	require.Contains(t, d.Message(), `field "country" of union "Entity"`)

	set := ir.NewUnionFieldSet(reg, "Entity")
	require.Len(t, set.Fields, 2)
	require.Equal(t, []string{"User", "User"}, set.Owners)
	require.Equal(t, "Country", set.Fields[1].Type.NamedType)
}

func TestCheckUnionAgreeing(t *testing.T) {
	reg := ir.NewRegistry(mustBuild(t, `
		type Query { search: [Entity!]! }
		union Entity = User | Company
		type User { name: String! tags: [String!] }
		type Company { name: String! tags: [String!] founded: Int }
	`))
	diags := ir.NewDiagnostics()
	ir.CheckUnions(reg, diags)
	require.Zero(t, diags.Len())
	require.NoError(t, diags.Err())
	require.Len(t, ir.NewUnionFieldSet(reg, "Entity").Fields, 3)
}

func TestCheckUnionIdempotent(t *testing.T) {
	reg := ir.NewRegistry(mustBuild(t, mismatchedUnion))
	first, second := ir.NewDiagnostics(), ir.NewDiagnostics()
	ir.CheckUnions(reg, first)
	ir.CheckUnions(reg, second)
	ir.CheckUnions(reg, second)
	require.Equal(t, first.List(), second.List())

	var derr ir.DiagnosticError
	require.True(t, errors.As(second.Err(), &derr))
	require.Len(t, derr, 1)
}

func TestBuildViolations(t *testing.T) {
	for _, tc := range []struct {
		name string
		sdl  string
		want string
	}{
		{"duplicate", "type Query { a: Int } type Query { b: Int }", `Type "Query" is already defined`},
		{"dangling extension", "type Query { a: Int } extend type Missing { b: Int }", `definition "Missing" not found for extension`},
		{"root not found", "schema { query: Root } type Query { a: Int }", `Query root type "Root" not found`},
		{"root not object", "schema { query: Root } enum Root { A }", `Query root type "Root" must be an object type`},
		{"object argument", "type Query { a(u: User): Int } type User { id: ID }", `Query.a(u:) must be an input type, but "User" is not`},
		{"object input field", "type Query { a(f: F): Int } input F { u: User } type User { id: ID }", `F.u must be an input type, but "User" is not`},
		{"input output", "type Query { b: In } input In { x: Int }", `Query.b must be an output type, but "In" is an input object`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ir.Build(context.Background(), ir.NewInMemoryDiscovery(ir.Source{Name: "s.graphql", Content: tc.sdl}))
			var verr ir.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestDocumentDefaultRoots(t *testing.T) {
	doc := mustBuild(t, "type Query { a: Int } type Mutation { b: Int }")
	require.Equal(t, ir.Schema{QueryType: "Query", MutationType: "Mutation"}, doc.Schema)
	require.Equal(t, language.Object, doc.ForName("Mutation").Kind)
}

func TestFileSystemDiscovery(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.graphql"), []byte("type User { id: ID! }"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.graphql"), []byte("type Query { me: User }"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	doc, err := ir.Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 2)
	require.Equal(t, "Query", doc.Definitions[0].Name)
	require.Equal(t, "User", doc.Definitions[1].Name)

	_, err = ir.Load(context.Background(), filepath.Join(dir, "missing"))
	require.Error(t, err)
}
