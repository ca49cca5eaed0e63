// Package widgets is trailgen output for internal/codegen/testdata/widgets.graphql,
// kept in the tree so that its tests compile and exercise generated code.
package widgets

//go:generate go run ../../cmd/trailgen generate -schema ../../internal/codegen/testdata/widgets.graphql -out trails_gen.go -package widgets
