package querytrail_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/hanpama/trailgen/querytrail"
)

func parseOperation(t *testing.T, query string, vars map[string]any) querytrail.Selection {
	t.Helper()
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	require.NoError(t, err)
	require.NotEmpty(t, doc.Operations)
	return querytrail.FromOperation(doc, doc.Operations[0], vars)
}

func TestWithDefaultFallsBack(t *testing.T) {
	for _, tc := range []struct {
		name  string
		query string
		want  int32
	}{
		{name: "absent", query: `{ widgets { id } }`, want: 10},
		{name: "present", query: `{ widgets(limit: 5) { id } }`, want: 5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			root := querytrail.NewTrail(parseOperation(t, tc.query, nil))
			got, err := querytrail.WithDefault(root.Args("widgets"), "limit", querytrail.Int, 10)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestTrailNavigation(t *testing.T) {
	sel := parseOperation(t, `{ user(id: "1") { name friends(first: 2) { name } } }`, nil)
	root := querytrail.NewTrail(sel)
	require.True(t, root.Present())

	user := root.Child("user")
	require.True(t, user.Present())
	require.True(t, user.Selected("name"))
	require.False(t, user.Selected("email"))

	friends := user.Child("friends")
	require.True(t, friends.Present())
	require.True(t, friends.Selected("name"))

	missing := user.Child("company")
	require.False(t, missing.Present())
	require.False(t, missing.Selected("name"))
	require.False(t, missing.Child("address").Present())

	first, err := querytrail.Required(user.Args("friends"), "first", querytrail.Int)
	require.NoError(t, err)
	require.Equal(t, int32(2), first)
}

func TestArgumentErrors(t *testing.T) {
	root := querytrail.NewTrail(parseOperation(t, `{ user { name } }`, nil))

	_, err := querytrail.Required(root.Args("user"), "id", querytrail.ToID)
	require.ErrorIs(t, err, querytrail.ErrMissingArgument)
	var argErr *querytrail.ArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, "user", argErr.Field)
	require.Equal(t, "id", argErr.Argument)

	_, err = querytrail.Required(root.Args("company"), "id", querytrail.ToID)
	require.ErrorIs(t, err, querytrail.ErrNotSelected)

	opt, err := querytrail.Optional(root.Args("user"), "id", querytrail.ToID)
	require.NoError(t, err)
	require.Nil(t, opt)
}

func TestArgumentConversionError(t *testing.T) {
	root := querytrail.NewTrail(parseOperation(t, `{ widgets(limit: "many") { id } }`, nil))
	_, err := querytrail.WithDefault(root.Args("widgets"), "limit", querytrail.Int, 10)
	require.Error(t, err)
	var convErr *querytrail.ConversionError
	require.True(t, errors.As(err, &convErr))
	require.Equal(t, `argument "limit" of field "widgets": querytrail: expected Int, got String`, err.Error())
}

func TestWithDefaultValue(t *testing.T) {
	root := querytrail.NewTrail(parseOperation(t, `{ events { id } }`, nil))
	got, err := querytrail.WithDefaultValue(root.Args("events"), "since", querytrail.Date, querytrail.StringValue("2020-01-01"))
	require.NoError(t, err)
	require.Equal(t, 2020, got.Year())
}

func TestSelectionContext(t *testing.T) {
	_, ok := querytrail.SelectionFromContext(context.Background())
	require.False(t, ok)

	sel := parseOperation(t, `{ a }`, nil)
	ctx := querytrail.WithSelection(context.Background(), sel)
	got, ok := querytrail.SelectionFromContext(ctx)
	require.True(t, ok)
	require.Same(t, sel, got)
}

func TestInputArgs(t *testing.T) {
	in, err := querytrail.InputArgs("ReviewInput", querytrail.ObjectValue(
		querytrail.ObjectField{Name: "stars", Value: querytrail.IntValue(4)},
		querytrail.ObjectField{Name: "comment", Value: querytrail.NullValue()},
	))
	require.NoError(t, err)

	stars, err := querytrail.Required(in, "stars", querytrail.Int)
	require.NoError(t, err)
	require.Equal(t, int32(4), stars)

	comment, err := querytrail.Optional(in, "comment", querytrail.String)
	require.NoError(t, err)
	require.Nil(t, comment)

	_, err = querytrail.Required(in, "title", querytrail.String)
	require.ErrorIs(t, err, querytrail.ErrMissingArgument)
	require.Contains(t, err.Error(), `"ReviewInput"`)

	_, err = querytrail.InputArgs("ReviewInput", querytrail.IntValue(1))
	require.EqualError(t, err, "querytrail: expected ReviewInput, got Int")
}
