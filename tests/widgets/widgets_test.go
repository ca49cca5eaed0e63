package widgets_test

import (
	"context"
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/hanpama/trailgen/querytrail"
	"github.com/hanpama/trailgen/tests/widgets"
)

func parse(t *testing.T, query string) querytrail.Selection {
	t.Helper()
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	require.NoError(t, err)
	require.NotEmpty(t, doc.Operations)
	return querytrail.FromOperation(doc, doc.Operations[0], nil)
}

// fieldContext returns ctx carrying the selection at path below the root.
func fieldContext(t *testing.T, root querytrail.Selection, path ...string) context.Context {
	t.Helper()
	sel := root
	for _, name := range path {
		var ok bool
		sel, ok = sel.Child(name)
		require.True(t, ok, name)
	}
	return querytrail.WithSelection(context.Background(), sel)
}

type widget struct {
	id    querytrail.ID
	name  string
	first *int32
}

func (w *widget) TypeName() string                           { return "Widget" }
func (w *widget) ID(context.Context) (*querytrail.ID, error) { return &w.id, nil }
func (w *widget) Name(context.Context) (*string, error)      { return &w.name, nil }
func (w *widget) Homepage(context.Context) (*url.URL, error) { return nil, nil }
func (w *widget) Owner(context.Context, widgets.WalkedUserTrail) (widgets.UserFields, error) {
	return nil, nil
}

func (w *widget) Colors(_ context.Context, first *int32) ([]widgets.Color, error) {
	w.first = first
	return []widgets.Color{widgets.ColorRed, widgets.ColorBlue}, nil
}

type typed string

func (t typed) TypeName() string { return string(t) }

type query struct {
	items []*widget

	trail widgets.WalkedWidgetTrail
	limit int32
	color widgets.Color
	after *widgets.Cursor
	since time.Time
}

func (q *query) Widget(_ context.Context, _ widgets.WalkedWidgetTrail, id querytrail.ID) (widgets.WidgetFields, error) {
	for _, w := range q.items {
		if w.id == id {
			return w, nil
		}
	}
	return nil, nil
}

func (q *query) Widgets(_ context.Context, trail widgets.WalkedWidgetTrail, limit int32, color widgets.Color, after *widgets.Cursor, since time.Time) ([]widgets.WidgetFields, error) {
	q.trail, q.limit, q.color, q.after, q.since = trail, limit, color, after, since
	out := make([]widgets.WidgetFields, len(q.items))
	for i, w := range q.items {
		out[i] = w
	}
	return out, nil
}

func (q *query) Node(context.Context, widgets.WalkedNodeTrail, querytrail.ID) (widgets.Node, error) {
	return nil, nil
}

func (q *query) Search(context.Context, widgets.WalkedSearchResultTrail, string, widgets.SearchFilter) ([]widgets.SearchResult, error) {
	return nil, nil
}

func (q *query) Version(context.Context) (*string, error) {
	v := "1"
	return &v, nil
}

func newQuery() *query {
	return &query{items: []*widget{{id: "1", name: "gear"}, {id: "2", name: "cog"}}}
}

func TestWidgetsLimit(t *testing.T) {
	for _, tc := range []struct {
		name  string
		query string
		want  int32
	}{
		{name: "default", query: `{ widgets { id } }`, want: 10},
		{name: "given", query: `{ widgets(limit: 5) { id } }`, want: 5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			root := widgets.NewWalkedQueryTrail(parse(t, tc.query))
			got, err := root.WidgetsArgs().Limit()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestWidgetsDefaults(t *testing.T) {
	args := widgets.NewWalkedQueryTrail(parse(t, `{ widgets { id } }`)).WidgetsArgs()

	color, err := args.Color()
	require.NoError(t, err)
	require.Equal(t, widgets.ColorRed, color)

	after, err := args.After()
	require.NoError(t, err)
	require.Nil(t, after)

	since, err := args.Since()
	require.NoError(t, err)
	require.True(t, since.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)), since)
}

func TestWidgetsArgumentErrors(t *testing.T) {
	args := widgets.NewWalkedQueryTrail(parse(t, `{ widgets(color: PURPLE, limit: "ten") { id } }`)).WidgetsArgs()

	_, err := args.Color()
	var cerr *querytrail.ConversionError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, `unknown value "PURPLE"`, cerr.Detail)

	_, err = args.Limit()
	require.ErrorContains(t, err, "expected Int, got String")

	_, err = widgets.NewWalkedQueryTrail(parse(t, `{ version }`)).WidgetsArgs().Limit()
	require.ErrorIs(t, err, querytrail.ErrNotSelected)
}

func TestZeroArgumentAccessor(t *testing.T) {
	root := widgets.NewWalkedQueryTrail(parse(t, `{ version widgets { name } }`))
	require.True(t, root.Version())
	require.Equal(t, struct{}{}, root.VersionArgs())

	w, ok := root.Widgets().Walk()
	require.True(t, ok)
	require.True(t, w.Name())
	require.Equal(t, struct{}{}, w.NameArgs())
}

func TestWalkAbsent(t *testing.T) {
	root := widgets.NewWalkedQueryTrail(parse(t, `{ version }`))
	_, ok := root.Widgets().Walk()
	require.False(t, ok)
	require.False(t, root.Widgets().Name())
	require.False(t, root.Widgets().Owner().Name())
}

func TestDowncast(t *testing.T) {
	root := widgets.NewWalkedQueryTrail(parse(t, `{
		search(text: "g") {
			... on Widget { name colors(first: 2) }
			... on User { widgets { id } }
		}
	}`))
	s, ok := root.Search().Walk()
	require.True(t, ok)

	w := s.AsWidget()
	require.Equal(t, "WalkedWidgetTrail", reflect.TypeOf(w).Name())
	require.True(t, w.Name())
	first, err := w.ColorsArgs().First()
	require.NoError(t, err)
	require.Equal(t, int32(2), *first)

	u := s.AsUser()
	require.Equal(t, "WalkedUserTrail", reflect.TypeOf(u).Name())
	require.True(t, u.Widgets().ID())
	require.Equal(t, struct{}{}, u.WidgetsArgs())
}

func TestSearchFilter(t *testing.T) {
	for _, tc := range []struct {
		name  string
		query string
		want  widgets.SearchFilter
	}{
		{
			name:  "default",
			query: `{ search(text: "g") { id } }`,
			want:  widgets.SearchFilter{Tags: []string{"new"}, Limit: 3},
		},
		{
			name:  "given",
			query: `{ search(text: "g", filter: { color: BLUE, limit: 7 }) { id } }`,
			want:  widgets.SearchFilter{Tags: []string{}, Color: querytrail.Ptr(widgets.ColorBlue), Limit: 7},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := widgets.NewWalkedQueryTrail(parse(t, tc.query)).SearchArgs().Filter()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err := widgets.NewWalkedQueryTrail(parse(t, `{ search(text: "g", filter: { tags: [1] }) { id } }`)).SearchArgs().Filter()
	require.ErrorContains(t, err, "expected String, got Int")

	_, err = widgets.NewWalkedQueryTrail(parse(t, `{ search { id } }`)).SearchArgs().Text()
	require.ErrorIs(t, err, querytrail.ErrMissingArgument)
}

func TestResolveField(t *testing.T) {
	q := newQuery()
	schema := &widgets.Schema{Query: q}
	sel := parse(t, `{ widgets(color: BLUE) { name owner { name } colors(first: 1) } }`)

	res, err := schema.ResolveField(fieldContext(t, sel, "widgets"), "Query", "widgets", nil)
	require.NoError(t, err)
	items, ok := res.([]widgets.WidgetFields)
	require.True(t, ok)
	require.Len(t, items, 2)
	require.Equal(t, int32(10), q.limit)
	require.Equal(t, widgets.ColorBlue, q.color)
	require.Nil(t, q.after)
	require.True(t, q.trail.Name())
	require.True(t, q.trail.Owner().Name())
	require.False(t, q.trail.Homepage())

	res, err = schema.ResolveField(fieldContext(t, sel, "widgets", "name"), "Widget", "name", items[0])
	require.NoError(t, err)
	require.Equal(t, "gear", *res.(*string))

	res, err = schema.ResolveField(fieldContext(t, sel, "widgets", "colors"), "Widget", "colors", items[1])
	require.NoError(t, err)
	require.Equal(t, []widgets.Color{widgets.ColorRed, widgets.ColorBlue}, res)
	require.Equal(t, int32(1), *q.items[1].first)

	res, err = schema.ResolveField(context.Background(), "Query", "version", nil)
	require.NoError(t, err)
	require.Equal(t, "1", *res.(*string))
}

func TestResolveFieldErrors(t *testing.T) {
	schema := &widgets.Schema{Query: newQuery()}
	ctx := context.Background()
	var serr *querytrail.SourceError

	_, err := schema.ResolveField(ctx, "Widget", "name", "gear")
	require.ErrorAs(t, err, &serr)
	require.Equal(t, "Widget", serr.TypeName)

	_, err = schema.ResolveField(ctx, "Mutation", "rename", nil)
	require.ErrorAs(t, err, &serr)
	require.Equal(t, "Mutation", serr.TypeName)

	_, err = schema.ResolveField(ctx, "Widget", "weight", &widget{})
	require.ErrorIs(t, err, querytrail.ErrUnknownField)

	_, err = schema.ResolveField(ctx, "Gadget", "name", nil)
	require.ErrorIs(t, err, querytrail.ErrUnknownType)

	sel := parse(t, `{ widget { id } }`)
	_, err = schema.ResolveField(fieldContext(t, sel, "widget"), "Query", "widget", nil)
	require.ErrorIs(t, err, querytrail.ErrMissingArgument)
}

func TestResolveType(t *testing.T) {
	schema := &widgets.Schema{}

	name, err := schema.ResolveType("SearchResult", &widget{})
	require.NoError(t, err)
	require.Equal(t, "Widget", name)

	name, err = schema.ResolveType("Node", typed("User"))
	require.NoError(t, err)
	require.Equal(t, "User", name)

	_, err = schema.ResolveType("Node", typed("Query"))
	require.ErrorIs(t, err, querytrail.ErrImpossibleType)

	_, err = schema.ResolveType("Gadget", typed("Widget"))
	require.ErrorIs(t, err, querytrail.ErrUnknownType)

	var serr *querytrail.SourceError
	_, err = schema.ResolveType("Node", 42)
	require.ErrorAs(t, err, &serr)
}
