package querytrail

import "context"

// Argument is one argument passed to a selected field.
type Argument struct {
	Name  string
	Value Value
}

// Selection is the look-ahead view of one selected field: its arguments and
// the fields selected beneath it. Engines implement it over their own query
// representation; FromOperation provides one for gqlparser documents.
type Selection interface {
	// Child returns the selection of the named sub-field, merged across
	// fragments, or false when the client did not select it.
	Child(name string) (Selection, bool)
	// Arguments returns the arguments the client passed to this field, with
	// variables already substituted. Absent arguments are omitted.
	Arguments() []Argument
}

type selectionKey struct{}

// WithSelection returns a copy of ctx carrying the selection of the field
// being resolved.
func WithSelection(ctx context.Context, sel Selection) context.Context {
	return context.WithValue(ctx, selectionKey{}, sel)
}

// SelectionFromContext returns the selection stored by WithSelection.
func SelectionFromContext(ctx context.Context) (Selection, bool) {
	sel, ok := ctx.Value(selectionKey{}).(Selection)
	return sel, ok && sel != nil
}

// Trail is an untyped position in a query. The zero Trail has no selection.
type Trail struct {
	sel Selection
}

func NewTrail(sel Selection) Trail { return Trail{sel: sel} }

// Present reports whether the trail points at a selected field.
func (t Trail) Present() bool { return t.sel != nil }

func (t Trail) Selection() Selection { return t.sel }

// Selected reports whether field is selected beneath the trail.
func (t Trail) Selected(field string) bool {
	if t.sel == nil {
		return false
	}
	_, ok := t.sel.Child(field)
	return ok
}

// Child moves the trail to field. The result is empty when either the trail
// or the field is absent.
func (t Trail) Child(field string) Trail {
	if t.sel == nil {
		return Trail{}
	}
	child, ok := t.sel.Child(field)
	if !ok {
		return Trail{}
	}
	return Trail{sel: child}
}

// Args returns the arguments passed to field beneath the trail.
func (t Trail) Args(field string) Args {
	return ArgsOf(field, t.Child(field).sel)
}

// Args is the argument view of one field. Its zero value, or one built over
// a nil selection, reports ErrNotSelected from every lookup.
type Args struct {
	field string
	sel   Selection
}

// ArgsOf returns the arguments of field read from sel, the selection of the
// field itself.
func ArgsOf(field string, sel Selection) Args {
	return Args{field: field, sel: sel}
}

func (a Args) Field() string { return a.field }

// Lookup returns the value passed for name. The boolean is false when the
// client omitted the argument.
func (a Args) Lookup(name string) (Value, bool, error) {
	if a.sel == nil {
		return Value{}, false, &ArgumentError{Field: a.field, Argument: name, Err: ErrNotSelected}
	}
	for _, arg := range a.sel.Arguments() {
		if arg.Name == name {
			return arg.Value, true, nil
		}
	}
	return Value{}, false, nil
}

func (a Args) wrap(name string, err error) error {
	return &ArgumentError{Field: a.field, Argument: name, Err: err}
}

// Required converts a non-null argument that has no default.
func Required[T any](a Args, name string, conv func(Value) (T, error)) (T, error) {
	var zero T
	v, ok, err := a.Lookup(name)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, a.wrap(name, ErrMissingArgument)
	}
	x, err := conv(v)
	if err != nil {
		return zero, a.wrap(name, err)
	}
	return x, nil
}

// Optional converts a nullable argument that has no default. Absence and
// Null both yield nil.
func Optional[T any](a Args, name string, conv func(Value) (T, error)) (*T, error) {
	v, ok, err := a.Lookup(name)
	if err != nil {
		return nil, err
	}
	if !ok || v.IsNull() {
		return nil, nil
	}
	x, err := conv(v)
	if err != nil {
		return nil, a.wrap(name, err)
	}
	return &x, nil
}

// WithDefault converts an argument that declares a default value. def is
// returned when the argument is absent or Null.
func WithDefault[T any](a Args, name string, conv func(Value) (T, error), def T) (T, error) {
	v, ok, err := a.Lookup(name)
	if err != nil {
		return def, err
	}
	if !ok || v.IsNull() {
		return def, nil
	}
	x, err := conv(v)
	if err != nil {
		return def, a.wrap(name, err)
	}
	return x, nil
}

// WithDefaultValue is WithDefault for defaults that have no Go literal form;
// def is converted when it is used.
func WithDefaultValue[T any](a Args, name string, conv func(Value) (T, error), def Value) (T, error) {
	v, ok, err := a.Lookup(name)
	if err != nil {
		var zero T
		return zero, err
	}
	if !ok || v.IsNull() {
		v = def
	}
	x, err := conv(v)
	if err != nil {
		var zero T
		return zero, a.wrap(name, err)
	}
	return x, nil
}
