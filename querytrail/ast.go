package querytrail

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"
)

// FromOperation builds the root Selection of op. Children of the root are the
// operation's top-level fields. Fields with the same name are merged across
// fragments and inline fragments; @skip and @include are honored against
// vars. Type conditions are not evaluated: look-ahead sees the union of all
// branches.
func FromOperation(doc *ast.QueryDocument, op *ast.OperationDefinition, vars map[string]any) Selection {
	b := &selectionBuilder{doc: doc, vars: vars, active: map[string]bool{}}
	root := &selectionNode{}
	if op != nil {
		b.collect(root, op.SelectionSet)
	}
	return root
}

type selectionNode struct {
	args     []Argument
	children map[string]*selectionNode
}

func (n *selectionNode) Child(name string) (Selection, bool) {
	child, ok := n.children[name]
	if !ok {
		return nil, false
	}
	return child, true
}

func (n *selectionNode) Arguments() []Argument { return n.args }

type selectionBuilder struct {
	doc    *ast.QueryDocument
	vars   map[string]any
	active map[string]bool
}

func (b *selectionBuilder) collect(n *selectionNode, set ast.SelectionSet) {
	for _, s := range set {
		switch s := s.(type) {
		case *ast.Field:
			if !b.included(s.Directives) {
				continue
			}
			child, ok := n.children[s.Name]
			if !ok {
				child = &selectionNode{args: b.arguments(s.Arguments)}
				if n.children == nil {
					n.children = map[string]*selectionNode{}
				}
				n.children[s.Name] = child
			}
			b.collect(child, s.SelectionSet)
		case *ast.InlineFragment:
			if b.included(s.Directives) {
				b.collect(n, s.SelectionSet)
			}
		case *ast.FragmentSpread:
			if !b.included(s.Directives) || b.active[s.Name] {
				continue
			}
			def := s.Definition
			if def == nil && b.doc != nil {
				def = b.doc.Fragments.ForName(s.Name)
			}
			if def == nil {
				continue
			}
			b.active[s.Name] = true
			b.collect(n, def.SelectionSet)
			delete(b.active, s.Name)
		}
	}
}

func (b *selectionBuilder) arguments(list ast.ArgumentList) []Argument {
	var out []Argument
	for _, arg := range list {
		if arg.Value == nil {
			continue
		}
		// An argument bound to an unset variable is absent, so defaults apply.
		if arg.Value.Kind == ast.Variable {
			if _, ok := b.vars[arg.Value.Raw]; !ok {
				continue
			}
		}
		out = append(out, Argument{Name: arg.Name, Value: ValueFromAST(arg.Value, b.vars)})
	}
	return out
}

func (b *selectionBuilder) included(dirs ast.DirectiveList) bool {
	for _, d := range dirs {
		if d.Name != "skip" && d.Name != "include" {
			continue
		}
		arg := d.Arguments.ForName("if")
		if arg == nil {
			continue
		}
		cond, err := Boolean(ValueFromAST(arg.Value, b.vars))
		if err != nil {
			continue
		}
		if d.Name == "skip" && cond {
			return false
		}
		if d.Name == "include" && !cond {
			return false
		}
	}
	return true
}

// ValueFromAST converts a literal from a gqlparser document. Variables are
// resolved from vars with ValueOf; an unset variable is Null.
func ValueFromAST(v *ast.Value, vars map[string]any) Value {
	if v == nil {
		return Value{}
	}
	switch v.Kind {
	case ast.Variable:
		return ValueOf(vars[v.Raw])
	case ast.IntValue:
		if n, err := strconv.ParseInt(v.Raw, 10, 64); err == nil {
			return IntValue(n)
		}
		f, _ := strconv.ParseFloat(v.Raw, 64)
		return FloatValue(f)
	case ast.FloatValue:
		f, _ := strconv.ParseFloat(v.Raw, 64)
		return FloatValue(f)
	case ast.StringValue, ast.BlockValue:
		return StringValue(v.Raw)
	case ast.BooleanValue:
		return BooleanValue(v.Raw == "true")
	case ast.EnumValue:
		return EnumValue(v.Raw)
	case ast.ListValue:
		items := make([]Value, len(v.Children))
		for i, c := range v.Children {
			items[i] = ValueFromAST(c.Value, vars)
		}
		return ListValue(items...)
	case ast.ObjectValue:
		fields := make([]ObjectField, len(v.Children))
		for i, c := range v.Children {
			fields[i] = ObjectField{Name: c.Name, Value: ValueFromAST(c.Value, vars)}
		}
		return ObjectValue(fields...)
	}
	return Value{}
}

// ValueOf converts a Go value, typically a decoded JSON variable. Integral
// floats become Int because JSON does not distinguish the two. Map entries
// are ordered by key.
func ValueOf(x any) Value {
	switch x := x.(type) {
	case nil:
		return Value{}
	case Value:
		return x
	case bool:
		return BooleanValue(x)
	case string:
		return StringValue(x)
	case ID:
		return StringValue(string(x))
	case int:
		return IntValue(int64(x))
	case int32:
		return IntValue(int64(x))
	case int64:
		return IntValue(x)
	case float32:
		return numberValue(float64(x))
	case float64:
		return numberValue(x)
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return IntValue(n)
		}
		f, _ := x.Float64()
		return FloatValue(f)
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			items[i] = ValueOf(item)
		}
		return ListValue(items...)
	case map[string]any:
		fields := make([]ObjectField, 0, len(x))
		for _, k := range sortedKeys(x) {
			fields = append(fields, ObjectField{Name: k, Value: ValueOf(x[k])})
		}
		return ObjectValue(fields...)
	case fmt.Stringer:
		return StringValue(x.String())
	}
	return reflectValue(reflect.ValueOf(x))
}

func numberValue(f float64) Value {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return IntValue(int64(f))
	}
	return FloatValue(f)
}

func reflectValue(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Value{}
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntValue(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return IntValue(int64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return numberValue(rv.Float())
	case reflect.Bool:
		return BooleanValue(rv.Bool())
	case reflect.String:
		return StringValue(rv.String())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Value{}
		}
		items := make([]Value, rv.Len())
		for i := range items {
			items[i] = ValueOf(rv.Index(i).Interface())
		}
		return ListValue(items...)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return ValueOf(m)
	}
	if rv.IsValid() {
		return StringValue(fmt.Sprint(rv.Interface()))
	}
	return Value{}
}
