package ir

import (
	"strings"

	language "github.com/hanpama/trailgen/internal/language"
)

type TypeKind uint8

const (
	NamedType TypeKind = iota
	ListType
	NullableType
)

// Type is a normalized type reference: non-null unless wrapped in
// NullableType. Modifiers nest in declaration order.
type Type struct {
	Kind TypeKind `json:"kind"`
	Name string   `json:"name,omitempty"`
	Of   *Type    `json:"of,omitempty"`
}

func Named(name string) *Type { return &Type{Kind: NamedType, Name: name} }
func ListOf(of *Type) *Type { return &Type{Kind: ListType, Of: of} }
func NullableOf(of *Type) *Type { return &Type{Kind: NullableType, Of: of} }

// Normalize converts a parsed type reference, flipping GraphQL's nullable
// default into an explicit wrapper.
func Normalize(t *language.Type) *Type {
	if t == nil {
		return nil
	}
	var inner *Type
	if t.Elem != nil {
		inner = ListOf(Normalize(t.Elem))
	} else {
		inner = Named(t.NamedType)
	}
	if !t.NonNull {
		return NullableOf(inner)
	}
	return inner
}

// NamedType returns the innermost type name.
func (t *Type) NamedType() string {
	for t.Kind != NamedType {
		t = t.Of
	}
	return t.Name
}

func (t *Type) Nullable() bool { return t.Kind == NullableType }

// NonNull strips one nullable layer.
func (t *Type) NonNull() *Type {
	if t.Kind == NullableType {
		return t.Of
	}
	return t
}

func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Kind != o.Kind || t.Name != o.Name {
		return false
	}
	if t.Kind == NamedType {
		return true
	}
	return t.Of.Equal(o.Of)
}

// String renders the type in SDL form, e.g. [Int!].
func (t *Type) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t *Type) write(sb *strings.Builder) {
	base := t
	if t.Kind == NullableType {
		base = t.Of
	}
	switch base.Kind {
	case NamedType:
		sb.WriteString(base.Name)
	case ListType:
		sb.WriteByte('[')
		base.Of.write(sb)
		sb.WriteByte(']')
	case NullableType:
		// Nullable(Nullable(T)) cannot come from Normalize.
		base.write(sb)
	}
	if t.Kind != NullableType {
		sb.WriteByte('!')
	}
}
