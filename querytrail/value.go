package querytrail

import (
	"sort"
	"strconv"
	"strings"
)

// Kind is the tag of a dynamic Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
	KindBoolean
	KindEnum
	KindList
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBoolean:
		return "Boolean"
	case KindEnum:
		return "Enum"
	case KindList:
		return "List"
	case KindObject:
		return "Object"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is an untyped argument or default value. The zero Value is Null.
type Value struct {
	kind   Kind
	num    int64
	float  float64
	str    string
	flag   bool
	items  []Value
	fields []ObjectField
}

// ObjectField is one entry of an Object value.
type ObjectField struct {
	Name  string
	Value Value
}

func NullValue() Value { return Value{} }
func IntValue(n int64) Value { return Value{kind: KindInt, num: n} }
func FloatValue(f float64) Value { return Value{kind: KindFloat, float: f} }
func StringValue(s string) Value { return Value{kind: KindString, str: s} }
func BooleanValue(b bool) Value { return Value{kind: KindBoolean, flag: b} }
func EnumValue(name string) Value { return Value{kind: KindEnum, str: name} }
func ListValue(items ...Value) Value { return Value{kind: KindList, items: items} }

// ObjectValue builds an Object value. Field order is kept as given.
func ObjectValue(fields ...ObjectField) Value {
	return Value{kind: KindObject, fields: fields}
}

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// Scalar returns the Go form of a leaf value: int64, float64, string or
// bool. Enum values yield their name. Null, List and Object yield nil.
func (v Value) Scalar() any {
	switch v.kind {
	case KindInt:
		return v.num
	case KindFloat:
		return v.float
	case KindString, KindEnum:
		return v.str
	case KindBoolean:
		return v.flag
	}
	return nil
}

// Items returns the elements of a List value, or nil for any other kind.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	return v.items
}

// Fields returns the entries of an Object value, or nil for any other kind.
func (v Value) Fields() []ObjectField {
	if v.kind != KindObject {
		return nil
	}
	return v.fields
}

// Field looks up an entry of an Object value by name.
func (v Value) Field(name string) (Value, bool) {
	for _, f := range v.Fields() {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// String renders v as a GraphQL literal.
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.num, 10))
	case KindFloat:
		sb.WriteString(strconv.FormatFloat(v.float, 'g', -1, 64))
	case KindString:
		sb.WriteString(strconv.Quote(v.str))
	case KindBoolean:
		sb.WriteString(strconv.FormatBool(v.flag))
	case KindEnum:
		sb.WriteString(v.str)
	case KindList:
		sb.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				sb.WriteString(", ")
			}
			item.write(sb)
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')
		for i, f := range v.fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Name)
			sb.WriteString(": ")
			f.Value.write(sb)
		}
		sb.WriteByte('}')
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
