package querytrail

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Layouts used by the string-encoded scalars.
const (
	DateLayout          = "2006-01-02"
	DateTimeLayout      = time.RFC3339
	NaiveDateTimeLayout = "2006-01-02 15:04:05"
)

// ID is the Go form of the GraphQL ID scalar.
type ID string

func (id ID) String() string { return string(id) }

// Typed is implemented by values returned for interface and union fields so
// that the engine can learn their concrete object type.
type Typed interface {
	TypeName() string
}

func Int(v Value) (int32, error) {
	if v.kind != KindInt {
		return 0, mismatch("Int", v)
	}
	if v.num < math.MinInt32 || v.num > math.MaxInt32 {
		return 0, &ConversionError{Expected: "Int", Actual: KindInt, Detail: fmt.Sprintf("%d overflows a 32-bit integer", v.num)}
	}
	return int32(v.num), nil
}

// Float accepts Int values too, as GraphQL input coercion does.
func Float(v Value) (float64, error) {
	switch v.kind {
	case KindFloat:
		return v.float, nil
	case KindInt:
		return float64(v.num), nil
	}
	return 0, mismatch("Float", v)
}

func String(v Value) (string, error) {
	if v.kind != KindString {
		return "", mismatch("String", v)
	}
	return v.str, nil
}

func Boolean(v Value) (bool, error) {
	if v.kind != KindBoolean {
		return false, mismatch("Boolean", v)
	}
	return v.flag, nil
}

// ToID accepts String values and Int values rendered in base 10.
func ToID(v Value) (ID, error) {
	switch v.kind {
	case KindString:
		return ID(v.str), nil
	case KindInt:
		return ID(strconv.FormatInt(v.num, 10)), nil
	}
	return "", mismatch("ID", v)
}

// EnumName returns the symbolic name of an Enum value. String values are
// accepted because JSON variables carry enums as strings.
func EnumName(v Value) (string, error) {
	switch v.kind {
	case KindEnum, KindString:
		return v.str, nil
	}
	return "", mismatch("Enum", v)
}

func URL(v Value) (url.URL, error) {
	s, err := String(v)
	if err != nil {
		return url.URL{}, err
	}
	u, err := url.Parse(s)
	if err != nil {
		return url.URL{}, &ParseError{Scalar: "URL", Err: err}
	}
	return *u, nil
}

func UUID(v Value) (uuid.UUID, error) {
	s, err := String(v)
	if err != nil {
		return uuid.UUID{}, err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, &ParseError{Scalar: "UUID", Err: err}
	}
	return id, nil
}

func Date(v Value) (time.Time, error) {
	return parseTime(v, "Date", DateLayout)
}

// DateTime parses RFC 3339 timestamps and returns them in UTC.
func DateTime(v Value) (time.Time, error) {
	t, err := parseTime(v, "DateTime", DateTimeLayout)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// NaiveDateTime parses timestamps without a zone; the result is in UTC.
func NaiveDateTime(v Value) (time.Time, error) {
	return parseTime(v, "NaiveDateTime", NaiveDateTimeLayout)
}

func parseTime(v Value, scalar, layout string) (time.Time, error) {
	s, err := String(v)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, &ParseError{Scalar: scalar, Layout: layout, Err: err}
	}
	return t, nil
}

// ListOf lifts conv to List values. Items are converted in order and the
// first failing item aborts the conversion.
func ListOf[T any](conv func(Value) (T, error)) func(Value) ([]T, error) {
	return func(v Value) ([]T, error) {
		if v.kind != KindList {
			return nil, mismatch("List", v)
		}
		out := make([]T, len(v.items))
		for i, item := range v.items {
			x, err := conv(item)
			if err != nil {
				return nil, fmt.Errorf("list item %d: %w", i, err)
			}
			out[i] = x
		}
		return out, nil
	}
}

// OptionalOf lifts conv to nullable values: Null converts to nil.
func OptionalOf[T any](conv func(Value) (T, error)) func(Value) (*T, error) {
	return func(v Value) (*T, error) {
		if v.kind == KindNull {
			return nil, nil
		}
		x, err := conv(v)
		if err != nil {
			return nil, err
		}
		return &x, nil
	}
}

// Ptr returns a pointer to a copy of v. Generated code uses it for nullable
// default values.
func Ptr[T any](v T) *T { return &v }
