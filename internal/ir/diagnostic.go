package ir

import (
	"fmt"
	"sort"
	"strings"
)

type DiagnosticKind string

const (
	UnionFieldTypeMismatch DiagnosticKind = "union-field-type-mismatch"
	DefaultValueMismatch   DiagnosticKind = "default-value-mismatch"
	MethodNameCollision    DiagnosticKind = "method-name-collision"
	EnumValueCollision     DiagnosticKind = "enum-value-collision"
)

// Diagnostic is a non-fatal finding about the schema. It is comparable so
// that a Diagnostics set can deduplicate it.
type Diagnostic struct {
	Kind DiagnosticKind `json:"kind"`
	// Type is the union, object or interface the finding is about.
	Type     string `json:"type"`
	Field    string `json:"field,omitempty"`
	Argument string `json:"argument,omitempty"`
	// TypeA/FieldTypeA and TypeB/FieldTypeB are the two conflicting
	// declarations in encounter order.
	TypeA      string `json:"typeA,omitempty"`
	TypeB      string `json:"typeB,omitempty"`
	FieldTypeA string `json:"fieldTypeA,omitempty"`
	FieldTypeB string `json:"fieldTypeB,omitempty"`
	Detail     string `json:"detail,omitempty"`

	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

func (d Diagnostic) Message() string {
	switch d.Kind {
	case UnionFieldTypeMismatch:
		return fmt.Sprintf("field %q of union %q has type %s in %s but %s in %s",
			d.Field, d.Type, d.FieldTypeA, d.TypeA, d.FieldTypeB, d.TypeB)
	case DefaultValueMismatch:
		where := d.Type + "." + d.Field
		if d.Argument != "" {
			where += "(" + d.Argument + ")"
		}
		return fmt.Sprintf("default value of %s does not fit type %s: %s", where, d.FieldTypeA, d.Detail)
	case MethodNameCollision:
		return fmt.Sprintf("field %q of %s collides with generated method %s; renamed to %s",
			d.Field, d.Type, d.Detail, d.Detail+"Field")
	case EnumValueCollision:
		return fmt.Sprintf("value %q of enum %s collides with constant %s; renamed with a Value suffix",
			d.Field, d.Type, d.Detail)
	}
	return string(d.Kind)
}

func (d Diagnostic) String() string {
	if d.File == "" {
		return d.Message()
	}
	return fmt.Sprintf("%s:%d:%d: %s", d.File, d.Line, d.Column, d.Message())
}

// Diagnostics is the order-independent, deduplicating set of findings of one
// compilation. The zero value is not usable; call NewDiagnostics.
type Diagnostics struct {
	set map[Diagnostic]struct{}
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{set: map[Diagnostic]struct{}{}}
}

// Add records d and reports whether it was new.
func (s *Diagnostics) Add(d Diagnostic) bool {
	if _, ok := s.set[d]; ok {
		return false
	}
	s.set[d] = struct{}{}
	return true
}

func (s *Diagnostics) Len() int { return len(s.set) }

// List returns the findings sorted by position, then message.
func (s *Diagnostics) List() []Diagnostic {
	out := make([]Diagnostic, 0, len(s.set))
	for d := range s.set {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.String() < b.String()
	})
	return out
}

// Err returns the findings as a DiagnosticError, or nil when there are none.
func (s *Diagnostics) Err() error {
	if s.Len() == 0 {
		return nil
	}
	return DiagnosticError(s.List())
}

type DiagnosticError []Diagnostic

func (e DiagnosticError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d diagnostic(s) found:\n", len(e))
	for _, d := range e {
		sb.WriteString("- " + d.String() + "\n")
	}
	return sb.String()
}
