package ir

import (
	language "github.com/hanpama/trailgen/internal/language"
)

func diagnosticAt(d Diagnostic, pos *language.Position) Diagnostic {
	if pos != nil {
		d.Line = pos.Line
		d.Column = pos.Column
		if pos.Src != nil {
			d.File = pos.Src.Name
		}
	}
	return d
}

func diagnosticUnionFieldTypeMismatch(union, field, typeA, typeB string, fieldTypeA, fieldTypeB *Type, pos *language.Position) Diagnostic {
	return diagnosticAt(Diagnostic{
		Kind:       UnionFieldTypeMismatch,
		Type:       union,
		Field:      field,
		TypeA:      typeA,
		TypeB:      typeB,
		FieldTypeA: fieldTypeA.String(),
		FieldTypeB: fieldTypeB.String(),
	}, pos)
}

// DiagnosticDefaultValueMismatch reports a default value that cannot be
// converted to its declared type. arg is empty for input object fields.
func DiagnosticDefaultValueMismatch(typeName, field, arg string, declared *Type, detail string, pos *language.Position) Diagnostic {
	return diagnosticAt(Diagnostic{
		Kind:       DefaultValueMismatch,
		Type:       typeName,
		Field:      field,
		Argument:   arg,
		FieldTypeA: declared.String(),
		Detail:     detail,
	}, pos)
}

// DiagnosticMethodNameCollision reports a field whose method name is taken
// by a generated method of the same trail type.
func DiagnosticMethodNameCollision(typeName, field, method string, pos *language.Position) Diagnostic {
	return diagnosticAt(Diagnostic{
		Kind:   MethodNameCollision,
		Type:   typeName,
		Field:  field,
		Detail: method,
	}, pos)
}

// DiagnosticEnumValueCollision reports an enum value whose Go constant name
// is already used by another value of the same enum.
func DiagnosticEnumValueCollision(enum, value, constant string, pos *language.Position) Diagnostic {
	return diagnosticAt(Diagnostic{
		Kind:   EnumValueCollision,
		Type:   enum,
		Field:  value,
		Detail: constant,
	}, pos)
}
