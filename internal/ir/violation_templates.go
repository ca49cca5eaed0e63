package ir

import (
	"fmt"

	language "github.com/hanpama/trailgen/internal/language"
)

// NOTE: Keep messages stable to avoid breaking tests.

func violationDuplicateDefinition(name string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("Type %q is already defined", name),
		pos,
	)
}

func violationDefinitionNotFoundForExtension(name string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("definition %q not found for extension", name),
		pos,
	)
}

func violationUnexpectedTypeForExtension(ext *language.Definition, expected language.DefinitionKind) *Violation {
	return violationWithPosition(
		fmt.Sprintf("cannot extend %s %q with a %s extension", expected, ext.Name, ext.Kind),
		ext.Position,
	)
}

func violationSchemaAlreadyDefined(pos *language.Position) *Violation {
	return violationWithPosition("schema definition is already defined", pos)
}

func violationRootTypeNotFound(operation, typeName string) *Violation {
	return &Violation{Message: fmt.Sprintf("%s root type %q not found", operation, typeName)}
}

func violationRootTypeNotObject(operation, typeName string) *Violation {
	return &Violation{Message: fmt.Sprintf("%s root type %q must be an object type", operation, typeName)}
}

func violationTypeNotFound(typeName string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("Type %q not found in definitions", typeName),
		pos,
	)
}

func violationNotInterface(typeName, iface string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("%q implements %q, which is not an interface type", typeName, iface),
		pos,
	)
}

func violationNotInputType(owner, typeName string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("%s must be an input type, but %q is not", owner, typeName),
		pos,
	)
}

func violationNotOutputType(owner, typeName string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("%s must be an output type, but %q is an input object", owner, typeName),
		pos,
	)
}

func violationUnionMemberNotObject(union, member string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("member %q of union %q must be an object type", member, union),
		pos,
	)
}
