package ir

import (
	language "github.com/hanpama/trailgen/internal/language"
)

var builtinScalars = map[string]bool{
	"Int":     true,
	"Float":   true,
	"String":  true,
	"Boolean": true,
	"ID":      true,
}

// IsBuiltinScalar reports whether name is one of the five scalars every
// schema has without declaring them.
func IsBuiltinScalar(name string) bool { return builtinScalars[name] }

// Scalars records which of the specially mapped scalars a schema declares.
type Scalars struct {
	URL           bool `json:"url"`
	UUID          bool `json:"uuid"`
	Date          bool `json:"date"`
	DateTime      bool `json:"dateTime"`
	NaiveDateTime bool `json:"naiveDateTime"`
}

// Registry is the shared analysis data every pass reads: the Field Index,
// the kind of each declared type, interface implementors and the declared
// special scalars.
type Registry struct {
	Doc     *Document
	Scalars Scalars

	fields       map[string][]*language.FieldDefinition
	implementors map[string][]string
}

func NewRegistry(doc *Document) *Registry {
	r := &Registry{
		Doc:          doc,
		fields:       map[string][]*language.FieldDefinition{},
		implementors: map[string][]string{},
	}
	for _, def := range doc.Definitions {
		switch def.Kind {
		case language.Object:
			r.fields[def.Name] = def.Fields
			for _, iface := range def.Interfaces {
				r.implementors[iface] = append(r.implementors[iface], def.Name)
			}
		case language.Scalar:
			switch def.Name {
			case "URL":
				r.Scalars.URL = true
			case "UUID":
				r.Scalars.UUID = true
			case "Date":
				r.Scalars.Date = true
			case "DateTime":
				r.Scalars.DateTime = true
			case "NaiveDateTime":
				r.Scalars.NaiveDateTime = true
			}
		}
	}
	return r
}

// FieldIndex returns the fields of every object type keyed by type name.
// Duplicate field declarations are kept as declared.
func (r *Registry) FieldIndex() map[string][]*language.FieldDefinition {
	return r.fields
}

// Fields returns the declared fields of an object or interface type.
func (r *Registry) Fields(typeName string) []*language.FieldDefinition {
	if fields, ok := r.fields[typeName]; ok {
		return fields
	}
	if def := r.Doc.ForName(typeName); def != nil && def.Kind == language.Interface {
		return def.Fields
	}
	return nil
}

// Kind returns the kind of a declared or built-in type.
func (r *Registry) Kind(name string) (language.DefinitionKind, bool) {
	if builtinScalars[name] {
		return language.Scalar, true
	}
	def := r.Doc.ForName(name)
	if def == nil {
		return "", false
	}
	return def.Kind, true
}

// IsLeaf reports whether values of the named type are scalars or enums.
func (r *Registry) IsLeaf(name string) bool {
	kind, ok := r.Kind(name)
	return ok && (kind == language.Scalar || kind == language.Enum)
}

// Implementors returns the object types implementing iface in declaration
// order.
func (r *Registry) Implementors(iface string) []string {
	return r.implementors[iface]
}

// Members returns the member types of a union in declared order.
func (r *Registry) Members(union string) []string {
	def := r.Doc.ForName(union)
	if def == nil || def.Kind != language.Union {
		return nil
	}
	return def.Types
}

// PossibleTypes returns the concrete object types of an abstract type.
func (r *Registry) PossibleTypes(name string) []string {
	kind, _ := r.Kind(name)
	switch kind {
	case language.Interface:
		return r.Implementors(name)
	case language.Union:
		return r.Members(name)
	}
	return nil
}

// Abstract reports whether the object type may be returned through an
// interface or union.
func (r *Registry) Abstract(object string) bool {
	def := r.Doc.ForName(object)
	if def == nil {
		return false
	}
	if len(def.Interfaces) > 0 {
		return true
	}
	for _, d := range r.Doc.Definitions {
		if d.Kind != language.Union {
			continue
		}
		for _, m := range d.Types {
			if m == object {
				return true
			}
		}
	}
	return false
}
