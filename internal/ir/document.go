package ir

import (
	"context"

	language "github.com/hanpama/trailgen/internal/language"
)

// Document is a schema with type extensions folded into their base
// definitions. Definitions keep declaration order. A Document is never
// mutated after Build returns.
type Document struct {
	Definitions []*language.Definition
	Schema      Schema

	byName map[string]*language.Definition
}

// Schema names the root operation types.
type Schema struct {
	QueryType        string `json:"queryType,omitempty"`
	MutationType     string `json:"mutationType,omitempty"`
	SubscriptionType string `json:"subscriptionType,omitempty"`
}

// ForName returns the definition declared under name, or nil.
func (d *Document) ForName(name string) *language.Definition {
	return d.byName[name]
}

// Build parses every source listed by disc into one Document.
func Build(ctx context.Context, disc Discovery) (*Document, error) {
	sources, err := disc.ListSources(ctx)
	if err != nil {
		return nil, err
	}
	inputs := make([]*language.Source, len(sources))
	for i, s := range sources {
		inputs[i] = &language.Source{Name: s.Name, Input: s.Content}
	}
	sd, err := language.ParseSchemas(inputs...)
	if err != nil {
		return nil, err
	}
	return NewDocument(sd)
}

// NewDocument folds a parsed schema document. All problems found are
// reported together as a ValidationError.
func NewDocument(sd *language.SchemaDocument) (*Document, error) {
	b := &documentBuilder{
		doc: &Document{byName: map[string]*language.Definition{}},
	}
	b.populateDefinitions(sd)
	b.applyExtensions(sd)
	b.processSchemaDefinitions(sd)
	b.checkReferences()
	if len(b.violations) > 0 {
		return nil, ValidationError(b.violations)
	}
	return b.doc, nil
}

type documentBuilder struct {
	doc        *Document
	violations []*Violation
}

func (b *documentBuilder) addViolation(v ...*Violation) {
	b.violations = append(b.violations, v...)
}

func (b *documentBuilder) populateDefinitions(sd *language.SchemaDocument) {
	for _, def := range sd.Definitions {
		if builtinScalars[def.Name] {
			continue
		}
		if _, ok := b.doc.byName[def.Name]; ok {
			b.addViolation(violationDuplicateDefinition(def.Name, def.Position))
			continue
		}
		// Copy so that folding extensions leaves the parsed AST untouched.
		cp := *def
		b.doc.byName[def.Name] = &cp
		b.doc.Definitions = append(b.doc.Definitions, &cp)
	}
}

func (b *documentBuilder) applyExtensions(sd *language.SchemaDocument) {
	for _, ext := range sd.Extensions {
		def, ok := b.doc.byName[ext.Name]
		if !ok {
			b.addViolation(violationDefinitionNotFoundForExtension(ext.Name, ext.Position))
			continue
		}
		if def.Kind != ext.Kind {
			b.addViolation(violationUnexpectedTypeForExtension(ext, def.Kind))
			continue
		}
		def.Fields = append(append(language.FieldList(nil), def.Fields...), ext.Fields...)
		def.Interfaces = append(append([]string(nil), def.Interfaces...), ext.Interfaces...)
		def.Types = append(append([]string(nil), def.Types...), ext.Types...)
		def.EnumValues = append(append(def.EnumValues[:0:0], def.EnumValues...), ext.EnumValues...)
		def.Directives = append(append(def.Directives[:0:0], def.Directives...), ext.Directives...)
	}
}

func (b *documentBuilder) processSchemaDefinitions(sd *language.SchemaDocument) {
	defined := false
	for _, schemaDef := range sd.Schema {
		if defined {
			b.addViolation(violationSchemaAlreadyDefined(schemaDef.Position))
			continue
		}
		defined = true
		b.setRoots(schemaDef.OperationTypes)
	}
	for _, ext := range sd.SchemaExtension {
		b.setRoots(ext.OperationTypes)
	}

	// Without a schema definition the conventional names are used.
	if !defined && len(sd.SchemaExtension) == 0 {
		for name, root := range map[string]*string{
			"Query":        &b.doc.Schema.QueryType,
			"Mutation":     &b.doc.Schema.MutationType,
			"Subscription": &b.doc.Schema.SubscriptionType,
		} {
			if def := b.doc.byName[name]; def != nil && def.Kind == language.Object {
				*root = name
			}
		}
		return
	}

	for _, root := range []struct {
		operation string
		name      string
	}{
		{"Query", b.doc.Schema.QueryType},
		{"Mutation", b.doc.Schema.MutationType},
		{"Subscription", b.doc.Schema.SubscriptionType},
	} {
		if root.name == "" {
			continue
		}
		def, ok := b.doc.byName[root.name]
		if !ok {
			b.addViolation(violationRootTypeNotFound(root.operation, root.name))
		} else if def.Kind != language.Object {
			b.addViolation(violationRootTypeNotObject(root.operation, root.name))
		}
	}
}

func (b *documentBuilder) setRoots(ops []*language.OperationTypeDefinition) {
	for _, op := range ops {
		switch op.Operation {
		case language.Query:
			b.doc.Schema.QueryType = op.Type
		case language.Mutation:
			b.doc.Schema.MutationType = op.Type
		case language.Subscription:
			b.doc.Schema.SubscriptionType = op.Type
		}
	}
}

// checkReferences verifies that every referenced type is declared with a
// kind that fits where it is used. Arguments and input fields take input
// types; fields of objects and interfaces take output types.
func (b *documentBuilder) checkReferences() {
	checkType := func(owner string, t *language.Type, input bool) {
		for t.Elem != nil {
			t = t.Elem
		}
		if builtinScalars[t.NamedType] {
			return
		}
		ref := b.doc.byName[t.NamedType]
		switch {
		case ref == nil:
			b.addViolation(violationTypeNotFound(t.NamedType, t.Position))
		case input && !isInputKind(ref.Kind):
			b.addViolation(violationNotInputType(owner, t.NamedType, t.Position))
		case !input && ref.Kind == language.InputObject:
			b.addViolation(violationNotOutputType(owner, t.NamedType, t.Position))
		}
	}
	for _, def := range b.doc.Definitions {
		for _, f := range def.Fields {
			owner := def.Name + "." + f.Name
			checkType(owner, f.Type, def.Kind == language.InputObject)
			for _, arg := range f.Arguments {
				checkType(owner+"("+arg.Name+":)", arg.Type, true)
			}
		}
		for _, name := range def.Interfaces {
			if iface := b.doc.byName[name]; iface == nil || iface.Kind != language.Interface {
				b.addViolation(violationNotInterface(def.Name, name, def.Position))
			}
		}
		if def.Kind == language.Union {
			for _, name := range def.Types {
				if member := b.doc.byName[name]; member == nil || member.Kind != language.Object {
					b.addViolation(violationUnionMemberNotObject(def.Name, name, def.Position))
				}
			}
		}
	}
}

func isInputKind(k language.DefinitionKind) bool {
	return k == language.Scalar || k == language.Enum || k == language.InputObject
}
