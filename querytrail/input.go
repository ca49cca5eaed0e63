package querytrail

// InputArgs returns an Args view over the fields of an input object value so
// that generated input converters read fields the way accessors read
// arguments. Errors name typeName where they would name a field.
func InputArgs(typeName string, v Value) (Args, error) {
	if v.kind != KindObject {
		return Args{}, mismatch(typeName, v)
	}
	return Args{field: typeName, sel: objectSelection(v.fields)}, nil
}

type objectSelection []ObjectField

func (objectSelection) Child(string) (Selection, bool) { return nil, false }

func (o objectSelection) Arguments() []Argument {
	out := make([]Argument, len(o))
	for i, f := range o {
		out[i] = Argument{Name: f.Name, Value: f.Value}
	}
	return out
}
