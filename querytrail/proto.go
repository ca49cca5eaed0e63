package querytrail

import "google.golang.org/protobuf/types/known/structpb"

// ValueFromProto converts a protobuf well-known Value. Numbers with no
// fractional part become Int.
func ValueFromProto(pv *structpb.Value) Value {
	switch k := pv.GetKind().(type) {
	case *structpb.Value_NumberValue:
		return numberValue(k.NumberValue)
	case *structpb.Value_StringValue:
		return StringValue(k.StringValue)
	case *structpb.Value_BoolValue:
		return BooleanValue(k.BoolValue)
	case *structpb.Value_ListValue:
		values := k.ListValue.GetValues()
		items := make([]Value, len(values))
		for i, item := range values {
			items[i] = ValueFromProto(item)
		}
		return ListValue(items...)
	case *structpb.Value_StructValue:
		m := k.StructValue.GetFields()
		fields := make([]ObjectField, 0, len(m))
		for _, name := range sortedKeys(m) {
			fields = append(fields, ObjectField{Name: name, Value: ValueFromProto(m[name])})
		}
		return ObjectValue(fields...)
	}
	return Value{}
}

// Proto converts v to a protobuf well-known Value. Enum values become strings
// and Int values become numbers.
func (v Value) Proto() *structpb.Value {
	switch v.kind {
	case KindInt:
		return structpb.NewNumberValue(float64(v.num))
	case KindFloat:
		return structpb.NewNumberValue(v.float)
	case KindString, KindEnum:
		return structpb.NewStringValue(v.str)
	case KindBoolean:
		return structpb.NewBoolValue(v.flag)
	case KindList:
		values := make([]*structpb.Value, len(v.items))
		for i, item := range v.items {
			values[i] = item.Proto()
		}
		return structpb.NewListValue(&structpb.ListValue{Values: values})
	case KindObject:
		fields := make(map[string]*structpb.Value, len(v.fields))
		for _, f := range v.fields {
			fields[f.Name] = f.Value.Proto()
		}
		return structpb.NewStructValue(&structpb.Struct{Fields: fields})
	}
	return structpb.NewNullValue()
}
