package dynamic

import "github.com/Nader-Sl/capnproto/schema"

// BuilderValue is the mutable counterpart of Value, returned by Init —
// the original implementation keeps DynamicValue::Reader and
// DynamicValue::Builder as distinct types for exactly this reason: a
// freshly initialized field must be handed back as something the caller
// can still write through, which a read-only Value cannot offer.
type BuilderValue struct {
	kind schema.Kind

	blob []byte // live bytes for Text/Data — mutate in place, no copy
	str  StructBuilder
	list ListBuilder
	obj  ObjectBuilder
}

func (v BuilderValue) Kind() schema.Kind { return v.kind }

func blobBuilderValue(kind schema.Kind, b []byte) BuilderValue {
	return BuilderValue{kind: kind, blob: b}
}
func structBuilderValue(b StructBuilder) BuilderValue {
	return BuilderValue{kind: schema.KindStruct, str: b}
}
func listBuilderValue(b ListBuilder) BuilderValue {
	return BuilderValue{kind: schema.KindList, list: b}
}
func objectBuilderValue(b ObjectBuilder) BuilderValue {
	return BuilderValue{kind: schema.KindObject, obj: b}
}

func (v BuilderValue) wrongKind(want schema.Kind) bool {
	if v.kind == want {
		return false
	}
	logInputValidation("BuilderValue.As%s() called on a value of kind %s", want, v.kind)
	return true
}

// AsTextBytes returns the live byte slice backing a Text field — writes
// through the returned slice are visible in the message.
func (v BuilderValue) AsTextBytes() []byte {
	if v.wrongKind(schema.KindText) {
		return nil
	}
	return v.blob
}
func (v BuilderValue) AsData() []byte {
	if v.wrongKind(schema.KindData) {
		return nil
	}
	return v.blob
}
func (v BuilderValue) AsStruct() StructBuilder {
	if v.wrongKind(schema.KindStruct) {
		return StructBuilder{}
	}
	return v.str
}
func (v BuilderValue) AsList() ListBuilder {
	if v.wrongKind(schema.KindList) {
		return ListBuilder{}
	}
	return v.list
}
func (v BuilderValue) AsObject() ObjectBuilder {
	if v.wrongKind(schema.KindObject) {
		return ObjectBuilder{}
	}
	return v.obj
}

// AsValue degrades a BuilderValue back to a read-only Value, for callers
// that initialized a field and now want the uniform getter path.
func (v BuilderValue) AsValue() Value {
	switch v.kind {
	case schema.KindText:
		return Value{kind: schema.KindText, blob: v.blob}
	case schema.KindData:
		return Value{kind: schema.KindData, blob: v.blob}
	case schema.KindStruct:
		return StructValue(v.str.AsReader())
	case schema.KindList:
		return ListValue(v.list.AsReader())
	case schema.KindObject:
		return ObjectValue(v.obj.AsReader())
	default:
		return Value{kind: v.kind}
	}
}
