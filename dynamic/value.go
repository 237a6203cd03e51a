// Package dynamic implements reflective, schema-driven access to messages
// encoded by package wire: readers and builders for structs, lists,
// unions, enums, and the polymorphic object pointer, plus the
// discriminated Value that carries any of them and checks its tag on
// every access.
package dynamic

import "github.com/Nader-Sl/capnproto/schema"

// Value is a tagged variant over every kind a dynamic accessor can
// produce or accept. Dispatch is always on Kind(), never on a type
// switch against an interface — Value is a tagged union, not a class
// hierarchy.
type Value struct {
	kind schema.Kind

	b    bool
	i    int64
	u    uint64
	f32  float32
	f64  float64
	blob []byte // Text/Data payload
	enum Enum
	str  StructReader
	list ListReader
	obj  ObjectReader
}

func (v Value) Kind() schema.Kind { return v.kind }

func VoidValue() Value                { return Value{kind: schema.KindVoid} }
func BoolValue(x bool) Value          { return Value{kind: schema.KindBool, b: x} }
func Int8Value(x int8) Value          { return Value{kind: schema.KindInt8, i: int64(x)} }
func Int16Value(x int16) Value        { return Value{kind: schema.KindInt16, i: int64(x)} }
func Int32Value(x int32) Value        { return Value{kind: schema.KindInt32, i: int64(x)} }
func Int64Value(x int64) Value        { return Value{kind: schema.KindInt64, i: x} }
func Uint8Value(x uint8) Value        { return Value{kind: schema.KindUint8, u: uint64(x)} }
func Uint16Value(x uint16) Value      { return Value{kind: schema.KindUint16, u: uint64(x)} }
func Uint32Value(x uint32) Value      { return Value{kind: schema.KindUint32, u: uint64(x)} }
func Uint64Value(x uint64) Value      { return Value{kind: schema.KindUint64, u: x} }
func Float32Value(x float32) Value    { return Value{kind: schema.KindFloat32, f32: x} }
func Float64Value(x float64) Value    { return Value{kind: schema.KindFloat64, f64: x} }
func TextValue(x string) Value        { return Value{kind: schema.KindText, blob: []byte(x)} }
func DataValue(x []byte) Value        { return Value{kind: schema.KindData, blob: x} }
func EnumValue(x Enum) Value           { return Value{kind: schema.KindEnum, enum: x} }
func StructValue(x StructReader) Value { return Value{kind: schema.KindStruct, str: x} }
func ListValue(x ListReader) Value     { return Value{kind: schema.KindList, list: x} }
func ObjectValue(x ObjectReader) Value { return Value{kind: schema.KindObject, obj: x} }

func (v Value) wrongKind(want schema.Kind) bool {
	if v.kind == want {
		return false
	}
	logInputValidation("DynamicValue.As%s() called on a value of kind %s", want, v.kind)
	return true
}

func (v Value) AsBool() bool {
	if v.wrongKind(schema.KindBool) {
		return false
	}
	return v.b
}
func (v Value) AsInt8() int8 {
	if v.wrongKind(schema.KindInt8) {
		return 0
	}
	return int8(v.i)
}
func (v Value) AsInt16() int16 {
	if v.wrongKind(schema.KindInt16) {
		return 0
	}
	return int16(v.i)
}
func (v Value) AsInt32() int32 {
	if v.wrongKind(schema.KindInt32) {
		return 0
	}
	return int32(v.i)
}
func (v Value) AsInt64() int64 {
	if v.wrongKind(schema.KindInt64) {
		return 0
	}
	return v.i
}
func (v Value) AsUint8() uint8 {
	if v.wrongKind(schema.KindUint8) {
		return 0
	}
	return uint8(v.u)
}
func (v Value) AsUint16() uint16 {
	if v.wrongKind(schema.KindUint16) {
		return 0
	}
	return uint16(v.u)
}
func (v Value) AsUint32() uint32 {
	if v.wrongKind(schema.KindUint32) {
		return 0
	}
	return uint32(v.u)
}
func (v Value) AsUint64() uint64 {
	if v.wrongKind(schema.KindUint64) {
		return 0
	}
	return v.u
}
func (v Value) AsFloat32() float32 {
	if v.wrongKind(schema.KindFloat32) {
		return 0
	}
	return v.f32
}
func (v Value) AsFloat64() float64 {
	if v.wrongKind(schema.KindFloat64) {
		return 0
	}
	return v.f64
}
func (v Value) AsText() string {
	if v.wrongKind(schema.KindText) {
		return ""
	}
	return string(v.blob)
}
func (v Value) AsData() []byte {
	if v.wrongKind(schema.KindData) {
		return nil
	}
	return v.blob
}
func (v Value) AsEnum() Enum {
	if v.wrongKind(schema.KindEnum) {
		return Enum{}
	}
	return v.enum
}
func (v Value) AsStruct() StructReader {
	if v.wrongKind(schema.KindStruct) {
		return StructReader{}
	}
	return v.str
}
func (v Value) AsList() ListReader {
	if v.wrongKind(schema.KindList) {
		return ListReader{}
	}
	return v.list
}
func (v Value) AsObject() ObjectReader {
	if v.wrongKind(schema.KindObject) {
		return ObjectReader{}
	}
	return v.obj
}
