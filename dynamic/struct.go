package dynamic

import (
	"github.com/Nader-Sl/capnproto/errcat"
	"github.com/Nader-Sl/capnproto/schema"
	"github.com/Nader-Sl/capnproto/wire"
)

// StructReader is a (pool, struct node, wire cursor) triple — field access
// by member descriptor or name, applying the schema's declared default.
// The zero value is the canonical empty struct: every field reads back
// as its default.
type StructReader struct {
	pool *schema.Pool
	node *schema.Node
	w    wire.StructReader
}

type StructBuilder struct {
	pool *schema.Pool
	node *schema.Node
	w    wire.StructBuilder
}

func NewStructReader(pool *schema.Pool, node *schema.Node, w wire.StructReader) StructReader {
	return StructReader{pool: pool, node: node, w: w}
}
func NewStructBuilder(pool *schema.Pool, node *schema.Node, w wire.StructBuilder) StructBuilder {
	return StructBuilder{pool: pool, node: node, w: w}
}

func (s StructBuilder) AsReader() StructReader {
	return StructReader{pool: s.pool, node: s.node, w: s.w.AsReader()}
}

func (s StructReader) Node() *schema.Node { return s.node }
func (s StructBuilder) Node() *schema.Node { return s.node }

func (s StructReader) findMember(name string) *schema.Member {
	m, ok := s.pool.FindMemberByName(s.node.ID, name)
	errcat.Precondition(ok, "dynamic: struct %q has no member named %q", s.node.Name, name)
	return m
}
func (s StructBuilder) findMember(name string) *schema.Member {
	m, ok := s.pool.FindMemberByName(s.node.ID, name)
	errcat.Precondition(ok, "dynamic: struct %q has no member named %q", s.node.Name, name)
	return m
}

// Get looks up a field member by name and returns its current value. An
// unregistered name is a caller-contract violation, not a recoverable
// error. Calling Get on a union member (rather than GetUnion) is likewise
// a caller bug.
func (s StructReader) Get(name string) Value {
	m := s.findMember(name)
	errcat.Precondition(m.Kind == schema.FieldMember, "dynamic: %q is a union member, use GetUnion", name)
	return s.GetField(m.Field)
}
func (s StructBuilder) Get(name string) Value {
	m := s.findMember(name)
	errcat.Precondition(m.Kind == schema.FieldMember, "dynamic: %q is a union member, use GetUnion", name)
	return s.AsReader().GetField(m.Field)
}

func (s StructReader) GetUnion(name string) UnionReader {
	m := s.findMember(name)
	errcat.Precondition(m.Kind == schema.UnionMember, "dynamic: %q is not a union member", name)
	return UnionReader{pool: s.pool, union: m.Union, w: s.w}
}
func (s StructBuilder) GetUnion(name string) UnionBuilder {
	m := s.findMember(name)
	errcat.Precondition(m.Kind == schema.UnionMember, "dynamic: %q is not a union member", name)
	return UnionBuilder{pool: s.pool, union: m.Union, w: s.w}
}

// GetField is the field-access algorithm, exposed so UnionReader.Get can
// delegate to it for the union's active member.
func (s StructReader) GetField(f *schema.FieldDescriptor) Value {
	t := f.Type
	switch t.Kind {
	case schema.KindVoid:
		return VoidValue()
	case schema.KindBool:
		return BoolValue(s.w.GetBool(f.Offset, f.Default.Bits != 0))
	case schema.KindInt8:
		return Int8Value(s.w.GetInt8(f.Offset, int8(f.Default.Bits)))
	case schema.KindInt16:
		return Int16Value(s.w.GetInt16(f.Offset, int16(f.Default.Bits)))
	case schema.KindInt32:
		return Int32Value(s.w.GetInt32(f.Offset, int32(f.Default.Bits)))
	case schema.KindInt64:
		return Int64Value(s.w.GetInt64(f.Offset, int64(f.Default.Bits)))
	case schema.KindUint8:
		return Uint8Value(s.w.GetUint8(f.Offset, uint8(f.Default.Bits)))
	case schema.KindUint16:
		return Uint16Value(s.w.GetUint16(f.Offset, uint16(f.Default.Bits)))
	case schema.KindUint32:
		return Uint32Value(s.w.GetUint32(f.Offset, uint32(f.Default.Bits)))
	case schema.KindUint64:
		return Uint64Value(s.w.GetUint64(f.Offset, f.Default.Bits))
	case schema.KindFloat32:
		return Float32Value(s.w.GetFloat32(f.Offset, uint32(f.Default.Bits)))
	case schema.KindFloat64:
		return Float64Value(s.w.GetFloat64(f.Offset, f.Default.Bits))
	case schema.KindEnum:
		node, _ := s.pool.GetEnum(t.EnumID)
		raw := s.w.GetUint16(f.Offset, uint16(f.Default.Bits))
		return EnumValue(NewEnum(s.pool, node, raw))
	case schema.KindText:
		b := s.w.GetBlobField(f.Offset, f.Default.Blob)
		return Value{kind: schema.KindText, blob: b}
	case schema.KindData:
		b := s.w.GetBlobField(f.Offset, f.Default.Blob)
		return Value{kind: schema.KindData, blob: b}
	case schema.KindList:
		lw := s.w.GetListField(f.Offset)
		ls := schema.ListSchemaOf(*t.Element)
		return ListValue(newListReader(s.pool, ls, *t.Element, lw))
	case schema.KindStruct:
		sw := s.w.GetStructField(f.Offset)
		node, _ := s.pool.GetStruct(t.StructID)
		return StructValue(StructReader{pool: s.pool, node: node, w: sw})
	case schema.KindObject:
		ow := s.w.GetObjectField(f.Offset)
		return ObjectValue(ObjectReader{pool: s.pool, w: ow})
	case schema.KindInterface:
		logNotImplemented("interface-typed field access")
		return Value{}
	default:
		errcat.Precondition(false, "dynamic: field has unrecognized type kind %v", t.Kind)
		return Value{}
	}
}

// Set coerces value to the field's declared kind and writes it.
func (s StructBuilder) Set(name string, value Value) {
	m := s.findMember(name)
	errcat.Precondition(m.Kind == schema.FieldMember, "dynamic: %q is a union member, use GetUnion().Set", name)
	s.SetField(m.Field, value)
}

func (s StructBuilder) SetField(f *schema.FieldDescriptor, value Value) {
	t := f.Type
	switch t.Kind {
	case schema.KindVoid:
		s.w.SetVoid(f.Offset, struct{}{})
	case schema.KindBool:
		s.w.SetBool(f.Offset, value.AsBool(), f.Default.Bits != 0)
	case schema.KindInt8:
		s.w.SetInt8(f.Offset, value.AsInt8(), int8(f.Default.Bits))
	case schema.KindInt16:
		s.w.SetInt16(f.Offset, value.AsInt16(), int16(f.Default.Bits))
	case schema.KindInt32:
		s.w.SetInt32(f.Offset, value.AsInt32(), int32(f.Default.Bits))
	case schema.KindInt64:
		s.w.SetInt64(f.Offset, value.AsInt64(), int64(f.Default.Bits))
	case schema.KindUint8:
		s.w.SetUint8(f.Offset, value.AsUint8(), uint8(f.Default.Bits))
	case schema.KindUint16:
		s.w.SetUint16(f.Offset, value.AsUint16(), uint16(f.Default.Bits))
	case schema.KindUint32:
		s.w.SetUint32(f.Offset, value.AsUint32(), uint32(f.Default.Bits))
	case schema.KindUint64:
		s.w.SetUint64(f.Offset, value.AsUint64(), f.Default.Bits)
	case schema.KindFloat32:
		s.w.SetFloat32(f.Offset, value.AsFloat32(), uint32(f.Default.Bits))
	case schema.KindFloat64:
		s.w.SetFloat64(f.Offset, value.AsFloat64(), f.Default.Bits)
	case schema.KindEnum:
		s.w.SetUint16(f.Offset, value.AsEnum().Raw(), uint16(f.Default.Bits))
	case schema.KindText:
		s.w.SetBlobField(f.Offset, []byte(value.AsText()))
	case schema.KindData:
		s.w.SetBlobField(f.Offset, value.AsData())
	case schema.KindList:
		src := value.AsList()
		dst := s.initListField(f, src.Len())
		CopyList(dst, src)
	case schema.KindStruct:
		dst := s.initStructField(f)
		CopyStruct(dst, value.AsStruct())
	case schema.KindObject:
		logNotImplemented("schemaless copy on Object field set")
	case schema.KindInterface:
		logNotImplemented("interface-typed field set")
	default:
		errcat.Precondition(false, "dynamic: field has unrecognized type kind %v", t.Kind)
	}
}

// Init allocates fresh storage for a struct-typed field and returns a
// builder over it. Calling Init on a non-struct, non-sized kind is an
// input-validation failure that falls back to Get.
func (s StructBuilder) Init(name string) BuilderValue {
	m := s.findMember(name)
	errcat.Precondition(m.Kind == schema.FieldMember, "dynamic: %q is a union member", name)
	return s.initStructFieldValue(m.Field)
}

func (s StructBuilder) initStructFieldValue(f *schema.FieldDescriptor) BuilderValue {
	if f.Type.Kind != schema.KindStruct {
		logInputValidation("Init without a size is only valid for a struct field (got %s)", f.Type.Kind)
		return s.AsReader().GetField(f).toBuilderValue(s, f)
	}
	return structBuilderValue(s.initStructField(f))
}

// InitSized allocates fresh storage for a list- or blob-typed field of
// the given element/byte count.
func (s StructBuilder) InitSized(name string, size uint32) BuilderValue {
	m := s.findMember(name)
	errcat.Precondition(m.Kind == schema.FieldMember, "dynamic: %q is a union member", name)
	return s.initSizedFieldValue(m.Field, size)
}

func (s StructBuilder) initSizedFieldValue(f *schema.FieldDescriptor, size uint32) BuilderValue {
	switch f.Type.Kind {
	case schema.KindText:
		return blobBuilderValue(schema.KindText, s.w.InitBlobField(f.Offset, size))
	case schema.KindData:
		return blobBuilderValue(schema.KindData, s.w.InitBlobField(f.Offset, size))
	case schema.KindList:
		return listBuilderValue(s.initListFieldSized(f, size))
	default:
		logInputValidation("InitSized is only valid for a list or blob field (got %s)", f.Type.Kind)
		return s.AsReader().GetField(f).toBuilderValue(s, f)
	}
}

// InitObjectField permits initializing an Object-typed field as a struct,
// using typ as the as-of-init schema.
func (s StructBuilder) InitObjectField(name string, typ schema.Type) BuilderValue {
	if typ.Kind != schema.KindList {
		return s.initObjectField(name, typ, 0)
	}
	logInputValidation("InitObjectField(%q): a list element type requires InitObjectFieldSized", name)
	return BuilderValue{}
}

// InitObjectFieldSized is init_object_field's list overload: typ is the
// list's declared element type and size is the element count.
func (s StructBuilder) InitObjectFieldSized(name string, typ schema.Type, size uint32) BuilderValue {
	return s.initObjectField(name, typ, size)
}

func (s StructBuilder) initObjectField(name string, typ schema.Type, size uint32) BuilderValue {
	m := s.findMember(name)
	f := m.Field
	if f.Type.Kind != schema.KindObject {
		logInputValidation("InitObjectField(%q) called but field is not Object-typed (got %s)", name, f.Type.Kind)
		return BuilderValue{}
	}
	ob := s.w.GetObjectField(f.Offset)
	switch typ.Kind {
	case schema.KindStruct:
		node, err := s.pool.GetStruct(typ.StructID)
		if err != nil {
			logInputValidation("InitObjectField(%q): %v", name, err)
			return BuilderValue{}
		}
		sb := ob.InitAsStruct(node.Struct.Size())
		return structBuilderValue(StructBuilder{pool: s.pool, node: node, w: sb})
	case schema.KindList:
		elem := *typ.Element
		ls := schema.ListSchemaOf(elem)
		if ls.Depth > 1 {
			// Object-typed lists of depth > 1 are rejected until clarified.
			logInputValidation("InitObjectField(%q): a list of depth > 1 is not supported for an Object field", name)
			return BuilderValue{}
		}
		var lb wire.ListBuilder
		if elem.Kind == schema.KindStruct {
			node, err := s.pool.GetStruct(elem.StructID)
			if err != nil {
				logInputValidation("InitObjectField(%q): %v", name, err)
				return BuilderValue{}
			}
			lb = ob.InitAsStructList(size, node.Struct.Size())
		} else {
			lb = ob.InitAsList(elem.ElementSize(), size)
		}
		return listBuilderValue(newListBuilder(s.pool, ls, elem, lb))
	default:
		logInputValidation("InitObjectField(%q): expected a struct or list element type (got %s)", name, typ.Kind)
		return BuilderValue{}
	}
}

func (s StructBuilder) initStructField(f *schema.FieldDescriptor) StructBuilder {
	node, err := s.pool.GetStruct(f.Type.StructID)
	if err != nil {
		logInputValidation("initStructField: %v", err)
		return StructBuilder{}
	}
	sb := s.w.InitStructField(f.Offset, node.Struct.Size())
	return StructBuilder{pool: s.pool, node: node, w: sb}
}

func (s StructBuilder) initListField(f *schema.FieldDescriptor, count uint32) ListBuilder {
	return s.initListFieldSized(f, count)
}

func (s StructBuilder) initListFieldSized(f *schema.FieldDescriptor, count uint32) ListBuilder {
	elem := *f.Type.Element
	ls := schema.ListSchemaOf(elem)
	if elem.Kind == schema.KindStruct {
		node, err := s.pool.GetStruct(elem.StructID)
		if err != nil {
			logInputValidation("initListField: %v", err)
			return ListBuilder{}
		}
		lb := s.w.InitStructListField(f.Offset, count, node.Struct.Size())
		return newListBuilder(s.pool, ls, elem, lb)
	}
	lb := s.w.InitListField(f.Offset, elem.ElementSize(), count)
	return newListBuilder(s.pool, ls, elem, lb)
}

// toBuilderValue is the fallback-to-getter path used when Init/InitSized
// are called on a kind that cannot be initialized: the getter's Value is
// repackaged as a read-only BuilderValue view where possible.
func (v Value) toBuilderValue(s StructBuilder, f *schema.FieldDescriptor) BuilderValue {
	switch v.kind {
	case schema.KindText, schema.KindData:
		return BuilderValue{kind: v.kind, blob: v.blob}
	case schema.KindStruct:
		return structBuilderValue(StructBuilder{pool: s.pool, node: v.str.node, w: s.w.GetStructField(f.Offset, v.str.node.Struct.Size())})
	case schema.KindList:
		return BuilderValue{kind: schema.KindList}
	default:
		return BuilderValue{kind: v.kind}
	}
}
