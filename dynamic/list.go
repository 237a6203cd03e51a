package dynamic

import (
	"github.com/Nader-Sl/capnproto/errcat"
	"github.com/Nader-Sl/capnproto/schema"
	"github.com/Nader-Sl/capnproto/wire"
)

// ListReader is (pool, innermost element kind, remaining depth, element
// schema node, wire cursor). At depth 0 indexing dispatches directly on
// the element kind; at depth > 0 indexing yields a sub-list reader one
// level shallower.
type ListReader struct {
	pool     *schema.Pool
	elemKind schema.Kind
	depth    uint32
	elemID   uint64      // struct/enum/interface id of the innermost kind, 0 otherwise
	elemNode *schema.Node // resolved struct/enum node, nil for primitive kinds
	w        wire.ListReader
}

type ListBuilder struct {
	pool     *schema.Pool
	elemKind schema.Kind
	depth    uint32
	elemID   uint64
	elemNode *schema.Node
	w        wire.ListBuilder
}

func newListReader(pool *schema.Pool, ls schema.ListSchema, declaredElem schema.Type, w wire.ListReader) ListReader {
	return ListReader{pool: pool, elemKind: ls.ElementKind, depth: ls.Depth, elemID: ls.ElementTypeID, elemNode: resolveElemNode(pool, ls), w: w}
}

func newListBuilder(pool *schema.Pool, ls schema.ListSchema, declaredElem schema.Type, w wire.ListBuilder) ListBuilder {
	return ListBuilder{pool: pool, elemKind: ls.ElementKind, depth: ls.Depth, elemID: ls.ElementTypeID, elemNode: resolveElemNode(pool, ls), w: w}
}

func resolveElemNode(pool *schema.Pool, ls schema.ListSchema) *schema.Node {
	switch ls.ElementKind {
	case schema.KindStruct:
		n, err := pool.GetStruct(ls.ElementTypeID)
		if err != nil {
			return nil
		}
		return n
	case schema.KindEnum:
		n, err := pool.GetEnum(ls.ElementTypeID)
		if err != nil {
			return nil
		}
		return n
	default:
		return nil
	}
}

func (l ListReader) Len() uint32  { return l.w.Len() }
func (l ListBuilder) Len() uint32 { return l.w.Len() }

func (l ListBuilder) AsReader() ListReader {
	return ListReader{pool: l.pool, elemKind: l.elemKind, depth: l.depth, elemID: l.elemID, elemNode: l.elemNode, w: l.w.AsReader()}
}

// ListSchema reports this list's canonical (element kind, depth, element
// id) at the current level — used by tests checking that descending into
// a nested list always lowers depth by exactly one.
func (l ListReader) ListSchema() schema.ListSchema {
	return schema.ListSchema{ElementKind: l.elemKind, Depth: l.depth, ElementTypeID: l.elemID}
}
func (l ListBuilder) ListSchema() schema.ListSchema { return l.AsReader().ListSchema() }

func (l ListReader) checkIndex(i uint32) {
	errcat.Precondition(i < l.Len(), "dynamic: list index %d out of bounds (length %d)", i, l.Len())
}

// Get dispatches on depth: depth 0 reads the element directly, depth > 0
// produces a sub-list Value one level shallower.
func (l ListReader) Get(i uint32) Value {
	l.checkIndex(i)
	if l.depth > 0 {
		sub := l.w.GetListElement(i)
		return ListValue(ListReader{pool: l.pool, elemKind: l.elemKind, depth: l.depth - 1, elemID: l.elemID, elemNode: l.elemNode, w: sub})
	}
	switch l.elemKind {
	case schema.KindVoid:
		return VoidValue()
	case schema.KindBool:
		return BoolValue(l.w.GetBoolElement(i))
	case schema.KindInt8:
		return Int8Value(l.w.GetInt8Element(i))
	case schema.KindInt16:
		return Int16Value(l.w.GetInt16Element(i))
	case schema.KindInt32:
		return Int32Value(l.w.GetInt32Element(i))
	case schema.KindInt64:
		return Int64Value(l.w.GetInt64Element(i))
	case schema.KindUint8:
		return Uint8Value(l.w.GetUint8Element(i))
	case schema.KindUint16:
		return Uint16Value(l.w.GetUint16Element(i))
	case schema.KindUint32:
		return Uint32Value(l.w.GetUint32Element(i))
	case schema.KindUint64:
		return Uint64Value(l.w.GetUint64Element(i))
	case schema.KindFloat32:
		return Float32Value(l.w.GetFloat32Element(i))
	case schema.KindFloat64:
		return Float64Value(l.w.GetFloat64Element(i))
	case schema.KindText:
		return Value{kind: schema.KindText, blob: l.w.GetBlobElement(i)}
	case schema.KindData:
		return Value{kind: schema.KindData, blob: l.w.GetBlobElement(i)}
	case schema.KindStruct:
		sr := l.w.GetStructElement(i)
		return StructValue(StructReader{pool: l.pool, node: l.elemNode, w: sr})
	case schema.KindEnum:
		return EnumValue(NewEnum(l.pool, l.elemNode, l.w.GetUint16RawElement(i)))
	case schema.KindObject:
		logInputValidation("List(Object) is not supported")
		return Value{}
	case schema.KindInterface:
		logNotImplemented("interface list elements")
		return Value{}
	default:
		errcat.Precondition(false, "dynamic: list has unrecognized element kind %v", l.elemKind)
		return Value{}
	}
}

func (l ListBuilder) Get(i uint32) Value { return l.AsReader().Get(i) }

// Set writes element i, delegating to a schemaless copy for struct and
// sub-list elements.
func (l ListBuilder) Set(i uint32, value Value) {
	l.AsReader().checkIndex(i)
	if l.depth > 0 {
		src := value.AsList()
		dst := l.InitElement(i, src.Len())
		CopyList(dst, src)
		return
	}
	switch l.elemKind {
	case schema.KindVoid:
	case schema.KindBool:
		l.w.SetBoolElement(i, value.AsBool())
	case schema.KindInt8:
		l.w.SetInt8Element(i, value.AsInt8())
	case schema.KindInt16:
		l.w.SetInt16Element(i, value.AsInt16())
	case schema.KindInt32:
		l.w.SetInt32Element(i, value.AsInt32())
	case schema.KindInt64:
		l.w.SetInt64Element(i, value.AsInt64())
	case schema.KindUint8:
		l.w.SetUint8Element(i, value.AsUint8())
	case schema.KindUint16:
		l.w.SetUint16Element(i, value.AsUint16())
	case schema.KindUint32:
		l.w.SetUint32Element(i, value.AsUint32())
	case schema.KindUint64:
		l.w.SetUint64Element(i, value.AsUint64())
	case schema.KindFloat32:
		l.w.SetFloat32Element(i, value.AsFloat32())
	case schema.KindFloat64:
		l.w.SetFloat64Element(i, value.AsFloat64())
	case schema.KindText:
		l.w.SetBlobElement(i, []byte(value.AsText()))
	case schema.KindData:
		l.w.SetBlobElement(i, value.AsData())
	case schema.KindStruct:
		// The slot is already sized (inline-composite) — copy into it
		// rather than allocating.
		dst := StructBuilder{pool: l.pool, node: l.elemNode, w: l.w.GetStructElement(i)}
		CopyStruct(dst, value.AsStruct())
	case schema.KindEnum:
		ev := value.AsEnum()
		if ev.Node() == nil || l.elemNode == nil || ev.Node().ID != l.elemNode.ID {
			logInputValidation("List element Set: enum schema mismatch")
		}
		l.w.SetUint16RawElement(i, ev.Raw())
	case schema.KindObject, schema.KindInterface:
		logInputValidation("List element Set: %s elements are not supported", l.elemKind)
	default:
		errcat.Precondition(false, "dynamic: list has unrecognized element kind %v", l.elemKind)
	}
}

// InitElement allocates fresh storage for element i. At depth 0 every
// kind is an input-validation failure (a depth-0 Text/Data element is
// sized through InitBlobElement instead). At depth > 0 it allocates a sub-list of
// size elements, preferring inline-composite when the innermost kind is
// struct and this is the last level of nesting.
func (l ListBuilder) InitElement(i uint32, size uint32) ListBuilder {
	l.AsReader().checkIndex(i)
	if l.depth == 0 {
		logInputValidation("InitElement at depth 0 is only valid for list elements, not %s", l.elemKind)
		return ListBuilder{}
	}
	if l.depth == 1 && l.elemKind == schema.KindStruct && l.elemNode != nil {
		sub := l.w.InitStructListElement(i, size, l.elemNode.Struct.Size())
		return ListBuilder{pool: l.pool, elemKind: l.elemKind, depth: l.depth - 1, elemID: l.elemID, elemNode: l.elemNode, w: sub}
	}
	elemSize := wire.SizePointer
	if l.depth == 1 {
		elemSize = elementSizeForKind(l.elemKind)
	}
	sub := l.w.InitListElement(i, elemSize, size)
	return ListBuilder{pool: l.pool, elemKind: l.elemKind, depth: l.depth - 1, elemID: l.elemID, elemNode: l.elemNode, w: sub}
}

// InitBlobElement allocates size bytes for a depth-0 Text or Data
// element.
func (l ListBuilder) InitBlobElement(i uint32, size uint32) []byte {
	l.AsReader().checkIndex(i)
	if l.depth != 0 || (l.elemKind != schema.KindText && l.elemKind != schema.KindData) {
		logInputValidation("InitBlobElement is only valid for a depth-0 Text/Data element")
		return nil
	}
	return l.w.InitBlobElement(i, size)
}

func elementSizeForKind(k schema.Kind) wire.FieldSize {
	t := schema.Type{Kind: k}
	return t.ElementSize()
}
