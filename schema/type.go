// Package schema holds the pool of schema nodes (structs, enums,
// interfaces) the dynamic layer reflects against, plus the name-keyed
// lookup indices over their members and enumerants.
package schema

import "github.com/Nader-Sl/capnproto/wire"

// Kind is the type-descriptor tag identifying a field or list element's type.
type Kind int

const (
	KindVoid Kind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindText
	KindData
	KindEnum
	KindStruct
	KindList
	KindInterface
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "Void"
	case KindBool:
		return "Bool"
	case KindInt8:
		return "Int8"
	case KindInt16:
		return "Int16"
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindUint8:
		return "Uint8"
	case KindUint16:
		return "Uint16"
	case KindUint32:
		return "Uint32"
	case KindUint64:
		return "Uint64"
	case KindFloat32:
		return "Float32"
	case KindFloat64:
		return "Float64"
	case KindText:
		return "Text"
	case KindData:
		return "Data"
	case KindEnum:
		return "Enum"
	case KindStruct:
		return "Struct"
	case KindList:
		return "List"
	case KindInterface:
		return "Interface"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Type is the full type descriptor for a field or a list's element type.
// Only one of EnumID / StructID / InterfaceID / Element is meaningful,
// selected by Kind.
type Type struct {
	Kind        Kind
	EnumID      uint64
	StructID    uint64
	InterfaceID uint64
	Element     *Type // non-nil only when Kind == KindList
}

// ElementSize returns this type's physical layout width when used as a
// list element. The InlineComposite
// case needs more than a FieldSize to fully describe a
// struct element (its StructSize), which callers must derive separately
// from the referenced struct node.
func (t Type) ElementSize() wire.FieldSize {
	switch t.Kind {
	case KindVoid:
		return wire.SizeVoid
	case KindBool:
		return wire.SizeBit
	case KindInt8, KindUint8:
		return wire.SizeByte
	case KindInt16, KindUint16, KindEnum:
		return wire.SizeTwoBytes
	case KindInt32, KindUint32, KindFloat32:
		return wire.SizeFourBytes
	case KindInt64, KindUint64, KindFloat64:
		return wire.SizeEightBytes
	case KindText, KindData, KindList, KindInterface:
		return wire.SizePointer
	case KindStruct:
		return wire.SizeInlineComposite
	default:
		// KindObject has no list element layout and maps to SizeVoid; list
		// allocation accepts it, and dynamic's list element Get/Set reject
		// Object elements.
		return wire.SizeVoid
	}
}
