package schema

import "github.com/Nader-Sl/capnproto/wire"

// NodeKind distinguishes the three node bodies the pool understands.
type NodeKind int

const (
	StructNode NodeKind = iota
	EnumNode
	InterfaceNode
)

// Node is one schema node, identified by a globally-unique 64-bit id. A
// Node is immutable once added to a Pool: the pool borrows it, never
// copies its members or enumerants.
type Node struct {
	ID   uint64
	Name string
	Kind NodeKind

	Struct    *StructBody    // non-nil iff Kind == StructNode
	Enum      *EnumBody      // non-nil iff Kind == EnumNode
	Interface *InterfaceBody // non-nil iff Kind == InterfaceNode
}

// StructBody carries the struct node's physical layout and its ordered
// members (fields and unions).
type StructBody struct {
	DataWords             uint16
	PointerWords          uint16
	PreferredListEncoding wire.FieldSize
	Members               []*Member
}

func (b *StructBody) Size() wire.StructSize {
	return wire.StructSize{DataWords: b.DataWords, PointerWords: b.PointerWords, PreferredListEncoding: b.PreferredListEncoding}
}

// EnumBody carries the enum's ordered enumerants (name, ordinal).
type EnumBody struct {
	Enumerants []*Enumerant
}

// InterfaceBody is an empty stub: interface nodes are never walked beyond
// existence checks, since interface/capability types are out of scope.
type InterfaceBody struct{}

// Enumerant is one named value of an enum node. Ordinal is also its index
// within EnumBody.Enumerants — raw enum storage is the ordinal as a u16.
type Enumerant struct {
	Name    string
	Ordinal uint16
}
