package schema

// MemberKind distinguishes the two shapes a struct member can take: a
// plain field, or a discriminated union of further members.
type MemberKind int

const (
	FieldMember MemberKind = iota
	UnionMember
)

// Member is a named child of a struct node.
type Member struct {
	Name  string
	Index int // position within the owning member list (StructBody.Members, or UnionDescriptor.Members for a union's members); for a union's members it is the discriminant value
	Kind  MemberKind

	Field *FieldDescriptor // non-nil iff Kind == FieldMember
	Union *UnionDescriptor // non-nil iff Kind == UnionMember
}

// FieldDescriptor is the (offset, type, default) triple read against a
// wire cursor. Offset's unit depends on Type.Kind: an element
// index into the data section for primitives/enums, a pointer-section
// index for text/data/struct/list/object.
type FieldDescriptor struct {
	Offset  uint32
	Type    Type
	Default FieldDefault
}

// FieldDefault is the untyped default-value body, reinterpreted bit-for-bit
// against the field's raw storage rather than computed with float arithmetic.
// Bits holds the raw storage-width bit pattern for every primitive and
// enum kind; Blob holds the default byte content for Text/Data. Struct,
// list and object fields have no non-null wire default, so both are
// simply unused for those kinds.
type FieldDefault struct {
	Bits uint64
	Blob []byte
}

// UnionDescriptor is the discriminated group union access reads: a u32
// discriminant offset (element index into the data
// section, truncated to u16 on read) plus the ordered member list whose
// position is the discriminant value that selects it.
type UnionDescriptor struct {
	DiscriminantOffset uint32
	Members            []*Member
}
