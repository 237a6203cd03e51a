package dynamic

import (
	"github.com/Nader-Sl/capnproto/errcat"
	"github.com/Nader-Sl/capnproto/schema"
	"github.com/Nader-Sl/capnproto/wire"
)

// UnionReader wraps one struct's union discriminant and member set: the
// discriminant selects the active member.
type UnionReader struct {
	pool  *schema.Pool
	union *schema.UnionDescriptor
	w     wire.StructReader
}

type UnionBuilder struct {
	pool  *schema.Pool
	union *schema.UnionDescriptor
	w     wire.StructBuilder
}

func (u UnionReader) discriminant() uint16 {
	return u.w.GetUint16(u.union.DiscriminantOffset, 0)
}
func (u UnionBuilder) discriminant() uint16 {
	return u.w.GetUint16(u.union.DiscriminantOffset, 0)
}

// Which returns the currently active member, or false if the stored
// discriminant does not match any member this schema knows about — e.g.
// data written by a newer schema version with more union variants.
func (u UnionReader) Which() (*schema.Member, bool) {
	disc := int(u.discriminant())
	for _, m := range u.union.Members {
		if m.Index == disc {
			return m, true
		}
	}
	return nil, false
}
func (u UnionBuilder) Which() (*schema.Member, bool) {
	return u.AsReader().Which()
}
func (u UnionBuilder) AsReader() UnionReader {
	return UnionReader{pool: u.pool, union: u.union, w: u.w.AsReader()}
}

// Get reads the active member's value. When the discriminant doesn't
// resolve to a known member, this is a recoverable failure (logged) that
// degrades to the zero Value.
func (u UnionReader) Get() Value {
	m, ok := u.Which()
	if !ok {
		logInputValidation("union discriminant %d does not match any known member", u.discriminant())
		return Value{}
	}
	errcat.Precondition(m.Kind == schema.FieldMember, "dynamic: union member %q has no field descriptor", m.Name)
	return StructReader{pool: u.pool, w: u.w}.GetField(m.Field)
}
func (u UnionBuilder) Get() Value { return u.AsReader().Get() }

func (u UnionBuilder) setDiscriminant(index int) {
	u.w.SetUint16(u.union.DiscriminantOffset, uint16(index), 0)
}

// Set writes the discriminant for field then its value, making field the
// union's active member.
func (u UnionBuilder) Set(field *schema.Member, value Value) {
	errcat.Precondition(field.Kind == schema.FieldMember, "dynamic: union member %q has no field descriptor", field.Name)
	u.setDiscriminant(field.Index)
	StructBuilder{pool: u.pool, w: u.w}.SetField(field.Field, value)
}

// Init selects field as active and allocates fresh storage for it,
// mirroring StructBuilder.Init.
func (u UnionBuilder) Init(field *schema.Member) BuilderValue {
	errcat.Precondition(field.Kind == schema.FieldMember, "dynamic: union member %q has no field descriptor", field.Name)
	u.setDiscriminant(field.Index)
	return StructBuilder{pool: u.pool, w: u.w}.initStructFieldValue(field.Field)
}

// InitSized selects field as active and allocates a sized list or blob
// for it, mirroring StructBuilder.InitSized.
func (u UnionBuilder) InitSized(field *schema.Member, size uint32) BuilderValue {
	errcat.Precondition(field.Kind == schema.FieldMember, "dynamic: union member %q has no field descriptor", field.Name)
	u.setDiscriminant(field.Index)
	return StructBuilder{pool: u.pool, w: u.w}.initSizedFieldValue(field.Field, size)
}
