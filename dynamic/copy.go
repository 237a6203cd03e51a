package dynamic

import "github.com/Nader-Sl/capnproto/schema"

// CopyStruct performs a schemaless struct-to-struct copy: it walks src's
// own schema (the producer's schema) rather than dst's, writing each of
// src's members into dst by name. A member src declares that dst's schema
// doesn't know about is silently dropped; this is the same forward-
// compatible behavior field access gives a newer-schema reader of
// older data.
func CopyStruct(dst StructBuilder, src StructReader) {
	if dst.node == nil || src.node == nil {
		return
	}
	for _, m := range src.node.Struct.Members {
		switch m.Kind {
		case schema.FieldMember:
			dm, ok := dst.pool.FindMemberByName(dst.node.ID, m.Name)
			if !ok || dm.Kind != schema.FieldMember {
				continue
			}
			dst.SetField(dm.Field, src.GetField(m.Field))
		case schema.UnionMember:
			copyUnionMember(dst, src, m)
		}
	}
}

func copyUnionMember(dst StructBuilder, src StructReader, m *schema.Member) {
	ur := UnionReader{pool: src.pool, union: m.Union, w: src.w}
	active, ok := ur.Which()
	if !ok {
		return
	}
	dm, ok := dst.pool.FindMemberByName(dst.node.ID, m.Name)
	if !ok || dm.Kind != schema.UnionMember {
		return
	}
	target, ok := findMemberInUnion(dm.Union, active.Name)
	if !ok {
		return
	}
	ub := UnionBuilder{pool: dst.pool, union: dm.Union, w: dst.w}
	ub.Set(target, ur.Get())
}

func findMemberInUnion(u *schema.UnionDescriptor, name string) (*schema.Member, bool) {
	for _, m := range u.Members {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// CopyList copies every element of src into the already-allocated dst.
// dst must have at least src.Len() elements; struct and nested-list
// elements recurse through CopyStruct/CopyList via ListBuilder.Set.
func CopyList(dst ListBuilder, src ListReader) {
	n := src.Len()
	for i := uint32(0); i < n; i++ {
		dst.Set(i, src.Get(i))
	}
}

// CopyObject is not implemented: an AnyPointer field carries no schema
// of its own, so a faithful schemaless copy would require a raw,
// message-level clone of the pointer's target rather than anything the
// field-by-name walk above can do. Matches the same degrade StructBuilder.SetField
// already applies to Object-typed fields.
func CopyObject(dst ObjectBuilder, src ObjectReader) {
	logNotImplemented("schemaless copy of an Object(AnyPointer) field")
}
