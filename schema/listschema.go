package schema

// ListSchema is the canonical (element kind, nesting depth, element type
// id) triple for a possibly-nested list type. A
// List(List(List(Int16))) canonicalizes to (KindInt16, depth=2, id=0); each
// time a caller descends one level, Depth decrements until it reaches the
// innermost List(Int16) at depth 0.
type ListSchema struct {
	ElementKind Kind
	Depth       uint32
	// ElementTypeID is the struct or enum id of the innermost element, 0
	// for every other kind (there's nothing to look up for a primitive).
	ElementTypeID uint64
}

// ListSchemaOf canonicalizes a (possibly nested) list element Type into a
// ListSchema by walking down through KindList wrappers and counting them.
func ListSchemaOf(elem Type) ListSchema {
	depth := uint32(0)
	for elem.Kind == KindList {
		depth++
		elem = *elem.Element
	}
	id := uint64(0)
	switch elem.Kind {
	case KindStruct:
		id = elem.StructID
	case KindEnum:
		id = elem.EnumID
	case KindInterface:
		id = elem.InterfaceID
	}
	return ListSchema{ElementKind: elem.Kind, Depth: depth, ElementTypeID: id}
}

// Inner returns the list schema one level down: the same element kind and
// id, with depth decremented. Callers must not call this at depth 0 — the
// innermost level has no further sub-list.
func (s ListSchema) Inner() ListSchema {
	return ListSchema{ElementKind: s.ElementKind, Depth: s.Depth - 1, ElementTypeID: s.ElementTypeID}
}
