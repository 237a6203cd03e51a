package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func personNode() *Node {
	return &Node{
		ID:   1,
		Name: "Person",
		Kind: StructNode,
		Struct: &StructBody{
			DataWords:    1,
			PointerWords: 1,
			Members: []*Member{
				{Name: "age", Index: 0, Kind: FieldMember, Field: &FieldDescriptor{Offset: 0, Type: Type{Kind: KindUint32}}},
				{Name: "name", Index: 1, Kind: FieldMember, Field: &FieldDescriptor{Offset: 0, Type: Type{Kind: KindText}}},
			},
		},
	}
}

func TestAddNoCopyIdempotentAndConflicting(t *testing.T) {
	assert := assert.New(t)

	p := NewPool(nil)
	assert.NoError(p.AddNoCopy(personNode()))
	// Re-adding the byte-identical node is a no-op success.
	assert.NoError(p.AddNoCopy(personNode()))

	conflict := personNode()
	conflict.Struct.DataWords = 2
	assert.Error(p.AddNoCopy(conflict))
}

func TestFindMemberByName(t *testing.T) {
	assert := assert.New(t)

	p := NewPool(nil)
	assert.NoError(p.AddNoCopy(personNode()))

	m, ok := p.FindMemberByName(1, "age")
	assert.True(ok)
	assert.Equal(FieldMember, m.Kind)

	_, ok = p.FindMemberByName(1, "nope")
	assert.False(ok)
}

func TestPoolChainsToBase(t *testing.T) {
	assert := assert.New(t)

	base := NewPool(nil)
	assert.NoError(base.AddNoCopy(personNode()))

	child := NewPool(base)
	assert.True(child.Has(1))
	node, err := child.GetStruct(1)
	assert.NoError(err)
	assert.Equal("Person", node.Name)

	m, ok := child.FindMemberByName(1, "age")
	assert.True(ok)
	assert.Equal("age", m.Name)
}

func TestGetKindMismatch(t *testing.T) {
	assert := assert.New(t)

	p := NewPool(nil)
	assert.NoError(p.AddNoCopy(personNode()))

	_, err := p.GetEnum(1)
	assert.Error(err)

	_, err = p.GetStruct(999)
	assert.Error(err)
}

func TestIdTextHashCollisionsResolveByExactMatch(t *testing.T) {
	assert := assert.New(t)

	p := NewPool(nil)
	n1 := &Node{ID: 1, Name: "A", Kind: StructNode, Struct: &StructBody{
		Members: []*Member{{Name: "x", Kind: FieldMember, Field: &FieldDescriptor{Type: Type{Kind: KindUint8}}}},
	}}
	n2 := &Node{ID: 2, Name: "B", Kind: StructNode, Struct: &StructBody{
		Members: []*Member{{Name: "y", Kind: FieldMember, Field: &FieldDescriptor{Type: Type{Kind: KindUint8}}}},
	}}
	assert.NoError(p.AddNoCopy(n1))
	assert.NoError(p.AddNoCopy(n2))

	mx, ok := p.FindMemberByName(1, "x")
	assert.True(ok)
	assert.Equal("x", mx.Name)

	my, ok := p.FindMemberByName(2, "y")
	assert.True(ok)
	assert.Equal("y", my.Name)

	// x belongs to id 1, not id 2, even though both hash buckets may
	// collide for short names.
	_, ok = p.FindMemberByName(2, "x")
	assert.False(ok)
}

func TestListSchemaOfCanonicalizesNestingDepth(t *testing.T) {
	assert := assert.New(t)

	inner := Type{Kind: KindInt16}
	mid := Type{Kind: KindList, Element: &inner}
	outer := Type{Kind: KindList, Element: &mid}

	ls := ListSchemaOf(outer)
	assert.Equal(KindInt16, ls.ElementKind)
	assert.EqualValues(2, ls.Depth)

	innerLs := ls.Inner()
	assert.EqualValues(1, innerLs.Depth)
	assert.Equal(KindInt16, innerLs.ElementKind)
}
