package dynamic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nader-Sl/capnproto/schema"
	"github.com/Nader-Sl/capnproto/wire"
)

const (
	colorID   = 10
	pointID   = 20
	wrapperID = 30
)

func buildFixturePool() *schema.Pool {
	colorNode := &schema.Node{
		ID: colorID, Name: "Color", Kind: schema.EnumNode,
		Enum: &schema.EnumBody{Enumerants: []*schema.Enumerant{
			{Name: "RED", Ordinal: 0},
			{Name: "GREEN", Ordinal: 1},
			{Name: "BLUE", Ordinal: 2},
		}},
	}

	pointNode := &schema.Node{
		ID: pointID, Name: "Point", Kind: schema.StructNode,
		Struct: &schema.StructBody{
			DataWords: 1,
			Members: []*schema.Member{
				{Name: "x", Index: 0, Kind: schema.FieldMember, Field: &schema.FieldDescriptor{Offset: 0, Type: schema.Type{Kind: schema.KindInt32}}},
				{Name: "y", Index: 1, Kind: schema.FieldMember, Field: &schema.FieldDescriptor{Offset: 1, Type: schema.Type{Kind: schema.KindInt32}}},
			},
		},
	}

	int32Type := schema.Type{Kind: schema.KindInt32}
	listInt32 := schema.Type{Kind: schema.KindList, Element: &int32Type}
	listListInt32 := schema.Type{Kind: schema.KindList, Element: &listInt32}

	wrapperNode := &schema.Node{
		ID: wrapperID, Name: "Wrapper", Kind: schema.StructNode,
		Struct: &schema.StructBody{
			DataWords: 1, PointerWords: 5,
			Members: []*schema.Member{
				{Name: "color", Index: 0, Kind: schema.FieldMember, Field: &schema.FieldDescriptor{Offset: 0, Type: schema.Type{Kind: schema.KindEnum, EnumID: colorID}}},
				{Name: "name", Index: 1, Kind: schema.FieldMember, Field: &schema.FieldDescriptor{Offset: 0, Type: schema.Type{Kind: schema.KindText}}},
				{Name: "tags", Index: 2, Kind: schema.FieldMember, Field: &schema.FieldDescriptor{Offset: 1, Type: listInt32}},
				{Name: "point", Index: 3, Kind: schema.FieldMember, Field: &schema.FieldDescriptor{Offset: 2, Type: schema.Type{Kind: schema.KindStruct, StructID: pointID}}},
				{Name: "payload", Index: 4, Kind: schema.FieldMember, Field: &schema.FieldDescriptor{Offset: 3, Type: schema.Type{Kind: schema.KindObject}}},
				{Name: "grid", Index: 5, Kind: schema.FieldMember, Field: &schema.FieldDescriptor{Offset: 4, Type: listListInt32}},
				{Name: "shape", Index: 6, Kind: schema.UnionMember, Union: &schema.UnionDescriptor{
					DiscriminantOffset: 1,
					Members: []*schema.Member{
						{Name: "empty", Index: 0, Kind: schema.FieldMember, Field: &schema.FieldDescriptor{Type: schema.Type{Kind: schema.KindVoid}}},
						{Name: "radius", Index: 1, Kind: schema.FieldMember, Field: &schema.FieldDescriptor{Offset: 1, Type: schema.Type{Kind: schema.KindInt32}}},
					},
				}},
			},
		},
	}

	p := schema.NewPool(nil)
	mustAdd(p, colorNode)
	mustAdd(p, pointNode)
	mustAdd(p, wrapperNode)
	return p
}

func mustAdd(p *schema.Pool, n *schema.Node) {
	if err := p.AddNoCopy(n); err != nil {
		panic(err)
	}
}

func newWrapper(p *schema.Pool) StructBuilder {
	m := wire.NewMessage()
	sb, err := InitRoot(m, p, wrapperID)
	if err != nil {
		panic(err)
	}
	return sb
}

func TestEnumFieldDefaultAndSet(t *testing.T) {
	assert := assert.New(t)
	p := buildFixturePool()
	sb := newWrapper(p)

	ent, ok := sb.Get("color").AsEnum().GetEnumerant()
	assert.True(ok)
	assert.Equal("RED", ent.Name)

	colorNode, _ := p.GetEnum(colorID)
	sb.Set("color", EnumValue(NewEnum(p, colorNode, 2)))
	ent, ok = sb.Get("color").AsEnum().GetEnumerant()
	assert.True(ok)
	assert.Equal("BLUE", ent.Name)
}

func TestTextFieldRoundTrip(t *testing.T) {
	assert := assert.New(t)
	sb := newWrapper(buildFixturePool())

	sb.Set("name", TextValue("hello"))
	assert.Equal("hello", sb.Get("name").AsText())
}

func TestListFieldRoundTrip(t *testing.T) {
	assert := assert.New(t)
	sb := newWrapper(buildFixturePool())

	lb := sb.InitSized("tags", 3).AsList()
	lb.Set(0, Int32Value(10))
	lb.Set(1, Int32Value(20))
	lb.Set(2, Int32Value(30))

	lr := sb.Get("tags").AsList()
	assert.EqualValues(3, lr.Len())
	assert.EqualValues(10, lr.Get(0).AsInt32())
	assert.EqualValues(30, lr.Get(2).AsInt32())

	ls := lr.ListSchema()
	assert.Equal(schema.KindInt32, ls.ElementKind)
	assert.EqualValues(0, ls.Depth)
}

func TestNestedStructFieldRoundTrip(t *testing.T) {
	assert := assert.New(t)
	sb := newWrapper(buildFixturePool())

	psb := sb.Init("point").AsStruct()
	psb.Set("x", Int32Value(3))
	psb.Set("y", Int32Value(4))

	pr := sb.Get("point").AsStruct()
	assert.EqualValues(3, pr.Get("x").AsInt32())
	assert.EqualValues(4, pr.Get("y").AsInt32())
}

func TestCopyStructSchemalessFieldSet(t *testing.T) {
	assert := assert.New(t)
	p := buildFixturePool()
	sb1 := newWrapper(p)
	psb := sb1.Init("point").AsStruct()
	psb.Set("x", Int32Value(7))
	psb.Set("y", Int32Value(8))

	sb2 := newWrapper(p)
	sb2.Set("point", StructValue(sb1.Get("point").AsStruct()))

	got := sb2.Get("point").AsStruct()
	assert.EqualValues(7, got.Get("x").AsInt32())
	assert.EqualValues(8, got.Get("y").AsInt32())
}

func TestUnionWhichAndSwitch(t *testing.T) {
	assert := assert.New(t)
	p := buildFixturePool()
	sb := newWrapper(p)

	radius, ok := p.FindMemberByName(wrapperID, "radius")
	assert.True(ok)
	empty, ok := p.FindMemberByName(wrapperID, "empty")
	assert.True(ok)

	ub := sb.GetUnion("shape")
	ub.Set(radius, Int32Value(7))

	active, ok := ub.Which()
	assert.True(ok)
	assert.Equal("radius", active.Name)
	assert.EqualValues(7, ub.Get().AsInt32())

	ub.Set(empty, VoidValue())
	active, ok = ub.Which()
	assert.True(ok)
	assert.Equal("empty", active.Name)
}

func TestObjectFieldInitAsStruct(t *testing.T) {
	assert := assert.New(t)
	p := buildFixturePool()
	sb := newWrapper(p)
	pointNode, _ := p.GetStruct(pointID)

	bv := sb.InitObjectField("payload", schema.Type{Kind: schema.KindStruct, StructID: pointID})
	bv.AsStruct().Set("x", Int32Value(9))
	bv.AsStruct().Set("y", Int32Value(8))

	obj := sb.Get("payload").AsObject()
	pr := obj.ToStruct(pointNode)
	assert.EqualValues(9, pr.Get("x").AsInt32())
}

func TestObjectFieldInitAsList(t *testing.T) {
	assert := assert.New(t)
	p := buildFixturePool()
	sb := newWrapper(p)
	int32Type := schema.Type{Kind: schema.KindInt32}

	bv := sb.InitObjectFieldSized("payload", schema.Type{Kind: schema.KindList, Element: &int32Type}, 2)
	lb := bv.AsList()
	lb.Set(0, Int32Value(1))
	lb.Set(1, Int32Value(2))

	obj := sb.Get("payload").AsObject()
	lr := obj.ToList(int32Type)
	assert.EqualValues(2, lr.Len())
	assert.EqualValues(1, lr.Get(0).AsInt32())
}

func TestNestedListFieldDepth(t *testing.T) {
	assert := assert.New(t)
	sb := newWrapper(buildFixturePool())

	grid := sb.InitSized("grid", 2).AsList()
	assert.EqualValues(1, grid.ListSchema().Depth)

	row0 := grid.InitElement(0, 2)
	row0.Set(0, Int32Value(1))
	row0.Set(1, Int32Value(2))
	row1 := grid.InitElement(1, 1)
	row1.Set(0, Int32Value(9))

	gv := sb.Get("grid").AsList()
	assert.EqualValues(2, gv.Len())

	r0 := gv.Get(0).AsList()
	assert.EqualValues(0, r0.ListSchema().Depth)
	assert.EqualValues(2, r0.Len())
	assert.EqualValues(1, r0.Get(0).AsInt32())
	assert.EqualValues(2, r0.Get(1).AsInt32())

	r1 := gv.Get(1).AsList()
	assert.EqualValues(9, r1.Get(0).AsInt32())
}

func TestNullStructFieldDegradesToDefaults(t *testing.T) {
	assert := assert.New(t)
	sb := newWrapper(buildFixturePool())

	// The point field was never initialized: reading it should yield a
	// zero-valued struct whose own fields read back as their defaults.
	pr := sb.Get("point").AsStruct()
	assert.EqualValues(0, pr.Get("x").AsInt32())
}

func TestWrongKindAccessDegradesToZeroValue(t *testing.T) {
	assert := assert.New(t)
	sb := newWrapper(buildFixturePool())
	sb.Set("color", EnumValue(Enum{}))

	v := sb.Get("name")
	assert.Equal(int32(0), v.AsInt32())
}
