package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListElementRoundTrip(t *testing.T) {
	assert := assert.New(t)

	m := NewMessage()
	sb := m.InitRoot(StructSize{PointerWords: 1})
	lb := sb.InitListField(0, SizeBit, 4)
	lb.SetBoolElement(0, true)
	lb.SetBoolElement(1, false)
	lb.SetBoolElement(2, true)
	lb.SetBoolElement(3, true)

	lr := m.Root().GetListField(0)
	assert.True(lr.GetBoolElement(0))
	assert.False(lr.GetBoolElement(1))
	assert.True(lr.GetBoolElement(2))
	assert.True(lr.GetBoolElement(3))
}

func TestListBlobElementRoundTrip(t *testing.T) {
	assert := assert.New(t)

	m := NewMessage()
	sb := m.InitRoot(StructSize{PointerWords: 1})
	lb := sb.InitListField(0, SizePointer, 2)
	lb.SetBlobElement(0, []byte("abc"))
	lb.SetBlobElement(1, []byte("defgh"))

	lr := m.Root().GetListField(0)
	assert.Equal([]byte("abc"), lr.GetBlobElement(0))
	assert.Equal([]byte("defgh"), lr.GetBlobElement(1))
}

func TestNestedListElementRoundTrip(t *testing.T) {
	assert := assert.New(t)

	m := NewMessage()
	sb := m.InitRoot(StructSize{PointerWords: 1})
	outer := sb.InitListField(0, SizePointer, 2)
	inner0 := outer.InitListElement(0, SizeFourBytes, 2)
	inner0.SetUint32Element(0, 1)
	inner0.SetUint32Element(1, 2)
	inner1 := outer.InitListElement(1, SizeFourBytes, 1)
	inner1.SetUint32Element(0, 99)

	lr := m.Root().GetListField(0)
	assert.EqualValues(2, lr.GetListElement(0).Len())
	assert.EqualValues(2, lr.GetListElement(0).GetUint32Element(1))
	assert.EqualValues(99, lr.GetListElement(1).GetUint32Element(0))
}

func TestListIndexOutOfBoundsPanics(t *testing.T) {
	m := NewMessage()
	sb := m.InitRoot(StructSize{PointerWords: 1})
	lb := sb.InitListField(0, SizeFourBytes, 2)

	assert.Panics(t, func() { lb.GetUint32Element(5) })
}
