package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructFieldRoundTrip(t *testing.T) {
	assert := assert.New(t)

	m := NewMessage()
	sb := m.InitRoot(StructSize{DataWords: 1, PointerWords: 1})
	sb.SetUint32(0, 42, 0)
	sb.SetBlobField(0, []byte("hello"))

	sr := m.Root()
	assert.EqualValues(42, sr.GetUint32(0, 0))
	assert.Equal([]byte("hello"), sr.GetBlobField(0, nil))
}

func TestStructFieldDefaultMasking(t *testing.T) {
	assert := assert.New(t)

	m := NewMessage()
	sb := m.InitRoot(StructSize{DataWords: 1})

	// An untouched field reads back as the declared default.
	assert.EqualValues(7, sb.GetUint32(0, 7))

	// Writing the default value itself still round-trips through the XOR
	// mask correctly.
	sb.SetUint32(0, 7, 7)
	assert.EqualValues(7, sb.GetUint32(0, 7))

	sb.SetUint32(0, 99, 7)
	assert.EqualValues(99, sb.GetUint32(0, 7))
}

func TestStructPointerNotAtWordZero(t *testing.T) {
	assert := assert.New(t)

	m := NewMessage()
	sb := m.InitRoot(StructSize{DataWords: 0, PointerWords: 2})

	inner := sb.InitStructField(1, StructSize{DataWords: 1})
	inner.SetUint32(0, 123, 0)

	sr := m.Root()
	assert.EqualValues(123, sr.GetStructField(1).GetUint32(0, 0))
	// The untouched pointer slot at index 0 must still decode as null,
	// not alias the struct at index 1.
	assert.True(sr.GetStructField(0).dataBytes() == nil)
}

func TestStructListFieldRoundTrip(t *testing.T) {
	assert := assert.New(t)

	m := NewMessage()
	sb := m.InitRoot(StructSize{PointerWords: 1})
	lb := sb.InitListField(0, SizeFourBytes, 3)
	lb.SetUint32Element(0, 10)
	lb.SetUint32Element(1, 20)
	lb.SetUint32Element(2, 30)

	lr := m.Root().GetListField(0)
	assert.EqualValues(3, lr.Len())
	assert.EqualValues(10, lr.GetUint32Element(0))
	assert.EqualValues(30, lr.GetUint32Element(2))
}

func TestStructListFieldInlineComposite(t *testing.T) {
	assert := assert.New(t)

	elemSize := StructSize{DataWords: 1, PointerWords: 0}
	m := NewMessage()
	sb := m.InitRoot(StructSize{PointerWords: 1})
	lb := sb.InitStructListField(0, 2, elemSize)
	lb.GetStructElement(0).SetUint32(0, 1, 0)
	lb.GetStructElement(1).SetUint32(0, 2, 0)

	lr := m.Root().GetListField(0)
	assert.EqualValues(SizeInlineComposite, lr.ElemSize())
	assert.EqualValues(1, lr.GetStructElement(0).GetUint32(0, 0))
	assert.EqualValues(2, lr.GetStructElement(1).GetUint32(0, 0))
}

func TestNullFieldsDegradeToZeroValue(t *testing.T) {
	assert := assert.New(t)

	var sr StructReader
	assert.EqualValues(0, sr.GetUint32(0, 0))
	assert.Nil(sr.GetBlobField(0, nil))
	assert.EqualValues(0, sr.GetListField(0).Len())
	assert.Equal(StructReader{}, sr.GetStructField(0))
}
