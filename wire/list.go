package wire

import (
	"math"

	"github.com/Nader-Sl/capnproto/d"
)

// ListReader is a cursor over one list's elements. The zero value is an
// empty list (length 0), matching the same "null pointer yields an empty
// reader" convention as StructReader.
type ListReader struct {
	msg        *Message
	wordOffset uint32
	length     uint32
	elemSize   FieldSize
	structSize StructSize // valid only when elemSize == SizeInlineComposite
}

type ListBuilder struct {
	msg        *Message
	wordOffset uint32
	length     uint32
	elemSize   FieldSize
	structSize StructSize
}

func (l ListReader) Len() uint32    { return l.length }
func (l ListBuilder) Len() uint32   { return l.length }
func (l ListBuilder) AsReader() ListReader {
	return ListReader{l.msg, l.wordOffset, l.length, l.elemSize, l.structSize}
}

func (l ListReader) checkIndex(i uint32) {
	d.PanicIfFalse(i < l.length, "wire: list index %d out-of-bounds (length %d)", i, l.length)
}

func (l ListReader) fixedBytes() []byte {
	if l.msg == nil {
		return nil
	}
	return l.msg.byteSlice(l.wordOffset, listBodyWords(l.elemSize, l.length, l.structSize))
}

func (l ListBuilder) fixedBytes() []byte {
	return l.msg.byteSlice(l.wordOffset, listBodyWords(l.elemSize, l.length, l.structSize))
}

// --- fixed-width primitive elements -----------------------------------------

func (l ListReader) GetBoolElement(i uint32) bool {
	l.checkIndex(i)
	return readBits(l.fixedBytes(), i, 1)&1 != 0
}
func (l ListBuilder) GetBoolElement(i uint32) bool { return l.AsReader().GetBoolElement(i) }
func (l ListBuilder) SetBoolElement(i uint32, v bool) {
	l.AsReader().checkIndex(i)
	writeBits(l.fixedBytes(), i, 1, b2u(v))
}

func (l ListReader) GetUint8Element(i uint32) uint8 {
	l.checkIndex(i)
	return uint8(readBits(l.fixedBytes(), i*8, 8))
}
func (l ListBuilder) GetUint8Element(i uint32) uint8 { return l.AsReader().GetUint8Element(i) }
func (l ListBuilder) SetUint8Element(i uint32, v uint8) {
	l.AsReader().checkIndex(i)
	writeBits(l.fixedBytes(), i*8, 8, uint64(v))
}

func (l ListReader) GetInt8Element(i uint32) int8 {
	l.checkIndex(i)
	return int8(readBits(l.fixedBytes(), i*8, 8))
}
func (l ListBuilder) GetInt8Element(i uint32) int8 { return l.AsReader().GetInt8Element(i) }
func (l ListBuilder) SetInt8Element(i uint32, v int8) {
	l.AsReader().checkIndex(i)
	writeBits(l.fixedBytes(), i*8, 8, uint64(uint8(v)))
}

func (l ListReader) GetUint16Element(i uint32) uint16 {
	l.checkIndex(i)
	return uint16(readBits(l.fixedBytes(), i*16, 16))
}
func (l ListBuilder) GetUint16Element(i uint32) uint16 { return l.AsReader().GetUint16Element(i) }
func (l ListBuilder) SetUint16Element(i uint32, v uint16) {
	l.AsReader().checkIndex(i)
	writeBits(l.fixedBytes(), i*16, 16, uint64(v))
}

func (l ListReader) GetInt16Element(i uint32) int16 {
	l.checkIndex(i)
	return int16(readBits(l.fixedBytes(), i*16, 16))
}
func (l ListBuilder) GetInt16Element(i uint32) int16 { return l.AsReader().GetInt16Element(i) }
func (l ListBuilder) SetInt16Element(i uint32, v int16) {
	l.AsReader().checkIndex(i)
	writeBits(l.fixedBytes(), i*16, 16, uint64(uint16(v)))
}

func (l ListReader) GetUint32Element(i uint32) uint32 {
	l.checkIndex(i)
	return uint32(readBits(l.fixedBytes(), i*32, 32))
}
func (l ListBuilder) GetUint32Element(i uint32) uint32 { return l.AsReader().GetUint32Element(i) }
func (l ListBuilder) SetUint32Element(i uint32, v uint32) {
	l.AsReader().checkIndex(i)
	writeBits(l.fixedBytes(), i*32, 32, uint64(v))
}

func (l ListReader) GetInt32Element(i uint32) int32 {
	l.checkIndex(i)
	return int32(readBits(l.fixedBytes(), i*32, 32))
}
func (l ListBuilder) GetInt32Element(i uint32) int32 { return l.AsReader().GetInt32Element(i) }
func (l ListBuilder) SetInt32Element(i uint32, v int32) {
	l.AsReader().checkIndex(i)
	writeBits(l.fixedBytes(), i*32, 32, uint64(uint32(v)))
}

func (l ListReader) GetUint64Element(i uint32) uint64 {
	l.checkIndex(i)
	return readBits(l.fixedBytes(), i*64, 64)
}
func (l ListBuilder) GetUint64Element(i uint32) uint64 { return l.AsReader().GetUint64Element(i) }
func (l ListBuilder) SetUint64Element(i uint32, v uint64) {
	l.AsReader().checkIndex(i)
	writeBits(l.fixedBytes(), i*64, 64, v)
}

func (l ListReader) GetInt64Element(i uint32) int64 {
	l.checkIndex(i)
	return int64(readBits(l.fixedBytes(), i*64, 64))
}
func (l ListBuilder) GetInt64Element(i uint32) int64 { return l.AsReader().GetInt64Element(i) }
func (l ListBuilder) SetInt64Element(i uint32, v int64) {
	l.AsReader().checkIndex(i)
	writeBits(l.fixedBytes(), i*64, 64, uint64(v))
}

func (l ListReader) GetFloat32Element(i uint32) float32 {
	l.checkIndex(i)
	return math.Float32frombits(uint32(readBits(l.fixedBytes(), i*32, 32)))
}
func (l ListBuilder) GetFloat32Element(i uint32) float32 { return l.AsReader().GetFloat32Element(i) }
func (l ListBuilder) SetFloat32Element(i uint32, v float32) {
	l.AsReader().checkIndex(i)
	writeBits(l.fixedBytes(), i*32, 32, uint64(math.Float32bits(v)))
}

func (l ListReader) GetFloat64Element(i uint32) float64 {
	l.checkIndex(i)
	return math.Float64frombits(readBits(l.fixedBytes(), i*64, 64))
}
func (l ListBuilder) GetFloat64Element(i uint32) float64 { return l.AsReader().GetFloat64Element(i) }
func (l ListBuilder) SetFloat64Element(i uint32, v float64) {
	l.AsReader().checkIndex(i)
	writeBits(l.fixedBytes(), i*64, 64, math.Float64bits(v))
}

func (l ListReader) GetUint16RawElement(i uint32) uint16 { return l.GetUint16Element(i) } // enum raw value
func (l ListBuilder) SetUint16RawElement(i uint32, v uint16) { l.SetUint16Element(i, v) }

// --- pointer-sized elements: nested lists, text/data blobs ------------------

func (l ListReader) elemPtrWord(i uint32) uint64 {
	l.checkIndex(i)
	if l.msg == nil {
		return 0
	}
	return l.msg.word(l.wordOffset + i)
}

func (l ListBuilder) elemPtrIdx(i uint32) uint32 {
	l.AsReader().checkIndex(i)
	return l.wordOffset + i
}

func (l ListReader) GetBlobElement(i uint32) []byte {
	dp := decodePointer(l.wordOffset+i, l.elemPtrWord(i))
	if dp.kind == pointerNull {
		return nil
	}
	return blobBytes(l.msg, dp)
}
func (l ListBuilder) GetBlobElement(i uint32) []byte { return l.AsReader().GetBlobElement(i) }

func (l ListBuilder) InitBlobElement(i uint32, size uint32) []byte {
	nwords := wordsForBytes(size)
	target := l.msg.Alloc(nwords)
	idx := l.elemPtrIdx(i)
	l.msg.setWord(idx, encodeListPointer(idx, target, SizeByte, size))
	return l.msg.byteSlice(target, nwords)[:size]
}
func (l ListBuilder) SetBlobElement(i uint32, content []byte) {
	dst := l.InitBlobElement(i, uint32(len(content)))
	copy(dst, content)
}

func (l ListReader) GetListElement(i uint32) ListReader {
	dp := decodePointer(l.wordOffset+i, l.elemPtrWord(i))
	return listReaderFromPointer(l.msg, dp)
}
func (l ListBuilder) GetListElement(i uint32) ListBuilder {
	dp := decodePointer(l.wordOffset+i, l.AsReader().elemPtrWord(i))
	return listBuilderFromPointer(l.msg, dp)
}
func (l ListBuilder) InitListElement(i uint32, elemSize FieldSize, count uint32) ListBuilder {
	nwords := listBodyWords(elemSize, count, StructSize{})
	target := l.msg.Alloc(nwords)
	idx := l.elemPtrIdx(i)
	l.msg.setWord(idx, encodeListPointer(idx, target, elemSize, count))
	return ListBuilder{msg: l.msg, wordOffset: target, length: count, elemSize: elemSize}
}
func (l ListBuilder) InitStructListElement(i uint32, count uint32, elemSize StructSize) ListBuilder {
	tagIdx := l.msg.Alloc(1 + count*elemSize.totalWords())
	l.msg.setWord(tagIdx, encodeTagWord(count, elemSize.DataWords, elemSize.PointerWords))
	idx := l.elemPtrIdx(i)
	l.msg.setWord(idx, encodeListPointer(idx, tagIdx, SizeInlineComposite, count*elemSize.totalWords()))
	return ListBuilder{msg: l.msg, wordOffset: tagIdx + 1, length: count, elemSize: SizeInlineComposite, structSize: elemSize}
}

// --- inline-composite (struct) elements --------------------------------------

func (l ListReader) GetStructElement(i uint32) StructReader {
	l.checkIndex(i)
	start := l.wordOffset + i*l.structSize.totalWords()
	return StructReader{msg: l.msg, wordOffset: start, dataWords: l.structSize.DataWords, pointerWords: l.structSize.PointerWords}
}
func (l ListBuilder) GetStructElement(i uint32) StructBuilder {
	l.AsReader().checkIndex(i)
	start := l.wordOffset + i*l.structSize.totalWords()
	return StructBuilder{msg: l.msg, wordOffset: start, dataWords: l.structSize.DataWords, pointerWords: l.structSize.PointerWords}
}

// --- element kind / geometry introspection, used by dynamic ------------------

func (l ListReader) ElemSize() FieldSize    { return l.elemSize }
func (l ListBuilder) ElemSize() FieldSize   { return l.elemSize }
func (l ListReader) ElemStructSize() StructSize  { return l.structSize }
func (l ListBuilder) ElemStructSize() StructSize { return l.structSize }
