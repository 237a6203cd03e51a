package wire

import (
	"math"

	"github.com/Nader-Sl/capnproto/d"
)

// StructReader is a cursor over one struct's data and pointer sections. The
// zero value is a valid empty struct (every data field reads back as its
// default, every pointer field as null) — this is what lets a null object
// pointer degrade to a zero-initialized reader rather than panicking.
type StructReader struct {
	msg          *Message
	wordOffset   uint32
	dataWords    uint16
	pointerWords uint16
}

type StructBuilder struct {
	msg          *Message
	wordOffset   uint32
	dataWords    uint16
	pointerWords uint16
}

func (s StructBuilder) AsReader() StructReader {
	return StructReader{s.msg, s.wordOffset, s.dataWords, s.pointerWords}
}

func (s StructReader) dataBytes() []byte {
	if s.msg == nil {
		return nil
	}
	return s.msg.byteSlice(s.wordOffset, uint32(s.dataWords))
}

func (s StructBuilder) dataBytes() []byte {
	return s.msg.byteSlice(s.wordOffset, uint32(s.dataWords))
}

func (s StructReader) ptrWord(index uint32) uint64 {
	if s.msg == nil || index >= uint32(s.pointerWords) {
		return 0
	}
	return s.msg.word(s.wordOffset + uint32(s.dataWords) + index)
}

func (s StructBuilder) ptrWordIdx(index uint32) uint32 {
	d.PanicIfFalse(index < uint32(s.pointerWords), "wire: pointer index %d out of range (have %d)", index, s.pointerWords)
	return s.wordOffset + uint32(s.dataWords) + index
}

func (s StructBuilder) ptrWord(index uint32) uint64 {
	return s.msg.word(s.ptrWordIdx(index))
}

// ptrWordIdx is the absolute word index a pointer-section field would live
// at, whether or not that field is actually present — decodePointer treats
// a zero word as null regardless of the self index passed in, so it is safe
// to compute this even past the struct's declared pointer-section length.
func (s StructReader) ptrWordIdx(index uint32) uint32 {
	return s.wordOffset + uint32(s.dataWords) + index
}

// --- primitive data fields -------------------------------------------------
//
// offset is an element index: for Bool it is a bit index directly, for
// everything else it is multiplied by the type's bit width. mask is the
// field's declared default, applied by XOR against the raw stored bits.

func (s StructReader) GetBool(offset uint32, mask bool) bool {
	raw := readBits(s.dataBytes(), offset, 1)
	return (raw^b2u(mask))&1 != 0
}
func (s StructBuilder) GetBool(offset uint32, mask bool) bool { return s.AsReader().GetBool(offset, mask) }
func (s StructBuilder) SetBool(offset uint32, v, mask bool) {
	writeBits(s.dataBytes(), offset, 1, b2u(v)^b2u(mask))
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func (s StructReader) GetUint8(offset uint32, mask uint8) uint8 {
	return uint8(readBits(s.dataBytes(), offset*8, 8)) ^ mask
}
func (s StructBuilder) GetUint8(offset uint32, mask uint8) uint8 { return s.AsReader().GetUint8(offset, mask) }
func (s StructBuilder) SetUint8(offset uint32, v, mask uint8) {
	writeBits(s.dataBytes(), offset*8, 8, uint64(v^mask))
}

func (s StructReader) GetInt8(offset uint32, mask int8) int8 {
	return int8(readBits(s.dataBytes(), offset*8, 8)) ^ mask
}
func (s StructBuilder) GetInt8(offset uint32, mask int8) int8 { return s.AsReader().GetInt8(offset, mask) }
func (s StructBuilder) SetInt8(offset uint32, v, mask int8) {
	writeBits(s.dataBytes(), offset*8, 8, uint64(uint8(v^mask)))
}

func (s StructReader) GetUint16(offset uint32, mask uint16) uint16 {
	return uint16(readBits(s.dataBytes(), offset*16, 16)) ^ mask
}
func (s StructBuilder) GetUint16(offset uint32, mask uint16) uint16 { return s.AsReader().GetUint16(offset, mask) }
func (s StructBuilder) SetUint16(offset uint32, v, mask uint16) {
	writeBits(s.dataBytes(), offset*16, 16, uint64(v^mask))
}

func (s StructReader) GetInt16(offset uint32, mask int16) int16 {
	return int16(readBits(s.dataBytes(), offset*16, 16)) ^ mask
}
func (s StructBuilder) GetInt16(offset uint32, mask int16) int16 { return s.AsReader().GetInt16(offset, mask) }
func (s StructBuilder) SetInt16(offset uint32, v, mask int16) {
	writeBits(s.dataBytes(), offset*16, 16, uint64(uint16(v^mask)))
}

func (s StructReader) GetUint32(offset uint32, mask uint32) uint32 {
	return uint32(readBits(s.dataBytes(), offset*32, 32)) ^ mask
}
func (s StructBuilder) GetUint32(offset uint32, mask uint32) uint32 { return s.AsReader().GetUint32(offset, mask) }
func (s StructBuilder) SetUint32(offset uint32, v, mask uint32) {
	writeBits(s.dataBytes(), offset*32, 32, uint64(v^mask))
}

func (s StructReader) GetInt32(offset uint32, mask int32) int32 {
	return int32(readBits(s.dataBytes(), offset*32, 32)) ^ mask
}
func (s StructBuilder) GetInt32(offset uint32, mask int32) int32 { return s.AsReader().GetInt32(offset, mask) }
func (s StructBuilder) SetInt32(offset uint32, v, mask int32) {
	writeBits(s.dataBytes(), offset*32, 32, uint64(uint32(v^mask)))
}

func (s StructReader) GetUint64(offset uint32, mask uint64) uint64 {
	return readBits(s.dataBytes(), offset*64, 64) ^ mask
}
func (s StructBuilder) GetUint64(offset uint32, mask uint64) uint64 { return s.AsReader().GetUint64(offset, mask) }
func (s StructBuilder) SetUint64(offset uint32, v, mask uint64) {
	writeBits(s.dataBytes(), offset*64, 64, v^mask)
}

func (s StructReader) GetInt64(offset uint32, mask int64) int64 {
	return int64(readBits(s.dataBytes(), offset*64, 64)) ^ mask
}
func (s StructBuilder) GetInt64(offset uint32, mask int64) int64 { return s.AsReader().GetInt64(offset, mask) }
func (s StructBuilder) SetInt64(offset uint32, v, mask int64) {
	writeBits(s.dataBytes(), offset*64, 64, uint64(v^mask))
}

// Float masks are the raw IEEE-754 bit pattern of the declared default,
// never a float arithmetic operation.

func (s StructReader) GetFloat32(offset uint32, maskBits uint32) float32 {
	raw := uint32(readBits(s.dataBytes(), offset*32, 32)) ^ maskBits
	return math.Float32frombits(raw)
}
func (s StructBuilder) GetFloat32(offset uint32, maskBits uint32) float32 {
	return s.AsReader().GetFloat32(offset, maskBits)
}
func (s StructBuilder) SetFloat32(offset uint32, v float32, maskBits uint32) {
	writeBits(s.dataBytes(), offset*32, 32, uint64(math.Float32bits(v)^maskBits))
}

func (s StructReader) GetFloat64(offset uint32, maskBits uint64) float64 {
	raw := readBits(s.dataBytes(), offset*64, 64) ^ maskBits
	return math.Float64frombits(raw)
}
func (s StructBuilder) GetFloat64(offset uint32, maskBits uint64) float64 {
	return s.AsReader().GetFloat64(offset, maskBits)
}
func (s StructBuilder) SetFloat64(offset uint32, v float64, maskBits uint64) {
	writeBits(s.dataBytes(), offset*64, 64, math.Float64bits(v)^maskBits)
}

func (s StructReader) GetVoid(uint32) struct{}          { return struct{}{} }
func (s StructBuilder) GetVoid(uint32) struct{}          { return struct{}{} }
func (s StructBuilder) SetVoid(uint32, struct{})         {}

// --- blob fields (Text/Data), pointer-section index ------------------------

func wordsForBytes(n uint32) uint32 { return (n + 7) / 8 }

func (s StructReader) GetBlobField(index uint32, defaultBytes []byte) []byte {
	dp := decodePointer(s.ptrWordIdx(index), s.ptrWord(index))
	if dp.kind == pointerNull {
		return defaultBytes
	}
	return blobBytes(s.msg, dp)
}

func (s StructBuilder) GetBlobField(index uint32, defaultBytes []byte) []byte {
	return s.AsReader().GetBlobField(index, defaultBytes)
}

func blobBytes(m *Message, dp decodedPointer) []byte {
	n := wordsForBytes(dp.elemCount)
	b := m.byteSlice(dp.target, n)
	if b == nil {
		return nil
	}
	return b[:dp.elemCount]
}

func (s StructBuilder) InitBlobField(index uint32, size uint32) []byte {
	nwords := wordsForBytes(size)
	target := s.msg.Alloc(nwords)
	selfIdx := s.ptrWordIdx(index)
	s.msg.setWord(selfIdx, encodeListPointer(selfIdx, target, SizeByte, size))
	return s.msg.byteSlice(target, nwords)[:size]
}

func (s StructBuilder) SetBlobField(index uint32, content []byte) {
	dst := s.InitBlobField(index, uint32(len(content)))
	copy(dst, content)
}

// --- struct fields -----------------------------------------------------------

func (s StructReader) GetStructField(index uint32) StructReader {
	dp := decodePointer(s.ptrWordIdx(index), s.ptrWord(index))
	if dp.kind == pointerNull {
		return StructReader{}
	}
	return StructReader{msg: s.msg, wordOffset: dp.target, dataWords: dp.dataWords, pointerWords: dp.pointerWords}
}

func (s StructBuilder) GetStructField(index uint32, size StructSize) StructBuilder {
	dp := decodePointer(s.ptrWordIdx(index), s.ptrWord(index))
	if dp.kind == pointerNull {
		return s.InitStructField(index, size)
	}
	return StructBuilder{msg: s.msg, wordOffset: dp.target, dataWords: dp.dataWords, pointerWords: dp.pointerWords}
}

func (s StructBuilder) InitStructField(index uint32, size StructSize) StructBuilder {
	target := s.msg.Alloc(size.totalWords())
	selfIdx := s.ptrWordIdx(index)
	s.msg.setWord(selfIdx, encodeStructPointer(selfIdx, target, size.DataWords, size.PointerWords))
	return StructBuilder{msg: s.msg, wordOffset: target, dataWords: size.DataWords, pointerWords: size.PointerWords}
}

// --- list fields -------------------------------------------------------------

func (s StructReader) GetListField(index uint32) ListReader {
	dp := decodePointer(s.ptrWordIdx(index), s.ptrWord(index))
	return listReaderFromPointer(s.msg, dp)
}

func listReaderFromPointer(m *Message, dp decodedPointer) ListReader {
	if dp.kind == pointerNull {
		return ListReader{}
	}
	if dp.elemSize == SizeInlineComposite {
		tagWord := m.word(dp.target)
		count, dataWords, pointerWords := decodeTagWord(tagWord)
		return ListReader{
			msg: m, wordOffset: dp.target + 1, length: count,
			elemSize:   SizeInlineComposite,
			structSize: StructSize{DataWords: dataWords, PointerWords: pointerWords},
		}
	}
	return ListReader{msg: m, wordOffset: dp.target, length: dp.elemCount, elemSize: dp.elemSize}
}

func (s StructBuilder) GetListField(index uint32) ListBuilder {
	dp := decodePointer(s.ptrWordIdx(index), s.ptrWord(index))
	return listBuilderFromPointer(s.msg, dp)
}

func listBuilderFromPointer(m *Message, dp decodedPointer) ListBuilder {
	r := listReaderFromPointer(m, dp)
	return ListBuilder{msg: r.msg, wordOffset: r.wordOffset, length: r.length, elemSize: r.elemSize, structSize: r.structSize}
}

func (s StructBuilder) InitListField(index uint32, elemSize FieldSize, count uint32) ListBuilder {
	nwords := listBodyWords(elemSize, count, StructSize{})
	target := s.msg.Alloc(nwords)
	selfIdx := s.ptrWordIdx(index)
	s.msg.setWord(selfIdx, encodeListPointer(selfIdx, target, elemSize, count))
	return ListBuilder{msg: s.msg, wordOffset: target, length: count, elemSize: elemSize}
}

func (s StructBuilder) InitStructListField(index uint32, count uint32, elemSize StructSize) ListBuilder {
	tagIdx := s.msg.Alloc(1 + count*elemSize.totalWords())
	s.msg.setWord(tagIdx, encodeTagWord(count, elemSize.DataWords, elemSize.PointerWords))
	selfIdx := s.ptrWordIdx(index)
	s.msg.setWord(selfIdx, encodeListPointer(selfIdx, tagIdx, SizeInlineComposite, count*elemSize.totalWords()))
	return ListBuilder{msg: s.msg, wordOffset: tagIdx + 1, length: count, elemSize: SizeInlineComposite, structSize: elemSize}
}

func listBodyWords(elemSize FieldSize, count uint32, structSize StructSize) uint32 {
	if elemSize == SizeInlineComposite {
		return count * structSize.totalWords()
	}
	bits := uint64(elemSize.bitWidth()) * uint64(count)
	return uint32((bits + 63) / 64)
}

// --- object (untyped pointer) fields ----------------------------------------

func (s StructReader) GetObjectField(index uint32) ObjectReader {
	return ObjectReader{msg: s.msg, ptr: decodePointer(s.ptrWordIdx(index), s.ptrWord(index))}
}

func (s StructBuilder) GetObjectField(index uint32) ObjectBuilder {
	idx := s.ptrWordIdx(index)
	return ObjectBuilder{msg: s.msg, selfIdx: idx, ptr: decodePointer(idx, s.ptrWord(index))}
}
