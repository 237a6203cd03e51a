package wire

// ObjectReader is an untyped AnyPointer field: the wire pointer has already
// been decoded, but nothing commits it to being a struct, a list or a blob
// until a caller with schema knowledge asks for one of those views. This is
// what backs the Object(Schema) dynamic-typing escape hatch.
type ObjectReader struct {
	msg *Message
	ptr decodedPointer
}

type ObjectBuilder struct {
	msg     *Message
	selfIdx uint32
	ptr     decodedPointer
}

func (o ObjectReader) IsNull() bool { return o.ptr.kind == pointerNull }
func (o ObjectBuilder) IsNull() bool { return o.ptr.kind == pointerNull }

func (o ObjectBuilder) AsReader() ObjectReader {
	return ObjectReader{msg: o.msg, ptr: o.ptr}
}

// ToStruct reinterprets the pointer as a struct. A null pointer yields the
// canonical zero-valued StructReader rather than an error — object fields
// degrade the same way typed struct fields do.
func (o ObjectReader) ToStruct() StructReader {
	if o.ptr.kind != pointerStruct {
		return StructReader{}
	}
	return StructReader{msg: o.msg, wordOffset: o.ptr.target, dataWords: o.ptr.dataWords, pointerWords: o.ptr.pointerWords}
}

func (o ObjectReader) ToList() ListReader {
	if o.ptr.kind != pointerList {
		return ListReader{}
	}
	return listReaderFromPointer(o.msg, o.ptr)
}

func (o ObjectReader) ToBlob() []byte {
	if o.ptr.kind != pointerList || o.ptr.elemSize != SizeByte {
		return nil
	}
	return blobBytes(o.msg, o.ptr)
}

func (o ObjectBuilder) ToStruct() StructBuilder {
	if o.ptr.kind != pointerStruct {
		return StructBuilder{}
	}
	return StructBuilder{msg: o.msg, wordOffset: o.ptr.target, dataWords: o.ptr.dataWords, pointerWords: o.ptr.pointerWords}
}

func (o ObjectBuilder) ToList() ListBuilder {
	if o.ptr.kind != pointerList {
		return ListBuilder{}
	}
	return listBuilderFromPointer(o.msg, o.ptr)
}

// InitAsStruct allocates a fresh struct of the given size and rewrites this
// object field's pointer word to reference it, discarding whatever was
// there before — the same "init always reallocates" contract InitStructField
// follows for typed struct fields.
func (o ObjectBuilder) InitAsStruct(size StructSize) StructBuilder {
	target := o.msg.Alloc(size.totalWords())
	o.msg.setWord(o.selfIdx, encodeStructPointer(o.selfIdx, target, size.DataWords, size.PointerWords))
	return StructBuilder{msg: o.msg, wordOffset: target, dataWords: size.DataWords, pointerWords: size.PointerWords}
}

func (o ObjectBuilder) InitAsList(elemSize FieldSize, count uint32) ListBuilder {
	nwords := listBodyWords(elemSize, count, StructSize{})
	target := o.msg.Alloc(nwords)
	o.msg.setWord(o.selfIdx, encodeListPointer(o.selfIdx, target, elemSize, count))
	return ListBuilder{msg: o.msg, wordOffset: target, length: count, elemSize: elemSize}
}

func (o ObjectBuilder) InitAsStructList(count uint32, elemSize StructSize) ListBuilder {
	tagIdx := o.msg.Alloc(1 + count*elemSize.totalWords())
	o.msg.setWord(tagIdx, encodeTagWord(count, elemSize.DataWords, elemSize.PointerWords))
	o.msg.setWord(o.selfIdx, encodeListPointer(o.selfIdx, tagIdx, SizeInlineComposite, count*elemSize.totalWords()))
	return ListBuilder{msg: o.msg, wordOffset: tagIdx + 1, length: count, elemSize: SizeInlineComposite, structSize: elemSize}
}

func (o ObjectBuilder) InitAsBlob(size uint32) []byte {
	nwords := wordsForBytes(size)
	target := o.msg.Alloc(nwords)
	o.msg.setWord(o.selfIdx, encodeListPointer(o.selfIdx, target, SizeByte, size))
	return o.msg.byteSlice(target, nwords)[:size]
}

// Kind reports which wire shape this object's pointer currently commits to,
// so the dynamic layer can decide how to dispatch without trying every
// ToXxx conversion in turn.
type ObjectKind int

const (
	ObjectNull ObjectKind = iota
	ObjectStruct
	ObjectList
)

func (o ObjectReader) Kind() ObjectKind {
	switch o.ptr.kind {
	case pointerStruct:
		return ObjectStruct
	case pointerList:
		return ObjectList
	default:
		return ObjectNull
	}
}
