package wire

// Word 0 of the segment is reserved as the message's root pointer, the
// same single-root convention every cap'n-proto-style wire format uses
// to give a reader a place to start without an out-of-band length or
// type tag.

// InitRoot reserves word 0 as the root pointer (if not already
// reserved) and allocates a fresh struct of size, wiring the root
// pointer at it. Must be called before any other allocation on a newly
// constructed Message — calling it a second time discards the previous
// root's pointer word but leaves the old struct's words allocated and
// unreachable.
func (m *Message) InitRoot(size StructSize) StructBuilder {
	if m.WordCount() == 0 {
		m.Alloc(1)
	}
	target := m.Alloc(size.totalWords())
	m.setWord(0, encodeStructPointer(0, target, size.DataWords, size.PointerWords))
	return StructBuilder{msg: m, wordOffset: target, dataWords: size.DataWords, pointerWords: size.PointerWords}
}

// Root decodes the root pointer for reading. An empty or null-rooted
// message yields the canonical zero StructReader.
func (m *Message) Root() StructReader {
	if m.WordCount() == 0 {
		return StructReader{}
	}
	dp := decodePointer(0, m.word(0))
	if dp.kind == pointerNull {
		return StructReader{}
	}
	return StructReader{msg: m, wordOffset: dp.target, dataWords: dp.dataWords, pointerWords: dp.pointerWords}
}

// RootBuilder decodes the root pointer for writing, assuming InitRoot
// already ran.
func (m *Message) RootBuilder() StructBuilder {
	r := m.Root()
	return StructBuilder{msg: r.msg, wordOffset: r.wordOffset, dataWords: r.dataWords, pointerWords: r.pointerWords}
}
