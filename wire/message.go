// Package wire is the word-level struct/list/blob codec that the dynamic
// reflection layer (package dynamic) drives reflectively. It is a
// deliberately thin, schema-unaware leaf, so the runtime is self-contained.
//
// A Message is a single growable segment of 8-byte words. Multi-segment
// messages and far pointers are out of scope; a single growable segment
// is the simplest arena that still exercises every dynamic operation.
package wire

import (
	"encoding/binary"

	"github.com/Nader-Sl/capnproto/d"
)

const wordBytes = 8

// Message owns one growable segment and the word-aligned allocator over it.
// It is the arena every StructReader/StructBuilder/ListReader/ListBuilder
// in a call chain borrows from.
type Message struct {
	buf []byte // always a multiple of wordBytes in length
}

// NewMessage returns an empty, writable message with no words allocated.
func NewMessage() *Message {
	return &Message{}
}

// NewMessageFromBytes wraps already-encoded bytes for reading. len(b) must
// be a multiple of 8.
func NewMessageFromBytes(b []byte) *Message {
	d.PanicIfFalse(len(b)%wordBytes == 0, "wire: message length %d is not word-aligned", len(b))
	return &Message{buf: b}
}

// Bytes returns the raw backing bytes of the message's single segment.
func (m *Message) Bytes() []byte {
	return m.buf
}

// WordCount returns the number of 8-byte words currently allocated.
func (m *Message) WordCount() uint32 {
	return uint32(len(m.buf) / wordBytes)
}

// Alloc reserves nwords fresh, zero-filled words and returns the word index
// at which they begin. Growth doubles the backing buffer.
func (m *Message) Alloc(nwords uint32) uint32 {
	start := uint32(len(m.buf)) / wordBytes
	need := len(m.buf) + int(nwords)*wordBytes
	m.ensureCapacity(need)
	m.buf = m.buf[:need]
	return start
}

func (m *Message) ensureCapacity(need int) {
	if cap(m.buf) >= need {
		return
	}
	newCap := cap(m.buf)
	if newCap == 0 {
		newCap = 64 * wordBytes
	}
	for newCap < need {
		newCap *= 2
	}
	grown := make([]byte, len(m.buf), newCap)
	copy(grown, m.buf)
	m.buf = grown
}

func (m *Message) word(idx uint32) uint64 {
	if idx >= m.WordCount() {
		return 0
	}
	return binary.LittleEndian.Uint64(m.buf[idx*wordBytes:])
}

func (m *Message) setWord(idx uint32, v uint64) {
	d.PanicIfFalse(idx < m.WordCount(), "wire: word index %d out of range (have %d words)", idx, m.WordCount())
	binary.LittleEndian.PutUint64(m.buf[idx*wordBytes:], v)
}

// byteSlice returns the raw bytes covering [wordIdx, wordIdx+nwords), for
// blob and inline-composite access. It never allocates.
func (m *Message) byteSlice(wordIdx, nwords uint32) []byte {
	start := int(wordIdx) * wordBytes
	end := start + int(nwords)*wordBytes
	if end > len(m.buf) {
		return nil
	}
	return m.buf[start:end]
}
