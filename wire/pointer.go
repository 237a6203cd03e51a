package wire

import "github.com/pkg/errors"

// pointer tags, matching the low 2 bits of every pointer word in the real
// Cap'n Proto wire format.
const (
	tagStruct = 0
	tagList   = 1
	tagFar    = 2
	tagOther  = 3
)

// ErrFarPointer describes the far-pointer case. Multi-segment messages are
// out of scope for this module; a far pointer can only appear in a message
// this runtime did not itself produce. No function in this package returns
// ErrFarPointer: decodePointer marks a far pointer as pointerFar, and the
// accessors then read it as an empty struct, list or blob.
var ErrFarPointer = errors.New("wire: far pointers are not supported (single-segment messages only)")

type pointerKind uint8

const (
	pointerNull pointerKind = iota
	pointerStruct
	pointerList
	pointerFar
	pointerOther
)

type decodedPointer struct {
	kind pointerKind

	// struct
	dataWords    uint16
	pointerWords uint16

	// list
	elemSize   FieldSize
	elemCount  uint32 // element count, or word count for inline-composite

	// absolute word index of the pointed-to region's first word
	target uint32
}

func decodePointer(selfWordIdx uint32, word uint64) decodedPointer {
	if word == 0 {
		return decodedPointer{kind: pointerNull}
	}
	tag := word & 0x3
	offset := int32(int64(word) << 32 >> 34) // sign-extend bits [2:31]
	target := uint32(int64(selfWordIdx) + 1 + int64(offset))

	switch tag {
	case tagStruct:
		return decodedPointer{
			kind:         pointerStruct,
			dataWords:    uint16(word >> 32),
			pointerWords: uint16(word >> 48),
			target:       target,
		}
	case tagList:
		return decodedPointer{
			kind:      pointerList,
			elemSize:  FieldSize((word >> 32) & 0x7),
			elemCount: uint32(word >> 35),
			target:    target,
		}
	case tagFar:
		return decodedPointer{kind: pointerFar}
	default:
		return decodedPointer{kind: pointerOther}
	}
}

func encodeStructPointer(selfWordIdx, targetWordIdx uint32, dataWords, pointerWords uint16) uint64 {
	offset := int64(targetWordIdx) - int64(selfWordIdx) - 1
	word := (uint64(offset) & 0x3FFFFFFF) << 2
	word |= uint64(dataWords) << 32
	word |= uint64(pointerWords) << 48
	word |= tagStruct
	return word
}

func encodeListPointer(selfWordIdx, targetWordIdx uint32, esize FieldSize, count uint32) uint64 {
	offset := int64(targetWordIdx) - int64(selfWordIdx) - 1
	word := (uint64(offset) & 0x3FFFFFFF) << 2
	word |= uint64(esize) << 32
	word |= uint64(count) << 35
	word |= tagList
	return word
}
