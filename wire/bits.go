package wire

import "encoding/binary"

// readBits reads a width-bit (0, 1, 8, 16, 32 or 64) field at the given bit
// offset out of data, returning 0 if the field falls past the end of data —
// this is what makes an absent or short struct read back as the schema's
// default rather than panicking.
func readBits(data []byte, bitOffset, width uint32) uint64 {
	switch width {
	case 0:
		return 0
	case 1:
		byteIdx := bitOffset / 8
		if int(byteIdx) >= len(data) {
			return 0
		}
		bit := bitOffset % 8
		return uint64((data[byteIdx] >> bit) & 1)
	case 8:
		byteIdx := bitOffset / 8
		if int(byteIdx) >= len(data) {
			return 0
		}
		return uint64(data[byteIdx])
	case 16:
		byteIdx := bitOffset / 8
		if int(byteIdx)+2 > len(data) {
			return 0
		}
		return uint64(binary.LittleEndian.Uint16(data[byteIdx:]))
	case 32:
		byteIdx := bitOffset / 8
		if int(byteIdx)+4 > len(data) {
			return 0
		}
		return uint64(binary.LittleEndian.Uint32(data[byteIdx:]))
	case 64:
		byteIdx := bitOffset / 8
		if int(byteIdx)+8 > len(data) {
			return 0
		}
		return binary.LittleEndian.Uint64(data[byteIdx:])
	default:
		return 0
	}
}

// writeBits writes a width-bit field at the given bit offset into data. The
// caller must ensure data is large enough; builders always allocate a data
// section sized exactly to the struct's schema, so this never needs to grow
// anything.
func writeBits(data []byte, bitOffset, width uint32, value uint64) {
	switch width {
	case 0:
		return
	case 1:
		byteIdx := bitOffset / 8
		bit := bitOffset % 8
		if value&1 != 0 {
			data[byteIdx] |= 1 << bit
		} else {
			data[byteIdx] &^= 1 << bit
		}
	case 8:
		data[bitOffset/8] = byte(value)
	case 16:
		binary.LittleEndian.PutUint16(data[bitOffset/8:], uint16(value))
	case 32:
		binary.LittleEndian.PutUint32(data[bitOffset/8:], uint32(value))
	case 64:
		binary.LittleEndian.PutUint64(data[bitOffset/8:], value)
	}
}
