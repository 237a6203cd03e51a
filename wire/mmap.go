package wire

import (
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// MappedMessage is a read-only Message backed directly by an mmap'd file,
// avoiding a full copy into the process heap for large messages. Callers
// must call Close when done; the underlying Message stays valid only until
// then.
type MappedMessage struct {
	*Message
	mapping mmap.MMap
	file    *os.File
}

// OpenMappedMessage maps path read-only and wraps it as a Message. The file
// length must be word-aligned, same as NewMessageFromBytes.
func OpenMappedMessage(path string) (*MappedMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "wire: open message file")
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "wire: mmap message file")
	}
	if len(m)%wordBytes != 0 {
		m.Unmap()
		f.Close()
		return nil, errors.Errorf("wire: mapped file %q length %d is not word-aligned", path, len(m))
	}
	return &MappedMessage{
		Message: &Message{buf: []byte(m)},
		mapping: m,
		file:    f,
	}, nil
}

// Close unmaps the file and releases its descriptor. The wrapped Message
// (and anything still reading through it) becomes invalid.
func (mm *MappedMessage) Close() error {
	if err := mm.mapping.Unmap(); err != nil {
		mm.file.Close()
		return errors.Wrap(err, "wire: munmap message file")
	}
	return mm.file.Close()
}
