package schema

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveAndLoadCompressedFileRoundTrip(t *testing.T) {
	assert := assert.New(t)

	p := NewPool(nil)
	assert.NoError(p.AddNoCopy(personNode()))

	path := filepath.Join(t.TempDir(), "pool.schema")
	assert.NoError(SaveCompressedFile(p, path))

	loaded, err := LoadCompressedFile(path, nil)
	assert.NoError(err)
	assert.True(loaded.Has(1))

	m, ok := loaded.FindMemberByName(1, "name")
	assert.True(ok)
	assert.Equal(KindText, m.Field.Type.Kind)
}

func TestFingerprintIsOrderIndependent(t *testing.T) {
	assert := assert.New(t)

	other := &Node{ID: 2, Name: "Other", Kind: StructNode, Struct: &StructBody{}}

	p1 := NewPool(nil)
	assert.NoError(p1.AddNoCopy(personNode()))
	assert.NoError(p1.AddNoCopy(other))

	p2 := NewPool(nil)
	assert.NoError(p2.AddNoCopy(other))
	assert.NoError(p2.AddNoCopy(personNode()))

	assert.Equal(p1.Fingerprint(), p2.Fingerprint())
}
