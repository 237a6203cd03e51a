package schema

import (
	"encoding/binary"
	"sort"

	"github.com/codahale/blake2"

	"github.com/Nader-Sl/capnproto/hash"
)

// Fingerprint computes a diagnostic, content-derived identifier over the
// set of registered node ids and each node's name, for tooling and logs to
// print a short, stable pool identity. It is never consulted for
// correctness — the pool does not compare fingerprints to decide schema
// compatibility, since that would reintroduce schema evolution checking,
// which this package does not do.
func (p *Pool) Fingerprint() [64]byte {
	ids := make([]uint64, 0, len(p.nodes))
	for id := range p.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	h := blake2.NewBlake2B()
	var idBuf [8]byte
	for _, id := range ids {
		binary.LittleEndian.PutUint64(idBuf[:], id)
		h.Write(idBuf[:])
		n := p.nodes[id]
		h.Write([]byte(n.Name))
	}

	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}

// FingerprintString is Fingerprint encoded for logs and the command line,
// where a 64-byte array is unwieldy to print directly.
func (p *Pool) FingerprintString() string {
	fp := p.Fingerprint()
	return hash.Encode(fp[:])
}
