package schema

import (
	"bytes"
	"encoding/gob"
	"io/ioutil"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// poolSnapshot is the Go-native serialization of a pool's own nodes (not
// the nodes borrowed from a chained base — those are expected to be
// reloaded independently and passed back in as NewPool's base). There is
// no schema-compiler wire format in scope here, so this is a plain gob
// encoding of the Node graph.
type poolSnapshot struct {
	Nodes []*Node
}

// SaveCompressedFile writes every node registered directly on p (not
// those reachable only through a chained base) to path, snappy-compressed,
// for shipping a schema bundle alongside a compiled binary.
func SaveCompressedFile(p *Pool, path string) error {
	snap := poolSnapshot{Nodes: make([]*Node, 0, len(p.nodes))}
	for _, n := range p.nodes {
		snap.Nodes = append(snap.Nodes, n)
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return errors.Wrap(err, "schema: encode pool snapshot")
	}
	compressed := snappy.Encode(nil, buf.Bytes())
	if err := ioutil.WriteFile(path, compressed, 0644); err != nil {
		return errors.Wrap(err, "schema: write compressed schema file")
	}
	return nil
}

// LoadCompressedFile reads a file written by SaveCompressedFile and
// returns a fresh pool (chained to base, if non-nil) with every node from
// the file added via AddNoCopy.
func LoadCompressedFile(path string, base *Pool) (*Pool, error) {
	compressed, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "schema: read compressed schema file")
	}
	raw, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, errors.Wrap(err, "schema: decompress schema file")
	}

	var snap poolSnapshot
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&snap); err != nil {
		return nil, errors.Wrap(err, "schema: decode pool snapshot")
	}

	p := NewPool(base)
	for _, n := range snap.Nodes {
		if err := p.AddNoCopy(n); err != nil {
			return nil, errors.Wrapf(err, "schema: re-adding node %d from %s", n.ID, path)
		}
	}
	return p, nil
}
