package dynamic

import "github.com/Nader-Sl/capnproto/schema"

// Enum is a (schema, raw value) pair.
type Enum struct {
	pool *schema.Pool
	node *schema.Node // enum node
	raw  uint16
}

func NewEnum(pool *schema.Pool, node *schema.Node, raw uint16) Enum {
	return Enum{pool: pool, node: node, raw: raw}
}

func (e Enum) Raw() uint16 { return e.raw }

// Node returns the enum's schema node, for callers that need its id.
func (e Enum) Node() *schema.Node { return e.node }

// GetEnumerant returns the enumerant at index raw, or false if raw is out
// of range for the schema (e.g. data encoded against a newer enum with
// more enumerants than this pool knows about).
func (e Enum) GetEnumerant() (*schema.Enumerant, bool) {
	if e.node == nil || e.node.Enum == nil {
		return nil, false
	}
	ents := e.node.Enum.Enumerants
	if int(e.raw) >= len(ents) {
		return nil, false
	}
	return ents[e.raw], true
}

func (e Enum) FindEnumerantByName(name string) (*schema.Enumerant, bool) {
	if e.node == nil {
		return nil, false
	}
	return e.pool.FindEnumerantByName(e.node.ID, name)
}

// As verifies requestedTypeID against the enum's own schema id; on
// mismatch it logs a recoverable input-validation failure but still
// returns the raw value anyway.
func (e Enum) As(requestedTypeID uint64) uint16 {
	if e.node == nil || e.node.ID != requestedTypeID {
		logInputValidation("DynamicEnum.As(%d): schema id mismatch (enum belongs to %d)", requestedTypeID, e.nodeID())
	}
	return e.raw
}

func (e Enum) nodeID() uint64 {
	if e.node == nil {
		return 0
	}
	return e.node.ID
}
