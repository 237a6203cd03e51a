package schema

import (
	"reflect"

	"github.com/Nader-Sl/capnproto/errcat"
)

type memberEntry struct {
	id     uint64
	name   string
	member *Member
}

type enumerantEntry struct {
	id        uint64
	name      string
	enumerant *Enumerant
}

// Pool owns the id→node index and the name-keyed member/enumerant
// lookup indices built from every node added to it. It borrows every
// Node it holds rather than copying it, and may chain to a parent pool
// as a read-through fallback.
type Pool struct {
	base *Pool

	nodes      map[uint64]*Node
	members    map[uint64][]*memberEntry
	enumerants map[uint64][]*enumerantEntry
}

// NewPool returns an empty pool, optionally chained to base for has/get
// fallback.
func NewPool(base *Pool) *Pool {
	return &Pool{
		base:       base,
		nodes:      make(map[uint64]*Node),
		members:    make(map[uint64][]*memberEntry),
		enumerants: make(map[uint64][]*enumerantEntry),
	}
}

// idTextHash is the djb2a-seeded-with-id hash used for every (id, name)
// composite key: seed the accumulator with the id, then fold in the name
// byte by byte with (result*33) ^ c.
func idTextHash(id uint64, name string) uint64 {
	result := id
	for i := 0; i < len(name); i++ {
		result = (result<<5+result)^uint64(name[i])
	}
	return result
}

// AddNoCopy inserts one schema node and indexes its members/enumerants by
// name. Resubmitting the same id with a byte-identical node is a no-op
// success (common when a pool is assembled from overlapping schema
// files); resubmitting a different node at the same id fails, since
// checking structural compatibility between the two is not implemented —
// this module resolves that as strict-equal.
func (p *Pool) AddNoCopy(n *Node) error {
	if existing, ok := p.nodes[n.ID]; ok {
		if reflect.DeepEqual(existing, n) {
			return nil
		}
		return errcat.NotImplemented("schema compatibility check for duplicate id %d (node %q conflicts with already-registered %q)", n.ID, n.Name, existing.Name)
	}
	p.nodes[n.ID] = n

	switch n.Kind {
	case StructNode:
		for _, m := range n.Struct.Members {
			p.indexMember(n.ID, m)
		}
	case EnumNode:
		for _, e := range n.Enum.Enumerants {
			h := idTextHash(n.ID, e.Name)
			p.enumerants[h] = append(p.enumerants[h], &enumerantEntry{id: n.ID, name: e.Name, enumerant: e})
		}
	case InterfaceNode:
		// no members to index — interface nodes are stubs
	}
	return nil
}

func (p *Pool) indexMember(ownerID uint64, m *Member) {
	h := idTextHash(ownerID, m.Name)
	p.members[h] = append(p.members[h], &memberEntry{id: ownerID, name: m.Name, member: m})
	if m.Kind == UnionMember {
		for _, sub := range m.Union.Members {
			p.indexMember(ownerID, sub)
		}
	}
}

// Has reports whether id is registered locally or in a chained base pool.
func (p *Pool) Has(id uint64) bool {
	_, ok := p.lookup(id)
	return ok
}

func (p *Pool) lookup(id uint64) (*Node, bool) {
	if n, ok := p.nodes[id]; ok {
		return n, true
	}
	if p.base != nil {
		return p.base.lookup(id)
	}
	return nil, false
}

func (p *Pool) getKind(id uint64, want NodeKind, kindName string) (*Node, error) {
	n, ok := p.lookup(id)
	if !ok {
		return nil, errcat.InputValidation("schema id %d is not registered in the pool", id)
	}
	if n.Kind != want {
		return nil, errcat.InputValidation("schema id %d (%q) is not a %s node", id, n.Name, kindName)
	}
	return n, nil
}

func (p *Pool) GetStruct(id uint64) (*Node, error)    { return p.getKind(id, StructNode, "struct") }
func (p *Pool) GetEnum(id uint64) (*Node, error)       { return p.getKind(id, EnumNode, "enum") }
func (p *Pool) GetInterface(id uint64) (*Node, error)  { return p.getKind(id, InterfaceNode, "interface") }

// FindMemberByName hits the member map keyed by idTextHash(id, name),
// falling through to a chained base pool when id was registered there
// instead. String comparison is byte-exact, including length.
func (p *Pool) FindMemberByName(id uint64, name string) (*Member, bool) {
	h := idTextHash(id, name)
	for _, e := range p.members[h] {
		if e.id == id && e.name == name {
			return e.member, true
		}
	}
	if p.base != nil {
		return p.base.FindMemberByName(id, name)
	}
	return nil, false
}

func (p *Pool) FindEnumerantByName(id uint64, name string) (*Enumerant, bool) {
	h := idTextHash(id, name)
	for _, e := range p.enumerants[h] {
		if e.id == id && e.name == name {
			return e.enumerant, true
		}
	}
	if p.base != nil {
		return p.base.FindEnumerantByName(id, name)
	}
	return nil, false
}
