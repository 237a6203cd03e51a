package dynamic

import (
	"github.com/pkg/errors"

	"github.com/Nader-Sl/capnproto/schema"
	"github.com/Nader-Sl/capnproto/wire"
)

// GetRoot decodes msg's root pointer as typeID's struct type. typeID
// must already be registered in pool.
func GetRoot(msg *wire.Message, pool *schema.Pool, typeID uint64) (StructReader, error) {
	node, err := pool.GetStruct(typeID)
	if err != nil {
		return StructReader{}, errors.Wrap(err, "dynamic.GetRoot")
	}
	return StructReader{pool: pool, node: node, w: msg.Root()}, nil
}

// InitRoot allocates a fresh typeID struct at msg's root. msg must not
// already have allocated words other than a previous root.
func InitRoot(msg *wire.Message, pool *schema.Pool, typeID uint64) (StructBuilder, error) {
	node, err := pool.GetStruct(typeID)
	if err != nil {
		return StructBuilder{}, errors.Wrap(err, "dynamic.InitRoot")
	}
	sb := msg.InitRoot(node.Struct.Size())
	return StructBuilder{pool: pool, node: node, w: sb}, nil
}

// GetRootBuilder decodes msg's already-initialized root pointer for
// writing.
func GetRootBuilder(msg *wire.Message, pool *schema.Pool, typeID uint64) (StructBuilder, error) {
	node, err := pool.GetStruct(typeID)
	if err != nil {
		return StructBuilder{}, errors.Wrap(err, "dynamic.GetRootBuilder")
	}
	return StructBuilder{pool: pool, node: node, w: msg.RootBuilder()}, nil
}
