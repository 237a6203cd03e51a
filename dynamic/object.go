package dynamic

import (
	"github.com/Nader-Sl/capnproto/schema"
	"github.com/Nader-Sl/capnproto/wire"
)

// ObjectReader is an AnyPointer field read with schema knowledge supplied
// at access time rather than baked into the field's declared type. A
// null pointer degrades to an empty reader of whatever
// kind is requested; a kind mismatch is a recoverable input-validation
// failure that degrades the same way.
type ObjectReader struct {
	pool *schema.Pool
	w    wire.ObjectReader
}

type ObjectBuilder struct {
	pool *schema.Pool
	w    wire.ObjectBuilder
}

func (o ObjectReader) IsNull() bool  { return o.w.IsNull() }
func (o ObjectBuilder) IsNull() bool { return o.w.IsNull() }

func (o ObjectBuilder) AsReader() ObjectReader {
	return ObjectReader{pool: o.pool, w: o.w.AsReader()}
}

// ToStruct reinterprets the object as node's struct type. A non-struct
// pointer (and a null one) both yield the canonical empty StructReader;
// only the non-null, wrong-kind case is logged.
func (o ObjectReader) ToStruct(node *schema.Node) StructReader {
	if o.w.IsNull() {
		return StructReader{pool: o.pool, node: node}
	}
	if o.w.Kind() != wire.ObjectStruct {
		logInputValidation("Object.ToStruct: object does not hold a struct")
		return StructReader{pool: o.pool, node: node}
	}
	return StructReader{pool: o.pool, node: node, w: o.w.ToStruct()}
}

// ToList reinterprets the object as a list of elem, per the ListSchema
// derived from elem.
func (o ObjectReader) ToList(elem schema.Type) ListReader {
	ls := schema.ListSchemaOf(elem)
	if o.w.IsNull() {
		return newListReader(o.pool, ls, elem, wire.ListReader{})
	}
	if o.w.Kind() != wire.ObjectList {
		logInputValidation("Object.ToList: object does not hold a list")
		return newListReader(o.pool, ls, elem, wire.ListReader{})
	}
	return newListReader(o.pool, ls, elem, o.w.ToList())
}

// ToBlob reinterprets the object as a Text or Data byte list.
func (o ObjectReader) ToBlob() []byte {
	if o.w.IsNull() {
		return nil
	}
	b := o.w.ToBlob()
	if b == nil {
		logInputValidation("Object.ToBlob: object does not hold a byte list")
	}
	return b
}

func (o ObjectBuilder) ToStruct(node *schema.Node) StructBuilder {
	if o.w.AsReader().Kind() != wire.ObjectStruct {
		return StructBuilder{}
	}
	return StructBuilder{pool: o.pool, node: node, w: o.w.ToStruct()}
}

func (o ObjectBuilder) ToList(elem schema.Type) ListBuilder {
	if o.w.AsReader().Kind() != wire.ObjectList {
		return ListBuilder{}
	}
	ls := schema.ListSchemaOf(elem)
	return newListBuilder(o.pool, ls, elem, o.w.ToList())
}
