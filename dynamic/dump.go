package dynamic

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/Nader-Sl/capnproto/schema"
)

// Dump renders a Value as a nested Go literal tree for debugging, via
// go-spew — struct and list values are first unpacked into plain maps
// and slices so the dump reflects the schema-described shape rather
// than this package's internal tagged-union representation.
func Dump(v Value) string {
	return spew.Sdump(toPlain(v))
}

func toPlain(v Value) interface{} {
	switch v.Kind() {
	case schema.KindVoid:
		return nil
	case schema.KindBool:
		return v.AsBool()
	case schema.KindInt8, schema.KindInt16, schema.KindInt32, schema.KindInt64:
		return v.i
	case schema.KindUint8, schema.KindUint16, schema.KindUint32, schema.KindUint64:
		return v.u
	case schema.KindFloat32:
		return v.AsFloat32()
	case schema.KindFloat64:
		return v.AsFloat64()
	case schema.KindText:
		return v.AsText()
	case schema.KindData:
		return v.AsData()
	case schema.KindEnum:
		e := v.AsEnum()
		if ent, ok := e.GetEnumerant(); ok {
			return ent.Name
		}
		return e.Raw()
	case schema.KindStruct:
		return structToPlain(v.AsStruct())
	case schema.KindList:
		return listToPlain(v.AsList())
	default:
		return nil
	}
}

func structToPlain(s StructReader) map[string]interface{} {
	out := map[string]interface{}{}
	if s.node == nil || s.node.Struct == nil {
		return out
	}
	for _, m := range s.node.Struct.Members {
		switch m.Kind {
		case schema.FieldMember:
			out[m.Name] = toPlain(s.GetField(m.Field))
		case schema.UnionMember:
			ur := UnionReader{pool: s.pool, union: m.Union, w: s.w}
			if active, ok := ur.Which(); ok {
				out[m.Name] = map[string]interface{}{active.Name: toPlain(ur.Get())}
			}
		}
	}
	return out
}

func listToPlain(l ListReader) []interface{} {
	n := l.Len()
	out := make([]interface{}, n)
	for i := uint32(0); i < n; i++ {
		out[i] = toPlain(l.Get(i))
	}
	return out
}
