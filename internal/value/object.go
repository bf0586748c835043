package value

import "fmt"

// Object owns a Nametable and carries the class Identifier it was
// constructed from (spec §3). It is created by invoking a Constructor
// (spec §4.5): the fresh call frame becomes the Object's Nametable, and
// the Object is pushed on the operand stack in place of any return value.
type Object struct {
	Class Identifier
	Table *Nametable
}

// NewObject wraps table as an Object of the given class.
func NewObject(class Identifier, table *Nametable) *Object {
	return &Object{Class: class, Table: table}
}

func (*Object) Kind() Kind { return KindObject }
func (o *Object) Copy() Value {
	return o
}
func (o *Object) Print() string { return fmt.Sprintf("%v{...}", string(o.Class)) }
func (o *Object) DebugString(x Extensiveness) string {
	switch x {
	case Type:
		return "Object"
	case Full:
		fields := o.Table.Identifiers()
		return fmt.Sprintf("Object(%v, fields=%v)", string(o.Class), fields)
	default:
		return o.Print()
	}
}
func (o *Object) Equals(other Value) bool {
	other2, ok := other.(*Object)
	return ok && other2 == o
}
func (o *Object) Compare(other Value) (int, error) { return 0, errIncomparable(o, other) }

// Field reads the value bound to id in the object's nametable (spec
// §4.5's `:` primitive). ok is false if id is unbound.
func (o *Object) Field(id Identifier) (Value, bool) { return o.Table.Get(id) }

// SetField binds id to v in the object's nametable (spec §4.5's `:=`
// primitive).
func (o *Object) SetField(id Identifier, v Value) { o.Table.Put(id, v) }
