package interp

import "github.com/dolthub/swiss"

// Class is a runtime class value: a name and a method table. Calling a
// Class yields a fresh Instance; this core models no superclass or
// inheritance.
type Class struct {
	Name    string
	Methods *swiss.Map[string, *Function]
}

var _ Callable = (*Class)(nil)

func (c *Class) Type() string   { return "class" }
func (c *Class) String() string { return c.Name }

// Arity is always 0: this core has no constructor/initializer method.
func (c *Class) Arity() int { return 0 }

// Call instantiates c. The instance starts with an empty property map;
// e.g. `let p = Point(); p.x = 3;` assigns properties after the fact.
func (c *Class) Call(in *Interpreter, args []Value) Value {
	return &Instance{Class: c, Fields: swiss.NewMap[string, Value](4)}
}

// findMethod looks up name in the class's method table, used by Instance.Get
// when the name is not a field.
func (c *Class) findMethod(name string) (*Function, bool) {
	return c.Methods.Get(name)
}

// Instance is a runtime object: a reference to its class plus its own
// property map. Property read looks first in the property map, then in
// the class method table; property write always goes to the property map.
type Instance struct {
	Class  *Class
	Fields *swiss.Map[string, Value]
}

func (i *Instance) Type() string   { return "instance" }
func (i *Instance) String() string { return i.Class.Name + " instance" }

// Get looks up a property by name. Note that a method returned here is not
// bound to i: this core does not bind `self` to the receiver, so a method
// value detached from its instance and called later will not see that
// instance's fields.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields.Get(name); ok {
		return v, true
	}
	if m, ok := i.Class.findMethod(name); ok {
		return m, true
	}
	return nil, false
}

// Set always writes the instance's own field map, shadowing a method of the
// same name if one exists in the class.
func (i *Instance) Set(name string, val Value) {
	i.Fields.Put(name, val)
}
