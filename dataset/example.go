package dataset

import (
	"fmt"
	"strings"
)

const (
	// ClassName is the reserved attribute name holding the
	// label of an example.
	ClassName = "Class"
	// Missing is the value used to denote an unknown value
	// for an attribute. It is an ordinary value as far as
	// tree induction is concerned.
	Missing = "?"
)

/*
Example represents a labeled (or unlabeled) observation: an ordered
mapping of attribute names to values. The order of the attributes is
the order in which they were given when the example was built, and it
is the order in which a tree builder considers them.

Examples are immutable: methods that derive a new example from an
existing one return a copy and never touch the receiver.
*/
type Example struct {
	names  []string
	values map[string]string
}

/*
NewExample takes a slice of attribute names and a slice of values and
returns an example mapping each name to the value in the same position.
An error is returned if both slices have different lengths or a name
appears more than once.
*/
func NewExample(names, values []string) (Example, error) {
	if len(names) != len(values) {
		return Example{}, fmt.Errorf("building example: %d attribute names for %d values", len(names), len(values))
	}
	e := Example{
		names:  make([]string, 0, len(names)),
		values: make(map[string]string, len(names)),
	}
	for i, n := range names {
		if _, ok := e.values[n]; ok {
			return Example{}, fmt.Errorf("building example: duplicated attribute %q", n)
		}
		e.names = append(e.names, n)
		e.values[n] = values[i]
	}
	return e, nil
}

/*
ParseExample takes a sequence of name=value strings and returns an
example with those attributes in the given order, or an error if any
of them is malformed or repeated.
*/
func ParseExample(pairs ...string) (Example, error) {
	names := make([]string, 0, len(pairs))
	values := make([]string, 0, len(pairs))
	for _, p := range pairs {
		i := strings.Index(p, "=")
		if i <= 0 {
			return Example{}, fmt.Errorf("parsing example: %q is not a name=value pair", p)
		}
		names = append(names, p[:i])
		values = append(values, p[i+1:])
	}
	return NewExample(names, values)
}

// Value returns the value of the given attribute and whether
// the example defines it.
func (e Example) Value(name string) (string, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Class returns the label of the example and whether it has one.
func (e Example) Class() (string, bool) {
	return e.Value(ClassName)
}

// Names returns the names of all the attributes of the example,
// Class included, in schema order.
func (e Example) Names() []string {
	return append([]string(nil), e.names...)
}

// Attributes returns the attribute names of the example in
// schema order, excluding Class.
func (e Example) Attributes() []string {
	result := make([]string, 0, len(e.names))
	for _, n := range e.names {
		if n != ClassName {
			result = append(result, n)
		}
	}
	return result
}

// Len returns the number of attributes of the example, Class
// included.
func (e Example) Len() int {
	return len(e.names)
}

/*
Without returns a copy of the example that lacks the given attribute.
The receiver is left untouched.
*/
func (e Example) Without(name string) Example {
	result := Example{
		names:  make([]string, 0, len(e.names)),
		values: make(map[string]string, len(e.names)),
	}
	for _, n := range e.names {
		if n != name {
			result.names = append(result.names, n)
			result.values[n] = e.values[n]
		}
	}
	return result
}

/*
Project returns a copy of the example that only keeps the given
attributes (in the order they appear on the example) and Class.
Names not defined on the example are ignored.
*/
func (e Example) Project(names []string) Example {
	keep := make(map[string]bool, len(names)+1)
	for _, n := range names {
		keep[n] = true
	}
	keep[ClassName] = true
	result := Example{
		names:  make([]string, 0, len(names)+1),
		values: make(map[string]string, len(names)+1),
	}
	for _, n := range e.names {
		if keep[n] {
			result.names = append(result.names, n)
			result.values[n] = e.values[n]
		}
	}
	return result
}

// With returns a copy of the example with the given attribute set
// to the given value, appended at the end of the schema if new.
func (e Example) With(name, value string) Example {
	result := Example{
		names:  append(make([]string, 0, len(e.names)+1), e.names...),
		values: make(map[string]string, len(e.names)+1),
	}
	for k, v := range e.values {
		result.values[k] = v
	}
	if _, ok := result.values[name]; !ok {
		result.names = append(result.names, name)
	}
	result.values[name] = value
	return result
}

func (e Example) String() string {
	parts := make([]string, len(e.names))
	for i, n := range e.names {
		parts[i] = fmt.Sprintf("%s:%s", n, e.values[n])
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, " "))
}
