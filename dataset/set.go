package dataset

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

/*
Set represents an ordered collection of examples.

Its methods never modify the examples it holds: subsets and
narrowed sets are new slices, and narrowed sets hold new examples.
*/
type Set []Example

/*
MalformedExampleError is the error returned when an example of a set
breaks the schema the set is expected to satisfy: it lacks the Class
attribute or its attributes differ from the ones of the first example
of the set.
*/
type MalformedExampleError struct {
	// Index is the position of the offending example in its set.
	Index int
	// Reason describes what is wrong with the example.
	Reason string
}

func (mee *MalformedExampleError) Error() string {
	return fmt.Sprintf("malformed example %d: %s", mee.Index, mee.Reason)
}

/*
Validate returns a *MalformedExampleError for the first example in
the set that lacks a Class value or whose attribute names differ from
those of the first example. It returns nil for an empty set.
*/
func (s Set) Validate() error {
	if len(s) == 0 {
		return nil
	}
	schema := make(map[string]bool, s[0].Len())
	for _, n := range s[0].Names() {
		schema[n] = true
	}
	for i, e := range s {
		if _, ok := e.Class(); !ok {
			return &MalformedExampleError{i, fmt.Sprintf("no %s attribute", ClassName)}
		}
		if e.Len() != len(schema) {
			return &MalformedExampleError{i, fmt.Sprintf("has %d attributes, expected %d", e.Len(), len(schema))}
		}
		for _, n := range e.Names() {
			if !schema[n] {
				return &MalformedExampleError{i, fmt.Sprintf("unexpected attribute %q", n)}
			}
		}
	}
	return nil
}

// Len returns the number of examples in the set.
func (s Set) Len() int {
	return len(s)
}

/*
Attributes returns the attribute names of the first example of the
set, Class excluded, in schema order. It returns nil for an empty set.
*/
func (s Set) Attributes() []string {
	if len(s) == 0 {
		return nil
	}
	return s[0].Attributes()
}

/*
Values returns the distinct values taken by the given attribute on the
examples of the set, in the order they are first encountered. Examples
not defining the attribute are ignored.
*/
func (s Set) Values(attribute string) []string {
	seen := linkedhashset.New()
	for _, e := range s {
		if v, ok := e.Value(attribute); ok {
			seen.Add(v)
		}
	}
	result := make([]string, 0, seen.Size())
	for _, v := range seen.Values() {
		result = append(result, v.(string))
	}
	return result
}

// Classes returns the distinct Class values on the set in the
// order they are first encountered.
func (s Set) Classes() []string {
	return s.Values(ClassName)
}

// Labels returns the Class value of every example in the set
// that has one, in order.
func (s Set) Labels() []string {
	result := make([]string, 0, len(s))
	for _, e := range s {
		if c, ok := e.Class(); ok {
			result = append(result, c)
		}
	}
	return result
}

/*
CountValues returns a map with the number of examples of the set
taking each value of the given attribute. Examples not defining the
attribute are not counted.
*/
func (s Set) CountValues(attribute string) map[string]int {
	result := make(map[string]int)
	for _, e := range s {
		if v, ok := e.Value(attribute); ok {
			result[v]++
		}
	}
	return result
}

/*
SubsetWith returns a new set with the examples of the set whose value
for the given attribute equals the given value, keeping their order.
*/
func (s Set) SubsetWith(attribute, value string) Set {
	var result Set
	for _, e := range s {
		if v, ok := e.Value(attribute); ok && v == value {
			result = append(result, e)
		}
	}
	return result
}

/*
Without returns a new set holding a copy of every example of the set
without the given attribute.
*/
func (s Set) Without(attribute string) Set {
	result := make(Set, len(s))
	for i, e := range s {
		result[i] = e.Without(attribute)
	}
	return result
}

/*
Project returns a new set holding a copy of every example of the set
restricted to the given attributes and Class.
*/
func (s Set) Project(attributes []string) Set {
	result := make(Set, len(s))
	for i, e := range s {
		result[i] = e.Project(attributes)
	}
	return result
}
