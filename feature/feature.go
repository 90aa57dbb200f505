/*
Package feature describes the attributes examples can be observed on,
along with the finite set of values each of them may take.
*/
package feature

import (
	"fmt"

	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
)

/*
Feature represents a property that can be observed and that can only
take a value among a finite set.
*/
type Feature struct {
	name            string
	availableValues []string
}

/*
New takes a name string and a slice of available value strings
and returns a feature with the given name and available values.
*/
func New(name string, availableValues []string) *Feature {
	return &Feature{name, append([]string(nil), availableValues...)}
}

/*
Name returns a string with the name of the feature
*/
func (f *Feature) Name() string {
	return f.name
}

/*
AvailableValues returns a string slice with the values available for the feature
*/
func (f *Feature) AvailableValues() []string {
	return append([]string(nil), f.availableValues...)
}

/*
Valid receives a value and returns a boolean and an error. When the
value is one of the available values of the feature or the missing
value marker, the method returns true and nil. Otherwise it returns
false and an error describing the reason.
*/
func (f *Feature) Valid(value string) (bool, error) {
	if value == dataset.Missing {
		return true, nil
	}
	for _, av := range f.availableValues {
		if av == value {
			return true, nil
		}
	}
	return false, fmt.Errorf("feature %s got unknown value %s", f.name, value)
}

func (f *Feature) String() string {
	return f.name
}

/*
Find takes a slice of features and a name and returns the feature in
the slice with that name, or nil if there is none.
*/
func Find(features []*Feature, name string) *Feature {
	for _, f := range features {
		if f.name == name {
			return f
		}
	}
	return nil
}

/*
ValidateSet takes a slice of features and a set and returns an error
for the first value on an example of the set that is not valid for
the feature with the same name. Attributes without a feature in the
slice are not checked.
*/
func ValidateSet(features []*Feature, s dataset.Set) error {
	for i, e := range s {
		for _, n := range e.Names() {
			f := Find(features, n)
			if f == nil {
				continue
			}
			v, _ := e.Value(n)
			if ok, err := f.Valid(v); !ok {
				return fmt.Errorf("example %d: %v", i, err)
			}
		}
	}
	return nil
}
