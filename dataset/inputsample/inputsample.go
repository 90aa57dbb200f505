/*
Package inputsample provides a source of attribute values for an example
that are read on demand from an io.Reader, typically a terminal.
*/
package inputsample

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
	"github.com/Ex-Nihilo-0-1/HW-1/feature"
)

/*
ValueRequester represents a way to ask
for attribute values and reject the given values.
The feature is nil for attributes without
declared values.
*/
type ValueRequester interface {
	RequestValueFor(attribute string, f *feature.Feature) error
	RejectValueFor(attribute string, value string) error
}

/*
Sample is an example whose attribute values
are retrieved from a reader. A value will be
requested using a ValueRequester before reading it.
*/
type Sample struct {
	obtainedValues map[string]string
	readOrder      []string
	undefinedValue string
	scanner        *bufio.Scanner
	requester      ValueRequester
	features       []*feature.Feature
}

/*
New takes an io.Reader, a slice of features, a ValueRequester and an
undefinedValue coding string and returns a Sample.

The returned Sample ValueFor method reads attribute values first
requesting them with the given ValueRequester and then parsing the
values from the reader, one per line. The undefinedValue string on a
line of its own is read as the '?' value.

For an attribute with a feature in the given slice, lines will be read
until one holding a valid value for the feature is found. Other
attributes take any non-empty line. Non accepted values are rejected
with the ValueRequester's RejectValueFor method.
*/
func New(r io.Reader, features []*feature.Feature, requester ValueRequester, undefinedValue string) *Sample {
	return &Sample{
		obtainedValues: make(map[string]string),
		undefinedValue: undefinedValue,
		scanner:        bufio.NewScanner(r),
		requester:      requester,
		features:       features,
	}
}

/*
ValueFor returns the value for the given attribute, reading it the
first time it is asked for. Its signature allows it to be used with
tree.ClassifyFunc.
*/
func (rs *Sample) ValueFor(attribute string) (string, bool, error) {
	if v, ok := rs.obtainedValues[attribute]; ok {
		return v, true, nil
	}
	f := feature.Find(rs.features, attribute)
	err := rs.requester.RequestValueFor(attribute, f)
	if err != nil {
		return "", false, err
	}
	for rs.scanner.Scan() {
		line := strings.TrimSpace(rs.scanner.Text())
		if line == rs.undefinedValue {
			line = dataset.Missing
		}
		if line != "" && (f == nil || valid(f, line)) {
			rs.obtainedValues[attribute] = line
			rs.readOrder = append(rs.readOrder, attribute)
			return line, true, nil
		}
		err = rs.requester.RejectValueFor(attribute, line)
		if err != nil {
			return "", false, err
		}
	}
	err = rs.scanner.Err()
	if err != nil {
		return "", false, err
	}
	return "", false, fmt.Errorf("EOF when requesting value for %s", attribute)
}

// Values returns the attribute values read so far.
func (rs *Sample) Values() map[string]string {
	result := make(map[string]string, len(rs.obtainedValues))
	for k, v := range rs.obtainedValues {
		result[k] = v
	}
	return result
}

/*
Example takes an example and returns a copy of it with the values read
so far added, in the order they were read. Read values replace those
the given example has for the same attributes.
*/
func (rs *Sample) Example(base dataset.Example) dataset.Example {
	result := base
	for _, a := range rs.readOrder {
		result = result.With(a, rs.obtainedValues[a])
	}
	return result
}

func valid(f *feature.Feature, value string) bool {
	ok, _ := f.Valid(value)
	return ok
}
