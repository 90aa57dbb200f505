/*
Package csv reads sets of examples from CSV streams and writes them
back.

The first row of a CSV stream is a header with the names of the
attributes. One column holds the Class of the examples: the one named
Class, a column named explicitly, or else the last one, which is then
renamed Class. The '?' string denotes an unknown value.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
	"github.com/Ex-Nihilo-0-1/HW-1/feature"
	"github.com/pkg/errors"
)

/*
Writer is an interface for a stream to which examples
can be written to.
*/
type Writer interface {
	// Write will attempt to write the given examples
	// and will return the actually written number of
	// examples and an error (if not all examples
	// could be written)
	Write([]dataset.Example) (int, error)
	// Count returns the total number of examples written
	// to the writer
	Count() int
	// Flush ensures any pending written operations finish
	// before returning. It returns an error if that cannot
	// be ensured.
	Flush() error
}

type csvWriter struct {
	count int
	names []string
	w     *csv.Writer
}

/*
ReadSet takes an io.Reader for a CSV stream, a slice of features and the
name of the class column and returns the set of examples parsed from the
reader or an error.

Values are checked against the feature with the same name in the given
slice, if any. An empty class column name selects the column named Class
or else the last column.
*/
func ReadSet(reader io.Reader, features []*feature.Feature, classColumn string) (dataset.Set, error) {
	var s dataset.Set
	err := ReadSetByExample(reader, features, classColumn, func(_ int, e dataset.Example) (bool, error) {
		s = append(s, e)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

/*
ReadSetByExample takes an io.Reader for a CSV stream, a slice of features, the
name of the class column and a lambda function on an integer and a
dataset.Example that returns a boolean value. It parses the examples from the
reader and for each it calls the lambda function with the example and its index
as parameters. If the lambda function returns true, it will continue processing
the next example, otherwise it will stop. An error is returned if something goes
wrong when reading the stream or parsing an example.
*/
func ReadSetByExample(reader io.Reader, features []*feature.Feature, classColumn string, lambda func(int, dataset.Example) (bool, error)) error {
	r := csv.NewReader(reader)
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return errors.Wrap(err, "reading header")
	}
	names, err := parseHeader(header, classColumn)
	if err != nil {
		return err
	}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "reading body")
		}
		e, err := parseExample(row, names, features)
		if err != nil {
			return errors.WithMessagef(err, "parsing line %d", l)
		}
		ok, err := lambda(l-2, e)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
ReadSetFromFilePath takes a filepath string, a slice of features and the name
of the class column, opens the file to which the filepath points to and uses
ReadSet to return the set read from it or an error. If the filepath is "",
os.Stdin is read instead.
*/
func ReadSetFromFilePath(filepath string, features []*feature.Feature, classColumn string) (dataset.Set, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, errors.Wrap(err, "reading set")
		}
		defer f.Close()
	}
	s, err := ReadSet(f, features, classColumn)
	if err != nil {
		err = errors.WithMessagef(err, "parsing CSV file %s", filepath)
	}
	return s, err
}

/*
NewWriter takes an io.Writer and a slice of attribute names and
returns a Writer that will write examples on the io.Writer, one
column per attribute. The header row is written right away.
*/
func NewWriter(writer io.Writer, names []string) (Writer, error) {
	w := csv.NewWriter(writer)
	err := w.Write(names)
	if err != nil {
		return nil, errors.Wrap(err, "writing CSV header")
	}
	return &csvWriter{names: append([]string(nil), names...), w: w}, nil
}

/*
WriteSet takes a writer and a set of examples and dumps to the writer
the set in CSV format, with the attributes of the first example of
the set as columns. It returns an error if something went wrong when
writing to the writer.
*/
func WriteSet(writer io.Writer, s dataset.Set) error {
	var names []string
	if len(s) > 0 {
		names = s[0].Names()
	}
	cw, err := NewWriter(writer, names)
	if err != nil {
		return err
	}
	_, err = cw.Write(s)
	if err != nil {
		return err
	}
	return cw.Flush()
}

func parseHeader(header []string, classColumn string) ([]string, error) {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	classIndex := -1
	for i, name := range header {
		names[i] = strings.TrimSpace(name)
		if names[i] == "" {
			return nil, fmt.Errorf("parsing header: column %d has no name", i+1)
		}
		if j, ok := seen[names[i]]; ok {
			return nil, fmt.Errorf("parsing header: columns %d and %d are both named %s", j+1, i+1, names[i])
		}
		seen[names[i]] = i
		if classColumn == "" && names[i] == dataset.ClassName {
			classIndex = i
		}
		if classColumn != "" && names[i] == classColumn {
			classIndex = i
		}
	}
	if classColumn != "" && classIndex == -1 {
		return nil, fmt.Errorf("parsing header: no class column %s", classColumn)
	}
	if classIndex == -1 {
		classIndex = len(names) - 1
	}
	if classIndex >= 0 {
		if j, ok := seen[dataset.ClassName]; ok && j != classIndex {
			return nil, fmt.Errorf("parsing header: column %s cannot be the class, column %d is already named %s", names[classIndex], j+1, dataset.ClassName)
		}
		names[classIndex] = dataset.ClassName
	}
	return names, nil
}

func parseExample(row []string, names []string, features []*feature.Feature) (dataset.Example, error) {
	if len(row) != len(names) {
		return dataset.Example{}, fmt.Errorf("got %d values for %d columns", len(row), len(names))
	}
	values := make([]string, len(row))
	for i, v := range row {
		values[i] = strings.TrimSpace(v)
		if f := feature.Find(features, names[i]); f != nil {
			if ok, err := f.Valid(values[i]); !ok {
				return dataset.Example{}, errors.WithMessagef(err, "invalid value for column %s", names[i])
			}
		}
	}
	return dataset.NewExample(names, values)
}

func (cw *csvWriter) Count() int {
	return cw.count
}

func (cw *csvWriter) Write(examples []dataset.Example) (int, error) {
	for n, e := range examples {
		err := cw.writeExample(e)
		if err != nil {
			return n, err
		}
	}
	return len(examples), nil
}

func (cw *csvWriter) writeExample(e dataset.Example) error {
	record := make([]string, len(cw.names))
	for j, n := range cw.names {
		v, ok := e.Value(n)
		if !ok {
			v = dataset.Missing
		}
		record[j] = v
	}
	err := cw.w.Write(record)
	if err != nil {
		return errors.Wrapf(err, "writing CSV row for example %d", cw.count+1)
	}
	cw.count++
	return nil
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}
