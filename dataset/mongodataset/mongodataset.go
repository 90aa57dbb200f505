/*
Package mongodataset reads sets of examples from MongoDB collections and
writes them to them.

Each document of a collection is an example. Its fields, except for _id,
are its attributes and their order is that of the fields of the first
document read. Fields missing on a document or holding null take the
unknown value ('?'), and unknown values are not written.
*/
package mongodataset

import (
	"context"
	"fmt"

	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
	"github.com/pkg/errors"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const idField = "_id"

/*
Dial takes a MongoDB connection URL and returns a session on it or an
error if the server cannot be reached. Collections of the database named
in the URL are available with session.DB("").C(name).
*/
func Dial(url string) (*mgo.Session, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to MongoDB")
	}
	return session, nil
}

/*
ReadSet takes a context, a MongoDB collection and the name of the field
holding the class of the examples and returns the set with an example for
every document of the collection, or an error. An empty class field
selects the field named Class or else the last field of the first document.

The context is checked between documents, as the driver does not take
one.
*/
func ReadSet(ctx context.Context, c *mgo.Collection, classField string) (dataset.Set, error) {
	iter := c.Find(nil).Iter()
	var (
		result dataset.Set
		fields []string
		names  []string
		doc    bson.D
	)
	for j := 0; iter.Next(&doc); j++ {
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, err
		}
		m := doc.Map()
		if fields == nil {
			var err error
			fields, names, err = schema(doc, classField)
			if err != nil {
				iter.Close()
				return nil, errors.WithMessagef(err, "reading collection %s", c.FullName)
			}
		}
		values := make([]string, len(fields))
		for i, f := range fields {
			v, ok := m[f]
			if !ok || v == nil {
				values[i] = dataset.Missing
				continue
			}
			values[i] = fmt.Sprintf("%v", v)
		}
		e, err := dataset.NewExample(names, values)
		if err != nil {
			iter.Close()
			return nil, errors.WithMessagef(err, "decoding document %d", j)
		}
		result = append(result, e)
		doc = nil
	}
	if err := iter.Close(); err != nil {
		return nil, errors.Wrapf(err, "iterating on collection %s", c.FullName)
	}
	return result, nil
}

/*
WriteSet takes a context, a MongoDB collection and a set and inserts a
document for every example in the set, with a field for every known
attribute value. It returns the number of inserted documents or an error.
*/
func WriteSet(ctx context.Context, c *mgo.Collection, s dataset.Set) (int, error) {
	if len(s) == 0 {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	docs := make([]interface{}, 0, len(s))
	for _, e := range s {
		doc := make(bson.D, 0, e.Len())
		for _, n := range e.Names() {
			v, _ := e.Value(n)
			if v == dataset.Missing {
				continue
			}
			doc = append(doc, bson.DocElem{Name: n, Value: v})
		}
		docs = append(docs, doc)
	}
	err := c.Insert(docs...)
	if err != nil {
		return 0, errors.Wrapf(err, "inserting %d documents into collection %s", len(docs), c.FullName)
	}
	return len(docs), nil
}

func schema(doc bson.D, classField string) ([]string, []string, error) {
	var fields, names []string
	classIndex := -1
	for _, e := range doc {
		if e.Name == idField {
			continue
		}
		if (classField == "" && e.Name == dataset.ClassName) || (classField != "" && e.Name == classField) {
			classIndex = len(fields)
		}
		fields = append(fields, e.Name)
		names = append(names, e.Name)
	}
	if classField != "" && classIndex == -1 {
		return nil, nil, fmt.Errorf("no class field %s", classField)
	}
	if classIndex == -1 {
		classIndex = len(fields) - 1
	}
	if classIndex >= 0 {
		for i, n := range names {
			if n == dataset.ClassName && i != classIndex {
				return nil, nil, fmt.Errorf("field %s cannot be the class next to field %s", names[classIndex], dataset.ClassName)
			}
		}
		names[classIndex] = dataset.ClassName
	}
	return fields, names, nil
}
