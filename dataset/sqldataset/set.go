package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
	"github.com/pkg/errors"
)

// IDColumn is the name of the column reserved to identify rows.
const IDColumn = "id"

/*
Adapter is an interface wrapping a database connection along with the
SQL dialect details needed to read and write sets on it.
*/
type Adapter interface {
	// DB returns the connection to the database.
	DB() *sql.DB
	// QuoteIdentifier takes a table or column name and returns
	// it quoted for use on a statement, or an error if it cannot
	// be used as such.
	QuoteIdentifier(string) (string, error)
	// Placeholder returns the placeholder for the i-th (starting
	// at 1) parameter of a statement.
	Placeholder(i int) string
	// IDColumnDefinition returns the definition of an
	// autoincremented integer primary key column named IDColumn.
	IDColumnDefinition() string
	// Close closes the connection to the database.
	Close() error
}

/*
ReadSet takes a context, an Adapter, the name of a table and the name of
the column holding the class of the examples, and returns the set with
an example for every row of the table or an error. An empty class column
selects the column named Class or else the last one.
*/
func ReadSet(ctx context.Context, a Adapter, table, classColumn string) (dataset.Set, error) {
	var s dataset.Set
	err := IterateOnSet(ctx, a, table, classColumn, func(_ int, e dataset.Example) (bool, error) {
		s = append(s, e)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

/*
IterateOnSet takes a context, an Adapter, the name of a table, the name of
the class column and a lambda function. It reads the rows of the table and
for each calls the lambda function with the row index and its example. If the
lambda returns false, iteration stops. An error is returned if the table
cannot be read or the lambda returns one.
*/
func IterateOnSet(ctx context.Context, a Adapter, table, classColumn string, lambda func(int, dataset.Example) (bool, error)) error {
	qt, err := a.QuoteIdentifier(table)
	if err != nil {
		return err
	}
	rows, err := a.DB().QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", qt))
	if err != nil {
		return errors.Wrapf(err, "querying table %s", table)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return errors.Wrapf(err, "listing columns of table %s", table)
	}
	names, err := attributeNames(columns, classColumn)
	if err != nil {
		return errors.WithMessagef(err, "reading table %s", table)
	}
	raw := make([]sql.NullString, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range raw {
		dest[i] = &raw[i]
	}
	for j := 0; rows.Next(); j++ {
		err = rows.Scan(dest...)
		if err != nil {
			return errors.Wrapf(err, "scanning row %d of table %s", j+1, table)
		}
		var ns, vs []string
		for i, n := range names {
			if n == "" {
				continue
			}
			ns = append(ns, n)
			if raw[i].Valid {
				vs = append(vs, raw[i].String)
			} else {
				vs = append(vs, dataset.Missing)
			}
		}
		e, err := dataset.NewExample(ns, vs)
		if err != nil {
			return err
		}
		ok, err := lambda(j, e)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return rows.Err()
}

/*
WriteSet takes a context, an Adapter, the name of a table and a set and
inserts the examples of the set as rows of the table, creating it if it
does not exist yet with a text column for each attribute of the first
example of the set. All rows are inserted in a single transaction.
It returns the number of inserted rows and an error if the insertion
could not be completed.
*/
func WriteSet(ctx context.Context, a Adapter, table string, s dataset.Set) (int, error) {
	if len(s) == 0 {
		return 0, nil
	}
	names := s[0].Names()
	qt, err := a.QuoteIdentifier(table)
	if err != nil {
		return 0, err
	}
	columns := make([]string, len(names))
	for i, n := range names {
		if n == IDColumn {
			return 0, fmt.Errorf(`'%s' is reserved and cannot be used as attribute name`, n)
		}
		columns[i], err = a.QuoteIdentifier(n)
		if err != nil {
			return 0, err
		}
	}
	var createStmtBuf bytes.Buffer
	createStmtBuf.WriteString(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (", qt))
	for _, c := range columns {
		createStmtBuf.WriteString(fmt.Sprintf("%s TEXT NULL, ", c))
	}
	createStmtBuf.WriteString(a.IDColumnDefinition())
	createStmtBuf.WriteString(")")
	_, err = a.DB().ExecContext(ctx, createStmtBuf.String())
	if err != nil {
		return 0, errors.Wrapf(err, "ensuring table %s exists", table)
	}
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = a.Placeholder(i + 1)
	}
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", qt, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	tx, err := a.DB().BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "starting transaction")
	}
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		tx.Rollback()
		return 0, errors.Wrap(err, "preparing insert statement")
	}
	defer stmt.Close()
	for i, e := range s {
		values := make([]interface{}, len(names))
		for j, n := range names {
			v, ok := e.Value(n)
			if !ok || v == dataset.Missing {
				values[j] = nil
			} else {
				values[j] = v
			}
		}
		_, err = stmt.ExecContext(ctx, values...)
		if err != nil {
			tx.Rollback()
			return 0, errors.Wrapf(err, "inserting example %d", i)
		}
	}
	err = tx.Commit()
	if err != nil {
		return 0, errors.Wrap(err, "committing inserts")
	}
	return len(s), nil
}

func attributeNames(columns []string, classColumn string) ([]string, error) {
	names := make([]string, len(columns))
	classIndex := -1
	last := -1
	for i, c := range columns {
		if c == IDColumn {
			continue
		}
		names[i] = c
		last = i
		if (classColumn == "" && c == dataset.ClassName) || (classColumn != "" && c == classColumn) {
			classIndex = i
		}
	}
	if classColumn != "" && classIndex == -1 {
		return nil, fmt.Errorf("no class column %s", classColumn)
	}
	if classIndex == -1 {
		classIndex = last
	}
	if classIndex >= 0 {
		for i, n := range names {
			if n == dataset.ClassName && i != classIndex {
				return nil, fmt.Errorf("column %s cannot be the class next to column %s", names[classIndex], dataset.ClassName)
			}
		}
		names[classIndex] = dataset.ClassName
	}
	return names, nil
}
