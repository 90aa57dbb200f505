/*
Package sqldataset reads sets of examples from SQL database tables and
writes them to them.

A table holds one example per row and one attribute per column, all of
them text. The column order is the attribute order of the examples.
NULL values stand for unknown values ('?') and the "id" column, if any,
is not an attribute.

Database specifics are handled by an Adapter. Implementations for SQLite3
and PostgreSQL are provided by the sqlite3adapter and pgadapter packages.
*/
package sqldataset
