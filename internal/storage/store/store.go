// Package store provides a small generic gateway over one SQL table.
// It covers the handful of shapes this service needs (filtered select,
// equality lookup, insert, update and delete by criteria) without pulling
// in a full query builder.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Dialect selects the placeholder style of the underlying driver.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

func (d Dialect) placeholder(n int) string {
	if d == Postgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// Row is one record keyed by column name. Values carry whatever the driver
// returns; callers coerce to concrete types.
type Row map[string]any

// Match is a substring filter on a single column.
type Match struct {
	Column    string
	Substring string
}

// Table is a *sql.DB scoped to one table with a fixed column list.
type Table struct {
	db      *sql.DB
	name    string
	columns []string
	dialect Dialect
}

func NewTable(db *sql.DB, dialect Dialect, name string, columns ...string) *Table {
	return &Table{db: db, name: name, columns: columns, dialect: dialect}
}

// Select returns all rows, or only those whose match.Column contains
// match.Substring when a match is given. No rows is an empty slice, not an
// error.
func (t *Table) Select(ctx context.Context, match *Match) ([]Row, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(t.columns, ", "), t.name)
	var args []any
	if match != nil {
		query += fmt.Sprintf(" WHERE %s LIKE %s", match.Column, t.dialect.placeholder(1))
		args = append(args, "%"+match.Substring+"%")
	}

	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []Row{}
	for rows.Next() {
		row, err := t.scanRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// FindOne returns the first row matching the equality criteria. Absence is
// reported through the bool, not an error.
func (t *Table) FindOne(ctx context.Context, criteria Row) (Row, bool, error) {
	where, args := t.whereClause(criteria, 1)
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s LIMIT 1",
		strings.Join(t.columns, ", "), t.name, where)

	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, false, rows.Err()
	}
	row, err := t.scanRow(rows)
	if err != nil {
		return nil, false, err
	}
	return row, true, nil
}

// Insert appends row. The id is caller-supplied; nothing is generated here.
func (t *Table) Insert(ctx context.Context, row Row) error {
	cols, args := t.present(row)
	marks := make([]string, len(cols))
	for i := range cols {
		marks[i] = t.dialect.placeholder(i + 1)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.name, strings.Join(cols, ", "), strings.Join(marks, ", "))
	_, err := t.db.ExecContext(ctx, query, args...)
	return err
}

// Update overwrites the columns present in row for every record matching the
// criteria. Updating zero records is not an error.
func (t *Table) Update(ctx context.Context, row Row, criteria Row) error {
	cols, args := t.present(row)
	sets := make([]string, len(cols))
	for i, col := range cols {
		sets[i] = fmt.Sprintf("%s = %s", col, t.dialect.placeholder(i+1))
	}

	where, whereArgs := t.whereClause(criteria, len(cols)+1)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		t.name, strings.Join(sets, ", "), where)
	_, err := t.db.ExecContext(ctx, query, append(args, whereArgs...)...)
	return err
}

// Delete removes every record matching the criteria. Deleting zero records
// is not an error.
func (t *Table) Delete(ctx context.Context, criteria Row) error {
	where, args := t.whereClause(criteria, 1)
	query := fmt.Sprintf("DELETE FROM %s WHERE %s", t.name, where)
	_, err := t.db.ExecContext(ctx, query, args...)
	return err
}

// present returns the table columns that appear in row, in declaration
// order, with their values. Iterating the column list keeps generated SQL
// deterministic.
func (t *Table) present(row Row) ([]string, []any) {
	var cols []string
	var args []any
	for _, col := range t.columns {
		if v, ok := row[col]; ok {
			cols = append(cols, col)
			args = append(args, v)
		}
	}
	return cols, args
}

func (t *Table) whereClause(criteria Row, firstMark int) (string, []any) {
	var conds []string
	var args []any
	for _, col := range t.columns {
		if v, ok := criteria[col]; ok {
			conds = append(conds, fmt.Sprintf("%s = %s", col, t.dialect.placeholder(firstMark)))
			args = append(args, v)
			firstMark++
		}
	}
	return strings.Join(conds, " AND "), args
}

func (t *Table) scanRow(rows *sql.Rows) (Row, error) {
	values := make([]any, len(t.columns))
	dest := make([]any, len(t.columns))
	for i := range values {
		dest[i] = &values[i]
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	row := make(Row, len(t.columns))
	for i, col := range t.columns {
		row[col] = values[i]
	}
	return row, nil
}
