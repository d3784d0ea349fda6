package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// Condition renders a single comparison, binding its value to the next free
// placeholder of the statement under construction.
type Condition func(st *statement) string

func Eq(column string, value any) Condition {
	return func(st *statement) string {
		return column + " = " + st.bind(value)
	}
}

// statement collects SQL fragments and bound arguments. Fragments are joined
// with single spaces, placeholders are numbered in bind order ($1, $2, ...).
type statement struct {
	parts []string
	args  []any
}

func (st *statement) add(parts ...string) {
	st.parts = append(st.parts, parts...)
}

func (st *statement) bind(value any) string {
	st.args = append(st.args, value)
	return "$" + strconv.Itoa(len(st.args))
}

func (st *statement) addWhere(conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	rendered := make([]string, len(conditions))
	for i, condition := range conditions {
		rendered[i] = condition(st)
	}
	st.add("WHERE", strings.Join(rendered, " AND "))
}

func (st *statement) build() (string, []any) {
	return strings.Join(st.parts, " "), st.args
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	groupBy []string
	orderBy []string
	limit   int
	offset  int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) GroupBy(parts ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, parts...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) Offset(offset int) *SelectBuilder {
	b.offset = offset
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var st statement
	st.add("SELECT", strings.Join(b.columns, ", "), "FROM", b.table)
	st.addWhere(b.where)
	if len(b.groupBy) > 0 {
		st.add("GROUP BY", strings.Join(b.groupBy, ", "))
	}
	if len(b.orderBy) > 0 {
		st.add("ORDER BY", strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		st.add("LIMIT", strconv.Itoa(b.limit))
	}
	if b.offset > 0 {
		st.add("OFFSET", strconv.Itoa(b.offset))
	}

	sql, args := st.build()
	return sql, args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix appends a raw trailing clause, e.g. a RETURNING list.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	var st statement
	st.add("INSERT INTO", b.table, "("+strings.Join(b.columns, ", ")+")", "VALUES")

	tuples := make([]string, 0, len(b.rows))
	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		placeholders := make([]string, len(row))
		for colIdx, value := range row {
			placeholders[colIdx] = st.bind(value)
		}
		tuples = append(tuples, "("+strings.Join(placeholders, ", ")+")")
	}
	st.add(strings.Join(tuples, ", "))
	if b.suffix != "" {
		st.add(b.suffix)
	}

	sql, args := st.build()
	return sql, args, nil
}

type UpdateBuilder struct {
	table  string
	sets   []setClause
	where  []Condition
	suffix string
}

type setClause struct {
	column string
	value  any
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, value: value})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) Suffix(sql string) *UpdateBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	var st statement
	st.add("UPDATE", b.table, "SET")

	assignments := make([]string, len(b.sets))
	for i, set := range b.sets {
		assignments[i] = set.column + " = " + st.bind(set.value)
	}
	st.add(strings.Join(assignments, ", "))

	st.addWhere(b.where)
	if b.suffix != "" {
		st.add(b.suffix)
	}

	sql, args := st.build()
	return sql, args, nil
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}
	if len(b.where) == 0 {
		return "", nil, fmt.Errorf("delete requires a where clause")
	}

	var st statement
	st.add("DELETE FROM", b.table)
	st.addWhere(b.where)

	sql, args := st.build()
	return sql, args, nil
}
