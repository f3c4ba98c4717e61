package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// Condition renders one predicate of a WHERE clause using postgres $n placeholders.
type Condition interface {
	appendSQL(w *writer)
}

// writer accumulates SQL text and positional arguments.
type writer struct {
	buf  strings.Builder
	args []any
}

func (w *writer) bind(value any) {
	w.args = append(w.args, value)
	w.buf.WriteString("$")
	w.buf.WriteString(strconv.Itoa(len(w.args)))
}

// expr writes raw SQL, binding each '?' to the next value of exprArgs.
func (w *writer) expr(sql string, exprArgs []any) {
	next := 0
	for i := 0; i < len(sql); i++ {
		if sql[i] == '?' && next < len(exprArgs) {
			w.bind(exprArgs[next])
			next++
			continue
		}
		w.buf.WriteByte(sql[i])
	}
}

func (w *writer) where(conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			w.buf.WriteString(" WHERE ")
		} else {
			w.buf.WriteString(" AND ")
		}
		c.appendSQL(w)
	}
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) appendSQL(w *writer) {
	w.buf.WriteString(c.column)
	w.buf.WriteString(" = ")
	w.bind(c.value)
}

type inCondition struct {
	column string
	values []any
}

// In renders column IN (...); an empty value list matches nothing.
func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

func (c inCondition) appendSQL(w *writer) {
	if len(c.values) == 0 {
		w.buf.WriteString("1=0")
		return
	}
	w.buf.WriteString(c.column)
	w.buf.WriteString(" IN (")
	for i, v := range c.values {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		w.bind(v)
	}
	w.buf.WriteString(")")
}

type isNullCondition struct {
	column string
	negate bool
}

func IsNull(column string) Condition {
	return isNullCondition{column: column}
}

func IsNotNull(column string) Condition {
	return isNullCondition{column: column, negate: true}
}

func (c isNullCondition) appendSQL(w *writer) {
	w.buf.WriteString(c.column)
	if c.negate {
		w.buf.WriteString(" IS NOT NULL")
		return
	}
	w.buf.WriteString(" IS NULL")
}

type exprCondition struct {
	sql  string
	args []any
}

// Expr embeds a raw predicate; '?' marks are bound to args in order.
func Expr(sql string, args ...any) Condition {
	return exprCondition{sql: sql, args: args}
}

func (c exprCondition) appendSQL(w *writer) {
	w.buf.WriteString("(")
	w.expr(c.sql, c.args)
	w.buf.WriteString(")")
}

type SelectBuilder struct {
	columns   []string
	table     string
	where     []Condition
	orderBy   []string
	limit     int
	forUpdate bool
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

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

// ForUpdate appends FOR UPDATE so the selected rows stay locked until the
// surrounding transaction ends.
func (b *SelectBuilder) ForUpdate() *SelectBuilder {
	b.forUpdate = true
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	w := &writer{}
	w.buf.WriteString("SELECT ")
	w.buf.WriteString(strings.Join(b.columns, ", "))
	w.buf.WriteString(" FROM ")
	w.buf.WriteString(b.table)
	w.where(b.where)
	if len(b.orderBy) > 0 {
		w.buf.WriteString(" ORDER BY ")
		w.buf.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.buf.WriteString(" LIMIT ")
		w.buf.WriteString(strconv.Itoa(b.limit))
	}
	if b.forUpdate {
		w.buf.WriteString(" FOR UPDATE")
	}

	return w.buf.String(), w.args, nil
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

	w := &writer{}
	w.buf.WriteString("INSERT INTO ")
	w.buf.WriteString(b.table)
	w.buf.WriteString(" (")
	w.buf.WriteString(strings.Join(b.columns, ", "))
	w.buf.WriteString(") VALUES ")
	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			w.buf.WriteString(", ")
		}
		w.buf.WriteString("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				w.buf.WriteString(", ")
			}
			w.bind(value)
		}
		w.buf.WriteString(")")
	}
	if b.suffix != "" {
		w.buf.WriteString(" ")
		w.buf.WriteString(b.suffix)
	}

	return w.buf.String(), w.args, nil
}

type setClause struct {
	column string
	value  any
	raw    *exprCondition
}

type UpdateBuilder struct {
	table string
	sets  []setClause
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, value: value})
	return b
}

func (b *UpdateBuilder) SetExpr(column, sql string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, raw: &exprCondition{sql: sql, args: args}})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	w := &writer{}
	w.buf.WriteString("UPDATE ")
	w.buf.WriteString(b.table)
	w.buf.WriteString(" SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		w.buf.WriteString(s.column)
		w.buf.WriteString(" = ")
		if s.raw != nil {
			w.expr(s.raw.sql, s.raw.args)
			continue
		}
		w.bind(s.value)
	}
	w.where(b.where)

	return w.buf.String(), w.args, nil
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
		return "", nil, fmt.Errorf("delete without where clause is not allowed")
	}

	w := &writer{}
	w.buf.WriteString("DELETE FROM ")
	w.buf.WriteString(b.table)
	w.where(b.where)

	return w.buf.String(), w.args, nil
}
