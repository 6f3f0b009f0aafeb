// Package model defines the core data structures for emp.
package model

// Column names of the employee sheet. The header row must contain exactly
// these names, in any order.
const (
	ColumnID         = "ID"
	ColumnName       = "Name"
	ColumnAge        = "Age"
	ColumnDepartment = "Department"
)

// Columns is the fixed column set, in the order emp writes them.
var Columns = []string{ColumnID, ColumnName, ColumnAge, ColumnDepartment}

// Employee is one row of the table.
type Employee struct {
	ID         int    `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Age        int    `json:"age" yaml:"age"`
	Department string `json:"department" yaml:"department"`
}

// Table is the in-memory ordered collection of employees.
// No two rows share the same ID.
type Table struct {
	Rows []Employee
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// FindIndex returns the position of the row with the given ID.
// The second result is false if no such row exists.
func (t *Table) FindIndex(id int) (int, bool) {
	for i := range t.Rows {
		if t.Rows[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// Has reports whether a row with the given ID exists.
func (t *Table) Has(id int) bool {
	_, ok := t.FindIndex(id)
	return ok
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	rows := make([]Employee, len(t.Rows))
	copy(rows, t.Rows)
	return &Table{Rows: rows}
}

// IDs returns the IDs of all rows in table order.
func (t *Table) IDs() []int {
	ids := make([]int, 0, len(t.Rows))
	for _, e := range t.Rows {
		ids = append(ids, e.ID)
	}
	return ids
}
