// Package ops implements the employee operations on top of a Store.
package ops

import (
	"github.com/jacksmith/emp/internal/model"
	"github.com/jacksmith/emp/internal/storage"
)

// List returns a copy of all employees in table order.
// Returns model.ErrNoRecords if the table is empty.
func List(t *model.Table) ([]model.Employee, error) {
	if t.Empty() {
		return nil, model.ErrNoRecords
	}
	rows := make([]model.Employee, len(t.Rows))
	copy(rows, t.Rows)
	return rows, nil
}

// Get returns the employee with the ID in raw.
func Get(t *model.Table, raw string) (model.Employee, error) {
	idx, err := ValidateExisting(t, raw)
	if err != nil {
		return model.Employee{}, err
	}
	return t.Rows[idx], nil
}

// AddEmployee appends a new employee to the end of t.
// On error t is unchanged.
func AddEmployee(t *model.Table, in EmployeeInput) (model.Employee, error) {
	e, err := ValidateAdd(t, in)
	if err != nil {
		return model.Employee{}, err
	}
	t.Rows = append(t.Rows, e)
	return e, nil
}

// UpdateEmployee overwrites the mutable fields of the employee with the ID
// in raw. Blank fields in ch keep their value. On error t is unchanged.
func UpdateEmployee(t *model.Table, raw string, ch EmployeeChanges) (model.Employee, error) {
	idx, err := ValidateExisting(t, raw)
	if err != nil {
		return model.Employee{}, err
	}
	updated, err := ValidateChanges(t.Rows[idx], ch)
	if err != nil {
		return model.Employee{}, err
	}
	t.Rows[idx] = updated
	return updated, nil
}

// DeleteEmployee removes the employee with the ID in raw, keeping the order
// of the remaining rows. On error t is unchanged.
func DeleteEmployee(t *model.Table, raw string) (model.Employee, error) {
	idx, err := ValidateExisting(t, raw)
	if err != nil {
		return model.Employee{}, err
	}
	removed := t.Rows[idx]
	t.Rows = append(t.Rows[:idx], t.Rows[idx+1:]...)
	return removed, nil
}

// Session owns the employee table for one run. All reads and writes of the
// table go through it; changes reach disk only on Save.
type Session struct {
	store Store
	table *model.Table
	dirty bool
}

// Open loads the table from s and returns a Session holding it.
func Open(s Store) (*Session, *storage.LoadReport, error) {
	table, report, err := s.Load()
	if err != nil {
		return nil, report, err
	}
	return &Session{store: s, table: table}, report, nil
}

// Table returns a copy of the current table.
func (s *Session) Table() *model.Table {
	return s.table.Clone()
}

// Dirty reports whether the table changed since it was loaded or last saved.
func (s *Session) Dirty() bool {
	return s.dirty
}

// List returns all employees in table order.
func (s *Session) List() ([]model.Employee, error) {
	return List(s.table)
}

// Get returns one employee by raw ID.
func (s *Session) Get(raw string) (model.Employee, error) {
	return Get(s.table, raw)
}

// CheckNewID reports whether raw is a usable ID for a new employee.
func (s *Session) CheckNewID(raw string) error {
	_, err := ValidateNewID(s.table, raw)
	return err
}

// Add appends a new employee.
func (s *Session) Add(in EmployeeInput) (model.Employee, error) {
	e, err := AddEmployee(s.table, in)
	if err == nil {
		s.dirty = true
	}
	return e, err
}

// Update changes an existing employee.
func (s *Session) Update(raw string, ch EmployeeChanges) (model.Employee, error) {
	e, err := UpdateEmployee(s.table, raw, ch)
	if err == nil {
		s.dirty = true
	}
	return e, err
}

// Delete removes an existing employee.
func (s *Session) Delete(raw string) (model.Employee, error) {
	e, err := DeleteEmployee(s.table, raw)
	if err == nil {
		s.dirty = true
	}
	return e, err
}

// Save writes the table to the store. On failure the table is kept so the
// caller may retry.
func (s *Session) Save() error {
	if err := s.store.Save(s.table); err != nil {
		return err
	}
	s.dirty = false
	return nil
}
