package ops

import (
	"github.com/jacksmith/emp/internal/model"
)

// EmployeeInput holds the raw field values for a new employee.
type EmployeeInput struct {
	ID         string
	Name       string
	Age        string
	Department string
}

// EmployeeChanges holds raw replacement values for an existing employee.
// An empty string keeps the current value.
type EmployeeChanges struct {
	Name       string
	Age        string
	Department string
}

// IsEmpty reports whether no field would change.
func (c EmployeeChanges) IsEmpty() bool {
	return c.Name == "" && c.Age == "" && c.Department == ""
}

// ValidateNewID parses raw and checks that no employee has that ID yet.
func ValidateNewID(t *model.Table, raw string) (int, error) {
	id, err := model.ParseID(raw)
	if err != nil {
		return 0, err
	}
	if t.Has(id) {
		return 0, &model.DuplicateIDError{ID: id}
	}
	return id, nil
}

// ValidateAdd checks every field of in and returns the employee to append.
func ValidateAdd(t *model.Table, in EmployeeInput) (model.Employee, error) {
	id, err := ValidateNewID(t, in.ID)
	if err != nil {
		return model.Employee{}, err
	}
	age, err := model.ParseAge(in.Age)
	if err != nil {
		return model.Employee{}, err
	}
	return model.Employee{
		ID:         id,
		Name:       in.Name,
		Age:        age,
		Department: in.Department,
	}, nil
}

// ValidateExisting parses raw and returns the index of that employee.
func ValidateExisting(t *model.Table, raw string) (int, error) {
	id, err := model.ParseID(raw)
	if err != nil {
		return -1, err
	}
	idx, ok := t.FindIndex(id)
	if !ok {
		return -1, &model.NotFoundError{ID: id}
	}
	return idx, nil
}

// ValidateChanges applies ch to a copy of current. The ID never changes.
func ValidateChanges(current model.Employee, ch EmployeeChanges) (model.Employee, error) {
	updated := current
	if ch.Age != "" {
		age, err := model.ParseAge(ch.Age)
		if err != nil {
			return model.Employee{}, err
		}
		updated.Age = age
	}
	if ch.Name != "" {
		updated.Name = ch.Name
	}
	if ch.Department != "" {
		updated.Department = ch.Department
	}
	return updated, nil
}
