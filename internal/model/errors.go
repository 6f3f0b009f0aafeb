package model

import (
	"errors"
	"fmt"
)

// ErrNoRecords is returned by read operations on an empty table.
var ErrNoRecords = errors.New("no employee records found")

// FileCorruptError indicates the spreadsheet at Path could not be used.
// Load recovers from it by recreating an empty file.
type FileCorruptError struct {
	Path   string
	Reason string
	Err    error // underlying read error, if any
}

func (e *FileCorruptError) Error() string {
	msg := fmt.Sprintf("%s is unreadable: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FileCorruptError) Unwrap() error {
	return e.Err
}

// InvalidInputError indicates a non-integer value where an integer is required.
type InvalidInputError struct {
	Field string // "id" or "age"
	Value string // the raw input
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be an integer", e.Field, e.Value)
}

// DuplicateIDError indicates an add with an ID that already exists.
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("employee %d already exists", e.ID)
}

// NotFoundError indicates an update or delete referencing an absent ID.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("employee %d not found", e.ID)
}

// PersistenceWriteError indicates the table could not be written to Path.
// The in-memory table is left intact.
type PersistenceWriteError struct {
	Path string
	Err  error
}

func (e *PersistenceWriteError) Error() string {
	return fmt.Sprintf("failed to save %s: %v", e.Path, e.Err)
}

func (e *PersistenceWriteError) Unwrap() error {
	return e.Err
}
