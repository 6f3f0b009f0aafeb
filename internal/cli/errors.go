package cli

import (
	"errors"
	"fmt"

	"github.com/jacksmith/emp/internal/model"
)

// Describe returns the operator-facing explanation of err.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var (
		dup     *model.DuplicateIDError
		nf      *model.NotFoundError
		inv     *model.InvalidInputError
		write   *model.PersistenceWriteError
		corrupt *model.FileCorruptError
	)
	switch {
	case errors.Is(err, model.ErrNoRecords):
		return "no employee records found"
	case errors.As(err, &dup):
		return fmt.Sprintf("ID %d already exists", dup.ID)
	case errors.As(err, &nf):
		return fmt.Sprintf("ID %d not found", nf.ID)
	case errors.As(err, &inv):
		return fmt.Sprintf("%s must be a whole number, got %q", inv.Field, inv.Value)
	case errors.As(err, &write):
		return fmt.Sprintf("could not save %s: %v\nchanges are kept in memory; try again", write.Path, write.Err)
	case errors.As(err, &corrupt):
		return corrupt.Error()
	}
	return err.Error()
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + Describe(err)
}
