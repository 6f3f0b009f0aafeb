// Package storage persists the employee table in a spreadsheet file.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/jacksmith/emp/internal/model"
)

// DefaultSheet is the worksheet name used when none is configured.
// It matches the sheet a fresh workbook starts with.
const DefaultSheet = "Sheet1"

// LoadReport describes what Load had to do to produce a table.
type LoadReport struct {
	Path string
	// Created is set when the file did not exist and an empty one was written.
	Created bool
	// Corrupt is set when the file existed but could not be used. Its
	// contents were discarded and an empty file was written in its place.
	Corrupt *model.FileCorruptError
	// Rows is the number of records loaded.
	Rows int
}

// Recovered reports whether the file was recreated after a failed read.
func (r *LoadReport) Recovered() bool {
	return r.Corrupt != nil
}

// Store provides access to one employee spreadsheet.
// The file is opened and closed on every Load and Save.
type Store struct {
	path   string
	sheet  string
	logger *slog.Logger
}

// New returns a Store for the spreadsheet at path. An empty sheet name
// selects DefaultSheet for writing; reading always uses the first sheet.
func New(path, sheet string, logger *slog.Logger) *Store {
	if sheet == "" {
		sheet = DefaultSheet
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{path: path, sheet: sheet, logger: logger}
}

// Path returns the spreadsheet path.
func (s *Store) Path() string {
	return s.path
}

// Sheet returns the worksheet name used when writing.
func (s *Store) Sheet() string {
	return s.sheet
}

// Exists reports whether the spreadsheet file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Init writes an empty spreadsheet with the fixed columns.
// Returns error if the file already exists.
func (s *Store) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("%s already exists", s.path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check for %s: %w", s.path, err)
	}
	return s.Save(model.NewTable())
}

// Load reads the table from disk.
//
// A missing file is created empty. A file that cannot be read, has no
// records, or whose header is not exactly ID, Name, Age, Department is
// replaced by an empty file; no rows are salvaged. The returned report
// says which of these happened. An error is returned only when the
// replacement file cannot be written.
func (s *Store) Load() (*model.Table, *LoadReport, error) {
	report := &LoadReport{Path: s.path}

	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("employee file not found, creating", "path", s.path)
		table := model.NewTable()
		if err := s.Save(table); err != nil {
			return nil, report, err
		}
		report.Created = true
		return table, report, nil
	}

	table, err := ReadTable(s.path)
	if err != nil {
		var corrupt *model.FileCorruptError
		if !errors.As(err, &corrupt) {
			corrupt = &model.FileCorruptError{Path: s.path, Reason: "read failed", Err: err}
		}
		s.logger.Warn("recreating unreadable employee file",
			"path", s.path, "reason", corrupt.Reason, "error", corrupt.Err)

		table = model.NewTable()
		if err := s.Save(table); err != nil {
			return nil, report, err
		}
		report.Corrupt = corrupt
		return table, report, nil
	}

	report.Rows = table.Len()
	s.logger.Info("employee file loaded", "path", s.path, "rows", report.Rows)
	return table, report, nil
}

// Save overwrites the spreadsheet with the full table.
// Failures are returned as *model.PersistenceWriteError.
func (s *Store) Save(t *model.Table) error {
	if err := WriteTable(s.path, s.sheet, t); err != nil {
		s.logger.Error("failed to save employee file", "path", s.path, "error", err)
		return &model.PersistenceWriteError{Path: s.path, Err: err}
	}
	s.logger.Info("employee file saved", "path", s.path, "rows", t.Len())
	return nil
}
