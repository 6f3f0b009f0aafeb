package storage

import (
	"fmt"
	"strings"

	"github.com/jacksmith/emp/internal/model"
	"github.com/xuri/excelize/v2"
)

// ReadTable reads employees from the first worksheet of the workbook at path.
// Any problem with the content is reported as *model.FileCorruptError.
func ReadTable(path string) (*model.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &model.FileCorruptError{Path: path, Reason: "cannot open workbook", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &model.FileCorruptError{Path: path, Reason: "workbook has no sheets"}
	}

	// Raw values keep large integers from being rendered in scientific notation.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &model.FileCorruptError{Path: path, Reason: fmt.Sprintf("cannot read sheet %q", sheets[0]), Err: err}
	}

	return decodeRows(path, rows)
}

// decodeRows converts raw sheet rows (header first) into a table.
func decodeRows(path string, rows [][]string) (*model.Table, error) {
	if len(rows) == 0 || !model.MatchColumns(rows[0]) {
		return nil, &model.FileCorruptError{
			Path:   path,
			Reason: "columns must be " + strings.Join(model.Columns, ", "),
		}
	}

	pos := make(map[string]int, len(model.Columns))
	for i, h := range rows[0] {
		pos[strings.TrimSpace(h)] = i
	}
	// Text cells are returned as stored; ParseID and ParseAge trim their input.
	cell := func(row []string, col string) string {
		i := pos[col]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	table := model.NewTable()
	for n, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		line := n + 2 // sheet row number, header is row 1

		id, err := model.ParseID(cell(row, model.ColumnID))
		if err != nil {
			return nil, &model.FileCorruptError{Path: path, Reason: fmt.Sprintf("row %d", line), Err: err}
		}
		age, err := model.ParseAge(cell(row, model.ColumnAge))
		if err != nil {
			return nil, &model.FileCorruptError{Path: path, Reason: fmt.Sprintf("row %d", line), Err: err}
		}
		if table.Has(id) {
			return nil, &model.FileCorruptError{Path: path, Reason: fmt.Sprintf("row %d: duplicate id %d", line, id)}
		}

		table.Rows = append(table.Rows, model.Employee{
			ID:         id,
			Name:       cell(row, model.ColumnName),
			Age:        age,
			Department: cell(row, model.ColumnDepartment),
		})
	}

	if table.Empty() {
		return nil, &model.FileCorruptError{Path: path, Reason: "table is empty"}
	}
	return table, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WriteTable writes the header and all rows to a new workbook at path,
// replacing any existing file.
func WriteTable(path, sheet string, t *model.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, sheet); err != nil {
			return fmt.Errorf("failed to name sheet %q: %w", sheet, err)
		}
	}

	header := make([]interface{}, len(model.Columns))
	for i, c := range model.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{e.ID, e.Name, e.Age, e.Department}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write employee %d: %w", e.ID, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
