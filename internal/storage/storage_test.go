package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jacksmith/emp/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "employees.xlsx"), "", nil)
}

// writeRows writes raw rows to the first sheet of a new workbook at path.
func writeRows(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)
	return rows
}

func sampleTable() *model.Table {
	return &model.Table{Rows: []model.Employee{
		{ID: 1, Name: "Alice", Age: 30, Department: "Eng"},
		{ID: 7, Name: "Bob", Age: 41, Department: "Sales"},
		{ID: 3, Name: "Carol Ann", Age: 25, Department: "Ops"},
	}}
}

func TestLoad(t *testing.T) {
	t.Run("missing file is created empty", func(t *testing.T) {
		s := newTestStore(t)

		table, report, err := s.Load()
		require.NoError(t, err)
		assert.True(t, table.Empty())
		assert.True(t, report.Created)
		assert.False(t, report.Recovered())

		assert.True(t, s.Exists())
		assert.Equal(t, [][]string{model.Columns}, readRows(t, s.Path()))
	})

	t.Run("valid file loads unmodified", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.Save(sampleTable()))

		table, report, err := s.Load()
		require.NoError(t, err)
		assert.False(t, report.Created)
		assert.False(t, report.Recovered())
		assert.Equal(t, 3, report.Rows)
		assert.Equal(t, sampleTable().Rows, table.Rows)
	})

	t.Run("columns in any order", func(t *testing.T) {
		s := newTestStore(t)
		writeRows(t, s.Path(), [][]interface{}{
			{"Department", "Age", "Name", "ID"},
			{"Eng", 30, "Alice", 1},
		})

		table, report, err := s.Load()
		require.NoError(t, err)
		assert.False(t, report.Recovered())
		require.Equal(t, 1, table.Len())
		assert.Equal(t, model.Employee{ID: 1, Name: "Alice", Age: 30, Department: "Eng"}, table.Rows[0])
	})

	corruptCases := []struct {
		name  string
		setup func(t *testing.T, path string)
	}{
		{
			name: "header only is treated as empty",
			setup: func(t *testing.T, path string) {
				writeRows(t, path, [][]interface{}{{"ID", "Name", "Age", "Department"}})
			},
		},
		{
			name: "missing column",
			setup: func(t *testing.T, path string) {
				writeRows(t, path, [][]interface{}{{"ID", "Name", "Age"}, {1, "Alice", 30}})
			},
		},
		{
			name: "extra column",
			setup: func(t *testing.T, path string) {
				writeRows(t, path, [][]interface{}{
					{"ID", "Name", "Age", "Department", "Email"},
					{1, "Alice", 30, "Eng", "a@example.com"},
				})
			},
		},
		{
			name: "non-integer id",
			setup: func(t *testing.T, path string) {
				writeRows(t, path, [][]interface{}{{"ID", "Name", "Age", "Department"}, {"x1", "Alice", 30, "Eng"}})
			},
		},
		{
			name: "non-integer age",
			setup: func(t *testing.T, path string) {
				writeRows(t, path, [][]interface{}{{"ID", "Name", "Age", "Department"}, {1, "Alice", "old", "Eng"}})
			},
		},
		{
			name: "duplicate ids",
			setup: func(t *testing.T, path string) {
				writeRows(t, path, [][]interface{}{
					{"ID", "Name", "Age", "Department"},
					{1, "Alice", 30, "Eng"},
					{1, "Bob", 41, "Sales"},
				})
			},
		},
		{
			name: "not a workbook",
			setup: func(t *testing.T, path string) {
				require.NoError(t, os.WriteFile(path, []byte("ID,Name,Age,Department\n1,Alice,30,Eng\n"), 0644))
			},
		},
		{
			name: "empty file",
			setup: func(t *testing.T, path string) {
				require.NoError(t, os.WriteFile(path, nil, 0644))
			},
		},
	}

	for _, tc := range corruptCases {
		t.Run("recreates on "+tc.name, func(t *testing.T) {
			s := newTestStore(t)
			tc.setup(t, s.Path())

			table, report, err := s.Load()
			require.NoError(t, err)
			assert.True(t, table.Empty())
			assert.False(t, report.Created)
			require.True(t, report.Recovered())
			assert.Equal(t, s.Path(), report.Corrupt.Path)

			// The file now holds only the fixed header.
			assert.Equal(t, [][]string{model.Columns}, readRows(t, s.Path()))
		})
	}

	t.Run("blank rows are skipped", func(t *testing.T) {
		s := newTestStore(t)
		writeRows(t, s.Path(), [][]interface{}{
			{"ID", "Name", "Age", "Department"},
			{1, "Alice", 30, "Eng"},
			{nil, nil, nil, nil},
			{2, "Bob", 41, "Sales"},
		})

		table, _, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, table.IDs())
	})

	t.Run("missing trailing cells read as blank", func(t *testing.T) {
		s := newTestStore(t)
		writeRows(t, s.Path(), [][]interface{}{
			{"ID", "Name", "Age", "Department"},
			{1, "Alice", 30},
		})

		table, _, err := s.Load()
		require.NoError(t, err)
		require.Equal(t, 1, table.Len())
		assert.Equal(t, "", table.Rows[0].Department)
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rows []model.Employee
	}{
		{"sample", sampleTable().Rows},
		{"large integers", []model.Employee{
			{ID: 12345678901234567, Name: "Big", Age: 1234567890123456789, Department: "Eng"},
			{ID: 99, Name: "Keep", Age: 40, Department: "Ops"},
		}},
		{"negative integers", []model.Employee{
			{ID: -4, Name: "Neg", Age: -1, Department: "QA"},
		}},
		{"padded text", []model.Employee{
			{ID: 1, Name: "  Alice  ", Age: 30, Department: "Eng "},
		}},
		{"empty text", []model.Employee{
			{ID: 2, Name: "", Age: 22, Department: ""},
			{ID: 3, Name: "Zoe", Age: 23, Department: ""},
		}},
		{"numeric-looking text", []model.Employee{
			{ID: 5, Name: "007", Age: 45, Department: "1e5"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			require.NoError(t, s.Save(&model.Table{Rows: tt.rows}))

			got, report, err := s.Load()
			require.NoError(t, err)
			assert.False(t, report.Recovered())
			assert.Equal(t, tt.rows, got.Rows)
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(sampleTable()))

	smaller := &model.Table{Rows: []model.Employee{{ID: 9, Name: "Zed", Age: 50, Department: "HR"}}}
	require.NoError(t, s.Save(smaller))

	rows := readRows(t, s.Path())
	assert.Equal(t, [][]string{model.Columns, {"9", "Zed", "50", "HR"}}, rows)
}

func TestSaveCustomSheet(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "staff.xlsx"), "Staff", nil)
	require.NoError(t, s.Save(sampleTable()))

	f, err := excelize.OpenFile(s.Path())
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Staff"}, f.GetSheetList())

	table, report, err := s.Load()
	require.NoError(t, err)
	assert.False(t, report.Recovered())
	assert.Equal(t, 3, table.Len())
}

func TestSaveUnwritablePath(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing-dir", "employees.xlsx"), "", nil)

	err := s.Save(sampleTable())
	require.Error(t, err)
	var werr *model.PersistenceWriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, s.Path(), werr.Path)

	_, _, err = s.Load()
	require.ErrorAs(t, err, &werr)
}

func TestInit(t *testing.T) {
	s := newTestStore(t)
	assert.False(t, s.Exists())

	require.NoError(t, s.Init())
	assert.True(t, s.Exists())
	assert.Equal(t, [][]string{model.Columns}, readRows(t, s.Path()))

	err := s.Init()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestNewDefaults(t *testing.T) {
	s := New("employees.xlsx", "", nil)
	assert.Equal(t, DefaultSheet, s.Sheet())
	assert.Equal(t, "employees.xlsx", s.Path())
}
