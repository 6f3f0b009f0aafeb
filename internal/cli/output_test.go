package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/jacksmith/emp/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestIsTerminal(t *testing.T) {
	// When running tests, stdout is typically not a terminal
	// We test with a regular file which should not be a terminal
	f, err := os.CreateTemp("", "test")
	if err != nil {
		t.Skip("cannot create temp file")
	}
	defer os.Remove(f.Name())
	defer f.Close()

	assert.False(t, IsTerminal(f), "temp file should not be a terminal")

	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf), "bytes.Buffer should not be a terminal")
}

func TestColorFunctions(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	assert.Equal(t, "\033[32mtest\033[0m", Green("test"))
	assert.Equal(t, "\033[31mtest\033[0m", Red("test"))
	assert.Equal(t, "\033[33mtest\033[0m", Yellow("test"))
	assert.Equal(t, "\033[90mtest\033[0m", Gray("test"))
	assert.Equal(t, "\033[1mtest\033[0m", Bold("test"))
	assert.True(t, ColorEnabled())

	SetColorEnabled(false)
	assert.False(t, ColorEnabled())
	assert.Equal(t, "test", Green("test"))
	assert.Equal(t, "test", Bold("test"))
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewTable().Render(&buf)
	assert.Equal(t, "", buf.String())
}

func TestTableMultipleRows(t *testing.T) {
	table := NewTable()
	table.AddRow("a", "bb", "ccc")
	table.AddRow("dddd", "e", "ff")

	var buf bytes.Buffer
	table.Render(&buf)

	expected := "a     bb  ccc\n" +
		"dddd  e   ff\n"
	assert.Equal(t, expected, buf.String())
}

func TestTableHeader(t *testing.T) {
	SetColorEnabled(false)

	table := NewTable()
	table.SetHeader("ID", "Name")
	table.AddRow("1", "Alice")
	table.AddRow("100", "Bo")

	var buf bytes.Buffer
	table.Render(&buf)

	expected := "ID   Name\n" +
		"---  -----\n" +
		"1    Alice\n" +
		"100  Bo\n"
	assert.Equal(t, expected, buf.String())
}

func TestTableHeaderAlignsWithColor(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	table := NewTable()
	table.SetHeader("ID", "Name")
	table.AddRow("1000", "Alice")

	var buf bytes.Buffer
	table.Render(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, visibleWidth(lines[0]), len("ID    Name"))
	assert.Equal(t, "----  -----", lines[1])
}

func TestTableTrailingBlankColumn(t *testing.T) {
	table := NewTable()
	table.AddRow("1", "Alice", "")
	table.AddRow("2", "Bob", "Eng")

	var buf bytes.Buffer
	table.Render(&buf)

	assert.Equal(t, "1  Alice\n2  Bob    Eng\n", buf.String())
}

func TestRenderEmployees(t *testing.T) {
	SetColorEnabled(false)

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		RenderEmployees(&buf, nil)
		assert.Equal(t, "No employee records found.\n", buf.String())
	})

	t.Run("rows in order", func(t *testing.T) {
		var buf bytes.Buffer
		RenderEmployees(&buf, []model.Employee{
			{ID: 2, Name: "Bob", Age: 41, Department: "Sales"},
			{ID: 1, Name: "Alice", Age: 30, Department: "Eng"},
		})

		expected := "ID  Name   Age  Department\n" +
			"--  -----  ---  ----------\n" +
			"2   Bob    41   Sales\n" +
			"1   Alice  30   Eng\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("long names are truncated", func(t *testing.T) {
		var buf bytes.Buffer
		RenderEmployees(&buf, []model.Employee{
			{ID: 1, Name: strings.Repeat("n", 100), Age: 30, Department: "Eng"},
		})
		assert.NotContains(t, buf.String(), strings.Repeat("n", DefaultMaxNameWidth))
		assert.Contains(t, buf.String(), "...")
	})
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"\033[32mhello\033[0m", 5},
		{"\033[31m\033[0m", 0},
		{"a\033[32mb\033[0mc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, visibleWidth(tt.input))
		})
	}
}

func TestTruncatePlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello..."},
		{"room for one char", "hello world", 4, "h..."},
		{"too short for ellipsis", "hello world", 3, "hel"},
		{"max 0", "hello", 0, ""},
		{"empty string", "", 10, ""},
		{"long name", strings.Repeat("x", 100), 20, strings.Repeat("x", 17) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, visibleWidth(got), tt.maxWidth)
		})
	}
}

func TestTruncateWithANSI(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	got := Truncate(Green("hello world"), 8)
	assert.Equal(t, 8, visibleWidth(got))
	assert.Contains(t, got, "...")
	assert.True(t, strings.HasSuffix(got, colorReset), "should end with ANSI reset")

	short := Green("hi")
	assert.Equal(t, short, Truncate(short, 10))
}
