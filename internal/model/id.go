package model

import (
	"strconv"
	"strings"
)

// ParseID parses an employee ID. Surrounding whitespace is ignored.
// Returns *InvalidInputError if s is not an integer.
func ParseID(s string) (int, error) {
	return parseInt("id", s)
}

// ParseAge parses an age. Surrounding whitespace is ignored.
// Returns *InvalidInputError if s is not an integer.
func ParseAge(s string) (int, error) {
	return parseInt("age", s)
}

func parseInt(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &InvalidInputError{Field: field, Value: s}
	}
	return n, nil
}

// MatchColumns reports whether header holds exactly the fixed column set,
// in any order. Header cells are compared after trimming whitespace.
func MatchColumns(header []string) bool {
	if len(header) != len(Columns) {
		return false
	}
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		seen[strings.TrimSpace(h)] = true
	}
	for _, c := range Columns {
		if !seen[c] {
			return false
		}
	}
	return true
}
