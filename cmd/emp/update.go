package main

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jacksmith/emp/internal/model"
	"github.com/jacksmith/emp/internal/ops"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newUpdateCmd(a *app) *cobra.Command {
	var (
		changes     ops.EmployeeChanges
		interactive bool
	)

	cmd := &cobra.Command{
		Use:     "update <id>",
		Aliases: []string{"edit"},
		Short:   "Update an employee",
		Long: `Update an employee's name, age or department and save the spreadsheet.

Fields that are not given keep their current value. The ID cannot change.
Use -i to edit the fields as YAML in $EDITOR.

Examples:
  emp update 1 --age=31
  emp update 1 --name="Alice Smith" --department=Ops
  emp update 1 -i`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeEmployeeIDs(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, a)
			if err != nil {
				return err
			}

			cur, err := sess.Get(args[0])
			if err != nil {
				return err
			}
			if interactive {
				changes, err = editEmployee(a, cur)
				if err != nil {
					return err
				}
			}
			if changes.IsEmpty() {
				fmt.Fprintln(cmd.OutOrStdout(), "No changes made.")
				return nil
			}

			e, err := sess.Update(args[0], changes)
			if err != nil {
				return err
			}
			return saveSession(cmd, sess, fmt.Sprintf("Employee %d updated.", e.ID))
		},
	}

	cmd.Flags().StringVar(&changes.Name, "name", "", "new name")
	cmd.Flags().StringVar(&changes.Age, "age", "", "new age (whole number)")
	cmd.Flags().StringVar(&changes.Department, "department", "", "new department")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "edit in $EDITOR")
	cmd.MarkFlagsMutuallyExclusive("interactive", "name")
	cmd.MarkFlagsMutuallyExclusive("interactive", "age")
	cmd.MarkFlagsMutuallyExclusive("interactive", "department")
	return cmd
}

// editableEmployee is the document shown in the editor.
type editableEmployee struct {
	Name       string `yaml:"name"`
	Age        int    `yaml:"age"`
	Department string `yaml:"department"`
}

// editedEmployee reads the document back. Age stays raw so a bad value
// is reported the same way as on the command line.
type editedEmployee struct {
	Name       string `yaml:"name"`
	Age        string `yaml:"age"`
	Department string `yaml:"department"`
}

// editEmployee opens cur in the editor and returns the fields that differ.
func editEmployee(a *app, cur model.Employee) (ops.EmployeeChanges, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Editing employee %d. Blank values keep the current value.\n", cur.ID)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(editableEmployee{Name: cur.Name, Age: cur.Age, Department: cur.Department}); err != nil {
		return ops.EmployeeChanges{}, fmt.Errorf("failed to encode employee: %w", err)
	}
	if err := enc.Close(); err != nil {
		return ops.EmployeeChanges{}, fmt.Errorf("failed to encode employee: %w", err)
	}

	edited, err := a.getEditor().Edit(buf.Bytes(), ".yaml")
	if err != nil {
		return ops.EmployeeChanges{}, err
	}

	var doc editedEmployee
	if err := yaml.Unmarshal(edited, &doc); err != nil {
		return ops.EmployeeChanges{}, fmt.Errorf("failed to parse edited employee: %w", err)
	}

	var ch ops.EmployeeChanges
	if doc.Name != cur.Name {
		ch.Name = doc.Name
	}
	if doc.Age != strconv.Itoa(cur.Age) {
		ch.Age = doc.Age
	}
	if doc.Department != cur.Department {
		ch.Department = doc.Department
	}
	return ch, nil
}
