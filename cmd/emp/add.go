package main

import (
	"fmt"

	"github.com/jacksmith/emp/internal/ops"
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	var in ops.EmployeeInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		Long: `Add an employee and save the spreadsheet.

The ID must be a whole number not used by any other employee.

Examples:
  emp add --id=1 --name=Alice --age=30 --department=Eng
  emp add --id 2 --name "Bob Stone" --age 41`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, a)
			if err != nil {
				return err
			}
			e, err := sess.Add(in)
			if err != nil {
				return err
			}
			return saveSession(cmd, sess, fmt.Sprintf("Employee %d added.", e.ID))
		},
	}

	cmd.Flags().StringVar(&in.ID, "id", "", "employee ID (whole number)")
	cmd.Flags().StringVar(&in.Name, "name", "", "employee name")
	cmd.Flags().StringVar(&in.Age, "age", "", "employee age (whole number)")
	cmd.Flags().StringVar(&in.Department, "department", "", "department")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("age")
	return cmd
}
