package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an employee",
		Long: `Delete an employee by ID and save the spreadsheet.

Examples:
  emp delete 7`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeEmployeeIDs(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, a)
			if err != nil {
				return err
			}
			e, err := sess.Delete(args[0])
			if err != nil {
				return err
			}
			return saveSession(cmd, sess, fmt.Sprintf("Employee %d deleted.", e.ID))
		},
	}
}
