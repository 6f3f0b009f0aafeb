package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jacksmith/emp/internal/cli"
	"github.com/jacksmith/emp/internal/model"
	"github.com/jacksmith/emp/internal/ops"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "view"},
		Short:   "List employees",
		Long: `List all employees in file order.

Examples:
  emp list
  emp list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, a)
			if err != nil {
				return err
			}

			rows, err := sess.List()
			if err != nil && !errors.Is(err, model.ErrNoRecords) {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if rows == nil {
					rows = []model.Employee{}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			cli.RenderEmployees(out, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print employees as JSON")
	return cmd
}

// openSession loads the table for a one-shot command. Notices about a
// created or recreated file go to stderr so stdout stays parseable.
func openSession(cmd *cobra.Command, a *app) (*ops.Session, error) {
	sess, report, err := ops.Open(a.store)
	if err != nil {
		return nil, err
	}
	if report.Created || report.Recovered() {
		printLoadReport(cmd.ErrOrStderr(), report)
	}
	return sess, nil
}

// saveSession writes the table and reports what changed.
func saveSession(cmd *cobra.Command, sess *ops.Session, msg string) error {
	if err := sess.Save(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
