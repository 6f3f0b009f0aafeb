package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/jacksmith/emp/internal/cli"
	"github.com/jacksmith/emp/internal/model"
	"github.com/jacksmith/emp/internal/ops"
	"github.com/jacksmith/emp/internal/storage"
	"github.com/spf13/cobra"
)

// Menu choices, in the order they are numbered.
const (
	choiceView   = "view"
	choiceAdd    = "add"
	choiceUpdate = "update"
	choiceDelete = "delete"
	choiceSave   = "save"
)

var menuChoices = []string{choiceView, choiceAdd, choiceUpdate, choiceDelete, choiceSave}

var menuLabels = map[string]string{
	choiceView:   "View Employees",
	choiceAdd:    "Add Employee",
	choiceUpdate: "Update Employee",
	choiceDelete: "Delete Employee",
	choiceSave:   "Save & Exit",
}

// runMenu loads the table and serves menu choices until the operator saves
// or input ends. Data errors are printed and the loop continues.
func runMenu(cmd *cobra.Command, a *app) error {
	p := cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	sess, report, err := ops.Open(a.store)
	if err != nil {
		return err
	}
	printLoadReport(p.Out(), report)

	for {
		p.Println()
		p.Println(cli.Bold("Employee Manager"))
		for i, c := range menuChoices {
			p.Printf("%d. %s\n", i+1, menuLabels[c])
		}

		input, err := p.Ask("Enter choice: ")
		if err != nil {
			return quitMenu(p, sess, err)
		}

		choice, err := cli.MatchChoice(input, menuChoices)
		if err != nil {
			a.logger.Debug("invalid menu choice", "input", input, "error", err)
			p.Println(cli.Red("Invalid choice. Try again."))
			continue
		}

		switch choice {
		case choiceView:
			var rows []model.Employee
			rows, err = sess.List()
			if errors.Is(err, model.ErrNoRecords) {
				err = nil
			}
			if err == nil {
				cli.RenderEmployees(p.Out(), rows)
			}
		case choiceAdd:
			err = promptAdd(p, sess)
		case choiceUpdate:
			err = promptUpdate(p, sess)
		case choiceDelete:
			err = promptDelete(p, sess)
		case choiceSave:
			if err = sess.Save(); err == nil {
				p.Println(cli.Green("Data saved to " + a.store.Path() + "."))
				return nil
			}
		}

		if errors.Is(err, io.EOF) {
			return quitMenu(p, sess, err)
		}
		if err != nil {
			p.Println(cli.Red(cli.FormatError(err)))
		}
	}
}

// quitMenu ends the loop when input runs out. Unsaved changes are dropped.
func quitMenu(p *cli.Prompter, sess *ops.Session, err error) error {
	if !errors.Is(err, io.EOF) {
		return err
	}
	p.Println()
	if sess.Dirty() {
		p.Println(cli.Yellow("Input closed; unsaved changes were discarded."))
	} else {
		p.Println("Input closed; exiting.")
	}
	return nil
}

func printLoadReport(w io.Writer, r *storage.LoadReport) {
	switch {
	case r.Created:
		fmt.Fprintln(w, cli.Yellow(fmt.Sprintf("Employee file not found. Created %s.", r.Path)))
	case r.Recovered():
		fmt.Fprintln(w, cli.Yellow("Error loading employee file: "+r.Corrupt.Error()))
		fmt.Fprintln(w, cli.Yellow(fmt.Sprintf("Recreated %s with no records.", r.Path)))
	default:
		fmt.Fprintln(w, cli.Green(fmt.Sprintf("Loaded %d employees from %s.", r.Rows, r.Path)))
	}
}

// askAll asks each label in turn and stops at the first read error.
func askAll(p *cli.Prompter, labels ...string) ([]string, error) {
	answers := make([]string, 0, len(labels))
	for _, label := range labels {
		s, err := p.Ask(label)
		if err != nil {
			return nil, err
		}
		answers = append(answers, s)
	}
	return answers, nil
}

func promptAdd(p *cli.Prompter, sess *ops.Session) error {
	id, err := p.Ask("Enter ID: ")
	if err != nil {
		return err
	}
	// Reject a taken or malformed ID before asking for the rest.
	if err := sess.CheckNewID(id); err != nil {
		return err
	}

	fields, err := askAll(p, "Enter Name: ", "Enter Age: ", "Enter Department: ")
	if err != nil {
		return err
	}

	e, err := sess.Add(ops.EmployeeInput{
		ID:         id,
		Name:       fields[0],
		Age:        fields[1],
		Department: fields[2],
	})
	if err != nil {
		return err
	}
	p.Println(cli.Green(fmt.Sprintf("Employee %d added.", e.ID)))
	return nil
}

func promptUpdate(p *cli.Prompter, sess *ops.Session) error {
	id, err := p.Ask("Enter ID to update: ")
	if err != nil {
		return err
	}
	cur, err := sess.Get(id)
	if err != nil {
		return err
	}

	p.Println("Leave blank to keep existing value.")
	fields, err := askAll(p,
		fmt.Sprintf("New Name [%s]: ", cur.Name),
		fmt.Sprintf("New Age [%d]: ", cur.Age),
		fmt.Sprintf("New Department [%s]: ", cur.Department),
	)
	if err != nil {
		return err
	}

	e, err := sess.Update(id, ops.EmployeeChanges{
		Name:       fields[0],
		Age:        fields[1],
		Department: fields[2],
	})
	if err != nil {
		return err
	}
	p.Println(cli.Green(fmt.Sprintf("Employee %d updated.", e.ID)))
	return nil
}

func promptDelete(p *cli.Prompter, sess *ops.Session) error {
	id, err := p.Ask("Enter ID to delete: ")
	if err != nil {
		return err
	}
	e, err := sess.Delete(id)
	if err != nil {
		return err
	}
	p.Println(cli.Green(fmt.Sprintf("Employee %d deleted.", e.ID)))
	return nil
}
