package main

import (
	"strconv"
	"strings"

	"github.com/jacksmith/emp/internal/storage"
	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for emp.

To load completions:

Bash:
  $ source <(emp completion bash)

Zsh:
  $ emp completion zsh > "${fpath[1]}/_emp"

Fish:
  $ emp completion fish | source
`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "bash",
			Short: "Generate bash completion script",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			},
		},
		&cobra.Command{
			Use:   "zsh",
			Short: "Generate zsh completion script",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "fish",
			Short: "Generate fish completion script",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			},
		},
	)
	return cmd
}

// completeEmployeeIDs completes the first argument with IDs from the
// spreadsheet. The file is only read, never created or repaired.
func completeEmployeeIDs(a *app) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		if err := a.setup(cmd); err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		table, err := storage.ReadTable(a.store.Path())
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		var ids []string
		for _, e := range table.Rows {
			id := strconv.Itoa(e.ID)
			if strings.HasPrefix(id, toComplete) {
				ids = append(ids, id+"\t"+e.Name)
			}
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	}
}
