package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chirp/internal/ipc"
)

func newTasksCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List tasks registered with the daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.TaskList()
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				if len(resp.Tasks) == 0 {
					fmt.Fprintln(stdout, "No tasks registered")
					return nil
				}
				for _, name := range resp.Tasks {
					fmt.Fprintln(stdout, name)
				}
				return nil
			})
		},
	}
}
