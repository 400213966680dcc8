package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"chirp/internal/ipc"
)

func newParamsCommand(ctx *commandContext) *cobra.Command {
	paramsCmd := &cobra.Command{
		Use:   "params",
		Short: "Inspect and update daemon parameters",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.ParamList()
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				if len(resp.Parameters) == 0 {
					fmt.Fprintln(stdout, "No parameters set")
					return nil
				}
				names := make([]string, 0, len(resp.Parameters))
				for name := range resp.Parameters {
					names = append(names, name)
				}
				sort.Strings(names)
				rows := make([][2]string, 0, len(names))
				for _, name := range names {
					rows = append(rows, [2]string{name, resp.Parameters[name]})
				}
				fmt.Fprintln(stdout, renderTable("Name", "Value", rows, false))
				return nil
			})
		},
	}

	getCmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Show one parameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.ParamGet(args[0])
				if err != nil {
					return err
				}
				if !resp.Present {
					return fmt.Errorf("parameter %q is not set", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", resp.Name, resp.Value)
				return nil
			})
		},
	}

	// Set goes through the instruction queue so CLI writes obey the same
	// ordering as carrier-decoded writes.
	setCmd := &cobra.Command{
		Use:   "set NAME [VALUE...]",
		Short: "Set a parameter via the instruction queue",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := "SET " + strings.Join(args, " ")
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Enqueue(uuid.NewString(), raw)
				if err != nil {
					return err
				}
				if !resp.Accepted {
					return fmt.Errorf("instruction rejected: %s", resp.Message)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Enqueued %q\n", raw)
				return nil
			})
		},
	}

	paramsCmd.AddCommand(listCmd, getCmd, setCmd)
	return paramsCmd
}
