package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"chirp/internal/ipc"
)

func newEnqueueCommand(ctx *commandContext) *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "enqueue INSTRUCTION...",
		Short: "Submit a raw instruction to the running daemon",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.Join(args, " ")
			correlationToken := strings.TrimSpace(token)
			if correlationToken == "" {
				correlationToken = uuid.NewString()
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Enqueue(correlationToken, raw)
				if err != nil {
					return err
				}
				if !resp.Accepted {
					return fmt.Errorf("instruction rejected: %s", resp.Message)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Enqueued %q (token %s)\n", raw, correlationToken)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "Correlation token to attach (defaults to a generated one)")
	return cmd
}
