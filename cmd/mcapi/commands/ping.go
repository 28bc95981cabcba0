package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewPingCommand creates the ping command.
func NewPingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check API health and credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			ping, err := client.Ping(ctx)
			if err != nil {
				return fmt.Errorf("failed to ping API: %w", err)
			}

			return render(cmd.OutOrStdout(), ping, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, ping.HealthStatus)

				return err
			})
		},
	}
}
