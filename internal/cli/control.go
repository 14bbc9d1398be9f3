package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s41205/hangarctl/internal/api"
	"github.com/s41205/hangarctl/internal/i18n"
)

func newStartCmd() *cobra.Command {
	return newControlCmd("start", "Start a workload", "controls.start_success",
		func(ctx context.Context, c *api.Client, id int) error { return c.Start(ctx, id) })
}

func newStopCmd() *cobra.Command {
	return newControlCmd("stop", "Stop a workload", "controls.stop_success",
		func(ctx context.Context, c *api.Client, id int) error { return c.Stop(ctx, id) })
}

func newRestartCmd() *cobra.Command {
	return newControlCmd("restart", "Restart a workload", "controls.restart_success",
		func(ctx context.Context, c *api.Client, id int) error { return c.Restart(ctx, id) })
}

func newControlCmd(verb, short, successKey string, call func(context.Context, *api.Client, int) error) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <workload-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseWorkloadID(args[0])
			if err != nil {
				return err
			}
			client, _, err := newClient()
			if err != nil {
				return err
			}
			if err := call(context.Background(), client, id); err != nil {
				return err
			}
			fmt.Println(i18n.T(successKey))
			return nil
		},
	}
}
