package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s41205/hangarctl/internal/i18n"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <workload-id>",
		Short: "Print the run state and metrics of a workload",
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
			ctx := context.Background()

			raw, err := client.WorkloadStatus(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(i18n.Status(raw))

			// Metrics are best effort; a stopped workload has none.
			if m, err := client.Metrics(ctx, id); err == nil && m != nil {
				fmt.Printf("cpu: %.1f%%\n", m.CPUUsage)
				fmt.Printf("ram: %.1f / %.1f MiB\n", m.MemoryUsage, m.MemoryLimit)
			}
			return nil
		},
	}
}
