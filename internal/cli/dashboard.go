package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s41205/hangarctl/internal/dashboard"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard <workload-id>",
		Short: "Open the live dashboard for a workload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseWorkloadID(args[0])
			if err != nil {
				return err
			}
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			notice, err := dashboard.Run(client, currentUser(cfg), id, logger)
			if err != nil {
				return err
			}
			if notice != "" {
				fmt.Println(notice)
			}
			return nil
		},
	}
}
