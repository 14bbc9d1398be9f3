package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s41205/hangarctl/internal/i18n"
)

func newDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <workload-id>",
		Short: "Delete a workload and everything attached to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseWorkloadID(args[0])
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("refusing to delete workload %d without --yes", id)
			}
			client, _, err := newClient()
			if err != nil {
				return err
			}
			if err := client.Purge(context.Background(), id); err != nil {
				return err
			}
			fmt.Println(i18n.T("danger.deleted"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")
	return cmd
}
