package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s41205/hangarctl/internal/model"
)

func newLogsCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "logs <workload-id>",
		Short: "Print the logs of a workload",
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

			text, err := client.Logs(context.Background(), id)
			if err != nil {
				return err
			}
			if raw {
				fmt.Print(text)
				return nil
			}
			for _, line := range model.ParseLogs(text) {
				if line.Timestamp != "" {
					fmt.Printf("%s %s\n", line.Timestamp, line.Message)
				} else {
					fmt.Println(line.Message)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the log stream unparsed")
	return cmd
}
