package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netfeas/internal/scenario"
	"github.com/katalvlaran/netfeas/unionfind"
)

func newRequestsCommand(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "requests",
		Short: "Approve or deny friend requests under restrictions",
		Long: `Process friend requests in order and print one decision per line.
A request is denied when approving it would put a restricted pair of
houses in the same group.

Scenario format:
  houses: 5
  restrictions: [[0, 1], [1, 2]]
  requests: [[0, 4], [1, 2]]

Examples:
  netfeas requests -f requests.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := scenario.ReadFriendRequestsFile(file)
			if err != nil {
				return err
			}

			decisions, err := unionfind.ProcessRequests(doc.Houses, doc.RestrictionPairs(), doc.RequestPairs(),
				unionfind.WithLogger(a.log))
			if err != nil {
				return err
			}

			for _, d := range decisions {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), d); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Friend-request scenario file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
