package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netfeas/core"
	"github.com/katalvlaran/netfeas/dijkstra"
	"github.com/katalvlaran/netfeas/internal/scenario"
	"github.com/katalvlaran/netfeas/pathcost"
)

func newDistancesCommand(a *app) *cobra.Command {
	var (
		file   string
		source int
	)

	cmd := &cobra.Command{
		Use:   "distances",
		Short: "Print shortest distances from the source node",
		Long: `Print the shortest distance from the source to every node, one
"node distance" line per node. Roads under construction count as 1;
unreachable nodes print "inf".

Examples:
  netfeas distances -f roads.yaml
  netfeas distances -f roads.yaml --source 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := scenario.ReadRoadNetworkFile(file)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("source") {
				doc.Source = source
			}

			g, err := core.NewGraph(doc.Nodes, doc.Specs())
			if err != nil {
				return err
			}
			res, err := pathcost.New(pathcost.WithLogger(a.log)).ShortestDistances(g, doc.Source)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for v, d := range res.Dist {
				if d == dijkstra.Infinity {
					_, err = fmt.Fprintf(out, "%d inf\n", v)
				} else {
					_, err = fmt.Fprintf(out, "%d %d\n", v, d)
				}
				if err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Road-network scenario file")
	cmd.Flags().IntVar(&source, "source", 0, "Override the scenario source node")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
