package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netfeas/internal/render"
	"github.com/katalvlaran/netfeas/internal/scenario"
	"github.com/katalvlaran/netfeas/pathcost"
)

func newResolveCommand(a *app) *cobra.Command {
	var (
		file        string
		source      int
		destination int
		target      int64
		strategy    string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Assign weights to roads under construction to hit a target cost",
		Long: `Assign a positive weight to every road under construction so the
shortest route from source to destination costs exactly the target, then
print the roads in input order.

Scenario format:
  nodes: 5
  source: 0
  destination: 1
  target: 5
  roads:
    - {from: 4, to: 1}           # no weight: under construction
    - {from: 0, to: 3, weight: 2}

Examples:
  netfeas resolve -f roads.yaml
  netfeas resolve -f roads.yaml --target 7 --strategy saturate --format dot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := scenario.ReadRoadNetworkFile(file)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("source") {
				doc.Source = source
			}
			if flags.Changed("destination") {
				doc.Destination = destination
			}
			if flags.Changed("target") {
				doc.Target = target
			}

			s, err := pathcost.ParseStrategy(strategy)
			if err != nil {
				return err
			}
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			r := pathcost.New(pathcost.WithStrategy(s), pathcost.WithLogger(a.log))
			roads, err := r.ResolveEdges(doc.Nodes, doc.Specs(), doc.Source, doc.Destination, doc.Target)
			if err != nil {
				return err
			}

			return render.Write(cmd.OutOrStdout(), f, doc.Nodes, roads)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&file, "file", "f", "", "Road-network scenario file")
	flags.IntVar(&source, "source", 0, "Override the scenario source node")
	flags.IntVar(&destination, "destination", 0, "Override the scenario destination node")
	flags.Int64Var(&target, "target", 0, "Override the scenario target cost")
	flags.StringVar(&strategy, "strategy", pathcost.StrategyFirstUnknown.String(), "Gap strategy (first-unknown, saturate)")
	flags.StringVar(&format, "format", render.FormatText.String(), "Output format (text, dot)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
