package cli

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlds/clustering"
)

func newClusterCommand(a *app) *cobra.Command {
	var show bool
	cmd := &cobra.Command{
		Use:   "cluster [file]",
		Short: "Print the max spacing of a k-clustering of a weighted edge list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.readEdgeList(args)
			if err != nil {
				return err
			}
			res, err := clustering.MaxSpacing(list.VertexCount, list.ClusteringEdges(), a.cfg.Clusters)
			if err != nil {
				return errors.Wrap(err, "clustering")
			}
			log.Debugf("%d merges, %d clusters", len(res.Merges), len(res.Clusters))

			fmt.Fprintln(a.stdout, res.Spacing)
			if show {
				for _, c := range res.Clusters {
					fmt.Fprintln(a.stdout, joinInts(c))
				}
			}

			return nil
		},
	}
	cmd.Flags().IntP("clusters", "k", 4, "number of clusters")
	cmd.Flags().BoolVar(&show, "show-clusters", false, "also print the members of each cluster")

	return cmd
}
