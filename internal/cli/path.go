package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlds/dijkstra"
	"github.com/katalvlaran/lvlds/graphio"
)

func newPathCommand(a *app) *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "path [file]",
		Short: "Print shortest distances from --from, or the shortest path to --to",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.readEdgeList(args)
			if err != nil {
				return err
			}
			g, hs, err := graphio.BuildGraph(list, a.cfg.GraphOptions()...)
			if err != nil {
				return errors.Wrap(err, "building graph")
			}
			for _, id := range []int{from, to} {
				if id != 0 && (id < 1 || id > len(hs)) {
					return errors.Errorf("vertex %d out of range 1..%d", id, len(hs))
				}
			}
			if from == 0 {
				return errors.New("--from is required")
			}

			res, err := dijkstra.Dijkstra(g, hs[from-1], dijkstra.WithReturnPath())
			if err != nil {
				return errors.Wrap(err, "shortest paths")
			}
			if to == 0 {
				for _, v := range g.Vertices() {
					if d, ok := res.Dist[v]; ok {
						id, _ := g.Vertex(v)
						fmt.Fprintln(a.stdout, id, d)
					}
				}
				return nil
			}

			path, err := res.PathTo(hs[to-1])
			if err != nil {
				return err
			}
			ids := make([]int, len(path))
			for i, v := range path {
				ids[i], _ = g.Vertex(v)
			}
			fmt.Fprintln(a.stdout, res.Dist[hs[to-1]])
			fmt.Fprintln(a.stdout, joinInts(ids))

			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 1, "source vertex id")
	cmd.Flags().IntVar(&to, "to", 0, "target vertex id (0 = print all distances)")
	addGraphFlags(cmd)

	return cmd
}
