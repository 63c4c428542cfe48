package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlds/bfs"
	"github.com/katalvlaran/lvlds/core"
	"github.com/katalvlaran/lvlds/dfs"
	"github.com/katalvlaran/lvlds/graphio"
)

func addGraphFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("directed", false, "build a directed graph")
	cmd.Flags().String("storage", "dense", "adjacency storage: dense or list")
}

func newGraphCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph [file]",
		Short: "Read a weighted edge list and print the vertex count and the graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.readEdgeList(args)
			if err != nil {
				return err
			}
			g, _, err := graphio.BuildGraph(list, a.cfg.GraphOptions()...)
			if err != nil {
				return errors.Wrap(err, "building graph")
			}
			log.Debugf("graph: %+v", g.Stats())

			return graphio.WriteGraph(a.stdout, g, a.cfg.RenderMode())
		},
	}
	cmd.Flags().String("mode", "nodes", "render mode: nodes, all-edges, out-edges or in-edges")
	addGraphFlags(cmd)

	return cmd
}

func newBFSCommand(a *app) *cobra.Command {
	var (
		from     int
		maxDepth int
	)
	cmd := &cobra.Command{
		Use:   "bfs [file]",
		Short: "Print vertices reachable from --from in breadth-first order with their depth",
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
			if from < 1 || from > len(hs) {
				return errors.Errorf("--from %d out of range 1..%d", from, len(hs))
			}

			res, err := bfs.BFS(g, hs[from-1], bfs.WithContext(cmd.Context()), bfs.WithMaxDepth(maxDepth))
			if err != nil {
				return errors.Wrap(err, "bfs")
			}
			for _, v := range res.Order {
				id, _ := g.Vertex(v)
				fmt.Fprintln(a.stdout, id, res.Depth[v])
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 1, "start vertex id")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop beyond this depth (0 = unlimited)")
	addGraphFlags(cmd)

	return cmd
}

func newDFSCommand(a *app) *cobra.Command {
	var (
		from  int
		topo  bool
		whole bool
	)
	cmd := &cobra.Command{
		Use:   "dfs [file]",
		Short: "Print vertices in depth-first post-order, or in topological order with --topological",
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

			var order []core.VertexHandle
			if topo {
				if order, err = dfs.TopologicalSort(g, dfs.WithCancelContext(cmd.Context())); err != nil {
					return errors.Wrap(err, "topological sort")
				}
			} else {
				opts := []dfs.Option{dfs.WithContext(cmd.Context())}
				start := core.VertexHandle{}
				if whole {
					opts = append(opts, dfs.WithFullTraversal())
				} else {
					if from < 1 || from > len(hs) {
						return errors.Errorf("--from %d out of range 1..%d", from, len(hs))
					}
					start = hs[from-1]
				}
				res, err := dfs.DFS(g, start, opts...)
				if err != nil {
					return errors.Wrap(err, "dfs")
				}
				order = res.Order
			}

			ids := make([]int, len(order))
			for i, v := range order {
				ids[i], _ = g.Vertex(v)
			}
			fmt.Fprintln(a.stdout, joinInts(ids))

			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 1, "start vertex id")
	cmd.Flags().BoolVar(&whole, "all", false, "cover every component")
	cmd.Flags().BoolVar(&topo, "topological", false, "print a topological order (directed graphs)")
	addGraphFlags(cmd)

	return cmd
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, " ")
}
