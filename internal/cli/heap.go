package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlds/heap"
)

func newHeapCommand(a *app) *cobra.Command {
	var (
		maxHeap bool
		count   int
	)
	cmd := &cobra.Command{
		Use:   "heap",
		Short: "Heap smoke test: insert 1..count, extract the top, insert 1, printing the array after each step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return errors.Errorf("--count must be at least 1, got %d", count)
			}
			var policy heap.Policy[int] = heap.MinOrder[int]{}
			if maxHeap {
				policy = heap.MaxOrder[int]{}
			}
			h := heap.New[int](policy, heap.WithCapacity(count+1))
			for i := 1; i <= count; i++ {
				h.Insert(i)
			}
			fmt.Fprintln(a.stdout, h)

			if _, err := h.ExtractTop(); err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, h)

			h.Insert(1)
			fmt.Fprintln(a.stdout, h)

			return nil
		},
	}
	cmd.Flags().BoolVar(&maxHeap, "max", false, "use a max-heap")
	cmd.Flags().IntVar(&count, "count", 10, "number of values to insert")

	return cmd
}
