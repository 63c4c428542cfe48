package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlds/core"
)

// WriteGraph writes the vertex count line followed by core.Render output.
func WriteGraph[V, E any](w io.Writer, g *core.Graph[V, E], mode core.RenderMode) error {
	if _, err := fmt.Fprintln(w, g.VertexCount()); err != nil {
		return err
	}

	return core.Render(w, g, mode)
}

type edgeKey struct {
	u, v int
	w    int64
}

// ParseRendered reads WriteGraph output in all-edges or out-edges mode back
// into an EdgeList. "In:" lines are ignored. On bidirectional output every
// edge shows up once per endpoint; the second sighting (v u w) of an emitted
// (u v w) is dropped, so each edge is reported once, oriented as first seen.
func ParseRendered(r io.Reader, directed bool) (*EdgeList, error) {
	sc := bufio.NewScanner(r)
	line := 0
	var list *EdgeList
	pending := map[edgeKey]int{}

	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if list == nil {
			n, err := strconv.Atoi(fields[0])
			if err != nil || len(fields) != 1 || n < 0 {
				return nil, fmt.Errorf("%w: line %d: vertex count %q", ErrMissingVertexCount, line, sc.Text())
			}
			list = &EdgeList{VertexCount: n}
			continue
		}

		switch fields[0] {
		case "In:":
			continue
		case "Out:":
		default:
			return nil, fmt.Errorf("%w: line %d: unexpected %q", ErrBadToken, line, fields[0])
		}
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: line %d: %d of 3 tokens", ErrTruncatedTriple, line, len(fields)-1)
		}
		var nums [3]int64
		for i, f := range fields[1:] {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d %q", ErrBadToken, line, f)
			}
			nums[i] = v
		}
		t := Triple{U: int(nums[0]), V: int(nums[1]), Weight: nums[2]}
		if err := checkRange(t, list.VertexCount, len(list.Edges)); err != nil {
			return nil, err
		}

		if !directed {
			k := edgeKey{t.U, t.V, t.Weight}
			if pending[k] > 0 {
				pending[k]--
				continue
			}
			pending[edgeKey{t.V, t.U, t.Weight}]++
		}
		list.Edges = append(list.Edges, t)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrMissingVertexCount
	}

	return list, nil
}
