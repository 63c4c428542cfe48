package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ReadEdgeList parses a vertex count followed by (u v w) triples until EOF.
//
// Errors:
//   - ErrMissingVertexCount: empty input.
//   - ErrBadToken: a non-integer token, or a negative vertex count; wrapped
//     with the 1-based token position.
//   - ErrTruncatedTriple: one or two tokens left after the last full triple.
//   - ErrVertexOutOfRange: an endpoint outside 1..N.
//   - any read error from r.
func ReadEdgeList(r io.Reader) (*EdgeList, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	pos := 0
	next := func() (int64, bool, error) {
		if !sc.Scan() {
			return 0, false, sc.Err()
		}
		pos++
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return 0, true, fmt.Errorf("%w: token %d %q", ErrBadToken, pos, sc.Text())
		}

		return v, true, nil
	}

	n, ok, err := next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMissingVertexCount
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: token %d: negative vertex count %d", ErrBadToken, pos, n)
	}
	list := &EdgeList{VertexCount: int(n)}

	for {
		var triple [3]int64
		got := 0
		for ; got < 3; got++ {
			v, ok, err := next()
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
			triple[got] = v
		}
		switch got {
		case 0:
			return list, nil
		case 3:
		default:
			return nil, fmt.Errorf("%w: %d of 3 tokens after edge %d", ErrTruncatedTriple, got, len(list.Edges))
		}

		t := Triple{U: int(triple[0]), V: int(triple[1]), Weight: triple[2]}
		if err := checkRange(t, list.VertexCount, len(list.Edges)); err != nil {
			return nil, err
		}
		list.Edges = append(list.Edges, t)
	}
}

func checkRange(t Triple, n, idx int) error {
	if t.U < 1 || t.U > n || t.V < 1 || t.V > n {
		return fmt.Errorf("%w: edge %d (%d,%d), vertices=%d", ErrVertexOutOfRange, idx, t.U, t.V, n)
	}

	return nil
}
