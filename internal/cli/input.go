package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlds/graphio"
)

// readEdgeList parses args[0], or stdin when no file (or "-") is given.
func (a *app) readEdgeList(args []string) (*graphio.EdgeList, error) {
	var (
		r    io.Reader = a.stdin
		name           = "stdin"
	)
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		r, name = f, args[0]
	}

	log.Debugf("reading edge list from %s", name)
	list, err := graphio.ReadEdgeList(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	log.Debugf("read %d vertices, %d edges", list.VertexCount, len(list.Edges))

	return list, nil
}
