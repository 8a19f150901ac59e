// Package tsplib - tour file parsing and structural replay.
package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/maxwelljohn/topic-sort/order"
)

// Tour is a parsed TYPE: TOUR file. Nodes are 0-indexed (the file format
// is 1-indexed); Closed records whether the -1 terminator was present,
// i.e. whether the final loop-closing edge is part of the tour.
type Tour struct {
	Dimension int
	Nodes     []int
	Closed    bool
}

// ParseTour reads a TYPE: TOUR file: a key:value header, TOUR_SECTION,
// one 1-indexed node per line, an optional -1 terminator, an optional EOF
// trailer.
//
// Errors: ErrUnsupportedType, wrapped ErrFormat, or the reader's error.
func ParseTour(r io.Reader) (*Tour, error) {
	sc := bufio.NewScanner(r)

	h, err := readHeader(sc, "TOUR_SECTION")
	if err != nil {
		return nil, err
	}
	if h["TYPE"] != "TOUR" {
		return nil, ErrUnsupportedType
	}
	n, err := h.dimension()
	if err != nil {
		return nil, err
	}

	t := &Tour{Dimension: n, Nodes: make([]int, 0, n)}

	var line string
	for sc.Scan() {
		line = strings.TrimSpace(sc.Text())
		if line == "-1" {
			t.Closed = true
			break
		}
		if line == "" || line == "EOF" {
			break
		}
		v, aerr := strconv.Atoi(line)
		if aerr != nil || v < 1 || v > n {
			return nil, fmt.Errorf("%w: tour node %q", ErrFormat, line)
		}
		t.Nodes = append(t.Nodes, v-1)
	}
	if err = expectTrailer(sc); err != nil {
		return nil, err
	}
	if len(t.Nodes) != n {
		return nil, fmt.Errorf("%w: tour lists %d of %d nodes", ErrFormat, len(t.Nodes), n)
	}

	return t, nil
}

// Replay feeds the tour's edges into a fresh cycle engine over p:
// consecutive pairs first, then the closing pair when the -1 terminator
// was present. The engine enforces every structural property on the way
// in (no revisits, no premature subtour), so a bad tour fails with the
// engine's own sentinels. An unterminated tour comes back incomplete;
// callers decide whether that is acceptable.
//
// Errors: ErrTourMismatch when dimensions disagree; otherwise whatever the
// engine surfaces.
func (t *Tour) Replay(p *order.Problem) (*order.Solution, error) {
	if p.Dimension() != t.Dimension {
		return nil, ErrTourMismatch
	}

	s, err := order.NewCycleSolution(p)
	if err != nil {
		return nil, err
	}

	var i int
	for i = 0; i+1 < len(t.Nodes); i++ {
		if err = s.AddEdge(t.Nodes[i], t.Nodes[i+1]); err != nil {
			return nil, err
		}
	}
	if t.Closed {
		if err = s.AddEdge(t.Nodes[len(t.Nodes)-1], t.Nodes[0]); err != nil {
			return nil, err
		}
	}

	return s, nil
}
