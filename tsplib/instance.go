// Package tsplib - EUC_2D instance parsing and problem construction.
package tsplib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/maxwelljohn/topic-sort/order"
)

// Sentinel errors for TSPLIB parsing.
var (
	// ErrFormat indicates structurally malformed input.
	ErrFormat = errors.New("tsplib: malformed input")
	// ErrUnsupportedType indicates a TYPE other than TSP (or TOUR for tours).
	ErrUnsupportedType = errors.New("tsplib: unsupported TYPE")
	// ErrUnsupportedWeight indicates an EDGE_WEIGHT_TYPE other than EUC_2D.
	ErrUnsupportedWeight = errors.New("tsplib: unsupported EDGE_WEIGHT_TYPE")
	// ErrTourMismatch indicates a tour whose dimension does not match the
	// instance it is evaluated against.
	ErrTourMismatch = errors.New("tsplib: tour dimension mismatch")
)

// Instance is a parsed EUC_2D TSPLIB instance. Coordinates are stored as
// (x, y) pairs; the file format does not distinguish hemispheres, so
// geographic instances may come out mirrored - distances are unaffected.
type Instance struct {
	Name      string
	Comment   string
	Dimension int
	Points    [][2]float64
}

// header collects the key:value lines preceding a section marker. Repeated
// keys keep the last value; TSPLIB headers do not repeat keys in practice.
type header map[string]string

// readHeader consumes lines until one starts with marker, populating h.
// The marker line itself is consumed.
func readHeader(sc *bufio.Scanner, marker string) (header, error) {
	h := make(header)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, marker) {
			return h, nil
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("%w: header line %q", ErrFormat, line)
		}
		h[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return nil, fmt.Errorf("%w: missing %s", ErrFormat, marker)
}

// dimension parses the DIMENSION header entry.
func (h header) dimension() (int, error) {
	raw, ok := h["DIMENSION"]
	if !ok {
		return 0, fmt.Errorf("%w: missing DIMENSION", ErrFormat)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: DIMENSION %q", ErrFormat, raw)
	}

	return n, nil
}

// ParseInstance reads a TYPE: TSP / EDGE_WEIGHT_TYPE: EUC_2D instance.
//
// Node lines carry a 1-based index followed by two coordinates; indices
// must appear in order. Trailing blank lines and an EOF marker are
// tolerated.
//
// Errors: ErrUnsupportedType, ErrUnsupportedWeight, wrapped ErrFormat, or
// the reader's own error.
func ParseInstance(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)

	h, err := readHeader(sc, "NODE_COORD_SECTION")
	if err != nil {
		return nil, err
	}
	if h["TYPE"] != "TSP" {
		return nil, ErrUnsupportedType
	}
	if h["EDGE_WEIGHT_TYPE"] != "EUC_2D" {
		return nil, ErrUnsupportedWeight
	}
	n, err := h.dimension()
	if err != nil {
		return nil, err
	}

	inst := &Instance{
		Name:      h["NAME"],
		Comment:   h["COMMENT"],
		Dimension: n,
		Points:    make([][2]float64, n),
	}

	var (
		i    int
		x, y float64
	)
	for i = 1; i <= n; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: expected %d coordinate lines, got %d", ErrFormat, n, i-1)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: coordinate line %q", ErrFormat, sc.Text())
		}
		idx, aerr := strconv.Atoi(fields[0])
		if aerr != nil || idx != i {
			return nil, fmt.Errorf("%w: node index %q at line %d", ErrFormat, fields[0], i)
		}
		if x, aerr = strconv.ParseFloat(fields[1], 64); aerr != nil {
			return nil, fmt.Errorf("%w: coordinate %q", ErrFormat, fields[1])
		}
		if y, aerr = strconv.ParseFloat(fields[2], 64); aerr != nil {
			return nil, fmt.Errorf("%w: coordinate %q", ErrFormat, fields[2])
		}
		inst.Points[i-1] = [2]float64{x, y}
	}

	if err = expectTrailer(sc); err != nil {
		return nil, err
	}

	return inst, nil
}

// expectTrailer accepts any mix of blank lines and a single EOF marker.
func expectTrailer(sc *bufio.Scanner) error {
	for sc.Scan() {
		switch strings.TrimSpace(sc.Text()) {
		case "", "EOF":
			continue
		default:
			return fmt.Errorf("%w: trailing content %q", ErrFormat, sc.Text())
		}
	}

	return sc.Err()
}

// Problem builds the ordering problem for inst: cost(i, j) is the
// Euclidean distance between points i and j rounded to the nearest
// integer, per the TSPLIB EUC_2D convention.
//
// Complexity: O(n²).
func (inst *Instance) Problem() (*order.Problem, error) {
	pts := inst.Points
	if len(pts) != inst.Dimension {
		return nil, fmt.Errorf("%w: %d points for dimension %d", ErrFormat, len(pts), inst.Dimension)
	}

	return order.NewProblem(inst.Dimension, func(i, j int) int64 {
		return int64(math.Round(math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])))
	})
}
