// Package order - traversal utilities for presentation collaborators.
//
// Every structure this engine can hold is a disjoint union of simple
// chains (and, at cycle completion, one ring), so walking it needs no
// general graph search: from any node there are at most two neighbors,
// and at most one of them is unvisited.
package order

// neighbors returns the committed neighbors of node in ascending order.
// A node has at most two.
//
// Complexity: O(n).
func (s *Solution) neighbors(node int) []int {
	var (
		out []int
		i   int
	)
	for i = 0; i < s.n; i++ {
		if i != node && s.HasEdge(node, i) {
			out = append(out, i)
		}
	}

	return out
}

// walk follows committed edges from start until it runs out of unvisited
// neighbors, preferring the smaller-indexed neighbor at the first fork
// (relevant only when starting inside a ring). The visited scratch is
// shared across calls from Components.
func (s *Solution) walk(start int, visited []bool) []int {
	var (
		out  = make([]int, 0, s.n)
		here = start
	)
	for {
		visited[here] = true
		out = append(out, here)

		next := unassigned
		for _, nb := range s.neighbors(here) {
			if !visited[nb] {
				next = nb
				break
			}
		}
		if next == unassigned {
			return out
		}
		here = next
	}
}

// Components returns the node sequence of every connected chain built so
// far, one slice per component, usable on partial structures (this is what
// a renderer needs to draw an in-progress ordering). Each chain starts at
// its smallest degree-1 endpoint; a completed ring starts at its smallest
// member; isolated nodes appear as singletons. Chains come first in order
// of their starting endpoint, then rings and singletons by smallest member.
//
// Complexity: O(n²).
func (s *Solution) Components() [][]int {
	var (
		visited = make([]bool, s.n)
		out     [][]int
		i       int
	)

	// Chains first: every endpoint opens exactly one walk, and walking
	// marks the far endpoint visited so each chain is emitted once.
	for i = 0; i < s.n; i++ {
		if !visited[i] && s.degree[i] == 1 {
			out = append(out, s.walk(i, visited))
		}
	}
	// Whatever remains is a ring (completed cycle) or an isolated node.
	for i = 0; i < s.n; i++ {
		if !visited[i] {
			out = append(out, s.walk(i, visited))
		}
	}

	return out
}

// Traversal returns the ordered node sequence of a completed structure.
// The path variant walks from its lower-indexed endpoint and yields N
// nodes; the cycle variant starts at node 0 and yields N+1 nodes with the
// start repeated at the end (closed-tour convention).
//
// Errors: those of EnsureComplete.
func (s *Solution) Traversal() ([]int, error) {
	if s.variant == Cycle {
		return s.TraversalFrom(0)
	}

	if err := s.EnsureComplete(); err != nil {
		return nil, err
	}

	return s.walk(s.Endpoints()[0], make([]bool, s.n)), nil
}

// TraversalFrom returns the ordered node sequence of a completed structure
// beginning at start. For the path variant start must be one of the two
// endpoints; for the cycle variant any node works and the walk leaves
// start toward its smaller-indexed neighbor (canonical orientation).
//
// Errors: ErrStartOutOfRange, plus those of EnsureComplete.
func (s *Solution) TraversalFrom(start int) ([]int, error) {
	if start < 0 || start >= s.n {
		return nil, ErrStartOutOfRange
	}
	if err := s.EnsureComplete(); err != nil {
		return nil, err
	}

	if s.variant == Path {
		if s.degree[start] != 1 {
			return nil, ErrStartOutOfRange
		}

		return s.walk(start, make([]bool, s.n)), nil
	}

	out := s.walk(start, make([]bool, s.n))
	// Close the ring the way tour consumers expect.
	return append(out, start), nil
}
