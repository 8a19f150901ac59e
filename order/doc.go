// Package order provides an incremental, constraint-tracking engine for
// building a cost-minimizing ordering of N items, either as an open path
// (e.g. passages sorted by topical similarity) or as a closed tour
// (classic TSP).
//
// Both shapes reduce to the same combinatorial structure: pick N-1 or N
// edges from the complete graph on N nodes so that the result is a single
// simple path or cycle touching every node exactly once. The engine accepts
// edges one at a time, maintains degree and connectivity invariants after
// every insertion, answers feasibility queries, and detects completion:
//
//   - no node ever exceeds degree 2;
//   - no subtour can close before the final step (merging two partial
//     chains permanently forbids every pair inside the merged component);
//   - the feasible set only shrinks, with a single designated exception:
//     the loop-closing edge of the cycle variant.
//
// The engine does not compute costs and does not choose edges. Optimizer
// collaborators (see the optimize package) consume a Problem plus the
// engine's feasibility state and drive AddEdge to completion.
//
// A Solution instance is a strictly sequential state machine owned by one
// optimizer run; it is not safe for concurrent use. Parallel searches must
// use one independent instance per candidate.
package order
