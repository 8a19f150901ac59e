// Package optimize provides the optimizer collaborators that drive an
// order.Solution to completion.
//
// Two strategies are included:
//
//   - Greedy - deterministic: repeatedly commits the lowest-cost pair still
//     feasible, breaking ties row-major (smallest i, then smallest j). Two
//     runs over the same problem produce identical edge sequences and
//     identical final cost.
//
//   - Genetic - stochastic population search over candidate permutations,
//     decoded into edge sequences on fresh engines. The initial population
//     is seeded with the greedy ordering, so with elitism the returned
//     engine never costs more than the greedy baseline. All randomness sits
//     behind a seeded source: the same seed reproduces the same result.
//
// Both strategies honor the engine contract: they only ever call AddEdge on
// pairs the engine reports feasible, and they return engines that satisfy
// EnsureComplete.
package optimize
