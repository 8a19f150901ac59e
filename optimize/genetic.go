// Package optimize - the stochastic genetic strategy.
//
// Candidates are permutations of 0..N-1. Decoding replays a permutation
// into a fresh engine as consecutive-pair edge additions; for the cycle
// variant the engine's own closing-edge transition makes the final
// wrap-around pair feasible, so decoding never fights the feasibility
// rules. Search operators:
//
//   - selection: k-tournament over the scored population;
//   - crossover: order crossover (OX1), which preserves permutation
//     validity by construction;
//   - mutation: position swap with a per-child probability;
//   - elitism: the best candidates survive unchanged each generation.
//
// The greedy ordering seeds the initial population, so the best cost is
// never worse than the greedy baseline.
package optimize

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/maxwelljohn/topic-sort/order"
)

// ErrBadOptions indicates out-of-range genetic parameters.
var ErrBadOptions = errors.New("optimize: invalid genetic options")

// Defaults applied by Options.withDefaults for zero-valued fields.
const (
	// DefaultPopulationSize is the number of candidates per generation.
	DefaultPopulationSize = 20
	// DefaultGenerations is the evolution step count.
	DefaultGenerations = 20
	// DefaultMutationRate is the per-child swap probability.
	DefaultMutationRate = 0.3
	// DefaultElite is the number of candidates copied verbatim per generation.
	DefaultElite = 2
	// tournamentK is the tournament size used by selection.
	tournamentK = 3
)

// Options configures a Genetic run. The zero value selects the defaults
// above with a fixed deterministic seed.
type Options struct {
	// PopulationSize is the number of candidates per generation (>= 2).
	PopulationSize int
	// Generations is the number of evolution steps (>= 0; 0 returns the
	// best of the seeded initial population, i.e. at least the greedy tour).
	Generations int
	// MutationRate is the probability in [0,1] that a freshly bred child
	// has one random position swap applied.
	MutationRate float64
	// Elite is the number of best candidates carried over unchanged
	// (1 <= Elite <= PopulationSize). At least one is required to keep the
	// never-worse-than-greedy guarantee.
	Elite int
	// Seed drives all randomness; 0 selects a fixed default stream.
	Seed int64
}

// withDefaults fills zero-valued fields and validates ranges.
func (o Options) withDefaults() (Options, error) {
	if o.PopulationSize == 0 {
		o.PopulationSize = DefaultPopulationSize
	}
	if o.Generations == 0 {
		o.Generations = DefaultGenerations
	}
	if o.MutationRate == 0 {
		o.MutationRate = DefaultMutationRate
	}
	if o.Elite == 0 {
		o.Elite = DefaultElite
	}

	switch {
	case o.PopulationSize < 2,
		o.Generations < 0,
		o.MutationRate < 0 || o.MutationRate > 1,
		o.Elite < 1 || o.Elite > o.PopulationSize:
		return Options{}, ErrBadOptions
	}

	return o, nil
}

// candidate is a scored permutation.
type candidate struct {
	perm []int
	cost int64
}

// Genetic runs a population search over candidate orderings of p and
// returns a completed engine. With the greedy seed and Elite >= 1 the
// result costs at most as much as Greedy's; a fixed opts.Seed reproduces
// the exact same result.
//
// Complexity: O(G · P · n³) with G generations and population P - every
// candidate evaluation replays a full permutation through a fresh engine,
// and each of its n edge commits re-validates in O(n²).
func Genetic(p *order.Problem, variant order.Variant, opts Options) (*order.Solution, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	// Greedy baseline doubles as the population seed.
	baseline, err := Greedy(p, variant)
	if err != nil {
		return nil, err
	}
	seedWalk, err := baseline.Traversal()
	if err != nil {
		return nil, err
	}

	var (
		n   = p.Dimension()
		rng = rngFromSeed(opts.Seed)
		pop = make([]candidate, opts.PopulationSize)
		i   int
	)
	// Cycle traversals repeat the start node at the end; the permutation is
	// the first n entries either way.
	pop[0], err = score(p, variant, append([]int(nil), seedWalk[:n]...))
	if err != nil {
		return nil, err
	}
	for i = 1; i < opts.PopulationSize; i++ {
		if pop[i], err = score(p, variant, permRange(n, rng)); err != nil {
			return nil, err
		}
	}
	rank(pop)

	var (
		gen  int
		next = make([]candidate, 0, opts.PopulationSize)
	)
	for gen = 0; gen < opts.Generations; gen++ {
		next = next[:0]
		// Elites survive verbatim.
		next = append(next, pop[:opts.Elite]...)

		// Breed the remainder.
		for len(next) < opts.PopulationSize {
			child := orderCrossover(tournament(pop, rng).perm, tournament(pop, rng).perm, rng)
			if rng.Float64() < opts.MutationRate {
				swapMutate(child, rng)
			}
			scored, serr := score(p, variant, child)
			if serr != nil {
				return nil, serr
			}
			next = append(next, scored)
		}

		pop, next = next, pop
		rank(pop)
	}

	// Decode the winner into the engine handed back to the caller.
	best, err := decode(p, variant, pop[0].perm)
	if err != nil {
		return nil, err
	}
	if err = best.EnsureComplete(); err != nil {
		return nil, err
	}

	return best, nil
}

// decode replays perm into a fresh engine: consecutive pairs, plus the
// wrap-around pair for cycles (feasible by then via the engine's
// closing-edge transition).
func decode(p *order.Problem, variant order.Variant, perm []int) (*order.Solution, error) {
	s, err := newEngine(p, variant)
	if err != nil {
		return nil, err
	}

	var i int
	for i = 0; i+1 < len(perm); i++ {
		if err = s.AddEdge(perm[i], perm[i+1]); err != nil {
			return nil, err
		}
	}
	if variant == order.Cycle {
		if err = s.AddEdge(perm[len(perm)-1], perm[0]); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// score decodes perm and records its total cost. The decoded engine is
// discarded; only the winner is decoded again at the end of the run.
func score(p *order.Problem, variant order.Variant, perm []int) (candidate, error) {
	s, err := decode(p, variant, perm)
	if err != nil {
		return candidate{}, err
	}
	cost, err := s.Cost()
	if err != nil {
		return candidate{}, err
	}

	return candidate{perm: perm, cost: cost}, nil
}

// rank sorts the population by ascending cost. The sort is stable so that
// equal-cost candidates keep their insertion order, which keeps whole runs
// deterministic for a fixed seed.
func rank(pop []candidate) {
	sort.SliceStable(pop, func(i, j int) bool { return pop[i].cost < pop[j].cost })
}

// tournament picks the cheapest of tournamentK uniformly drawn candidates.
func tournament(pop []candidate, rng *rand.Rand) candidate {
	best := pop[rng.Intn(len(pop))]

	var i int
	for i = 1; i < tournamentK; i++ {
		if c := pop[rng.Intn(len(pop))]; c.cost < best.cost {
			best = c
		}
	}

	return best
}

// orderCrossover implements OX1: the child inherits the segment [l..r] of
// parent a in place, then fills the remaining positions with the nodes of
// parent b in b's order, skipping those already present.
func orderCrossover(a, b []int, rng *rand.Rand) []int {
	var (
		n     = len(a)
		child = make([]int, n)
		used  = make([]bool, n)
		l     = rng.Intn(n)
		r     = rng.Intn(n)
		i     int
	)
	if l > r {
		l, r = r, l
	}
	for i = l; i <= r; i++ {
		child[i] = a[i]
		used[a[i]] = true
	}

	// Positions outside [l..r], visited cyclically starting just past r.
	gaps := make([]int, 0, n-(r-l+1))
	for i = 1; i <= n; i++ {
		if pos := (r + i) % n; pos < l || pos > r {
			gaps = append(gaps, pos)
		}
	}

	// Fill the gaps with b's nodes in b's cyclic order, skipping those the
	// inherited segment already covers.
	var idx int
	for i = 0; i < n && idx < len(gaps); i++ {
		v := b[(r+1+i)%n]
		if used[v] {
			continue
		}
		child[gaps[idx]] = v
		used[v] = true
		idx++
	}

	return child
}

// swapMutate exchanges two uniformly chosen positions in place.
func swapMutate(perm []int, rng *rand.Rand) {
	var (
		n = len(perm)
		i = rng.Intn(n)
		j = rng.Intn(n)
	)
	perm[i], perm[j] = perm[j], perm[i]
}
