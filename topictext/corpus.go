// Package topictext - corpus construction and similarity scoring.
package topictext

import (
	"errors"
	"io"
	"math"
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"

	"github.com/maxwelljohn/topic-sort/order"
)

// PassageSeparator delimits passages in input and rendered output.
const PassageSeparator = "\n\n"

// maxNGramN bounds the n-gram expansion: unigrams through trigrams.
const maxNGramN = 3

// costScale converts the real-valued similarity into integer costs without
// losing the distinctions that matter for ordering.
const costScale = 1000

// ErrTooFewPassages indicates input with fewer than two passages; there is
// nothing to order.
var ErrTooFewPassages = errors.New("topictext: need at least two passages")

// wordRE matches a token worth keeping: letters, digits, underscores.
var wordRE = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// passageTerms is the n-gram profile of one passage: term frequencies plus
// the terms in first-seen order, kept so that similarity sums always run
// in the same order (map iteration would make the float accumulation, and
// therefore the truncated integer costs, run-dependent).
type passageTerms struct {
	freq  map[string]int
	terms []string
}

// Corpus binds the original passages to the ordering problem derived from
// their pairwise similarity. Build one with NewCorpus; it is immutable.
type Corpus struct {
	passages []string
	problem  *order.Problem
}

// NewCorpus reads all of r, splits it into passages on blank lines, scores
// every pair, and materializes the ordering problem.
//
// Errors: ErrTooFewPassages, or the reader's error.
//
// Complexity: O(total tokens · maxNGramN) for profiling plus O(P² · terms)
// for pairwise scoring, P = passage count.
func NewCorpus(r io.Reader) (*Corpus, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	passages := strings.Split(strings.TrimSpace(string(raw)), PassageSeparator)
	if len(passages) < 2 {
		return nil, ErrTooFewPassages
	}

	var (
		n        = len(passages)
		profiles = make([]passageTerms, n)
		df       = make(map[string]int, 256)
		i, j     int
	)
	for i = 0; i < n; i++ {
		profiles[i] = profile(passages[i])
		for _, term := range profiles[i].terms {
			df[term]++
		}
	}

	// Materialize the upper triangle once; NewProblem consults the closure
	// exactly once per pair.
	costs := make([][]int64, n)
	for i = 0; i < n; i++ {
		costs[i] = make([]int64, n)
		for j = i + 1; j < n; j++ {
			sim := similarity(profiles[i], profiles[j], n, df)
			costs[i][j] = int64(-costScale * sim / float64(min(len(passages[i]), len(passages[j]))))
		}
	}

	problem, err := order.NewProblem(n, func(a, b int) int64 { return costs[a][b] })
	if err != nil {
		return nil, err
	}

	return &Corpus{passages: passages, problem: problem}, nil
}

// Passages returns the passages in input order.
func (c *Corpus) Passages() []string {
	return append([]string(nil), c.passages...)
}

// Problem returns the derived ordering problem.
func (c *Corpus) Problem() *order.Problem { return c.problem }

// Render walks a completed path solution over this corpus and joins the
// passages in traversal order, trailing newline included.
//
// Errors: those of Solution.Traversal (notably ErrIncompleteStructure).
func (c *Corpus) Render(s *order.Solution) (string, error) {
	walkOrder, err := s.Traversal()
	if err != nil {
		return "", err
	}

	ordered := make([]string, len(walkOrder))
	for i, node := range walkOrder {
		ordered[i] = c.passages[node]
	}

	return strings.Join(ordered, PassageSeparator) + "\n", nil
}

// profile tokenizes, filters, stems, and n-gram-expands one passage.
func profile(passage string) passageTerms {
	var (
		tokens = wordRE.FindAllString(strings.ToLower(passage), -1)
		stems  = make([]string, 0, len(tokens))
	)
	for _, tok := range tokens {
		if _, skip := stopwords[tok]; skip {
			continue
		}
		stems = append(stems, english.Stem(tok, false))
	}

	pt := passageTerms{freq: make(map[string]int, len(stems)*maxNGramN)}

	var gramN, i int
	for gramN = 1; gramN <= maxNGramN; gramN++ {
		for i = 0; i+gramN <= len(stems); i++ {
			term := strings.Join(stems[i:i+gramN], " ")
			if pt.freq[term] == 0 {
				pt.terms = append(pt.terms, term)
			}
			pt.freq[term]++
		}
	}

	return pt
}

// similarity computes the TF-IDF-weighted overlap of two profiles: for
// every term both passages contain, (1+ln tf₁)·(1+ln tf₂)·ln(P/df). Terms
// are visited in a's first-seen order for run-to-run determinism.
func similarity(a, b passageTerms, passageCount int, df map[string]int) float64 {
	var score float64
	for _, term := range a.terms {
		tfB := b.freq[term]
		if tfB == 0 {
			continue
		}
		tfA := a.freq[term]
		score += (1 + math.Log(float64(tfA))) *
			(1 + math.Log(float64(tfB))) *
			math.Log(float64(passageCount)/float64(df[term]))
	}

	return score
}
