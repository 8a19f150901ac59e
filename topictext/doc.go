// Package topictext builds ordering problems from free text.
//
// The input is split on blank lines into passages; each passage becomes a
// node. Pair costs come from a TF-IDF-weighted n-gram similarity: every
// passage is lowercased, tokenized into word runs, stripped of English
// stopwords, stemmed, and expanded into 1- to 3-grams. Two passages that
// share rare n-grams score high; the score is negated and scaled so that
// similar passages attract under cost minimization:
//
//	cost(i, j) = -1000 · similarity(i, j) / min(len(iᵗʰ), len(jᵗʰ))
//
// The length normalization keeps a long passage from dominating simply by
// containing more n-grams. Costs are truncated to integers; unrelated
// passages cost exactly 0.
//
// Solving the resulting problem with the path variant and rendering the
// traversal yields the passages reordered by topical flow.
package topictext
