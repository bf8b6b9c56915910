// Package gaddag implements the GADDAG lexicon described in spec.md §4.1:
// a directed acyclic graph over a word list that supports starting word
// recognition from any interior letter. Construction follows Steven A.
// Gordon's 1994 "A Faster Scrabble Move Generation Algorithm", the same
// algorithm the original Python `scrabbler.dictionary.Dictionary` and the
// teacher's `gaddagmaker` package implement; this package keeps the
// teacher's arena/integer-index representation (DESIGN NOTES §9) instead of
// the Python pointer graph.
package gaddag

import "github.com/astralcai/crossgen/tilemapping"

// WordGraph is the query surface the move generator and cross-set
// maintenance consume. A *Lexicon satisfies it; this package provides no
// other implementation.
type WordGraph interface {
	Root() State
	LexiconName() string
}

// State is a node in the GADDAG, addressed by its arena index. The zero
// value is not a valid state; always obtain one from Root or Arc.Dest.
type State struct {
	lex *Lexicon
	idx uint32
}

// Arc is a labeled, directed edge leaving a State. Per spec.md §3, arcs are
// uniquely identified by (source state, char); an arc also exposes its
// destination's letter-set for the generator's "completing letter" test.
type Arc struct {
	lex *Lexicon
	idx uint32
}

// Lexicon is the immutable, shared-read runtime representation of a built
// GADDAG. It is safe for concurrent use by any number of generator
// invocations (spec.md §5).
type Lexicon struct {
	name string

	// CSR-style arena: node i's outgoing arcs live in arcs[arcStart[i]:arcStart[i+1]].
	letterSets []tilemapping.LetterSet
	arcStart   []uint32
	arcLetter  []tilemapping.MachineLetter
	arcDest    []uint32
}

// LexiconName returns the name this lexicon was built or loaded under.
func (l *Lexicon) LexiconName() string {
	return l.name
}

// Root returns the GADDAG's single root state.
func (l *Lexicon) Root() State {
	return State{lex: l, idx: 0}
}

// NumStates reports how many states the lexicon contains, mostly useful for
// logging/diagnostics.
func (l *Lexicon) NumStates() int {
	return len(l.letterSets)
}

// Arc looks up the outgoing arc labeled ml from s. It returns false if no
// such arc exists — per spec.md §4.1, "queries never fail; missing arcs
// yield none."
func (s State) Arc(ml tilemapping.MachineLetter) (Arc, bool) {
	lex := s.lex
	start, end := lex.arcStart[s.idx], lex.arcStart[s.idx+1]
	for i := start; i < end; i++ {
		if lex.arcLetter[i] == ml {
			return Arc{lex: lex, idx: i}, true
		}
	}
	return Arc{}, false
}

// ForEachArc calls fn once per outgoing arc of s, in the order they were
// serialized. Cross-set maintenance's left-side candidate walk (spec.md
// §4.3 step 3) relies on iterating every arc except the delimiter.
func (s State) ForEachArc(fn func(Arc)) {
	lex := s.lex
	start, end := lex.arcStart[s.idx], lex.arcStart[s.idx+1]
	for i := start; i < end; i++ {
		fn(Arc{lex: lex, idx: i})
	}
}

// LetterSet returns the set of letters that complete a valid word at this
// state — the "letter-set" attribute from spec.md §3's State data model.
func (s State) LetterSet() tilemapping.LetterSet {
	return s.lex.letterSets[s.idx]
}

// Valid reports whether s addresses a real state (vs. the zero State).
func (s State) Valid() bool {
	return s.lex != nil
}

// Char returns the letter labeling this arc.
func (a Arc) Char() tilemapping.MachineLetter {
	return a.lex.arcLetter[a.idx]
}

// Dest returns the state this arc leads to.
func (a Arc) Dest() State {
	return State{lex: a.lex, idx: a.lex.arcDest[a.idx]}
}

// LetterSet returns the destination state's letter-set, i.e. the set of
// letters that complete a word if this arc is followed — the "completing
// letter" test spec.md §4.1 describes as part of the Arc contract.
func (a Arc) LetterSet() tilemapping.LetterSet {
	return a.Dest().LetterSet()
}

// Valid reports whether a addresses a real arc.
func (a Arc) Valid() bool {
	return a.lex != nil
}
