package gaddag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/astralcai/crossgen/tilemapping"
)

// buildNode and buildArc are the teacher's gaddagmaker.Node/Arc, reworked as
// a plain pointer graph used only during construction; Build() flattens
// this graph into the arena-indexed *Lexicon below.
type buildNode struct {
	arcs      []*buildArc
	letterSet tilemapping.LetterSet
}

type buildArc struct {
	letter tilemapping.MachineLetter
	dest   *buildNode
}

func (n *buildNode) find(ml tilemapping.MachineLetter) *buildArc {
	for _, a := range n.arcs {
		if a.letter == ml {
			return a
		}
	}
	return nil
}

// addArc ensures an arc labeled ml exists from n, creating a fresh
// destination node if one is not already present, and returns that
// destination. Mirrors gaddagmaker.Node.addArc.
func (n *buildNode) addArc(ml tilemapping.MachineLetter) *buildNode {
	if a := n.find(ml); a != nil {
		return a.dest
	}
	dest := &buildNode{}
	n.arcs = append(n.arcs, &buildArc{letter: ml, dest: dest})
	return dest
}

// addFinalArc adds (if missing) an arc labeled ml from n, and records that
// the destination completes a word when `final` is appended. Mirrors
// gaddagmaker.Node.addFinalArc / the GADDAG representability property in
// spec.md §3.
func (n *buildNode) addFinalArc(ml, final tilemapping.MachineLetter) *buildNode {
	dest := n.addArc(ml)
	dest.letterSet = dest.letterSet.With(final)
	return dest
}

// forceArc adds an arc labeled ml from n to exactly `dest`, reusing dest if
// the arc already points there (the "shared tail" partial minimization
// spec.md §4.1 construction step 3 calls for) and erroring if it already
// points elsewhere.
func (n *buildNode) forceArc(ml tilemapping.MachineLetter, dest *buildNode) error {
	if a := n.find(ml); a != nil {
		if a.dest != dest {
			return fmt.Errorf("gaddag: arc %v already pointed to a different state", ml)
		}
		return nil
	}
	n.arcs = append(n.arcs, &buildArc{letter: ml, dest: dest})
	return nil
}

// Build constructs a GADDAG from a word list, per spec.md §4.1's
// construction algorithm (three insertion passes per word, the last
// partially minimized by sharing tails across split points). Every word
// must be uppercase A-Z and at least two letters long; construction fails
// only on malformed input, matching spec.md §4.1's failure contract.
func Build(name string, words []string) (*Lexicon, error) {
	root := &buildNode{}
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		if err := addWord(root, w); err != nil {
			return nil, err
		}
	}
	return compile(name, root), nil
}

func addWord(root *buildNode, word string) error {
	n := len(word)
	if n < 2 {
		return fmt.Errorf("gaddag: word %q is too short (need length >= 2)", word)
	}
	letters := make([]tilemapping.MachineLetter, n)
	for i := 0; i < n; i++ {
		ml, err := tilemapping.FromByte(word[i])
		if err != nil {
			return fmt.Errorf("gaddag: word %q: %w", word, err)
		}
		letters[i] = ml
	}

	// Pass 1: spell W[n-1..2] then a final arc W[1] -> {W[0]}.
	st := root
	for j := n - 1; j >= 2; j-- {
		st = st.addArc(letters[j])
	}
	st.addFinalArc(letters[1], letters[0])

	// Pass 2: spell W[n-2..0] then a final delimiter arc -> {W[n-1]}.
	st = root
	for j := n - 2; j >= 0; j-- {
		st = st.addArc(letters[j])
	}
	tail := st.addFinalArc(tilemapping.SeparatorLetter, letters[n-1])

	// Pass 3: for each shorter split point, spell the prefix, follow the
	// delimiter, and force an arc to the previous iteration's tail —
	// this is the shared-tail partial minimization.
	for m := n - 3; m >= 0; m-- {
		forceDest := tail
		st = root
		for j := m; j >= 0; j-- {
			st = st.addArc(letters[j])
		}
		st = st.addArc(tilemapping.SeparatorLetter)
		if err := st.forceArc(letters[m+1], forceDest); err != nil {
			return fmt.Errorf("gaddag: word %q: %w", word, err)
		}
		tail = st
	}
	return nil
}

// compile flattens the pointer graph into the CSR-style arena the runtime
// Lexicon reads. Nodes are visited breadth-first so the root always lands
// at index 0.
func compile(name string, root *buildNode) *Lexicon {
	index := make(map[*buildNode]uint32)
	order := []*buildNode{root}
	index[root] = 0
	for i := 0; i < len(order); i++ {
		n := order[i]
		// Sort arcs for determinism (and a smaller, more cache-friendly
		// search order), matching gaddagmaker's pre-serialization sort.
		sort.Slice(n.arcs, func(a, b int) bool { return n.arcs[a].letter < n.arcs[b].letter })
		for _, a := range n.arcs {
			if _, ok := index[a.dest]; !ok {
				index[a.dest] = uint32(len(order))
				order = append(order, a.dest)
			}
		}
	}

	lex := &Lexicon{
		name:       name,
		letterSets: make([]tilemapping.LetterSet, len(order)),
		arcStart:   make([]uint32, len(order)+1),
	}
	var arcCount uint32
	for i, n := range order {
		lex.letterSets[i] = n.letterSet
		lex.arcStart[i] = arcCount
		arcCount += uint32(len(n.arcs))
	}
	lex.arcStart[len(order)] = arcCount
	lex.arcLetter = make([]tilemapping.MachineLetter, arcCount)
	lex.arcDest = make([]uint32, arcCount)
	for i, n := range order {
		base := lex.arcStart[i]
		for j, a := range n.arcs {
			lex.arcLetter[base+uint32(j)] = a.letter
			lex.arcDest[base+uint32(j)] = index[a.dest]
		}
	}
	return lex
}

// wordsFromText splits raw dictionary text into uppercase words, one per
// non-blank line, skipping comment lines beginning with '#'. It is used by
// both BuildFromFile and the cmd/gaddagmaker tool.
func wordsFromText(text string) []string {
	lines := strings.Split(text, "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.ToUpper(line))
	}
	return words
}
