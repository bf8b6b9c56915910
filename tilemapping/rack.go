package tilemapping

import "strings"

// Rack is a multiset of up to 7 rack tiles: 26 letter counters plus a blank
// counter. It backs spec.md §3's "Rack: multiset of up to 7 tiles from the
// alphabet plus `?`". Callers mutate it with Take/Return as the generator
// backtracks, per DESIGN NOTES §9 ("push/pop... to eliminate per-branch
// allocation") rather than deep-copying on every recursive branch the way
// the original Python `gen`/`go_on` do.
type Rack struct {
	counts [NumLetters]int
	blanks int
}

// NewRack builds a Rack from a user-visible string such as "CABINET" or
// "WORLD??".
func NewRack(letters string) (*Rack, error) {
	r := &Rack{}
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if c == BlankLetter {
			r.blanks++
			continue
		}
		ml, err := FromByte(strings.ToUpper(string(c))[0])
		if err != nil {
			return nil, err
		}
		r.counts[ml]++
	}
	return r, nil
}

// Empty reports whether the rack has no tiles left.
func (r *Rack) Empty() bool {
	return r.Size() == 0
}

// Size returns the total number of tiles remaining on the rack.
func (r *Rack) Size() int {
	n := r.blanks
	for _, c := range r.counts {
		n += c
	}
	return n
}

// HasBlank reports whether a blank tile remains.
func (r *Rack) HasBlank() bool {
	return r.blanks > 0
}

// Has reports whether at least one non-blank ml remains.
func (r *Rack) Has(ml MachineLetter) bool {
	return ml < NumLetters && r.counts[ml] > 0
}

// TakeLetter removes one occurrence of ml from the rack. The caller must
// have checked Has(ml) first.
func (r *Rack) TakeLetter(ml MachineLetter) {
	r.counts[ml]--
}

// ReturnLetter gives one occurrence of ml back to the rack (backtracking).
func (r *Rack) ReturnLetter(ml MachineLetter) {
	r.counts[ml]++
}

// TakeBlank removes one blank tile from the rack.
func (r *Rack) TakeBlank() {
	r.blanks--
}

// ReturnBlank gives one blank tile back to the rack (backtracking).
func (r *Rack) ReturnBlank() {
	r.blanks++
}

// DistinctLetters returns the set of non-blank letters present on the rack
// (spec.md §4.4: "for each distinct letter ℓ in rack"). The generator does
// not call it; it checks Has letter by letter instead.
func (r *Rack) DistinctLetters() LetterSet {
	var s LetterSet
	for ml := MachineLetter(0); ml < NumLetters; ml++ {
		if r.counts[ml] > 0 {
			s = s.With(ml)
		}
	}
	return s
}

// Clone returns an independent copy of the rack. FindBestMoves clones the
// caller's rack once per anchor walk, and FindBestMovesMulti once per board;
// the hot recursive path uses Take/Return backtracking instead.
func (r *Rack) Clone() *Rack {
	cp := *r
	return &cp
}

// String renders the rack in user-visible form, blanks last.
func (r *Rack) String() string {
	var b strings.Builder
	for ml := MachineLetter(0); ml < NumLetters; ml++ {
		for i := 0; i < r.counts[ml]; i++ {
			b.WriteByte(ml.Byte())
		}
	}
	for i := 0; i < r.blanks; i++ {
		b.WriteByte(BlankLetter)
	}
	return b.String()
}
