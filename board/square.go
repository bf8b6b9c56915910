package board

import "github.com/astralcai/crossgen/tilemapping"

// Effect is a square's premium multiplier, a small closed set represented
// as a tagged enum per DESIGN NOTES §9, not a subclass hierarchy.
type Effect int

const (
	Plain Effect = iota
	DoubleLetter
	TripleLetter
	DoubleWord
	TripleWord
)

// Square holds an optional placed letter, a premium effect, and one
// cross-set per direction. A Square made by newSquare is empty, plain, and
// permits every letter in both directions.
type Square struct {
	tile      tilemapping.MachineLetter
	hasTile   bool
	effect    Effect
	crossSets [2]tilemapping.LetterSet
}

func newSquare() *Square {
	return &Square{
		crossSets: [2]tilemapping.LetterSet{
			tilemapping.FullLetterSet,
			tilemapping.FullLetterSet,
		},
	}
}

// Tile returns the placed letter and whether one is present.
func (s *Square) Tile() (tilemapping.MachineLetter, bool) {
	return s.tile, s.hasTile
}

// Empty reports whether no letter has been placed here.
func (s *Square) Empty() bool {
	return !s.hasTile
}

func (s *Square) setTile(ml tilemapping.MachineLetter) {
	s.tile = ml
	s.hasTile = true
}

func (s *Square) removeTile() {
	s.hasTile = false
}

// Effect returns the square's premium multiplier.
func (s *Square) Effect() Effect {
	return s.effect
}

// CrossSet returns the set of letters permitted at this square by the run
// of tiles along direction d; the generator consults it for words played
// through this square in the direction perpendicular to d.
func (s *Square) CrossSet(d Direction) tilemapping.LetterSet {
	return s.crossSets[d]
}

func (s *Square) setCrossSet(d Direction, ls tilemapping.LetterSet) {
	s.crossSets[d] = ls
}
