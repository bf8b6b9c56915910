package board

import (
	"github.com/astralcai/crossgen/gaddag"
	"github.com/astralcai/crossgen/tilemapping"
)

// UpdateCrossSet recomputes the cross-set(s) affected by the contiguous run
// of tiles in direction d passing through pivot, per spec.md §4.3's
// single-pivot algorithm. Best-effort: a run that is not a word in lex
// clears the two end cross-sets rather than returning an error (spec.md
// §7), isolating a corrupted board from the rest of cross-set maintenance.
func (b *Board) UpdateCrossSet(lex *gaddag.Lexicon, pivot Coordinate, d Direction) {
	sq := b.Square(pivot)
	if sq == nil || sq.Empty() {
		return
	}
	end := b.FastForward(pivot, d, 1)

	coord := end
	tile, _ := b.Square(coord).Tile()
	lastState := lex.Root()
	arc, ok := lastState.Arc(tile)
	if !ok {
		b.clearCrossSets(pivot, d)
		return
	}
	state := arc.Dest()

	next := b.Offset(coord, d, -1)
	for nsq := b.Square(next); nsq != nil && !nsq.Empty(); nsq = b.Square(next) {
		coord = next
		lastState = state
		t, _ := nsq.Tile()
		a, ok := state.Arc(t)
		if !ok {
			b.clearCrossSets(pivot, d)
			return
		}
		arc = a
		state = a.Dest()
		next = b.Offset(coord, d, -1)
	}

	rightSquare := b.Offset(end, d, 1)
	leftSquare := b.Offset(coord, d, -1)
	leftOfLeft := b.Offset(leftSquare, d, -1)
	rightOfRight := b.Offset(rightSquare, d, 1)

	if s := b.Square(leftOfLeft); s != nil && !s.Empty() {
		var cs tilemapping.LetterSet
		state.ForEachArc(func(a gaddag.Arc) {
			if a.Char() == tilemapping.SeparatorLetter {
				return
			}
			if b.candidateCompletes(leftSquare, a, d, -1) {
				cs = cs.With(a.Char())
			}
		})
		if s := b.Square(leftSquare); s != nil {
			s.setCrossSet(d, cs)
		}
	} else if s := b.Square(leftSquare); s != nil {
		s.setCrossSet(d, arc.LetterSet())
	}

	if s := b.Square(rightOfRight); s != nil && !s.Empty() {
		var cs tilemapping.LetterSet
		if sepArc, ok := state.Arc(tilemapping.SeparatorLetter); ok {
			sepArc.Dest().ForEachArc(func(a gaddag.Arc) {
				if b.candidateCompletes(rightSquare, a, d, 1) {
					cs = cs.With(a.Char())
				}
			})
		}
		if s := b.Square(rightSquare); s != nil {
			s.setCrossSet(d, cs)
		}
	} else if s := b.Square(rightSquare); s != nil {
		var cs tilemapping.LetterSet
		if sepArc, ok := state.Arc(tilemapping.SeparatorLetter); ok {
			cs = sepArc.LetterSet()
		}
		s.setCrossSet(d, cs)
	}
}

// candidateCompletes walks from emptyCoord further in direction d by step
// through the already-placed run on that side, up to but not including the
// run's far end, returning whether that far-end letter lies in the
// letter-set of the last arc followed (a's own letter-set for a one-tile
// run). A missing arc along the way aborts the walk (returns false), per
// spec.md §9's resolution of the "not state vs not last_arc_" ambiguity: a
// missing arc, not a missing state, is what ends the candidate check.
func (b *Board) candidateCompletes(emptyCoord Coordinate, a gaddag.Arc, d Direction, step int) bool {
	state := a.Dest()
	lastArc := a
	coord := b.Offset(emptyCoord, d, step)
	for {
		next := b.Offset(coord, d, step)
		if nsq := b.Square(next); nsq == nil || nsq.Empty() {
			break
		}
		t, _ := b.Square(coord).Tile()
		na, ok := state.Arc(t)
		if !ok {
			return false
		}
		lastArc = na
		state = na.Dest()
		coord = next
	}
	finalTile, _ := b.Square(coord).Tile()
	return lastArc.LetterSet().Has(finalTile)
}

func (b *Board) clearCrossSets(pivot Coordinate, d Direction) {
	rightMost := b.FastForward(pivot, d, 1)
	rightSquare := b.Offset(rightMost, d, 1)
	if s := b.Square(rightSquare); s != nil {
		s.setCrossSet(d, tilemapping.EmptyLetterSet)
	}
	leftMost := b.FastForward(pivot, d, -1)
	leftSquare := b.Offset(leftMost, d, -1)
	if s := b.Square(leftSquare); s != nil {
		s.setCrossSet(d, tilemapping.EmptyLetterSet)
	}
}
