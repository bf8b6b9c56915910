package movegen

import (
	"github.com/astralcai/crossgen/board"
	"github.com/astralcai/crossgen/gaddag"
	"github.com/astralcai/crossgen/move"
	"github.com/astralcai/crossgen/tilemapping"
)

// genState is the per-anchor scratch the recursive walk mutates in place:
// one rack (Take/Return backtracking) and one letter/wildcard buffer
// indexed by offset from the anchor, reused across every branch rather
// than cloned per recursive call.
type genState struct {
	g           *Generator
	anchor      board.Coordinate
	dir         board.Direction
	rack        *tilemapping.Rack
	anchorsUsed map[board.Coordinate]bool
	results     []*move.Move

	center  int
	letters []tilemapping.MachineLetter
	wild    []bool
}

// generateMoves runs the full gen/go_on walk from a single anchor, per
// spec.md §4.4: "invoke gen(0, "", rack, Arc("", root), [], [])".
func (g *Generator) generateMoves(anchor board.Coordinate, d board.Direction, rack *tilemapping.Rack, anchorsUsed map[board.Coordinate]bool) []*move.Move {
	size := g.board.Size()
	gs := &genState{
		g:           g,
		anchor:      anchor,
		dir:         d,
		rack:        rack,
		anchorsUsed: anchorsUsed,
		center:      size,
		letters:     make([]tilemapping.MachineLetter, 2*size+1),
		wild:        make([]bool, 2*size+1),
	}
	gs.gen(0, gs.g.lex.Root(), 0, 0)
	return gs.results
}

func (gs *genState) coord(pos int) board.Coordinate {
	return gs.g.board.Offset(gs.anchor, gs.dir, pos)
}

// gen is spec.md §4.4's `gen(pos, word, rack, arc, new_tiles, wild_pos)`,
// with `word`/`new_tiles`/`wild_pos` replaced by the shared letters/wild
// buffers and fixedLo/fixedHi threading the word's other, already-settled
// extremity through the recursion: fixedHi is the word's right end during
// the left phase, fixedLo its left end during the right phase.
func (gs *genState) gen(pos int, state gaddag.State, fixedLo, fixedHi int) {
	sq := gs.g.board.Square(gs.coord(pos))
	if sq == nil {
		return
	}
	if t, ok := sq.Tile(); ok {
		newArc, hasNewArc := state.Arc(t)
		gs.goOn(pos, t, state, newArc, hasNewArc, false, fixedLo, fixedHi)
		return
	}
	if gs.rack.Empty() {
		return
	}
	perp := gs.dir.Perpendicular()
	crossSet := sq.CrossSet(perp)

	for ml := tilemapping.MachineLetter(0); ml < tilemapping.NumLetters; ml++ {
		if !gs.rack.Has(ml) || !crossSet.Has(ml) {
			continue
		}
		gs.rack.TakeLetter(ml)
		newArc, hasNewArc := state.Arc(ml)
		gs.goOn(pos, ml, state, newArc, hasNewArc, false, fixedLo, fixedHi)
		gs.rack.ReturnLetter(ml)
	}
	if gs.rack.HasBlank() {
		gs.rack.TakeBlank()
		for ml := tilemapping.MachineLetter(0); ml < tilemapping.NumLetters; ml++ {
			if !crossSet.Has(ml) {
				continue
			}
			newArc, hasNewArc := state.Arc(ml)
			gs.goOn(pos, ml, state, newArc, hasNewArc, true, fixedLo, fixedHi)
		}
		gs.rack.ReturnBlank()
	}
}

// goOn is spec.md §4.4's `go_on`. pos <= 0 is the left phase (word grows
// leftward from the anchor); pos > 0 is the right phase, reached only
// after crossing the GADDAG's ⊣ delimiter.
func (gs *genState) goOn(pos int, ch tilemapping.MachineLetter, state gaddag.State, newArc gaddag.Arc, hasNewArc, wild bool, fixedLo, fixedHi int) {
	gs.letters[gs.center+pos] = ch
	gs.wild[gs.center+pos] = wild

	if pos <= 0 {
		lo, hi := pos, fixedHi
		leftSq := gs.g.board.Square(gs.coord(pos - 1))
		rightSq := gs.g.board.Square(gs.coord(1))
		leftGood := leftSq == nil || leftSq.Empty()
		rightGood := rightSq == nil || rightSq.Empty()

		if state.LetterSet().Has(ch) && leftGood && rightGood {
			gs.recordPlay(lo, hi)
		}
		if hasNewArc {
			leftCoord := gs.coord(pos - 1)
			if gs.g.board.Square(leftCoord) != nil && !gs.anchorsUsed[leftCoord] {
				gs.gen(pos-1, newArc.Dest(), 0, fixedHi)
			}
			if sepArc, ok := newArc.Dest().Arc(tilemapping.SeparatorLetter); ok {
				rightCoord := gs.coord(1)
				if leftGood && gs.g.board.Square(rightCoord) != nil {
					gs.gen(1, sepArc.Dest(), lo, 0)
				}
			}
		}
	} else {
		lo, hi := fixedLo, pos
		rightSq := gs.g.board.Square(gs.coord(pos + 1))
		rightGood := rightSq == nil || rightSq.Empty()

		if state.LetterSet().Has(ch) && rightGood {
			gs.recordPlay(lo, hi)
		}
		if hasNewArc && gs.g.board.Square(gs.coord(pos+1)) != nil {
			gs.gen(pos+1, newArc.Dest(), lo, 0)
		}
	}
}

// bingoTiles is the number of newly-placed tiles that earns the bingo bonus.
const bingoTiles = 7

// recordPlay materializes the word spanning [lo, hi] around the anchor,
// requiring at least one newly-placed tile (spec.md §4.4's "new_tiles_"
// non-empty check), and scores it per spec.md §4.5, adding the bingo bonus
// only when all seven rack tiles were placed.
func (gs *genState) recordPlay(lo, hi int) {
	newTiles := 0
	for p := lo; p <= hi; p++ {
		if gs.g.board.Square(gs.coord(p)).Empty() {
			newTiles++
		}
	}
	if newTiles == 0 {
		return
	}

	word := make([]tilemapping.MachineLetter, hi-lo+1)
	var wildPositions []int
	for p := lo; p <= hi; p++ {
		word[p-lo] = gs.letters[gs.center+p]
		if gs.wild[gs.center+p] {
			wildPositions = append(wildPositions, p-lo)
		}
	}

	score := gs.score(lo, hi, wildPositions)
	if newTiles == bingoTiles && gs.rack.Empty() {
		score += gs.g.board.Variant().GetBingoBonus()
	}
	start := gs.coord(lo)
	gs.results = append(gs.results, move.New(word, start, gs.dir, score, wildPositions))
}
