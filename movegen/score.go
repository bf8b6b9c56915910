package movegen

import "github.com/astralcai/crossgen/board"

// score computes a recorded play's total value per spec.md §4.5: letter
// premiums apply only to newly-placed tiles, word premiums multiply the
// whole word score, and each new tile that also completes a perpendicular
// word contributes that word's own score (itself subject to the new
// tile's word premium). Bingo bonus is added by the caller.
func (gs *genState) score(lo, hi int, wildPositions []int) int {
	wild := make(map[int]bool, len(wildPositions))
	for _, p := range wildPositions {
		wild[p] = true
	}

	wordScore := 0
	wordMultiplier := 1
	crossTotal := 0

	for p := lo; p <= hi; p++ {
		idx := p - lo
		ml := gs.letters[gs.center+p]
		coord := gs.coord(p)
		sq := gs.g.board.Square(coord)

		letterScore := 0
		if !wild[idx] {
			letterScore = gs.g.dist.Score(ml)
		}

		if sq.Empty() {
			switch sq.Effect() {
			case board.DoubleLetter:
				letterScore *= 2
			case board.TripleLetter:
				letterScore *= 3
			case board.DoubleWord:
				wordMultiplier *= 2
			case board.TripleWord:
				wordMultiplier *= 3
			}
			crossTotal += gs.crossScore(letterScore, coord, sq.Effect())
		}
		wordScore += letterScore
	}

	return wordScore*wordMultiplier + crossTotal
}

// crossScore computes the perpendicular word's score formed by a single
// newly-placed tile, or 0 if no perpendicular word is formed (spec.md
// §4.5). tileScore is the new tile's own letter value with its DL/TL
// already applied; effect is that same square's premium, applied to the
// perpendicular word if it is DW/TW.
func (gs *genState) crossScore(tileScore int, coord board.Coordinate, effect board.Effect) int {
	perp := gs.dir.Perpendicular()
	b := gs.g.board
	top := b.FastForward(coord, perp, -1)
	bottom := b.FastForward(coord, perp, 1)
	if top == coord && bottom == coord {
		return 0
	}

	total := tileScore
	for cur := top; cur != coord; cur = b.Offset(cur, perp, 1) {
		ml, _ := b.Square(cur).Tile()
		total += gs.g.dist.Score(ml)
	}
	for cur := bottom; cur != coord; cur = b.Offset(cur, perp, -1) {
		ml, _ := b.Square(cur).Tile()
		total += gs.g.dist.Score(ml)
	}

	switch effect {
	case board.TripleWord:
		total *= 3
	case board.DoubleWord:
		total *= 2
	}
	return total
}
