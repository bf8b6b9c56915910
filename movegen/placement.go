package movegen

import (
	"github.com/astralcai/crossgen/board"
	"github.com/astralcai/crossgen/tilemapping"
)

// ScorePlacement scores a word already (or about to be) placed at start
// running in dir, using emptyBefore[i] to say whether word[i]'s square was
// empty prior to placement — letter/word premiums and cross-words apply
// only to those squares, per spec.md §4.5. It is the non-recursive sibling
// of genState.score, used by game.Game.Play where a move is supplied
// directly (not discovered by the anchor walk), so there is no genState to
// read the buffers from.
func ScorePlacement(b *board.Board, dist *tilemapping.Distribution, start board.Coordinate, dir board.Direction, word []tilemapping.MachineLetter, emptyBefore []bool) int {
	wordScore := 0
	wordMultiplier := 1
	crossTotal := 0
	perp := dir.Perpendicular()

	coord := start
	for i, ml := range word {
		sq := b.Square(coord)
		letterScore := dist.Score(ml)

		if emptyBefore[i] {
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
			crossTotal += scorePerpendicular(b, dist, coord, perp, letterScore, sq.Effect())
		}
		wordScore += letterScore
		coord = b.Offset(coord, dir, 1)
	}

	return wordScore*wordMultiplier + crossTotal
}

func scorePerpendicular(b *board.Board, dist *tilemapping.Distribution, coord board.Coordinate, perp board.Direction, tileScore int, effect board.Effect) int {
	top := b.FastForward(coord, perp, -1)
	bottom := b.FastForward(coord, perp, 1)
	if top == coord && bottom == coord {
		return 0
	}

	total := tileScore
	for cur := top; cur != coord; cur = b.Offset(cur, perp, 1) {
		ml, _ := b.Square(cur).Tile()
		total += dist.Score(ml)
	}
	for cur := bottom; cur != coord; cur = b.Offset(cur, perp, -1) {
		ml, _ := b.Square(cur).Tile()
		total += dist.Score(ml)
	}

	switch effect {
	case board.TripleWord:
		total *= 3
	case board.DoubleWord:
		total *= 2
	}
	return total
}
