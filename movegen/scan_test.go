package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astralcai/crossgen/board"
	"github.com/astralcai/crossgen/variant"
)

// TestScanOrderCoversEverySquareOnce pins spec.md §9's resolution of the
// anchor-scan iteration-order ambiguity: scanOrder must visit every board
// square exactly once, for both directions, regardless of which axis is the
// outer loop.
func TestScanOrderCoversEverySquareOnce(t *testing.T) {
	b := board.MakeBoard(smallLayout(15, nil), variant.Scrabble)

	for _, d := range []board.Direction{board.Across, board.Down} {
		seen := make(map[board.Coordinate]int)
		for _, c := range scanOrder(b, d) {
			seen[c]++
		}
		assert.Len(t, seen, 15*15, "direction %v: expected every square to appear", d)
		for c, n := range seen {
			assert.Equal(t, 1, n, "direction %v: square %v visited %d times", d, c, n)
		}
	}
}
