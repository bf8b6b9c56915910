package board

import (
	"fmt"
	"strings"

	"github.com/astralcai/crossgen/tilemapping"
	"github.com/astralcai/crossgen/variant"
	"github.com/astralcai/crossgen/zobrist"
)

// Board is a fixed-size grid of Squares. It owns its Squares exclusively;
// the only mutators are PlaceWord (atomic, rollback-on-failure) and
// UpdateCrossSet (best-effort, clears rather than erroring on corrupted
// state), per spec.md §4.2 and §7.
type Board struct {
	squares     []*Square
	size        int
	empty       bool
	variant     variant.Variant
	zTable      *zobrist.Table
	fingerprint uint64
	generation  uint64
}

// MakeBoard builds a Board from a layout.
func MakeBoard(layout *Layout, v variant.Variant) *Board {
	b := &Board{
		squares: make([]*Square, layout.Size*layout.Size),
		size:    layout.Size,
		empty:   true,
		variant: v,
		zTable:  zobrist.NewTable(layout.Size),
	}
	for i := range b.squares {
		b.squares[i] = newSquare()
	}
	for eff, coords := range layout.Special {
		for _, c := range coords {
			if sq := b.Square(c); sq != nil {
				sq.effect = eff
			}
		}
	}
	return b
}

// Size returns the board's side length.
func (b *Board) Size() int {
	return b.size
}

// Empty reports whether no tile has ever been placed on this board.
func (b *Board) Empty() bool {
	return b.empty
}

// Variant reports the ruleset this board was built for, used to select
// the bingo bonus during scoring.
func (b *Board) Variant() variant.Variant {
	return b.variant
}

// Fingerprint returns a Zobrist hash of the board's current placed tiles,
// maintained incrementally by PlaceWord. On a given board, the same tiles in
// the same squares always produce the same fingerprint, regardless of the
// order tiles were placed in; each Board draws its own random Zobrist table,
// so fingerprints of different boards are not comparable. It is not a hash
// of cross-sets or premiums.
func (b *Board) Fingerprint() uint64 {
	return b.fingerprint
}

// Generation increases every time PlaceWord successfully commits, so a
// cache keyed on (Fingerprint, Generation) never confuses a board state
// with one reached by an unrelated rollback-then-replace sequence that
// happens to collide on tiles alone.
func (b *Board) Generation() uint64 {
	return b.generation
}

// Square returns the square at c, or nil if c is out of bounds.
func (b *Board) Square(c Coordinate) *Square {
	if c.Row < 0 || c.Row >= b.size || c.Col < 0 || c.Col >= b.size {
		return nil
	}
	return b.squares[c.Row*b.size+c.Col]
}

// Offset returns the coordinate n squares from c along d. It is not bounds
// checked; callers must check the result against Square's nil return.
func (b *Board) Offset(c Coordinate, d Direction, n int) Coordinate {
	if d == Across {
		return Coordinate{Row: c.Row, Col: c.Col + n}
	}
	return Coordinate{Row: c.Row + n, Col: c.Col}
}

// FastForward walks from start in direction d by step (+1 or -1) for as
// long as consecutive squares hold tiles, returning the coordinate of the
// last tile in that run (which may be start itself if the next square is
// empty or out of bounds).
func (b *Board) FastForward(start Coordinate, d Direction, step int) Coordinate {
	coord := start
	next := b.Offset(start, d, step)
	for {
		sq := b.Square(next)
		if sq == nil || sq.Empty() {
			return coord
		}
		coord = next
		next = b.Offset(coord, d, step)
	}
}

// PlaceWord places word (already-resolved letters, one per square) on the
// board starting at start running in direction d. Placement is atomic: on
// any failure, every tile placed by this call is removed before the error
// is returned, per spec.md §7.
func (b *Board) PlaceWord(start Coordinate, word []tilemapping.MachineLetter, d Direction) error {
	placed := make([]Coordinate, 0, len(word))
	rollback := func() {
		for _, c := range placed {
			sq := b.Square(c)
			ml, _ := sq.Tile()
			b.fingerprint ^= b.zTable.TileHash(c.Row*b.size+c.Col, uint8(ml))
			sq.removeTile()
		}
	}

	coord := start
	for _, ml := range word {
		sq := b.Square(coord)
		if sq == nil {
			rollback()
			return fmt.Errorf("board: placement runs off the board at %v", coord)
		}
		if existing, ok := sq.Tile(); ok {
			if existing != ml {
				rollback()
				return fmt.Errorf("board: square %v already holds a different tile", coord)
			}
			coord = b.Offset(coord, d, 1)
			continue
		}
		sq.setTile(ml)
		b.fingerprint ^= b.zTable.TileHash(coord.Row*b.size+coord.Col, uint8(ml))
		placed = append(placed, coord)
		coord = b.Offset(coord, d, 1)
	}
	b.empty = false
	b.generation++
	return nil
}

// String renders the board with '-' for empty squares, for diagnostics.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if c > 0 {
				sb.WriteString("  ")
			}
			sq := b.Square(Coordinate{Row: r, Col: c})
			if ml, ok := sq.Tile(); ok {
				sb.WriteString(ml.String())
			} else {
				sb.WriteString("-")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
