// Package move defines the value-typed Move record spec.md §3 describes: a
// scored word placement, freely copyable, with no behavior beyond reporting
// its own fields. Grounded in the teacher's move/move.go shape (score,
// tiles, coordinates, a String/ShortDescription pair), trimmed to the
// fields this core's generator actually produces (no exchange/pass/equity,
// which belong to the excluded driver loop).
package move

import (
	"fmt"
	"strings"

	"github.com/astralcai/crossgen/board"
	"github.com/astralcai/crossgen/tilemapping"
)

// Move is a single scored word placement: the word, where it starts, which
// direction it runs, its score, and which of its letters (by offset within
// the word) were blank tiles contributing zero score.
type Move struct {
	word      []tilemapping.MachineLetter
	start     board.Coordinate
	dir       board.Direction
	score     int
	wildcards map[int]bool
}

// New builds a Move. wildPositions are offsets into word (0-based) that
// were played from a blank tile.
func New(word []tilemapping.MachineLetter, start board.Coordinate, dir board.Direction, score int, wildPositions []int) *Move {
	wc := make(map[int]bool, len(wildPositions))
	for _, p := range wildPositions {
		wc[p] = true
	}
	return &Move{word: word, start: start, dir: dir, score: score, wildcards: wc}
}

// Word returns the word's user-visible uppercase letters.
func (m *Move) Word() string {
	var sb strings.Builder
	for _, ml := range m.word {
		sb.WriteByte(ml.Byte())
	}
	return sb.String()
}

// Tiles returns the machine-letter form of the word, as placed.
func (m *Move) Tiles() []tilemapping.MachineLetter {
	return m.word
}

// StartSquare returns the coordinate of the word's first letter.
func (m *Move) StartSquare() board.Coordinate {
	return m.start
}

// Direction reports whether the word runs across or down.
func (m *Move) Direction() board.Direction {
	return m.dir
}

// Score returns the move's total point value.
func (m *Move) Score() int {
	return m.score
}

// IsWild reports whether the letter at offset i within the word was played
// from a blank tile.
func (m *Move) IsWild(i int) bool {
	return m.wildcards[i]
}

// WildPositions returns the offsets, in increasing order, of every blank
// tile used by this move.
func (m *Move) WildPositions() []int {
	positions := make([]int, 0, len(m.wildcards))
	for i := range m.word {
		if m.wildcards[i] {
			positions = append(positions, i)
		}
	}
	return positions
}

// Length reports the number of letters in the word.
func (m *Move) Length() int {
	return len(m.word)
}

func (m *Move) String() string {
	return fmt.Sprintf("<play %s %s at %v score: %d>", m.dir, m.Word(), m.start, m.score)
}
