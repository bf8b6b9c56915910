package movegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralcai/crossgen/board"
	"github.com/astralcai/crossgen/gaddag"
	"github.com/astralcai/crossgen/tilemapping"
	"github.com/astralcai/crossgen/variant"
)

var testWords = []string{
	"CAT", "CATS", "CARE", "CARED", "CARS", "DOG", "DOGS",
	"WORLD", "WORLDS", "HELLO", "HE", "HER", "HERS", "LO", "LOW",
	"QI", "QIS", "AT", "TO", "IT", "ANT", "ANTS", "TAN", "TEN", "NET",
}

func testLexicon(t *testing.T) *gaddag.Lexicon {
	t.Helper()
	lex, err := gaddag.Build("test", testWords)
	require.NoError(t, err)
	return lex
}

func uniformDistribution(t *testing.T, overrides map[byte]int) *tilemapping.Distribution {
	t.Helper()
	var sb strings.Builder
	for c := byte('A'); c <= 'Z'; c++ {
		score := 1
		if v, ok := overrides[c]; ok {
			score = v
		}
		sb.WriteByte(c)
		sb.WriteByte(' ')
		sb.WriteString(itoa(score))
		sb.WriteByte('\n')
	}
	dist, err := tilemapping.ParseDistribution(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return dist
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func smallLayout(size int, special map[board.Effect][]board.Coordinate) *board.Layout {
	return &board.Layout{Size: size, Special: special}
}

func TestFindBestMovesEmptyBoardCrossesCenter(t *testing.T) {
	lex := testLexicon(t)
	dist := uniformDistribution(t, nil)
	b := board.MakeBoard(smallLayout(15, nil), variant.Scrabble)
	rack, err := tilemapping.NewRack("CARED")
	require.NoError(t, err)

	gen := New(b, lex, dist)
	moves := gen.FindBestMoves(rack, 0)
	require.NotEmpty(t, moves)

	center := board.Coordinate{Row: 7, Col: 7}
	for _, m := range moves {
		covered := false
		c := m.StartSquare()
		for i := 0; i < m.Length(); i++ {
			if c == center {
				covered = true
			}
			c = b.Offset(c, m.Direction(), 1)
		}
		assert.True(t, covered, "move %v must cross center square", m)
		assert.Equal(t, board.Across, m.Direction())
	}
}

func TestFindBestMovesPerpendicularCrossWord(t *testing.T) {
	lex := testLexicon(t)
	dist := uniformDistribution(t, nil)
	b := board.MakeBoard(smallLayout(15, nil), variant.Scrabble)

	word := []tilemapping.MachineLetter{}
	for _, c := range "HELLO" {
		ml, err := tilemapping.FromByte(byte(c))
		require.NoError(t, err)
		word = append(word, ml)
	}
	require.NoError(t, b.PlaceWord(board.Coordinate{Row: 7, Col: 3}, word, board.Across))
	for i := 0; i < len(word); i++ {
		b.UpdateCrossSet(lex, board.Coordinate{Row: 7, Col: 3 + i}, board.Down)
	}
	b.UpdateCrossSet(lex, board.Coordinate{Row: 7, Col: 3}, board.Across)

	rack, err := tilemapping.NewRack("WORLD??")
	require.NoError(t, err)
	gen := New(b, lex, dist)
	moves := gen.FindBestMoves(rack, 0)

	found := false
	for _, m := range moves {
		if m.Word() == "WORLD" && m.Direction() == board.Down {
			found = true
			for _, p := range m.WildPositions() {
				assert.True(t, p >= 0 && p < m.Length())
			}
		}
	}
	assert.True(t, found, "expected WORLD to be playable through HELLO, got %v", moves)
}

func TestInvalidPerpendicularWordExcluded(t *testing.T) {
	lex := testLexicon(t)
	dist := uniformDistribution(t, nil)
	b := board.MakeBoard(smallLayout(15, nil), variant.Scrabble)

	// Place a lone "X" above the anchor square such that playing CAT
	// across through it would spell the non-word "XC" down the first
	// column of the play.
	x, err := tilemapping.FromByte('X')
	require.NoError(t, err)
	require.NoError(t, b.PlaceWord(board.Coordinate{Row: 6, Col: 7}, []tilemapping.MachineLetter{x}, board.Across))
	b.UpdateCrossSet(lex, board.Coordinate{Row: 6, Col: 7}, board.Down)
	b.UpdateCrossSet(lex, board.Coordinate{Row: 6, Col: 7}, board.Across)

	rack, err := tilemapping.NewRack("CAT")
	require.NoError(t, err)
	gen := New(b, lex, dist)
	moves := gen.FindBestMoves(rack, 0)

	for _, m := range moves {
		if m.Word() == "CAT" && m.StartSquare() == (board.Coordinate{Row: 7, Col: 7}) && m.Direction() == board.Across {
			t.Fatalf("CAT through the X column should not be legal (forms XC): %v", m)
		}
	}
}

func TestScoringDoubleLetterNoCrossWord(t *testing.T) {
	lex := testLexicon(t)
	dist := uniformDistribution(t, map[byte]int{'Q': 10})
	special := map[board.Effect][]board.Coordinate{
		board.DoubleLetter: {{Row: 7, Col: 6}},
	}
	b := board.MakeBoard(smallLayout(15, special), variant.Scrabble)

	rack, err := tilemapping.NewRack("QI")
	require.NoError(t, err)
	gen := New(b, lex, dist)
	moves := gen.FindBestMoves(rack, 0)

	var found *int
	for _, m := range moves {
		if m.Word() == "QI" && m.StartSquare() == (board.Coordinate{Row: 7, Col: 6}) {
			s := m.Score()
			found = &s
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, 21, *found)
}

func TestBlankContributesZeroScore(t *testing.T) {
	lex := testLexicon(t)
	dist := uniformDistribution(t, map[byte]int{'C': 3, 'A': 1, 'T': 1})
	b := board.MakeBoard(smallLayout(15, nil), variant.Scrabble)

	rack, err := tilemapping.NewRack("C?T")
	require.NoError(t, err)
	gen := New(b, lex, dist)
	moves := gen.FindBestMoves(rack, 0)

	for _, m := range moves {
		if m.Word() == "CAT" {
			assert.Len(t, m.WildPositions(), 1)
			assert.Equal(t, 4, m.Score()) // C(3) + blank-A(0) + T(1)
			return
		}
	}
	t.Fatal("expected CAT to be a legal move using the blank for A")
}
