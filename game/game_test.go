package game

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralcai/crossgen/board"
	"github.com/astralcai/crossgen/gaddag"
	"github.com/astralcai/crossgen/tilemapping"
	"github.com/astralcai/crossgen/variant"
)

func testLexicon(t *testing.T) *gaddag.Lexicon {
	t.Helper()
	lex, err := gaddag.Build("test", []string{
		"CAT", "CATS", "CARE", "CARED", "CARS", "AT", "TO", "IT",
	})
	require.NoError(t, err)
	return lex
}

func testDistribution(t *testing.T) *tilemapping.Distribution {
	t.Helper()
	var sb string
	for c := byte('A'); c <= 'Z'; c++ {
		sb += string(c) + " 1\n"
	}
	dist, err := tilemapping.ParseDistribution(strings.NewReader(sb))
	require.NoError(t, err)
	return dist
}

func TestGamePlayAndShow(t *testing.T) {
	lex := testLexicon(t)
	dist := testDistribution(t)
	layout, err := board.NamedLayout("scrabble")
	require.NoError(t, err)

	g := New(layout, lex, dist, variant.Scrabble)
	require.NotEmpty(t, g.ID)

	m, err := g.Play(board.Coordinate{Row: 7, Col: 7}, "CAT", board.Across)
	require.NoError(t, err)
	assert.Equal(t, "CAT", m.Word())
	assert.Contains(t, g.Show(), "C")
}

func TestGamePlayIllegalOffBoard(t *testing.T) {
	lex := testLexicon(t)
	dist := testDistribution(t)
	layout, err := board.NamedLayout("scrabble")
	require.NoError(t, err)
	g := New(layout, lex, dist, variant.Scrabble)

	_, err = g.Play(board.Coordinate{Row: 7, Col: 13}, "CARES", board.Across)
	require.Error(t, err)
	var illegal *IllegalMoveError
	require.ErrorAs(t, err, &illegal)
}

func TestGameFindBestMovesAfterPlay(t *testing.T) {
	lex := testLexicon(t)
	dist := testDistribution(t)
	layout, err := board.NamedLayout("scrabble")
	require.NoError(t, err)
	g := New(layout, lex, dist, variant.Scrabble)

	_, err = g.Play(board.Coordinate{Row: 7, Col: 7}, "CAT", board.Across)
	require.NoError(t, err)

	moves, err := g.FindBestMoves("SRAC", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, moves)
}

func TestGameSaveAndLoadRoundTrip(t *testing.T) {
	lex := testLexicon(t)
	dist := testDistribution(t)
	layout, err := board.NamedLayout("scrabble")
	require.NoError(t, err)
	g := New(layout, lex, dist, variant.Scrabble)

	_, err = g.Play(board.Coordinate{Row: 7, Col: 7}, "CAT", board.Across)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "game.sav")
	require.NoError(t, g.Save(path))

	loaded, err := Load(path, lex, dist)
	require.NoError(t, err)
	assert.Equal(t, g.Show(), loaded.Show())

	before, err := g.FindBestMoves("SRAC", 0)
	require.NoError(t, err)
	after, err := loaded.FindBestMoves("SRAC", 0)
	require.NoError(t, err)
	require.Equal(t, len(before), len(after))
	for i := range before {
		assert.Equal(t, before[i].String(), after[i].String())
	}
}

func TestGameLoadMissingFile(t *testing.T) {
	lex := testLexicon(t)
	dist := testDistribution(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.sav"), lex, dist)
	require.Error(t, err)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}
