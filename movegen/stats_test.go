package movegen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralcai/crossgen/board"
	"github.com/astralcai/crossgen/tilemapping"
	"github.com/astralcai/crossgen/variant"
)

func TestComputeScoreStatsEmpty(t *testing.T) {
	assert.Equal(t, ScoreStats{}, ComputeScoreStats(nil))
}

func TestComputeScoreStatsAgreesWithMoves(t *testing.T) {
	lex := testLexicon(t)
	dist := uniformDistribution(t, nil)
	b := board.MakeBoard(smallLayout(15, nil), variant.Scrabble)
	rack, err := tilemapping.NewRack("CARED")
	require.NoError(t, err)

	gen := New(b, lex, dist)
	moves := gen.FindBestMoves(rack, 0)
	require.NotEmpty(t, moves)

	stats := ComputeScoreStats(moves)
	assert.Equal(t, len(moves), stats.Count)
	assert.Equal(t, moves[0].Score(), stats.TopScore)
	assert.GreaterOrEqual(t, stats.StdDev, 0.0)
}

func TestFindBestMovesMultiRunsIndependently(t *testing.T) {
	lex := testLexicon(t)
	dist := uniformDistribution(t, nil)
	b1 := board.MakeBoard(smallLayout(15, nil), variant.Scrabble)
	b2 := board.MakeBoard(smallLayout(15, nil), variant.Scrabble)
	rack, err := tilemapping.NewRack("CARED")
	require.NoError(t, err)

	results, err := FindBestMovesMulti(context.Background(), []*board.Board{b1, b2}, lex, dist, rack, 5)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.NotEmpty(t, results[0])
	assert.Equal(t, results[0][0].Word(), results[1][0].Word())
}

func TestFindBestMovesCacheHitAfterRepeatedQuery(t *testing.T) {
	lex := testLexicon(t)
	dist := uniformDistribution(t, nil)
	b := board.MakeBoard(smallLayout(15, nil), variant.Scrabble)
	rack, err := tilemapping.NewRack("CARED")
	require.NoError(t, err)

	gen := New(b, lex, dist)
	first := gen.FindBestMoves(rack, 3)
	second := gen.FindBestMoves(rack, 3)
	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].String(), second[i].String())
		assert.Same(t, first[i], second[i])
	}
}
