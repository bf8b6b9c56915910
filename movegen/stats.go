package movegen

import (
	"gonum.org/v1/gonum/stat"

	"github.com/astralcai/crossgen/move"
)

// ScoreStats summarizes the score distribution of a generated move list:
// the mean score, its standard deviation, and the top score. It changes
// nothing about scoring or ranking (spec.md §4.5 is unaffected) — it is a
// diagnostic surfaced by the CLI's `stats` command (SPEC_FULL.md §5).
type ScoreStats struct {
	Count    int
	Mean     float64
	StdDev   float64
	TopScore int
}

// ComputeScoreStats summarizes moves, which need not be sorted. It returns
// the zero ScoreStats for an empty list.
func ComputeScoreStats(moves []*move.Move) ScoreStats {
	if len(moves) == 0 {
		return ScoreStats{}
	}
	scores := make([]float64, len(moves))
	top := moves[0].Score()
	for i, m := range moves {
		scores[i] = float64(m.Score())
		if m.Score() > top {
			top = m.Score()
		}
	}
	mean, stdDev := stat.MeanStdDev(scores, nil)
	return ScoreStats{
		Count:    len(moves),
		Mean:     mean,
		StdDev:   stdDev,
		TopScore: top,
	}
}
