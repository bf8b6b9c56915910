package movegen

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/astralcai/crossgen/board"
	"github.com/astralcai/crossgen/gaddag"
	"github.com/astralcai/crossgen/move"
	"github.com/astralcai/crossgen/tilemapping"
)

// FindBestMovesMulti runs FindBestMoves concurrently over several
// independent boards sharing one lexicon, distribution, and rack — the
// shape of query a caller evaluating a batch of candidate board states
// would make. Each board gets its own Generator; none of the boards are
// mutated, so the goroutines need no synchronization between them, per
// spec.md §5 ("external callers may parallelize per-board with no
// synchronization").
func FindBestMovesMulti(ctx context.Context, boards []*board.Board, lex *gaddag.Lexicon, dist *tilemapping.Distribution, rack *tilemapping.Rack, num int) ([][]*move.Move, error) {
	results := make([][]*move.Move, len(boards))
	grp, _ := errgroup.WithContext(ctx)
	for i, b := range boards {
		i, b := i, b
		grp.Go(func() error {
			gen := New(b, lex, dist)
			results[i] = gen.FindBestMoves(rack.Clone(), num)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
