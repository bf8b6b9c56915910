package movegen

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/astralcai/crossgen/move"
)

// defaultCacheSize bounds the number of distinct (board state, rack,
// result cap) results FindBestMoves keeps around, per SPEC_FULL.md §4.
const defaultCacheSize = 64

// cacheKey identifies a FindBestMoves query against an unchanged board. A
// board's Fingerprint/Generation pair changes on every successful
// PlaceWord, so a stale entry is never returned for a board that has since
// been played on (SPEC_FULL.md §4: "invalidated by bumping the board's
// generation counter").
type cacheKey struct {
	fingerprint uint64
	generation  uint64
	rack        string
	num         int
}

func (g *Generator) cacheKeyFor(rack string, num int) cacheKey {
	return cacheKey{
		fingerprint: g.board.Fingerprint(),
		generation:  g.board.Generation(),
		rack:        rack,
		num:         num,
	}
}

func (g *Generator) cacheLookup(key cacheKey) ([]*move.Move, bool) {
	if g.cache == nil {
		return nil, false
	}
	v, ok := g.cache.Get(key)
	if !ok {
		return nil, false
	}
	return v.([]*move.Move), true
}

func (g *Generator) cacheStore(key cacheKey, moves []*move.Move) {
	if g.cache == nil {
		return
	}
	g.cache.Add(key, moves)
}

func newCache(size int) (*lru.Cache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("movegen: building result cache: %w", err)
	}
	return c, nil
}
