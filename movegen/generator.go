// Package movegen implements spec.md §4.4-§4.5: the anchor scan and the
// bidirectional recursive GADDAG walk (gen/go_on, adapted from Gordon '94)
// that enumerates every legal word placement for a rack against a board,
// scored per spec.md §4.5. Grounded directly in the original Python
// `scrabbler.scrabbler.Board.generate_moves`/`find_best_moves`
// (_examples/original_source/scrabbler/scrabbler.py), restructured around a
// single mutable rack and position buffer with explicit push/pop
// backtracking instead of per-branch deep copies, per spec.md DESIGN NOTES
// §9 ("the single largest performance lever").
package movegen

import (
	"sort"

	lru "github.com/hashicorp/golang-lru"
	"github.com/samber/lo"

	"github.com/astralcai/crossgen/board"
	"github.com/astralcai/crossgen/gaddag"
	"github.com/astralcai/crossgen/move"
	"github.com/astralcai/crossgen/tilemapping"
)

// Generator walks a *board.Board's anchors against a *gaddag.Lexicon,
// scoring placements against a tilemapping.Distribution. Its only mutable
// state between calls is the FindBestMoves result cache, keyed so that it
// never survives a change to the underlying board (spec.md §5: Board
// itself is not safe for concurrent use, but a Generator imposes no
// additional constraint beyond that).
type Generator struct {
	board *board.Board
	lex   *gaddag.Lexicon
	dist  *tilemapping.Distribution
	cache *lru.Cache
}

// New builds a Generator over b, consulting lex for word validity and dist
// for letter scores, with the default FindBestMoves result cache size.
func New(b *board.Board, lex *gaddag.Lexicon, dist *tilemapping.Distribution) *Generator {
	g, err := NewWithCacheSize(b, lex, dist, defaultCacheSize)
	if err != nil {
		// defaultCacheSize is a positive compile-time constant; lru.New
		// only fails for size <= 0.
		panic(err)
	}
	return g
}

// NewWithCacheSize is New with an explicit result-cache capacity. A
// cacheSize of 0 disables caching entirely.
func NewWithCacheSize(b *board.Board, lex *gaddag.Lexicon, dist *tilemapping.Distribution, cacheSize int) (*Generator, error) {
	g := &Generator{board: b, lex: lex, dist: dist}
	if cacheSize == 0 {
		return g, nil
	}
	cache, err := newCache(cacheSize)
	if err != nil {
		return nil, err
	}
	g.cache = cache
	return g, nil
}

// FindBestMoves enumerates every legal placement of rack against the
// generator's board and returns the top num, sorted descending by score
// (spec.md §6, §8 property 3). num <= 0 means "no cap."
func (g *Generator) FindBestMoves(rack *tilemapping.Rack, num int) []*move.Move {
	key := g.cacheKeyFor(rack.String(), num)
	if cached, ok := g.cacheLookup(key); ok {
		return cached
	}

	var moves []*move.Move
	if g.board.Empty() {
		size := g.board.Size()
		center := board.Coordinate{Row: size / 2, Col: size / 2}
		moves = g.generateMoves(center, board.Across, rack.Clone(), map[board.Coordinate]bool{})
	} else {
		moves = append(g.findMovesInDirection(rack, board.Across), g.findMovesInDirection(rack, board.Down)...)
	}
	moves = lo.UniqBy(moves, func(m *move.Move) string {
		return m.String()
	})

	sort.SliceStable(moves, func(i, j int) bool { return moves[i].Score() > moves[j].Score() })
	if num > 0 && len(moves) > num {
		moves = moves[:num]
	}

	g.cacheStore(key, moves)
	return moves
}

// scanOrder returns every coordinate of a size x size board in the order
// findMovesInDirection visits them for direction d: the outer loop walks the
// perpendicular axis and the inner loop walks d, so each square is produced
// exactly once (spec.md §9's resolution of the anchor-scan iteration-order
// ambiguity — TestScanOrderCoversEverySquareOnce pins this down).
func scanOrder(b *board.Board, d board.Direction) []board.Coordinate {
	perp := d.Perpendicular()
	size := b.Size()
	corner := board.Coordinate{}
	coords := make([]board.Coordinate, 0, size*size)
	for i := 0; i < size; i++ {
		leftMost := b.Offset(corner, perp, i)
		for j := 0; j < size; j++ {
			coords = append(coords, b.Offset(leftMost, d, j))
		}
	}
	return coords
}

// findMovesInDirection scans every anchor along d in scanOrder, per spec.md
// §4.4.
func (g *Generator) findMovesInDirection(rack *tilemapping.Rack, d board.Direction) []*move.Move {
	anchorsUsed := make(map[board.Coordinate]bool)
	var moves []*move.Move

	for _, current := range scanOrder(g.board, d) {
		if g.isAnchor(current, d) {
			moves = append(moves, g.generateMoves(current, d, rack.Clone(), anchorsUsed)...)
			anchorsUsed[current] = true
		}
	}
	return moves
}

// isAnchor reports whether coord is a canonical starting point for word
// generation in direction d (spec.md §4.4's Anchor definition).
func (g *Generator) isAnchor(coord board.Coordinate, d board.Direction) bool {
	sq := g.board.Square(coord)
	if sq == nil {
		return false
	}
	perp := d.Perpendicular()
	if sq.Empty() {
		above := g.board.Square(g.board.Offset(coord, perp, -1))
		below := g.board.Square(g.board.Offset(coord, perp, 1))
		return (above != nil && !above.Empty()) || (below != nil && !below.Empty())
	}
	right := g.board.Square(g.board.Offset(coord, d, 1))
	return right == nil || right.Empty()
}
