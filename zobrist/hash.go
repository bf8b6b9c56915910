// Package zobrist implements Zobrist hashing
// (https://en.wikipedia.org/wiki/Zobrist_hashing) for board fingerprinting.
// There is no opponent rack or turn alternation to fold into the hash here,
// so this package keeps only the one concern that still applies: a
// per-square table a Board folds into a running fingerprint as tiles are
// placed, used by movegen to key its move cache.
package zobrist

import "lukechampine.com/frand"

const bignum = 1<<63 - 2

// Table holds the random per-square, per-letter values XORed into a
// board's running fingerprint as tiles are placed and removed.
type Table struct {
	posTable [][26]uint64
}

// NewTable builds a Table sized for a boardDim x boardDim board.
func NewTable(boardDim int) *Table {
	t := &Table{posTable: make([][26]uint64, boardDim*boardDim)}
	for i := range t.posTable {
		for j := range t.posTable[i] {
			t.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	return t
}

// TileHash returns the XOR contribution of letter ml (0-25) sitting at
// square index sq (row*boardDim+col). XOR is its own inverse, so folding
// this value into a running key on placement and folding it again on
// removal keeps the fingerprint in sync in O(1) per tile, without a
// full-board rescan.
func (t *Table) TileHash(sq int, ml uint8) uint64 {
	return t.posTable[sq][ml]
}
