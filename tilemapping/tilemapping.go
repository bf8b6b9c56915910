// Package tilemapping defines the letter alphabet shared by the lexicon,
// the board, and the move generator: machine letters, letter sets, the
// blank tile, and the tile→score distribution consumed from an external
// tile-list file.
package tilemapping

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// MachineLetter is a compact representation of a letter. Values 0-25
// represent A-Z. SeparatorLetter is the GADDAG delimiter arc label; it is
// never a board or rack letter.
type MachineLetter uint8

const (
	// NumLetters is the size of the English alphabet this package encodes.
	NumLetters = 26
	// SeparatorLetter is the GADDAG "⊣" delimiter, one past the alphabet.
	SeparatorLetter MachineLetter = NumLetters
	// BlankLetter is the rack/board representation of a wildcard tile.
	BlankLetter byte = '?'
)

// FromByte converts an uppercase ASCII letter to a MachineLetter.
func FromByte(b byte) (MachineLetter, error) {
	if b < 'A' || b > 'Z' {
		return 0, fmt.Errorf("tilemapping: %q is not an uppercase letter", b)
	}
	return MachineLetter(b - 'A'), nil
}

// Byte converts a MachineLetter back to its uppercase ASCII representation.
func (ml MachineLetter) Byte() byte {
	if ml == SeparatorLetter {
		return '#'
	}
	return byte(ml) + 'A'
}

func (ml MachineLetter) String() string {
	return string(ml.Byte())
}

// LetterSet is a bitmask over the 26-letter alphabet. Bit i is set iff
// letter 'A'+i belongs to the set.
type LetterSet uint32

// FullLetterSet permits every letter of the alphabet; it is the cross-set
// value a square carries before any word has ever touched it.
const FullLetterSet LetterSet = (1 << NumLetters) - 1

// EmptyLetterSet permits nothing; cross-set maintenance clears a square to
// this value when the run it anchors turns out not to be a word.
const EmptyLetterSet LetterSet = 0

// With returns the set with ml added.
func (s LetterSet) With(ml MachineLetter) LetterSet {
	if ml >= NumLetters {
		return s
	}
	return s | (1 << ml)
}

// Has reports whether ml belongs to the set.
func (s LetterSet) Has(ml MachineLetter) bool {
	if ml >= NumLetters {
		return false
	}
	return s&(1<<ml) != 0
}

// Distribution maps every letter to the number of points it is worth. It is
// the core's in-memory form of the "tile list" external input in spec.md §6.
type Distribution struct {
	scores [NumLetters]int
}

// Score returns the point value of ml. The blank is scored by the caller
// (always 0 per spec.md §4.5); it never appears in a Distribution.
func (d *Distribution) Score(ml MachineLetter) int {
	if ml >= NumLetters {
		return 0
	}
	return d.scores[ml]
}

// LoadDistribution reads the "LETTER SCORE" tile-list format described in
// spec.md §6: UTF-8 text, one line per tile, 26 lines covering A-Z. Lines
// are decoded leniently through a Latin-1 fallback transform, the same
// tolerance gcgio.go in the teacher repo applies to GCG files, since tile
// lists distributed for regional variants sometimes ship non-UTF-8.
func LoadDistribution(path string) (*Distribution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tilemapping: opening tile list %s: %w", path, err)
	}
	defer f.Close()
	return ParseDistribution(f)
}

// ParseDistribution parses the tile-list format from an arbitrary reader.
func ParseDistribution(r io.Reader) (*Distribution, error) {
	dist := &Distribution{}
	seen := make(map[byte]bool, NumLetters)

	decoded := transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	scanner := bufio.NewScanner(decoded)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("tilemapping: malformed tile-list line %q", line)
		}
		letterStr, scoreStr := strings.ToUpper(fields[0]), fields[1]
		if len(letterStr) != 1 {
			return nil, fmt.Errorf("tilemapping: malformed tile letter %q", letterStr)
		}
		ml, err := FromByte(letterStr[0])
		if err != nil {
			return nil, fmt.Errorf("tilemapping: %w", err)
		}
		score, err := strconv.Atoi(scoreStr)
		if err != nil {
			return nil, fmt.Errorf("tilemapping: malformed score in line %q: %w", line, err)
		}
		dist.scores[ml] = score
		seen[letterStr[0]] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tilemapping: reading tile list: %w", err)
	}
	if len(seen) != NumLetters {
		return nil, fmt.Errorf("tilemapping: tile list covers %d letters, want %d", len(seen), NumLetters)
	}
	return dist, nil
}
