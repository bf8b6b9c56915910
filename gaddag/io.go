package gaddag

import (
	"bufio"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/avast/retry-go"
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/astralcai/crossgen/tilemapping"
)

// lowMemoryThreshold is the free-memory level below which BuildFromFile
// warns that constructing a GADDAG from a raw word list in memory may be a
// poor choice compared to loading a prebuilt container via LoadFile
// (SPEC_FULL.md §7). It is informational only — it never blocks a build.
const lowMemoryThreshold = 256 * 1024 * 1024

// magic identifies the on-disk container format. The teacher's
// gaddagmaker.Save uses "cgdg"/"cdwg" for its uncompressed node/arc dump;
// we keep the same four bytes and wrap the whole stream in gzip, matching
// the compression choice `scrabbler.dictionary.Dictionary._store` makes for
// the original Python pickle.
var magic = [4]byte{'c', 'g', 'd', 'g'}

// Store writes lex to w as a gzip-compressed binary container: magic,
// lexicon name, then the three CSR arrays, each length-prefixed.
func Store(w io.Writer, lex *Lexicon) error {
	gz := gzip.NewWriter(w)
	if err := writeContainer(gz, lex); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}

func writeContainer(w io.Writer, lex *Lexicon) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(magic[:]); err != nil {
		return err
	}
	if err := writeString(bw, lex.name); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.BigEndian, uint32(len(lex.letterSets))); err != nil {
		return err
	}
	for _, ls := range lex.letterSets {
		if err := binary.Write(bw, binary.BigEndian, uint32(ls)); err != nil {
			return err
		}
	}
	if err := binary.Write(bw, binary.BigEndian, uint32(len(lex.arcStart))); err != nil {
		return err
	}
	for _, v := range lex.arcStart {
		if err := binary.Write(bw, binary.BigEndian, v); err != nil {
			return err
		}
	}
	if err := binary.Write(bw, binary.BigEndian, uint32(len(lex.arcLetter))); err != nil {
		return err
	}
	for i, ml := range lex.arcLetter {
		if err := binary.Write(bw, binary.BigEndian, uint8(ml)); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.BigEndian, lex.arcDest[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// Load reads a lexicon previously written by Store.
func Load(r io.Reader) (*Lexicon, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("gaddag: not a valid container: %w", err)
	}
	defer gz.Close()
	return readContainer(gz)
}

func readContainer(r io.Reader) (*Lexicon, error) {
	br := bufio.NewReader(r)
	var got [4]byte
	if _, err := io.ReadFull(br, got[:]); err != nil {
		return nil, fmt.Errorf("gaddag: reading magic: %w", err)
	}
	if got != magic {
		return nil, fmt.Errorf("gaddag: bad magic %q, want %q", got, magic)
	}
	name, err := readString(br)
	if err != nil {
		return nil, err
	}

	numStates, err := readUint32(br)
	if err != nil {
		return nil, err
	}
	letterSets := make([]tilemapping.LetterSet, numStates)
	for i := range letterSets {
		v, err := readUint32(br)
		if err != nil {
			return nil, err
		}
		letterSets[i] = tilemapping.LetterSet(v)
	}

	numStarts, err := readUint32(br)
	if err != nil {
		return nil, err
	}
	arcStart := make([]uint32, numStarts)
	for i := range arcStart {
		v, err := readUint32(br)
		if err != nil {
			return nil, err
		}
		arcStart[i] = v
	}

	numArcs, err := readUint32(br)
	if err != nil {
		return nil, err
	}
	arcLetter := make([]tilemapping.MachineLetter, numArcs)
	arcDest := make([]uint32, numArcs)
	for i := range arcLetter {
		var ml uint8
		if err := binary.Read(br, binary.BigEndian, &ml); err != nil {
			return nil, fmt.Errorf("gaddag: reading arc letter: %w", err)
		}
		dest, err := readUint32(br)
		if err != nil {
			return nil, err
		}
		arcLetter[i] = tilemapping.MachineLetter(ml)
		arcDest[i] = dest
	}

	return &Lexicon{
		name:       name,
		letterSets: letterSets,
		arcStart:   arcStart,
		arcLetter:  arcLetter,
		arcDest:    arcDest,
	}, nil
}

func readString(r io.Reader) (string, error) {
	n, err := readUint32(r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("gaddag: reading string: %w", err)
	}
	return string(buf), nil
}

func readUint32(r io.Reader) (uint32, error) {
	var v uint32
	if err := binary.Read(r, binary.BigEndian, &v); err != nil {
		return 0, fmt.Errorf("gaddag: reading length: %w", err)
	}
	return v, nil
}

// StoreFile writes lex to path, creating or truncating it.
func StoreFile(path string, lex *Lexicon) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gaddag: creating %s: %w", path, err)
	}
	defer f.Close()
	return Store(f, lex)
}

// LoadFile opens path, retrying transient open failures (a networked or
// mounted filesystem hiccup, not a malformed-lexicon error) before
// decoding the container.
func LoadFile(path string) (*Lexicon, error) {
	var f *os.File
	err := retry.Do(
		func() error {
			var openErr error
			f, openErr = os.Open(path)
			return openErr
		},
		retry.Attempts(3),
		retry.Delay(20*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("gaddag: opening %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// BuildFromFile constructs a lexicon named name from the word list at path,
// one word per line. Lines are decoded through a Latin-1 fallback transform
// to tolerate legacy word lists that are not valid UTF-8 (the same
// tolerance gcgio applies to GCG files in the teacher repo), and the file
// open is retried to absorb transient I/O errors rather than failing the
// whole build on a flaky mount.
func BuildFromFile(name, path string) (*Lexicon, error) {
	if free := memory.FreeMemory(); free != 0 && free < lowMemoryThreshold {
		log.Warn().
			Uint64("free_bytes", free).
			Str("lexicon", name).
			Msg("low free memory: consider gaddag.LoadFile against a prebuilt container instead of building from a word list")
	}

	var f *os.File
	err := retry.Do(
		func() error {
			var openErr error
			f, openErr = os.Open(path)
			return openErr
		},
		retry.Attempts(3),
		retry.Delay(20*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("gaddag: opening word list %s: %w", path, err)
	}
	defer f.Close()

	decoded := transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	text, err := io.ReadAll(decoded)
	if err != nil {
		return nil, fmt.Errorf("gaddag: reading word list %s: %w", path, err)
	}
	return Build(name, wordsFromText(string(text)))
}
