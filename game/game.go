// Package game wraps board, gaddag, and movegen behind a small public
// surface: a handful of operations for a human (or a CLI, or an external
// bot) to play moves and query the engine for good ones. It never
// alternates turns, draws from a bag, or models an opponent — there is
// exactly one board, one rack-free Play call, and a FindBestMoves query,
// nothing resembling a turn loop.
package game

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/astralcai/crossgen/board"
	"github.com/astralcai/crossgen/gaddag"
	"github.com/astralcai/crossgen/move"
	"github.com/astralcai/crossgen/movegen"
	"github.com/astralcai/crossgen/tilemapping"
	"github.com/astralcai/crossgen/variant"
)

// Game is a single board under one lexicon, tile distribution, and variant.
// It is not safe for concurrent use — exactly the constraint its embedded
// *board.Board already carries.
type Game struct {
	ID   string
	gen  *movegen.Generator
	b    *board.Board
	lex  *gaddag.Lexicon
	dist *tilemapping.Distribution

	// publisher, when non-nil, receives a "move.played" event after every
	// successful Play. Nil by default: the core never requires NATS.
	publisher *nats.Conn
}

// New starts a fresh game on layout, under lex/dist/v. The caller owns
// lex/dist — they are typically shared across many concurrently-running
// Games, since a Lexicon is immutable and read-only once built.
func New(layout *board.Layout, lex *gaddag.Lexicon, dist *tilemapping.Distribution, v variant.Variant) *Game {
	b := board.MakeBoard(layout, v)
	g := &Game{
		ID:   uuid.NewString(),
		b:    b,
		lex:  lex,
		dist: dist,
		gen:  movegen.New(b, lex, dist),
	}
	log.Info().Str("game_id", g.ID).Str("variant", string(v)).Msg("game started")
	return g
}

// NewNamed is New with the board layout resolved from one of the built-in
// names (spec.md §6: `Game.new(layout: "scrabble"|"wwf15", ...)`).
func NewNamed(layoutName string, lex *gaddag.Lexicon, dist *tilemapping.Distribution, v variant.Variant) (*Game, error) {
	layout, err := board.NamedLayout(layoutName)
	if err != nil {
		return nil, &InvalidInputError{Reason: err.Error()}
	}
	return New(layout, lex, dist, v), nil
}

// WithPublisher attaches a NATS connection Play uses to announce completed
// moves on the "move.played" subject. Passing nil (the zero value already
// does this) disables publishing — Play never requires a NATS connection.
func (g *Game) WithPublisher(nc *nats.Conn) *Game {
	g.publisher = nc
	return g
}

// Play places word (plain letters, e.g. "CAT") at start running in
// direction dir, maintains every cross-set the placement touches, and
// returns the scored Move. It follows scrabbler.py's Game.play exactly:
// place the tiles, then update the pivot's own-direction cross-set once
// for the whole run, then walk every letter updating its perpendicular
// cross-set (spec.md §4.3). Play carries no rack of its own — callers
// track what is available to play, matching spec.md §8's exclusion of the
// turn/bag-driven loop — so it never reports a bingo bonus, which is
// intrinsically a rack-depletion event.
func (g *Game) Play(start board.Coordinate, word string, dir board.Direction) (*move.Move, error) {
	tiles, err := lettersFromString(word)
	if err != nil {
		return nil, &InvalidInputError{Reason: err.Error()}
	}

	emptyBefore := make([]bool, len(tiles))
	coord := start
	for i := range tiles {
		sq := g.b.Square(coord)
		if sq == nil {
			return nil, &IllegalMoveError{Word: word, Start: start, Direction: dir}
		}
		emptyBefore[i] = sq.Empty()
		coord = g.b.Offset(coord, dir, 1)
	}

	if err := g.b.PlaceWord(start, tiles, dir); err != nil {
		return nil, &IllegalMoveError{Word: word, Start: start, Direction: dir, Cause: err}
	}
	score := movegen.ScorePlacement(g.b, g.dist, start, dir, tiles, emptyBefore)

	g.b.UpdateCrossSet(g.lex, start, dir)
	coord = start
	for range tiles {
		g.b.UpdateCrossSet(g.lex, coord, dir.Perpendicular())
		coord = g.b.Offset(coord, dir, 1)
	}

	played := move.New(tiles, start, dir, score, nil)
	log.Info().Str("game_id", g.ID).Str("word", played.Word()).Int("score", played.Score()).Msg("move played")
	g.publish(played)
	return played, nil
}

// FindBestMoves returns up to num legal moves for rack against the current
// board, sorted descending by score (spec.md §6). num <= 0 means no cap.
func (g *Game) FindBestMoves(rackLetters string, num int) ([]*move.Move, error) {
	rack, err := tilemapping.NewRack(rackLetters)
	if err != nil {
		return nil, &InvalidInputError{Reason: err.Error()}
	}
	return g.gen.FindBestMoves(rack, num), nil
}

// Show renders the board for a human, per spec.md §6.
func (g *Game) Show() string {
	return g.b.String()
}

// Board exposes the underlying board read-only access relies on (scoring
// diagnostics, the CLI's `show`, tests). Callers must not mutate it outside
// of Play.
func (g *Game) Board() *board.Board {
	return g.b
}

func (g *Game) publish(m *move.Move) {
	if g.publisher == nil {
		return
	}
	payload := fmt.Sprintf(`{"game_id":%q,"word":%q,"score":%d}`, g.ID, m.Word(), m.Score())
	if err := g.publisher.Publish("move.played", []byte(payload)); err != nil {
		log.Warn().Err(err).Str("game_id", g.ID).Msg("failed to publish move.played event")
	}
}

func lettersFromString(word string) ([]tilemapping.MachineLetter, error) {
	tiles := make([]tilemapping.MachineLetter, len(word))
	for i := 0; i < len(word); i++ {
		ml, err := tilemapping.FromByte(word[i] &^ 0x20) // tolerate lowercase input
		if err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
		tiles[i] = ml
	}
	return tiles, nil
}

// savedGame is the gob-encoded, gzip-compressed state Save/Load round-trip,
// mirroring scrabbler.py's Game.save gzipping a pickled board (the
// persistence resolution in SPEC_FULL.md §1: follow the original's
// compression choice, expressed as compress/gzip over encoding/gob instead
// of gzip over pickle).
type savedGame struct {
	ID      string
	Variant variant.Variant
	Size    int
	Special map[board.Effect][]board.Coordinate
	Tiles   []savedTile
}

type savedTile struct {
	Row, Col int
	Letter   tilemapping.MachineLetter
}

// Save writes the game's board state (not the lexicon or distribution,
// which the caller reloads independently) to path as a gzip-compressed gob
// stream.
func (g *Game) Save(path string) error {
	saved := savedGame{
		ID:      g.ID,
		Variant: g.b.Variant(),
		Size:    g.b.Size(),
		Special: map[board.Effect][]board.Coordinate{},
	}
	for r := 0; r < g.b.Size(); r++ {
		for c := 0; c < g.b.Size(); c++ {
			coord := board.Coordinate{Row: r, Col: c}
			sq := g.b.Square(coord)
			if eff := sq.Effect(); eff != board.Plain {
				saved.Special[eff] = append(saved.Special[eff], coord)
			}
			if ml, ok := sq.Tile(); ok {
				saved.Tiles = append(saved.Tiles, savedTile{Row: r, Col: c, Letter: ml})
			}
		}
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if err := gob.NewEncoder(gz).Encode(saved); err != nil {
		return fmt.Errorf("game: encoding saved game: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("game: closing gzip stream: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("game: writing %s: %w", path, err)
	}
	return nil
}

// Load restores a game saved by Save, rebuilding its board against lex/dist
// (which the caller must load separately — the save file carries no
// lexicon data, matching spec.md §4.1's immutable, shared Lexicon).
func Load(path string, lex *gaddag.Lexicon, dist *tilemapping.Distribution) (*Game, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path}
	}
	gz, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("game: %s is not a valid saved game: %w", path, err)
	}
	var saved savedGame
	if err := gob.NewDecoder(gz).Decode(&saved); err != nil {
		return nil, fmt.Errorf("game: decoding %s: %w", path, err)
	}

	layout := &board.Layout{Size: saved.Size, Special: saved.Special}
	b := board.MakeBoard(layout, saved.Variant)
	for _, t := range saved.Tiles {
		coord := board.Coordinate{Row: t.Row, Col: t.Col}
		if err := b.PlaceWord(coord, []tilemapping.MachineLetter{t.Letter}, board.Across); err != nil {
			return nil, fmt.Errorf("game: restoring tile at %v: %w", coord, err)
		}
	}
	for r := 0; r < b.Size(); r++ {
		for c := 0; c < b.Size(); c++ {
			coord := board.Coordinate{Row: r, Col: c}
			if sq := b.Square(coord); sq != nil && !sq.Empty() {
				b.UpdateCrossSet(lex, coord, board.Across)
				b.UpdateCrossSet(lex, coord, board.Down)
			}
		}
	}

	return &Game{
		ID:   saved.ID,
		b:    b,
		lex:  lex,
		dist: dist,
		gen:  movegen.New(b, lex, dist),
	}, nil
}
