// Command crossgen is an interactive shell for exercising a single Game:
// play moves, ask for the best ones, show the board, save it, and look at
// score statistics. It exposes exactly the core's public surface and
// nothing resembling a turn/bag-driven driver loop — a manual test harness
// for a human operator, using github.com/chzyer/readline for line
// editing/history and github.com/kballard/go-shellquote for tokenizing
// typed commands.
package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	shellwords "github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/astralcai/crossgen/board"
	"github.com/astralcai/crossgen/config"
	"github.com/astralcai/crossgen/gaddag"
	"github.com/astralcai/crossgen/game"
	"github.com/astralcai/crossgen/movegen"
	"github.com/astralcai/crossgen/tilemapping"
	"github.com/astralcai/crossgen/variant"
)

var (
	configPath = flag.String("config", "", "path to a config file (optional)")
	gaddagPath = flag.String("gaddag", "", "path to a prebuilt GADDAG container")
	wordList   = flag.String("wordlist", "", "path to a word list, built fresh if -gaddag is not given")
	tileList   = flag.String("tiles", "", "path to a tile-list (LETTER SCORE) file")
	layoutName = flag.String("layout", "scrabble", "board layout name")
	variantStr = flag.String("variant", "scrabble", "variant name")
)

func main() {
	flag.Parse()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("crossgen: loading config")
	}

	lex, err := loadLexicon(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("crossgen: loading lexicon")
	}
	dist, err := loadDistribution(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("crossgen: loading tile distribution")
	}

	g, err := game.NewNamed(*layoutName, lex, dist, variant.Variant(*variantStr))
	if err != nil {
		log.Fatal().Err(err).Msg("crossgen: starting game")
	}

	runShell(g)
}

func loadLexicon(cfg *config.Config) (*gaddag.Lexicon, error) {
	path := *gaddagPath
	if path != "" {
		return gaddag.LoadFile(path)
	}
	path = *wordList
	if path == "" {
		path = cfg.GetString(config.KeyWordListPath)
	}
	if path == "" {
		return nil, fmt.Errorf("crossgen: one of -gaddag or -wordlist is required")
	}
	return gaddag.BuildFromFile("crossgen", path)
}

func loadDistribution(cfg *config.Config) (*tilemapping.Distribution, error) {
	path := *tileList
	if path == "" {
		path = cfg.GetString(config.KeyTileListPath)
	}
	if path == "" {
		return nil, fmt.Errorf("crossgen: -tiles (or %s) is required", config.KeyTileListPath)
	}
	return tilemapping.LoadDistribution(path)
}

func runShell(g *game.Game) {
	rl, err := readline.New("crossgen> ")
	if err != nil {
		log.Fatal().Err(err).Msg("crossgen: starting shell")
	}
	defer rl.Close()

	fmt.Printf("game %s ready. Commands: play, best, show, save, stats, quit\n", g.ID)
	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return
		}
		if err != nil {
			log.Warn().Err(err).Msg("crossgen: reading input")
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		args, err := shellwords.Split(line)
		if err != nil {
			fmt.Println("error: ", err)
			continue
		}
		if !dispatch(g, args) {
			return
		}
	}
}

// dispatch runs one typed command and reports whether the shell should
// keep reading input (false on "quit").
func dispatch(g *game.Game, args []string) bool {
	switch args[0] {
	case "quit", "exit":
		return false
	case "play":
		cmdPlay(g, args[1:])
	case "best":
		cmdBest(g, args[1:])
	case "show":
		fmt.Print(g.Show())
	case "save":
		cmdSave(g, args[1:])
	case "stats":
		cmdStats(g, args[1:])
	default:
		fmt.Printf("unknown command %q\n", args[0])
	}
	return true
}

func cmdPlay(g *game.Game, args []string) {
	if len(args) != 4 {
		fmt.Println("usage: play <row> <col> <word> <across|down>")
		return
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("error: row must be an integer")
		return
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Println("error: col must be an integer")
		return
	}
	var dir board.Direction
	switch strings.ToLower(args[3]) {
	case "across":
		dir = board.Across
	case "down":
		dir = board.Down
	default:
		fmt.Println("error: direction must be 'across' or 'down'")
		return
	}

	m, err := g.Play(board.Coordinate{Row: row, Col: col}, args[2], dir)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m)
}

func cmdBest(g *game.Game, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: best <rack> [num]")
		return
	}
	num := 5
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil {
			num = n
		}
	}
	moves, err := g.FindBestMoves(args[0], num)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, m := range moves {
		fmt.Println(m)
	}
}

func cmdSave(g *game.Game, args []string) {
	path := g.ID + ".sav"
	if len(args) > 0 {
		path = args[0]
	}
	if err := g.Save(path); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("saved to", path)
}

func cmdStats(g *game.Game, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: stats <rack>")
		return
	}
	moves, err := g.FindBestMoves(args[0], 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	stats := movegen.ComputeScoreStats(moves)
	fmt.Printf("%d moves, mean %.1f, stddev %.1f, top %d\n", stats.Count, stats.Mean, stats.StdDev, stats.TopScore)
}
