// Command gaddagmaker builds a GADDAG container from a plain-text word
// list and writes it to disk, calling the gaddag package's own builder
// and container writer rather than maintaining a second, parallel
// pointer-graph/bit-packing implementation.
package main

import (
	"flag"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/astralcai/crossgen/gaddag"
)

var (
	wordListPath = flag.String("wordlist", "", "path to a newline-delimited word list")
	outPath      = flag.String("out", "", "path to write the GADDAG container to")
	lexName      = flag.String("name", "", "lexicon name stored in the container")
)

func main() {
	flag.Parse()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if *wordListPath == "" || *outPath == "" || *lexName == "" {
		log.Fatal().Msg("gaddagmaker: -wordlist, -out, and -name are all required")
	}

	log.Info().Str("wordlist", *wordListPath).Str("name", *lexName).Msg("building gaddag")
	lex, err := gaddag.BuildFromFile(*lexName, *wordListPath)
	if err != nil {
		log.Fatal().Err(err).Msg("gaddagmaker: build failed")
	}

	if err := gaddag.StoreFile(*outPath, lex); err != nil {
		log.Fatal().Err(err).Msg("gaddagmaker: writing container failed")
	}
	log.Info().Str("out", *outPath).Msg("gaddag written")
}
