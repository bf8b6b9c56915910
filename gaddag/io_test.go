package gaddag

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"github.com/astralcai/crossgen/tilemapping"
)

var testWordList = []string{
	"CAT", "CATS", "DOG", "DOGS", "CARS", "CARE", "CARED", "STARE",
	"RATE", "RATES", "TARE", "TEAR", "TEARS", "AT", "IT", "TO", "OX",
	"OXEN", "BOX", "BOXES", "ZEBRA", "QUIZ",
}

func TestStoreLoadRoundTrip(t *testing.T) {
	lex, err := Build("roundtrip", testWordList)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Store(&buf, lex))

	loaded, err := Load(&buf)
	require.NoError(t, err)

	assert.Equal(t, lex.LexiconName(), loaded.LexiconName())
	assert.Equal(t, lex.NumStates(), loaded.NumStates())
	if diff := cmp.Diff(lex, loaded, cmp.AllowUnexported(Lexicon{})); diff != "" {
		t.Errorf("round-tripped lexicon differs (-original +loaded):\n%s", diff)
	}
}

func TestLoadRejectsCorruptStream(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Store(&buf, mustBuild(t, []string{"CAT"})))
	raw := buf.Bytes()

	// Corrupt the gzip stream entirely so Load fails cleanly rather than
	// panicking.
	bad := append([]byte(nil), raw...)
	bad[0] ^= 0xFF
	_, err := Load(bytes.NewReader(bad))
	assert.Error(t, err)
}

// TestRandomArcQueriesSurviveRoundTrip exercises a large number of random
// (state, letter) queries against both the freshly built and the
// stored-then-loaded lexicon, checking they agree. This is the property
// check spec.md §8 S6 calls for, using frand as the teacher's own tests use
// a fast PRNG for random tile-bag draws.
func TestRandomArcQueriesSurviveRoundTrip(t *testing.T) {
	lex, err := Build("fuzz", testWordList)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Store(&buf, lex))
	loaded, err := Load(&buf)
	require.NoError(t, err)

	for i := 0; i < 10000; i++ {
		stateIdx := uint32(frand.Intn(lex.NumStates()))
		letterVal := tilemapping.MachineLetter(frand.Intn(tilemapping.NumLetters + 1))

		s1 := State{lex: lex, idx: stateIdx}
		s2 := State{lex: loaded, idx: stateIdx}

		a1, ok1 := s1.Arc(letterVal)
		a2, ok2 := s2.Arc(letterVal)
		require.Equal(t, ok1, ok2)
		if ok1 {
			assert.Equal(t, a1.Dest().idx, a2.Dest().idx)
			assert.Equal(t, a1.Dest().LetterSet(), a2.Dest().LetterSet())
		}
	}
}

func mustBuild(t *testing.T, words []string) *Lexicon {
	t.Helper()
	lex, err := Build("t", words)
	require.NoError(t, err)
	return lex
}
