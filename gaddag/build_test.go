package gaddag

import (
	"testing"

	"github.com/matryer/is"

	"github.com/astralcai/crossgen/tilemapping"
)

func mustLetter(t *testing.T, b byte) tilemapping.MachineLetter {
	t.Helper()
	ml, err := tilemapping.FromByte(b)
	if err != nil {
		t.Fatalf("FromByte(%q): %v", b, err)
	}
	return ml
}

// walk follows a sequence of machine letters from the root, returning the
// final state and whether every arc existed.
func walk(t *testing.T, lex *Lexicon, letters ...tilemapping.MachineLetter) (State, bool) {
	t.Helper()
	s := lex.Root()
	for _, ml := range letters {
		a, ok := s.Arc(ml)
		if !ok {
			return State{}, false
		}
		s = a.Dest()
	}
	return s, true
}

func TestBuildRejectsShortWords(t *testing.T) {
	is := is.New(t)
	_, err := Build("test", []string{"A"})
	is.True(err != nil)
}

func TestBuildTwoLetterWord(t *testing.T) {
	is := is.New(t)
	lex, err := Build("test", []string{"AT"})
	is.NoErr(err)

	a, t1 := mustLetter(t, 'A'), mustLetter(t, 'T')

	// Reading "AT" forward from the right: root -T-> s1, s1's letterset has A.
	s1, ok := walk(t, lex, t1)
	is.True(ok)
	is.True(s1.LetterSet().Has(a))

	// The delimiter path: root -A-> s2 -SEP-> s3, s3's letterset has T.
	s2, ok := walk(t, lex, a)
	is.True(ok)
	s3, ok := walk(t, lex, a, tilemapping.SeparatorLetter)
	is.True(ok)
	is.True(s3.LetterSet().Has(t1))
	_ = s2
}

func TestBuildFourLetterWordSharedTail(t *testing.T) {
	is := is.New(t)
	lex, err := Build("test", []string{"CARS"})
	is.NoErr(err)

	c, a, r, s := mustLetter(t, 'C'), mustLetter(t, 'A'), mustLetter(t, 'R'), mustLetter(t, 'S')

	// Pass 1: root -S-> -R-> then final arc A -> {C}.
	st, ok := walk(t, lex, s, r)
	is.True(ok)
	arcA, ok := st.Arc(a)
	is.True(ok)
	is.True(arcA.Dest().LetterSet().Has(c))

	// Pass 2: root -R-> -A-> -C-> then final delimiter arc -> {S}.
	st2, ok := walk(t, lex, r, a, c)
	is.True(ok)
	arcSep, ok := st2.Arc(tilemapping.SeparatorLetter)
	is.True(ok)
	is.True(arcSep.Dest().LetterSet().Has(s))
	tailFull := arcSep.Dest()

	// Pass 3, m=1: root -A-> -C-> -SEP-> forced arc R -> same tail as above.
	st3, ok := walk(t, lex, a, c, tilemapping.SeparatorLetter)
	is.True(ok)
	arcR, ok := st3.Arc(r)
	is.True(ok)
	is.Equal(arcR.Dest().idx, tailFull.idx)

	// Pass 3, m=0: root -C-> -SEP-> forced arc A -> tail of m=1's node.
	tailM1 := st3
	st4, ok := walk(t, lex, c, tilemapping.SeparatorLetter)
	is.True(ok)
	arcA2, ok := st4.Arc(a)
	is.True(ok)
	is.Equal(arcA2.Dest().idx, tailM1.idx)
}

func TestBuildDuplicateWordsIdempotent(t *testing.T) {
	is := is.New(t)
	lex1, err := Build("test", []string{"WORD", "WORD"})
	is.NoErr(err)
	lex2, err := Build("test", []string{"WORD"})
	is.NoErr(err)
	is.Equal(lex1.NumStates(), lex2.NumStates())
}

func TestBuildRejectsNonAlphabetic(t *testing.T) {
	is := is.New(t)
	_, err := Build("test", []string{"CA3"})
	is.True(err != nil)
}

func TestWordsFromTextSkipsBlankAndCommentLines(t *testing.T) {
	is := is.New(t)
	words := wordsFromText("cat\n\n# comment\ndog\n  owl  \n")
	is.Equal(words, []string{"CAT", "DOG", "OWL"})
}
