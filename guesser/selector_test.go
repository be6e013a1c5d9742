package guesser

import (
	"math/rand"
	"testing"

	mapset "github.com/deckarep/golang-set"
	"github.com/stretchr/testify/assert"
)

func wordSlice(list ...string) []Word {
	ret := make([]Word, len(list))
	for i, s := range list {
		ret[i] = MustWord(s)
	}
	return ret
}

func testSolver(t *testing.T, list []string) *Solver {
	d, err := NewDictionary(list)
	assert.NoError(t, err)
	return New(ModeAuto, d, WithRand(rand.New(rand.NewSource(1))))
}

func TestOneAway(t *testing.T) {
	assert := assert.New(t)
	assert.True(oneAway(MustWord("crane"), MustWord("crate")))
	assert.False(oneAway(MustWord("crane"), MustWord("crane")))
	assert.False(oneAway(MustWord("crane"), MustWord("brave")))
}

func TestBestSplitter(t *testing.T) {
	// crane and crate are 1-distance neighbors of each other, brave is not a
	// neighbor of anything; the first of the tied pair wins
	got := bestSplitter(wordSlice("crane", "crate", "brave"))
	assert.Equal(t, "crane", got.String())
}

func TestLetterRanking(t *testing.T) {
	ranking := letterRanking(wordSlice("crane", "crate", "slate"))
	// a and e occur in all three candidates, a was seen first
	assert.Equal(t, "ae", string(ranking[:2]))
	// c, r, t occur in two candidates each, in first-seen order
	assert.Equal(t, "crt", string(ranking[2:5]))
}

func TestBuildProbe(t *testing.T) {
	assert := assert.New(t)
	ranking := []rune{'a', 'e', 'c', 'r', 't', 'n'}

	probe, ok := buildProbe(ranking, mapset.NewSet('a'))
	assert.True(ok)
	assert.Equal("ecrtn", probe.String())

	// excluding two letters leaves only four qualifying letters
	_, ok = buildProbe(ranking, mapset.NewSet('a', 'e'))
	assert.False(ok)
}

func TestSecondGuessPrefersUnseenLetters(t *testing.T) {
	s := testSolver(t, []string{"crane", "crony", "moist"})
	s.first = MustWord("crane")
	s.firstLetters = mapset.NewSet('c', 'r', 'a', 'n', 'e')
	s.guessCount = 1

	// moist shares no letter with the first guess, crony does
	got := s.secondGuess(wordSlice("crony", "moist"))
	assert.Equal(t, "moist", got.String())
}

func TestSecondGuessKeepsMisplacedLetters(t *testing.T) {
	s := testSolver(t, []string{"cabin", "badge", "crane"})
	s.guessCount = 1
	st := NewState()
	st.misplaced['a'] = mapset.NewSet(0)
	st.misplaced['b'] = mapset.NewSet(1)
	st.misplaced['c'] = mapset.NewSet(2)
	s.state = st

	// more than two misplaced letters: first candidate containing all of
	// them wins, badge has no c
	got := s.secondGuess(wordSlice("badge", "cabin"))
	assert.Equal(t, "cabin", got.String())
}

func TestSecondGuessProbeFallback(t *testing.T) {
	s := testSolver(t, []string{"slate", "crane", "bound", "might"})
	s.first = MustWord("slate")
	s.firstLetters = mapset.NewSet('s', 'l', 'a', 't', 'e')
	s.guessCount = 1

	// both candidates share a t with slate, so no candidate qualifies, but
	// the candidate letters offer enough new ones for a synthetic probe:
	// t ranks first (2 occurrences) and is excluded, then d, o, u, b, m
	got := s.secondGuess(wordSlice("doubt", "might"))
	assert.Equal(t, "doubm", got.String())
	for _, letter := range got {
		assert.False(t, s.firstLetters.Contains(letter))
	}
}

func TestSecondGuessRandomFallback(t *testing.T) {
	s := testSolver(t, []string{"cocoa", "cacao", "crane"})
	s.first = MustWord("crane")
	s.firstLetters = mapset.NewSet('c', 'r', 'a', 'n', 'e')
	s.guessCount = 1

	// candidates only add the letter o: no letter-free candidate and no
	// 5 letter probe, so the pick policy chooses a candidate
	candidates := wordSlice("cocoa", "cacao")
	got := s.secondGuess(candidates)
	assert.Contains(t, []string{"cocoa", "cacao"}, got.String())
}

func TestSingleMissingShortcut(t *testing.T) {
	assert := assert.New(t)
	s := testSolver(t, []string{"stone", "stole", "store", "stoke", "stove"})
	st := NewState()
	st.correct = [WordLen]rune{'s', 't', 'o', 0, 'e'}
	s.state = st
	candidates := wordSlice("stone", "stole", "store", "stoke", "stove")

	s.guessCount = 2
	assert.True(s.singleMissingShortcut(candidates))
	s.guessCount = 6
	assert.False(s.singleMissingShortcut(candidates))
	s.guessCount = 1
	assert.False(s.singleMissingShortcut(candidates))
	s.guessCount = 2
	assert.False(s.singleMissingShortcut(candidates[:3]))
}

func TestMissingPositionProbe(t *testing.T) {
	s := testSolver(t, []string{"stone", "stole", "store", "stoke", "stove"})
	st := NewState()
	st.correct = [WordLen]rune{'s', 't', 'o', 0, 'e'}
	s.state = st

	// the probe packs the contenders for position 3
	got := s.missingPositionProbe(wordSlice("stone", "stole", "store", "stoke", "stove"))
	assert.Equal(t, "nlrkv", got.String())
}

func TestMissingPositionProbePadding(t *testing.T) {
	s := testSolver(t, []string{"stone", "stole", "store", "stoke", "stove"})
	st := NewState()
	st.correct = [WordLen]rune{'s', 't', 'o', 0, 'e'}
	s.state = st

	// two contenders only, padding is the alphabet scan skipping used letters
	got := s.missingPositionProbe(wordSlice("stone", "stole"))
	assert.Equal(t, "nlabc", got.String())
}
