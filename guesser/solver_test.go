package guesser

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

var simDict = []string{
	"crane", "moist", "bluff", "gravy", "spend", "whirl", "toady", "pique",
}

func TestFirstGuessPrecomputed(t *testing.T) {
	assert := assert.New(t)
	s := testSolver(t, simDict)

	guess, err := s.NextGuess("")
	assert.NoError(err)
	assert.Equal(s.FirstGuess(), guess)
	assert.Equal(1, s.GuessCount())
	assert.Equal([]string{guess}, s.Tried())
}

func TestRestart(t *testing.T) {
	assert := assert.New(t)
	s := testSolver(t, simDict)
	firstBefore := s.FirstGuess()

	guess, err := s.NextGuess("")
	assert.NoError(err)
	_, err = s.NextGuess(Score(MustWord("moist"), MustWord(guess)).String())
	assert.NoError(err)
	assert.Equal(2, s.GuessCount())

	s.Restart()
	assert.Equal(0, s.GuessCount())
	assert.Empty(s.Tried())
	assert.Len(s.Candidates(), len(simDict))

	// the precomputed first guess survives any number of restarts
	for i := 0; i < 3; i++ {
		s.Restart()
		assert.Equal(firstBefore, s.FirstGuess())
	}
}

func TestManualMode(t *testing.T) {
	d, err := NewDictionary(simDict)
	assert.NoError(t, err)
	s := New(ModeManual, d)
	_, err = s.NextGuess("")
	assert.ErrorIs(t, err, ErrManualMode)
}

func TestMalformedFeedback(t *testing.T) {
	assert := assert.New(t)
	s := testSolver(t, simDict)
	_, err := s.NextGuess("")
	assert.NoError(err)

	_, err = s.NextGuess("++")
	assert.ErrorIs(err, ErrMalformedFeedback)
	_, err = s.NextGuess("++?++")
	assert.ErrorIs(err, ErrMalformedFeedback)
}

func TestNoCandidates(t *testing.T) {
	assert := assert.New(t)
	s := testSolver(t, []string{"apple", "angle"})
	_, err := s.NextGuess("")
	assert.NoError(err)

	// every letter of the first guess absent is inconsistent with both words
	_, err = s.NextGuess("+++++")
	assert.ErrorIs(err, ErrNoCandidates)
}

func TestCandidatesMonotonic(t *testing.T) {
	assert := assert.New(t)
	s := testSolver(t, simDict)
	solution := MustWord("whirl")

	guess, err := s.NextGuess("")
	assert.NoError(err)
	prev := s.Candidates()
	for turn := 0; turn < 10; turn++ {
		fb := Score(solution, MustWord(guess))
		if fb.AllExact() {
			return
		}
		guess, err = s.NextGuess(fb.String())
		assert.NoError(err)

		current := s.Candidates()
		assert.LessOrEqual(len(current), len(prev))
		assert.Subset(prev, current)
		prev = current
	}
	t.Fatal("did not converge on " + solution.String())
}

func TestTriedNeverRepeats(t *testing.T) {
	assert := assert.New(t)
	for _, solution := range simDict {
		s := testSolver(t, simDict)
		feedback := ""
		for turn := 0; turn < 15; turn++ {
			guess, err := s.NextGuess(feedback)
			assert.NoError(err)
			fb := Score(MustWord(solution), MustWord(guess))
			if fb.AllExact() {
				break
			}
			feedback = fb.String()
		}
		seen := map[string]bool{}
		for _, guess := range s.Tried() {
			assert.False(seen[guess], "repeated guess %q for solution %q", guess, solution)
			seen[guess] = true
		}
	}
}

func TestSimulateSolvesEveryWord(t *testing.T) {
	assert := assert.New(t)
	d, err := NewDictionary(simDict)
	assert.NoError(err)
	for i, solution := range simDict {
		guesses, err := Simulate(d, MustWord(solution), 15,
			WithRand(rand.New(rand.NewSource(int64(i)))))
		assert.NoError(err)
		assert.NotEmpty(guesses)
		assert.Equal(solution, guesses[len(guesses)-1])
	}
}

func TestEnsureUntried(t *testing.T) {
	assert := assert.New(t)
	s := testSolver(t, []string{"aback", "blast", "crumb"})
	candidates := wordSlice("aback", "blast", "crumb")
	s.record(MustWord("aback"))
	s.record(MustWord("blast"))

	// whatever the random picks do, the only untried candidate wins
	got, err := s.ensureUntried(MustWord("aback"), candidates)
	assert.NoError(err)
	assert.Equal("crumb", got.String())

	s.record(MustWord("crumb"))
	_, err = s.ensureUntried(MustWord("aback"), candidates)
	assert.ErrorIs(err, ErrExhausted)
}

func TestEnsureUntriedPassThrough(t *testing.T) {
	s := testSolver(t, simDict)
	got, err := s.ensureUntried(MustWord("pique"), wordSlice("pique", "crane"))
	assert.NoError(t, err)
	assert.Equal(t, "pique", got.String())
}
