package guesser

import (
	"fmt"
	"math/rand"
	"time"

	mapset "github.com/deckarep/golang-set"
)

// Mode selects who supplies the guesses.
type Mode int

const (
	// ModeAuto lets the engine choose every guess.
	ModeAuto Mode = iota
	// ModeManual is a pass-through: NextGuess returns ErrManualMode and the
	// caller prompts a human instead.
	ModeManual
)

// Solver plays one game at a time against externally supplied feedback. The
// dictionary is shared and read-only, everything else is private to the
// instance. Not safe for concurrent use, each call runs to completion before
// the next.
type Solver struct {
	dict         *Dictionary
	mode         Mode
	first        Word
	firstLetters mapset.Set
	rng          *rand.Rand

	state      State
	candidates []Word
	tried      []Word
	triedSet   mapset.Set
	guessCount int
}

// Option configures a Solver.
type Option func(*Solver)

// WithRand injects the random source used by the fallback pick policy,
// seeded sources make games reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(s *Solver) {
		s.rng = rng
	}
}

// New builds a solver for the dictionary and precomputes the opening guess.
func New(mode Mode, dict *Dictionary, opts ...Option) *Solver {
	s := &Solver{
		dict:         dict,
		mode:         mode,
		first:        Analyze(dict),
		firstLetters: mapset.NewSet(),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, letter := range s.first {
		s.firstLetters.Add(letter)
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Restart()
	return s
}

// Restart resets all per-game state. The dictionary and the precomputed
// first guess are kept.
func (s *Solver) Restart() {
	s.state = NewState()
	s.candidates = s.dict.Words()
	s.tried = nil
	s.triedSet = mapset.NewSet()
	s.guessCount = 0
}

// FirstGuess returns the precomputed opening guess.
func (s *Solver) FirstGuess() string {
	return s.first.String()
}

// GuessCount returns the number of guesses emitted so far.
func (s *Solver) GuessCount() int {
	return s.guessCount
}

// Tried returns the guesses emitted so far, in order.
func (s *Solver) Tried() []string {
	ret := make([]string, len(s.tried))
	for i, w := range s.tried {
		ret[i] = w.String()
	}
	return ret
}

// Candidates returns the words still consistent with all feedback, in
// dictionary order.
func (s *Solver) Candidates() []string {
	ret := make([]string, len(s.candidates))
	for i, w := range s.candidates {
		ret[i] = w.String()
	}
	return ret
}

// NextGuess returns the next guess. The first call ignores feedback and
// returns the precomputed opening word; every later call expects the 5
// symbol feedback for the guess returned by the previous call.
func (s *Solver) NextGuess(feedback string) (string, error) {
	if s.mode == ModeManual {
		return "", ErrManualMode
	}
	if s.guessCount == 0 {
		s.record(s.first)
		return s.first.String(), nil
	}

	fb, err := ParseFeedback(feedback)
	if err != nil {
		return "", err
	}
	state, err := s.state.Apply(s.tried[len(s.tried)-1], fb)
	if err != nil {
		return "", err
	}
	s.state = state
	s.candidates = s.dict.Filter(state)

	guess, err := s.selectGuess(s.candidates)
	if err != nil {
		return "", err
	}
	guess, err = s.ensureUntried(guess, s.candidates)
	if err != nil {
		return "", err
	}
	s.record(guess)
	return guess.String(), nil
}

func (s *Solver) record(guess Word) {
	s.tried = append(s.tried, guess)
	s.triedSet.Add(guess)
	s.guessCount++
}

// pick is the one randomized fallback: a uniform choice among candidates.
func (s *Solver) pick(candidates []Word) Word {
	return candidates[s.rng.Intn(len(candidates))]
}

// ensureUntried enforces the no-repeat rule. Random resampling is bounded by
// the candidate count, after that the lexicographically smallest untried
// candidate wins so the loop always terminates.
func (s *Solver) ensureUntried(guess Word, candidates []Word) (Word, error) {
	if !s.triedSet.Contains(guess) {
		return guess, nil
	}
	for range candidates {
		w := s.pick(candidates)
		if !s.triedSet.Contains(w) {
			return w, nil
		}
	}
	var smallest Word
	found := false
	for _, w := range candidates {
		if s.triedSet.Contains(w) {
			continue
		}
		if !found || w.String() < smallest.String() {
			smallest = w
			found = true
		}
	}
	if !found {
		return Word{}, ErrExhausted
	}
	return smallest, nil
}

// Simulate plays a full game against a known solution and returns the guess
// sequence. It fails if the solver does not converge within maxTurns.
func Simulate(dict *Dictionary, solution Word, maxTurns int, opts ...Option) ([]string, error) {
	s := New(ModeAuto, dict, opts...)
	feedback := ""
	guesses := []string{}
	for turn := 0; turn < maxTurns; turn++ {
		guess, err := s.NextGuess(feedback)
		if err != nil {
			return guesses, err
		}
		guesses = append(guesses, guess)
		fb := Score(solution, MustWord(guess))
		if fb.AllExact() {
			return guesses, nil
		}
		feedback = fb.String()
	}
	return guesses, fmt.Errorf("no solution for %q within %d guesses", solution, maxTurns)
}
