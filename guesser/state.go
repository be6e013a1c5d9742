package guesser

import (
	"fmt"

	mapset "github.com/deckarep/golang-set"
)

// State is the knowledge accumulated from feedback so far. It is a value:
// Apply returns a new State and never mutates the receiver, so every turn of
// a game can be replayed or inspected in isolation.
type State struct {
	// invalid holds letters confirmed absent from the target everywhere.
	invalid mapset.Set
	// correct[i] is the confirmed letter for position i, 0 when unknown.
	correct [WordLen]rune
	// misplaced maps a letter known to be in the target to the set of
	// positions (int) it is known not to occupy.
	misplaced map[rune]mapset.Set
}

// NewState returns the empty constraint state.
func NewState() State {
	return State{
		invalid:   mapset.NewSet(),
		misplaced: make(map[rune]mapset.Set),
	}
}

func (st State) clone() State {
	next := State{
		invalid:   st.invalid.Clone(),
		correct:   st.correct,
		misplaced: make(map[rune]mapset.Set, len(st.misplaced)),
	}
	for letter, positions := range st.misplaced {
		next.misplaced[letter] = positions.Clone()
	}
	return next
}

// knownPresent reports whether the letter is confirmed somewhere in the
// target, either at an exact position or as a misplaced letter.
func (st State) knownPresent(letter rune) bool {
	for _, c := range st.correct {
		if c == letter {
			return true
		}
	}
	_, ok := st.misplaced[letter]
	return ok
}

// Apply folds the feedback for guess into the state and returns the result.
// An exact or present symbol always overrides an absent marking for the same
// letter, in this or any earlier turn. Without that rule a word with a
// repeated letter, one copy exact and one copy absent, would blacklist the
// letter and filter out the target itself.
func (st State) Apply(guess Word, fb Feedback) (State, error) {
	next := st.clone()
	for i, sym := range fb {
		switch {
		case sym >= 'a' && sym <= 'z':
			if sym != guess[i] {
				return State{}, fmt.Errorf("%w: exact symbol %q at position %d does not match guess %q",
					ErrMalformedFeedback, sym, i, guess)
			}
			next.correct[i] = guess[i]
			next.invalid.Remove(guess[i])
		case sym == SymbolPresent:
			set, ok := next.misplaced[guess[i]]
			if !ok {
				set = mapset.NewSet()
				next.misplaced[guess[i]] = set
			}
			set.Add(i)
			next.invalid.Remove(guess[i])
		case sym == SymbolAbsent:
			if !next.knownPresent(guess[i]) {
				next.invalid.Add(guess[i])
			}
		default:
			return State{}, fmt.Errorf("%w: symbol %q at position %d", ErrMalformedFeedback, sym, i)
		}
	}
	return next, nil
}

// CorrectCount returns the number of confirmed positions.
func (st State) CorrectCount() int {
	n := 0
	for _, c := range st.correct {
		if c != 0 {
			n++
		}
	}
	return n
}

// unresolved returns the positions without a confirmed letter.
func (st State) unresolved() []int {
	ret := []int{}
	for i, c := range st.correct {
		if c == 0 {
			ret = append(ret, i)
		}
	}
	return ret
}

// misplacedLetterSet returns the distinct misplaced letters as a set.
func (st State) misplacedLetterSet() mapset.Set {
	ret := mapset.NewSet()
	for letter := range st.misplaced {
		ret.Add(letter)
	}
	return ret
}

func (st State) invalidLetters() []rune {
	ret := make([]rune, 0, st.invalid.Cardinality())
	for letter := range st.invalid.Iter() {
		ret = append(ret, letter.(rune))
	}
	return ret
}
