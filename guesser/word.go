package guesser

import (
	"fmt"
)

// WordLen is the fixed word length, every dictionary word and guess is 5 letters.
const WordLen = 5

// Word is a fixed length lowercase word.
type Word [WordLen]rune

func (w Word) String() string {
	return string(w[:])
}

func (w Word) Contains(letter rune) bool {
	for _, l := range w {
		if l == letter {
			return true
		}
	}
	return false
}

// ToWord converts a string to a Word, the string must be exactly 5 lowercase
// ascii letters.
func ToWord(s string) (Word, error) {
	runes := []rune(s)
	if len(runes) != WordLen {
		return Word{}, fmt.Errorf("not a %d letter word: %q", WordLen, s)
	}
	var w Word
	for i, r := range runes {
		if r < 'a' || r > 'z' {
			return Word{}, fmt.Errorf("word must be lowercase a-z: %q", s)
		}
		w[i] = r
	}
	return w, nil
}

// MustWord is ToWord for words known to be well formed.
func MustWord(s string) Word {
	w, err := ToWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// Feedback symbols. An exact match is reported as the letter itself,
// SymbolPresent marks a letter in the word but at another position,
// SymbolAbsent marks a letter that did not score.
const (
	SymbolPresent = '-'
	SymbolAbsent  = '+'
)

// Feedback is a per position comparison of a guess against the hidden word,
// aligned with the guess it scores.
type Feedback [WordLen]rune

func (f Feedback) String() string {
	return string(f[:])
}

// AllExact reports whether every position scored an exact match.
func (f Feedback) AllExact() bool {
	for _, sym := range f {
		if sym < 'a' || sym > 'z' {
			return false
		}
	}
	return true
}

// ParseFeedback validates a feedback string. Each symbol is either a
// lowercase letter (exact match), '-' (present elsewhere) or '+' (absent).
func ParseFeedback(s string) (Feedback, error) {
	runes := []rune(s)
	if len(runes) != WordLen {
		return Feedback{}, fmt.Errorf("%w: length %d, want %d", ErrMalformedFeedback, len(runes), WordLen)
	}
	var f Feedback
	for i, r := range runes {
		if (r < 'a' || r > 'z') && r != SymbolPresent && r != SymbolAbsent {
			return Feedback{}, fmt.Errorf("%w: symbol %q at position %d", ErrMalformedFeedback, r, i)
		}
		f[i] = r
	}
	return f, nil
}

// Score returns the feedback a game would emit for guess against solution.
// Repeated letters follow the usual two pass rule: exact matches claim their
// letter first, remaining occurrences are marked present at most as many
// times as the solution still has them.
func Score(solution, guess Word) Feedback {
	var f Feedback
	var remaining [26]int
	for i, letter := range solution {
		if guess[i] == letter {
			f[i] = letter
		} else {
			remaining[letter-'a']++
		}
	}
	for i, letter := range guess {
		if f[i] != 0 {
			continue
		}
		if remaining[letter-'a'] > 0 {
			f[i] = SymbolPresent
			remaining[letter-'a']--
		} else {
			f[i] = SymbolAbsent
		}
	}
	return f
}
