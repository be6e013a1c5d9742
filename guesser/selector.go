package guesser

import (
	"sort"

	mapset "github.com/deckarep/golang-set"
)

// The guess selector is a per-turn strategy dispatcher. Turn 0 plays the
// precomputed frequency word, turn 1 adapts to the first feedback, turns
// after that either probe a single unresolved position or pick the candidate
// that splits the remaining space best. All randomized fallbacks go through
// the solver's pick policy so games replay under a seeded source.

// selectGuess picks the next guess from the filtered candidates.
func (s *Solver) selectGuess(candidates []Word) (Word, error) {
	if len(candidates) == 0 {
		return Word{}, ErrNoCandidates
	}
	switch {
	case s.guessCount == 1:
		return s.secondGuess(candidates), nil
	case s.singleMissingShortcut(candidates):
		return s.missingPositionProbe(candidates), nil
	default:
		return bestSplitter(candidates), nil
	}
}

// secondGuess adapts to the first feedback. With more than two misplaced
// letters the first candidate carrying all of them keeps the confirmed
// presence information. Otherwise the preference is a candidate sharing no
// letter with the first guess, then a synthetic probe built from the letters
// most common across candidates, then a random candidate.
func (s *Solver) secondGuess(candidates []Word) Word {
	// the ranking feeds the probe fallback, compute it before branching
	ranking := letterRanking(candidates)

	if len(s.state.misplaced) > 2 {
		misplaced := s.state.misplacedLetterSet()
		for _, w := range candidates {
			if containsAll(w, misplaced) {
				return w
			}
		}
	} else {
		for _, w := range candidates {
			if !sharesLetter(w, s.firstLetters) {
				return w
			}
		}
	}

	if probe, ok := buildProbe(ranking, s.firstLetters); ok {
		return probe
	}
	return s.pick(candidates)
}

// singleMissingShortcut reports whether the one-unresolved-position probe
// applies: exactly one open position, more than 3 candidates and a turn left
// to spend on pure information gathering.
func (s *Solver) singleMissingShortcut(candidates []Word) bool {
	return s.guessCount >= 2 && s.guessCount < 6 &&
		s.state.CorrectCount() == WordLen-1 && len(candidates) > 3
}

// missingPositionProbe packs the distinct letters seen at the unresolved
// position into one probe word. The probe need not be a dictionary word, one
// round of feedback on it rules most of the contenders in or out.
func (s *Solver) missingPositionProbe(candidates []Word) Word {
	pos := s.state.unresolved()[0]
	letters := make([]rune, 0, WordLen)
	seen := make(map[rune]bool, 26)
	for _, w := range candidates {
		if !seen[w[pos]] {
			seen[w[pos]] = true
			letters = append(letters, w[pos])
			if len(letters) == WordLen {
				break
			}
		}
	}
	// deterministic padding when the contenders supply fewer than 5 letters
	for filler := 'a'; filler <= 'z' && len(letters) < WordLen; filler++ {
		if !seen[filler] {
			seen[filler] = true
			letters = append(letters, filler)
		}
	}
	var probe Word
	copy(probe[:], letters)
	return probe
}

// bestSplitter scores every candidate by how many other candidates differ
// from it in exactly one position and keeps the first maximum. A word with
// many 1-distance neighbors tends to split the remaining space well once its
// letters are confirmed or rejected.
func bestSplitter(candidates []Word) Word {
	best := candidates[0]
	bestScore := -1
	for _, w := range candidates {
		score := 0
		for _, other := range candidates {
			if oneAway(w, other) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = w
		}
	}
	return best
}

// letterRanking returns the letters occurring in candidates ordered by the
// number of candidate words containing them, most common first, ties by
// first-seen order. This is a presence-count proxy, not Shannon entropy.
func letterRanking(candidates []Word) []rune {
	counts := make(map[rune]int, 26)
	order := []rune{}
	for _, w := range candidates {
		seen := make(map[rune]bool, WordLen)
		for _, letter := range w {
			if seen[letter] {
				continue
			}
			seen[letter] = true
			if counts[letter] == 0 {
				order = append(order, letter)
			}
			counts[letter]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order
}

// buildProbe assembles a 5 letter probe from the ranking, skipping excluded
// letters. ok is false when fewer than 5 letters qualify.
func buildProbe(ranking []rune, exclude mapset.Set) (Word, bool) {
	var probe Word
	n := 0
	for _, letter := range ranking {
		if exclude.Contains(letter) {
			continue
		}
		probe[n] = letter
		n++
		if n == WordLen {
			return probe, true
		}
	}
	return Word{}, false
}

func containsAll(w Word, letters mapset.Set) bool {
	all := true
	letters.Each(func(letter interface{}) bool {
		if !w.Contains(letter.(rune)) {
			all = false
			return true // stop iterating
		}
		return false
	})
	return all
}

func sharesLetter(w Word, letters mapset.Set) bool {
	for _, letter := range w {
		if letters.Contains(letter) {
			return true
		}
	}
	return false
}

func oneAway(a, b Word) bool {
	diff := 0
	for i := range a {
		if a[i] != b[i] {
			diff++
			if diff > 1 {
				return false
			}
		}
	}
	return diff == 1
}
