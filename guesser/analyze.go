package guesser

import (
	"sort"
)

// Analyze computes a strong opening guess from letter statistics over the
// dictionary. The five globally most frequent distinct letters are placed, in
// descending frequency order, at their most frequent still-free position;
// leftover top letters fill the remaining positions left to right. The result
// is deterministic for a given dictionary: frequency ties keep first-seen
// order (position order within a word, dictionary order across words) and a
// dictionary with fewer than five distinct letters repeats its most frequent
// letter in the positions that could not be filled.
func Analyze(d *Dictionary) Word {
	var positional [WordLen]map[rune]int
	for i := range positional {
		positional[i] = make(map[rune]int, 26)
	}
	overall := make(map[rune]int, 26)
	order := []rune{} // first-seen order, the tie break
	for _, word := range d.Words() {
		for i, letter := range word {
			positional[i][letter]++
			if overall[letter] == 0 {
				order = append(order, letter)
			}
			overall[letter]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return overall[order[i]] > overall[order[j]]
	})
	top := order
	if len(top) > WordLen {
		top = top[:WordLen]
	}

	var chosen Word
	used := make(map[rune]bool, WordLen)
	for _, letter := range top {
		best := -1
		bestFreq := 0
		for pos := 0; pos < WordLen; pos++ {
			if chosen[pos] != 0 {
				continue
			}
			if freq := positional[pos][letter]; freq > bestFreq {
				best = pos
				bestFreq = freq
			}
		}
		if best >= 0 {
			chosen[best] = letter
			used[letter] = true
		}
	}

	// leftover top letters take the remaining positions in order
	for i := range chosen {
		if chosen[i] != 0 {
			continue
		}
		for _, letter := range top {
			if !used[letter] {
				chosen[i] = letter
				used[letter] = true
				break
			}
		}
	}
	// fewer than five distinct letters in the whole dictionary
	for i := range chosen {
		if chosen[i] == 0 {
			chosen[i] = order[0]
		}
	}
	return chosen
}
