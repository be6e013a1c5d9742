package guesser

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

/*
letters[0]['a'] is the set of words whose first letter is an 'a',
contains['a'] is the set of words with at least one 'a'.

a word is represented by its index into words, so set algebra over the
indexes keeps the dictionary order for free
*/
type Dictionary struct {
	words    []Word
	letters  [WordLen]map[rune]*bitset.BitSet
	contains map[rune]*bitset.BitSet
}

// NewDictionary builds the immutable dictionary and its letter indexes.
// Words must be exactly 5 lowercase letters.
func NewDictionary(words []string) (*Dictionary, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("empty dictionary")
	}
	d := &Dictionary{
		words:    make([]Word, 0, len(words)),
		contains: make(map[rune]*bitset.BitSet, 26),
	}
	for i := range d.letters {
		d.letters[i] = make(map[rune]*bitset.BitSet)
	}
	n := uint(len(words))
	for w, s := range words {
		word, err := ToWord(s)
		if err != nil {
			return nil, err
		}
		d.words = append(d.words, word)
		for i, letter := range word {
			if _, ok := d.letters[i][letter]; !ok {
				d.letters[i][letter] = bitset.New(n)
			}
			d.letters[i][letter].Set(uint(w))
			if _, ok := d.contains[letter]; !ok {
				d.contains[letter] = bitset.New(n)
			}
			d.contains[letter].Set(uint(w))
		}
	}
	return d, nil
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns the dictionary words in order. The slice is shared, callers
// must not modify it.
func (d *Dictionary) Words() []Word {
	return d.words
}

func (d *Dictionary) Strings() []string {
	ret := make([]string, len(d.words))
	for i, w := range d.words {
		ret[i] = w.String()
	}
	return ret
}

// Filter returns the words still consistent with the accumulated constraint
// state, in dictionary order. A word qualifies iff it has no invalid letter,
// matches every confirmed position, avoids every excluded position of a
// misplaced letter and contains every misplaced letter somewhere.
func (d *Dictionary) Filter(st State) []Word {
	n := uint(len(d.words))
	ret := bitset.New(n).Complement()

	for _, letter := range st.invalidLetters() {
		if set, ok := d.contains[letter]; ok {
			ret.InPlaceDifference(set)
		}
	}
	for i, letter := range st.correct {
		if letter == 0 {
			continue
		}
		set, ok := d.letters[i][letter]
		if !ok {
			return nil
		}
		ret.InPlaceIntersection(set)
	}
	for letter, positions := range st.misplaced {
		set, ok := d.contains[letter]
		if !ok {
			return nil
		}
		ret.InPlaceIntersection(set)
		for _, p := range positions.ToSlice() {
			if set, ok := d.letters[p.(int)][letter]; ok {
				ret.InPlaceDifference(set)
			}
		}
	}

	indices := make([]uint, ret.Count())
	ret.NextSetMany(0, indices)
	retSlice := make([]Word, len(indices))
	for i, index := range indices {
		retSlice[i] = d.words[index]
	}
	return retSlice
}
