package guesser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	assert := assert.New(t)
	st, err := NewState().Apply(MustWord("apple"), mustFeedback("a++-+"))
	assert.NoError(err)

	assert.Equal('a', st.correct[0])
	assert.Equal(1, st.CorrectCount())
	assert.True(st.invalid.Contains('p'))
	assert.True(st.invalid.Contains('e'))
	assert.False(st.invalid.Contains('l'))
	positions, ok := st.misplaced['l']
	assert.True(ok)
	assert.True(positions.Contains(3))
}

func TestApplyIsPure(t *testing.T) {
	assert := assert.New(t)
	st := NewState()
	next, err := st.Apply(MustWord("apple"), mustFeedback("a++-+"))
	assert.NoError(err)
	assert.NotEqual(st.correct, next.correct)

	// the receiver is untouched
	assert.Equal(0, st.invalid.Cardinality())
	assert.Empty(st.misplaced)
	assert.Equal(0, st.CorrectCount())
}

func TestApplyRepeatedLetterAbsentAfterExact(t *testing.T) {
	assert := assert.New(t)
	// pulpy: the first p scores absent, the second p is exact. The letter
	// must not end up blacklisted.
	st, err := NewState().Apply(MustWord("pulpy"), mustFeedback("+++p+"))
	assert.NoError(err)
	assert.False(st.invalid.Contains('p'))
	assert.Equal('p', st.correct[3])
}

func TestApplyRepeatedLetterAbsentAfterPresent(t *testing.T) {
	assert := assert.New(t)
	// apple: first p present, second p absent
	st, err := NewState().Apply(MustWord("apple"), mustFeedback("a-+++"))
	assert.NoError(err)
	assert.False(st.invalid.Contains('p'))
	positions := st.misplaced['p']
	assert.True(positions.Contains(1))
}

func TestApplyExactOverridesEarlierAbsent(t *testing.T) {
	assert := assert.New(t)
	st, err := NewState().Apply(MustWord("crane"), mustFeedback("+++++"))
	assert.NoError(err)
	assert.True(st.invalid.Contains('e'))

	st, err = st.Apply(MustWord("slate"), mustFeedback("++++e"))
	assert.NoError(err)
	assert.False(st.invalid.Contains('e'))
	assert.Equal('e', st.correct[4])
}

func TestApplyMisaligned(t *testing.T) {
	// exact symbol z does not match the guess letter at that position
	_, err := NewState().Apply(MustWord("apple"), mustFeedback("z++++"))
	assert.ErrorIs(t, err, ErrMalformedFeedback)
}

func mustFeedback(s string) Feedback {
	fb, err := ParseFeedback(s)
	if err != nil {
		panic(err)
	}
	return fb
}
