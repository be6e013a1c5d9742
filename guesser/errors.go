package guesser

import "errors"

var (
	// ErrMalformedFeedback is returned when feedback is not 5 symbols or does
	// not line up with the previous guess. The game cannot continue without
	// usable feedback.
	ErrMalformedFeedback = errors.New("malformed feedback")

	// ErrNoCandidates is returned when the accumulated feedback has
	// eliminated every dictionary word. Recoverable, the caller can Restart.
	ErrNoCandidates = errors.New("no candidate words remain")

	// ErrManualMode is returned from NextGuess when the solver was built in
	// manual mode, the caller supplies guesses itself.
	ErrManualMode = errors.New("solver is in manual mode")

	// ErrExhausted is returned when every remaining candidate has already
	// been tried.
	ErrExhausted = errors.New("every candidate has been tried")
)
