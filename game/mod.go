package game

import (
	"errors"
	"fmt"
)

// Feedback marks, one per letter position
const (
	Exact   byte = 'G'
	Present byte = 'Y'
	Absent  byte = 'B'
)

const (
	WordLength         = 5
	DefaultMaxAttempts = 6
)

// Outcome of a finished game from the guesser's perspective
const (
	Win  = 1.0
	Loss = 1 - Win
)

var ErrInvalidWords = errors.New("invalid candidate words")

// Feedback is the per-position classification of a guess against a secret or
// a hypothetical candidate, e.g. "BBYYG".
type Feedback string

// Solved reports whether every position is an exact match.
func (f Feedback) Solved() bool {
	if len(f) == 0 {
		return false
	}
	for i := 0; i < len(f); i++ {
		if f[i] != Exact {
			return false
		}
	}
	return true
}

// Key identifies a state by its attempt history and bound only. Two clones
// that went through the same guesses share a key.
type Key string

// Score classifies every letter of guess against secret independently: exact
// if it sits at the same position, present if it occurs anywhere in secret,
// absent otherwise. Repeated letters are not suppressed.
func Score(secret, guess string) Feedback {
	if len(secret) != len(guess) {
		panic(fmt.Sprintf("cannot score guess %q against %d letters", guess, len(secret)))
	}

	var inSecret [256]bool
	for i := 0; i < len(secret); i++ {
		inSecret[secret[i]] = true
	}

	marks := make([]byte, len(guess))
	for i := 0; i < len(guess); i++ {
		switch c := guess[i]; {
		case c == secret[i]:
			marks[i] = Exact
		case inSecret[c]:
			marks[i] = Present
		default:
			marks[i] = Absent
		}
	}
	return Feedback(marks)
}

// Validate checks that words is a usable candidate list for secrets of the
// given length.
func Validate(words []string, length int) error {
	if len(words) == 0 {
		return fmt.Errorf("%w: empty list", ErrInvalidWords)
	}
	for _, w := range words {
		if len(w) != length {
			return fmt.Errorf("%w: %q is not %d letters", ErrInvalidWords, w, length)
		}
	}
	return nil
}
