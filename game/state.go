package game

import (
	"fmt"
	"strconv"
	"strings"
)

type Attempt struct {
	Guess    string
	Feedback Feedback
}

// State is a single game: the hidden secret and the guesses made so far.
// Only Play mutates it; search code explores hypothetical lines on clones.
type State struct {
	secret      string
	attempts    []Attempt
	maxAttempts int
}

// New starts a game for secret bounded by maxAttempts guesses.
func New(secret string, maxAttempts int) *State {
	if maxAttempts <= 0 {
		panic(fmt.Sprintf("max attempts must be positive, got %d", maxAttempts))
	}
	return &State{
		secret:      secret,
		attempts:    make([]Attempt, 0, maxAttempts),
		maxAttempts: maxAttempts,
	}
}

// Feedback scores guess against the secret.
func (s *State) Feedback(guess string) Feedback {
	return Score(s.secret, guess)
}

// FeedbackIf scores guess as if candidate were the secret.
func (s *State) FeedbackIf(candidate, guess string) Feedback {
	return Score(candidate, guess)
}

// LegalMoves returns the words that would have produced every recorded
// feedback had they been the secret, in their original order.
func (s *State) LegalMoves(words []string) []string {
	moves := make([]string, 0, len(words))
	for _, w := range words {
		if s.consistent(w) {
			moves = append(moves, w)
		}
	}
	return moves
}

func (s *State) consistent(candidate string) bool {
	if len(candidate) != len(s.secret) {
		return false
	}
	for _, a := range s.attempts {
		if s.FeedbackIf(candidate, a.Guess) != a.Feedback {
			return false
		}
	}
	return true
}

func (s *State) Play(guess string) {
	if s.IsTerminal() {
		panic(fmt.Sprintf("cannot play %q: game is over", guess))
	}
	s.attempts = append(s.attempts, Attempt{Guess: guess, Feedback: s.Feedback(guess)})
}

func (s *State) IsTerminal() bool {
	return len(s.attempts) >= s.maxAttempts || s.lastGuessWins()
}

func (s *State) IsWon() bool {
	return s.IsTerminal() && s.lastGuessWins()
}

func (s *State) lastGuessWins() bool {
	n := len(s.attempts)
	return n > 0 && s.attempts[n-1].Guess == s.secret
}

// Score is Win for a won game and Loss otherwise.
func (s *State) Score() float64 {
	if s.IsWon() {
		return Win
	}
	return Loss
}

func (s *State) Len() int         { return len(s.attempts) }
func (s *State) MaxAttempts() int { return s.maxAttempts }
func (s *State) WordLength() int  { return len(s.secret) }

// Attempts returns a copy of the attempt history.
func (s *State) Attempts() []Attempt {
	attempts := make([]Attempt, len(s.attempts))
	copy(attempts, s.attempts)
	return attempts
}

// Clone returns a deep copy sharing no attempt storage with s.
func (s *State) Clone() *State {
	attempts := make([]Attempt, len(s.attempts), s.maxAttempts)
	copy(attempts, s.attempts)
	return &State{
		secret:      s.secret,
		attempts:    attempts,
		maxAttempts: s.maxAttempts,
	}
}

func (s *State) Key() Key {
	var b strings.Builder
	b.WriteString(strconv.Itoa(s.maxAttempts))
	for _, a := range s.attempts {
		b.WriteByte('|')
		b.WriteString(a.Guess)
		b.WriteByte(':')
		b.WriteString(string(a.Feedback))
	}
	return Key(b.String())
}

func (s *State) String() string {
	return fmt.Sprintf("%d/%d %v", len(s.attempts), s.maxAttempts, s.attempts)
}
