package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var fruits = []string{"apple", "grape", "peach", "melon", "berry"}

func TestScore(t *testing.T) {
	tests := []struct {
		secret, guess string
		want          Feedback
	}{
		{"apple", "apple", "GGGGG"},
		{"apple", "grape", "BBYYG"},
		{"apple", "peach", "YYYBB"},
		{"grape", "apple", "YYYBG"},
		{"berry", "melon", "BGBBB"},
		// Both r's are marked although the secret only has one left over
		{"crane", "error", "YGYBY"},
	}
	for _, tt := range tests {
		t.Run(tt.secret+"/"+tt.guess, func(t *testing.T) {
			require.Equal(t, tt.want, Score(tt.secret, tt.guess))
		})
	}

	t.Run("length and alphabet", func(t *testing.T) {
		for _, secret := range fruits {
			for _, guess := range fruits {
				got := Score(secret, guess)
				require.Len(t, got, len(guess))
				for i := 0; i < len(got); i++ {
					require.Contains(t, []byte{Exact, Present, Absent}, got[i])
				}
			}
		}
	})

	t.Run("panics on length mismatch", func(t *testing.T) {
		require.Panics(t, func() { Score("apple", "pear") })
	})
}

func TestFeedbackSolved(t *testing.T) {
	require.True(t, Feedback("GGGGG").Solved())
	require.False(t, Feedback("GGGGY").Solved())
	require.False(t, Feedback("").Solved())
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(fruits, WordLength))
	require.ErrorIs(t, Validate(nil, WordLength), ErrInvalidWords)
	require.ErrorIs(t, Validate([]string{"apple", "kiwi"}, WordLength), ErrInvalidWords)
}

func TestNew(t *testing.T) {
	require.Panics(t, func() { New("apple", 0) })

	s := New("apple", DefaultMaxAttempts)
	require.Equal(t, 0, s.Len())
	require.Equal(t, DefaultMaxAttempts, s.MaxAttempts())
	require.Equal(t, WordLength, s.WordLength())
	require.False(t, s.IsTerminal())
	require.False(t, s.IsWon())
	require.Equal(t, Loss, s.Score())
}

func TestPlay(t *testing.T) {
	t.Run("winning guess", func(t *testing.T) {
		s := New("apple", DefaultMaxAttempts)
		s.Play("apple")

		require.Equal(t, []Attempt{{Guess: "apple", Feedback: "GGGGG"}}, s.Attempts())
		require.True(t, s.IsWon())
		require.True(t, s.IsTerminal())
		require.Equal(t, Win, s.Score())
	})

	t.Run("append only", func(t *testing.T) {
		s := New("apple", DefaultMaxAttempts)
		for i, guess := range []string{"melon", "berry", "grape"} {
			s.Play(guess)
			require.Equal(t, i+1, s.Len())
		}
		want := []Attempt{
			{Guess: "melon", Feedback: "BYYBB"},
			{Guess: "berry", Feedback: "BYBBB"},
			{Guess: "grape", Feedback: "BBYYG"},
		}
		if diff := cmp.Diff(want, s.Attempts()); diff != "" {
			t.Errorf("attempts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("running out of attempts is terminal but not won", func(t *testing.T) {
		s := New("apple", 2)
		s.Play("melon")
		require.False(t, s.IsTerminal())
		s.Play("berry")

		require.True(t, s.IsTerminal())
		require.False(t, s.IsWon())
		require.Equal(t, Loss, s.Score())
	})

	t.Run("panics once terminal", func(t *testing.T) {
		s := New("apple", 1)
		s.Play("grape")
		require.Panics(t, func() { s.Play("apple") })
		require.Equal(t, 1, s.Len(), "Attempts should never exceed the bound")
	})

	t.Run("attempts are a copy", func(t *testing.T) {
		s := New("apple", DefaultMaxAttempts)
		s.Play("grape")
		attempts := s.Attempts()
		attempts[0].Guess = "peach"

		require.Equal(t, "grape", s.Attempts()[0].Guess)
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("fresh game allows every word", func(t *testing.T) {
		s := New("apple", DefaultMaxAttempts)
		require.Equal(t, fruits, s.LegalMoves(fruits))
	})

	t.Run("filters by recorded feedback", func(t *testing.T) {
		s := New("apple", DefaultMaxAttempts)
		s.Play("grape")
		require.Equal(t, []string{"apple"}, s.LegalMoves(fruits))
	})

	t.Run("keeps original order", func(t *testing.T) {
		words := []string{"berry", "apple", "ample", "grape", "maple"}
		s := New("apple", DefaultMaxAttempts)
		s.Play("melon")

		got := s.LegalMoves(words)
		require.Subset(t, words, got)
		last := -1
		for _, w := range got {
			i := indexOf(words, w)
			require.Greater(t, i, last, "Legal moves should keep candidate order")
			last = i
		}
	})

	t.Run("skips words of another length", func(t *testing.T) {
		s := New("apple", DefaultMaxAttempts)
		require.Equal(t, []string{"apple"}, s.LegalMoves([]string{"kiwi", "apple"}))
	})

	t.Run("does not change the input", func(t *testing.T) {
		words := append([]string{}, fruits...)
		s := New("apple", DefaultMaxAttempts)
		s.Play("peach")
		s.LegalMoves(words)
		require.Equal(t, fruits, words)
	})
}

func indexOf(words []string, w string) int {
	for i, v := range words {
		if v == w {
			return i
		}
	}
	return -1
}

func TestFeedbackIf(t *testing.T) {
	s := New("apple", DefaultMaxAttempts)
	require.Equal(t, Score("grape", "melon"), s.FeedbackIf("grape", "melon"))
	require.Equal(t, Score("apple", "melon"), s.Feedback("melon"))
}

func TestClone(t *testing.T) {
	s := New("apple", DefaultMaxAttempts)
	s.Play("melon")
	c := s.Clone()

	c.Play("grape")

	require.Equal(t, 1, s.Len(), "Playing on the clone should not touch the original")
	require.Equal(t, 2, c.Len())
	require.Equal(t, s.MaxAttempts(), c.MaxAttempts())

	// Appending to both must not share the backing array
	s.Play("berry")
	require.Equal(t, "grape", c.Attempts()[1].Guess)
}

func TestKey(t *testing.T) {
	t.Run("structural over history", func(t *testing.T) {
		a := New("apple", DefaultMaxAttempts)
		b := a.Clone()
		a.Play("melon")
		b.Play("melon")

		require.Equal(t, a.Key(), b.Key())
	})

	t.Run("independent of the secret", func(t *testing.T) {
		// Same guess and feedback against different secrets
		a := New("apple", DefaultMaxAttempts)
		b := New("ample", DefaultMaxAttempts)
		a.Play("berry")
		b.Play("berry")

		require.Equal(t, a.Key(), b.Key())
	})

	t.Run("differs by history and bound", func(t *testing.T) {
		a := New("apple", DefaultMaxAttempts)
		b := New("apple", DefaultMaxAttempts)
		a.Play("melon")
		b.Play("berry")

		require.NotEqual(t, a.Key(), b.Key())
		require.NotEqual(t, New("apple", 5).Key(), New("apple", 6).Key())
	})
}
