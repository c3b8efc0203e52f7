// Package playout finishes games quickly during simulation. A Policy picks
// guesses on a private clone until the game ends and reports the outcome.
package playout

import (
	"fmt"
	"math"
	"wordle/game"
	"wordle/utils"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

type Kind int

const (
	Random Kind = iota
	Entropy
	Frequency
	EntropyPlus
	FrequencyPlus
)

// Default weights of the hybrid policies' primary term
const (
	DefaultEntropyAlpha   = 0.7
	DefaultFrequencyAlpha = 0.6
)

var names = map[Kind]string{
	Random:        "random",
	Entropy:       "entropy",
	Frequency:     "frequency",
	EntropyPlus:   "entropy+",
	FrequencyPlus: "frequency+",
}

func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Policy is passed by value. The zero Policy is the uniform-random one.
type Policy struct {
	kind  Kind
	alpha float64
}

// Result of one playout. Moves are the guesses the playout made, in order.
type Result struct {
	Reward float64
	Moves  []string
}

// New returns a policy of the given kind with its default weight.
func New(kind Kind) Policy {
	p := Policy{kind: kind}
	switch kind {
	case EntropyPlus:
		p.alpha = DefaultEntropyAlpha
	case FrequencyPlus:
		p.alpha = DefaultFrequencyAlpha
	}
	return p
}

// WithAlpha overrides the weight of a hybrid policy. Other kinds ignore it.
func (p Policy) WithAlpha(alpha float64) Policy {
	if p.kind == EntropyPlus || p.kind == FrequencyPlus {
		p.alpha = alpha
	}
	return p
}

// Parse maps a policy name such as "entropy+" to its policy.
func Parse(name string) (Policy, error) {
	for kind, n := range names {
		if n == name {
			return New(kind), nil
		}
	}
	return Policy{}, fmt.Errorf("unknown playout policy %q", name)
}

func (p Policy) Kind() Kind     { return p.kind }
func (p Policy) Alpha() float64 { return p.alpha }
func (p Policy) String() string { return p.kind.String() }

// Playout plays a clone of state to the end and returns Win or Loss. A
// clone left without legal moves before the end counts as a Loss.
func (p Policy) Playout(state *game.State, words []string, rng *rand.Rand) Result {
	s := state.Clone()
	pick := p.selector(words)

	var moves []string
	for !s.IsTerminal() {
		legal := s.LegalMoves(words)
		if len(legal) == 0 {
			return Result{Reward: game.Loss, Moves: moves}
		}
		move := pick(legal, rng)
		s.Play(move)
		moves = append(moves, move)
	}
	return Result{Reward: s.Score(), Moves: moves}
}

// Select picks one of the legal moves the way Playout would.
func (p Policy) Select(legal, words []string, rng *rand.Rand) string {
	if len(legal) == 0 {
		panic("no legal moves to select from")
	}
	return p.selector(words)(legal, rng)
}

// selector precomputes what the policy needs from the full candidate list.
func (p Policy) selector(words []string) func(legal []string, rng *rand.Rand) string {
	switch p.kind {
	case Entropy:
		return best(func(w string) float64 {
			return Information(w, words)
		})
	case EntropyPlus:
		return best(func(w string) float64 {
			return p.alpha*Information(w, words) + (1-p.alpha)*float64(Diversity(w))
		})
	case Frequency:
		counts := LetterCounts(words)
		return best(func(w string) float64 {
			return counts.Score(w)
		})
	case FrequencyPlus:
		counts := LetterCounts(words)
		return best(func(w string) float64 {
			return p.alpha*counts.Score(w) + (1-p.alpha)*float64(Diversity(w))
		})
	default:
		return func(legal []string, rng *rand.Rand) string {
			return legal[rng.Intn(len(legal))]
		}
	}
}

func best(score func(string) float64) func([]string, *rand.Rand) string {
	return func(legal []string, _ *rand.Rand) string {
		scores := make([]float64, len(legal))
		for i, w := range legal {
			scores[i] = score(w)
		}
		return legal[utils.ArgMax(scores)]
	}
}

// Information is the base-2 entropy of the feedback patterns guess would
// produce against every word of the list.
func Information(guess string, words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	counts := make(map[game.Feedback]int)
	for _, w := range words {
		counts[game.Score(w, guess)]++
	}
	total := float64(len(words))
	probs := make([]float64, 0, len(counts))
	for _, c := range counts {
		probs = append(probs, float64(c)/total)
	}
	// Sorted so equal distributions sum in the same order and tie exactly
	slices.Sort(probs)
	return stat.Entropy(probs) / math.Ln2
}

// Letters counts every letter occurrence across a word list.
type Letters map[byte]int

func LetterCounts(words []string) Letters {
	counts := make(Letters)
	for _, w := range words {
		for i := 0; i < len(w); i++ {
			counts[w[i]]++
		}
	}
	return counts
}

// Score sums the counts of the distinct letters of word.
func (l Letters) Score(word string) float64 {
	total := 0
	for _, c := range utils.Distinct([]byte(word)) {
		total += l[c]
	}
	return float64(total)
}

// Diversity is the number of distinct letters in word.
func Diversity(word string) int {
	return len(utils.Distinct([]byte(word)))
}
