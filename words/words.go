// Package words loads candidate lists from dictionary files, one word per line.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"wordle/game"
	"wordle/utils"

	"golang.org/x/exp/rand"
)

var ErrEmpty = errors.New("word list has no 5-letter words")

// Parse reads one word per line, lowercases and trims it, and keeps the
// distinct words of game.WordLength ASCII letters in file order.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if len(w) == game.WordLength && isAlpha(w) {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read words: %w", err)
	}

	out = utils.Distinct(out)
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}

// Load parses the file at path. A positive limit keeps a random sample of at
// most limit words drawn from rng.
func Load(path string, limit int, rng *rand.Rand) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	words, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if limit > 0 && limit < len(words) {
		words = Sample(words, limit, rng)
	}
	return words, nil
}

// Sample draws n words without replacement.
func Sample(words []string, n int, rng *rand.Rand) []string {
	if n > len(words) {
		n = len(words)
	}
	out := make([]string, n)
	for i, j := range rng.Perm(len(words))[:n] {
		out[i] = words[j]
	}
	return out
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
