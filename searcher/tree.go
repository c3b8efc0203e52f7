package searcher

import "wordle/game"

type stats struct {
	rewards float64
	visits  float64
}

type edge struct {
	state game.Key
	move  string
}

// tree holds the statistics of one search call. States are identified by
// their attempt history, so clones reaching the same history share entries.
type tree struct {
	children map[game.Key][]string
	edges    map[edge]*stats
	visits   map[game.Key]float64
	amaf     map[string]*stats // Per action, wherever it was played
}

func newTree() *tree {
	return &tree{
		children: make(map[game.Key][]string),
		edges:    make(map[edge]*stats),
		visits:   make(map[game.Key]float64),
		amaf:     make(map[string]*stats),
	}
}

func (t *tree) expanded(key game.Key) bool {
	return len(t.children[key]) > 0
}

func (t *tree) edge(key game.Key, move string) stats {
	if s, ok := t.edges[edge{state: key, move: move}]; ok {
		return *s
	}
	return stats{}
}

func (t *tree) action(move string) stats {
	if s, ok := t.amaf[move]; ok {
		return *s
	}
	return stats{}
}

func (t *tree) backup(path []edge, reward float64) {
	for _, e := range path {
		s, ok := t.edges[e]
		if !ok {
			s = &stats{}
			t.edges[e] = s
		}
		s.rewards += reward
		s.visits++
		t.visits[e.state]++
	}
}

// backupAMAF credits every distinct action of a simulated game once.
func (t *tree) backupAMAF(trajectory []string, reward float64) {
	seen := make(map[string]bool, len(trajectory))
	for _, move := range trajectory {
		if seen[move] {
			continue
		}
		seen[move] = true
		s, ok := t.amaf[move]
		if !ok {
			s = &stats{}
			t.amaf[move] = s
		}
		s.rewards += reward
		s.visits++
	}
}
