package searcher

import "math"

// mean is the average reward of an action, 0 while unvisited.
func mean(rewards, visits float64) float64 {
	return rewards / (visits + Epsilon)
}

// exploration = c*sqrt(ln(N+1)/n), large for unvisited actions of a visited state
func exploration(c, stateVisits, visits float64) float64 {
	return c * math.Sqrt(math.Log(stateVisits+1)/(visits+Epsilon))
}

// raveBeta weighs the all-moves-as-first estimate by k/(n+k).
func raveBeta(visits, k float64) float64 {
	return k / (visits + k)
}

// graveBeta lets the all-moves-as-first estimate fade as direct visits grow.
func graveBeta(visits, amafVisits float64) float64 {
	return amafVisits / (visits + amafVisits + Epsilon)
}

func blend(beta, q, qAmaf float64) float64 {
	return (1-beta)*q + beta*qAmaf
}
