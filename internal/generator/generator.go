package generator

import "svw.info/starbattle/internal/ports"

// KnownSolutionGenerator creates boards that carry at least one valid
// placement by construction: it samples a legal star arrangement first
// and then builds regions around it. Uniqueness is not attempted.
type KnownSolutionGenerator struct {
	Solver ports.Solver
}

// NewKnownSolution wires a generator that sanity-solves its output with
// the given solver before returning it.
func NewKnownSolution(s ports.Solver) *KnownSolutionGenerator {
	return &KnownSolutionGenerator{Solver: s}
}
