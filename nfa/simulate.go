package nfa

import (
	"github.com/asimihsan/thompsonregex/internal/conv"
	"github.com/asimihsan/thompsonregex/internal/sparse"
)

// configuration is one point in the simulation's search space: "the
// automaton is at state, having consumed input[0:index) runes".
type configuration struct {
	state StateID
	index int
}

// encode packs a configuration into the flat key space
// state*(inputLen+1)+index, the same linearization a bounded backtracker
// uses for its visited bit vector — here it indexes into a
// sparse.SparseSet instead of a raw bit vector, since these automata are
// small enough that SparseSet's O(1) Clear-free-per-call allocation
// shape matters more than the bit vector's extra density.
func encode(cfg configuration, inputLen int) uint32 {
	return uint32(cfg.state)*uint32(inputLen+1) + uint32(cfg.index)
}

// Match reports whether input is fully matched by automaton: some path
// through the ε-NFA consumes every rune of input and ends at the
// accepting state.
//
// Match allocates its own configuration stack and visited set per call,
// so the same *NFA may be matched against concurrently from multiple
// goroutines.
func Match(automaton *NFA, input string) bool {
	runes := []rune(input)
	inputLen := len(runes)

	numStates := automaton.States()
	capacity := conv.IntToUint32(numStates * (inputLen + 1))
	visited := sparse.NewSparseSet(capacity)

	stack := []configuration{{state: automaton.Start(), index: 0}}

	for len(stack) > 0 {
		cfg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		key := encode(cfg, inputLen)
		if visited.Contains(key) {
			continue
		}
		visited.Insert(key)

		if cfg.index == inputLen {
			if automaton.State(cfg.state).Accepting() {
				return true
			}
			// Not accepting yet: still need to explore this state's
			// ε-edges below, since they may reach the accept state
			// without consuming any more input.
		}

		for _, edge := range automaton.State(cfg.state).Edges() {
			n := edge.Symbol.MatchSize(runes, cfg.index)
			if n == -1 {
				continue
			}
			stack = append(stack, configuration{state: edge.Target, index: cfg.index + n})
		}
	}

	return false
}
