// Package nfa compiles an ast.Node tree into an ε-NFA via Thompson's
// construction and simulates it against an input string.
//
// States live in a single arena (an NFA's []State slice) addressed by
// StateID: edges store integer indices rather than pointers, so the
// cycles Closure introduces are just values in a slice, not an
// ownership problem.
package nfa

import (
	"fmt"

	"github.com/asimihsan/thompsonregex/ast"
)

// StateID addresses one State within an NFA's arena.
type StateID uint32

// InvalidState is a StateID that never names a state of a built NFA.
// NFA.State reports an unknown id by returning nil, not by this value.
const InvalidState StateID = 0xFFFFFFFF

// Edge is a transition out of a State: consume Symbol (possibly ε) and
// move to Target.
type Edge struct {
	Target StateID
	Symbol ast.Symbol
}

// IsEpsilon reports whether this edge consumes no input.
func (e Edge) IsEpsilon() bool {
	return e.Symbol.Kind == ast.SymbolEpsilon
}

// State is one node of the automaton: an id, at most two outbound edges,
// and whether it accepts. A state with a non-ε outbound edge has exactly
// one outbound edge; a state with two outbound edges has both labeled ε.
type State struct {
	id        StateID
	edges     []Edge
	accepting bool
}

// ID returns the state's identifier.
func (s *State) ID() StateID { return s.id }

// Edges returns the state's outbound edges, in the order they were added.
func (s *State) Edges() []Edge { return s.edges }

// Accepting reports whether this is the automaton's accepting state.
func (s *State) Accepting() bool { return s.accepting }

func (s *State) String() string {
	if s.accepting {
		return fmt.Sprintf("State(%d, accepting)", s.id)
	}
	return fmt.Sprintf("State(%d, edges=%v)", s.id, s.edges)
}

// NFA is a compiled Thompson construction: an arena of states plus two
// distinguished states — exactly one start state with no inbound edges,
// and exactly one accepting state with no outbound edges.
type NFA struct {
	states []State
	start  StateID
	accept StateID
}

// Start returns the start state's id.
func (n *NFA) Start() StateID { return n.start }

// Accept returns the accepting state's id.
func (n *NFA) Accept() StateID { return n.accept }

// State returns the state with the given id, or nil if id is out of range.
func (n *NFA) State(id StateID) *State {
	if int(id) < 0 || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// States returns the number of states in the automaton.
func (n *NFA) States() int { return len(n.states) }

func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d, accept: %d}", len(n.states), n.start, n.accept)
}
