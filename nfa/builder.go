package nfa

import "github.com/asimihsan/thompsonregex/ast"

// builder accumulates states for a single Build call. It is not exported:
// callers only ever see the finished *NFA.
type builder struct {
	states []State
}

// newState allocates a bare, non-accepting state with no edges and
// returns its id.
func (b *builder) newState() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{id: id})
	return id
}

// addEdge appends one outbound edge to the state named by id.
func (b *builder) addEdge(id StateID, symbol ast.Symbol, target StateID) {
	b.states[id].edges = append(b.states[id].edges, Edge{Target: target, Symbol: symbol})
}

// replaceEdges discards whatever edges id currently has and gives it
// exactly one: an edge on symbol to target. Used by Concatenation and
// Alternation to retarget a fragment's end state.
func (b *builder) replaceEdges(id StateID, symbol ast.Symbol, target StateID) {
	b.states[id].edges = []Edge{{Target: target, Symbol: symbol}}
}

// fragment is a partially-built automaton piece: everything reachable
// from start eventually reaches end, and end has no outbound edges yet
// (they get attached when the fragment is embedded in a larger one, or
// the fragment's end becomes the whole automaton's accept state).
type fragment struct {
	start, end StateID
}

// Build compiles root into an ε-NFA using Thompson's construction,
// visiting root's nodes in post-order and maintaining a work stack of
// fragments: each AST node pops its operand fragments and pushes one
// fragment representing itself.
func Build(root *ast.Node) (*NFA, error) {
	b := &builder{}
	var stack []fragment

	for _, node := range ast.PostOrder(root) {
		switch node.Kind {
		case ast.Value:
			end := b.newState()
			start := b.newState()
			b.addEdge(start, node.Symbol, end)
			stack = append(stack, fragment{start: start, end: end})

		case ast.Closure:
			if len(stack) < 1 {
				return nil, &BuildError{Message: "Closure with no operand on the construction stack"}
			}
			inner := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			end := b.newState()
			start := b.newState()
			b.addEdge(start, ast.Epsilon, end)         // skip: zero repetitions
			b.addEdge(start, ast.Epsilon, inner.start)  // enter: one more repetition
			b.addEdge(inner.end, ast.Epsilon, inner.start) // loop back
			b.addEdge(inner.end, ast.Epsilon, end)         // exit the loop
			stack = append(stack, fragment{start: start, end: end})

		case ast.Concatenation:
			if len(stack) < 2 {
				return nil, &BuildError{Message: "Concatenation with fewer than two operands on the construction stack"}
			}
			second := stack[len(stack)-1]
			first := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			b.replaceEdges(first.end, ast.Epsilon, second.start)
			stack = append(stack, fragment{start: first.start, end: second.end})

		case ast.Alternation:
			if len(stack) < 2 {
				return nil, &BuildError{Message: "Alternation with fewer than two operands on the construction stack"}
			}
			second := stack[len(stack)-1]
			first := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			start := b.newState()
			b.addEdge(start, ast.Epsilon, first.start)
			b.addEdge(start, ast.Epsilon, second.start)

			end := b.newState()
			b.replaceEdges(first.end, ast.Epsilon, end)
			b.replaceEdges(second.end, ast.Epsilon, end)
			stack = append(stack, fragment{start: start, end: end})
		}
	}

	if len(stack) != 1 {
		return nil, &BuildError{
			Message: "construction stack did not reduce to exactly one fragment",
		}
	}

	result := stack[0]
	b.states[result.end].accepting = true

	return &NFA{
		states: b.states,
		start:  result.start,
		accept: result.end,
	}, nil
}
