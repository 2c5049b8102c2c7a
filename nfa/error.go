package nfa

import "fmt"

// BuildError reports that Build could not construct a well-formed
// automaton from the given AST. It is only reachable via a malformed
// *ast.Node built by hand outside package parser; Build always succeeds
// for any tree parser.Parse returns.
type BuildError struct {
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("nfa: construction invariant violated: %s", e.Message)
}
