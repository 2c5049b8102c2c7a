// Package thompsonregex is a small educational regular-expression engine:
// parse a pattern into an AST, compile the AST into an ε-NFA via
// Thompson's construction, and simulate the NFA against an input string
// to decide whether the string is a full match.
//
// Supported syntax is a literal alphabet plus three operators: '|'
// (alternation), '*' (zero-or-more closure), and implicit concatenation,
// grouped with '(' and ')'. There is no search, no partial matching, no
// character classes, and no capture groups — every match is all-or-nothing
// against the whole input string.
//
// Basic usage:
//
//	re, err := thompsonregex.CompileRegexp("a(b|c)*")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("abcbc") {
//	    fmt.Println("matched!")
//	}
package thompsonregex

import (
	"github.com/asimihsan/thompsonregex/ast"
	"github.com/asimihsan/thompsonregex/nfa"
	"github.com/asimihsan/thompsonregex/parser"
)

// Parse converts pattern into an AST. It is a thin re-export of
// parser.Parse for callers who want the tree itself, e.g. for inspection
// or to drive a custom Build.
func Parse(pattern string) (*ast.Node, error) {
	return parser.Parse(pattern)
}

// Build compiles an AST into an ε-NFA via Thompson's construction. It is
// a thin re-export of nfa.Build.
func Build(root *ast.Node) (*nfa.NFA, error) {
	return nfa.Build(root)
}

// Match reports whether input is fully matched by automaton. It is a
// thin re-export of nfa.Match.
func Match(automaton *nfa.NFA, input string) bool {
	return nfa.Match(automaton, input)
}

// Compile parses pattern and builds its automaton in one step.
//
// Example:
//
//	automaton, err := thompsonregex.Compile(`a(b|c)*`)
func Compile(pattern string) (*nfa.NFA, error) {
	root, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	return Build(root)
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at init time.
//
// Example:
//
//	var identifier = thompsonregex.MustCompile(`(a|b)*`)
func MustCompile(pattern string) *nfa.NFA {
	automaton, err := Compile(pattern)
	if err != nil {
		panic("thompsonregex: Compile(`" + pattern + "`): " + err.Error())
	}
	return automaton
}

// Regexp bundles a compiled automaton with the pattern it came from.
//
// Example:
//
//	re := thompsonregex.MustCompileRegexp(`ab*`)
//	if re.MatchString("abbb") {
//	    println("matched!")
//	}
type Regexp struct {
	automaton *nfa.NFA
	pattern   string
}

// CompileRegexp compiles pattern into a Regexp.
func CompileRegexp(pattern string) (*Regexp, error) {
	automaton, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regexp{automaton: automaton, pattern: pattern}, nil
}

// MustCompileRegexp compiles pattern into a Regexp and panics if it fails.
func MustCompileRegexp(pattern string) *Regexp {
	re, err := CompileRegexp(pattern)
	if err != nil {
		panic("thompsonregex: CompileRegexp(`" + pattern + "`): " + err.Error())
	}
	return re
}

// String returns the pattern the Regexp was compiled from.
func (re *Regexp) String() string {
	return re.pattern
}

// MatchString reports whether input is fully matched by re.
func (re *Regexp) MatchString(input string) bool {
	return Match(re.automaton, input)
}
