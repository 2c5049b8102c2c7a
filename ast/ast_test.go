package ast

import (
	"reflect"
	"testing"
)

func TestSymbolMatchSize(t *testing.T) {
	input := []rune("cat")

	tests := []struct {
		name  string
		sym   Symbol
		index int
		want  int
	}{
		{"epsilon at start", Epsilon, 0, 0},
		{"epsilon past end", Epsilon, 3, 0},
		{"literal match", Literal('c'), 0, 1},
		{"literal mismatch", Literal('x'), 0, -1},
		{"literal out of range", Literal('c'), 3, -1},
		{"literal negative index", Literal('c'), -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sym.MatchSize(input, tt.index); got != tt.want {
				t.Errorf("MatchSize(%v, %d) = %d, want %d", input, tt.index, got, tt.want)
			}
		})
	}
}

func TestSymbolEquality(t *testing.T) {
	if Literal('a') != Literal('a') {
		t.Error("identical literals should be equal")
	}
	if Literal('a') == Literal('b') {
		t.Error("distinct literals should not be equal")
	}
	if Epsilon == Literal('a') {
		t.Error("epsilon should not equal a literal")
	}
}

func TestPostOrder_ACloseBOrC(t *testing.T) {
	// a(b|c)*
	a := NewValue(Literal('a'))
	b := NewValue(Literal('b'))
	c := NewValue(Literal('c'))
	alt := NewAlternation(b, c)
	closure := NewClosure(alt)
	root := NewConcatenation(a, closure)

	got := PostOrder(root)

	want := []*Node{a, b, c, alt, closure, root}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PostOrder order mismatch:\n got  %v\n want %v", nodeList(got), nodeList(want))
	}
}

func TestPostOrder_SingleLeaf(t *testing.T) {
	leaf := NewValue(Literal('x'))
	got := PostOrder(leaf)
	if len(got) != 1 || got[0] != leaf {
		t.Errorf("PostOrder(leaf) = %v, want [leaf]", nodeList(got))
	}
}

func TestPostOrder_Nil(t *testing.T) {
	if got := PostOrder(nil); got != nil {
		t.Errorf("PostOrder(nil) = %v, want nil", got)
	}
}

func nodeList(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.String()
	}
	return out
}
