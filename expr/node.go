// Copyright (C) 2023 Marble DB, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package expr

// Op is the operator tag of a Node.
//
// Rewrites dispatch with an explicit match on Op;
// operators they do not recognize are represented
// as OpOther and traversed generically.
type Op uint8

const (
	OpInvalid Op = iota

	// OpConst is a literal constant.
	// Constants are never null.
	OpConst
	// OpInternalConst is a compiler-synthesized
	// constant. Like OpConst it is never null;
	// it is kept distinct so that later stages
	// can tell it apart from user-written literals.
	OpInternalConst
	// OpNullSentinel is a non-null placeholder
	// used where a literal NULL cannot appear.
	OpNullSentinel
	// OpNull is the literal absent value.
	OpNull
	// OpVar is a reference to a variable.
	OpVar
	// OpIsNull tests its operand for absence;
	// the result is always a non-null boolean.
	OpIsNull
	OpNot
	OpAnd
	OpOr
	// OpEq is an equality comparison. Before
	// ToTwoValued runs it carries SQL-style
	// three-valued semantics.
	OpEq
	// OpNe is an inequality comparison with
	// three-valued semantics; ToTwoValued
	// desugars it into OpNot over OpEq.
	OpNe
	// OpCase is a three-armed conditional:
	// Args[0] is the condition, Args[1] the
	// consequent, Args[2] the alternative.
	OpCase
	// OpOther is an operator that the rewrites
	// in this package do not interpret.
	// Its name is carried in Node.Imm.
	OpOther
)

var opNames = [...]string{
	OpInvalid:       "invalid",
	OpConst:         "const",
	OpInternalConst: "internal-const",
	OpNullSentinel:  "null-sentinel",
	OpNull:          "null",
	OpVar:           "var",
	OpIsNull:        "is-null",
	OpNot:           "not",
	OpAnd:           "and",
	OpOr:            "or",
	OpEq:            "eq",
	OpNe:            "ne",
	OpCase:          "case",
	OpOther:         "other",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// Node is a single node in an expression tree.
//
// Trees are immutable by convention: rewrites
// never update a Node in place, but instead
// build a fresh parent when a child changes,
// so an unchanged result is recognizable by
// pointer identity with the input.
type Node struct {
	Op   Op
	Args []*Node

	// Var is the variable id for OpVar nodes.
	// Ids are small non-negative integers; any
	// number of OpVar nodes may share an id.
	Var int

	// Imm is the immediate payload of the node:
	// the value of OpConst and OpInternalConst
	// nodes (a comparable scalar), or the name
	// of an OpOther operator.
	Imm any
}

// Bool builds a boolean constant.
func Bool(b bool) *Node {
	return &Node{Op: OpConst, Imm: b}
}

// Int builds an integer constant.
func Int(i int64) *Node {
	return &Node{Op: OpConst, Imm: i}
}

// String builds a string constant.
func String(s string) *Node {
	return &Node{Op: OpConst, Imm: s}
}

// Internal builds a compiler-synthesized constant.
func Internal(v any) *Node {
	return &Node{Op: OpInternalConst, Imm: v}
}

// NullSentinel builds the non-null placeholder node.
func NullSentinel() *Node {
	return &Node{Op: OpNullSentinel}
}

// Null builds the literal absent value.
func Null() *Node {
	return &Node{Op: OpNull}
}

// Var builds a reference to variable id.
func Var(id int) *Node {
	return &Node{Op: OpVar, Var: id}
}

// IsNull builds x IS NULL.
func IsNull(x *Node) *Node {
	return &Node{Op: OpIsNull, Args: []*Node{x}}
}

// Not builds NOT x.
func Not(x *Node) *Node {
	return &Node{Op: OpNot, Args: []*Node{x}}
}

// And builds a AND b.
func And(a, b *Node) *Node {
	return &Node{Op: OpAnd, Args: []*Node{a, b}}
}

// Or builds a OR b.
func Or(a, b *Node) *Node {
	return &Node{Op: OpOr, Args: []*Node{a, b}}
}

// Eq builds the comparison a = b.
func Eq(a, b *Node) *Node {
	return &Node{Op: OpEq, Args: []*Node{a, b}}
}

// Ne builds the comparison a <> b.
func Ne(a, b *Node) *Node {
	return &Node{Op: OpNe, Args: []*Node{a, b}}
}

// Casen builds CASE WHEN cond THEN then ELSE els END.
func Casen(cond, then, els *Node) *Node {
	return &Node{Op: OpCase, Args: []*Node{cond, then, els}}
}

// Other builds an operator node that the rewrites
// in this package traverse but do not interpret.
func Other(name string, args ...*Node) *Node {
	return &Node{Op: OpOther, Args: args, Imm: name}
}

// Walk performs a depth-first traversal of the
// tree rooted at n: it invokes fn on n and, if fn
// returns true, walks each of n's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, a := range n.Args {
		Walk(a, fn)
	}
}
