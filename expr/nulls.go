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

import (
	"golang.org/x/exp/slices"
)

// ToTwoValued rewrites comparisons in e, which carry
// SQL-style three-valued semantics (a comparison
// against an absent value yields unknown rather than
// a boolean), into the two-valued boolean logic that
// later optimizer and code-generation stages expect.
//
// The rewrite chosen for an equality depends on the
// syntactic shape of its operands and on whether an
// enclosing NOT will negate the result before it is
// consumed; see normalizeEq. e itself is never
// mutated: parents are rebuilt bottom-up when a
// child changes, and unchanged subtrees are shared.
//
// The returned flag reports whether any rewrite
// occurred, so the caller knows whether earlier
// simplification stages are worth re-running.
func ToTwoValued(e *Node) (*Node, bool) {
	if e == nil {
		return nil, false
	}
	rw := &nullrw{nullable: make(map[int]bool)}
	out := rw.rewrite(e)
	return out, rw.modified
}

// nullrw holds the ambient state of one ToTwoValued
// invocation. A fresh nullrw is built per call, so
// concurrent calls on disjoint trees do not interact.
type nullrw struct {
	// nullable maps a variable id to a may-be-null
	// override; a variable with no entry is nullable.
	// Entries are only ever introduced (and then
	// restored) by the OR-guard pattern in rewrite.
	nullable map[int]bool

	// negated is true when an enclosing NOT will
	// negate the value produced at the current
	// position before it reaches its consumer.
	negated bool

	// modified is set the first time a rewrite
	// actually changes a node; it is never reset
	// during a pass.
	modified bool
}

func (rw *nullrw) rewrite(e *Node) *Node {
	switch e.Op {
	case OpNot:
		arg := rw.flipped(e.Args[0])
		if arg == e.Args[0] {
			return e
		}
		return &Node{Op: OpNot, Args: []*Node{arg}}
	case OpOr:
		// "v IS NULL OR expr": while rewriting expr,
		// v may be assumed non-null, since the left
		// disjunct already covers the null case.
		if g := e.Args[0]; g.Op == OpIsNull && g.Args[0].Op == OpVar {
			rhs := rw.assumeNotNull(g.Args[0].Var, e.Args[1])
			if rhs == e.Args[1] {
				return e
			}
			return &Node{Op: OpOr, Args: []*Node{g, rhs}}
		}
		return rw.rewriteArgs(e)
	case OpEq:
		out := rw.rewriteArgs(e)
		if out != e {
			rw.modified = true
		}
		norm := rw.normalizeEq(out)
		if norm != out {
			rw.modified = true
		}
		return norm
	case OpNe:
		// a <> b  =>  NOT (a = b), built from the
		// original children and re-dispatched so the
		// fresh NOT and = are themselves rewritten
		// under the right polarity.
		rw.modified = true
		return rw.rewrite(Not(Eq(e.Args[0], e.Args[1])))
	default:
		return rw.rewriteArgs(e)
	}
}

// rewriteArgs rewrites every child of e and returns
// either e itself (no child changed) or a fresh node
// carrying the changed children.
func (rw *nullrw) rewriteArgs(e *Node) *Node {
	out := e
	for i, a := range e.Args {
		c := rw.rewrite(a)
		if c == a {
			continue
		}
		if out == e {
			cp := *e
			cp.Args = slices.Clone(e.Args)
			out = &cp
		}
		out.Args[i] = c
	}
	return out
}

// flipped rewrites e under inverted polarity,
// restoring the polarity on every exit path.
func (rw *nullrw) flipped(e *Node) *Node {
	rw.negated = !rw.negated
	defer func() { rw.negated = !rw.negated }()
	return rw.rewrite(e)
}

// assumeNotNull rewrites e with variable v forced
// non-null, restoring the previous table entry on
// every exit path.
func (rw *nullrw) assumeNotNull(v int, e *Node) *Node {
	prev, ok := rw.nullable[v]
	rw.nullable[v] = false
	defer func() {
		if ok {
			rw.nullable[v] = prev
		} else {
			delete(rw.nullable, v)
		}
	}()
	return rw.rewrite(e)
}

func (rw *nullrw) mayBeNull(v int) bool {
	if b, ok := rw.nullable[v]; ok {
		return b
	}
	return true
}

// nullclass is the syntactic operand classification
// that selects the equality rewrite rule.
type nullclass uint8

const (
	general nullclass = iota // may or may not be null
	nonNull                  // definitely not null
	defNull                  // definitely null
)

func classify(e *Node) nullclass {
	switch e.Op {
	case OpConst, OpInternalConst, OpNullSentinel:
		return nonNull
	case OpNull:
		return defNull
	}
	return general
}

// normalizeEq rewrites an equality whose children
// are already in two-valued form so that the node
// itself evaluates correctly under two-valued logic:
//
//	lhs \ rhs    non-null           null   general
//	non-null     unchanged          FALSE  unchanged, or neg: eq AND rhs IS NOT NULL
//	null         FALSE              TRUE   rhs IS NULL
//	general      unchanged, or      lhs    pos: eq OR (lhs IS NULL AND rhs IS NULL)
//	             neg (nullable      IS     neg: eq AND notXor(lhs, rhs)
//	             var): eq AND lhs   NULL
//	             IS NOT NULL
//
// Under positive polarity an OR compensation makes
// the result true whenever the three-valued engine
// would have produced true; under an enclosing NOT
// an AND compensation excludes the null case instead,
// so that NOT(true) and NOT(unknown) stay distinct.
func (rw *nullrw) normalizeEq(e *Node) *Node {
	if e.Op != OpEq {
		panic("normalizeEq applied to " + e.Op.String() + " node")
	}
	lhs, rhs := e.Args[0], e.Args[1]
	lc, rc := classify(lhs), classify(rhs)
	switch {
	case lc == defNull && rc == defNull:
		return Bool(true)
	case lc == defNull && rc == nonNull, lc == nonNull && rc == defNull:
		return Bool(false)
	case lc == defNull:
		return IsNull(rhs)
	case rc == defNull:
		return IsNull(lhs)
	case lc == nonNull && rc == nonNull:
		return e
	case lc == nonNull:
		// rhs is general
		if rw.negated {
			return And(e, Not(IsNull(Copy(rhs))))
		}
		return e
	case rc == nonNull:
		// lhs is general; compensate only for a
		// variable not already guarded non-null
		if rw.negated && lhs.Op == OpVar && rw.mayBeNull(lhs.Var) {
			return And(e, Not(IsNull(Copy(lhs))))
		}
		return e
	default:
		// both general
		if rw.negated {
			return And(e, notXor(Copy(lhs), Copy(rhs)))
		}
		return Or(e, And(IsNull(Copy(lhs)), IsNull(Copy(rhs))))
	}
}

// notXor builds
//
//	(CASE WHEN a IS NULL THEN TRUE ELSE FALSE END) =
//	(CASE WHEN b IS NULL THEN TRUE ELSE FALSE END)
//
// which is true exactly when a and b are both null or
// both non-null, and is itself never null, so it
// composes under AND/OR without reintroducing
// three-valued unknowns.
func notXor(a, b *Node) *Node {
	return Eq(nullFlag(a), nullFlag(b))
}

func nullFlag(e *Node) *Node {
	return Casen(IsNull(e), Bool(true), Bool(false))
}
