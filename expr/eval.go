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
	"fmt"
)

// Env assigns values to variables by id.
// A nil value (or a missing entry) means the
// variable is absent, i.e. NULL.
type Env map[int]any

// Tri is a three-valued boolean.
type Tri int8

const (
	False Tri = iota
	True
	Unknown
)

func (t Tri) String() string {
	switch t {
	case False:
		return "FALSE"
	case True:
		return "TRUE"
	default:
		return "UNKNOWN"
	}
}

// sentinel is the runtime value of OpNullSentinel
// nodes; it compares equal only to itself.
type sentinel struct{}

// EvalThreeValued evaluates the boolean expression e
// under SQL comparison semantics: a comparison with
// an absent operand yields Unknown, and AND/OR/NOT
// follow Kleene logic. This is the reference against
// which ToTwoValued output is validated.
func EvalThreeValued(e *Node, env Env) (Tri, error) {
	v, null, err := eval3(e, env)
	if err != nil {
		return Unknown, err
	}
	if null {
		return Unknown, nil
	}
	b, ok := v.(bool)
	if !ok {
		return Unknown, fmt.Errorf("expr: %s is not boolean", ToString(e))
	}
	if b {
		return True, nil
	}
	return False, nil
}

// eval3 returns the value of e and whether that
// value is absent.
func eval3(e *Node, env Env) (any, bool, error) {
	switch e.Op {
	case OpConst, OpInternalConst:
		return e.Imm, false, nil
	case OpNullSentinel:
		return sentinel{}, false, nil
	case OpNull:
		return nil, true, nil
	case OpVar:
		v := env[e.Var]
		return v, v == nil, nil
	case OpIsNull:
		_, null, err := eval3(e.Args[0], env)
		return null, false, err
	case OpEq, OpNe:
		l, lnull, err := eval3(e.Args[0], env)
		if err != nil {
			return nil, false, err
		}
		r, rnull, err := eval3(e.Args[1], env)
		if err != nil {
			return nil, false, err
		}
		if lnull || rnull {
			return nil, true, nil
		}
		eq := l == r
		if e.Op == OpNe {
			eq = !eq
		}
		return eq, false, nil
	case OpNot:
		t, err := EvalThreeValued(e.Args[0], env)
		if err != nil {
			return nil, false, err
		}
		switch t {
		case Unknown:
			return nil, true, nil
		case True:
			return false, false, nil
		default:
			return true, false, nil
		}
	case OpAnd, OpOr:
		l, err := EvalThreeValued(e.Args[0], env)
		if err != nil {
			return nil, false, err
		}
		r, err := EvalThreeValued(e.Args[1], env)
		if err != nil {
			return nil, false, err
		}
		var out Tri
		if e.Op == OpAnd {
			out = kleeneAnd(l, r)
		} else {
			out = kleeneOr(l, r)
		}
		if out == Unknown {
			return nil, true, nil
		}
		return out == True, false, nil
	case OpCase:
		c, err := EvalThreeValued(e.Args[0], env)
		if err != nil {
			return nil, false, err
		}
		// an unknown condition selects the ELSE arm
		if c == True {
			return eval3(e.Args[1], env)
		}
		return eval3(e.Args[2], env)
	}
	return nil, false, fmt.Errorf("expr: cannot evaluate %s", ToString(e))
}

func kleeneAnd(a, b Tri) Tri {
	if a == False || b == False {
		return False
	}
	if a == Unknown || b == Unknown {
		return Unknown
	}
	return True
}

func kleeneOr(a, b Tri) Tri {
	if a == True || b == True {
		return True
	}
	if a == Unknown || b == Unknown {
		return Unknown
	}
	return False
}

// EvalTwoValued evaluates e the way the downstream
// two-valued engine does: there is no unknown, a
// comparison over an absent operand yields false,
// and an absent value reaching a logical position
// collapses to false.
func EvalTwoValued(e *Node, env Env) (bool, error) {
	v, null, err := eval2(e, env)
	if err != nil {
		return false, err
	}
	if null {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("expr: %s is not boolean", ToString(e))
	}
	return b, nil
}

func eval2(e *Node, env Env) (any, bool, error) {
	switch e.Op {
	case OpConst, OpInternalConst:
		return e.Imm, false, nil
	case OpNullSentinel:
		return sentinel{}, false, nil
	case OpNull:
		return nil, true, nil
	case OpVar:
		v := env[e.Var]
		return v, v == nil, nil
	case OpIsNull:
		_, null, err := eval2(e.Args[0], env)
		return null, false, err
	case OpEq, OpNe:
		l, lnull, err := eval2(e.Args[0], env)
		if err != nil {
			return nil, false, err
		}
		r, rnull, err := eval2(e.Args[1], env)
		if err != nil {
			return nil, false, err
		}
		if lnull || rnull {
			return false, false, nil
		}
		eq := l == r
		if e.Op == OpNe {
			eq = !eq
		}
		return eq, false, nil
	case OpNot:
		b, err := EvalTwoValued(e.Args[0], env)
		return !b, false, err
	case OpAnd:
		l, err := EvalTwoValued(e.Args[0], env)
		if err != nil {
			return nil, false, err
		}
		r, err := EvalTwoValued(e.Args[1], env)
		return l && r, false, err
	case OpOr:
		l, err := EvalTwoValued(e.Args[0], env)
		if err != nil {
			return nil, false, err
		}
		r, err := EvalTwoValued(e.Args[1], env)
		return l || r, false, err
	case OpCase:
		c, err := EvalTwoValued(e.Args[0], env)
		if err != nil {
			return nil, false, err
		}
		if c {
			return eval2(e.Args[1], env)
		}
		return eval2(e.Args[2], env)
	}
	return nil, false, fmt.Errorf("expr: cannot evaluate %s", ToString(e))
}
