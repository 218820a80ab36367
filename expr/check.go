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

// TypeError is the error type returned from Check
// when a node of the expression is ill-formed.
type TypeError struct {
	At  *Node
	Msg string
}

// Error implements error
func (t *TypeError) Error() string {
	return fmt.Sprintf("%q is ill-formed: %s", ToString(t.At), t.Msg)
}

func errnode(e *Node, msg string) *TypeError {
	return &TypeError{At: e, Msg: msg}
}

// arity of each operator; -1 means variadic
var oparity = [...]int{
	OpInvalid:       0,
	OpConst:         0,
	OpInternalConst: 0,
	OpNullSentinel:  0,
	OpNull:          0,
	OpVar:           0,
	OpIsNull:        1,
	OpNot:           1,
	OpAnd:           2,
	OpOr:            2,
	OpEq:            2,
	OpNe:            2,
	OpCase:          3,
	OpOther:         -1,
}

// Check walks the tree rooted at n and performs
// rudimentary sanity-checking on all of its nodes:
// operator arity, missing children, variable ids,
// and constant payloads. It does not attempt full
// type inference; malformed trees produced upstream
// are reported, nothing is repaired.
func Check(n *Node) error {
	var errs []error
	Walk(n, func(e *Node) bool {
		if err := check1(e); err != nil {
			errs = append(errs, err)
			return false
		}
		return true
	})
	if errs == nil {
		return nil
	}
	return combine(errs)
}

func check1(e *Node) error {
	if int(e.Op) >= len(oparity) || e.Op == OpInvalid {
		return errnode(e, "invalid operator")
	}
	if want := oparity[e.Op]; want >= 0 && len(e.Args) != want {
		return errnode(e, fmt.Sprintf("%s wants %d children; has %d", e.Op, want, len(e.Args)))
	}
	for _, a := range e.Args {
		if a == nil {
			return errnode(e, "nil child")
		}
	}
	switch e.Op {
	case OpVar:
		if e.Var < 0 {
			return errnode(e, fmt.Sprintf("negative variable id %d", e.Var))
		}
	case OpConst, OpInternalConst:
		if e.Imm == nil {
			return errnode(e, "constant without a payload")
		}
	case OpNot, OpAnd, OpOr:
		// a non-boolean literal can never be legal
		// in a logical position; anything else is
		// left to upstream typing
		for _, a := range e.Args {
			if a.Op == OpConst {
				if _, ok := a.Imm.(bool); !ok {
					return errnode(e, "non-boolean constant in logical position")
				}
			}
		}
	}
	return nil
}

func combine(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}
	return fmt.Errorf("%w and %d other errors", errs[0], len(errs)-1)
}
