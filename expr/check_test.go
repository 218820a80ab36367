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
	"strings"
	"testing"
)

func TestCheck(t *testing.T) {
	good := []*Node{
		Bool(true),
		Eq(Var(0), Int(5)),
		Not(Or(IsNull(Var(0)), Eq(Var(0), Int(5)))),
		Casen(IsNull(Var(1)), Bool(true), Bool(false)),
		Other("coalesce", Var(0), Null()),
		Other("now"),
	}
	for _, n := range good {
		if err := Check(n); err != nil {
			t.Errorf("%s: unexpected error %s", ToString(n), err)
		}
	}
	bad := []struct {
		in  *Node
		msg string
	}{
		{&Node{Op: OpInvalid}, "invalid operator"},
		{&Node{Op: OpEq, Args: []*Node{Int(1)}}, "wants 2 children"},
		{&Node{Op: OpNot, Args: []*Node{nil}}, "nil child"},
		{&Node{Op: OpVar, Var: -1}, "negative variable id"},
		{&Node{Op: OpConst}, "constant without a payload"},
		{&Node{Op: OpInternalConst}, "constant without a payload"},
		{And(Int(3), Bool(true)), "non-boolean constant"},
	}
	for i := range bad {
		err := Check(bad[i].in)
		if err == nil {
			t.Errorf("case %d: expected an error", i)
			continue
		}
		if !strings.Contains(err.Error(), bad[i].msg) {
			t.Errorf("case %d: error %q does not mention %q", i, err, bad[i].msg)
		}
	}
}

func TestCheckCombinesErrors(t *testing.T) {
	err := Check(Other("f", &Node{Op: OpConst}, &Node{Op: OpVar, Var: -1}))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "1 other errors") {
		t.Errorf("error %q does not mention the second error", err)
	}
}
