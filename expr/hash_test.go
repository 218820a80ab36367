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
	"testing"
)

func TestHash(t *testing.T) {
	trees := []*Node{
		Bool(true),
		Bool(false),
		Int(1),
		String("1"),
		Internal(int64(1)),
		Null(),
		NullSentinel(),
		Var(0),
		Var(1),
		Eq(Var(0), Var(1)),
		Eq(Var(1), Var(0)),
		Ne(Var(0), Var(1)),
		Not(Eq(Var(0), Var(1))),
		Or(Eq(Var(0), Var(1)), And(IsNull(Var(0)), IsNull(Var(1)))),
		Casen(IsNull(Var(0)), Bool(true), Bool(false)),
		Other("f", Var(0)),
		Other("g", Var(0)),
	}
	seen := make(map[uint64]*Node)
	for _, n := range trees {
		h := Hash(n)
		if prev, ok := seen[h]; ok {
			t.Errorf("%s and %s hash alike", ToString(prev), ToString(n))
		}
		seen[h] = n
		if Hash(Copy(n)) != h {
			t.Errorf("%s: copy hashes differently", ToString(n))
		}
	}
}
