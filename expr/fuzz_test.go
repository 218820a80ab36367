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

//go:build go1.18

package expr

import (
	"testing"
)

func FuzzToTwoValued(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0, 0, 0, 2, 0})                   // EQ against NULL
	f.Add([]byte{1, 0, 0, 2, 0})                   // NE against NULL
	f.Add([]byte{3, 0, 0, 0, 0, 1})                // NOT of EQ
	f.Add([]byte{5, 2, 0, 1, 0, 0, 0, 1, 1})       // OR with an IS NULL guard
	f.Add([]byte{4, 5, 2, 0, 0, 0, 0, 1, 1, 0, 0}) // AND of OR-guard and EQ
	f.Fuzz(func(t *testing.T, data []byte) {
		g := &treegen{data: data}
		tree := g.boolean(3)
		if err := Check(tree); err != nil {
			t.Fatalf("generator produced %s: %s", ToString(tree), err)
		}
		out, mod := ToTwoValued(tree)
		if err := Check(out); err != nil {
			t.Fatalf("rewrite produced %s: %s", ToString(out), err)
		}
		if !mod && out != tree {
			t.Errorf("unmodified %s was rebuilt", ToString(tree))
		}
		checkOracle(t, tree)
	})
}
