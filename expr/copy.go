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

// Copy returns a deep copy of e.
//
// Rewrites use Copy whenever the same operand has
// to appear in two positions of a rebuilt tree, so
// that no node ends up shared between two logical
// positions.
func Copy(e *Node) *Node {
	if e == nil {
		return nil
	}
	out := *e
	if e.Args != nil {
		out.Args = make([]*Node, len(e.Args))
		for i := range e.Args {
			out.Args[i] = Copy(e.Args[i])
		}
	}
	return &out
}

// Equivalent returns whether a and b are
// structurally identical trees.
func Equivalent(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Op == b.Op && a.Var == b.Var && a.Imm == b.Imm &&
		slices.EqualFunc(a.Args, b.Args, Equivalent)
}
