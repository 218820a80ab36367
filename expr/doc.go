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

// Package expr implements the AST representation
// of compiled filter expressions.
//
// Each node in the tree is a Node value tagged
// with an Op; the tree is navigated and rebuilt
// with explicit matches on the Op rather than
// through a per-operator type hierarchy.
//
// The critical entry points for this package are
// Walk, Check, and ToTwoValued. Those routines
// allow a caller to examine the AST, collect
// diagnostics, or rewrite SQL-style three-valued
// comparison logic into the two-valued boolean
// logic expected by later optimizer stages.
package expr
