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
	"bytes"
	"fmt"
	"strconv"

	"github.com/dchest/siphash"
)

const (
	k0, k1 = 0, 1
)

// Hash returns a 64-bit structural hash of e.
// Equivalent trees hash to the same value, so the
// hash can key caches of rewritten expressions.
func Hash(e *Node) uint64 {
	var buf bytes.Buffer
	writeHash(&buf, e)
	return siphash.Hash(k0, k1, buf.Bytes())
}

func writeHash(dst *bytes.Buffer, e *Node) {
	if e == nil {
		dst.WriteByte(0xff)
		return
	}
	dst.WriteByte(byte(e.Op))
	if e.Op == OpVar {
		dst.WriteString(strconv.Itoa(e.Var))
	}
	if e.Imm != nil {
		// the dynamic type participates so that
		// e.g. int64(1) and "1" hash differently
		fmt.Fprintf(dst, "%T=%v", e.Imm, e.Imm)
	}
	dst.WriteByte('(')
	for _, a := range e.Args {
		writeHash(dst, a)
	}
	dst.WriteByte(')')
}
