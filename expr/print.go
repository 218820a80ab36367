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
	"strconv"
	"strings"
)

// ToString returns a SQL-flavored rendering of e
// for diagnostics and test output. The rendering is
// fully parenthesized, so it is unambiguous even
// though it is not meant to be parsed back.
func ToString(e *Node) string {
	var sb strings.Builder
	writeNode(&sb, e)
	return sb.String()
}

func writeNode(sb *strings.Builder, e *Node) {
	if e == nil {
		sb.WriteString("<nil>")
		return
	}
	switch e.Op {
	case OpConst:
		writeImm(sb, e.Imm)
	case OpInternalConst:
		sb.WriteString("const(")
		writeImm(sb, e.Imm)
		sb.WriteByte(')')
	case OpNullSentinel:
		sb.WriteString("sentinel()")
	case OpNull:
		sb.WriteString("NULL")
	case OpVar:
		sb.WriteByte('$')
		sb.WriteString(strconv.Itoa(e.Var))
	case OpIsNull:
		writeNode(sb, e.Args[0])
		sb.WriteString(" IS NULL")
	case OpNot:
		sb.WriteString("NOT (")
		writeNode(sb, e.Args[0])
		sb.WriteByte(')')
	case OpAnd, OpOr, OpEq, OpNe:
		sb.WriteByte('(')
		writeNode(sb, e.Args[0])
		switch e.Op {
		case OpAnd:
			sb.WriteString(" AND ")
		case OpOr:
			sb.WriteString(" OR ")
		case OpEq:
			sb.WriteString(" = ")
		default:
			sb.WriteString(" <> ")
		}
		writeNode(sb, e.Args[1])
		sb.WriteByte(')')
	case OpCase:
		sb.WriteString("CASE WHEN ")
		writeNode(sb, e.Args[0])
		sb.WriteString(" THEN ")
		writeNode(sb, e.Args[1])
		sb.WriteString(" ELSE ")
		writeNode(sb, e.Args[2])
		sb.WriteString(" END")
	case OpOther:
		fmt.Fprintf(sb, "%v", e.Imm)
		sb.WriteByte('(')
		for i, a := range e.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeNode(sb, a)
		}
		sb.WriteByte(')')
	default:
		fmt.Fprintf(sb, "<%s>", e.Op)
	}
}

func writeImm(sb *strings.Builder, imm any) {
	switch v := imm.(type) {
	case bool:
		if v {
			sb.WriteString("TRUE")
		} else {
			sb.WriteString("FALSE")
		}
	case string:
		sb.WriteString(strconv.Quote(v))
	default:
		fmt.Fprintf(sb, "%v", v)
	}
}
