package problemgen

import (
	"slices"
	"strings"
)

// Signature is the canonical duplicate-detection key of a question.
type Signature string

// SignatureOf returns "operator|o1,o2,...", with the operands sorted for
// types where order does not matter, and "|op1,op2,..." appended when the
// question carries a per-step operator list.
func SignatureOf(q Question) Signature {
	operands := slices.Clone(q.Operands)
	if !registry[q.Type].ordered {
		slices.SortFunc(operands, compareDecimal)
	}

	var b strings.Builder
	b.WriteString(q.Operator)
	b.WriteByte('|')
	for i, o := range operands {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(o.String())
	}
	if len(q.Operators) > 0 {
		b.WriteByte('|')
		b.WriteString(strings.Join(q.Operators, ","))
	}
	return Signature(b.String())
}

// compareDecimal orders by value, exactly.
func compareDecimal(a, b Decimal) int {
	p := max(a.Places, b.Places)
	x, y := a.Units*pow10(p-a.Places), b.Units*pow10(p-b.Places)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return a.Places - b.Places
}

// signatureSet tracks the signatures accepted in one block.
type signatureSet map[Signature]struct{}

// add records sig and reports whether it was new.
func (s signatureSet) add(sig Signature) bool {
	if _, dup := s[sig]; dup {
		return false
	}
	s[sig] = struct{}{}
	return true
}
