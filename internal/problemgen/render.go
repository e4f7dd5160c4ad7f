package problemgen

import "strings"

// gen is the context handed to a synthesis function for one attempt.
type gen struct {
	Stream
	slot int
	seed int64
	p    Params
}

func (g *gen) digits(d int) int64         { return DigitNumber(d, g.Stream) }
func (g *gen) between(lo, hi int64) int64 { return between(g.Stream, lo, hi) }
func (g *gen) intn(n int) int              { return intn(g.Stream, n) }
func (g *gen) chance(p float64) bool       { return chance(g.Stream, p) }

// scaled returns int(r*n) for a fresh draw r, the idiom most per-type rules
// are written in.
func (g *gen) scaled(n int64) int64 { return int64(g.Float64() * float64(n)) }

// ints converts integer operands to Decimals.
func ints(ns ...int64) []Decimal {
	out := make([]Decimal, len(ns))
	for i, n := range ns {
		out[i] = Int(n)
	}
	return out
}

// stacked builds a vertical question with a single operator.
func stacked(op string, ans Answer, operands []Decimal) Question {
	return Question{
		Text:        verticalText(op, nil, operands),
		Operands:    operands,
		Operator:    op,
		Answer:      ans,
		Orientation: Vertical,
	}
}

// chain builds a vertical question with one operator per step. ops has one
// entry per operand after the first.
func chain(op string, ops []string, ans Answer, operands []Decimal) Question {
	q := stacked(op, ans, operands)
	q.Operators = ops
	q.Text = verticalText(op, ops, operands)
	return q
}

// inline builds a horizontal question rendered as "a op b =".
func inline(op string, ans Answer, operands []Decimal) Question {
	return Question{
		Text:        horizontalText(op, operands),
		Operands:    operands,
		Operator:    op,
		Answer:      ans,
		Orientation: Horizontal,
	}
}

// custom builds a horizontal question with family-specific text.
func custom(text, op string, ans Answer, operands []Decimal) Question {
	q := inline(op, ans, operands)
	q.Text = text
	return q
}

func verticalText(op string, ops []string, operands []Decimal) string {
	lines := make([]string, len(operands))
	for i, o := range operands {
		s := o.String()
		switch {
		case i == 0:
		case len(ops) >= i:
			s = ops[i-1] + " " + s
		case op == "-":
			s = "- " + s
		case i == len(operands)-1:
			s = op + " " + s
		}
		lines[i] = s
	}
	return strings.Join(lines, "\n")
}

func horizontalText(op string, operands []Decimal) string {
	parts := make([]string, len(operands))
	for i, o := range operands {
		parts[i] = o.String()
	}
	return strings.Join(parts, " "+op+" ") + " ="
}
