package problemgen

import (
	"fmt"
	"strconv"
)

func synthMultiplicationLevel4(g *gen) (Question, error) {
	return times(g.digits(g.p.MultiplicandDigits), g.digits(g.p.MultiplierDigits)), nil
}

// synthMultiplyByRepdigit multiplies by a repdigit of MultiplierDigits
// digits, e.g. 1111 or 55555.
func synthMultiplyByRepdigit(g *gen) (Question, error) {
	n := g.digits(g.p.MultiplicandDigits)
	m := repdigit(g.scaled(9)+1, g.p.MultiplierDigits)
	return times(n, m), nil
}

// tenthsOf draws a d-digit whole part and one decimal place.
func tenthsOf(g *gen, d int) int64 {
	return g.digits(d)*10 + g.scaled(10)
}

func synthVedicDecimalAddSub(g *gen) (Question, error) {
	a, b := tenthsOf(g, g.p.Digits), tenthsOf(g, g.p.Digits)
	if g.chance(0.5) {
		return inline("+", DecimalAnswer(a+b, 1), []Decimal{Tenths(a), Tenths(b)}), nil
	}
	if a < b {
		a, b = b, a
	}
	return inline("-", DecimalAnswer(a-b, 1), []Decimal{Tenths(a), Tenths(b)}), nil
}

// synthFunWith5Level4: w.d × w.(10-d) or ab·c × ab·(10-c).
func synthFunWith5Level4(g *gen) (Question, error) {
	if pickCase(g.Stream, g.p.Case, "decimal", "triple") == "decimal" {
		w := g.scaled(9) + 1
		d := g.scaled(5) + 1
		a, b := w*10+d, w*10+10-d
		return inline("×", DecimalAnswer(a*b, 2), []Decimal{Tenths(a), Tenths(b)}), nil
	}
	base := g.digits(2)
	last := g.scaled(5) + 1
	return times(base*10+last, base*10+10-last), nil
}

// synthFunWith10Level4: shared decimal part, or leading digits summing to
// ten with shared last two digits.
func synthFunWith10Level4(g *gen) (Question, error) {
	if pickCase(g.Stream, g.p.Case, "decimal", "triple") == "decimal" {
		w1, w2 := g.scaled(9)+1, g.scaled(9)+1
		d := g.scaled(10)
		a, b := w1*10+d, w2*10+d
		return inline("×", DecimalAnswer(a*b, 2), []Decimal{Tenths(a), Tenths(b)}), nil
	}
	f := g.scaled(9) + 1
	tail := g.scaled(90) + 10
	return times(f*100+tail, (10-f)*100+tail), nil
}

// synthFindX builds a one-step or two-step linear equation in x. The
// per-step operator list records the equation shape.
func synthFindX(g *gen) (Question, error) {
	findX := func(text string, x int64, op string, operands ...int64) Question {
		q := custom(text, "=", IntAnswer(x), ints(operands...))
		q.Operators = []string{op}
		return q
	}

	switch g.intn(4) {
	case 0:
		b, x := g.scaled(50)+10, g.scaled(50)+10
		return findX(fmt.Sprintf("x + %d = %d", b, x+b), x, "+", b, x+b), nil
	case 1:
		b, x := g.scaled(50)+10, g.scaled(50)+30
		return findX(fmt.Sprintf("x - %d = %d", b, x-b), x, "-", b, x-b), nil
	case 2:
		a, x, b := g.scaled(8)+2, g.scaled(20)+5, g.scaled(50)+10
		return findX(fmt.Sprintf("%dx + %d = %d", a, b, a*x+b), x, "+", a, b, a*x+b), nil
	default:
		a, x, b := g.scaled(8)+2, g.scaled(20)+5, g.scaled(50)+10
		if c := a*x - b; c >= 0 {
			return findX(fmt.Sprintf("%dx - %d = %d", a, b, c), x, "-", a, b, c), nil
		}
		return findX(fmt.Sprintf("%dx + %d = %d", a, b, a*x+b), x, "+", a, b, a*x+b), nil
	}
}

// synthHCF draws two multiples of a shared factor.
func synthHCF(g *gen) (Question, error) {
	f := g.scaled(20) + 2
	a, b := f*(g.scaled(20)+1), f*(g.scaled(20)+1)
	return custom(fmt.Sprintf("HCF(%d, %d) =", a, b), "HCF", IntAnswer(gcd(a, b)), ints(a, b)), nil
}

func synthLCMLevel4(g *gen) (Question, error) {
	a, b := g.scaled(200)+1, g.scaled(200)+1
	return custom(fmt.Sprintf("LCM(%d, %d) =", a, b), "LCM", IntAnswer(lcm(a, b)), ints(a, b)), nil
}

func oneToNine(g *gen) int64 { return g.scaled(9) + 1 }

func synthFractionMultiplication(g *gen) (Question, error) {
	if g.intn(3) == 1 {
		n1, d1, n2, d2 := oneToNine(g), oneToNine(g), oneToNine(g), oneToNine(g)
		return fractionPair("×", n1, d1, n2, d2, FractionAnswer(n1*n2, d1*d2)), nil
	}
	w, n, d := oneToNine(g), oneToNine(g), oneToNine(g)
	return wholeTimesFraction("×", w, n, d, FractionAnswer(w*n, d)), nil
}

func synthFractionDivision(g *gen) (Question, error) {
	if g.intn(2) == 0 {
		w, n, d := oneToNine(g), oneToNine(g), oneToNine(g)
		return wholeTimesFraction("÷", w, n, d, FractionAnswer(w*d, n)), nil
	}
	n1, d1, n2, d2 := oneToNine(g), oneToNine(g), oneToNine(g), oneToNine(g)
	return fractionPair("÷", n1, d1, n2, d2, FractionAnswer(n1*d2, d1*n2)), nil
}

func wholeTimesFraction(op string, w, n, d int64, ans Answer) Question {
	return custom(fmt.Sprintf("%d %s %d/%d =", w, op, n, d), op, ans, ints(w, n, d))
}

// synthCheckDivisibilityLevel4 tests 2-5 digit numbers against 7, 11 or a
// divisor in [12, 39].
func synthCheckDivisibilityLevel4(g *gen) (Question, error) {
	c := g.p.Case
	if c != "by_7" && c != "by_11" {
		switch {
		case g.chance(0.33):
			c = "by_7"
		case g.chance(0.5):
			c = "by_11"
		}
	}

	var k int64
	switch c {
	case "by_7":
		k = 7
	case "by_11":
		k = 11
	default:
		k = g.scaled(28) + 12
	}
	n := g.digits(int(g.scaled(4)) + 2)
	return custom(fmt.Sprintf("%d by %d", n, k), "?", YesNoAnswer(n%k == 0), ints(n, k)), nil
}

func synthDivisionWithoutRemainder(g *gen) (Question, error) {
	return exactDivision(g, g.p.DividendDigits, g.p.DivisorDigits)
}

func fallbackDivisionWithoutRemainder(g *gen) (Question, error) {
	dd := g.p.DividendDigits
	return exactDivision(g, dd, min(g.p.DivisorDigits, dd))
}

func roundedDivision(a, b int64) Question {
	return inline("÷", RoundedAnswer(a, b, 2), ints(a, b))
}

func synthDivisionWithRemainder(g *gen) (Question, error) {
	b := g.digits(g.p.DivisorDigits)
	return roundedDivision(g.digits(g.p.DividendDigits), b), nil
}

func synthDivideBy11To99(g *gen) (Question, error) {
	b := (g.scaled(9) + 1) * 11
	return roundedDivision(g.digits(g.p.DividendDigits), b), nil
}

// synthDivision9876 divides by a two-digit number ending in 9, 8, 7 or 6.
func synthDivision9876(g *gen) (Question, error) {
	last, _ := strconv.ParseInt(pickCase(g.Stream, g.p.Case, "9", "8", "7", "6"), 10, 64)
	b := (g.scaled(9)+1)*10 + last
	return roundedDivision(g.digits(int(g.scaled(3))+1), b), nil
}

func synthDivision91121(g *gen) (Question, error) {
	b, _ := strconv.ParseInt(pickCase(g.Stream, g.p.Case, "91", "121"), 10, 64)
	return roundedDivision(g.digits(int(g.scaled(4))+2), b), nil
}

func synthDigitalSum(g *gen) (Question, error) {
	n := g.digits(g.p.Digits)
	var s int64
	for m := n; m > 0; m /= 10 {
		s += m % 10
	}
	return custom(fmt.Sprintf("Digital Sum of %d =", n), "DS", IntAnswer(s), ints(n)), nil
}

func synthCubesBaseMethod(g *gen) (Question, error) {
	base := int64(100)
	if g.intn(2) == 1 {
		base = 1000
	}
	return cubed(base + g.scaled(20) - 10), nil
}

func synthCheckPerfectCube(g *gen) (Question, error) {
	check := func(n int64, yes bool) Question {
		return custom(fmt.Sprintf("Is %d a perfect cube?", n), "?", YesNoAnswer(yes), ints(n))
	}
	if g.chance(0.5) {
		r := g.scaled(50) + 10
		return check(r*r*r, true), nil
	}
	for range maxRedraws {
		n := g.digits(g.p.Digits)
		if r := icbrt(n); r*r*r != n {
			return check(n, false), nil
		}
	}
	return Question{}, errUnsatisfiable
}

// synthCubeRootLevel4 starts from a root in [10, 209] and moves it to the
// nearest root whose cube has the requested digit count.
func synthCubeRootLevel4(g *gen) (Question, error) {
	d := g.p.RootDigits
	lo, hi := icbrt(minWithDigits(d)-1)+1, icbrt(maxWithDigits(d))
	r := max(lo, min(hi, g.scaled(200)+10))
	n := r * r * r
	return custom(fmt.Sprintf("∛%d =", n), "∛", IntAnswer(r), ints(n)), nil
}

func synthSquareRootLevel4(g *gen) (Question, error) {
	d := g.p.RootDigits
	lo, hi := isqrt(minWithDigits(d)-1)+1, isqrt(maxWithDigits(d))
	r := max(lo, min(hi, g.scaled(1000)+10))
	n := r * r
	return custom(fmt.Sprintf("√%d =", n), "√", IntAnswer(r), ints(n)), nil
}

var bodmasShapes = map[string][]string{
	"easy":   {"+", "×"},
	"medium": {"×", "+", "×"},
	"hard":   {"+", "×", "-"},
}

// synthBodmas evaluates multiplication before addition and subtraction.
func synthBodmas(g *gen) (Question, error) {
	level := g.p.Case
	switch _, ok := bodmasShapes[level]; {
	case level == caseMix:
		level = pick(g.Stream, []string{"easy", "medium", "hard"})
	case !ok:
		level = "hard"
	}

	var text string
	var ans int64
	var operands []int64
	switch level {
	case "easy":
		a, b, c := g.scaled(20)+1, g.scaled(10)+1, g.scaled(10)+1
		text, ans, operands = fmt.Sprintf("%d + %d × %d =", a, b, c), a+b*c, []int64{a, b, c}
	case "medium":
		a, b, c, d := g.scaled(10)+1, g.scaled(10)+1, g.scaled(10)+1, g.scaled(10)+1
		text, ans, operands = fmt.Sprintf("%d × %d + %d × %d =", a, b, c, d), a*b+c*d, []int64{a, b, c, d}
	default:
		a, b, c, d := g.scaled(50)+10, g.scaled(10)+1, g.scaled(10)+1, g.scaled(20)+1
		text, ans, operands = fmt.Sprintf("%d + %d × %d - %d =", a, b, c, d), a+b*c-d, []int64{a, b, c, d}
	}
	q := custom(text, "=", IntAnswer(ans), ints(operands...))
	q.Operators = append([]string(nil), bodmasShapes[level]...)
	return q, nil
}
