package problemgen

import "fmt"

// repeatedMultiplier multiplies by 111, 222, ... 999.
func synthMultiplyBy111To999(g *gen) (Question, error) {
	m := repdigit(g.scaled(9)+1, 3)
	return times(g.digits(g.p.Digits), m), nil
}

// multiplierRange multiplies by a value drawn from [lo, lo+span).
func multiplierRange(lo, span int64) synthFunc {
	return func(g *gen) (Question, error) {
		m := lo + g.scaled(span)
		return times(g.digits(g.p.Digits), m), nil
	}
}

var multiplicationShapes = map[string][2]int{
	"2x2": {2, 2},
	"3x2": {3, 2},
	"4x2": {4, 2},
	"3x3": {3, 3},
	"4x3": {4, 3},
	"4x4": {4, 4},
}

func synthVedicMultiplication(g *gen) (Question, error) {
	shape, ok := multiplicationShapes[g.p.Case]
	if !ok {
		shape = multiplicationShapes[pick(g.Stream, []string{"2x2", "3x2", "4x2", "3x3", "4x3", "4x4"})]
	}
	return times(g.digits(shape[0]), g.digits(shape[1])), nil
}

func synthMixMultiplication(g *gen) (Question, error) {
	a, b, c := g.digits(2), g.digits(2), g.digits(2)
	return inline("×", IntAnswer(a*b*c), ints(a, b, c)), nil
}

// synthCombinedOperation: (2-digit × 1-digit) + (2-digit × 1-digit).
func synthCombinedOperation(g *gen) (Question, error) {
	a, b := g.digits(2), g.digits(1)
	c, d := g.digits(2), g.digits(1)
	text := fmt.Sprintf("(%d × %d) + (%d × %d) =", a, b, c, d)
	return custom(text, "+", IntAnswer(a*b+c*d), ints(a, b, c, d)), nil
}

func synthFractionSimplification(g *gen) (Question, error) {
	f := g.scaled(8) + 2
	nm, dm := g.scaled(8)+2, g.scaled(8)+2
	for i := 0; nm == dm; i++ {
		if i == maxRedraws {
			return Question{}, errUnsatisfiable
		}
		nm = g.scaled(8) + 2
	}
	n, d := f*nm, f*dm
	return custom(fmt.Sprintf("%d/%d =", n, d), "/", FractionAnswer(n, d), ints(n, d)), nil
}

// properFraction draws a denominator in [2, 91] and a numerator below it.
func properFraction(g *gen) (num, den int64) {
	den = g.scaled(90) + 2
	return g.scaled(den-1) + 1, den
}

func distinctDenominators(g *gen) (int64, int64, error) {
	d1, d2 := g.scaled(90)+2, g.scaled(90)+2
	for i := 0; d1 == d2; i++ {
		if i == maxRedraws {
			return 0, 0, errUnsatisfiable
		}
		d2 = g.scaled(90) + 2
	}
	return d1, d2, nil
}

func synthFractionAddition(g *gen) (Question, error) {
	switch pickCase(g.Stream, g.p.Case, "direct", "different_denominator", "whole") {
	case "direct":
		den := g.scaled(90) + 2
		n1, n2 := g.scaled(den-1)+1, g.scaled(den-1)+1
		return fractionPair("+", n1, den, n2, den, FractionAnswer(n1+n2, den)), nil
	case "different_denominator":
		d1, d2, err := distinctDenominators(g)
		if err != nil {
			return Question{}, err
		}
		n1, n2 := g.scaled(d1-1)+1, g.scaled(d2-1)+1
		return fractionPair("+", n1, d1, n2, d2, FractionAnswer(n1*d2+n2*d1, d1*d2)), nil
	default:
		w := g.digits(int(g.scaled(3)) + 1)
		n, d := properFraction(g)
		return wholeAndFraction("+", w, n, d, FractionAnswer(w*d+n, d)), nil
	}
}

// synthFractionSubtraction orders the operands so the result is never
// negative.
func synthFractionSubtraction(g *gen) (Question, error) {
	switch pickCase(g.Stream, g.p.Case, "direct", "different_denominator", "whole") {
	case "direct":
		den := g.scaled(90) + 2
		n1, n2 := g.scaled(den-1)+1, g.scaled(den-1)+1
		if n1 < n2 {
			n1, n2 = n2, n1
		}
		return fractionPair("-", n1, den, n2, den, FractionAnswer(n1-n2, den)), nil
	case "different_denominator":
		d1, d2, err := distinctDenominators(g)
		if err != nil {
			return Question{}, err
		}
		n1, n2 := g.scaled(d1-1)+1, g.scaled(d2-1)+1
		if n1*d2 < n2*d1 {
			n1, d1, n2, d2 = n2, d2, n1, d1
		}
		return fractionPair("-", n1, d1, n2, d2, FractionAnswer(n1*d2-n2*d1, d1*d2)), nil
	default:
		w := g.digits(int(g.scaled(3)) + 1)
		n, d := properFraction(g)
		return wholeAndFraction("-", w, n, d, FractionAnswer(w*d-n, d)), nil
	}
}

func fractionPair(op string, n1, d1, n2, d2 int64, ans Answer) Question {
	text := fmt.Sprintf("%d/%d %s %d/%d =", n1, d1, op, n2, d2)
	return custom(text, op, ans, ints(n1, d1, n2, d2))
}

func wholeAndFraction(op string, w, n, d int64, ans Answer) Question {
	text := fmt.Sprintf("%d %s %d/%d =", w, op, n, d)
	return custom(text, op, ans, ints(w, n, d))
}

// synthSquaresLevel3 squares a repdigit such as 333.
func synthSquaresLevel3(g *gen) (Question, error) {
	return squared(repdigit(g.scaled(9)+1, g.p.Digits)), nil
}

func synthPercentageLevel3(g *gen) (Question, error) {
	p := g.scaled(300) + 1
	n := g.digits(g.p.Digits)
	return custom(fmt.Sprintf("%d%% of %d =", p, n), "%", divisionAnswer(p*n, 100), ints(p, n)), nil
}

func synthSquaresAddition(g *gen) (Question, error) {
	a, b := g.digits(g.p.Digits), g.digits(g.p.Digits)
	return custom(fmt.Sprintf("%d² + %d² =", a, b), "+", IntAnswer(a*a+b*b), ints(a, b)), nil
}

// synthSquaresSubtraction uses consecutive numbers: a² - (a-1)².
func synthSquaresSubtraction(g *gen) (Question, error) {
	a := g.digits(g.p.Digits)
	b := a - 1
	return custom(fmt.Sprintf("%d² - %d² =", a, b), "-", IntAnswer(a*a-b*b), ints(a, b)), nil
}

func synthSquaresDeviation(g *gen) (Question, error) {
	return squared(g.digits(int(g.scaled(2)) + 2)), nil
}

func synthCubes(g *gen) (Question, error) {
	return cubed(g.digits(2)), nil
}

func synthCheckDivisibility(g *gen) (Question, error) {
	k := int64(g.p.DivisorCheck)
	if k == 0 {
		k = int64(pick(g.Stream, divisibilityDivisors))
	}
	n := g.digits(g.p.Digits)
	return custom(fmt.Sprintf("%d By %d", n, k), "?", YesNoAnswer(n%k == 0), ints(n, k)), nil
}

// synthMissingNumbers hides one digit of a 2×2 product; the answer is the
// hidden digit.
func synthMissingNumbers(g *gen) (Question, error) {
	a, b := g.digits(2), g.digits(2)
	p := a * b
	var text string
	var hidden int64
	switch g.intn(4) {
	case 0:
		text, hidden = fmt.Sprintf("_%d × %d = %d", a%10, b, p), a/10
	case 1:
		text, hidden = fmt.Sprintf("%d_ × %d = %d", a/10, b, p), a%10
	case 2:
		text, hidden = fmt.Sprintf("%d × _%d = %d", a, b%10, p), b/10
	default:
		text, hidden = fmt.Sprintf("%d × %d_ = %d", a, b/10, p), b%10
	}
	return custom(text, "×", IntAnswer(hidden), ints(a, b)), nil
}
