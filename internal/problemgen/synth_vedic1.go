package problemgen

import "fmt"

// Shared shapes of the fast-calculation drills.

func times(a, b int64) Question {
	return inline("×", IntAnswer(a*b), ints(a, b))
}

func divideBy(a, b int64) Question {
	return inline("÷", divisionAnswer(a, b), ints(a, b))
}

func squared(n int64) Question {
	return custom(fmt.Sprintf("%d² =", n), "²", IntAnswer(n*n), ints(n))
}

func cubed(n int64) Question {
	return custom(fmt.Sprintf("%d³ =", n), "³", IntAnswer(n*n*n), ints(n))
}

// fixedMultiplier multiplies a digit-exact number by k.
func fixedMultiplier(k int64) synthFunc {
	return func(g *gen) (Question, error) {
		return times(g.digits(g.p.Digits), k), nil
	}
}

// fixedDivisor divides a digit-exact number by k.
func fixedDivisor(k int64) synthFunc {
	return func(g *gen) (Question, error) {
		return divideBy(g.digits(g.p.Digits), k), nil
	}
}

// Level 1

func synthSubtractionComplement(g *gen) (Question, error) {
	base := g.p.Base
	n := g.scaled(base-1) + 1
	return custom(fmt.Sprintf("C of %d (base %d)", n, base), "C", IntAnswer(base-n), ints(n)), nil
}

func synthSubtractionNormal(g *gen) (Question, error) {
	base := g.p.Base
	n := g.scaled(base-1) + 1
	return inline("-", IntAnswer(base-n), ints(base, n)), nil
}

func synthMultiplyBy12To19(g *gen) (Question, error) {
	n := g.digits(g.p.Digits)
	m := int64(g.p.Multiplier)
	if m == 0 {
		m = g.scaled(8) + 12
	}
	return times(n, m), nil
}

func synthMultiplyBy21To91(g *gen) (Question, error) {
	n := g.digits(g.p.Digits)
	m := int64(g.p.Multiplier)
	if m == 0 {
		m = g.scaled(71) + 21
	}
	return times(n, m), nil
}

// synthMultiplyBy6 uses an even multiplicand.
func synthMultiplyBy6(g *gen) (Question, error) {
	n := g.digits(g.p.Digits)
	if n%2 == 1 {
		if n+1 <= maxWithDigits(g.p.Digits) {
			n++
		} else {
			n--
		}
	}
	return times(n, 6), nil
}

// nearBase draws two numbers on the same side of a base: both from
// [below, below+10) or both from [above, above+9).
func nearBase(g *gen, below, above int64) Question {
	if g.intn(2) == 0 {
		return times(below+g.scaled(10), below+g.scaled(10))
	}
	return times(above+g.scaled(9), above+g.scaled(9))
}

func synthSpecialProductsBase100(g *gen) (Question, error) { return nearBase(g, 90, 101), nil }
func synthSpecialProductsBase50(g *gen) (Question, error)  { return nearBase(g, 40, 51), nil }

func synthVedicAddition(g *gen) (Question, error) {
	a, b := g.digits(g.p.FirstDigits), g.digits(g.p.SecondDigits)
	return inline("+", IntAnswer(a+b), ints(a, b)), nil
}

func synthDivideSingleDigit(g *gen) (Question, error) {
	n := g.digits(g.p.Digits)
	d := int64(g.p.Divisor)
	if d == 0 {
		d = g.scaled(8) + 2
	}
	return divideBy(n, d), nil
}

func synthSquaresBase10(g *gen) (Question, error) {
	tens, ones := g.scaled(9)+1, g.scaled(9)+1
	return squared(tens*10 + ones), nil
}

func synthSquaresBase100(g *gen) (Question, error) {
	return squared((g.scaled(9)+1)*100 + g.scaled(10)), nil
}

func synthSquaresBase1000(g *gen) (Question, error) {
	return squared((g.scaled(9)+1)*1000 + g.scaled(10)), nil
}

// The squares fallbacks derive the number from the slot alone so that
// exhausted slots still differ from each other.

func fallbackSquaresBase10(g *gen) (Question, error) {
	slot := int64(g.slot)
	return squared((mod(slot, 9)+1)*10 + mod(slot*3, 9) + 1), nil
}

func fallbackSquaresBase100(g *gen) (Question, error) {
	slot := int64(g.slot)
	return squared((mod(slot, 9)+1)*100 + mod(slot*3, 10)), nil
}

func fallbackSquaresBase1000(g *gen) (Question, error) {
	slot := int64(g.slot)
	return squared((mod(slot, 9)+1)*1000 + mod(slot*3, 10)), nil
}

// synthTableRow is the single-question form of a times table. Whole tables
// are laid out by the assembler.
func synthTableRow(g *gen) (Question, error) {
	n := int64(g.p.TableNumber)
	if n == 0 {
		n = g.scaled(99) + 1
	}
	return tableRow(n, 1), nil
}

func tableRow(n, k int64) Question {
	return times(n, k)
}
