package problemgen

import (
	"fmt"
	"strconv"
)

// maxRedraws bounds the "draw again until it is not divisible" loops.
const maxRedraws = 16

func synthFunWith9(g *gen) (Question, error) {
	c := pickCase(g.Stream, g.p.Case, "equal", "less_than", "greater_than")
	d := g.p.Digits
	n := g.digits(d)
	switch c {
	case "less_than":
		return times(n, repdigit(9, d+1)), nil
	case "greater_than":
		return times(n, repdigit(9, max(1, d-1))), nil
	default:
		return times(n, repdigit(9, d)), nil
	}
}

// synthFunWith5: same tens digit, units summing to ten.
func synthFunWith5(g *gen) (Question, error) {
	tens := g.scaled(9) + 1
	u := g.scaled(10)
	return times(tens*10+u, tens*10+10-u), nil
}

// synthFunWith10: tens digits summing to ten, same units digit.
func synthFunWith10(g *gen) (Question, error) {
	t1 := g.scaled(9) + 1
	u := g.scaled(10)
	return times(t1*10+u, (10-t1)*10+u), nil
}

// multiplierSet multiplies by one of a fixed set of multipliers.
func multiplierSet(ks ...int64) synthFunc {
	return func(g *gen) (Question, error) {
		k := pick(g.Stream, ks)
		return times(g.digits(g.p.Digits), k), nil
	}
}

// divisorSet divides by one of a fixed set of divisors, never evenly.
func divisorSet(ks ...int64) synthFunc {
	return func(g *gen) (Question, error) {
		k := pick(g.Stream, ks)
		n, err := notDivisible(g, g.p.Digits, k)
		if err != nil {
			return Question{}, err
		}
		return divideBy(n, k), nil
	}
}

// notDivisible draws a d-digit number that k does not divide.
func notDivisible(g *gen, d int, k int64) (int64, error) {
	for range maxRedraws {
		if n := g.digits(d); n%k != 0 {
			return n, nil
		}
	}
	return 0, errUnsatisfiable
}

func synthSubtractionPowersOf10(g *gen) (Question, error) {
	power := g.p.PowerOf10
	if power == 0 {
		power = int(g.scaled(5)) + 2
	}
	base := pow10(power)
	n := g.scaled(base-1) + 1
	return inline("-", IntAnswer(base-n), ints(base, n)), nil
}

func synthSpecialProductsBase1000(g *gen) (Question, error) {
	return times(1000+g.scaled(20)-10, 1000+g.scaled(20)-10), nil
}

// synthCrossMultiply puts one number above the base and one below it.
func synthCrossMultiply(g *gen) (Question, error) {
	base := g.p.Base
	off := min(base/10, 50)
	a := base + g.scaled(off) + 1
	b := base - (g.scaled(off) + 1)
	return times(a, b), nil
}

func synthCrossBase(g *gen) (Question, error) {
	return times(1000+g.scaled(20)-10, 100+g.scaled(20)-10), nil
}

func synthCrossBase50(g *gen) (Question, error) {
	return times(50+g.scaled(20)-10, 50+g.scaled(20)-10), nil
}

func synthDuplex(g *gen) (Question, error) {
	n := g.digits(g.p.Digits)
	return custom(fmt.Sprintf("D of %d", n), "D", IntAnswer(duplex(n)), ints(n)), nil
}

// duplex sums twice the products of digit pairs mirrored around the middle,
// plus the square of the middle digit for odd lengths.
func duplex(n int64) int64 {
	s := strconv.FormatInt(n, 10)
	var d int64
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		d += 2 * int64(s[i]-'0') * int64(s[j]-'0')
	}
	if len(s)%2 == 1 {
		m := int64(s[len(s)/2] - '0')
		d += m * m
	}
	return d
}

func synthSquaresDuplex(g *gen) (Question, error) {
	return squared(g.digits(g.p.Digits)), nil
}

func synthDivideWithRemainder(g *gen) (Question, error) {
	k := g.scaled(8) + 2
	n, err := notDivisible(g, g.p.Digits, k)
	if err != nil {
		return Question{}, err
	}
	return divideBy(n, k), nil
}

func synthDivideBy9s(g *gen) (Question, error) {
	c := pickCase(g.Stream, g.p.Case, "equal", "less_than")
	d := g.p.Digits
	n := g.digits(d)
	if c == "less_than" {
		return divideBy(n, repdigit(9, d+1)), nil
	}
	return divideBy(n, repdigit(9, d)), nil
}

func synthDivideBy11s(g *gen) (Question, error) {
	c := pickCase(g.Stream, g.p.Case, "equal", "less_than")
	d := g.p.Digits
	n := g.digits(d)
	if c == "less_than" {
		return divideBy(n, repdigit(1, d+2)), nil
	}
	return divideBy(n, repdigit(1, d+1)), nil
}

func synthDivideBy7(g *gen) (Question, error) {
	n, err := notDivisible(g, g.p.Digits, 7)
	if err != nil {
		return Question{}, err
	}
	return divideBy(n, 7), nil
}
