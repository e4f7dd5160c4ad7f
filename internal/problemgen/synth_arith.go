package problemgen

import "math"

// Multiplication, division and roots.

func synthMultiplication(g *gen) (Question, error) {
	ad, bd := g.p.MultiplicandDigits, g.p.MultiplierDigits
	a, b := g.digits(ad), g.digits(bd)
	if ad >= 10 || bd >= 10 {
		a, b = trimTrailingZeros(g, a), trimTrailingZeros(g, b)
	}
	return inline("×", IntAnswer(a*b), ints(a, b)), nil
}

// trimTrailingZeros keeps at most one trailing zero, replacing the rest with
// non-zero digits. The digit count is unchanged.
func trimTrailingZeros(g *gen, n int64) int64 {
	tz := 0
	for m := n; m != 0 && m%10 == 0; m /= 10 {
		tz++
	}
	for k := tz - 1; k >= 1; k-- {
		n += (g.scaled(9) + 1) * pow10(k)
	}
	return n
}

func synthDivision(g *gen) (Question, error) {
	return exactDivision(g, g.p.DividendDigits, g.p.DivisorDigits)
}

// fallbackDivision narrows the divisor so a digit-exact dividend always
// exists.
func fallbackDivision(g *gen) (Question, error) {
	dd := g.p.DividendDigits
	return exactDivision(g, dd, min(g.p.DivisorDigits, dd))
}

// exactDivision picks a quotient uniformly from the contiguous range of
// quotients whose dividend has exactly dd digits.
func exactDivision(g *gen, dd, ds int) (Question, error) {
	b := g.digits(ds)
	lo, hi := minWithDigits(dd), maxWithDigits(dd)
	qlo := max(1, (lo+b-1)/b)
	qhi := hi / b
	if qlo > qhi {
		return Question{}, errUnsatisfiable
	}
	q := g.between(qlo, qhi)
	return inline("÷", IntAnswer(q), ints(q*b, b)), nil
}

func synthDecimalMultiplication(g *gen) (Question, error) {
	ad, bd := g.p.MultiplicandDigits, g.p.MultiplierDigits
	if ad == drawn {
		ad = int(g.scaled(3)) + 1
	}
	if bd == drawn {
		bd = int(g.scaled(2)) + 1
	}

	a := g.between(minWithDigits(ad), maxWithDigits(ad))*10 + g.scaled(10)
	if bd == 0 {
		b := g.scaled(9) + 1
		return inline("×", DecimalAnswer(a*b, 1), []Decimal{Tenths(a), Int(b)}), nil
	}
	b := g.between(minWithDigits(bd), maxWithDigits(bd))*10 + g.scaled(10)
	return inline("×", DecimalAnswer(a*b, 2), []Decimal{Tenths(a), Tenths(b)}), nil
}

func synthDecimalDivision(g *gen) (Question, error) {
	dd, ds := g.p.DividendDigits, g.p.DivisorDigits
	if dd == drawn {
		dd = int(g.scaled(3)) + 1
	}
	if ds == drawn {
		ds = int(g.scaled(2)) + 1
	}
	a, b := g.digits(dd), g.digits(ds)
	return inline("÷", RoundedAnswer(a, b, 2), ints(a, b)), nil
}

// Roots. The root is chosen inside the band of roots whose power has the
// requested digit count, offset by the slot so neighbouring questions
// spread out.

func synthSquareRoot(g *gen) (Question, error) {
	d := g.p.RootDigits
	lo, hi := isqrt(minWithDigits(d))+1, isqrt(maxWithDigits(d))
	root := rootInBand(g, lo, hi, 7)
	return custom("√"+Int(root*root).String()+" =", "√", IntAnswer(root), ints(root*root)), nil
}

func synthCubeRoot(g *gen) (Question, error) {
	d := g.p.RootDigits
	lo, hi := icbrt(minWithDigits(d))+1, icbrt(maxWithDigits(d))
	root := rootInBand(g, lo, hi, 11)
	n := root * root * root
	return custom("∛"+Int(n).String()+" =", "∛", IntAnswer(root), ints(n)), nil
}

func rootInBand(g *gen, lo, hi int64, stride int) int64 {
	if hi < lo {
		return lo
	}
	span := hi - lo + 1
	base := mod(int64(g.slot)*int64(stride), span)
	return lo + (base+g.scaled(span))%span
}

// divisionAnswer returns num/den as an exact decimal when it terminates
// and as a reduced fraction otherwise.
func divisionAnswer(num, den int64) Answer {
	f := FractionAnswer(num, den)
	if f.Type != AnswerTypeFraction {
		return f
	}
	for p := 1; p <= maxSafeDigits; p++ {
		scale := pow10(p)
		if scale%f.Den != 0 {
			continue
		}
		k := scale / f.Den
		if abs(f.Num) > math.MaxInt64/k {
			break
		}
		return DecimalAnswer(f.Num*k, p)
	}
	return f
}
