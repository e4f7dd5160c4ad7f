package problemgen

import "fmt"

func synthLCM(g *gen) (Question, error) {
	a, b := distinctPair(g, g.p.FirstDigits, g.p.SecondDigits)
	return custom(fmt.Sprintf("LCM(%d, %d) =", a, b), "LCM", IntAnswer(lcm(a, b)), ints(a, b)), nil
}

func synthGCD(g *gen) (Question, error) {
	a, b := distinctPair(g, g.p.FirstDigits, g.p.SecondDigits)
	return custom(fmt.Sprintf("GCD(%d, %d) =", a, b), "GCD", IntAnswer(gcd(a, b)), ints(a, b)), nil
}

// distinctPair draws two numbers of the given widths, bumping the second
// when both come out equal.
func distinctPair(g *gen, ad, bd int) (int64, int64) {
	a, b := g.digits(ad), g.digits(bd)
	if a == b {
		if b < maxWithDigits(bd) {
			b++
		} else {
			b = minWithDigits(bd)
		}
	}
	return a, b
}

func synthPercentage(g *gen) (Question, error) {
	p := g.between(int64(g.p.PercentMin), int64(g.p.PercentMax))
	n := g.digits(g.p.NumberDigits)
	return custom(fmt.Sprintf("%d%% of %d =", p, n), "%", RoundedAnswer(p*n, 100, 2), ints(p, n)), nil
}
