package problemgen

// Chained add/sub family: vertical questions with one operand per row.

func synthAddition(g *gen) (Question, error) {
	d := g.p.Digits
	lo, hi := minWithDigits(d), maxWithDigits(d)
	mid := (lo + hi) / 2

	// Distribution: uniform, clustered around the middle, or split halves.
	dist := g.intn(3)
	ns := make([]int64, g.p.Rows)
	for i := range ns {
		var n int64
		switch dist {
		case 0:
			n = g.digits(d)
		case 1:
			spread := (hi - lo) / 4
			off := int64((g.Float64() + g.Float64() - 1) * float64(spread))
			n = max(lo, min(hi, mid+off))
		default:
			if g.chance(0.5) {
				n = g.between(lo, mid)
			} else {
				n = g.between(mid, hi)
			}
		}
		ns[i] = n
	}
	for i := len(ns) - 1; i > 0; i-- {
		j := g.intn(i + 1)
		ns[i], ns[j] = ns[j], ns[i]
	}
	return stacked("+", IntAnswer(sum(ns)), ints(ns...)), nil
}

// synthSubtraction draws the subtrahends first and then a minuend large
// enough to keep the result non-negative.
func synthSubtraction(g *gen) (Question, error) {
	d := g.p.Digits
	lo, hi := minWithDigits(d), maxWithDigits(d)
	pattern := mod(int64(g.slot)*7+g.seed, 10)

	subs := make([]int64, g.p.Rows-1)
	for i := range subs {
		var n int64
		switch (pattern + int64(i)) % 4 {
		case 0:
			n = g.digits(d)
		case 1:
			n = g.between(lo, lo+(hi-lo)/2)
		case 2:
			spread := (hi - lo) / 4
			off := int64((g.Float64()*2 - 1) * float64(spread))
			n = max(lo, min(hi, (lo+hi)/2+off))
		default:
			n = g.between(lo+(hi-lo)*3/10, hi)
		}
		subs[i] = n
	}

	total := sum(subs)
	need := max(lo, total+1)
	if need > hi {
		return Question{}, errUnsatisfiable
	}
	first := g.between(need, hi)
	return stacked("-", IntAnswer(first-total), ints(append([]int64{first}, subs...)...)), nil
}

// fallbackSubtraction spreads the available headroom evenly over the
// subtrahends so the minuend always keeps its digit count.
func fallbackSubtraction(g *gen) (Question, error) {
	d, n := g.p.Digits, int64(g.p.Rows-1)
	lo, hi := minWithDigits(d), maxWithDigits(d)
	slack := max(0, hi-1-n*lo)

	subs := make([]int64, n)
	for i := range subs {
		subs[i] = lo + g.between(0, slack/n)
	}
	total := sum(subs)
	first := g.between(max(lo, total+1), hi)
	return stacked("-", IntAnswer(first-total), ints(append([]int64{first}, subs...)...)), nil
}

func synthAddSub(g *gen) (Question, error) {
	d := g.p.Digits
	lo, hi := minWithDigits(d), maxWithDigits(d)

	running := g.digits(d)
	ns := []int64{running}
	ops := make([]string, 0, g.p.Rows-1)
	for range g.p.Rows - 1 {
		var pAdd float64
		switch {
		case running < 2*lo:
			pAdd = 0.7
		case float64(running) > 0.8*float64(hi):
			pAdd = 0.4
		default:
			pAdd = 0.5 + float64(g.slot%5)/20 - 0.1
		}

		if g.chance(pAdd) || running < lo {
			n := g.digits(d)
			running += n
			ns = append(ns, n)
			ops = append(ops, "+")
			continue
		}
		n := g.between(lo, min(hi, running))
		running -= n
		ns = append(ns, n)
		ops = append(ops, "-")
	}
	return chain("±", ops, IntAnswer(running), ints(ns...)), nil
}

// synthIntegerAddSub allows the total to go negative.
func synthIntegerAddSub(g *gen) (Question, error) {
	ns := make([]int64, g.p.Rows)
	for i := range ns {
		ns[i] = g.digits(g.p.Digits)
	}
	ops := make([]string, len(ns)-1)
	for i := range ops {
		ops[i] = "+"
		if !g.chance(0.5) {
			ops[i] = "-"
		}
	}
	return chain("±", ops, IntAnswer(applyOps(ns, ops)), ints(ns...)), nil
}

// synthDecimalAddSub works in tenths throughout.
func synthDecimalAddSub(g *gen) (Question, error) {
	d := g.p.Digits
	lo, hi := minWithDigits(d), maxWithDigits(d)

	ns := make([]int64, g.p.Rows)
	for i := range ns {
		whole := g.between(lo, hi)
		ns[i] = whole*10 + int64(g.intn(10))
	}

	ops := make([]string, len(ns)-1)
	total := ns[0]
	for i, n := range ns[1:] {
		if g.chance(0.4) && total-n >= 1 {
			ops[i] = "-"
			total -= n
		} else {
			ops[i] = "+"
			total += n
		}
	}

	operands := make([]Decimal, len(ns))
	for i, n := range ns {
		operands[i] = Tenths(n)
	}
	return chain("±", ops, DecimalAnswer(total, 1), operands), nil
}

func synthDropping10(g *gen) (Question, error) {
	ns := make([]int64, g.p.Rows)
	for i := range ns {
		ns[i] = g.digits(g.p.Digits)
	}
	ops := make([]string, len(ns)-1)
	for i := range ops {
		ops[i] = "+"
		if !g.chance(0.5) {
			ops[i] = "-"
		}
	}
	total := applyOps(ns, ops)
	if total < 0 {
		return Question{}, errUnsatisfiable
	}
	return chain("±", ops, IntAnswer(total), ints(ns...)), nil
}

func fallbackDropping10(g *gen) (Question, error) {
	ns := make([]int64, g.p.Rows)
	for i := range ns {
		ns[i] = g.digits(g.p.Digits)
	}
	return stacked("+", IntAnswer(sum(ns)), ints(ns...)), nil
}

// Junior abacus drills. The first row is 0-9 (or 10-99), later rows are
// chosen so the running total never drops below zero.

var (
	smallFriends = [][2]int64{{1, 4}, {2, 3}, {3, 2}, {4, 1}, {0, 5}, {5, 0}}
	bigFriends   = [][2]int64{{1, 9}, {2, 8}, {3, 7}, {4, 6}, {5, 5}, {6, 4}, {7, 3}, {8, 2}, {9, 1}, {0, 10}, {10, 0}}
)

func juniorFirst(g *gen) int64 {
	if g.p.Digits == 1 {
		return g.between(0, 9)
	}
	return g.between(10, 99)
}

func synthDirectAddSub(g *gen) (Question, error) {
	cur := juniorFirst(g)
	ns := []int64{cur}
	ops := make([]string, 0, g.p.Rows-1)

	for range g.p.Rows - 1 {
		add := g.chance(0.7)
		var n int64
		if g.p.Digits == 1 {
			adds, subs := directSteps(cur, true), directSteps(cur, false)
			if add && len(adds) == 0 {
				add = false
			}
			if !add && len(subs) == 0 {
				add = true
			}
			if add {
				n = pick(g.Stream, adds)
			} else {
				n = pick(g.Stream, subs)
			}
		} else {
			n = g.scaled(9) + 1
			switch {
			case add && cur+n < 100:
			case cur > n:
				add = false
			default:
				add = true
			}
		}

		if add {
			cur += n
			ops = append(ops, "+")
		} else {
			cur -= n
			ops = append(ops, "-")
		}
		ns = append(ns, n)
	}
	return chain("±", ops, IntAnswer(cur), ints(ns...)), nil
}

// directSteps lists the single-digit moves from cur that stay below ten and
// never land on five.
func directSteps(cur int64, add bool) []int64 {
	var out []int64
	if add {
		for n := int64(1); n <= 9-cur; n++ {
			if cur+n != 5 {
				out = append(out, n)
			}
		}
		return out
	}
	for n := int64(1); n <= cur; n++ {
		if cur-n != 5 {
			out = append(out, n)
		}
	}
	return out
}

func synthSmallFriends(g *gen) (Question, error) { return friendsChain(g, smallFriends) }
func synthBigFriends(g *gen) (Question, error)   { return friendsChain(g, bigFriends) }

func friendsChain(g *gen, pairs [][2]int64) (Question, error) {
	cur := juniorFirst(g)
	ns := []int64{cur}
	ops := make([]string, 0, g.p.Rows-1)

	for range g.p.Rows - 1 {
		add := g.chance(0.7)
		ones := cur % 10

		var cands [][2]int64
		for _, p := range pairs {
			if p[0] == ones || p[1] == ones {
				cands = append(cands, p)
			}
		}
		if len(cands) == 0 {
			cands = pairs
		}
		pair := pick(g.Stream, cands)
		friend := pair[1]
		switch {
		case pair[0] == ones:
		case pair[1] == ones || g.p.Digits == 2:
			friend = pair[0]
		}
		n := friend
		if g.p.Digits == 2 {
			n += g.scaled(9) * 10
		}

		if add || cur < n {
			cur += n
			ops = append(ops, "+")
		} else {
			cur -= n
			ops = append(ops, "-")
		}
		ns = append(ns, n)
	}
	return chain("±", ops, IntAnswer(cur), ints(ns...)), nil
}

func sum(ns []int64) int64 {
	var t int64
	for _, n := range ns {
		t += n
	}
	return t
}

// applyOps folds ns left to right with one operator per step.
func applyOps(ns []int64, ops []string) int64 {
	t := ns[0]
	for i, op := range ops {
		if op == "-" {
			t -= ns[i+1]
		} else {
			t += ns[i+1]
		}
	}
	return t
}
