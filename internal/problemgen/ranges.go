package problemgen

import "strconv"

// maxDigitRedraws bounds how often DigitNumber redraws before clamping.
const maxDigitRedraws = 8

// DigitNumber returns a number with exactly digits decimal digits and no
// leading zero. A nil stream falls back to AmbientStream, which is not
// reproducible. Zero or negative digits yield 0.
func DigitNumber(digits int, s Stream) int64 {
	if digits <= 0 {
		return 0
	}
	if s == nil {
		s = AmbientStream()
	}
	lo, hi := minWithDigits(digits), maxWithDigits(digits)
	var n int64
	for range maxDigitRedraws {
		n = int64(s.Float64()*float64(hi-lo+1)) + lo
		if digitCount(n) == digits {
			return n
		}
	}
	return min(max(n, lo), hi)
}

// minWithDigits returns 10^(d-1).
func minWithDigits(d int) int64 { return pow10(d - 1) }

// maxWithDigits returns 10^d - 1.
func maxWithDigits(d int) int64 { return pow10(d) - 1 }

// digitCount returns the number of decimal digits of |n|.
func digitCount(n int64) int {
	return len(strconv.FormatInt(abs(n), 10))
}

// between returns an integer in [lo, hi] drawn from s.
func between(s Stream, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	n := lo + int64(s.Float64()*float64(hi-lo+1))
	return min(n, hi)
}

// intn returns an integer in [0, n).
func intn(s Stream, n int) int {
	if n <= 0 {
		return 0
	}
	return min(int(s.Float64()*float64(n)), n-1)
}

// chance returns true with probability p.
func chance(s Stream, p float64) bool { return s.Float64() < p }

// pick returns one element of items.
func pick[T any](s Stream, items []T) T {
	return items[intn(s, len(items))]
}

// pickCase resolves a "mix" case selector to one of the concrete cases.
func pickCase(s Stream, sel string, cases ...string) string {
	for _, c := range cases {
		if sel == c {
			return c
		}
	}
	return pick(s, cases)
}

// repdigit returns d repeated n times, e.g. repdigit(9, 3) == 999.
func repdigit(d int64, n int) int64 {
	var r int64
	for range n {
		r = r*10 + d
	}
	return r
}

func isqrt(n int64) int64 {
	if n < 0 {
		return 0
	}
	r := int64(0)
	for b := int64(1) << 31; b > 0; b >>= 1 {
		if c := r + b; c <= n/c {
			r = c
		}
	}
	return r
}

func icbrt(n int64) int64 {
	if n < 0 {
		return 0
	}
	r := int64(0)
	for b := int64(1) << 21; b > 0; b >>= 1 {
		if c := r + b; c*c <= n/c {
			r = c
		}
	}
	return r
}

func lcm(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}
