package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// CheckAnswer compares the learner's input against the correct answer.
// Returns true if the answer is correct.
//
// Normalization rules:
// - Whitespace is trimmed
// - Comparison is case-insensitive
// - For fractions: equivalent fractions are accepted (e.g., "2/4" matches "1/2"),
// as is a decimal of at least two places that rounds to the same value
// - For decimals: trailing zeros are ignored (e.g., "3.50" matches "3.5")
// - For integers: leading zeros are ignored (e.g., "007" matches "7")
// - For yes/no checks: "yes", "y", "no" and "n"
func CheckAnswer(learnerAnswer string, correct Answer) bool {
	learnerAnswer = strings.ToLower(strings.TrimSpace(learnerAnswer))
	if learnerAnswer == "" {
		return false
	}

	if correct.Type == AnswerTypeYesNo {
		switch learnerAnswer {
		case "yes", "y":
			return correct.Num == 1
		case "no", "n":
			return correct.Num == 0
		}
		return false
	}

	if strings.Contains(learnerAnswer, "/") {
		num, den, err := parseFraction(learnerAnswer)
		if err != nil || den == 0 {
			return false
		}
		return num*correct.Den == correct.Num*den
	}

	d, err := parseFixed(learnerAnswer)
	if err != nil {
		return false
	}
	if correct.Type != AnswerTypeFraction {
		return sameValue(d, correct)
	}
	if d.Places < 2 {
		return false
	}
	return roundDiv(correct.Num*pow10(d.Places), correct.Den) == d.Units
}

// sameValue reports whether d equals the integer or decimal answer a.
func sameValue(d Decimal, a Answer) bool {
	p := max(d.Places, a.Places)
	return d.Units*pow10(p-d.Places) == a.Num*pow10(p-a.Places)
}

// parseFraction parses "a/b" into numerator and denominator.
func parseFraction(s string) (int64, int64, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid fraction format: %q", s)
	}
	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid denominator: %w", err)
	}
	return num, den, nil
}

// gcd returns the greatest common divisor of a and b.
// Both a and b must be non-negative.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs returns the absolute value of n.
func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
