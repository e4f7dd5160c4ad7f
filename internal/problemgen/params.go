package problemgen

import (
	"errors"
	"slices"
)

// drawn marks a digit parameter that is picked per question rather than
// fixed for the block.
const drawn = -1

// maxSafeDigits is the widest operand or result an int64 can carry.
const maxSafeDigits = 18

// Params is the fully resolved parameter record a synthesis function reads.
// Every field is populated by Resolve; zero-valued selectors (Multiplier,
// Divisor, TableNumber, PowerOf10, DivisorCheck) and an empty Case mean
// "draw one per question".
type Params struct {
	Digits int
	Rows   int

	MultiplicandDigits int
	MultiplierDigits   int
	DividendDigits     int
	DivisorDigits      int
	RootDigits         int
	FirstDigits        int
	SecondDigits       int
	NumberDigits       int

	PercentMin int
	PercentMax int

	Base         int64
	Multiplier   int
	Divisor      int
	DivisorCheck int
	TableNumber  int
	PowerOf10    int

	Case string

	MinAnswer *int64
	MaxAnswer *int64
}

// Resolve normalizes sparse constraints into the parameter record for t:
// per-type defaults are applied and every digit and row count is clamped
// into its documented bounds. A width inside those bounds that the int64
// arithmetic cannot carry is reported as a *WidthError, never narrowed.
func Resolve(t QuestionType, c Constraints) (Params, error) {
	p, errs := resolve(t, c)
	if len(errs) == 0 {
		return p, nil
	}
	joined := make([]error, len(errs))
	for i, e := range errs {
		joined[i] = e
	}
	return p, errors.Join(joined...)
}

// CheckWidths lists every width in c that t cannot represent.
func CheckWidths(t QuestionType, c Constraints) []*WidthError {
	_, errs := resolve(t, c)
	return errs
}

func resolve(t QuestionType, c Constraints) (Params, []*WidthError) {
	p := Params{
		Digits:    clamp(nonZero(c.Digits, 1), 1, 30),
		Rows:      clamp(valueOr(c.Rows, 2), 2, 30),
		MinAnswer: c.MinAnswer,
		MaxAnswer: c.MaxAnswer,
	}

	var errs []*WidthError
	// limit keeps v within hi for the rest of resolution and records the
	// violation.
	limit := func(field string, v, hi int) int {
		if v > hi {
			errs = append(errs, &WidthError{Type: t, Field: field, Requested: v, Max: hi})
			return hi
		}
		return v
	}
	// product checks that two operand widths leave room for their product.
	product := func(a, b, hi int) {
		if a+b > hi {
			errs = append(errs, &WidthError{Type: t, Field: "multiplicandDigits+multiplierDigits", Requested: a + b, Max: hi})
		}
	}
	digits := func(def, lo, hi int) int { return clamp(valueOr(c.Digits, def), lo, hi) }
	rows := func(def, lo, hi int) int { return clamp(valueOr(c.Rows, def), lo, hi) }
	// pair resolves the two sides of a product from their own field, then
	// the shared digits field, then the default.
	pair := func(first, second *int, defA, defB, lo, hi int) (int, int) {
		a := clamp(valueOr(first, valueOr(c.Digits, defA)), lo, hi)
		b := clamp(valueOr(second, valueOr(c.Digits, defB)), lo, hi)
		product(a, b, maxSafeDigits)
		return a, b
	}

	switch t {
	case TypeAddition, TypeAddSub:
		p.Digits = limit("digits", p.Digits, maxSafeDigits-1)
	case TypeSubtraction:
		p.Digits = limit("digits", p.Digits, maxSafeDigits-1)
		p.Rows = min(p.Rows, maxSubtractionRows(p.Digits))
	case TypeIntegerAddSub:
		p.Digits = limit("digits", clamp(nonZero(c.Digits, 2), 1, 30), maxSafeDigits-1)
		p.Rows = clamp(nonZero(c.Rows, 3), 2, 30)
	case TypeDecimalAddSub:
		p.Digits = limit("digits", clamp(nonZero(c.Digits, 2), 1, 30), maxSafeDigits-2)
		p.Rows = clamp(nonZero(c.Rows, 3), 2, 30)
	case TypeVedicDropping10Method:
		p.Digits = digits(2, 1, 5)
		p.Rows = rows(3, 2, 30)
	case TypeDirectAddSub, TypeSmallFriendsAddSub, TypeBigFriendsAddSub:
		p.Digits = clamp(nonZero(c.Digits, 1), 1, 2)
		p.Rows = clamp(nonZero(c.Rows, 3), 2, 15)

	case TypeMultiplication:
		p.MultiplicandDigits, p.MultiplierDigits = pair(c.MultiplicandDigits, c.MultiplierDigits, 2, 1, 1, 20)
	case TypeDivision:
		p.DividendDigits = limit("dividendDigits", clamp(nonZero(c.DividendDigits, 2), 1, 20), maxSafeDigits)
		p.DivisorDigits = limit("divisorDigits", clamp(nonZero(c.DivisorDigits, 1), 1, 20), maxSafeDigits)
	case TypeDecimalMultiplication:
		p.MultiplicandDigits, p.MultiplierDigits = drawn, drawn
		if c.MultiplicandDigits != nil && *c.MultiplicandDigits != 0 {
			p.MultiplicandDigits = clamp(*c.MultiplicandDigits, 1, 20)
		}
		if c.MultiplierDigits != nil {
			p.MultiplierDigits = clamp(*c.MultiplierDigits, 0, 20)
		}
		if p.MultiplicandDigits != drawn && p.MultiplierDigits != drawn {
			product(p.MultiplicandDigits, p.MultiplierDigits, maxSafeDigits-2)
		}
	case TypeDecimalDivision:
		p.DividendDigits, p.DivisorDigits = drawn, drawn
		if c.DividendDigits != nil {
			p.DividendDigits = limit("dividendDigits", clamp(*c.DividendDigits, 1, 20), maxSafeDigits-2)
		}
		if c.DivisorDigits != nil {
			p.DivisorDigits = limit("divisorDigits", clamp(*c.DivisorDigits, 1, 20), maxSafeDigits-2)
		}

	case TypeSquareRoot:
		p.RootDigits = limit("rootDigits", clamp(nonZero(c.RootDigits, 3), 1, 30), maxSafeDigits)
	case TypeCubeRoot:
		p.RootDigits = limit("rootDigits", clamp(nonZero(c.RootDigits, 4), 1, 30), maxSafeDigits)
	case TypeVedicSquareRootLevel4:
		p.RootDigits = limit("rootDigits", clamp(valueOr(c.RootDigits, 4), 1, 30), maxSafeDigits)
	case TypeVedicCubeRootLevel4:
		p.RootDigits = clamp(valueOr(c.CubeRootDigits, 5), 4, 10)

	case TypeLCM:
		p.FirstDigits, p.SecondDigits = pair(c.MultiplicandDigits, c.MultiplierDigits, 2, 2, 1, 10)
	case TypeGCD:
		p.FirstDigits, p.SecondDigits = pair(c.MultiplicandDigits, c.MultiplierDigits, 3, 2, 1, 10)
	case TypePercentage:
		p.PercentMin = clamp(valueOr(c.PercentageMin, 1), 1, 100)
		p.PercentMax = clamp(valueOr(c.PercentageMax, 100), 1, 100)
		if p.PercentMin > p.PercentMax {
			p.PercentMin, p.PercentMax = p.PercentMax, p.PercentMin
		}
		p.NumberDigits = clamp(valueOr(c.NumberDigits, 4), 1, 10)

	case TypeVedicMultiplyBy11, TypeVedicMultiplyBy12To19, TypeVedicMultiplyBy21To91:
		p.Digits = limit("digits", digits(2, 2, 30), maxSafeDigits-2)
	case TypeVedicMultiplyBy101:
		p.Digits = limit("digits", digits(2, 2, 30), maxSafeDigits-3)
	case TypeVedicMultiplyBy2, TypeVedicMultiplyBy4, TypeVedicMultiplyBy6:
		p.Digits = limit("digits", digits(2, 2, 30), maxSafeDigits-1)
	case TypeVedicDivideBy2, TypeVedicDivideBy4, TypeVedicDivideSingleDigit:
		p.Digits = limit("digits", digits(2, 2, 30), maxSafeDigits)
	case TypeVedicDivideBy11:
		p.Digits = limit("digits", digits(3, 2, 30), maxSafeDigits)
	case TypeVedicSubtractionComplement, TypeVedicSubtractionNormal, TypeVedicSpecialProductsCrossMultiply:
		requested := valueOr(c.Base, 100)
		p.Base = roundBase(requested)
		if int64(requested) >= p.Base*10 {
			errs = append(errs, &WidthError{Type: t, Field: "base", Requested: requested, Max: int(p.Base)})
		}
		if t == TypeVedicSpecialProductsCrossMultiply && p.Base > pow10(maxSafeDigits/2) {
			errs = append(errs, &WidthError{Type: t, Field: "base", Requested: requested, Max: int(pow10(maxSafeDigits / 2))})
			p.Base = pow10(maxSafeDigits / 2)
		}
	case TypeVedicAddition:
		p.FirstDigits = limit("firstDigits", clamp(valueOr(c.FirstDigits, 2), 1, 30), maxSafeDigits-1)
		p.SecondDigits = limit("secondDigits", clamp(valueOr(c.SecondDigits, 2), 1, 30), maxSafeDigits-1)

	case TypeVedicFunWith9:
		p.Digits = limit("digits", digits(2, 1, 10), 8)
	case TypeVedicMultiplyBy1001, TypeVedicMultiplyBy5And25And125, TypeVedicDivideBy5And25And125,
		TypeVedicMultiplyBy5And50And500, TypeVedicDivideBy5And50And500, TypeVedicDivideWithRemainder,
		TypeVedicDivideBy9sRepetition, TypeVedicDivideBy11sRepetition, TypeVedicDivideBy7,
		TypeVedicMultiplyBy111To999, TypeVedicMultiplyBy102To109, TypeVedicMultiplyBy112To119,
		TypeVedicMultiplyBy10001, TypeVedicCheckDivisibility:
		p.Digits = digits(2, 1, 10)
		if t == TypeVedicCheckDivisibility {
			p.Digits = digits(3, 1, 10)
		}
	case TypeVedicSubtractionPowersOf10:
		if c.PowerOf10 != nil {
			p.PowerOf10 = limit("powerOf10", max(*c.PowerOf10, 1), maxSafeDigits)
		}
	case TypeVedicDuplex, TypeVedicDuplexLevel3:
		p.Digits = digits(2, 2, 10)
	case TypeVedicSquaresDuplex, TypeVedicSquaresAddition, TypeVedicSquaresLevel3:
		p.Digits = limit("digits", digits(2, 1, 10), maxSafeDigits/2)
	case TypeVedicSquaresSubtraction:
		p.Digits = limit("digits", digits(2, 2, 10), maxSafeDigits/2)
	case TypeVedicSquaresLarge:
		p.Digits = limit("digits", digits(5, 4, 10), maxSafeDigits/2)
	case TypeVedicPercentageLevel3:
		p.Digits = digits(3, 1, 10)

	case TypeVedicMultiplicationLevel4:
		p.MultiplicandDigits = clamp(valueOr(c.MultiplicandDigits, 3), 1, 10)
		p.MultiplierDigits = clamp(valueOr(c.MultiplierDigits, 2), 1, 10)
		product(p.MultiplicandDigits, p.MultiplierDigits, maxSafeDigits)
	case TypeVedicMultiplyBy111To999Level4:
		p.MultiplicandDigits = clamp(valueOr(c.MultiplicandDigits, 3), 1, 20)
		p.MultiplierDigits = clamp(valueOr(c.MultiplierDigits, 4), 3, 20)
		product(p.MultiplicandDigits, p.MultiplierDigits, maxSafeDigits)
	case TypeVedicDecimalAddSub:
		p.Digits = digits(2, 1, 5)
	case TypeVedicDivisionWithoutRemainder:
		p.DividendDigits = clamp(valueOr(c.DividendDigits, 2), 1, 10)
		p.DivisorDigits = clamp(valueOr(c.DivisorDigits, 1), 1, 5)
	case TypeVedicDivisionWithRemainder:
		p.DividendDigits = clamp(valueOr(c.DividendDigits, 3), 1, 10)
		p.DivisorDigits = clamp(valueOr(c.DivisorDigits, 1), 1, 5)
	case TypeVedicDivideBy11To99:
		p.DividendDigits = clamp(valueOr(c.DividendDigits, 4), 2, 6)
	case TypeVedicDigitalSum:
		p.Digits = digits(4, 3, 6)
	case TypeVedicCheckPerfectCube:
		p.Digits = digits(4, 4, 6)
	}

	if c.Multiplier != nil && t == TypeVedicMultiplyBy12To19 {
		p.Multiplier = clamp(*c.Multiplier, 12, 19)
	}
	if c.MultiplierRange != nil && t == TypeVedicMultiplyBy21To91 {
		p.Multiplier = clamp(*c.MultiplierRange, 21, 91)
	}
	if c.Divisor != nil {
		p.Divisor = clamp(*c.Divisor, 2, 9)
	}
	if c.DivisorCheck != nil && slices.Contains(divisibilityDivisors, *c.DivisorCheck) {
		p.DivisorCheck = *c.DivisorCheck
	}
	if c.TableNumber != nil {
		p.TableNumber = clamp(*c.TableNumber, 1, 99)
	}
	p.Case = caseSelector(t, c)
	return p, errs
}

// caseSelector returns the variant selector that applies to t, with the
// per-type default when unset.
func caseSelector(t QuestionType, c Constraints) string {
	or := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	switch t {
	case TypeVedicFunWith9:
		return or(c.FunWith9Case, caseMix)
	case TypeVedicDivideBy9sRepetition:
		return or(c.DivideBy9sCase, caseMix)
	case TypeVedicDivideBy11sRepetition:
		return or(c.DivideBy11sCase, caseMix)
	case TypeVedicMultiplication:
		return or(c.MultiplicationCase, "2x2")
	case TypeVedicFractionAddition, TypeVedicFractionSubtraction:
		return or(c.FractionCase, caseMix)
	case TypeVedicFunWith5Level4:
		return or(c.FunWith5Case, caseMix)
	case TypeVedicFunWith10Level4:
		return or(c.FunWith10Case, caseMix)
	case TypeVedicCheckDivisibilityLevel4:
		return or(c.DivisibilityCase, "random")
	case TypeVedicDivision9876:
		return or(c.Division9876Case, caseMix)
	case TypeVedicDivision91121:
		return or(c.Division91121Case, caseMix)
	case TypeVedicBodmas:
		return or(c.BodmasDifficulty, "medium")
	}
	return ""
}

const caseMix = "mix"

// roundBase snaps a base down to a power of ten of at least 10.
func roundBase(base int) int64 {
	if base <= 0 {
		return 100
	}
	b := int64(10)
	for b*10 <= int64(base) && b < pow10(maxSafeDigits-1) {
		b *= 10
	}
	return b
}

// maxSubtractionRows is the largest row count for which rows-1 subtrahends
// of d digits can still leave a non-negative minuend of d digits.
func maxSubtractionRows(d int) int {
	return int((maxWithDigits(d)-1)/minWithDigits(d)) + 1
}

func nonZero(p *int, def int) int {
	if p == nil || *p == 0 {
		return def
	}
	return *p
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

