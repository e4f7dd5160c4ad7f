package problemgen

import "fmt"

// synthFunc builds one question from the attempt context. It returns
// errUnsatisfiable when the draw cannot satisfy the type's rules and the
// attempt should be retried.
type synthFunc func(g *gen) (Question, error)

// Family groups question types by the kind of arithmetic they drill.
type Family string

const (
	FamilyChained        Family = "chained"
	FamilyMultiplyDivide Family = "multiply_divide"
	FamilyRoots          Family = "roots"
	FamilyNumberTheory   Family = "number_theory"
	FamilyJunior         Family = "junior"
	FamilyVedic          Family = "vedic"
)

// minimalKind selects the shape of the last-resort question substituted
// when even the fallback fails.
type minimalKind int

const (
	minimalAdd minimalKind = iota
	minimalMultiply
	minimalDivide
)

// strategy is one registry entry.
type strategy struct {
	family Family
	level  int

	synth    synthFunc
	fallback synthFunc

	// ordered types keep operand order in the signature.
	ordered bool
	// bounded types enforce minAnswer/maxAnswer.
	bounded bool

	// digits lists the expected digit count per operand (0 = unchecked).
	// A single entry applies to every operand.
	digits func(Params) []int

	nonNegative   bool
	exactDivision bool
	power         int

	minimal minimalKind
}

// divisibilityDivisors are the divisors the level-3 divisibility check
// draws from.
var divisibilityDivisors = []int{2, 3, 4, 5, 6, 8, 9, 10}

func allDigits(p Params) []int      { return []int{p.Digits} }
func leadDigits(p Params) []int     { return []int{p.Digits, 0} }
func pairDigits(p Params) []int     { return []int{p.FirstDigits, p.SecondDigits} }
func productDigits(p Params) []int  { return []int{p.MultiplicandDigits, p.MultiplierDigits} }
func quotientDigits(p Params) []int { return []int{p.DividendDigits, p.DivisorDigits} }
func rootDigits(p Params) []int     { return []int{p.RootDigits} }

func decimalProductDigits(p Params) []int {
	b := p.MultiplierDigits
	if b == 0 {
		b = 1
	}
	return []int{p.MultiplicandDigits, b}
}

// chained builds an entry for a vertical add/sub drill.
func chained(synth synthFunc, nonNegative bool) strategy {
	return strategy{
		family:      FamilyChained,
		synth:       synth,
		ordered:     true,
		bounded:     true,
		digits:      allDigits,
		nonNegative: nonNegative,
	}
}

func junior(synth synthFunc) strategy {
	return strategy{family: FamilyJunior, synth: synth, ordered: true, nonNegative: true}
}

// vedicMul is a level-n drill whose questions are products.
func vedicMul(level int, synth synthFunc, digits func(Params) []int) strategy {
	return strategy{
		family:  FamilyVedic,
		level:   level,
		synth:   synth,
		ordered: true,
		bounded: true,
		digits:  digits,
		minimal: minimalMultiply,
	}
}

// vedicSpecial is a product drill where operand order does not matter.
func vedicSpecial(level int, synth synthFunc) strategy {
	s := vedicMul(level, synth, nil)
	s.ordered = false
	return s
}

// vedicDiv is a division drill. Answers are decimals or fractions, so
// answer bounds do not apply.
func vedicDiv(level int, synth synthFunc, digits func(Params) []int) strategy {
	return strategy{
		family:  FamilyVedic,
		level:   level,
		synth:   synth,
		ordered: true,
		digits:  digits,
		minimal: minimalDivide,
	}
}

func vedic(level int, synth synthFunc) strategy {
	return strategy{family: FamilyVedic, level: level, synth: synth, ordered: true, bounded: true}
}

func (s strategy) withDigits(d func(Params) []int) strategy { s.digits = d; return s }
func (s strategy) withFallback(f synthFunc) strategy     { s.fallback = f; return s }
func (s strategy) unbounded() strategy                   { s.bounded = false; return s }

func (s strategy) withPower(k int) strategy {
	s.power = k
	s.bounded = false
	return s
}

var registry = map[QuestionType]strategy{
	TypeAddition:           func() strategy { s := chained(synthAddition, false); s.ordered = false; return s }(),
	TypeSubtraction:        chained(synthSubtraction, true).withFallback(fallbackSubtraction),
	TypeAddSub:             chained(synthAddSub, true),
	TypeIntegerAddSub:      chained(synthIntegerAddSub, false).unbounded(),
	TypeDecimalAddSub:      chained(synthDecimalAddSub, true).unbounded(),
	TypeDirectAddSub:       junior(synthDirectAddSub),
	TypeSmallFriendsAddSub: junior(synthSmallFriends),
	TypeBigFriendsAddSub:   junior(synthBigFriends),

	TypeMultiplication: {
		family: FamilyMultiplyDivide, synth: synthMultiplication,
		bounded: true, digits: productDigits, minimal: minimalMultiply,
	},
	TypeDivision: {
		family: FamilyMultiplyDivide, synth: synthDivision, fallback: fallbackDivision,
		ordered: true, bounded: true, digits: quotientDigits, exactDivision: true, minimal: minimalDivide,
	},
	TypeDecimalMultiplication: {
		family: FamilyMultiplyDivide, synth: synthDecimalMultiplication,
		ordered: true, digits: decimalProductDigits, minimal: minimalMultiply,
	},
	TypeDecimalDivision: {
		family: FamilyMultiplyDivide, synth: synthDecimalDivision,
		ordered: true, digits: quotientDigits, minimal: minimalDivide,
	},

	TypeSquareRoot: strategy{family: FamilyRoots, synth: synthSquareRoot, ordered: true, digits: rootDigits}.withPower(2),
	TypeCubeRoot:   strategy{family: FamilyRoots, synth: synthCubeRoot, ordered: true, digits: rootDigits}.withPower(3),

	TypeLCM:        {family: FamilyNumberTheory, synth: synthLCM, digits: pairDigits},
	TypeGCD:        {family: FamilyNumberTheory, synth: synthGCD, digits: pairDigits},
	TypePercentage: {family: FamilyNumberTheory, synth: synthPercentage, ordered: true, digits: func(p Params) []int { return []int{0, p.NumberDigits} }},

	// Level 1
	TypeVedicMultiplyBy11:           vedicMul(1, fixedMultiplier(11), leadDigits),
	TypeVedicMultiplyBy101:          vedicMul(1, fixedMultiplier(101), leadDigits),
	TypeVedicSubtractionComplement:  vedic(1, synthSubtractionComplement),
	TypeVedicSubtractionNormal:      vedic(1, synthSubtractionNormal),
	TypeVedicMultiplyBy12To19:       vedicMul(1, synthMultiplyBy12To19, leadDigits),
	TypeVedicSpecialProductsBase100: vedicSpecial(1, synthSpecialProductsBase100),
	TypeVedicSpecialProductsBase50:  vedicSpecial(1, synthSpecialProductsBase50),
	TypeVedicMultiplyBy21To91:       vedicMul(1, synthMultiplyBy21To91, leadDigits),
	TypeVedicAddition:               func() strategy { s := vedic(1, synthVedicAddition).withDigits(pairDigits); s.ordered = false; return s }(),
	TypeVedicMultiplyBy2:            vedicMul(1, fixedMultiplier(2), leadDigits),
	TypeVedicMultiplyBy4:            vedicMul(1, fixedMultiplier(4), leadDigits),
	TypeVedicDivideBy2:              vedicDiv(1, fixedDivisor(2), leadDigits),
	TypeVedicDivideBy4:              vedicDiv(1, fixedDivisor(4), leadDigits),
	TypeVedicDivideSingleDigit:      vedicDiv(1, synthDivideSingleDigit, leadDigits),
	TypeVedicMultiplyBy6:            vedicMul(1, synthMultiplyBy6, leadDigits),
	TypeVedicDivideBy11:             vedicDiv(1, fixedDivisor(11), leadDigits),
	TypeVedicSquaresBase10:          vedic(1, synthSquaresBase10).withFallback(fallbackSquaresBase10),
	TypeVedicSquaresBase100:         vedic(1, synthSquaresBase100).withFallback(fallbackSquaresBase100),
	TypeVedicSquaresBase1000:        vedic(1, synthSquaresBase1000).withFallback(fallbackSquaresBase1000),
	TypeVedicTables:                 vedicMul(1, synthTableRow, nil),

	// Level 2
	TypeVedicFunWith9:                     vedicMul(2, synthFunWith9, leadDigits),
	TypeVedicFunWith5:                     vedicMul(2, synthFunWith5, nil),
	TypeVedicFunWith10:                    vedicMul(2, synthFunWith10, nil),
	TypeVedicMultiplyBy1001:               vedicMul(2, fixedMultiplier(1001), leadDigits),
	TypeVedicMultiplyBy5And25And125:       vedicMul(2, multiplierSet(5, 25, 125), leadDigits),
	TypeVedicDivideBy5And25And125:         vedicDiv(2, divisorSet(5, 25, 125), leadDigits),
	TypeVedicMultiplyBy5And50And500:       vedicMul(2, multiplierSet(5, 50, 500), leadDigits),
	TypeVedicDivideBy5And50And500:         vedicDiv(2, divisorSet(5, 50, 500), leadDigits),
	TypeVedicSubtractionPowersOf10:        vedic(2, synthSubtractionPowersOf10),
	TypeVedicSpecialProductsBase1000:      vedicSpecial(2, synthSpecialProductsBase1000),
	TypeVedicSpecialProductsCrossMultiply: vedicSpecial(2, synthCrossMultiply),
	TypeVedicSpecialProductsCrossBase:     vedicSpecial(2, synthCrossBase),
	TypeVedicSpecialProductsCrossBase50:   vedicSpecial(2, synthCrossBase50),
	TypeVedicDuplex:                       vedic(2, synthDuplex).withDigits(allDigits),
	TypeVedicSquaresDuplex:                vedic(2, synthSquaresDuplex).withDigits(allDigits),
	TypeVedicDivideWithRemainder:          vedicDiv(2, synthDivideWithRemainder, leadDigits),
	TypeVedicDivideBy9sRepetition:         vedicDiv(2, synthDivideBy9s, leadDigits),
	TypeVedicDivideBy11sRepetition:        vedicDiv(2, synthDivideBy11s, leadDigits),
	TypeVedicDivideBy7:                    vedicDiv(2, synthDivideBy7, leadDigits),
	TypeVedicDropping10Method: func() strategy {
		s := chained(synthDropping10, true).withFallback(fallbackDropping10)
		s.family, s.level = FamilyVedic, 2
		return s
	}(),

	// Level 3
	TypeVedicMultiplyBy111To999:     vedicMul(3, synthMultiplyBy111To999, leadDigits),
	TypeVedicMultiplyBy102To109:     vedicMul(3, multiplierRange(102, 8), leadDigits),
	TypeVedicMultiplyBy112To119:     vedicMul(3, multiplierRange(112, 8), leadDigits),
	TypeVedicMultiplication:         vedicMul(3, synthVedicMultiplication, nil),
	TypeVedicMixMultiplication:      vedicMul(3, synthMixMultiplication, nil),
	TypeVedicCombinedOperation:      vedic(3, synthCombinedOperation),
	TypeVedicFractionSimplification: vedic(3, synthFractionSimplification),
	TypeVedicFractionAddition:       vedic(3, synthFractionAddition),
	TypeVedicFractionSubtraction:    vedic(3, synthFractionSubtraction),
	TypeVedicSquaresLevel3:          vedic(3, synthSquaresLevel3),
	TypeVedicPercentageLevel3:       vedic(3, synthPercentageLevel3).withDigits(func(p Params) []int { return []int{0, p.Digits} }),
	TypeVedicSquaresAddition: func() strategy {
		s := vedic(3, synthSquaresAddition).withDigits(allDigits)
		s.ordered = false
		return s
	}(),
	TypeVedicSquaresSubtraction: vedic(3, synthSquaresSubtraction).withDigits(leadDigits),
	TypeVedicSquaresDeviation:   vedic(3, synthSquaresDeviation),
	TypeVedicCubes:              vedic(3, synthCubes),
	TypeVedicCheckDivisibility:  vedic(3, synthCheckDivisibility).withDigits(leadDigits),
	TypeVedicMissingNumbers:     vedic(3, synthMissingNumbers),
	TypeVedicMultiplyBy10001:    vedicMul(3, fixedMultiplier(10001), leadDigits),
	TypeVedicDuplexLevel3:       vedic(3, synthDuplex).withDigits(allDigits),
	TypeVedicSquaresLarge:       vedic(3, synthSquaresDuplex).withDigits(allDigits),

	// Level 4
	TypeVedicMultiplicationLevel4:     vedicMul(4, synthMultiplicationLevel4, productDigits),
	TypeVedicMultiplyBy111To999Level4: vedicMul(4, synthMultiplyByRepdigit, productDigits),
	TypeVedicDecimalAddSub:            vedic(4, synthVedicDecimalAddSub).withDigits(allDigits).unbounded(),
	TypeVedicFunWith5Level4:           vedicMul(4, synthFunWith5Level4, nil).unbounded(),
	TypeVedicFunWith10Level4:          vedicMul(4, synthFunWith10Level4, nil).unbounded(),
	TypeVedicFindX:                    vedic(4, synthFindX),
	TypeVedicHCF:                      func() strategy { s := vedic(4, synthHCF).unbounded(); s.ordered = false; return s }(),
	TypeVedicLCMLevel4:                vedic(4, synthLCMLevel4).unbounded(),
	TypeVedicFractionMultiplication:   vedic(4, synthFractionMultiplication).unbounded(),
	TypeVedicFractionDivision:         vedic(4, synthFractionDivision).unbounded(),
	TypeVedicCheckDivisibilityLevel4:  vedic(4, synthCheckDivisibilityLevel4).unbounded(),
	TypeVedicDivisionWithoutRemainder: func() strategy {
		s := vedicDiv(4, synthDivisionWithoutRemainder, quotientDigits).withFallback(fallbackDivisionWithoutRemainder)
		s.exactDivision, s.bounded = true, true
		return s
	}(),
	TypeVedicDivisionWithRemainder: vedicDiv(4, synthDivisionWithRemainder, quotientDigits),
	TypeVedicDivideBy11To99:        vedicDiv(4, synthDivideBy11To99, func(p Params) []int { return []int{p.DividendDigits, 0} }),
	TypeVedicDivision9876:          vedicDiv(4, synthDivision9876, nil),
	TypeVedicDivision91121:         vedicDiv(4, synthDivision91121, nil),
	TypeVedicDigitalSum:            vedic(4, synthDigitalSum).withDigits(allDigits),
	TypeVedicCubesBaseMethod:       vedic(4, synthCubesBaseMethod),
	TypeVedicCheckPerfectCube:      vedic(4, synthCheckPerfectCube).unbounded(),
	TypeVedicCubeRootLevel4:        vedic(4, synthCubeRootLevel4).withDigits(rootDigits).withPower(3),
	TypeVedicBodmas:                vedic(4, synthBodmas).unbounded(),
	TypeVedicSquareRootLevel4:      vedic(4, synthSquareRootLevel4).withDigits(rootDigits).withPower(2),
}

func init() {
	if err := checkRegistry(); err != nil {
		panic(err)
	}
}

// checkRegistry verifies that every declared type has a strategy and a
// wire tag, and that nothing outside the enumeration is registered.
func checkRegistry() error {
	for _, t := range AllTypes() {
		s, ok := registry[t]
		if !ok || s.synth == nil {
			return fmt.Errorf("problemgen: no strategy for %v", t)
		}
		if typeTags[t] == "" {
			return fmt.Errorf("problemgen: no tag for type %d", int(t))
		}
	}
	if len(registry) != numQuestionTypes {
		return fmt.Errorf("problemgen: registry has %d entries, want %d", len(registry), numQuestionTypes)
	}
	return nil
}

func lookup(t QuestionType) (strategy, error) {
	s, ok := registry[t]
	if !ok {
		return strategy{}, &UnsupportedTypeError{Tag: t.String()}
	}
	return s, nil
}

// Family reports the family t belongs to, or "" for invalid types.
func (t QuestionType) Family() Family {
	return registry[t].family
}

// Level reports the fast-calculation level (1-4) of a vedic type and 0
// for every other type.
func (t QuestionType) Level() int {
	return registry[t].level
}

// ExpectedCount returns how many questions Assemble produces for cfg.
// Times tables produce one question per table row; every other type
// produces exactly Count.
func ExpectedCount(cfg BlockConfig) int {
	if cfg.Type == TypeVedicTables {
		return tableRows(cfg)
	}
	return max(cfg.Count, 0)
}

func tableRows(cfg BlockConfig) int {
	rows := 10
	switch {
	case cfg.Constraints.Rows != nil:
		rows = *cfg.Constraints.Rows
	case cfg.Count != 0:
		rows = cfg.Count
	}
	return clamp(rows, 2, 100)
}
