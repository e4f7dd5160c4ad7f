package problemgen

import "fmt"

// QuestionType is the closed set of question variants the synthesizer
// knows how to build. The zero value is not a valid type.
type QuestionType int

const (
	// Basic
	TypeAddition QuestionType = iota + 1
	TypeSubtraction
	TypeAddSub
	TypeMultiplication
	TypeDivision
	TypeSquareRoot
	TypeCubeRoot
	TypeDecimalMultiplication
	TypeDecimalDivision
	TypeLCM
	TypeGCD
	TypeIntegerAddSub
	TypeDecimalAddSub
	TypePercentage

	// Junior
	TypeDirectAddSub
	TypeSmallFriendsAddSub
	TypeBigFriendsAddSub

	// Vedic L1
	TypeVedicMultiplyBy11
	TypeVedicMultiplyBy101
	TypeVedicSubtractionComplement
	TypeVedicSubtractionNormal
	TypeVedicMultiplyBy12To19
	TypeVedicSpecialProductsBase100
	TypeVedicSpecialProductsBase50
	TypeVedicMultiplyBy21To91
	TypeVedicAddition
	TypeVedicMultiplyBy2
	TypeVedicMultiplyBy4
	TypeVedicDivideBy2
	TypeVedicDivideBy4
	TypeVedicDivideSingleDigit
	TypeVedicMultiplyBy6
	TypeVedicDivideBy11
	TypeVedicSquaresBase10
	TypeVedicSquaresBase100
	TypeVedicSquaresBase1000
	TypeVedicTables

	// Vedic L2
	TypeVedicFunWith9
	TypeVedicFunWith5
	TypeVedicFunWith10
	TypeVedicMultiplyBy1001
	TypeVedicMultiplyBy5And25And125
	TypeVedicDivideBy5And25And125
	TypeVedicMultiplyBy5And50And500
	TypeVedicDivideBy5And50And500
	TypeVedicSubtractionPowersOf10
	TypeVedicSpecialProductsBase1000
	TypeVedicSpecialProductsCrossMultiply
	TypeVedicSpecialProductsCrossBase
	TypeVedicSpecialProductsCrossBase50
	TypeVedicDuplex
	TypeVedicSquaresDuplex
	TypeVedicDivideWithRemainder
	TypeVedicDivideBy9sRepetition
	TypeVedicDivideBy11sRepetition
	TypeVedicDivideBy7
	TypeVedicDropping10Method

	// Vedic L3
	TypeVedicMultiplyBy111To999
	TypeVedicMultiplyBy102To109
	TypeVedicMultiplyBy112To119
	TypeVedicMultiplication
	TypeVedicMixMultiplication
	TypeVedicCombinedOperation
	TypeVedicFractionSimplification
	TypeVedicFractionAddition
	TypeVedicFractionSubtraction
	TypeVedicSquaresLevel3
	TypeVedicPercentageLevel3
	TypeVedicSquaresAddition
	TypeVedicSquaresSubtraction
	TypeVedicSquaresDeviation
	TypeVedicCubes
	TypeVedicCheckDivisibility
	TypeVedicMissingNumbers
	TypeVedicMultiplyBy10001
	TypeVedicDuplexLevel3
	TypeVedicSquaresLarge

	// Vedic L4
	TypeVedicMultiplicationLevel4
	TypeVedicMultiplyBy111To999Level4
	TypeVedicDecimalAddSub
	TypeVedicFunWith5Level4
	TypeVedicFunWith10Level4
	TypeVedicFindX
	TypeVedicHCF
	TypeVedicLCMLevel4
	TypeVedicFractionMultiplication
	TypeVedicFractionDivision
	TypeVedicCheckDivisibilityLevel4
	TypeVedicDivisionWithoutRemainder
	TypeVedicDivisionWithRemainder
	TypeVedicDivideBy11To99
	TypeVedicDivision9876
	TypeVedicDivision91121
	TypeVedicDigitalSum
	TypeVedicCubesBaseMethod
	TypeVedicCheckPerfectCube
	TypeVedicCubeRootLevel4
	TypeVedicBodmas
	TypeVedicSquareRootLevel4

	numQuestionTypes = iota
)

var typeTags = [...]string{
	TypeAddition: "addition",
	TypeSubtraction: "subtraction",
	TypeAddSub: "add_sub",
	TypeMultiplication: "multiplication",
	TypeDivision: "division",
	TypeSquareRoot: "square_root",
	TypeCubeRoot: "cube_root",
	TypeDecimalMultiplication: "decimal_multiplication",
	TypeDecimalDivision: "decimal_division",
	TypeLCM: "lcm",
	TypeGCD: "gcd",
	TypeIntegerAddSub: "integer_add_sub",
	TypeDecimalAddSub: "decimal_add_sub",
	TypePercentage: "percentage",
	TypeDirectAddSub: "direct_add_sub",
	TypeSmallFriendsAddSub: "small_friends_add_sub",
	TypeBigFriendsAddSub: "big_friends_add_sub",
	TypeVedicMultiplyBy11: "vedic_multiply_by_11",
	TypeVedicMultiplyBy101: "vedic_multiply_by_101",
	TypeVedicSubtractionComplement: "vedic_subtraction_complement",
	TypeVedicSubtractionNormal: "vedic_subtraction_normal",
	TypeVedicMultiplyBy12To19: "vedic_multiply_by_12_19",
	TypeVedicSpecialProductsBase100: "vedic_special_products_base_100",
	TypeVedicSpecialProductsBase50: "vedic_special_products_base_50",
	TypeVedicMultiplyBy21To91: "vedic_multiply_by_21_91",
	TypeVedicAddition: "vedic_addition",
	TypeVedicMultiplyBy2: "vedic_multiply_by_2",
	TypeVedicMultiplyBy4: "vedic_multiply_by_4",
	TypeVedicDivideBy2: "vedic_divide_by_2",
	TypeVedicDivideBy4: "vedic_divide_by_4",
	TypeVedicDivideSingleDigit: "vedic_divide_single_digit",
	TypeVedicMultiplyBy6: "vedic_multiply_by_6",
	TypeVedicDivideBy11: "vedic_divide_by_11",
	TypeVedicSquaresBase10: "vedic_squares_base_10",
	TypeVedicSquaresBase100: "vedic_squares_base_100",
	TypeVedicSquaresBase1000: "vedic_squares_base_1000",
	TypeVedicTables: "vedic_tables",
	TypeVedicFunWith9: "vedic_fun_with_9",
	TypeVedicFunWith5: "vedic_fun_with_5",
	TypeVedicFunWith10: "vedic_fun_with_10",
	TypeVedicMultiplyBy1001: "vedic_multiply_by_1001",
	TypeVedicMultiplyBy5And25And125: "vedic_multiply_by_5_25_125",
	TypeVedicDivideBy5And25And125: "vedic_divide_by_5_25_125",
	TypeVedicMultiplyBy5And50And500: "vedic_multiply_by_5_50_500",
	TypeVedicDivideBy5And50And500: "vedic_divide_by_5_50_500",
	TypeVedicSubtractionPowersOf10: "vedic_subtraction_powers_of_10",
	TypeVedicSpecialProductsBase1000: "vedic_special_products_base_1000",
	TypeVedicSpecialProductsCrossMultiply: "vedic_special_products_cross_multiply",
	TypeVedicSpecialProductsCrossBase: "vedic_special_products_cross_base",
	TypeVedicSpecialProductsCrossBase50: "vedic_special_products_cross_base_50",
	TypeVedicDuplex: "vedic_duplex",
	TypeVedicSquaresDuplex: "vedic_squares_duplex",
	TypeVedicDivideWithRemainder: "vedic_divide_with_remainder",
	TypeVedicDivideBy9sRepetition: "vedic_divide_by_9s_repetition",
	TypeVedicDivideBy11sRepetition: "vedic_divide_by_11s_repetition",
	TypeVedicDivideBy7: "vedic_divide_by_7",
	TypeVedicDropping10Method: "vedic_dropping_10_method",
	TypeVedicMultiplyBy111To999: "vedic_multiply_by_111_999",
	TypeVedicMultiplyBy102To109: "vedic_multiply_by_102_109",
	TypeVedicMultiplyBy112To119: "vedic_multiply_by_112_119",
	TypeVedicMultiplication: "vedic_multiplication",
	TypeVedicMixMultiplication: "vedic_mix_multiplication",
	TypeVedicCombinedOperation: "vedic_combined_operation",
	TypeVedicFractionSimplification: "vedic_fraction_simplification",
	TypeVedicFractionAddition: "vedic_fraction_addition",
	TypeVedicFractionSubtraction: "vedic_fraction_subtraction",
	TypeVedicSquaresLevel3: "vedic_squares_level3",
	TypeVedicPercentageLevel3: "vedic_percentage_level3",
	TypeVedicSquaresAddition: "vedic_squares_addition",
	TypeVedicSquaresSubtraction: "vedic_squares_subtraction",
	TypeVedicSquaresDeviation: "vedic_squares_deviation",
	TypeVedicCubes: "vedic_cubes",
	TypeVedicCheckDivisibility: "vedic_check_divisibility",
	TypeVedicMissingNumbers: "vedic_missing_numbers",
	TypeVedicMultiplyBy10001: "vedic_multiply_by_10001",
	TypeVedicDuplexLevel3: "vedic_duplex_level3",
	TypeVedicSquaresLarge: "vedic_squares_large",
	TypeVedicMultiplicationLevel4: "vedic_multiplication_level4",
	TypeVedicMultiplyBy111To999Level4: "vedic_multiply_by_111_999_level4",
	TypeVedicDecimalAddSub: "vedic_decimal_add_sub",
	TypeVedicFunWith5Level4: "vedic_fun_with_5_level4",
	TypeVedicFunWith10Level4: "vedic_fun_with_10_level4",
	TypeVedicFindX: "vedic_find_x",
	TypeVedicHCF: "vedic_hcf",
	TypeVedicLCMLevel4: "vedic_lcm_level4",
	TypeVedicFractionMultiplication: "vedic_fraction_multiplication",
	TypeVedicFractionDivision: "vedic_fraction_division",
	TypeVedicCheckDivisibilityLevel4: "vedic_check_divisibility_level4",
	TypeVedicDivisionWithoutRemainder: "vedic_division_without_remainder",
	TypeVedicDivisionWithRemainder: "vedic_division_with_remainder",
	TypeVedicDivideBy11To99: "vedic_divide_by_11_99",
	TypeVedicDivision9876: "vedic_division_9_8_7_6",
	TypeVedicDivision91121: "vedic_division_91_121",
	TypeVedicDigitalSum: "vedic_digital_sum",
	TypeVedicCubesBaseMethod: "vedic_cubes_base_method",
	TypeVedicCheckPerfectCube: "vedic_check_perfect_cube",
	TypeVedicCubeRootLevel4: "vedic_cube_root_level4",
	TypeVedicBodmas: "vedic_bodmas",
	TypeVedicSquareRootLevel4: "vedic_square_root_level4",
}

var typesByTag = func() map[string]QuestionType {
	m := make(map[string]QuestionType, len(typeTags))
	for t, tag := range typeTags {
		if tag != "" {
			m[tag] = QuestionType(t)
		}
	}
	return m
}()

// AllTypes returns every supported question type in declaration order.
func AllTypes() []QuestionType {
	out := make([]QuestionType, 0, numQuestionTypes)
	for t := QuestionType(1); t <= numQuestionTypes; t++ {
		out = append(out, t)
	}
	return out
}

// ParseQuestionType resolves a wire tag such as "add_sub" or
// "vedic_multiply_by_11".
func ParseQuestionType(tag string) (QuestionType, error) {
	if t, ok := typesByTag[tag]; ok {
		return t, nil
	}
	return 0, &UnsupportedTypeError{Tag: tag}
}

// Valid reports whether t is one of the declared types.
func (t QuestionType) Valid() bool {
	return t >= 1 && t <= numQuestionTypes
}

func (t QuestionType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("QuestionType(%d)", int(t))
	}
	return typeTags[t]
}

func (t QuestionType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &UnsupportedTypeError{Tag: t.String()}
	}
	return []byte(typeTags[t]), nil
}

func (t *QuestionType) UnmarshalText(text []byte) error {
	parsed, err := ParseQuestionType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
