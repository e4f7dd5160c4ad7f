package problemgen

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Question is a single synthesized worksheet question. It is built once by
// the synthesizer and treated as read-only afterwards; slices are never
// shared between questions.
type Question struct {
	// ID is the position of the question in the paper.
	ID int `json:"id"`

	// Type is the question type the question was synthesized for.
	Type QuestionType `json:"type"`

	// Text is the rendered form, one operand per line for vertical
	// questions, e.g. "12\n+ 34" or "LCM(12, 18) =".
	Text string `json:"text"`

	// Operands are the numbers the question is built from, in display order.
	Operands []Decimal `json:"operands"`

	// Operator is the primary symbol ("+", "×", "√") or a family tag
	// such as "LCM".
	Operator string `json:"operator"`

	// Operators holds the per-step operators of chained questions. Empty
	// for single-operator questions.
	Operators []string `json:"operators,omitempty"`

	// Answer is the expected result.
	Answer Answer `json:"answer"`

	// Orientation is the layout hint for renderers.
	Orientation Orientation `json:"orientation"`
}

// Orientation tells renderers whether operands are stacked or inline.
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// Decimal is a fixed-point operand: the value is Units / 10^Places.
// Integers have Places == 0; tenths-based decimal operands have Places == 1.
type Decimal struct {
	Units  int64
	Places int
}

// Int returns an integer operand.
func Int(n int64) Decimal { return Decimal{Units: n} }

// Tenths returns a one-place decimal operand, e.g. Tenths(125) is 12.5.
func Tenths(units int64) Decimal { return Decimal{Units: units, Places: 1} }

// Whole returns the integer part of d, truncated toward zero.
func (d Decimal) Whole() int64 { return d.Units / pow10(d.Places) }

// IsInteger reports whether d has no fractional places.
func (d Decimal) IsInteger() bool { return d.Places == 0 }

func (d Decimal) Float64() float64 {
	return float64(d.Units) / float64(pow10(d.Places))
}

func (d Decimal) String() string { return formatFixed(d.Units, d.Places) }

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Decimal) UnmarshalJSON(data []byte) error {
	v, err := parseFixed(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// AnswerType describes the numeric representation of the correct answer.
type AnswerType string

const (
	AnswerTypeInteger  AnswerType = "integer"  // e.g. "623", "-15"
	AnswerTypeDecimal  AnswerType = "decimal"  // e.g. "3.75", "0.50"
	AnswerTypeFraction AnswerType = "fraction" // e.g. "3/4", "17/7"
	AnswerTypeYesNo    AnswerType = "yes_no"   // divisibility and perfect-cube checks
)

// Answer is an exact expected result. The value is Num/Den in every case:
// integers and yes/no answers have Den == 1, decimals have Den == 10^Places
// and fractions are kept in lowest terms.
type Answer struct {
	Type   AnswerType
	Num    int64
	Den    int64
	Places int
}

// IntAnswer returns an exact integer answer.
func IntAnswer(n int64) Answer {
	return Answer{Type: AnswerTypeInteger, Num: n, Den: 1}
}

// DecimalAnswer returns a fixed-point answer of units / 10^places.
func DecimalAnswer(units int64, places int) Answer {
	if places == 0 {
		return IntAnswer(units)
	}
	return Answer{Type: AnswerTypeDecimal, Num: units, Den: pow10(places), Places: places}
}

// RoundedAnswer rounds num/den half away from zero to the given places.
func RoundedAnswer(num, den int64, places int) Answer {
	return DecimalAnswer(roundDiv(num*pow10(places), den), places)
}

// FractionAnswer returns num/den in lowest terms. A denominator that
// reduces to 1 yields an integer answer.
func FractionAnswer(num, den int64) Answer {
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(abs(num), den); g > 1 {
		num /= g
		den /= g
	}
	if den == 1 {
		return IntAnswer(num)
	}
	return Answer{Type: AnswerTypeFraction, Num: num, Den: den}
}

// YesNoAnswer encodes a divisibility-style check as 1 (yes) or 0 (no).
func YesNoAnswer(yes bool) Answer {
	a := Answer{Type: AnswerTypeYesNo, Den: 1}
	if yes {
		a.Num = 1
	}
	return a
}

// Int reports the answer as an integer when it is one.
func (a Answer) Int() (int64, bool) {
	if a.Den == 1 {
		return a.Num, true
	}
	return 0, false
}

func (a Answer) Float64() float64 {
	if a.Den == 0 {
		return 0
	}
	return float64(a.Num) / float64(a.Den)
}

func (a Answer) String() string {
	switch a.Type {
	case AnswerTypeDecimal:
		return formatFixed(a.Num, a.Places)
	case AnswerTypeFraction:
		return fmt.Sprintf("%d/%d", a.Num, a.Den)
	case AnswerTypeYesNo:
		if a.Num == 1 {
			return "Yes"
		}
		return "No"
	default:
		return strconv.FormatInt(a.Num, 10)
	}
}

type answerJSON struct {
	Value float64    `json:"value"`
	Text  string     `json:"text"`
	Type  AnswerType `json:"type"`
}

func (a Answer) MarshalJSON() ([]byte, error) {
	return json.Marshal(answerJSON{Value: a.Float64(), Text: a.String(), Type: a.Type})
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var raw answerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case AnswerTypeFraction:
		num, den, err := parseFraction(raw.Text)
		if err != nil {
			return err
		}
		*a = FractionAnswer(num, den)
	case AnswerTypeYesNo:
		*a = YesNoAnswer(strings.EqualFold(raw.Text, "yes"))
	default:
		d, err := parseFixed(raw.Text)
		if err != nil {
			return err
		}
		*a = DecimalAnswer(d.Units, d.Places)
	}
	return nil
}

// Constraints is the sparse per-block parameter record. Unset fields fall
// back to per-type defaults during Resolve.
type Constraints struct {
	Digits             *int `json:"digits,omitempty" yaml:"digits,omitempty"`
	Rows               *int `json:"rows,omitempty" yaml:"rows,omitempty"`
	DividendDigits     *int `json:"dividendDigits,omitempty" yaml:"dividendDigits,omitempty"`
	DivisorDigits      *int `json:"divisorDigits,omitempty" yaml:"divisorDigits,omitempty"`
	MultiplicandDigits *int `json:"multiplicandDigits,omitempty" yaml:"multiplicandDigits,omitempty"`
	MultiplierDigits   *int `json:"multiplierDigits,omitempty" yaml:"multiplierDigits,omitempty"`
	RootDigits         *int `json:"rootDigits,omitempty" yaml:"rootDigits,omitempty"`
	CubeRootDigits     *int `json:"cubeRootDigits,omitempty" yaml:"cubeRootDigits,omitempty"`
	PercentageMin      *int `json:"percentageMin,omitempty" yaml:"percentageMin,omitempty"`
	PercentageMax      *int `json:"percentageMax,omitempty" yaml:"percentageMax,omitempty"`
	NumberDigits       *int `json:"numberDigits,omitempty" yaml:"numberDigits,omitempty"`
	Base               *int `json:"base,omitempty" yaml:"base,omitempty"`
	FirstDigits        *int `json:"firstDigits,omitempty" yaml:"firstDigits,omitempty"`
	SecondDigits       *int `json:"secondDigits,omitempty" yaml:"secondDigits,omitempty"`
	Multiplier         *int `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`
	MultiplierRange    *int `json:"multiplierRange,omitempty" yaml:"multiplierRange,omitempty"`
	Divisor            *int `json:"divisor,omitempty" yaml:"divisor,omitempty"`
	DivisorCheck       *int `json:"divisorCheck,omitempty" yaml:"divisorCheck,omitempty"`
	TableNumber        *int `json:"tableNumber,omitempty" yaml:"tableNumber,omitempty"`
	PowerOf10          *int `json:"powerOf10,omitempty" yaml:"powerOf10,omitempty"`

	MinAnswer *int64 `json:"minAnswer,omitempty" yaml:"minAnswer,omitempty"`
	MaxAnswer *int64 `json:"maxAnswer,omitempty" yaml:"maxAnswer,omitempty"`

	AllowBorrow *bool `json:"allowBorrow,omitempty" yaml:"allowBorrow,omitempty"`
	AllowCarry  *bool `json:"allowCarry,omitempty" yaml:"allowCarry,omitempty"`

	FunWith9Case       string `json:"funWith9Case,omitempty" yaml:"funWith9Case,omitempty"`
	FunWith5Case       string `json:"funWith5Case,omitempty" yaml:"funWith5Case,omitempty"`
	FunWith10Case      string `json:"funWith10Case,omitempty" yaml:"funWith10Case,omitempty"`
	DivideBy9sCase     string `json:"divideBy9sCase,omitempty" yaml:"divideBy9sCase,omitempty"`
	DivideBy11sCase    string `json:"divideBy11sCase,omitempty" yaml:"divideBy11sCase,omitempty"`
	MultiplicationCase string `json:"multiplicationCase,omitempty" yaml:"multiplicationCase,omitempty"`
	FractionCase       string `json:"fractionCase,omitempty" yaml:"fractionCase,omitempty"`
	DivisibilityCase   string `json:"divisibilityCase,omitempty" yaml:"divisibilityCase,omitempty"`
	Division9876Case   string `json:"division9_8_7_6Case,omitempty" yaml:"division9_8_7_6Case,omitempty"`
	Division91121Case  string `json:"division91_121Case,omitempty" yaml:"division91_121Case,omitempty"`
	BodmasDifficulty   string `json:"bodmasDifficulty,omitempty" yaml:"bodmasDifficulty,omitempty"`
}

// BlockConfig describes one block of a paper.
type BlockConfig struct {
	ID          string       `json:"id" yaml:"id"`
	Type        QuestionType `json:"type" yaml:"type"`
	Count       int          `json:"count" yaml:"count"`
	Constraints Constraints  `json:"constraints" yaml:"constraints"`
	Title       string       `json:"title,omitempty" yaml:"title,omitempty"`
}

// GeneratedBlock is a block config together with its questions.
type GeneratedBlock struct {
	Config    BlockConfig `json:"config"`
	Questions []Question  `json:"questions"`
}

// Ptr returns a pointer to v. Handy for building Constraints literals.
func Ptr[T any](v T) *T { return &v }

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func formatFixed(units int64, places int) string {
	if places <= 0 {
		return strconv.FormatInt(units, 10)
	}
	sign := ""
	if units < 0 {
		sign = "-"
		units = -units
	}
	scale := pow10(places)
	return fmt.Sprintf("%s%d.%0*d", sign, units/scale, places, units%scale)
}

func parseFixed(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	whole, frac, found := strings.Cut(s, ".")
	if !found {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Decimal{}, fmt.Errorf("invalid number %q: %w", s, err)
		}
		return Int(n), nil
	}
	n, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return Decimal{}, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return Decimal{Units: n, Places: len(frac)}, nil
}

// pow10 returns 10^n for 0 <= n <= 18.
func pow10(n int) int64 {
	p := int64(1)
	for range n {
		p *= 10
	}
	return p
}

// roundDiv divides num by den rounding half away from zero.
func roundDiv(num, den int64) int64 {
	if den < 0 {
		num, den = -num, -den
	}
	q, r := num/den, num%den
	if 2*abs(r) >= den {
		if num < 0 {
			q--
		} else {
			q++
		}
	}
	return q
}
