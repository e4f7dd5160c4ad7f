package problemgen

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func mustAssemble(t *testing.T, cfg BlockConfig, startID int, seed int64) GeneratedBlock {
	t.Helper()
	b, err := Assemble(cfg, startID, seed)
	if err != nil {
		t.Fatalf("Assemble(%v): %v", cfg.Type, err)
	}
	return b
}

func TestAssemble_Deterministic(t *testing.T) {
	for _, typ := range AllTypes() {
		cfg := BlockConfig{ID: "b", Type: typ, Count: 8}
		a := mustAssemble(t, cfg, 3, 12345)
		b := mustAssemble(t, cfg, 3, 12345)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%v: two assemblies with the same seed differ", typ)
		}
	}
}

func TestAssemble_SeedsDiffer(t *testing.T) {
	cfg := BlockConfig{Type: TypeMultiplication, Count: 10, Constraints: Constraints{MultiplicandDigits: Ptr(4), MultiplierDigits: Ptr(3)}}
	a := mustAssemble(t, cfg, 1, 1)
	b := mustAssemble(t, cfg, 1, 2)
	if reflect.DeepEqual(a.Questions, b.Questions) {
		t.Error("different seeds produced identical blocks")
	}
}

func TestAssemble_ExactCountEveryType(t *testing.T) {
	if testing.Short() {
		t.Skip("assembles 200 questions of every type")
	}
	for _, typ := range AllTypes() {
		cfg := BlockConfig{Type: typ, Count: 200}
		b := mustAssemble(t, cfg, 1, 99)
		want := ExpectedCount(cfg)
		if len(b.Questions) != want {
			t.Errorf("%v: got %d questions, want %d", typ, len(b.Questions), want)
			continue
		}
		for i, q := range b.Questions {
			if q.ID != 1+i {
				t.Errorf("%v: question %d has id %d", typ, i, q.ID)
				break
			}
			if q.Type != typ {
				t.Errorf("%v: question %d has type %v", typ, i, q.Type)
				break
			}
			if err := (&StructuralValidator{}).Validate(&q, Input{Type: typ}); err != nil {
				t.Errorf("%v: question %d: %v", typ, i, err)
				break
			}
		}
	}
}

func TestAssemble_UniqueWhenDomainAllows(t *testing.T) {
	cfg := BlockConfig{Type: TypeAddition, Count: 50, Constraints: Constraints{Digits: Ptr(3), Rows: Ptr(3)}}
	b := mustAssemble(t, cfg, 1, 2024)
	seen := make(map[Signature]bool)
	for _, q := range b.Questions {
		sig := SignatureOf(q)
		if seen[sig] {
			t.Fatalf("duplicate signature %q", sig)
		}
		seen[sig] = true
	}
}

func TestAssemble_DigitExactness(t *testing.T) {
	for _, typ := range []QuestionType{TypeAddition, TypeSubtraction, TypeAddSub} {
		for d := 1; d <= 8; d++ {
			for _, rows := range []int{2, 3, 5} {
				cfg := BlockConfig{Type: typ, Count: 10, Constraints: Constraints{Digits: Ptr(d), Rows: Ptr(rows)}}
				for _, q := range mustAssemble(t, cfg, 1, int64(d*100+rows)).Questions {
					for _, o := range q.Operands {
						if got := digitCount(o.Units); got != d {
							t.Fatalf("%v d=%d rows=%d: operand %s has %d digits (%q)", typ, d, rows, o, got, q.Text)
						}
					}
				}
			}
		}
	}

	for md := 1; md <= 9; md++ {
		for mr := 1; mr <= 9; mr++ {
			cfg := BlockConfig{Type: TypeMultiplication, Count: 5, Constraints: Constraints{MultiplicandDigits: Ptr(md), MultiplierDigits: Ptr(mr)}}
			for _, q := range mustAssemble(t, cfg, 1, 77).Questions {
				a, b := q.Operands[0].Units, q.Operands[1].Units
				if digitCount(a) != md || digitCount(b) != mr {
					t.Fatalf("multiplication %dx%d: got %d × %d", md, mr, a, b)
				}
				if n, _ := q.Answer.Int(); n != a*b {
					t.Fatalf("%d × %d answered %d", a, b, n)
				}
			}
		}
	}
}

func TestAssemble_LargeMultiplicationTrailingZeros(t *testing.T) {
	for _, w := range [][2]int{{12, 4}, {14, 4}, {17, 1}, {10, 8}} {
		cfg := BlockConfig{Type: TypeMultiplication, Count: 20, Constraints: Constraints{MultiplicandDigits: Ptr(w[0]), MultiplierDigits: Ptr(w[1])}}
		for _, q := range mustAssemble(t, cfg, 1, 5).Questions {
			a := q.Operands[0].Units
			if a%100 == 0 {
				t.Errorf("%dx%d: operand %d has more than one trailing zero", w[0], w[1], a)
			}
			if digitCount(a) != w[0] {
				t.Errorf("%dx%d: operand %d lost its width", w[0], w[1], a)
			}
		}
	}
}

func TestAssemble_MaxWidths(t *testing.T) {
	tests := []struct {
		name   string
		typ    QuestionType
		c      Constraints
		widths []int // per operand; the last entry repeats for the rest
		whole  bool  // operands are tenths; check the whole part
		check  func(q Question) bool
	}{
		{
			name: "addition 17 digits", typ: TypeAddition,
			c:      Constraints{Digits: Ptr(17), Rows: Ptr(30)},
			widths: []int{17},
			check: func(q Question) bool {
				n, _ := q.Answer.Int()
				return n == sum(operandUnits(q))
			},
		},
		{
			name: "subtraction 17 digits", typ: TypeSubtraction,
			c:      Constraints{Digits: Ptr(17), Rows: Ptr(10)},
			widths: []int{17},
			check: func(q Question) bool {
				ns := operandUnits(q)
				n, _ := q.Answer.Int()
				return n >= 0 && n == ns[0]-sum(ns[1:])
			},
		},
		{
			name: "add/sub 17 digits", typ: TypeAddSub,
			c:      Constraints{Digits: Ptr(17), Rows: Ptr(30)},
			widths: []int{17},
			check: func(q Question) bool {
				n, _ := q.Answer.Int()
				return n >= 0 && n == applyOps(operandUnits(q), q.Operators)
			},
		},
		{
			name: "integer add/sub 17 digits", typ: TypeIntegerAddSub,
			c:      Constraints{Digits: Ptr(17), Rows: Ptr(30)},
			widths: []int{17},
			check: func(q Question) bool {
				n, _ := q.Answer.Int()
				return n == applyOps(operandUnits(q), q.Operators)
			},
		},
		{
			name: "decimal add/sub 16 digits", typ: TypeDecimalAddSub,
			c:      Constraints{Digits: Ptr(16), Rows: Ptr(30)},
			widths: []int{16},
			whole:  true,
			check: func(q Question) bool {
				return q.Answer.Num == applyOps(operandUnits(q), q.Operators) && q.Answer.Places == 1
			},
		},
		{
			name: "multiplication 9x9", typ: TypeMultiplication,
			c:      Constraints{MultiplicandDigits: Ptr(9), MultiplierDigits: Ptr(9)},
			widths: []int{9, 9},
			check:  isProduct,
		},
		{
			name: "multiplication 17x1", typ: TypeMultiplication,
			c:      Constraints{MultiplicandDigits: Ptr(17), MultiplierDigits: Ptr(1)},
			widths: []int{17, 1},
			check:  isProduct,
		},
		{
			name: "multiplication 1x17", typ: TypeMultiplication,
			c:      Constraints{MultiplicandDigits: Ptr(1), MultiplierDigits: Ptr(17)},
			widths: []int{1, 17},
			check:  isProduct,
		},
		{
			name: "division 18/18", typ: TypeDivision,
			c:      Constraints{DividendDigits: Ptr(18), DivisorDigits: Ptr(18)},
			widths: []int{18, 18},
			check:  isQuotient,
		},
		{
			name: "division 18/1", typ: TypeDivision,
			c:      Constraints{DividendDigits: Ptr(18), DivisorDigits: Ptr(1)},
			widths: []int{18, 1},
			check:  isQuotient,
		},
		{
			name: "square root of 18 digits", typ: TypeSquareRoot,
			c:      Constraints{RootDigits: Ptr(18)},
			widths: []int{18},
			check: func(q Question) bool {
				r, _ := q.Answer.Int()
				return r*r == q.Operands[0].Units
			},
		},
		{
			name: "cube root of 18 digits", typ: TypeCubeRoot,
			c:      Constraints{RootDigits: Ptr(18)},
			widths: []int{18},
			check: func(q Question) bool {
				r, _ := q.Answer.Int()
				return r*r*r == q.Operands[0].Units
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := BlockConfig{Type: tc.typ, Count: 10, Constraints: tc.c}
			for _, q := range mustAssemble(t, cfg, 1, 31).Questions {
				for i, o := range q.Operands {
					want := tc.widths[min(i, len(tc.widths)-1)]
					units := o.Units
					if tc.whole {
						units /= 10
					}
					if got := digitCount(units); got != want {
						t.Fatalf("operand %d = %s has %d digits, want %d (%q)", i, o, got, want, q.Text)
					}
				}
				if !tc.check(q) {
					t.Fatalf("wrong answer %s for %q", q.Answer, q.Text)
				}
			}
		})
	}
}

func TestAssemble_RejectsUnrepresentableWidth(t *testing.T) {
	tests := []BlockConfig{
		{Type: TypeAddition, Count: 5, Constraints: Constraints{Digits: Ptr(25)}},
		{Type: TypeMultiplication, Count: 5, Constraints: Constraints{MultiplicandDigits: Ptr(20), MultiplierDigits: Ptr(20)}},
		{Type: TypeSquareRoot, Count: 5, Constraints: Constraints{RootDigits: Ptr(25)}},
	}
	for _, cfg := range tests {
		b, err := Assemble(cfg, 1, 9)
		if !errors.Is(err, ErrWidth) {
			t.Errorf("%v: Assemble = %v, want ErrWidth", cfg.Type, err)
		}
		if len(b.Questions) != 0 {
			t.Errorf("%v: %d questions built for a rejected width", cfg.Type, len(b.Questions))
		}
		if _, err := Synthesize(1, cfg.Type, cfg.Constraints, 9); !errors.Is(err, ErrWidth) {
			t.Errorf("%v: Synthesize = %v, want ErrWidth", cfg.Type, err)
		}
	}
}

func operandUnits(q Question) []int64 {
	ns := make([]int64, len(q.Operands))
	for i, o := range q.Operands {
		ns[i] = o.Units
	}
	return ns
}

func isProduct(q Question) bool {
	n, _ := q.Answer.Int()
	return n == q.Operands[0].Units*q.Operands[1].Units
}

func isQuotient(q Question) bool {
	n, _ := q.Answer.Int()
	return n*q.Operands[1].Units == q.Operands[0].Units
}

func TestAssemble_NonNegative(t *testing.T) {
	types := []QuestionType{
		TypeSubtraction, TypeAddSub, TypeDecimalAddSub, TypeVedicDropping10Method,
		TypeDirectAddSub, TypeSmallFriendsAddSub, TypeBigFriendsAddSub,
	}
	for _, typ := range types {
		for d := 1; d <= 4; d++ {
			cfg := BlockConfig{Type: typ, Count: 25, Constraints: Constraints{Digits: Ptr(d), Rows: Ptr(6)}}
			for _, q := range mustAssemble(t, cfg, 1, int64(d)).Questions {
				for i, total := range runningTotals(&q) {
					if total < 0 {
						t.Fatalf("%v: running total %d negative after row %d in %q", typ, total, i+1, q.Text)
					}
				}
				if q.Answer.Num < 0 {
					t.Fatalf("%v: negative answer %s", typ, q.Answer)
				}
			}
		}
	}
}

func TestAssemble_ExactDivision(t *testing.T) {
	for dd := 1; dd <= 8; dd++ {
		for ds := 1; ds <= 5; ds++ {
			cfg := BlockConfig{Type: TypeDivision, Count: 10, Constraints: Constraints{DividendDigits: Ptr(dd), DivisorDigits: Ptr(ds)}}
			for _, q := range mustAssemble(t, cfg, 1, int64(dd*10+ds)).Questions {
				a, b := q.Operands[0].Units, q.Operands[1].Units
				if b == 0 || a%b != 0 {
					t.Fatalf("%d ÷ %d is not exact", a, b)
				}
				if n, ok := q.Answer.Int(); !ok || n != a/b {
					t.Fatalf("%d ÷ %d answered %s", a, b, q.Answer)
				}
				if digitCount(a) != dd {
					t.Fatalf("dividend %d does not have %d digits", a, dd)
				}
			}
		}
	}
}

func TestAssemble_PerfectPower(t *testing.T) {
	for d := 1; d <= 12; d++ {
		for _, typ := range []QuestionType{TypeSquareRoot, TypeCubeRoot} {
			cfg := BlockConfig{Type: typ, Count: 5, Constraints: Constraints{RootDigits: Ptr(d)}}
			for _, q := range mustAssemble(t, cfg, 1, int64(d)).Questions {
				n := q.Operands[0].Units
				r, _ := q.Answer.Int()
				want := r * r
				if typ == TypeCubeRoot {
					want *= r
				}
				if n != want {
					t.Fatalf("%v: %d is not the power of %d", typ, n, r)
				}
				if digitCount(n) != d {
					t.Fatalf("%v: %d does not have %d digits", typ, n, d)
				}
			}
		}
	}
}

func TestAssemble_ScenarioA(t *testing.T) {
	cfg := BlockConfig{Type: TypeAddition, Count: 5, Constraints: Constraints{Digits: Ptr(2), Rows: Ptr(2)}}
	b := mustAssemble(t, cfg, 1, 42)
	if len(b.Questions) != 5 {
		t.Fatalf("got %d questions", len(b.Questions))
	}
	for i, q := range b.Questions {
		if q.ID != i+1 {
			t.Errorf("question %d has id %d", i, q.ID)
		}
		if len(q.Operands) != 2 {
			t.Fatalf("question %d has %d operands", i, len(q.Operands))
		}
		x, y := q.Operands[0].Units, q.Operands[1].Units
		if x < 10 || x > 99 || y < 10 || y > 99 {
			t.Errorf("operands %d, %d are not 2-digit", x, y)
		}
		if n, _ := q.Answer.Int(); n != x+y {
			t.Errorf("%d + %d answered %d", x, y, n)
		}
		if q.Orientation != Vertical {
			t.Errorf("orientation %q", q.Orientation)
		}
	}
}

func TestAssemble_ScenarioB(t *testing.T) {
	cfg := BlockConfig{Type: TypeDivision, Count: 1, Constraints: Constraints{DividendDigits: Ptr(3), DivisorDigits: Ptr(1)}}
	q := mustAssemble(t, cfg, 1, 7).Questions[0]
	a, b := q.Operands[0].Units, q.Operands[1].Units
	if a < 100 || a > 999 {
		t.Errorf("dividend %d outside [100, 999]", a)
	}
	if b < 1 || b > 9 {
		t.Errorf("divisor %d outside [1, 9]", b)
	}
	if a%b != 0 {
		t.Errorf("%d mod %d != 0", a, b)
	}
}

func TestAssemble_ScenarioC(t *testing.T) {
	cfg := BlockConfig{Type: TypeVedicTables, Count: 1, Constraints: Constraints{TableNumber: Ptr(7), Rows: Ptr(12)}}
	b := mustAssemble(t, cfg, 1, 1)
	if len(b.Questions) != 12 {
		t.Fatalf("got %d questions, want 12", len(b.Questions))
	}
	for k, q := range b.Questions {
		if want := fmt.Sprintf("7 × %d =", k+1); q.Text != want {
			t.Errorf("row %d text %q, want %q", k, q.Text, want)
		}
		if n, _ := q.Answer.Int(); n != int64(7*(k+1)) {
			t.Errorf("row %d answer %d", k, n)
		}
		if q.ID != k+1 {
			t.Errorf("row %d id %d", k, q.ID)
		}
		if q.Orientation != Horizontal {
			t.Errorf("row %d orientation %q", k, q.Orientation)
		}
	}
}

func TestAssemble_TablesDrawnBase(t *testing.T) {
	cfg := BlockConfig{Type: TypeVedicTables, Count: 4}
	a := mustAssemble(t, cfg, 5, 31)
	b := mustAssemble(t, cfg, 5, 31)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("drawn table base is not reproducible")
	}
	base := a.Questions[0].Operands[0].Units
	if base < 1 || base > 99 {
		t.Errorf("base %d outside [1, 99]", base)
	}
	want := int64(NewSeededStream(31, 5).Float64()*99) + 1
	if base != want {
		t.Errorf("base = %d, want %d", base, want)
	}
}

func TestAssemble_ScenarioD(t *testing.T) {
	cfg := BlockConfig{Type: TypeSquareRoot, Count: 3, Constraints: Constraints{RootDigits: Ptr(4)}}
	b := mustAssemble(t, cfg, 10, 5)
	for i, q := range b.Questions {
		if q.ID != 10+i {
			t.Errorf("question %d has id %d", i, q.ID)
		}
		n := q.Operands[0].Units
		r, _ := q.Answer.Int()
		if n < 1000 || n > 9999 {
			t.Errorf("operand %d is not 4 digits", n)
		}
		if r*r != n || isqrt(n) != r {
			t.Errorf("√%d answered %d", n, r)
		}
	}
}

func TestAssemble_ScenarioE(t *testing.T) {
	// Base 10 complements have only nine distinct questions.
	cfg := BlockConfig{Type: TypeVedicSubtractionComplement, Count: 30, Constraints: Constraints{Base: Ptr(10)}}
	b := mustAssemble(t, cfg, 1, 8)
	if len(b.Questions) != 30 {
		t.Fatalf("got %d questions, want 30", len(b.Questions))
	}
	distinct := make(map[Signature]bool)
	for _, q := range b.Questions {
		distinct[SignatureOf(q)] = true
	}
	if len(distinct) > 9 {
		t.Errorf("%d distinct questions from a 9-question domain", len(distinct))
	}
}

func TestAssemble_ZeroCount(t *testing.T) {
	b := mustAssemble(t, BlockConfig{Type: TypeAddition}, 1, 1)
	if b.Questions == nil || len(b.Questions) != 0 {
		t.Errorf("want empty non-nil questions, got %#v", b.Questions)
	}
}

func TestAssembleUnseeded(t *testing.T) {
	cfg := BlockConfig{Type: TypeMultiplication, Count: 15}
	b, err := AssembleUnseeded(cfg, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Questions) != 15 {
		t.Fatalf("got %d questions", len(b.Questions))
	}
	if b.Questions[0].ID != 4 {
		t.Errorf("first id %d, want 4", b.Questions[0].ID)
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	for _, typ := range AllTypes() {
		a, err := Synthesize(7, typ, Constraints{}, 99)
		if err != nil {
			t.Fatalf("%v: %v", typ, err)
		}
		b, _ := Synthesize(7, typ, Constraints{}, 99)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%v: Synthesize is not deterministic", typ)
		}
		if a.ID != 7 || a.Type != typ {
			t.Errorf("%v: id %d type %v", typ, a.ID, a.Type)
		}
	}
}

func TestSynthesizeWithStream(t *testing.T) {
	q, err := SynthesizeWithStream(1, TypeAddition, Constraints{Digits: Ptr(3)}, NewSeededStream(3, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(q.Operands) != 2 {
		t.Errorf("got %d operands", len(q.Operands))
	}
	if _, err := SynthesizeWithStream(1, TypeAddition, Constraints{}, nil); err != nil {
		t.Errorf("nil stream: %v", err)
	}
}

func TestSynthesize_UnsatisfiableUsesFallback(t *testing.T) {
	// A 5-digit divisor cannot divide a 2-digit dividend.
	q, err := Synthesize(1, TypeDivision, Constraints{DividendDigits: Ptr(2), DivisorDigits: Ptr(5)}, 3)
	if err != nil {
		t.Fatal(err)
	}
	a, b := q.Operands[0].Units, q.Operands[1].Units
	if a%b != 0 || digitCount(a) != 2 {
		t.Errorf("fallback produced %d ÷ %d", a, b)
	}
}

func TestAttempt_RecoversPanic(t *testing.T) {
	_, err := attempt(func(*gen) (Question, error) { panic("boom") }, &gen{})
	if err == nil {
		t.Fatal("expected error from panicking synthesis")
	}
	_, err = attempt(func(*gen) (Question, error) { return Question{}, errUnsatisfiable }, &gen{})
	if !errors.Is(err, errUnsatisfiable) {
		t.Errorf("err = %v", err)
	}
}

func TestMinimalQuestion(t *testing.T) {
	for i := range 20 {
		m := minimalQuestion(minimalMultiply, i)
		a, b := m.Operands[0].Units, m.Operands[1].Units
		if a != 2+int64(i%8) || b != 1+int64(i%9) {
			t.Errorf("multiply %d: %d × %d", i, a, b)
		}

		d := minimalQuestion(minimalDivide, i)
		if q, _ := d.Answer.Int(); d.Operands[0].Units != d.Operands[1].Units*q {
			t.Errorf("divide %d: %q answered %d", i, d.Text, q)
		}

		s := minimalQuestion(minimalAdd, i)
		if n, _ := s.Answer.Int(); n != s.Operands[0].Units+s.Operands[1].Units {
			t.Errorf("add %d: %q answered %d", i, s.Text, n)
		}
	}
}

func TestAssemble_BodmasDifficulty(t *testing.T) {
	shape := func(q Question) string { return fmt.Sprint(q.Operators) }

	cfg := BlockConfig{Type: TypeVedicBodmas, Count: 20, Constraints: Constraints{BodmasDifficulty: "extreme"}}
	for _, q := range mustAssemble(t, cfg, 1, 8).Questions {
		if got := shape(q); got != fmt.Sprint(bodmasShapes["hard"]) {
			t.Fatalf("unknown difficulty built %s (%q), want the hard shape", got, q.Text)
		}
		ns := operandUnits(q)
		if n, _ := q.Answer.Int(); n != ns[0]+ns[1]*ns[2]-ns[3] {
			t.Fatalf("%q answered %s", q.Text, q.Answer)
		}
	}

	cfg.Constraints.BodmasDifficulty = caseMix
	seen := make(map[string]bool)
	for _, q := range mustAssemble(t, cfg, 1, 8).Questions {
		seen[shape(q)] = true
	}
	if len(seen) < 2 {
		t.Errorf("mix built only %v", seen)
	}
}
