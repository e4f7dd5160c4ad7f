package problemgen

import "testing"

func TestSignatureOf_UnorderedSortsOperands(t *testing.T) {
	a := times(34, 12)
	a.Type = TypeMultiplication
	b := times(12, 34)
	b.Type = TypeMultiplication
	if SignatureOf(a) != SignatureOf(b) {
		t.Errorf("%q != %q", SignatureOf(a), SignatureOf(b))
	}
	if got, want := SignatureOf(a), Signature("×|12,34"); got != want {
		t.Errorf("signature = %q, want %q", got, want)
	}
}

func TestSignatureOf_OrderedKeepsOrder(t *testing.T) {
	a := inline("÷", IntAnswer(4), ints(84, 21))
	a.Type = TypeDivision
	b := inline("÷", IntAnswer(0), ints(21, 84))
	b.Type = TypeDivision
	if SignatureOf(a) == SignatureOf(b) {
		t.Errorf("ordered signatures collide: %q", SignatureOf(a))
	}
}

func TestSignatureOf_OperatorList(t *testing.T) {
	a := chain("±", []string{"+", "-"}, IntAnswer(6), ints(5, 3, 2))
	a.Type = TypeAddSub
	b := chain("±", []string{"-", "+"}, IntAnswer(4), ints(5, 3, 2))
	b.Type = TypeAddSub
	if SignatureOf(a) == SignatureOf(b) {
		t.Errorf("operator lists ignored: %q", SignatureOf(a))
	}
	if got, want := SignatureOf(a), Signature("±|5,3,2|+,-"); got != want {
		t.Errorf("signature = %q, want %q", got, want)
	}
}

func TestSignatureOf_DecimalsSortByValue(t *testing.T) {
	q := Question{Type: TypeAddition, Operator: "+", Operands: []Decimal{Int(3), Tenths(25), Int(2)}}
	if got, want := SignatureOf(q), Signature("+|2,2.5,3"); got != want {
		t.Errorf("signature = %q, want %q", got, want)
	}
}

func TestSignatureOf_DoesNotMutate(t *testing.T) {
	q := times(9, 3)
	q.Type = TypeMultiplication
	SignatureOf(q)
	if q.Operands[0].Units != 9 {
		t.Error("SignatureOf reordered the question's operands")
	}
}

func TestSignatureSet(t *testing.T) {
	s := make(signatureSet)
	if !s.add("a") {
		t.Error("first add reported duplicate")
	}
	if s.add("a") {
		t.Error("second add reported new")
	}
}
