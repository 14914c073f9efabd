package decimal

import (
	"context"
	"errors"
	"math/big"
	"testing"

	apperrors "github.com/agbru/decparse/internal/errors"
)

func utf16Digits(s string) []uint16 {
	out := make([]uint16, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = uint16(s[i])
	}
	return out
}

func TestParseUTF16_MatchesByteParse(t *testing.T) {
	p := testParser()
	s := "984127365091823746509876132450987612345098761234"
	want := mustParse(t, p, s)
	got, err := p.ParseUTF16(context.Background(), utf16Digits(s), 0, len(s))
	if err != nil {
		t.Fatalf("ParseUTF16: %v", err)
	}
	if got.Cmp(want) != 0 {
		t.Error("UTF-16 parse differs from byte parse")
	}
}

func TestParseUTF16_RejectsNonDigitUnit(t *testing.T) {
	p := testParser()
	units := utf16Digits("12345")
	units[3] = 0x0661 // ARABIC-INDIC DIGIT ONE: a digit, but not ASCII
	_, err := p.ParseUTF16(context.Background(), units, 0, len(units))
	var digitErr apperrors.InvalidDigitError
	if !errors.As(err, &digitErr) {
		t.Fatalf("got %v, want InvalidDigitError", err)
	}
	if digitErr.Pos != 3 || digitErr.Char != 0x0661 {
		t.Errorf("error %+v, want pos=3 char=U+0661", digitErr)
	}
}

// stringSeq adapts a Go string to the CharSequence capability set.
type stringSeq string

func (s stringSeq) Len() int           { return len(s) }
func (s stringSeq) CharAt(i int) rune  { return rune(s[i]) }

func TestParseCharSequence_MatchesByteParse(t *testing.T) {
	p := testParser()
	s := "31415926535897932384626433832795028841971693993751"
	got, err := p.ParseCharSequence(context.Background(), stringSeq(s), 5, 30)
	if err != nil {
		t.Fatalf("ParseCharSequence: %v", err)
	}
	want := mustParse(t, p, s[5:35])
	if got.Cmp(want) != 0 {
		t.Error("CharSequence window parse differs from byte parse")
	}
}

// hugeSeq pretends to hold more digits than the pipeline supports without
// allocating them.
type hugeSeq struct{}

func (hugeSeq) Len() int          { return MaxDigits + 1 }
func (hugeSeq) CharAt(int) rune   { return '9' }

func TestParseCharSequence_LengthExceeded(t *testing.T) {
	p := testParser()
	_, err := p.ParseCharSequence(context.Background(), hugeSeq{}, 0, MaxDigits+1)
	var lengthErr apperrors.LengthExceededError
	if !errors.As(err, &lengthErr) {
		t.Fatalf("got %v, want LengthExceededError", err)
	}
	if lengthErr.Max != MaxDigits {
		t.Errorf("reported maximum %d, want %d", lengthErr.Max, MaxDigits)
	}
}

func TestConcatLaw_Direct(t *testing.T) {
	p := testParser()
	l := "123456789012345678901234567890123"
	r := "987654321098765432109876543210987654321"
	parsedL := mustParse(t, p, l)
	parsedR := mustParse(t, p, r)
	parsedLR := mustParse(t, p, l+r)

	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(r))), nil)
	want := new(big.Int).Mul(parsedL, pow)
	want.Add(want, parsedR)
	if parsedLR.Cmp(want) != 0 {
		t.Error("parse(L++R) != parse(L)*10^|R| + parse(R)")
	}
}
