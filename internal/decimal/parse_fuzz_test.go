package decimal

import (
	"context"
	"math/big"
	"testing"
)

// FuzzParseBytes cross-validates the pipeline against math/big for
// arbitrary byte inputs: valid digit strings must agree with the oracle and
// invalid ones must be rejected, never mis-parsed.
func FuzzParseBytes(f *testing.F) {
	f.Add([]byte("0"))
	f.Add([]byte("18446744073709551616"))
	f.Add([]byte("00000000000000000000"))
	f.Add([]byte("9806543217980654321798065432179806543217"))
	f.Add([]byte("12a45"))

	p := NewParser(Options{RecursionThreshold: 32}, nil)
	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) == 0 || len(data) > 1<<16 {
			return
		}
		valid := true
		for _, c := range data {
			if c < '0' || c > '9' {
				valid = false
				break
			}
		}

		got, err := p.ParseBytes(context.Background(), data, 0, len(data))
		if !valid {
			if err == nil {
				t.Fatalf("non-digit input %q was accepted", data)
			}
			return
		}
		if err != nil {
			t.Fatalf("digit input rejected: %v", err)
		}
		want, ok := new(big.Int).SetString(string(data), 10)
		if !ok {
			t.Fatalf("oracle rejected %q", data)
		}
		if got.Cmp(want) != 0 {
			t.Fatalf("parse of %q differs from math/big", data[:min(len(data), 40)])
		}
	})
}
