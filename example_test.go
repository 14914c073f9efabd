package decparse_test

import (
	"fmt"
	"math/big"

	"github.com/agbru/decparse"
)

// ExampleParseBigInteger demonstrates parsing a signed decimal numeral.
func ExampleParseBigInteger() {
	v, err := decparse.ParseBigInteger([]byte("-18446744073709551616"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v.Sign(), v.BitLen())
	// Output: -1 65
}

// ExampleMultiply demonstrates the size-dispatched multiplication surface.
func ExampleMultiply() {
	a := new(big.Int).Lsh(big.NewInt(1), 100_000) // large enough for the FFT path
	b := new(big.Int).Add(a, big.NewInt(1))

	product, err := decparse.Multiply(a, b, false)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(product.BitLen())
	// Output: 200001
}

// ExampleFormatDecimal demonstrates the parse/format round trip.
func ExampleFormatDecimal() {
	v, _ := decparse.ParseBigIntegerBytes([]byte("9806543217"), 0, 10)
	fmt.Println(decparse.FormatDecimal(v))
	// Output: 9806543217
}
