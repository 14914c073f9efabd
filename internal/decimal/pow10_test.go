package decimal

import (
	"math/big"
	"sync"
	"testing"
)

func TestPowerCache_MatchesExpOracle(t *testing.T) {
	c := newPowerCache(20, fftMultiplier{})
	for k := 0; k <= 6; k++ {
		got, err := c.power(k)
		if err != nil {
			t.Fatalf("power(%d): %v", k, err)
		}
		exp := int64(20) << k
		want := new(big.Int).Exp(big.NewInt(10), big.NewInt(exp), nil)
		if got.Cmp(want) != 0 {
			t.Errorf("power(%d) != 10^%d", k, exp)
		}
	}
}

func TestPowerCache_ConcurrentReaders(t *testing.T) {
	c := newPowerCache(20, fftMultiplier{})
	want, err := c.power(5)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.power(5)
			if err != nil || got.Cmp(want) != 0 {
				t.Errorf("concurrent power(5) = %v, %v", got, err)
			}
		}()
	}
	wg.Wait()
}

func TestPowerCache_RetainedAcrossParses(t *testing.T) {
	p := NewParser(Options{RecursionThreshold: 20}, nil)
	s := "123456789012345678901234567890123456789012345"
	first := mustParse(t, p, s)
	second := mustParse(t, p, s)
	if first.Cmp(second) != 0 {
		t.Error("repeated parse through the cached ladder changed the result")
	}
	if len(p.powers.powers) == 0 {
		t.Error("ladder was not populated")
	}
}
