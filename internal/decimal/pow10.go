// This file provides the memoised powers-of-ten ladder that feeds the
// recursive combine step.

package decimal

import (
	"math/big"
	"sync"
)

// powerCache memoises powers[i] = 10^(threshold * 2^i). Slot zero is
// computed directly; every further slot is the square of its predecessor,
// which routes through the configured multiplier and therefore through the
// FFT once the ladder grows large.
//
// A mutex rather than an atomic snapshot guards the ladder: each slot
// derives from the previous one, so a publication race would duplicate a
// chain of expensive squarings instead of a single cheap recompute. Readers
// never observe a partially-built slot. The cache is retained across
// conversions done through the same Parser.
type powerCache struct {
	mu        sync.Mutex
	threshold int
	mult      Multiplier
	powers    []*big.Int
}

func newPowerCache(threshold int, mult Multiplier) *powerCache {
	return &powerCache{threshold: threshold, mult: mult}
}

// power returns 10^(threshold * 2^k), extending the ladder on demand.
func (c *powerCache) power(k int) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.powers); i <= k; i++ {
		var z *big.Int
		if i == 0 {
			z = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(c.threshold)), nil)
		} else {
			var err error
			z, err = c.mult.Square(c.powers[i-1])
			if err != nil {
				return nil, err
			}
		}
		c.powers = append(c.powers, z)
	}
	return c.powers[k], nil
}
