// This file provides memory pooling for FFT vectors and the goroutine
// semaphore shared by the parallel multiplication paths.

package bigfft

import (
	"math/bits"
	"runtime"
	"sync"
)

// ─────────────────────────────────────────────────────────────────────────────
// Complex Vector Pool
// ─────────────────────────────────────────────────────────────────────────────

// complexVecPools pools []complexPoint buffers by power-of-two capacity
// class. Transform lengths are 2^n or 3*2^n, so rounding the request up to
// the next power of two wastes at most a third of a buffer while keeping the
// class lookup a single bit scan.
var complexVecPools [28]sync.Pool

// poolClassFor returns the pool index whose buffers hold at least size
// points, or -1 when the size is too large for pooling.
func poolClassFor(size int) int {
	if size <= 0 {
		return 0
	}
	idx := bits.Len(uint(size - 1))
	if idx >= len(complexVecPools) {
		return -1
	}
	return idx
}

// acquireComplexVec returns a vector of exactly size points. The contents
// are undefined; toFFTVector overwrites every slot.
func acquireComplexVec(size int) []complexPoint {
	idx := poolClassFor(size)
	if idx < 0 {
		return make([]complexPoint, size)
	}
	if v, ok := complexVecPools[idx].Get().(*[]complexPoint); ok {
		return (*v)[:size]
	}
	return make([]complexPoint, size, 1<<idx)
}

// releaseComplexVec returns a vector obtained from acquireComplexVec to its
// pool. Safe to call with nil.
func releaseComplexVec(vec []complexPoint) {
	if vec == nil {
		return
	}
	idx := poolClassFor(cap(vec))
	if idx < 0 || cap(vec) != 1<<idx {
		// Directly allocated or oddly sized; let the GC take it.
		return
	}
	full := vec[:cap(vec)]
	complexVecPools[idx].Put(&full)
}

// ─────────────────────────────────────────────────────────────────────────────
// Parallelism Semaphore
// ─────────────────────────────────────────────────────────────────────────────

var (
	semaphore     chan struct{}
	semaphoreOnce sync.Once
)

// getSemaphore returns the package semaphore bounding the number of
// goroutines spawned by parallel multiplication. Work that cannot obtain a
// slot runs inline on the caller's goroutine.
func getSemaphore() chan struct{} {
	semaphoreOnce.Do(func() {
		n := runtime.GOMAXPROCS(0)
		if n < 1 {
			n = 1
		}
		semaphore = make(chan struct{}, n)
	})
	return semaphore
}
