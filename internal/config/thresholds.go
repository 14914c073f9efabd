package config

import "runtime"

// Threshold resolution chain (highest priority first):
//   1. CLI flags (--recursion-threshold, --parallel-threshold)
//   2. Environment variables (DECPARSE_RECURSION_THRESHOLD, etc.)
//   3. Adaptive hardware estimation (this file)
//   4. Static defaults in the decimal package

// ApplyAdaptiveThresholds adjusts the configuration thresholds based on
// hardware characteristics (CPU cores) when default values are detected.
// This provides automatic performance tuning without requiring explicit
// benchmarking.
//
// The function only modifies thresholds that are set to their zero default,
// preserving any user-specified overrides via command-line flags.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.ParallelThreshold == 0 {
		cfg.ParallelThreshold = EstimateOptimalParallelThreshold()
	}
	return cfg
}

// EstimateOptimalParallelThreshold provides a heuristic estimate of the
// digit count above which splitting the conversion across goroutines pays
// for the scheduling overhead, without running benchmarks.
func EstimateOptimalParallelThreshold() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1:
		return 1 << 30 // No parallelism
	case numCPU <= 2:
		return 1 << 18 // High threshold - parallelism overhead is significant
	case numCPU <= 8:
		return 1 << 16 // Default
	default:
		return 1 << 14 // High core count - aggressive parallelism
	}
}
