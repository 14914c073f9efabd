//go:build !amd64

package bigfft

// CPUFeatures holds the detected CPU feature flags. On non-amd64
// architectures no probing is performed.
type CPUFeatures struct {
	AVX2   bool
	AVX512 bool
	BMI2   bool
	ADX    bool
}

// DetectCPUFeatures reports the SIMD-related capabilities of the host CPU.
func DetectCPUFeatures() CPUFeatures {
	return CPUFeatures{}
}

// String returns a human-readable summary of the detected features.
func (f CPUFeatures) String() string {
	return "No SIMD features detected"
}
