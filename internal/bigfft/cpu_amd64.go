//go:build amd64

// This file probes CPU SIMD capabilities on amd64. The pure-Go kernels do
// not require any of these features; the probe feeds the --verbose hardware
// report and lets deployments confirm which vector widths the compiler can
// target on the host.

package bigfft

import "golang.org/x/sys/cpu"

// CPUFeatures holds the detected CPU feature flags.
type CPUFeatures struct {
	AVX2   bool
	AVX512 bool
	BMI2   bool
	ADX    bool
}

// DetectCPUFeatures reports the SIMD-related capabilities of the host CPU.
func DetectCPUFeatures() CPUFeatures {
	return CPUFeatures{
		AVX2:   cpu.X86.HasAVX2,
		AVX512: cpu.X86.HasAVX512F && cpu.X86.HasAVX512DQ,
		BMI2:   cpu.X86.HasBMI2,
		ADX:    cpu.X86.HasADX,
	}
}

// String returns a human-readable summary of the detected features.
func (f CPUFeatures) String() string {
	features := ""
	appendFeature := func(name string, present bool) {
		if !present {
			return
		}
		if features != "" {
			features += ", "
		}
		features += name
	}
	appendFeature("AVX-512", f.AVX512)
	appendFeature("AVX2", f.AVX2)
	appendFeature("BMI2", f.BMI2)
	appendFeature("ADX", f.ADX)
	if features == "" {
		return "No SIMD features detected"
	}
	return "CPU Features: " + features
}
