package config

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	apperrors "github.com/agbru/decparse/internal/errors"
)

func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	return ParseConfig("decparse", args, io.Discard)
}

func TestParseConfig_PositionalNumeral(t *testing.T) {
	cfg, err := parse(t, "123456")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Input != "123456" {
		t.Errorf("Input = %q", cfg.Input)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s", cfg.Timeout)
	}
}

func TestParseConfig_NoInput(t *testing.T) {
	_, err := parse(t)
	var configErr apperrors.ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("got %v, want ConfigError", err)
	}
}

func TestParseConfig_MutuallyExclusiveInputs(t *testing.T) {
	_, err := parse(t, "--value", "1", "--file", "x.txt")
	var configErr apperrors.ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("got %v, want ConfigError", err)
	}
}

func TestParseConfig_ThresholdValidation(t *testing.T) {
	if _, err := parse(t, "--recursion-threshold", "5", "1"); err == nil {
		t.Error("threshold below 19 digits must be rejected")
	}
	cfg, err := parse(t, "--recursion-threshold", "100", "1")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RecursionThreshold != 100 {
		t.Errorf("RecursionThreshold = %d", cfg.RecursionThreshold)
	}
}

func TestParseConfig_QuietVerboseConflict(t *testing.T) {
	if _, err := parse(t, "-q", "-v", "1"); err == nil {
		t.Error("--quiet with --verbose must be rejected")
	}
}

func TestParseConfig_Help(t *testing.T) {
	_, err := parse(t, "--help")
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("got %v, want flag.ErrHelp", err)
	}
}

func TestApplyEnvOverrides_FlagWins(t *testing.T) {
	t.Setenv(EnvPrefix+"TIMEOUT", "1s")
	cfg, err := parse(t, "--timeout", "2m", "1")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timeout != 2*time.Minute {
		t.Errorf("explicit flag lost to env: %s", cfg.Timeout)
	}
}

func TestApplyEnvOverrides_EnvAppliesWhenFlagUnset(t *testing.T) {
	t.Setenv(EnvPrefix+"TIMEOUT", "90s")
	t.Setenv(EnvPrefix+"PARALLEL", "no")
	t.Setenv(EnvPrefix+"RECURSION_THRESHOLD", "222")
	cfg, err := parse(t, "1")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %s", cfg.Timeout)
	}
	if cfg.Parallel {
		t.Error("Parallel not overridden by env")
	}
	if cfg.RecursionThreshold != 222 {
		t.Errorf("RecursionThreshold = %d", cfg.RecursionThreshold)
	}
}

func TestApplyAdaptiveThresholds_PreservesExplicitValues(t *testing.T) {
	cfg := AppConfig{ParallelThreshold: 777}
	if got := ApplyAdaptiveThresholds(cfg).ParallelThreshold; got != 777 {
		t.Errorf("explicit threshold replaced: %d", got)
	}
	adapted := ApplyAdaptiveThresholds(AppConfig{})
	if adapted.ParallelThreshold <= 0 {
		t.Error("adaptive threshold not applied")
	}
}
