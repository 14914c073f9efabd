// This file decorates a Parser with tracing, metrics and logging. The core
// conversion stays pure; all cross-cutting concerns live here.

package decimal

import (
	"context"
	"math/big"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
)

var (
	parsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decparse_parses_total",
			Help: "The total number of digit-sequence conversions processed",
		},
		[]string{"path", "status"},
	)
	parseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "decparse_parse_duration_seconds",
			Help: "The duration of digit-sequence conversions in seconds",
		},
		[]string{"path"},
	)
)

// BigIntParser is the parsing surface shared by Parser and its decorators.
type BigIntParser interface {
	ParseBytes(ctx context.Context, input []byte, offset, length int) (*big.Int, error)
	ParseUTF16(ctx context.Context, input []uint16, offset, length int) (*big.Int, error)
	ParseCharSequence(ctx context.Context, seq CharSequence, offset, length int) (*big.Int, error)
}

// InstrumentedParser wraps a BigIntParser with an OpenTelemetry span, a
// Prometheus counter/histogram pair and a zerolog debug event per parse.
type InstrumentedParser struct {
	inner BigIntParser
}

// NewInstrumentedParser decorates inner. It panics if inner is nil,
// preserving construction-time integrity.
func NewInstrumentedParser(inner BigIntParser) *InstrumentedParser {
	if inner == nil {
		panic("decimal: the inner BigIntParser cannot be nil")
	}
	return &InstrumentedParser{inner: inner}
}

// ParseBytes implements BigIntParser.
func (ip *InstrumentedParser) ParseBytes(ctx context.Context, input []byte, offset, length int) (*big.Int, error) {
	return ip.instrument(ctx, "bytes", length, func(ctx context.Context) (*big.Int, error) {
		return ip.inner.ParseBytes(ctx, input, offset, length)
	})
}

// ParseUTF16 implements BigIntParser.
func (ip *InstrumentedParser) ParseUTF16(ctx context.Context, input []uint16, offset, length int) (*big.Int, error) {
	return ip.instrument(ctx, "utf16", length, func(ctx context.Context) (*big.Int, error) {
		return ip.inner.ParseUTF16(ctx, input, offset, length)
	})
}

// ParseCharSequence implements BigIntParser.
func (ip *InstrumentedParser) ParseCharSequence(ctx context.Context, seq CharSequence, offset, length int) (*big.Int, error) {
	return ip.instrument(ctx, "charseq", length, func(ctx context.Context) (*big.Int, error) {
		return ip.inner.ParseCharSequence(ctx, seq, offset, length)
	})
}

func (ip *InstrumentedParser) instrument(ctx context.Context, path string, length int, parse func(context.Context) (*big.Int, error)) (result *big.Int, err error) {
	tracer := otel.Tracer("decimal")
	ctx, span := tracer.Start(ctx, "Parse")
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
		}
		parsesTotal.WithLabelValues(path, status).Inc()
		parseDuration.WithLabelValues(path).Observe(duration)

		log.Debug().
			Str("path", path).
			Int("digits", length).
			Float64("duration", duration).
			Str("status", status).
			Msg("conversion completed")
	}()

	return parse(ctx)
}
