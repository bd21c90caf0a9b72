package signals

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/advisor/internal/contracts"
	"github.com/finsight/advisor/pkg/logger"
)

func newTestEngine() *Engine {
	return New(logger.NewNop())
}

func TestDetectEarningsSurprise(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()
	ts := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	t.Run("15 percent beat", func(t *testing.T) {
		s := e.DetectEarningsSurprise(ctx, "AAPL", EarningsReport{ActualEPS: 1.15, EstimatedEPS: 1.00}, ts)
		require.NotNil(t, s)

		assert.Equal(t, "AAPL", s.Ticker)
		assert.Equal(t, contracts.SignalEarningsSurprise, s.Type)
		assert.InDelta(t, 30.0, s.Strength, 1e-9) // |15%| * 2
		assert.Equal(t, 95.0, s.Confidence)
		assert.Equal(t, ts, s.Timestamp)
		assert.InDelta(t, 15.0, s.Metadata["surprise_pct"].(float64), 1e-9)
	})

	t.Run("miss also signals", func(t *testing.T) {
		s := e.DetectEarningsSurprise(ctx, "AAPL", EarningsReport{ActualEPS: 0.80, EstimatedEPS: 1.00}, ts)
		require.NotNil(t, s)
		assert.InDelta(t, 40.0, s.Strength, 1e-9) // |-20%| * 2
	})

	t.Run("negative estimate uses absolute base", func(t *testing.T) {
		// actual -0.50 vs estimate -1.00 is a 50% beat
		s := e.DetectEarningsSurprise(ctx, "AAPL", EarningsReport{ActualEPS: -0.50, EstimatedEPS: -1.00}, ts)
		require.NotNil(t, s)
		assert.InDelta(t, 100.0, s.Strength, 1e-9)
	})

	t.Run("below threshold is silent", func(t *testing.T) {
		s := e.DetectEarningsSurprise(ctx, "AAPL", EarningsReport{ActualEPS: 1.04, EstimatedEPS: 1.00}, ts)
		assert.Nil(t, s)
	})

	t.Run("zero estimate is undefined", func(t *testing.T) {
		s := e.DetectEarningsSurprise(ctx, "AAPL", EarningsReport{ActualEPS: 1.00, EstimatedEPS: 0}, ts)
		assert.Nil(t, s)
	})

	t.Run("huge surprise saturates at 100", func(t *testing.T) {
		s := e.DetectEarningsSurprise(ctx, "AAPL", EarningsReport{ActualEPS: 3.00, EstimatedEPS: 1.00}, ts)
		require.NotNil(t, s)
		assert.Equal(t, 100.0, s.Strength)
	})

	t.Run("zero timestamp defaults to now", func(t *testing.T) {
		s := e.DetectEarningsSurprise(ctx, "AAPL", EarningsReport{ActualEPS: 1.15, EstimatedEPS: 1.00}, time.Time{})
		require.NotNil(t, s)
		assert.False(t, s.Timestamp.IsZero())
	})
}
