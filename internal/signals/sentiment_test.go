package signals

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/advisor/internal/contracts"
)

func TestDetectSentimentSpike(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()
	ts := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	t.Run("detects positive spike", func(t *testing.T) {
		s := e.DetectSentimentSpike(ctx, "TSLA", SentimentSnapshot{
			Current:       0.6,
			Baseline:      0.2,
			MentionVolume: 450,
		}, ts)
		require.NotNil(t, s)

		assert.Equal(t, contracts.SignalSentimentSpike, s.Type)
		// sentiment component min(0.4*100, 70) = 40; volume min(450/100, 30) = 4.5
		assert.InDelta(t, 44.5, s.Strength, 1e-9)
		assert.Equal(t, 60.0, s.Confidence)
	})

	t.Run("negative spike also signals", func(t *testing.T) {
		s := e.DetectSentimentSpike(ctx, "TSLA", SentimentSnapshot{
			Current:       -0.5,
			Baseline:      0.1,
			MentionVolume: 200,
		}, ts)
		require.NotNil(t, s)
		assert.InDelta(t, -0.6, s.Metadata["sentiment_change"].(float64), 1e-9)
	})

	t.Run("small change is silent", func(t *testing.T) {
		s := e.DetectSentimentSpike(ctx, "TSLA", SentimentSnapshot{
			Current:       0.3,
			Baseline:      0.2,
			MentionVolume: 500,
		}, ts)
		assert.Nil(t, s)
	})

	t.Run("thin mention volume is silent", func(t *testing.T) {
		s := e.DetectSentimentSpike(ctx, "TSLA", SentimentSnapshot{
			Current:       0.9,
			Baseline:      0.1,
			MentionVolume: 99,
		}, ts)
		assert.Nil(t, s)
	})

	t.Run("components cap at 70 and 30", func(t *testing.T) {
		s := e.DetectSentimentSpike(ctx, "TSLA", SentimentSnapshot{
			Current:       1.0,
			Baseline:      -1.0,
			MentionVolume: 100_000,
		}, ts)
		require.NotNil(t, s)
		assert.Equal(t, 100.0, s.Strength)
	})
}
