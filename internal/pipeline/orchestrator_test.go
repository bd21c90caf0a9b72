package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/advisor/internal/contracts"
	"github.com/finsight/advisor/internal/recommend"
	"github.com/finsight/advisor/internal/risk"
	"github.com/finsight/advisor/internal/signals"
	"github.com/finsight/advisor/pkg/logger"
)

func newTestOrchestrator(regime string) *Orchestrator {
	log := logger.NewNop()
	return NewOrchestrator(risk.New(log), signals.New(log), recommend.New(regime, log), log)
}

func moderateStock(ticker string) StockInput {
	// Lands around risk score 38 (Moderate band)
	return StockInput{
		Metrics: risk.StockMetrics{
			Ticker:                        ticker,
			HistoricalVolatility:          0.25,
			Beta:                          1.2,
			DebtToEquity:                  0.5,
			EarningsVolatility:            0.15,
			ConsecutiveProfitableQuarters: 8,
			Sector:                        "Technology",
			PERatio:                       25.0,
			PriceToBook:                   3.5,
		},
	}
}

func aggressiveStock(ticker string) StockInput {
	// High volatility, leverage and valuation push this into the
	// Aggressive band
	return StockInput{
		Metrics: risk.StockMetrics{
			Ticker:                        ticker,
			HistoricalVolatility:          0.60,
			Beta:                          2.2,
			DebtToEquity:                  3.5,
			EarningsVolatility:            0.80,
			ConsecutiveProfitableQuarters: 1,
			Sector:                        "Energy",
			PERatio:                       60.0,
		},
	}
}

func TestOrchestrator_Run(t *testing.T) {
	o := newTestOrchestrator("neutral")
	ctx := context.Background()
	observed := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	match := moderateStock("AAPL")
	match.ResearchScore = 85
	match.ObservedAt = observed
	match.Earnings = &signals.EarningsReport{ActualEPS: 1.15, EstimatedEPS: 1.00}
	match.Sentiment = &signals.SentimentSnapshot{Current: 0.6, Baseline: 0.2, MentionVolume: 450}

	mismatch := aggressiveStock("WILD")
	mismatch.ResearchScore = 95

	result := o.Run(ctx, RunConfig{
		Profile: contracts.UserRiskProfile{
			RiskLevel:           contracts.RiskModerate,
			VolatilityTolerance: 80,
		},
		TopN:   5,
		Stocks: []StockInput{match, mismatch},
	})

	// Every stock gets a risk analysis, filtered or not
	require.Len(t, result.RiskAnalyses, 2)
	assert.Equal(t, contracts.RiskModerate, result.RiskAnalyses["AAPL"].RiskLevel)
	assert.Equal(t, contracts.RiskAggressive, result.RiskAnalyses["WILD"].RiskLevel)

	// Both observations on AAPL trip their detectors
	require.Len(t, result.Signals["AAPL"], 2)
	assert.Equal(t, contracts.SignalEarningsSurprise, result.Signals["AAPL"][0].Type)
	assert.Equal(t, observed, result.Signals["AAPL"][0].Timestamp)
	assert.Empty(t, result.Signals["WILD"])

	// Only the in-band stock survives the filter
	require.Len(t, result.Recommendations, 1)
	rec := result.Recommendations[0]
	assert.Equal(t, "AAPL", rec.Ticker)
	assert.Equal(t, 1, rec.Rank)
	assert.InDelta(t, 85.0, rec.Scores.ResearchScore, 1e-9)
	assert.NotEmpty(t, rec.Explanation)

	// Aggregate of the two detected signals, confidence weighted:
	// earnings strength 30 conf 95, sentiment strength 44.5 conf 60
	wantSignal := (30*0.95 + 44.5*0.60) / (0.95 + 0.60)
	assert.InDelta(t, wantSignal, rec.Scores.SignalScore, 1e-9)
}

func TestOrchestrator_Run_NoObservations(t *testing.T) {
	o := newTestOrchestrator("neutral")

	stock := moderateStock("AAPL")

	result := o.Run(context.Background(), RunConfig{
		Profile: contracts.UserRiskProfile{RiskLevel: contracts.RiskModerate, VolatilityTolerance: 50},
		TopN:    3,
		Stocks:  []StockInput{stock},
	})

	// No observations -> no signals -> neutral aggregate, neutral research
	require.Len(t, result.Recommendations, 1)
	assert.Empty(t, result.Signals["AAPL"])
	assert.InDelta(t, 50.0, result.Recommendations[0].Scores.SignalScore, 1e-9)
	assert.InDelta(t, 50.0, result.Recommendations[0].Scores.ResearchScore, 1e-9)
}

func TestOrchestrator_Run_DerivedResearchScore(t *testing.T) {
	o := newTestOrchestrator("neutral")

	stock := moderateStock("AAPL")
	stock.Research = &ResearchInputs{Confidence: 90, DataCompleteness: 80, AnalysisDepth: 70}

	result := o.Run(context.Background(), RunConfig{
		Profile: contracts.UserRiskProfile{RiskLevel: contracts.RiskModerate, VolatilityTolerance: 50},
		TopN:    3,
		Stocks:  []StockInput{stock},
	})

	require.Len(t, result.Recommendations, 1)
	// 0.4*90 + 0.3*80 + 0.3*70
	assert.InDelta(t, 81.0, result.Recommendations[0].Scores.ResearchScore, 1e-9)
}

func TestOrchestrator_Run_Empty(t *testing.T) {
	o := newTestOrchestrator("neutral")

	result := o.Run(context.Background(), RunConfig{
		Profile: contracts.UserRiskProfile{RiskLevel: contracts.RiskModerate},
		TopN:    5,
	})

	assert.Empty(t, result.RiskAnalyses)
	assert.Empty(t, result.Recommendations)
}
