package pipeline

import (
	"context"
	"time"

	"github.com/finsight/advisor/internal/contracts"
	"github.com/finsight/advisor/internal/recommend"
	"github.com/finsight/advisor/internal/research"
	"github.com/finsight/advisor/internal/risk"
	"github.com/finsight/advisor/internal/signals"
	"github.com/finsight/advisor/pkg/logger"
)

// Orchestrator composes the three engines into the full scoring pipeline:
// risk analysis -> signal detection and aggregation -> band filter -> rank.
// It performs no I/O; the caller supplies a consistent point-in-time
// snapshot of every input and persists the results.
type Orchestrator struct {
	riskEngine      *risk.Engine
	signalEngine    *signals.Engine
	recommendEngine *recommend.Engine

	logger *logger.Logger
}

// NewOrchestrator creates a new pipeline orchestrator
func NewOrchestrator(riskEngine *risk.Engine, signalEngine *signals.Engine, recommendEngine *recommend.Engine, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		riskEngine:      riskEngine,
		signalEngine:    signalEngine,
		recommendEngine: recommendEngine,
		logger:          log,
	}
}

// ResearchInputs holds the structured attributes of a research report when
// the caller wants the pipeline to derive the research score itself.
type ResearchInputs struct {
	Confidence       float64 `json:"confidence"`
	DataCompleteness float64 `json:"data_completeness"`
	AnalysisDepth    float64 `json:"analysis_depth"`
}

// StockInput is one stock's snapshot entering a pipeline run. The raw
// event observations are optional: nil means the collaborator had nothing
// to report for that source.
type StockInput struct {
	Metrics risk.StockMetrics `json:"metrics"`

	// Research score, either precomputed or derived from report inputs.
	// With neither supplied the neutral 50 is used.
	ResearchScore float64         `json:"research_score,omitempty"`
	Research      *ResearchInputs `json:"research,omitempty"`

	// Raw event observations for the signal detectors.
	Earnings      *signals.EarningsReport        `json:"earnings,omitempty"`
	Institutional *signals.InstitutionalActivity `json:"institutional,omitempty"`
	Insider       *signals.InsiderActivity       `json:"insider,omitempty"`
	Sentiment     *signals.SentimentSnapshot     `json:"sentiment,omitempty"`

	// Snapshot time stamped onto detected signals. Zero means detection time.
	ObservedAt time.Time `json:"observed_at,omitempty"`
}

// RunConfig holds the inputs for one pipeline run.
type RunConfig struct {
	Profile contracts.UserRiskProfile `json:"profile"`
	TopN    int                       `json:"top_n"`
	Stocks  []StockInput              `json:"stocks"`
}

// Result holds everything one pipeline run produced, ready for the caller
// to persist.
type Result struct {
	RiskAnalyses    map[string]contracts.RiskAnalysis `json:"risk_analyses"`
	Signals         map[string][]contracts.Signal     `json:"signals"`
	Recommendations []contracts.StockRecommendation   `json:"recommendations"`
	Duration        time.Duration                     `json:"duration"`
}

// Run executes the full pipeline for one user over the supplied snapshot.
func (o *Orchestrator) Run(ctx context.Context, cfg RunConfig) *Result {
	start := time.Now()

	o.logger.WithFields(map[string]interface{}{
		"stocks":     len(cfg.Stocks),
		"risk_level": string(cfg.Profile.RiskLevel),
		"top_n":      cfg.TopN,
	}).Info("Starting pipeline run")

	result := &Result{
		RiskAnalyses: make(map[string]contracts.RiskAnalysis, len(cfg.Stocks)),
		Signals:      make(map[string][]contracts.Signal, len(cfg.Stocks)),
	}

	candidates := make([]contracts.Candidate, 0, len(cfg.Stocks))

	for _, stock := range cfg.Stocks {
		ticker := stock.Metrics.Ticker

		analysis := o.riskEngine.AnalyzeStockRisk(ctx, stock.Metrics)
		result.RiskAnalyses[ticker] = analysis

		detected := o.detectSignals(ctx, stock)
		result.Signals[ticker] = detected

		candidates = append(candidates, contracts.Candidate{
			Ticker:        ticker,
			Sector:        stock.Metrics.Sector,
			RiskScore:     analysis.OverallRiskScore,
			ResearchScore: researchScore(stock),
			SignalScore:   o.signalEngine.Aggregate(ctx, ticker, detected),
		})
	}

	eligible := o.recommendEngine.FilterByRiskBand(candidates, cfg.Profile.RiskLevel)
	result.Recommendations = o.recommendEngine.Rank(ctx, eligible, cfg.Profile, cfg.TopN)
	result.Duration = time.Since(start)

	o.logger.WithFields(map[string]interface{}{
		"candidates":      len(candidates),
		"eligible":        len(eligible),
		"recommendations": len(result.Recommendations),
		"duration_ms":     result.Duration.Milliseconds(),
	}).Info("Pipeline run completed")

	return result
}

// detectSignals runs every detector whose observation is present
func (o *Orchestrator) detectSignals(ctx context.Context, stock StockInput) []contracts.Signal {
	ticker := stock.Metrics.Ticker
	detected := make([]contracts.Signal, 0, 4)

	if stock.Earnings != nil {
		if s := o.signalEngine.DetectEarningsSurprise(ctx, ticker, *stock.Earnings, stock.ObservedAt); s != nil {
			detected = append(detected, *s)
		}
	}
	if stock.Institutional != nil {
		if s := o.signalEngine.DetectInstitutionalBuying(ctx, ticker, *stock.Institutional, stock.ObservedAt); s != nil {
			detected = append(detected, *s)
		}
	}
	if stock.Insider != nil {
		if s := o.signalEngine.DetectInsiderBuying(ctx, ticker, *stock.Insider, stock.ObservedAt); s != nil {
			detected = append(detected, *s)
		}
	}
	if stock.Sentiment != nil {
		if s := o.signalEngine.DetectSentimentSpike(ctx, ticker, *stock.Sentiment, stock.ObservedAt); s != nil {
			detected = append(detected, *s)
		}
	}

	return detected
}

// researchScore resolves a stock's research score: derived from report
// inputs when present, otherwise the precomputed value, otherwise the
// neutral 50.
func researchScore(stock StockInput) float64 {
	if stock.Research != nil {
		return research.QualityScore(
			stock.Research.Confidence,
			stock.Research.DataCompleteness,
			stock.Research.AnalysisDepth,
		)
	}
	if stock.ResearchScore > 0 {
		return stock.ResearchScore
	}
	return 50
}
