package contracts

import "time"

// SignalType identifies the kind of market event a signal represents.
type SignalType string

const (
	SignalEarningsSurprise    SignalType = "earnings_surprise"
	SignalInstitutionalBuying SignalType = "institutional_buying"
	SignalInsiderBuying       SignalType = "insider_buying"
	SignalSentimentSpike      SignalType = "sentiment_spike"
)

// Signal is one detected market event for a ticker.
// Immutable once created: detectors build the full value and hand it off.
type Signal struct {
	Ticker     string                 `json:"ticker"`
	Type       SignalType             `json:"type"`
	Strength   float64                `json:"strength"`   // 0-100
	Confidence float64                `json:"confidence"` // 0-100
	Timestamp  time.Time              `json:"timestamp"`
	Metadata   map[string]interface{} `json:"metadata"` // raw observation behind the signal
}
