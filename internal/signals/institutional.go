package signals

import (
	"context"
	"time"

	"github.com/finsight/advisor/internal/contracts"
)

// InstitutionalActivity holds the recent change in institutional positions.
type InstitutionalActivity struct {
	OwnershipChange    float64 `json:"ownership_change"` // percentage points
	InstitutionsBuying int     `json:"institutions_buying"`
}

// DetectInstitutionalBuying emits a signal when institutional ownership
// rose by at least 2 points with 3 or more institutions adding positions.
// Confidence grows with the number of institutions, capped at 95.
func (e *Engine) DetectInstitutionalBuying(ctx context.Context, ticker string, activity InstitutionalActivity, ts time.Time) *contracts.Signal {
	if activity.OwnershipChange < 2.0 || activity.InstitutionsBuying < 3 {
		return nil
	}

	ownershipComponent := min(activity.OwnershipChange*10, 50)
	institutionComponent := min(float64(activity.InstitutionsBuying)*5, 50)
	strength := ownershipComponent + institutionComponent

	confidence := min(60+float64(activity.InstitutionsBuying)*5, 95)

	e.logger.WithFields(map[string]interface{}{
		"ticker":           ticker,
		"ownership_change": activity.OwnershipChange,
		"institutions":     activity.InstitutionsBuying,
	}).Info("Institutional buying detected")

	return &contracts.Signal{
		Ticker:     ticker,
		Type:       contracts.SignalInstitutionalBuying,
		Strength:   strength,
		Confidence: confidence,
		Timestamp:  signalTime(ts),
		Metadata: map[string]interface{}{
			"ownership_change_pct": activity.OwnershipChange,
			"num_institutions":     activity.InstitutionsBuying,
		},
	}
}
