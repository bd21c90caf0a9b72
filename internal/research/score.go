// Package research scores the quality of a research report from its
// structured attributes. The narrative generation itself happens in an
// external LLM collaborator; only the deterministic quality score lives
// here so recommendation runs stay reproducible.
package research

// Weights for the research quality score.
const (
	weightConfidence       = 0.4
	weightDataCompleteness = 0.3
	weightAnalysisDepth    = 0.3
)

// QualityScore combines the collaborator-reported confidence, data
// completeness and analysis depth (each 0-100) into a single 0-100
// research score.
func QualityScore(confidence, dataCompleteness, analysisDepth float64) float64 {
	score := weightConfidence*confidence +
		weightDataCompleteness*dataCompleteness +
		weightAnalysisDepth*analysisDepth

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
