package models

// IntentCategory is the analytical purpose inferred from a free-text question.
type IntentCategory string

const (
	IntentPerformanceMetrics  IntentCategory = "performance_metrics"
	IntentTrendAnalysis       IntentCategory = "trend_analysis"
	IntentComparison          IntentCategory = "comparison"
	IntentDistribution        IntentCategory = "distribution"
	IntentCorrelation         IntentCategory = "correlation"
	IntentAnomalyDetection    IntentCategory = "anomaly_detection"
	IntentRelationshipMapping IntentCategory = "relationship_mapping"
	IntentForecasting         IntentCategory = "forecasting"
	IntentSegmentation        IntentCategory = "segmentation"
	IntentRiskAssessment      IntentCategory = "risk_assessment"
)

// ValidIntentCategories contains all valid intent values. The order is the
// classifier's evaluation order: performance_metrics is checked first so the
// zero-match case and ties against the running best resolve to it.
var ValidIntentCategories = []IntentCategory{
	IntentPerformanceMetrics,
	IntentTrendAnalysis,
	IntentComparison,
	IntentDistribution,
	IntentCorrelation,
	IntentAnomalyDetection,
	IntentRelationshipMapping,
	IntentForecasting,
	IntentSegmentation,
	IntentRiskAssessment,
}

// IsValidIntentCategory checks if the given intent is valid.
func IsValidIntentCategory(i IntentCategory) bool {
	for _, v := range ValidIntentCategories {
		if v == i {
			return true
		}
	}
	return false
}

// QuestionAnalysis is the immutable result of analyzing one question against
// one dataset. Entities, metrics and dimensions are deduplicated sets whose
// order carries no meaning.
type QuestionAnalysis struct {
	OriginalQuestion string `json:"originalQuestion"`

	Intent     IntentCategory `json:"intent"`
	Confidence float64        `json:"confidence"` // always within [0.3, 0.9]

	// Entities are matched column names and generic business terms.
	Entities []string `json:"entities"`

	// Metrics are numeric column names relevant to the question.
	Metrics []string `json:"metrics"`

	// Dimensions are categorical/text column names relevant to the question.
	Dimensions []string `json:"dimensions"`

	// Timeframe is the first recognized timeframe token, empty if none.
	Timeframe string `json:"timeframe,omitempty"`

	SuggestedVisualization ChartType `json:"suggestedVisualization"`

	BusinessContext  string `json:"businessContext"`
	ExecutiveSummary string `json:"executiveSummary"`
}

// PrimaryEntity returns the first extracted entity, or the given fallback
// label when nothing was extracted.
func (a *QuestionAnalysis) PrimaryEntity(fallback string) string {
	if len(a.Entities) > 0 {
		return a.Entities[0]
	}
	return fallback
}
