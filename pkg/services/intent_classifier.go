package services

import (
	"strings"

	"github.com/vizboard/insight-engine/pkg/models"
)

// IntentClassifier scores a question against fixed per-intent trigger lists.
// It is deterministic and never fails: a question with no matches classifies
// as performance_metrics at baseline confidence.
type IntentClassifier struct{}

// NewIntentClassifier creates a new intent classifier.
func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{}
}

// intentTriggers maps each intent to its trigger phrases. Triggers are
// matched as substrings of the lower-cased question; each trigger counts at
// most once regardless of repetition.
type intentTriggers struct {
	intent   models.IntentCategory
	triggers []string
}

// intentTriggerTable is scanned in order. performance_metrics comes first so
// that the zero-score case and any tie against the running best resolve to
// it; a later intent replaces the best only on a strictly higher score.
var intentTriggerTable = []intentTriggers{
	{models.IntentPerformanceMetrics, []string{
		"performance", "kpi", "metric", "score", "efficiency", "productivity", "benchmark", "how well",
	}},
	{models.IntentTrendAnalysis, []string{
		"trend", "over time", "growth", "decline", "change", "trajectory", "evolution", "progress",
	}},
	{models.IntentComparison, []string{
		"compare", "comparison", "versus", "vs", "difference", "between", "against", "relative",
	}},
	{models.IntentDistribution, []string{
		"distribution", "spread", "range", "histogram", "frequency", "breakdown", "proportion", "share of",
	}},
	{models.IntentCorrelation, []string{
		"correlation", "correlate", "relationship between", "related to", "association", "impact of", "affect", "influence",
	}},
	{models.IntentAnomalyDetection, []string{
		"anomaly", "anomalies", "outlier", "unusual", "abnormal", "spike", "irregular", "unexpected",
	}},
	{models.IntentRelationshipMapping, []string{
		"network", "connection", "connected", "linked", "graph", "dependencies", "flow between",
	}},
	{models.IntentForecasting, []string{
		"forecast", "predict", "projection", "future", "expected", "estimate", "next quarter", "next year",
	}},
	{models.IntentSegmentation, []string{
		"segment", "cluster", "cohort", "group by", "categorize", "classify", "bucket",
	}},
	{models.IntentRiskAssessment, []string{
		"risk", "threat", "exposure", "vulnerability", "danger", "compliance", "liability",
	}},
}

// confidence parameters: baseline with no matches, gain per matched trigger,
// saturation ceiling.
const (
	confidenceBaseline = 0.3
	confidencePerMatch = 0.2
	confidenceCeiling  = 0.9
)

// Classify returns the best-scoring intent for the question and a confidence
// in [0.3, 0.9].
func (c *IntentClassifier) Classify(question string) (models.IntentCategory, float64) {
	lower := strings.ToLower(question)

	best := models.IntentPerformanceMetrics
	bestScore := 0
	for _, row := range intentTriggerTable {
		score := 0
		for _, trigger := range row.triggers {
			if strings.Contains(lower, trigger) {
				score++
			}
		}
		if score > bestScore {
			best = row.intent
			bestScore = score
		}
	}

	confidence := confidenceBaseline + confidencePerMatch*float64(bestScore)
	if confidence > confidenceCeiling {
		confidence = confidenceCeiling
	}
	return best, confidence
}
