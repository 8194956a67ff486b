package services

import (
	"fmt"
	"math"

	"github.com/vizboard/insight-engine/pkg/models"
)

// BusinessImpactAssessor classifies a visualization's priority, estimates a
// placeholder financial-impact figure and attaches fixed stakeholder and
// timeframe lists keyed by intent.
type BusinessImpactAssessor struct {
	coefficient float64
}

// DefaultImpactCoefficient scales dataPointCount x averageValue into the
// financial-impact placeholder. It is a coarse heuristic, not a valuation.
const DefaultImpactCoefficient = 0.1

// NewBusinessImpactAssessor creates an assessor with the given impact
// coefficient; pass DefaultImpactCoefficient unless configured otherwise.
func NewBusinessImpactAssessor(coefficient float64) *BusinessImpactAssessor {
	return &BusinessImpactAssessor{coefficient: coefficient}
}

// highConfidenceFloor is the confidence above which any intent is escalated
// to high priority.
const highConfidenceFloor = 0.7

// intentPlanning holds the fixed timeframe and stakeholder list per intent.
type intentPlanning struct {
	timeframe    string
	stakeholders []string
}

// intentPlanningTable covers five intents explicitly; the rest share the
// defaults below.
var intentPlanningTable = map[models.IntentCategory]intentPlanning{
	models.IntentRiskAssessment: {
		timeframe:    "Immediate",
		stakeholders: []string{"Risk Management", "Compliance", "Executive Team"},
	},
	models.IntentAnomalyDetection: {
		timeframe:    "1-2 weeks",
		stakeholders: []string{"Operations", "Data Team"},
	},
	models.IntentPerformanceMetrics: {
		timeframe:    "2-4 weeks",
		stakeholders: []string{"Department Head", "Operations Manager"},
	},
	models.IntentTrendAnalysis: {
		timeframe:    "1-3 months",
		stakeholders: []string{"Strategy Team", "Executive Team"},
	},
	models.IntentForecasting: {
		timeframe:    "3-6 months",
		stakeholders: []string{"Finance", "Strategy Team"},
	},
}

var defaultPlanning = intentPlanning{
	timeframe:    "1-2 months",
	stakeholders: []string{"Manager", "Executive Team"},
}

// Assess produces the business impact for an analysis and the transformed
// data it led to.
func (a *BusinessImpactAssessor) Assess(analysis *models.QuestionAnalysis, stats SummaryStats) models.BusinessImpact {
	planning, ok := intentPlanningTable[analysis.Intent]
	if !ok {
		planning = defaultPlanning
	}
	return models.BusinessImpact{
		Priority:        assessPriority(analysis.Intent, analysis.Confidence),
		FinancialImpact: a.formatFinancialImpact(stats),
		Timeframe:       planning.timeframe,
		Stakeholders:    planning.stakeholders,
	}
}

func assessPriority(intent models.IntentCategory, confidence float64) models.Priority {
	switch intent {
	case models.IntentRiskAssessment, models.IntentAnomalyDetection:
		return models.PriorityCritical
	case models.IntentPerformanceMetrics, models.IntentTrendAnalysis:
		return models.PriorityHigh
	}
	if confidence > highConfidenceFloor {
		return models.PriorityHigh
	}
	return models.PriorityMedium
}

// formatFinancialImpact renders round(count x average x coefficient) as "$NK"
// from one thousand upward, "$N" below.
func (a *BusinessImpactAssessor) formatFinancialImpact(stats SummaryStats) string {
	impact := math.Round(float64(stats.Count) * stats.Average * a.coefficient)
	if impact >= 1000 {
		return fmt.Sprintf("$%.0fK", math.Round(impact/1000))
	}
	return fmt.Sprintf("$%.0f", impact)
}
