package services

import (
	"github.com/vizboard/insight-engine/pkg/models"
)

// VisualizationSelector maps an intent to its candidate chart types, then
// narrows to one using data-shape rules. The result is always a member of the
// intent's candidate list.
type VisualizationSelector struct{}

// NewVisualizationSelector creates a new visualization selector.
func NewVisualizationSelector() *VisualizationSelector {
	return &VisualizationSelector{}
}

// intentChartCandidates is the ordered candidate list per intent. The first
// entry is the default when no shape rule fires.
var intentChartCandidates = map[models.IntentCategory][]models.ChartType{
	models.IntentTrendAnalysis:       {models.ChartTypeLine, models.ChartTypeArea},
	models.IntentComparison:          {models.ChartTypeBar, models.ChartTypeLine},
	models.IntentDistribution:        {models.ChartTypeBar, models.ChartTypePie, models.ChartTypeHeatmap},
	models.IntentCorrelation:         {models.ChartTypeScatter, models.ChartTypeHeatmap},
	models.IntentAnomalyDetection:    {models.ChartTypeScatter, models.ChartTypeLine},
	models.IntentPerformanceMetrics:  {models.ChartTypeBar, models.ChartTypeGauge, models.ChartTypeLine},
	models.IntentRelationshipMapping: {models.ChartTypeNetwork, models.ChartTypeHeatmap},
	models.IntentForecasting:         {models.ChartTypeLine, models.ChartTypeArea},
	models.IntentSegmentation:        {models.ChartTypePie, models.ChartTypeTreemap, models.ChartTypeBar},
	models.IntentRiskAssessment:      {models.ChartTypeHeatmap, models.ChartTypeBar},
}

// dataShape are the dataset measurements the shape rules consult.
type dataShape struct {
	rowCount         int
	numericColumns   int
	dimensionColumns int
}

// networkMinRows is the row count above which a relationship question is
// drawn as a graph instead of its fallback candidate.
const networkMinRows = 20

// shapeRule is one (predicate, result) pair of the selection decision list.
type shapeRule struct {
	result  models.ChartType
	applies func(candidates []models.ChartType, shape dataShape) bool
}

// shapeRules is evaluated in order and the first firing rule wins; later
// rules are unreachable once an earlier one fires, so the order is part of
// the contract.
var shapeRules = []shapeRule{
	{models.ChartTypeNetwork, func(candidates []models.ChartType, shape dataShape) bool {
		return containsChartType(candidates, models.ChartTypeNetwork) && shape.rowCount > networkMinRows
	}},
	{models.ChartTypeScatter, func(candidates []models.ChartType, shape dataShape) bool {
		return containsChartType(candidates, models.ChartTypeScatter) && shape.numericColumns >= 2
	}},
	{models.ChartTypePie, func(candidates []models.ChartType, shape dataShape) bool {
		return containsChartType(candidates, models.ChartTypePie) && shape.dimensionColumns >= 1
	}},
}

// Select picks the chart type for the given intent and dataset.
func (s *VisualizationSelector) Select(intent models.IntentCategory, dataset *models.Dataset) models.ChartType {
	candidates := CandidatesFor(intent)
	shape := dataShape{
		rowCount:         dataset.RowCount(),
		numericColumns:   len(dataset.NumericColumns()),
		dimensionColumns: len(dataset.DimensionColumns()),
	}
	for _, rule := range shapeRules {
		if rule.applies(candidates, shape) {
			return rule.result
		}
	}
	return candidates[0]
}

// CandidatesFor returns the ordered candidate chart types for an intent.
// Unknown intents fall back to the performance_metrics candidates.
func CandidatesFor(intent models.IntentCategory) []models.ChartType {
	if candidates, ok := intentChartCandidates[intent]; ok {
		return candidates
	}
	return intentChartCandidates[models.IntentPerformanceMetrics]
}

func containsChartType(list []models.ChartType, t models.ChartType) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}
