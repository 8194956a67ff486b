package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vizboard/insight-engine/pkg/models"
)

func TestVisualizationService_RevenueTrend(t *testing.T) {
	svc := NewVisualizationService(zap.NewNop())

	dataset := &models.Dataset{
		Columns: []models.ColumnDescriptor{
			{Name: "date", SemanticType: models.SemanticTypeTemporal},
			{Name: "revenue", SemanticType: models.SemanticTypeNumeric},
		},
		Rows: []models.Row{
			{"date": "2024-01-01", "revenue": 100.0},
			{"date": "2024-02-01", "revenue": 150.0},
			{"date": "2024-03-01", "revenue": 200.0},
		},
	}

	analysis := svc.AnalyzeQuestion("show me the trend in revenue over time", dataset)
	assert.Equal(t, models.IntentTrendAnalysis, analysis.Intent)
	assert.Contains(t, []models.ChartType{models.ChartTypeLine, models.ChartTypeArea}, analysis.SuggestedVisualization)
	assert.Contains(t, analysis.Metrics, "revenue")

	spec := svc.GenerateSpec(analysis, dataset)
	processed := svc.GenerateVisualization(analysis, spec, dataset)

	require.NotNil(t, processed.Series())
	assert.Equal(t, 3, processed.Metadata.TotalDataPoints)

	var trendInsight string
	for _, insight := range processed.Metadata.Insights {
		if strings.Contains(insight, "trend:") {
			trendInsight = insight
		}
	}
	require.NotEmpty(t, trendInsight, "expected a first-to-last change insight")
	assert.Contains(t, trendInsight, "positive")
	assert.Contains(t, trendInsight, "100.0%")
}

func TestVisualizationService_RegionComparison(t *testing.T) {
	svc := NewVisualizationService(zap.NewNop())

	dataset := &models.Dataset{
		Columns: []models.ColumnDescriptor{
			{Name: "region", SemanticType: models.SemanticTypeCategorical},
			{Name: "sales", SemanticType: models.SemanticTypeNumeric},
		},
		Rows: []models.Row{
			{"region": "North", "sales": 300.0},
			{"region": "South", "sales": 120.0},
		},
	}

	analysis := svc.AnalyzeQuestion("compare sales by region", dataset)
	assert.Equal(t, models.IntentComparison, analysis.Intent)
	assert.Equal(t, models.ChartTypeBar, analysis.SuggestedVisualization)
	assert.Equal(t, []string{"sales"}, analysis.Metrics)
	assert.Equal(t, []string{"region"}, analysis.Dimensions)

	spec := svc.GenerateSpec(analysis, dataset)
	processed := svc.GenerateVisualization(analysis, spec, dataset)

	series := processed.Series()
	require.NotNil(t, series)
	assert.Equal(t, []string{"North", "South"}, series.Labels)
	assert.Equal(t, []float64{300, 120}, series.Datasets[0].Data)

	var maxInsight string
	for _, insight := range processed.Metadata.Insights {
		if strings.Contains(insight, "highest") {
			maxInsight = insight
		}
	}
	require.NotEmpty(t, maxInsight)
	assert.Contains(t, maxInsight, "North")
}

func TestVisualizationService_EmptyDataset(t *testing.T) {
	svc := NewVisualizationService(zap.NewNop())

	dataset := &models.Dataset{
		Columns: []models.ColumnDescriptor{
			{Name: "region", SemanticType: models.SemanticTypeCategorical},
			{Name: "sales", SemanticType: models.SemanticTypeNumeric},
		},
	}

	analysis := svc.AnalyzeQuestion("compare sales by region", dataset)
	spec := svc.GenerateSpec(analysis, dataset)
	processed := svc.GenerateVisualization(analysis, spec, dataset)

	assert.Equal(t, 0, processed.Metadata.TotalDataPoints)
	series := processed.Series()
	require.NotNil(t, series)
	assert.Equal(t, []string{"No Data"}, series.Labels)
	assert.Equal(t, []float64{0}, series.Datasets[0].Data)
}

func TestVisualizationService_Idempotent(t *testing.T) {
	svc := NewVisualizationService(zap.NewNop())

	dataset := &models.Dataset{
		Columns: []models.ColumnDescriptor{
			{Name: "region", SemanticType: models.SemanticTypeCategorical},
			{Name: "sales", SemanticType: models.SemanticTypeNumeric},
		},
		Rows: []models.Row{
			{"region": "North", "sales": 300.0},
			{"region": "South", "sales": 120.0},
		},
	}

	analysis := svc.AnalyzeQuestion("compare sales by region", dataset)
	spec := svc.GenerateSpec(analysis, dataset)

	first := svc.GenerateVisualization(analysis, spec, dataset)
	second := svc.GenerateVisualization(analysis, spec, dataset)

	// IDs differ per generation; everything derived from the inputs matches.
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Payload, second.Payload)
	assert.Equal(t, first.Metadata, second.Metadata)
	assert.Equal(t, first.BusinessImpact, second.BusinessImpact)
}

func TestVisualizationService_NetworkReproducibleWithSeed(t *testing.T) {
	dataset := &models.Dataset{
		Columns: []models.ColumnDescriptor{
			{Name: "node", SemanticType: models.SemanticTypeCategorical},
			{Name: "weight", SemanticType: models.SemanticTypeNumeric},
		},
	}
	for i := 0; i < 25; i++ {
		dataset.Rows = append(dataset.Rows, models.Row{
			"node":   string(rune('A' + i%10)),
			"weight": float64(i),
		})
	}

	build := func() *models.GraphData {
		svc := NewVisualizationService(zap.NewNop(), WithNetworkSeed(7))
		analysis := svc.AnalyzeQuestion("show the network of connected nodes", dataset)
		require.Equal(t, models.ChartTypeNetwork, analysis.SuggestedVisualization)
		spec := svc.GenerateSpec(analysis, dataset)
		processed := svc.GenerateVisualization(analysis, spec, dataset)
		graph := processed.Graph()
		require.NotNil(t, graph)
		return graph
	}

	assert.Equal(t, build(), build())
}

func TestVisualizationService_AnalysisNarrativeTexts(t *testing.T) {
	svc := NewVisualizationService(zap.NewNop())

	dataset := &models.Dataset{
		Columns: []models.ColumnDescriptor{
			{Name: "region", SemanticType: models.SemanticTypeCategorical},
			{Name: "sales", SemanticType: models.SemanticTypeNumeric},
		},
	}
	analysis := svc.AnalyzeQuestion("compare sales by region", dataset)
	assert.NotEmpty(t, analysis.BusinessContext)
	assert.Contains(t, analysis.ExecutiveSummary, "compare sales by region")
	assert.GreaterOrEqual(t, analysis.Confidence, 0.3)
	assert.LessOrEqual(t, analysis.Confidence, 0.9)
}
