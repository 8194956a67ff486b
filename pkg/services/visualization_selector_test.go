package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vizboard/insight-engine/pkg/models"
)

func datasetWithShape(rows, numeric, categorical int) *models.Dataset {
	d := &models.Dataset{}
	for i := 0; i < numeric; i++ {
		d.Columns = append(d.Columns, models.ColumnDescriptor{
			Name: fmt.Sprintf("metric_%d", i), SemanticType: models.SemanticTypeNumeric,
		})
	}
	for i := 0; i < categorical; i++ {
		d.Columns = append(d.Columns, models.ColumnDescriptor{
			Name: fmt.Sprintf("dim_%d", i), SemanticType: models.SemanticTypeCategorical,
		})
	}
	for i := 0; i < rows; i++ {
		d.Rows = append(d.Rows, models.Row{})
	}
	return d
}

func TestVisualizationSelector_Select(t *testing.T) {
	s := NewVisualizationSelector()

	tests := []struct {
		name    string
		intent  models.IntentCategory
		dataset *models.Dataset
		want    models.ChartType
	}{
		{
			name:    "relationship mapping with many rows picks network",
			intent:  models.IntentRelationshipMapping,
			dataset: datasetWithShape(25, 1, 1),
			want:    models.ChartTypeNetwork,
		},
		{
			name:    "correlation with two numeric columns picks scatter",
			intent:  models.IntentCorrelation,
			dataset: datasetWithShape(10, 2, 0),
			want:    models.ChartTypeScatter,
		},
		{
			name:    "segmentation with a categorical column picks pie",
			intent:  models.IntentSegmentation,
			dataset: datasetWithShape(10, 1, 1),
			want:    models.ChartTypePie,
		},
		{
			name:    "comparison defaults to its first candidate",
			intent:  models.IntentComparison,
			dataset: datasetWithShape(10, 1, 1),
			want:    models.ChartTypeBar,
		},
		{
			name:    "trend analysis defaults to line",
			intent:  models.IntentTrendAnalysis,
			dataset: datasetWithShape(3, 1, 0),
			want:    models.ChartTypeLine,
		},
		{
			name:    "correlation with one numeric column falls through to first candidate",
			intent:  models.IntentCorrelation,
			dataset: datasetWithShape(10, 1, 1),
			want:    models.ChartTypeScatter,
		},
		{
			name:    "segmentation without categorical columns defaults to first candidate",
			intent:  models.IntentSegmentation,
			dataset: datasetWithShape(10, 2, 0),
			want:    models.ChartTypePie,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Select(tt.intent, tt.dataset))
		})
	}
}

func TestVisualizationSelector_ResultAlwaysInCandidateList(t *testing.T) {
	s := NewVisualizationSelector()

	shapes := []*models.Dataset{
		datasetWithShape(0, 0, 0),
		datasetWithShape(5, 1, 0),
		datasetWithShape(5, 0, 1),
		datasetWithShape(25, 2, 2),
		datasetWithShape(100, 3, 1),
	}
	for _, intent := range models.ValidIntentCategories {
		candidates := CandidatesFor(intent)
		for _, dataset := range shapes {
			got := s.Select(intent, dataset)
			assert.Contains(t, candidates, got, "intent %s", intent)
		}
	}
}

func TestVisualizationSelector_PrecedenceOrder(t *testing.T) {
	s := NewVisualizationSelector()

	// relationship_mapping's candidates start with network, so below the row
	// threshold the first-candidate fallback still yields network; the window
	// rule must not misfire for other intents regardless of row count.
	assert.Equal(t, models.ChartTypeNetwork, s.Select(models.IntentRelationshipMapping, datasetWithShape(5, 1, 1)))
	assert.Equal(t, models.ChartTypeBar, s.Select(models.IntentComparison, datasetWithShape(500, 1, 1)))

	// scatter beats pie when both rules would fire for an intent carrying
	// both candidates: anomaly_detection carries scatter only, so shape with
	// two numeric columns resolves by the scatter rule.
	assert.Equal(t, models.ChartTypeScatter, s.Select(models.IntentAnomalyDetection, datasetWithShape(10, 2, 1)))
}
