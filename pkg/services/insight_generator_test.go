package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizboard/insight-engine/pkg/models"
)

func seriesPayload(labels []string, data []float64) *models.SeriesData {
	return &models.SeriesData{
		Labels:   labels,
		Datasets: []models.SeriesDataset{{Label: "Value", Data: data}},
	}
}

func TestInsightGenerator_Pie(t *testing.T) {
	g := NewInsightGenerator()

	t.Run("largest segment share", func(t *testing.T) {
		insights := g.Generate(models.ChartTypePie,
			seriesPayload([]string{"North", "South", "West"}, []float64{50, 30, 20}))
		require.NotEmpty(t, insights)
		assert.Contains(t, insights[0], "North")
		assert.Contains(t, insights[0], "50.0%")
	})

	t.Run("high concentration with top three over the threshold", func(t *testing.T) {
		insights := g.Generate(models.ChartTypePie,
			seriesPayload([]string{"a", "b", "c", "d"}, []float64{40, 30, 20, 10}))
		require.Len(t, insights, 2)
		assert.Contains(t, insights[1], "High concentration")
	})

	t.Run("no concentration note when spread is even", func(t *testing.T) {
		insights := g.Generate(models.ChartTypePie,
			seriesPayload([]string{"a", "b", "c", "d", "e"}, []float64{20, 20, 20, 20, 20}))
		require.Len(t, insights, 1)
	})

	t.Run("zero total omits insights instead of dividing by zero", func(t *testing.T) {
		insights := g.Generate(models.ChartTypePie,
			seriesPayload([]string{"a", "b"}, []float64{0, 0}))
		assert.Empty(t, insights)
	})
}

func TestInsightGenerator_Bar(t *testing.T) {
	g := NewInsightGenerator()

	insights := g.Generate(models.ChartTypeBar,
		seriesPayload([]string{"North", "South", "West"}, []float64{100, 40, 10}))
	require.Len(t, insights, 3)
	assert.Contains(t, insights[0], "North")
	assert.Contains(t, insights[0], "100.00")
	assert.Contains(t, insights[1], "West")
	assert.Contains(t, insights[1], "10.00")
	assert.Contains(t, insights[2], "1 of 3")
}

func TestInsightGenerator_Line(t *testing.T) {
	g := NewInsightGenerator()

	t.Run("positive trend", func(t *testing.T) {
		insights := g.Generate(models.ChartTypeLine,
			seriesPayload([]string{"1", "2", "3"}, []float64{100, 110, 150}))
		require.NotEmpty(t, insights)
		assert.Contains(t, insights[0], "positive")
		assert.Contains(t, insights[0], "50.0%")
	})

	t.Run("negative trend", func(t *testing.T) {
		insights := g.Generate(models.ChartTypeLine,
			seriesPayload([]string{"1", "2"}, []float64{200, 100}))
		require.NotEmpty(t, insights)
		assert.Contains(t, insights[0], "negative")
	})

	t.Run("zero first value omits the change insight", func(t *testing.T) {
		insights := g.Generate(models.ChartTypeLine,
			seriesPayload([]string{"1", "2"}, []float64{0, 100}))
		for _, insight := range insights {
			assert.False(t, strings.Contains(insight, "trend:"), "unexpected insight %q", insight)
		}
	})

	t.Run("volatile series is flagged", func(t *testing.T) {
		insights := g.Generate(models.ChartTypeLine,
			seriesPayload([]string{"1", "2", "3", "4"}, []float64{10, 100, 20, 90}))
		var found bool
		for _, insight := range insights {
			if strings.Contains(insight, "volatility") {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("flat series is not flagged volatile", func(t *testing.T) {
		insights := g.Generate(models.ChartTypeLine,
			seriesPayload([]string{"1", "2", "3"}, []float64{100, 100, 100}))
		for _, insight := range insights {
			assert.False(t, strings.Contains(insight, "volatility"))
		}
	})
}

func TestInsightGenerator_Scatter(t *testing.T) {
	g := NewInsightGenerator()

	t.Run("reports standard deviation", func(t *testing.T) {
		insights := g.Generate(models.ChartTypeScatter,
			seriesPayload([]string{"a", "b", "c", "d"}, []float64{10, 12, 11, 13}))
		require.NotEmpty(t, insights)
		assert.Contains(t, insights[0], "Standard deviation")
	})

	t.Run("flags points beyond two standard deviations", func(t *testing.T) {
		data := make([]float64, 20)
		for i := range data {
			data[i] = 10
		}
		data[19] = 100
		labels := make([]string, 20)
		insights := g.Generate(models.ChartTypeScatter, seriesPayload(labels, data))
		require.Len(t, insights, 2)
		assert.Contains(t, insights[1], "1 points")
	})

	t.Run("constant data yields no outliers", func(t *testing.T) {
		insights := g.Generate(models.ChartTypeScatter,
			seriesPayload([]string{"a", "b"}, []float64{5, 5}))
		require.Len(t, insights, 1)
	})
}

func TestInsightGenerator_OtherTypesYieldNothing(t *testing.T) {
	g := NewInsightGenerator()

	payload := seriesPayload([]string{"a"}, []float64{1})
	for _, chartType := range []models.ChartType{
		models.ChartTypeHeatmap, models.ChartTypeTreemap, models.ChartTypeGauge, models.ChartTypeNetwork,
	} {
		assert.Empty(t, g.Generate(chartType, payload), "type %s", chartType)
	}
	assert.Empty(t, g.Generate(models.ChartTypeNetwork, &models.GraphData{}))
}
