package services

import (
	"math/rand"
	"time"

	"github.com/vizboard/insight-engine/pkg/models"
)

// ChartDataBuilder aggregates normalized tuples into a chart-type-specific
// payload. Chart types without a dedicated builder render through the bar
// builder.
type ChartDataBuilder struct {
	rng *rand.Rand
}

// NewChartDataBuilder creates a builder whose network edge draws use the
// given seed. Identical seeds reproduce identical graphs.
func NewChartDataBuilder(seed int64) *ChartDataBuilder {
	return &ChartDataBuilder{rng: rand.New(rand.NewSource(seed))}
}

// chartPalette is the fixed 10-color cyclic palette; label index modulo the
// palette length picks the color.
var chartPalette = []string{
	"#3b82f6", "#ef4444", "#10b981", "#f59e0b", "#8b5cf6",
	"#ec4899", "#14b8a6", "#f97316", "#6366f1", "#84cc16",
}

// paletteColor returns the cyclic palette color for a label index.
func paletteColor(index int) string {
	return chartPalette[index%len(chartPalette)]
}

// areaFillColor is the translucent fill used under area charts.
const areaFillColor = "rgba(59, 130, 246, 0.25)"

// pointLabelLayout formats temporal x values for line and area labels.
const pointLabelLayout = "Jan 2, 2006"

// network edge generation parameters: each node connects forward to at most
// edgeWindow following nodes, gated by a strength draw on a 0-10 scale.
const (
	networkEdgeWindow    = 3
	networkEdgeScale     = 10.0
	networkEdgeThreshold = 5.0
)

// Build produces the payload for the given chart type from the transformed
// tuples.
func (b *ChartDataBuilder) Build(chartType models.ChartType, result TransformResult) models.ChartPayload {
	switch chartType {
	case models.ChartTypePie:
		return b.buildGrouped(result, true)
	case models.ChartTypeBar:
		return b.buildGrouped(result, false)
	case models.ChartTypeLine:
		return b.buildSequence(result, false)
	case models.ChartTypeArea:
		return b.buildSequence(result, true)
	case models.ChartTypeScatter:
		return b.buildScatter(result)
	case models.ChartTypeNetwork:
		return b.buildNetwork(result)
	default:
		return b.buildGrouped(result, false)
	}
}

// buildGrouped sums y per distinct x label, preserving first-appearance
// order. Pie charts additionally color each label from the palette.
func (b *ChartDataBuilder) buildGrouped(result TransformResult, colored bool) models.ChartPayload {
	sums := make(map[string]float64)
	var labels []string
	for _, p := range result.Points {
		if _, seen := sums[p.X]; !seen {
			labels = append(labels, p.X)
		}
		sums[p.X] += p.Y
	}

	data := make([]float64, len(labels))
	var colors []string
	for i, label := range labels {
		data[i] = sums[label]
		if colored {
			colors = append(colors, paletteColor(i))
		}
	}
	return &models.SeriesData{
		Labels:   labels,
		Datasets: []models.SeriesDataset{{Label: "Value", Data: data, Colors: colors}},
	}
}

// buildSequence emits one point per tuple in transformed order, labelling
// temporal tuples with a formatted date.
func (b *ChartDataBuilder) buildSequence(result TransformResult, filled bool) models.ChartPayload {
	labels := make([]string, len(result.Points))
	data := make([]float64, len(result.Points))
	for i, p := range result.Points {
		labels[i] = sequenceLabel(p)
		data[i] = p.Y
	}
	dataset := models.SeriesDataset{Label: "Value", Data: data}
	if filled {
		dataset.Fill = true
		dataset.FillColor = areaFillColor
	}
	return &models.SeriesData{Labels: labels, Datasets: []models.SeriesDataset{dataset}}
}

func sequenceLabel(p DataPoint) string {
	if p.Timestamp != nil {
		return p.Timestamp.Format(pointLabelLayout)
	}
	return p.X
}

// buildScatter emits one point per tuple with no grouping or aggregation.
func (b *ChartDataBuilder) buildScatter(result TransformResult) models.ChartPayload {
	labels := make([]string, len(result.Points))
	data := make([]float64, len(result.Points))
	for i, p := range result.Points {
		labels[i] = p.X
		data[i] = p.Y
	}
	return &models.SeriesData{
		Labels:   labels,
		Datasets: []models.SeriesDataset{{Label: "Value", Data: data}},
	}
}

// buildNetwork emits one node per distinct x value and draws edges within a
// sliding window of the following nodes, gated by a random strength draw.
// The draw stands in for a real co-occurrence measure; reproducibility comes
// from the builder's seed.
func (b *ChartDataBuilder) buildNetwork(result TransformResult) models.ChartPayload {
	values := make(map[string]float64)
	var order []string
	for _, p := range result.Points {
		if _, seen := values[p.X]; !seen {
			order = append(order, p.X)
			values[p.X] = p.Y
		}
	}

	graph := &models.GraphData{}
	for i, label := range order {
		graph.Nodes = append(graph.Nodes, models.GraphNode{
			ID:    label,
			Label: label,
			Value: values[label],
			Color: paletteColor(i),
		})
	}
	for i := range order {
		for j := i + 1; j <= i+networkEdgeWindow && j < len(order); j++ {
			strength := b.rng.Float64() * networkEdgeScale
			if strength > networkEdgeThreshold {
				graph.Edges = append(graph.Edges, models.GraphEdge{
					Source: order[i],
					Target: order[j],
					Weight: strength,
				})
			}
		}
	}
	return graph
}

// DefaultNetworkSeed derives a seed for callers that do not need
// reproducible graphs.
func DefaultNetworkSeed() int64 {
	return time.Now().UnixNano()
}
