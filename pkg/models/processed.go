package models

import (
	"encoding/json"
	"strings"
)

// Priority classifies the business urgency attached to a visualization.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// BusinessImpact is the coarse business framing attached to a processed
// visualization. FinancialImpact is a formatted placeholder figure, not a
// valuation.
type BusinessImpact struct {
	Priority        Priority `json:"priority"`
	FinancialImpact string   `json:"financialImpact"`
	Timeframe       string   `json:"timeframe"`
	Stakeholders    []string `json:"stakeholders"`
}

// KeyMetrics summarizes the numeric values that survived transformation for
// one metric column. On the wire the statistic keys are named per column
// ("averageRevenue", "maxRevenue", ...) to match what dashboard widgets bind
// to; in code the fields stay statically named.
type KeyMetrics struct {
	Column  string
	Count   int
	Total   float64
	Average float64
	Min     float64
	Max     float64
}

// MarshalJSON renders the per-column dynamic key names.
func (m KeyMetrics) MarshalJSON() ([]byte, error) {
	suffix := metricKeySuffix(m.Column)
	out := map[string]any{
		"recordCount":      m.Count,
		"total" + suffix:   m.Total,
		"average" + suffix: m.Average,
		"min" + suffix:     m.Min,
		"max" + suffix:     m.Max,
	}
	return json.Marshal(out)
}

// metricKeySuffix turns a column name into a camel-cased key suffix:
// "monthly_revenue" -> "MonthlyRevenue". An empty column name yields "Value".
func metricKeySuffix(column string) string {
	if column == "" {
		return "Value"
	}
	parts := strings.FieldsFunc(column, func(r rune) bool {
		return r == '_' || r == ' ' || r == '-'
	})
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// VisualizationMetadata accompanies the chart payload with the texts and
// figures the UI displays alongside the chart.
type VisualizationMetadata struct {
	TotalDataPoints int        `json:"totalDataPoints"`
	KeyMetrics      KeyMetrics `json:"keyMetrics"`
	Insights        []string   `json:"insights"`
	Recommendations []string   `json:"recommendations"`
	Confidence      float64    `json:"confidence"`
}

// ChartPayload is the tagged union of renderable chart data: labeled series
// for conventional charts, a node/edge graph for relationship charts. Exactly
// one concrete form exists per ProcessedVisualization.
type ChartPayload interface {
	payloadKind() string
}

// SeriesDataset is one named numeric series within a SeriesData payload.
type SeriesDataset struct {
	Label     string    `json:"label"`
	Data      []float64 `json:"data"`
	Colors    []string  `json:"backgroundColor,omitempty"`
	Fill      bool      `json:"fill,omitempty"`
	FillColor string    `json:"fillColor,omitempty"`
}

// SeriesData is the labeled-series payload used by pie, bar, line, area and
// scatter charts. Labels and every dataset's Data are index-aligned.
type SeriesData struct {
	Labels   []string        `json:"labels"`
	Datasets []SeriesDataset `json:"datasets"`
}

func (SeriesData) payloadKind() string { return "chartData" }

// GraphNode is one node of a network payload.
type GraphNode struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// GraphEdge connects two nodes of a network payload.
type GraphEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// GraphData is the node/edge payload used by network charts.
type GraphData struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

func (GraphData) payloadKind() string { return "networkData" }

// ProcessedVisualization is the pipeline's terminal artifact, handed to the
// renderer and otherwise discarded.
type ProcessedVisualization struct {
	ID          string    `json:"id"`
	Type        ChartType `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`

	Payload ChartPayload `json:"-"`

	Metadata       VisualizationMetadata `json:"metadata"`
	BusinessImpact BusinessImpact        `json:"businessImpact"`
}

// Series returns the labeled-series payload, or nil for network charts.
func (v *ProcessedVisualization) Series() *SeriesData {
	if s, ok := v.Payload.(*SeriesData); ok {
		return s
	}
	return nil
}

// Graph returns the node/edge payload, or nil for series charts.
func (v *ProcessedVisualization) Graph() *GraphData {
	if g, ok := v.Payload.(*GraphData); ok {
		return g
	}
	return nil
}

// MarshalJSON emits the payload under "chartData" or "networkData" depending
// on its concrete form.
func (v ProcessedVisualization) MarshalJSON() ([]byte, error) {
	type alias ProcessedVisualization
	wire := struct {
		alias
		ChartData   *SeriesData `json:"chartData,omitempty"`
		NetworkData *GraphData  `json:"networkData,omitempty"`
	}{alias: alias(v)}
	switch p := v.Payload.(type) {
	case *SeriesData:
		wire.ChartData = p
	case *GraphData:
		wire.NetworkData = p
	}
	return json.Marshal(wire)
}
