package models

// ChartType identifies a renderable chart kind.
type ChartType string

const (
	ChartTypeLine    ChartType = "line"
	ChartTypeBar     ChartType = "bar"
	ChartTypePie     ChartType = "pie"
	ChartTypeScatter ChartType = "scatter"
	ChartTypeHeatmap ChartType = "heatmap"
	ChartTypeNetwork ChartType = "network"
	ChartTypeTreemap ChartType = "treemap"
	ChartTypeFunnel  ChartType = "funnel"
	ChartTypeGauge   ChartType = "gauge"
	ChartTypeArea    ChartType = "area"
)

// ValidChartTypes contains all selectable chart types. Data building is fully
// implemented for line, bar, pie, scatter, area and network; the remaining
// types are selectable but render through the bar builder.
var ValidChartTypes = []ChartType{
	ChartTypeLine,
	ChartTypeBar,
	ChartTypePie,
	ChartTypeScatter,
	ChartTypeHeatmap,
	ChartTypeNetwork,
	ChartTypeTreemap,
	ChartTypeFunnel,
	ChartTypeGauge,
	ChartTypeArea,
}

// IsValidChartType checks if the given chart type is valid.
func IsValidChartType(t ChartType) bool {
	for _, v := range ValidChartTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Aggregation names the summary applied when grouping rows.
type Aggregation string

const (
	AggregationSum     Aggregation = "sum"
	AggregationCount   Aggregation = "count"
	AggregationAverage Aggregation = "average"
	AggregationMax     Aggregation = "max"
	AggregationMin     Aggregation = "min"
)

// ChartConfig is the concrete axis and aggregation configuration for one
// visualization. Empty axis names mean the transformer takes its fallback
// extraction path.
type ChartConfig struct {
	XAxis       string      `json:"xAxis,omitempty"`
	YAxis       string      `json:"yAxis,omitempty"`
	GroupBy     string      `json:"groupBy,omitempty"`
	Aggregation Aggregation `json:"aggregation"`
	ColorBy     string      `json:"colorBy,omitempty"`
	Size        string      `json:"size,omitempty"`
}

// VisualizationSpec is the chart recommendation derived from a
// QuestionAnalysis and the dataset's columns. It is never mutated after
// creation; a caller wanting a different aggregation overrides the config
// before transformation.
type VisualizationSpec struct {
	Type               ChartType   `json:"type"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	DataTransformation string      `json:"dataTransformation"`
	ChartConfig        ChartConfig `json:"chartConfig"`

	// Insights and recommendations are intent-keyed fixed texts; data-driven
	// observations are added later from the built chart payload.
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}
