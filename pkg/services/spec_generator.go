package services

import (
	"fmt"
	"strings"

	"github.com/vizboard/insight-engine/pkg/models"
)

// SpecGenerator turns a QuestionAnalysis into a concrete VisualizationSpec:
// titles and narrative text from fixed per-intent templates, plus the axis
// and aggregation configuration derived from the dataset's columns.
type SpecGenerator struct{}

// NewSpecGenerator creates a new spec generator.
func NewSpecGenerator() *SpecGenerator {
	return &SpecGenerator{}
}

// fallbackEntityLabel is used when the extractor found no entities at all.
const fallbackEntityLabel = "your data"

// intentTemplates holds the fixed narrative templates for one intent. %s in
// title, description, context and summary is the primary entity; the summary
// additionally interpolates the original question.
type intentTemplates struct {
	title           string
	description     string
	context         string
	summary         string
	insights        []string
	recommendations []string
}

var intentTemplateTable = map[models.IntentCategory]intentTemplates{
	models.IntentTrendAnalysis: {
		title:       "Trend Analysis: %s",
		description: "How %s has developed over the observed period",
		context:     "Understanding how %s changes over time supports planning and early course correction.",
		summary:     "This trend view of %s addresses the question \"%s\". It highlights direction, momentum and turning points across the observed period.",
		insights: []string{
			"Direction and momentum become visible across the full period",
			"Turning points indicate where conditions changed",
			"Sustained movement is more reliable than single-period jumps",
		},
		recommendations: []string{
			"Review the periods around visible turning points",
			"Set alerts on sustained movement against the expected direction",
			"Compare against seasonal baselines before acting",
		},
	},
	models.IntentComparison: {
		title:       "Comparison: %s",
		description: "Side-by-side view of %s across groups",
		context:     "Comparing %s across groups surfaces leaders, laggards and allocation opportunities.",
		summary:     "This comparison of %s addresses the question \"%s\". It ranks the groups and quantifies the gap between the strongest and weakest.",
		insights: []string{
			"The gap between the best and worst group sets the improvement ceiling",
			"Groups clustered near the average behave as one segment",
			"Leaders often reveal practices transferable to laggards",
		},
		recommendations: []string{
			"Investigate what distinguishes the top group",
			"Prioritize support for the lowest-ranked groups",
			"Re-run the comparison after interventions to confirm movement",
		},
	},
	models.IntentDistribution: {
		title:       "Distribution: %s",
		description: "How %s is spread across its range",
		context:     "The shape of the %s distribution shows concentration, balance and tail behavior.",
		summary:     "This distribution view of %s addresses the question \"%s\". It shows where values concentrate and how heavy the tails are.",
		insights: []string{
			"Concentration in a few buckets signals dependency risk",
			"A long tail often hides distinct sub-populations",
			"Balanced spreads tolerate shocks better than skewed ones",
		},
		recommendations: []string{
			"Examine the largest bucket for hidden structure",
			"Decide whether tail values deserve their own treatment",
			"Track the spread over time, not just the current snapshot",
		},
	},
	models.IntentCorrelation: {
		title:       "Correlation: %s",
		description: "How %s moves together with related measures",
		context:     "Relating %s to other measures separates coincidence from dependency.",
		summary:     "This correlation view of %s addresses the question \"%s\". It plots paired values so strength and direction of association are visible.",
		insights: []string{
			"A visible slope indicates the measures move together",
			"Dense clusters mark typical operating conditions",
			"Points far from the cloud merit individual review",
		},
		recommendations: []string{
			"Validate apparent relationships on a second time window",
			"Treat correlation as a lead for causal investigation, not proof",
			"Review outlying pairs before drawing conclusions",
		},
	},
	models.IntentAnomalyDetection: {
		title:       "Anomaly Review: %s",
		description: "Unusual values within %s",
		context:     "Isolating anomalies in %s protects decisions from being driven by bad or exceptional data.",
		summary:     "This anomaly view of %s addresses the question \"%s\". It separates typical values from statistical outliers.",
		insights: []string{
			"Outliers can be data errors or genuine exceptional events",
			"Repeated anomalies at the same source indicate a systemic cause",
			"The anomaly rate matters as much as individual cases",
		},
		recommendations: []string{
			"Verify the largest outliers at the source system",
			"Separate correctable data issues from real events",
			"Monitor the anomaly rate as its own metric",
		},
	},
	models.IntentPerformanceMetrics: {
		title:       "Performance Overview: %s",
		description: "Current performance of %s",
		context:     "A consolidated view of %s keeps attention on the measures that drive outcomes.",
		summary:     "This performance view of %s addresses the question \"%s\". It consolidates the key figures into a single picture.",
		insights: []string{
			"Totals describe scale; averages describe typical behavior",
			"Extremes show where the range of outcomes lies",
			"A single period rarely tells the whole story",
		},
		recommendations: []string{
			"Define target values for the headline figures",
			"Review the lowest-performing areas first",
			"Schedule a recurring review of this view",
		},
	},
	models.IntentRelationshipMapping: {
		title:       "Relationship Map: %s",
		description: "How the elements of %s connect",
		context:     "Mapping connections within %s exposes hubs, clusters and isolated elements.",
		summary:     "This relationship map of %s addresses the question \"%s\". It lays out the elements and their connections as a graph.",
		insights: []string{
			"Highly connected nodes are leverage points and failure points",
			"Clusters indicate naturally grouped behavior",
			"Isolated nodes may be untapped or obsolete",
		},
		recommendations: []string{
			"Protect and monitor the most connected nodes",
			"Investigate clusters for shared drivers",
			"Decide whether isolated elements should be connected or retired",
		},
	},
	models.IntentForecasting: {
		title:       "Forecast Basis: %s",
		description: "Historical basis for projecting %s",
		context:     "Projecting %s starts from a clean read of its history.",
		summary:     "This forecast basis for %s addresses the question \"%s\". It presents the historical series a projection would extend.",
		insights: []string{
			"Forecast quality is bounded by the stability of the history",
			"Recent periods carry more signal than distant ones",
			"Volatile history demands wider confidence ranges",
		},
		recommendations: []string{
			"Remove known one-off events before projecting",
			"Present forecasts as ranges rather than points",
			"Re-fit the projection as new periods arrive",
		},
	},
	models.IntentSegmentation: {
		title:       "Segmentation: %s",
		description: "Natural groupings within %s",
		context:     "Segmenting %s lets each group be addressed on its own terms.",
		summary:     "This segmentation of %s addresses the question \"%s\". It splits the whole into groups with distinct behavior.",
		insights: []string{
			"Segment sizes show where the volume actually sits",
			"Small segments can still carry outsized value",
			"Segments drifting together may be ready to merge",
		},
		recommendations: []string{
			"Tailor actions per segment instead of averaging across them",
			"Quantify each segment's contribution, not just its size",
			"Revisit the segmentation as behavior shifts",
		},
	},
	models.IntentRiskAssessment: {
		title:       "Risk Assessment: %s",
		description: "Risk exposure within %s",
		context:     "Assessing risk in %s converts vague concern into ranked exposure.",
		summary:     "This risk assessment of %s addresses the question \"%s\". It ranks exposures so mitigation effort lands where it matters.",
		insights: []string{
			"Concentration is the most common hidden risk",
			"High-likelihood low-impact items drain attention from the reverse",
			"Unmonitored areas are risks by definition",
		},
		recommendations: []string{
			"Mitigate the highest-exposure items first",
			"Assign an owner to every identified risk",
			"Re-assess on a fixed cadence, not only after incidents",
		},
	},
}

// Generate derives the visualization spec for the given analysis and dataset.
// The aggregation is always sum; callers wanting a different aggregation
// override the config before transformation.
func (g *SpecGenerator) Generate(analysis *models.QuestionAnalysis, dataset *models.Dataset) *models.VisualizationSpec {
	templates, ok := intentTemplateTable[analysis.Intent]
	if !ok {
		templates = intentTemplateTable[models.IntentPerformanceMetrics]
	}
	entity := analysis.PrimaryEntity(fallbackEntityLabel)

	config := buildChartConfig(analysis, dataset)

	return &models.VisualizationSpec{
		Type:               analysis.SuggestedVisualization,
		Title:              fmt.Sprintf(templates.title, titleCase(entity)),
		Description:        fmt.Sprintf(templates.description, entity),
		DataTransformation: describeTransformation(config),
		ChartConfig:        config,
		Insights:           templates.insights,
		Recommendations:    templates.recommendations,
	}
}

// BusinessContext renders the intent's business-context sentence for the
// analysis' primary entity.
func (g *SpecGenerator) BusinessContext(intent models.IntentCategory, entity string) string {
	templates, ok := intentTemplateTable[intent]
	if !ok {
		templates = intentTemplateTable[models.IntentPerformanceMetrics]
	}
	return fmt.Sprintf(templates.context, entity)
}

// ExecutiveSummary renders the intent's executive-summary paragraph.
func (g *SpecGenerator) ExecutiveSummary(intent models.IntentCategory, entity, question string) string {
	templates, ok := intentTemplateTable[intent]
	if !ok {
		templates = intentTemplateTable[models.IntentPerformanceMetrics]
	}
	return fmt.Sprintf(templates.summary, entity, question)
}

// buildChartConfig picks axes from the dataset's column shape:
// scatter with two numeric columns plots them against each other; otherwise a
// categorical column is charted against the first numeric column.
func buildChartConfig(analysis *models.QuestionAnalysis, dataset *models.Dataset) models.ChartConfig {
	config := models.ChartConfig{Aggregation: models.AggregationSum}

	numeric := dataset.NumericColumns()
	dimensions := dataset.DimensionColumns()

	if analysis.SuggestedVisualization == models.ChartTypeScatter && len(numeric) >= 2 {
		config.XAxis = numeric[0].Name
		config.YAxis = numeric[1].Name
	} else if len(dimensions) >= 1 && len(numeric) >= 1 {
		config.XAxis = dimensions[0].Name
		config.YAxis = numeric[0].Name
		config.GroupBy = dimensions[0].Name
	} else if temporal := dataset.TemporalColumns(); len(temporal) >= 1 && len(numeric) >= 1 {
		config.XAxis = temporal[0].Name
		config.YAxis = numeric[0].Name
	}

	if len(analysis.Dimensions) > 0 {
		config.ColorBy = analysis.Dimensions[0]
	}
	return config
}

// describeTransformation renders the human-readable summary of what the
// transformer will do with this config.
func describeTransformation(config models.ChartConfig) string {
	if config.XAxis == "" || config.YAxis == "" {
		return "Fallback extraction: category counts or indexed values from the first usable column"
	}
	desc := fmt.Sprintf("Aggregate %s by %s using %s", config.YAxis, config.XAxis, config.Aggregation)
	if config.GroupBy != "" {
		desc += fmt.Sprintf(", grouped by %s", config.GroupBy)
	}
	return desc
}

// titleCase upper-cases the first letter of each word for display titles.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
