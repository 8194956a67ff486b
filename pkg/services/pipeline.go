package services

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vizboard/insight-engine/pkg/models"
)

// VisualizationService orchestrates the recommendation pipeline: question
// analysis, spec generation and chart building. Every stage is a pure
// function of its inputs; the service holds only the fixed stage instances
// and a logger, so one instance is safe to share across goroutines.
type VisualizationService struct {
	classifier  *IntentClassifier
	extractor   *EntityExtractor
	selector    *VisualizationSelector
	specGen     *SpecGenerator
	transformer *DataTransformer
	builder     *ChartDataBuilder
	insights    *InsightGenerator
	assessor    *BusinessImpactAssessor
	logger      *zap.Logger
}

// VisualizationServiceOption customizes a VisualizationService.
type VisualizationServiceOption func(*visualizationServiceSettings)

type visualizationServiceSettings struct {
	impactCoefficient float64
	networkSeed       int64
}

// WithImpactCoefficient overrides the financial-impact coefficient.
func WithImpactCoefficient(c float64) VisualizationServiceOption {
	return func(s *visualizationServiceSettings) { s.impactCoefficient = c }
}

// WithNetworkSeed fixes the seed of the network edge draws so generated
// graphs are reproducible.
func WithNetworkSeed(seed int64) VisualizationServiceOption {
	return func(s *visualizationServiceSettings) { s.networkSeed = seed }
}

// NewVisualizationService creates the pipeline service.
func NewVisualizationService(logger *zap.Logger, opts ...VisualizationServiceOption) *VisualizationService {
	settings := visualizationServiceSettings{
		impactCoefficient: DefaultImpactCoefficient,
		networkSeed:       DefaultNetworkSeed(),
	}
	for _, opt := range opts {
		opt(&settings)
	}
	return &VisualizationService{
		classifier:  NewIntentClassifier(),
		extractor:   NewEntityExtractor(),
		selector:    NewVisualizationSelector(),
		specGen:     NewSpecGenerator(),
		transformer: NewDataTransformer(),
		builder:     NewChartDataBuilder(settings.networkSeed),
		insights:    NewInsightGenerator(),
		assessor:    NewBusinessImpactAssessor(settings.impactCoefficient),
		logger:      logger,
	}
}

// AnalyzeQuestion classifies the question's intent, extracts the relevant
// columns and picks the suggested chart type.
func (s *VisualizationService) AnalyzeQuestion(question string, dataset *models.Dataset) *models.QuestionAnalysis {
	intent, confidence := s.classifier.Classify(question)
	extraction := s.extractor.Extract(question, dataset)
	suggested := s.selector.Select(intent, dataset)

	analysis := &models.QuestionAnalysis{
		OriginalQuestion:       question,
		Intent:                 intent,
		Confidence:             confidence,
		Entities:               extraction.Entities,
		Metrics:                extraction.Metrics,
		Dimensions:             extraction.Dimensions,
		Timeframe:              extraction.Timeframe,
		SuggestedVisualization: suggested,
	}
	entity := analysis.PrimaryEntity(fallbackEntityLabel)
	analysis.BusinessContext = s.specGen.BusinessContext(intent, entity)
	analysis.ExecutiveSummary = s.specGen.ExecutiveSummary(intent, entity, question)

	s.logger.Debug("analyzed question",
		zap.String("intent", string(intent)),
		zap.Float64("confidence", confidence),
		zap.String("suggested", string(suggested)),
		zap.Int("entities", len(analysis.Entities)))
	return analysis
}

// GenerateSpec derives the concrete visualization spec for an analysis.
func (s *VisualizationService) GenerateSpec(analysis *models.QuestionAnalysis, dataset *models.Dataset) *models.VisualizationSpec {
	spec := s.specGen.Generate(analysis, dataset)
	s.logger.Debug("generated spec",
		zap.String("type", string(spec.Type)),
		zap.String("xAxis", spec.ChartConfig.XAxis),
		zap.String("yAxis", spec.ChartConfig.YAxis))
	return spec
}

// GenerateVisualization transforms the dataset per the spec and builds the
// terminal chart payload with its insights and business impact.
func (s *VisualizationService) GenerateVisualization(analysis *models.QuestionAnalysis, spec *models.VisualizationSpec, dataset *models.Dataset) *models.ProcessedVisualization {
	result := s.transformer.Transform(dataset, spec.ChartConfig)
	payload := s.builder.Build(spec.Type, result)

	insights := append([]string(nil), spec.Insights...)
	insights = append(insights, s.insights.Generate(spec.Type, payload)...)

	processed := &models.ProcessedVisualization{
		ID:          uuid.New().String(),
		Type:        spec.Type,
		Title:       spec.Title,
		Description: spec.Description,
		Payload:     payload,
		Metadata: models.VisualizationMetadata{
			TotalDataPoints: result.Stats.Count,
			KeyMetrics: models.KeyMetrics{
				Column:  spec.ChartConfig.YAxis,
				Count:   result.Stats.Count,
				Total:   result.Stats.Sum,
				Average: result.Stats.Average,
				Min:     result.Stats.Min,
				Max:     result.Stats.Max,
			},
			Insights:        insights,
			Recommendations: spec.Recommendations,
			Confidence:      analysis.Confidence,
		},
		BusinessImpact: s.assessor.Assess(analysis, result.Stats),
	}

	s.logger.Info("generated visualization",
		zap.String("id", processed.ID),
		zap.String("type", string(processed.Type)),
		zap.Int("dataPoints", processed.Metadata.TotalDataPoints),
		zap.String("priority", string(processed.BusinessImpact.Priority)))
	return processed
}
