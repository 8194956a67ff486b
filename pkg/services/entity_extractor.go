package services

import (
	"strings"
	"unicode"

	"github.com/vizboard/insight-engine/pkg/models"
)

// EntityExtractor scans a question for column names, generic business terms,
// metric and dimension candidates, and a timeframe token. Like the
// classifier, it is deterministic and never fails.
type EntityExtractor struct{}

// NewEntityExtractor creates a new entity extractor.
func NewEntityExtractor() *EntityExtractor {
	return &EntityExtractor{}
}

// businessVocabulary is the fixed list of generic business nouns tested as
// substrings of the question in addition to column names.
var businessVocabulary = []string{
	"customer", "product", "revenue", "sales", "profit", "cost",
	"order", "region", "price", "quantity", "user", "churn",
	"conversion", "growth", "market", "inventory",
}

// metricKeywords make every numeric column a metric candidate when any of
// them appears in the question. This is intentionally permissive: the
// keywords are not matched against specific columns.
var metricKeywords = []string{
	"total", "sum", "average", "mean", "count", "rate",
	"percentage", "amount", "how many", "number of",
}

// timeframeTokens are scanned in this fixed order; the first match wins.
var timeframeTokens = []string{
	"daily", "weekly", "monthly", "quarterly", "yearly",
	"last week", "last month", "last year",
}

// ExtractionResult holds everything the extractor found in one question.
type ExtractionResult struct {
	Entities   []string
	Metrics    []string
	Dimensions []string
	Timeframe  string
}

// Extract scans the question against the dataset's columns and the fixed
// business vocabulary.
func (e *EntityExtractor) Extract(question string, dataset *models.Dataset) ExtractionResult {
	lower := strings.ToLower(question)

	var result ExtractionResult
	seen := make(map[string]bool)

	for _, col := range dataset.Columns {
		if matchesAnyVariant(lower, col.Name) && !seen[col.Name] {
			seen[col.Name] = true
			result.Entities = append(result.Entities, col.Name)
		}
	}
	for _, term := range businessVocabulary {
		if strings.Contains(lower, term) && !seen[term] {
			seen[term] = true
			result.Entities = append(result.Entities, term)
		}
	}

	hasMetricKeyword := containsAny(lower, metricKeywords)
	for _, col := range dataset.NumericColumns() {
		if hasMetricKeyword || strings.Contains(lower, strings.ToLower(col.Name)) {
			result.Metrics = append(result.Metrics, col.Name)
		}
	}

	for _, col := range dataset.DimensionColumns() {
		if strings.Contains(lower, strings.ToLower(col.Name)) {
			result.Dimensions = append(result.Dimensions, col.Name)
		}
	}

	for _, token := range timeframeTokens {
		if strings.Contains(lower, token) {
			result.Timeframe = token
			break
		}
	}

	return result
}

// matchesAnyVariant tests the column name against the question in three
// spellings: verbatim, underscores as spaces, and camelCase split into
// words. All comparisons are lower-cased.
func matchesAnyVariant(lowerQuestion, columnName string) bool {
	variants := []string{
		strings.ToLower(columnName),
		strings.ToLower(strings.ReplaceAll(columnName, "_", " ")),
		splitCamelCase(columnName),
	}
	for _, v := range variants {
		if v != "" && strings.Contains(lowerQuestion, v) {
			return true
		}
	}
	return false
}

// splitCamelCase renders "monthlyRevenue" as "monthly revenue".
func splitCamelCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
