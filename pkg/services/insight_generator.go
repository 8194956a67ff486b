package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/vizboard/insight-engine/pkg/models"
)

// InsightGenerator derives short natural-language observations from a built
// chart payload, one rule set per chart type. Insights whose ratios would
// divide by zero are omitted rather than rendered as NaN or Infinity text.
type InsightGenerator struct{}

// NewInsightGenerator creates a new insight generator.
func NewInsightGenerator() *InsightGenerator {
	return &InsightGenerator{}
}

// concentrationShare is the share of the total above which the top three pie
// segments are reported as high concentration.
const concentrationShare = 0.8

// volatilityShare is the fraction of the value range the mean absolute
// first-difference must exceed for a line to be flagged volatile.
const volatilityShare = 0.1

// outlierSigmas is the distance from the mean, in standard deviations,
// beyond which a scatter point counts as an outlier.
const outlierSigmas = 2.0

// Generate produces observations for the payload. Chart types without a rule
// set yield no insights.
func (g *InsightGenerator) Generate(chartType models.ChartType, payload models.ChartPayload) []string {
	series, ok := payload.(*models.SeriesData)
	if !ok || len(series.Datasets) == 0 {
		return nil
	}
	labels := series.Labels
	data := series.Datasets[0].Data
	if len(data) == 0 {
		return nil
	}

	switch chartType {
	case models.ChartTypePie:
		return pieInsights(labels, data)
	case models.ChartTypeBar:
		return barInsights(labels, data)
	case models.ChartTypeLine, models.ChartTypeArea:
		return lineInsights(data)
	case models.ChartTypeScatter:
		return scatterInsights(data)
	default:
		return nil
	}
}

func pieInsights(labels []string, data []float64) []string {
	total := 0.0
	largest := 0
	for i, v := range data {
		total += v
		if v > data[largest] {
			largest = i
		}
	}
	if total == 0 {
		return nil
	}

	var insights []string
	insights = append(insights, fmt.Sprintf(
		"%s is the largest segment at %.1f%% of the total",
		labels[largest], data[largest]/total*100))

	sorted := append([]float64(nil), data...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	topThree := 0.0
	for i := 0; i < len(sorted) && i < 3; i++ {
		topThree += sorted[i]
	}
	if topThree/total > concentrationShare {
		insights = append(insights, fmt.Sprintf(
			"High concentration: the top 3 segments hold %.1f%% of the total",
			topThree/total*100))
	}
	return insights
}

func barInsights(labels []string, data []float64) []string {
	maxIdx, minIdx := 0, 0
	sum := 0.0
	for i, v := range data {
		sum += v
		if v > data[maxIdx] {
			maxIdx = i
		}
		if v < data[minIdx] {
			minIdx = i
		}
	}
	average := sum / float64(len(data))

	aboveAverage := 0
	for _, v := range data {
		if v > average {
			aboveAverage++
		}
	}

	return []string{
		fmt.Sprintf("%s has the highest value at %.2f", labels[maxIdx], data[maxIdx]),
		fmt.Sprintf("%s has the lowest value at %.2f", labels[minIdx], data[minIdx]),
		fmt.Sprintf("%d of %d categories are above the average of %.2f", aboveAverage, len(data), average),
	}
}

func lineInsights(data []float64) []string {
	var insights []string

	first, last := data[0], data[len(data)-1]
	if first != 0 {
		change := (last - first) / math.Abs(first) * 100
		direction := "positive"
		if change < 0 {
			direction = "negative"
		}
		insights = append(insights, fmt.Sprintf(
			"%s trend: %.1f%% change from first to last point", direction, change))
	}

	min, max := data[0], data[0]
	for _, v := range data {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	valueRange := max - min
	if len(data) > 1 && valueRange > 0 {
		diffSum := 0.0
		for i := 1; i < len(data); i++ {
			diffSum += math.Abs(data[i] - data[i-1])
		}
		meanDiff := diffSum / float64(len(data)-1)
		if meanDiff > volatilityShare*valueRange {
			insights = append(insights, "High volatility: values swing sharply between consecutive points")
		}
	}
	return insights
}

func scatterInsights(data []float64) []string {
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	variance := 0.0
	for _, v := range data {
		variance += (v - mean) * (v - mean)
	}
	stddev := math.Sqrt(variance / float64(len(data)))

	outliers := 0
	if stddev > 0 {
		for _, v := range data {
			if math.Abs(v-mean) > outlierSigmas*stddev {
				outliers++
			}
		}
	}

	insights := []string{
		fmt.Sprintf("Standard deviation is %.2f around a mean of %.2f", stddev, mean),
	}
	if outliers > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d points lie more than %.0f standard deviations from the mean", outliers, outlierSigmas))
	}
	return insights
}
