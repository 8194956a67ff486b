package services

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vizboard/insight-engine/pkg/models"
)

// DataTransformer maps raw dataset rows into normalized (x, y, group) tuples
// per a spec's chart config. Rows with unparseable values are dropped, never
// coerced to zero; missing axes route to a fallback extraction path so the
// builder downstream always receives at least one tuple.
type DataTransformer struct{}

// NewDataTransformer creates a new data transformer.
func NewDataTransformer() *DataTransformer {
	return &DataTransformer{}
}

// DataPoint is one normalized tuple. Timestamp is set only when the x axis is
// temporal and the row's value parsed.
type DataPoint struct {
	X         string
	Y         float64
	Group     string
	Timestamp *time.Time
}

// SummaryStats summarizes the y values that survived transformation. All
// fields are zero when no rows survived.
type SummaryStats struct {
	Count   int
	Sum     float64
	Average float64
	Min     float64
	Max     float64
}

// TransformResult is the transformer's output: the tuples, their summary
// statistics, and whether the x axis carries parsed timestamps.
type TransformResult struct {
	Points       []DataPoint
	Stats        SummaryStats
	TemporalAxis bool

	// Sentinel marks the single "No Data" placeholder produced when nothing
	// usable exists; sentinel points are excluded from Stats.
	Sentinel bool
}

// sentinelLabel is the x value of the placeholder point emitted when no data
// survives extraction.
const sentinelLabel = "No Data"

// defaultGroup is the group assigned to tuples when no groupBy column applies.
const defaultGroup = "default"

// Transform normalizes the dataset's rows per the spec's chart config.
func (t *DataTransformer) Transform(dataset *models.Dataset, config models.ChartConfig) TransformResult {
	if config.XAxis == "" || config.YAxis == "" {
		return t.fallbackExtract(dataset)
	}

	xCol, _ := dataset.Column(config.XAxis)
	temporal := xCol.IsTemporal()

	var points []DataPoint
	for _, row := range dataset.Rows {
		y, ok := parseNumeric(row[config.YAxis])
		if !ok {
			continue
		}

		var point DataPoint
		if temporal {
			ts, ok := parseTemporal(row[config.XAxis])
			if !ok {
				continue
			}
			point.X = ts.Format(time.RFC3339)
			point.Timestamp = &ts
		} else {
			point.X = formatScalar(row[config.XAxis])
		}
		point.Y = y
		point.Group = groupValue(row, config.GroupBy)
		points = append(points, point)
	}

	if temporal {
		sort.SliceStable(points, func(i, j int) bool {
			return points[i].Timestamp.Before(*points[j].Timestamp)
		})
	}

	if len(points) == 0 {
		return sentinelResult(temporal)
	}
	return TransformResult{
		Points:       points,
		Stats:        summarize(points),
		TemporalAxis: temporal,
	}
}

// fallbackExtract produces tuples when the config names no usable axes:
// category counts when a dimension column exists, indexed values from the
// first numeric column otherwise, and a single sentinel point when neither
// yields anything.
func (t *DataTransformer) fallbackExtract(dataset *models.Dataset) TransformResult {
	if dimensions := dataset.DimensionColumns(); len(dimensions) > 0 && len(dataset.Rows) > 0 {
		col := dimensions[0].Name
		counts := make(map[string]float64)
		var order []string
		for _, row := range dataset.Rows {
			value, present := row[col]
			if !present || value == nil {
				continue
			}
			label := formatScalar(value)
			if _, seen := counts[label]; !seen {
				order = append(order, label)
			}
			counts[label]++
		}
		var points []DataPoint
		for _, label := range order {
			points = append(points, DataPoint{X: label, Y: counts[label], Group: defaultGroup})
		}
		if len(points) > 0 {
			return TransformResult{Points: points, Stats: summarize(points)}
		}
	}

	if numeric := dataset.NumericColumns(); len(numeric) > 0 && len(dataset.Rows) > 0 {
		col := numeric[0].Name
		var points []DataPoint
		for i, row := range dataset.Rows {
			y, ok := parseNumeric(row[col])
			if !ok {
				continue
			}
			points = append(points, DataPoint{X: strconv.Itoa(i), Y: y, Group: defaultGroup})
		}
		if len(points) > 0 {
			return TransformResult{Points: points, Stats: summarize(points)}
		}
	}

	return sentinelResult(false)
}

func sentinelResult(temporal bool) TransformResult {
	return TransformResult{
		Points:       []DataPoint{{X: sentinelLabel, Y: 0, Group: defaultGroup}},
		TemporalAxis: temporal,
		Sentinel:     true,
	}
}

// summarize computes the summary statistics over the tuples' y values.
func summarize(points []DataPoint) SummaryStats {
	if len(points) == 0 {
		return SummaryStats{}
	}
	stats := SummaryStats{
		Count: len(points),
		Min:   points[0].Y,
		Max:   points[0].Y,
	}
	for _, p := range points {
		stats.Sum += p.Y
		if p.Y < stats.Min {
			stats.Min = p.Y
		}
		if p.Y > stats.Max {
			stats.Max = p.Y
		}
	}
	stats.Average = stats.Sum / float64(stats.Count)
	return stats
}

func groupValue(row models.Row, groupBy string) string {
	if groupBy == "" {
		return defaultGroup
	}
	value, present := row[groupBy]
	if !present || value == nil {
		return defaultGroup
	}
	return formatScalar(value)
}

// parseNumeric extracts a finite float from a scalar. Strings are stripped of
// everything but digits, sign, decimal point and exponent markers before
// parsing, so "$1,234.50" parses and "N/A" does not.
func parseNumeric(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, isFinite(v)
	case float32:
		return float64(v), isFinite(float64(v))
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		cleaned := stripNonNumeric(v)
		if cleaned == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		return f, isFinite(f)
	default:
		return 0, false
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func stripNonNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '+', r == '-', r == '.', r == 'e', r == 'E':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// temporalLayouts are tried in order when parsing temporal strings.
var temporalLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"2006-01",
	"Jan 2, 2006",
	"January 2006",
	"2006",
}

// parseTemporal extracts a timestamp from a scalar. Native time.Time values
// pass through; strings are tried against the known layouts.
func parseTemporal(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		trimmed := strings.TrimSpace(v)
		for _, layout := range temporalLayouts {
			if ts, err := time.Parse(layout, trimmed); err == nil {
				return ts, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// formatScalar renders a scalar as a chart label. Integral floats render
// without a decimal part so JSON-decoded numbers stay readable.
func formatScalar(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
