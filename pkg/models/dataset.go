package models

// SemanticType classifies a dataset column's inferred role.
type SemanticType string

const (
	SemanticTypeNumeric     SemanticType = "numeric"
	SemanticTypeCategorical SemanticType = "categorical"
	SemanticTypeTemporal    SemanticType = "temporal"
	SemanticTypeText        SemanticType = "text"
)

// ValidSemanticTypes contains all valid semantic type values.
var ValidSemanticTypes = []SemanticType{
	SemanticTypeNumeric,
	SemanticTypeCategorical,
	SemanticTypeTemporal,
	SemanticTypeText,
}

// IsValidSemanticType checks if the given semantic type is valid.
func IsValidSemanticType(t SemanticType) bool {
	for _, v := range ValidSemanticTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ColumnDescriptor describes one dataset column. Descriptors are supplied by
// the caller; the engine never re-infers a column's semantic type beyond
// temporal value parsing during transformation.
type ColumnDescriptor struct {
	Name         string       `json:"name"`
	SemanticType SemanticType `json:"semanticType"`
}

// IsNumeric reports whether the column holds measurable quantities.
func (c ColumnDescriptor) IsNumeric() bool {
	return c.SemanticType == SemanticTypeNumeric
}

// IsDimension reports whether the column can serve as a grouping dimension.
// Both categorical and free-text columns qualify.
func (c ColumnDescriptor) IsDimension() bool {
	return c.SemanticType == SemanticTypeCategorical || c.SemanticType == SemanticTypeText
}

// IsTemporal reports whether the column holds time-like values.
func (c ColumnDescriptor) IsTemporal() bool {
	return c.SemanticType == SemanticTypeTemporal
}

// Row is a single dataset record keyed by column name.
type Row map[string]any

// Dataset is the read-only tabular input to the pipeline: an ordered sequence
// of rows plus the descriptors for the columns they reference.
type Dataset struct {
	Columns []ColumnDescriptor `json:"columns"`
	Rows    []Row              `json:"rows"`
}

// NumericColumns returns the numeric column descriptors in declaration order.
func (d *Dataset) NumericColumns() []ColumnDescriptor {
	return d.columnsWhere(ColumnDescriptor.IsNumeric)
}

// DimensionColumns returns the categorical and text column descriptors in
// declaration order.
func (d *Dataset) DimensionColumns() []ColumnDescriptor {
	return d.columnsWhere(ColumnDescriptor.IsDimension)
}

// TemporalColumns returns the temporal column descriptors in declaration order.
func (d *Dataset) TemporalColumns() []ColumnDescriptor {
	return d.columnsWhere(ColumnDescriptor.IsTemporal)
}

func (d *Dataset) columnsWhere(pred func(ColumnDescriptor) bool) []ColumnDescriptor {
	var out []ColumnDescriptor
	for _, col := range d.Columns {
		if pred(col) {
			out = append(out, col)
		}
	}
	return out
}

// Column returns the descriptor for the named column, if present.
func (d *Dataset) Column(name string) (ColumnDescriptor, bool) {
	for _, col := range d.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return ColumnDescriptor{}, false
}

// RowCount returns the number of rows in the dataset.
func (d *Dataset) RowCount() int {
	return len(d.Rows)
}
