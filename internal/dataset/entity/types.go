package entity

// TypeLabel is the coarse type assigned to a column from the values it holds.
type TypeLabel string

const (
	TypeInt64   TypeLabel = "int64"
	TypeFloat64 TypeLabel = "float64"
	TypeBool    TypeLabel = "bool"
	TypeObject  TypeLabel = "object"
)

// ColumnTypes pairs every column with its label, in column order.
type ColumnTypes struct {
	Columns []string
	Labels  []TypeLabel
}

// Label returns the label of column, or TypeObject when it is unknown.
func (c ColumnTypes) Label(column string) TypeLabel {
	for i, name := range c.Columns {
		if name == column && i < len(c.Labels) {
			return c.Labels[i]
		}
	}
	return TypeObject
}

// MarshalJSON encodes the labels as an object keyed by column name, keeping column order.
func (c ColumnTypes) MarshalJSON() ([]byte, error) {
	return marshalOrdered(c.Columns, func(i int) any {
		if i < len(c.Labels) {
			return c.Labels[i]
		}
		return TypeObject
	})
}
