package entity

// SampleSize is the number of leading records copied into Info.SampleData.
const SampleSize = 5

// Info is the metadata summary of a parsed CSV file.
type Info struct {
	Filename   string      `json:"filename"`
	Rows       int         `json:"rows"`
	Columns    []string    `json:"columns"`
	DataTypes  ColumnTypes `json:"data_types"`
	SampleData []Record    `json:"sample_data"`
}

// Dataset is the parsed, filtered content of one CSV file.
type Dataset struct {
	Info    Info
	Records []Record
}

// TotalRows is the number of records left after null-row removal.
func (d Dataset) TotalRows() int {
	return len(d.Records)
}

// NewDataset shapes typed rows into a Dataset. Each row must hold one value
// per column.
func NewDataset(filename string, types ColumnTypes, rows [][]any) Dataset {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, Record{Columns: types.Columns, Values: row})
	}

	sample := records
	if len(sample) > SampleSize {
		sample = sample[:SampleSize]
	}

	return Dataset{
		Info: Info{
			Filename:   filename,
			Rows:       len(records),
			Columns:    types.Columns,
			DataTypes:  types,
			SampleData: sample,
		},
		Records: records,
	}
}
