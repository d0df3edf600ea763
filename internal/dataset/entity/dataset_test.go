package entity

import (
	"encoding/json"
	"testing"
)

func TestRecordMarshalKeepsColumnOrder(t *testing.T) {
	rec := Record{Columns: []string{"z", "a", "m"}, Values: []any{int64(1), "two", true}}

	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(b); got != `{"z":1,"a":"two","m":true}` {
		t.Fatalf("unexpected json: %s", got)
	}

	if v, ok := rec.Get("a"); !ok || v != "two" {
		t.Fatalf("Get(a) = %v, %v", v, ok)
	}
	if _, ok := rec.Get("missing"); ok {
		t.Fatal("expected missing column to be absent")
	}
}

func TestRecordMarshalKeepsFloatDecimal(t *testing.T) {
	rec := Record{
		Columns: []string{"f", "g", "big", "n"},
		Values:  []any{float64(1), 1.5, 1e21, int64(2)},
	}

	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(b); got != `{"f":1.0,"g":1.5,"big":1e+21,"n":2}` {
		t.Fatalf("unexpected json: %s", got)
	}
}

func TestColumnTypesMarshal(t *testing.T) {
	types := ColumnTypes{Columns: []string{"b", "a"}, Labels: []TypeLabel{TypeFloat64, TypeObject}}

	b, err := json.Marshal(types)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(b); got != `{"b":"float64","a":"object"}` {
		t.Fatalf("unexpected json: %s", got)
	}
	if got := types.Label("b"); got != TypeFloat64 {
		t.Fatalf("Label(b) = %s", got)
	}
	if got := types.Label("nope"); got != TypeObject {
		t.Fatalf("Label(nope) = %s", got)
	}
}

func TestNewDatasetSample(t *testing.T) {
	types := ColumnTypes{Columns: []string{"n"}, Labels: []TypeLabel{TypeInt64}}
	rows := make([][]any, 0, 7)
	for i := 0; i < 7; i++ {
		rows = append(rows, []any{int64(i)})
	}

	ds := NewDataset("n.csv", types, rows)
	if ds.TotalRows() != 7 || ds.Info.Rows != 7 {
		t.Fatalf("unexpected row counts: %d %d", ds.TotalRows(), ds.Info.Rows)
	}
	if len(ds.Info.SampleData) != SampleSize {
		t.Fatalf("expected %d sample records, got %d", SampleSize, len(ds.Info.SampleData))
	}

	small := NewDataset("s.csv", types, rows[:2])
	if len(small.Info.SampleData) != 2 {
		t.Fatalf("expected all records as sample, got %d", len(small.Info.SampleData))
	}

	empty := NewDataset("e.csv", types, nil)
	b, err := json.Marshal(empty.Info)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(b); got != `{"filename":"e.csv","rows":0,"columns":["n"],"data_types":{"n":"int64"},"sample_data":[]}` {
		t.Fatalf("unexpected info json: %s", got)
	}
}
