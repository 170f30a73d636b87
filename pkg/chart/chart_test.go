package chart

import (
	"reflect"
	"testing"

	"github.com/specplot/specplot/pkg/align"
	"github.com/specplot/specplot/pkg/config"
)

func sampleTable() *align.Table {
	return &align.Table{
		Keys: []float64{400, 410, 420},
		Columns: []align.Column{
			{Name: "a", Values: []float64{0.1, 0.5, 0.3}},
			{Name: "b", Values: []float64{0.2, -0.1, 0.4}},
		},
	}
}

func TestBuild_AutoRanges(t *testing.T) {
	c := Build(sampleTable(), config.DefaultConfig().Style)

	if c.XRange != (config.AxisRange{Min: 400, Max: 420}) {
		t.Errorf("XRange = %+v, want 400..420", c.XRange)
	}
	if c.YRange != (config.AxisRange{Min: -0.1, Max: 0.5}) {
		t.Errorf("YRange = %+v, want -0.1..0.5", c.YRange)
	}
}

func TestBuild_ExplicitRangesWin(t *testing.T) {
	style := config.DefaultConfig().Style
	style.XRange = &config.AxisRange{Min: 350, Max: 800}
	style.YRange = &config.AxisRange{Min: 0, Max: 1}

	c := Build(sampleTable(), style)

	if c.XRange != (config.AxisRange{Min: 350, Max: 800}) {
		t.Errorf("XRange = %+v, want explicit 350..800", c.XRange)
	}
	if c.YRange != (config.AxisRange{Min: 0, Max: 1}) {
		t.Errorf("YRange = %+v, want explicit 0..1", c.YRange)
	}
}

func TestBuild_SeriesOrderAndValues(t *testing.T) {
	table := sampleTable()
	c := Build(table, config.DefaultConfig().Style)

	if len(c.Series) != 2 {
		t.Fatalf("Got %d series, want 2", len(c.Series))
	}
	if c.Series[0].Name != "a" || c.Series[1].Name != "b" {
		t.Errorf("Series order = %q, %q; want a, b", c.Series[0].Name, c.Series[1].Name)
	}
	if !reflect.DeepEqual(c.Series[0].Values, table.Columns[0].Values) {
		t.Errorf("Series values diverge from table columns")
	}
	if !reflect.DeepEqual(c.Keys, table.Keys) {
		t.Errorf("Keys diverge from table keys")
	}
}

func TestBuild_StylePassThrough(t *testing.T) {
	style := config.DefaultConfig().Style
	style.Title = "custom"
	style.Marker = config.MarkerStar

	c := Build(sampleTable(), style)

	if c.Style.Title != "custom" || c.Style.Marker != config.MarkerStar {
		t.Errorf("Style not passed through: %+v", c.Style)
	}
}

func TestBuild_SingleRow(t *testing.T) {
	table := &align.Table{
		Keys:    []float64{400},
		Columns: []align.Column{{Name: "only", Values: []float64{0.7}}},
	}

	c := Build(table, config.DefaultConfig().Style)

	if c.XRange != (config.AxisRange{Min: 400, Max: 400}) {
		t.Errorf("XRange = %+v, want degenerate 400..400", c.XRange)
	}
	if c.YRange != (config.AxisRange{Min: 0.7, Max: 0.7}) {
		t.Errorf("YRange = %+v, want degenerate 0.7..0.7", c.YRange)
	}
}
