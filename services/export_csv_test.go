package services

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/BadSquidward/roomlab/catalog"
)

func TestWriteBOQCSV_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBOQCSV(&buf, catalog.Default().BOQ()); err != nil {
		t.Fatalf("WriteBOQCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected header + 8 rows, got %d lines", len(lines))
	}
	if lines[0] != "item,quantity,unit_price,total_price" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Sofa,1,1200,1200" {
		t.Errorf("first row = %q", lines[1])
	}
	if lines[4] != "Floor Lamp,2,150,300" {
		t.Errorf("fourth row = %q", lines[4])
	}
}

func TestBOQCSV_RoundTrip(t *testing.T) {
	want := catalog.Default().BOQ()

	var buf bytes.Buffer
	if err := WriteBOQCSV(&buf, want); err != nil {
		t.Fatalf("WriteBOQCSV() error = %v", err)
	}
	got, err := ParseBOQCSV(&buf)
	if err != nil {
		t.Fatalf("ParseBOQCSV() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestBOQCSV_RoundTripQuotedNames(t *testing.T) {
	want := []catalog.BOQItem{
		{Item: `Rug, "Persian"`, Quantity: 1, UnitPrice: 900, TotalPrice: 900},
		{Item: "Lamp\nShade", Quantity: 2, UnitPrice: 15, TotalPrice: 30},
	}

	var buf bytes.Buffer
	if err := WriteBOQCSV(&buf, want); err != nil {
		t.Fatalf("WriteBOQCSV() error = %v", err)
	}
	got, err := ParseBOQCSV(&buf)
	if err != nil {
		t.Fatalf("ParseBOQCSV() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestWriteBOQCSV_NeutralizesFormulas(t *testing.T) {
	items := []catalog.BOQItem{
		{Item: "=HYPERLINK(\"http://x\")", Quantity: 1, UnitPrice: 10, TotalPrice: 10},
		{Item: "@SUM(A1)", Quantity: 1, UnitPrice: 5, TotalPrice: 5},
		{Item: "'Quoted' Lamp", Quantity: 1, UnitPrice: 5, TotalPrice: 5},
	}

	var buf bytes.Buffer
	if err := WriteBOQCSV(&buf, items); err != nil {
		t.Fatalf("WriteBOQCSV() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if !strings.HasPrefix(lines[1], `"'=HYPERLINK(`) {
		t.Errorf("formula row written as %q", lines[1])
	}
	if lines[2] != "'@SUM(A1),1,5,5" {
		t.Errorf("at-sign row written as %q", lines[2])
	}

	got, err := ParseBOQCSV(&buf)
	if err != nil {
		t.Fatalf("ParseBOQCSV() error = %v", err)
	}
	if !reflect.DeepEqual(got, items) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, items)
	}
}

func TestParseBOQCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "empty csv"},
		{"wrong header", "name,qty,unit,total\nSofa,1,1,1\n", "unexpected column"},
		{"short row", "item,quantity,unit_price,total_price\nSofa,1,1\n", "failed to parse CSV"},
		{"not a number", "item,quantity,unit_price,total_price\nSofa,one,1200,1200\n", "not a whole number"},
		{"bad total", "item,quantity,unit_price,total_price\nSofa,2,1200,1200\n", "total 1200 != 2 x 1200"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBOQCSV(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseBOQCSV_HeaderOnly(t *testing.T) {
	items, err := ParseBOQCSV(strings.NewReader("item,quantity,unit_price,total_price\n"))
	if err != nil {
		t.Fatalf("ParseBOQCSV() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}
