package services

import (
	"testing"

	"github.com/BadSquidward/roomlab/catalog"
)

func TestNewBOQExportData(t *testing.T) {
	data := testExportData()

	if data.RoomName != "Living Room" {
		t.Errorf("room = %q", data.RoomName)
	}
	if data.DesignTitle != "Modern Elegance" {
		t.Errorf("design = %q", data.DesignTitle)
	}
	if len(data.Items) != 8 {
		t.Errorf("expected 8 items, got %d", len(data.Items))
	}
	if data.Total != 3900 {
		t.Errorf("total = %d, want 3900", data.Total)
	}
}

func TestBOQTotal(t *testing.T) {
	if got := BOQTotal(nil); got != 0 {
		t.Errorf("BOQTotal(nil) = %d", got)
	}
	items := []catalog.BOQItem{
		{Item: "A", Quantity: 2, UnitPrice: 10, TotalPrice: 20},
		{Item: "B", Quantity: 1, UnitPrice: 5, TotalPrice: 5},
	}
	if got := BOQTotal(items); got != 25 {
		t.Errorf("BOQTotal() = %d, want 25", got)
	}
}

func TestBOQFileName(t *testing.T) {
	tests := []struct {
		name string
		room string
		ext  string
		want string
	}{
		{"room with space", "Living Room", "csv", "Living Room_BOQ.csv"},
		{"single word", "Kitchen", "xlsx", "Kitchen_BOQ.xlsx"},
		{"slashes", "Bed/Bath", "pdf", "Bed-Bath_BOQ.pdf"},
		{"quotes and colons", `Den "A": 1`, "csv", "Den A- 1_BOQ.csv"},
		{"empty", "  ", "csv", "Room_BOQ.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BOQFileName(tt.room, tt.ext)
			if got != tt.want {
				t.Errorf("BOQFileName(%q, %q) = %q, want %q", tt.room, tt.ext, got, tt.want)
			}
		})
	}
}
