package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/BadSquidward/roomlab/catalog"
)

// openWorkbook parses generated xlsx bytes and closes the file when the test ends.
func openWorkbook(t *testing.T, b []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func testExportData() BOQExportData {
	c := catalog.Default()
	room, _ := c.RoomByID("living-room")
	design, _ := c.DesignByID("design1")
	return NewBOQExportData(room, design, c.BOQ(), "15 Jan 2025")
}
