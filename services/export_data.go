package services

import (
	"strings"

	"github.com/BadSquidward/roomlab/catalog"
)

// BOQExportData holds everything needed to export a bill of quantities.
type BOQExportData struct {
	RoomName      string
	DesignTitle   string
	Items         []catalog.BOQItem
	Total         int
	GeneratedDate string
}

// NewBOQExportData assembles export data for a room and design.
func NewBOQExportData(room catalog.Room, design catalog.DesignOption, items []catalog.BOQItem, generatedDate string) BOQExportData {
	return BOQExportData{
		RoomName:      room.Name,
		DesignTitle:   design.Title,
		Items:         items,
		Total:         BOQTotal(items),
		GeneratedDate: generatedDate,
	}
}

// BOQTotal sums the line totals.
func BOQTotal(items []catalog.BOQItem) int {
	total := 0
	for _, it := range items {
		total += it.TotalPrice
	}
	return total
}

// BOQFileName returns "<room-name>_BOQ.<ext>".
func BOQFileName(roomName, ext string) string {
	name := sanitizeFilename(roomName)
	if name == "" {
		name = "Room"
	}
	return name + "_BOQ." + ext
}

// sanitizeFilename removes characters that are unsafe for filenames. Spaces
// are kept so the name matches the room as displayed.
func sanitizeFilename(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, "\"", "")
	return s
}
