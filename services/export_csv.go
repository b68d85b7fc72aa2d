package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BadSquidward/roomlab/catalog"
)

// BOQCSVHeader is the header row of the CSV export.
var BOQCSVHeader = []string{"item", "quantity", "unit_price", "total_price"}

// WriteBOQCSV writes the items as CSV with a header row. Item names that a
// spreadsheet would evaluate as a formula are prefixed with a single quote;
// ParseBOQCSV strips it again.
func WriteBOQCSV(w io.Writer, items []catalog.BOQItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(BOQCSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, it := range items {
		record := []string{
			sanitizeExcelCell(it.Item),
			strconv.Itoa(it.Quantity),
			strconv.Itoa(it.UnitPrice),
			strconv.Itoa(it.TotalPrice),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %s: %w", it.Item, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ParseBOQCSV reads a CSV produced by WriteBOQCSV back into items. Every row
// must satisfy total_price = quantity x unit_price.
func ParseBOQCSV(r io.Reader) ([]catalog.BOQItem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(BOQCSVHeader)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty csv")
		}
		return nil, fmt.Errorf("failed to parse CSV header: %w", err)
	}
	for i, h := range header {
		if strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) != BOQCSVHeader[i] {
			return nil, fmt.Errorf("unexpected column %d %q, want %q", i+1, h, BOQCSVHeader[i])
		}
	}

	var items []catalog.BOQItem
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}

		nums := make([]int, 3)
		for i, cell := range record[1:] {
			n, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("row %d: %s %q is not a whole number", line, BOQCSVHeader[i+1], cell)
			}
			nums[i] = n
		}
		it := catalog.BOQItem{
			Item:       unquoteFormulaCell(record[0]),
			Quantity:   nums[0],
			UnitPrice:  nums[1],
			TotalPrice: nums[2],
		}
		if err := it.Check(); err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		items = append(items, it)
	}
	return items, nil
}

// unquoteFormulaCell reverses sanitizeExcelCell.
func unquoteFormulaCell(s string) string {
	if rest, ok := strings.CutPrefix(s, "'"); ok && startsLikeFormula(rest) {
		return rest
	}
	return s
}
