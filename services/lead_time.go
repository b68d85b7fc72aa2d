package services

import (
	"fmt"
	"math"

	"github.com/BadSquidward/roomlab/catalog"
)

// AverageLeadTime averages the lower and upper bounds of the lead times that
// parse, e.g. "2-3 weeks". It returns "" when none do.
func AverageLeadTime(details []catalog.FurnitureDetail) string {
	var lo, hi, n int
	for _, fd := range details {
		l, h, ok := fd.LeadTimeWeeks()
		if !ok {
			continue
		}
		lo += l
		hi += h
		n++
	}
	if n == 0 {
		return ""
	}
	avgLo := int(math.Round(float64(lo) / float64(n)))
	avgHi := int(math.Round(float64(hi) / float64(n)))
	switch {
	case avgLo != avgHi:
		return fmt.Sprintf("%d-%d weeks", avgLo, avgHi)
	case avgLo == 1:
		return "1 week"
	default:
		return fmt.Sprintf("%d weeks", avgLo)
	}
}
