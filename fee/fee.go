// Package fee prices a registration from the competitions it selects.
package fee

import "github.com/google/uuid"

type CatalogEntry struct {
	Id  uuid.UUID
	Fee float64
}

// ComputeTotalFee sums the fee of every catalog entry whose id is selected.
// Selected ids missing from the catalog add nothing.
func ComputeTotalFee(selected []uuid.UUID, catalog []CatalogEntry) float64 {
	chosen := make(map[uuid.UUID]bool, len(selected))
	for _, id := range selected {
		chosen[id] = true
	}
	total := 0.0
	for _, entry := range catalog {
		if chosen[entry.Id] {
			total += entry.Fee
		}
	}
	return total
}

func IsPaymentRequired(totalFee float64) bool {
	return totalFee > 0
}
