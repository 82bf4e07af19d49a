package l2_service

import (
	"sort"

	"rebalancer/internal/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PercentPlaces is the precision of every allocation percent. Rounding is
// half away from zero (decimal.Round).
const PercentPlaces = 2

// NormalizeWeights converts raw weights into percentages of the total.
// A zero total (including an empty map) yields zero for every instrument.
func NormalizeWeights(weights domain.TargetWeights) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(weights))
	total := totalWeight(weights)
	for id, w := range weights {
		if !total.IsPositive() {
			out[id] = decimal.Zero
			continue
		}
		out[id] = weightOf(w).Mul(hundred).Div(total).Round(PercentPlaces)
	}
	return out
}

func weightOf(w float64) decimal.Decimal {
	if w <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(w)
}

func totalWeight(weights domain.TargetWeights) decimal.Decimal {
	total := decimal.Zero
	for _, w := range weights {
		total = total.Add(weightOf(w))
	}
	return total
}

func sortedInstrumentIDs(weights domain.TargetWeights) []string {
	ids := make([]string, 0, len(weights))
	for id := range weights {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// percentOf returns part/total*100 rounded, or zero when total is not positive.
func percentOf(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(total).Round(PercentPlaces)
}

// TargetsAllocatable reports whether Allocate would do anything with these
// weights. Callers use it to skip fetching prices for a no-op.
func TargetsAllocatable(weights domain.TargetWeights) bool {
	return len(weights) > 0 && totalWeight(weights).IsPositive()
}
