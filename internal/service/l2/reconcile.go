package l2_service

import (
	"sort"

	"rebalancer/internal/domain"

	"github.com/shopspring/decimal"
)

type ReconcileInput struct {
	Original     []domain.Holding
	Plan         domain.AllocationPlan
	Targets      domain.TargetWeights
	Prices       domain.PriceSnapshot
	DisplayNames map[string]string
}

// Reconcile merges the planned target positions with the holdings outside
// the target set and recomputes every allocation percent over the combined
// value. When the plan is a no-op the original holdings are returned
// revalued but otherwise untouched.
//
// Rows are sorted by display name, then instrument id.
func Reconcile(in ReconcileInput) []domain.PlanRow {
	targets := in.Targets
	if in.Plan.IsNoOp() {
		targets = domain.TargetWeights{}
	}

	rows := make([]domain.PlanRow, 0, len(in.Plan.Positions)+len(in.Original))
	rows = append(rows, in.Plan.Positions...)
	total := in.Plan.TotalValue()

	for _, h := range in.Original {
		if targets.Contains(h.InstrumentID) {
			continue
		}
		price := h.ValuationPrice(in.Prices.Get(h.InstrumentID))
		rows = append(rows, domain.PlanRow{
			InstrumentID:           h.InstrumentID,
			Quantity:               h.Quantity,
			Price:                  price,
			Value:                  h.ValueAt(price),
			IdealAllocationPercent: decimal.Zero,
		})
		total = total.Add(rows[len(rows)-1].Value)
	}

	for i := range rows {
		rows[i].DisplayName = displayName(in.DisplayNames, rows[i].InstrumentID)
		rows[i].ActualAllocationPercent = percentOf(rows[i].Value, total)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].DisplayName != rows[j].DisplayName {
			return rows[i].DisplayName < rows[j].DisplayName
		}
		return rows[i].InstrumentID < rows[j].InstrumentID
	})

	return rows
}

func displayName(names map[string]string, instrumentID string) string {
	if name, ok := names[instrumentID]; ok && name != "" {
		return name
	}
	return instrumentID
}
