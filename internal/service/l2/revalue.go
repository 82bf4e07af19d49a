package l2_service

import (
	"rebalancer/internal/domain"
)

// QuantityPlaces is the precision of a quantity derived from a value, enough
// for mutual fund units.
const QuantityPlaces = 4

// Revalue moves holdings to the snapshot prices. A holding known only by its
// value gets a quantity of value / price and keeps that value. Holdings
// without a live price keep their last known price and value.
func Revalue(holdings []domain.Holding, prices domain.PriceSnapshot) []domain.Holding {
	out := make([]domain.Holding, 0, len(holdings))
	for _, h := range holdings {
		live := prices.Get(h.InstrumentID)
		if !live.IsPositive() {
			out = append(out, h)
			continue
		}
		h.Price = live
		if !h.Quantity.IsPositive() && h.Value.IsPositive() {
			h.Quantity = h.Value.DivRound(live, QuantityPlaces)
		} else {
			h.Value = h.ValueAt(live)
		}
		out = append(out, h)
	}
	return out
}
