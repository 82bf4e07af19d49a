package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Holding is one aggregated portfolio row. Value is authoritative when
// the quantity is unknown (zero), e.g. exports that only report market value.
type Holding struct {
	InstrumentID string          `json:"instrumentId"`
	Quantity     decimal.Decimal `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Value        decimal.Decimal `json:"value"`
}

// Validate rejects negative amounts. Zero stands for unknown and is allowed.
func (h Holding) Validate() error {
	switch {
	case h.Quantity.IsNegative():
		return fmt.Errorf("%s has a negative quantity %s", h.InstrumentID, h.Quantity.String())
	case h.Price.IsNegative():
		return fmt.Errorf("%s has a negative price %s", h.InstrumentID, h.Price.String())
	case h.Value.IsNegative():
		return fmt.Errorf("%s has a negative value %s", h.InstrumentID, h.Value.String())
	}
	return nil
}

// ValueAt returns quantity * price when both are known, otherwise the
// holding's last known value.
func (h Holding) ValueAt(price decimal.Decimal) decimal.Decimal {
	if h.Quantity.IsPositive() && price.IsPositive() {
		return h.Quantity.Mul(price)
	}
	return h.Value
}

// ValuationPrice prefers a live price and falls back to the stale one.
func (h Holding) ValuationPrice(live decimal.Decimal) decimal.Decimal {
	if live.IsPositive() {
		return live
	}
	return h.Price
}

// InstrumentIDs returns the ids of holdings in order.
func InstrumentIDs(holdings []Holding) []string {
	out := make([]string, 0, len(holdings))
	for _, h := range holdings {
		out = append(out, h.InstrumentID)
	}
	return out
}

// TargetWeights maps instrument id to a raw, non-negative weight. Only the
// ratio to the sum is meaningful.
type TargetWeights map[string]float64

func (t TargetWeights) Contains(instrumentID string) bool {
	_, ok := t[instrumentID]
	return ok
}

// TargetWeightRow is one entry of the target-weight file.
type TargetWeightRow struct {
	Symbol       string  `json:"Stock Symbol"`
	DirectWeight float64 `json:"Direct Holding Weight (%)"`
	FundWeight   float64 `json:"MF Holding Weight (%)"`
	TotalWeight  float64 `json:"Total Weight (%)"`
	ActualName   string  `json:"actual_name,omitempty"`
}
