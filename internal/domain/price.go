package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// PriceSnapshot maps instrument id to its latest price. Zero means the price
// is unknown and the instrument must not be bought.
type PriceSnapshot map[string]decimal.Decimal

func (p PriceSnapshot) Get(instrumentID string) decimal.Decimal {
	if price, ok := p[instrumentID]; ok && price.IsPositive() {
		return price
	}
	return decimal.Zero
}

func (p PriceSnapshot) Tradable(instrumentID string) bool {
	return p.Get(instrumentID).IsPositive()
}

// MinTradablePrice returns the cheapest positive price among ids, and false
// when none of them is tradable.
func (p PriceSnapshot) MinTradablePrice(instrumentIDs []string) (decimal.Decimal, bool) {
	var (
		min   decimal.Decimal
		found bool
	)
	for _, id := range instrumentIDs {
		price := p.Get(id)
		if !price.IsPositive() {
			continue
		}
		if !found || price.LessThan(min) {
			min = price
			found = true
		}
	}
	return min, found
}

func (p PriceSnapshot) Unavailable() []string {
	out := []string{}
	for id, price := range p {
		if !price.IsPositive() {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
