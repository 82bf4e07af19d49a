package l2_service

import (
	"fmt"

	"rebalancer/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	CurrencySymbol = "₹"

	noTargetsMessage = "no target ratios provided"
	zeroSumMessage   = "sum of target ratios is zero"
)

type AllocateInput struct {
	// Holdings are expected to be aggregated, one per instrument.
	Holdings  []domain.Holding
	Targets   domain.TargetWeights
	Prices    domain.PriceSnapshot
	ExtraCash decimal.Decimal
}

func noAction(message string) domain.AllocationPlan {
	return domain.AllocationPlan{
		Trades: []domain.Trade{},
		Funds: domain.FundsStatus{
			Status:  domain.FundsStatusNoAction,
			Amount:  decimal.Zero,
			Message: message,
		},
		Positions:     []domain.PlanRow{},
		IdealPercents: map[string]decimal.Decimal{},
	}
}

// Allocate liquidates every target position plus the extra cash, then buys
// whole shares back toward the target mix. Non-target holdings are ignored.
//
// The initial allocation floors each instrument's share of the funds. The
// remainder is spent one share at a time on the affordable instrument that
// is furthest below its ideal percent, until nothing affordable is left, so
// the leftover is always below the cheapest tradable price. Equal deficits
// go to the lowest instrument id.
func Allocate(in AllocateInput) domain.AllocationPlan {
	if len(in.Targets) == 0 {
		return noAction(noTargetsMessage)
	}
	weightSum := totalWeight(in.Targets)
	if !weightSum.IsPositive() {
		return noAction(zeroSumMessage)
	}

	ids := sortedInstrumentIDs(in.Targets)

	existing := map[string]domain.Holding{}
	for _, h := range in.Holdings {
		if !in.Targets.Contains(h.InstrumentID) {
			continue
		}
		if _, ok := existing[h.InstrumentID]; !ok {
			existing[h.InstrumentID] = h
		}
	}

	extraCash := in.ExtraCash
	if extraCash.IsNegative() {
		extraCash = decimal.Zero
	}

	livePrices := domain.PriceSnapshot{}
	valuationPrices := map[string]decimal.Decimal{}
	originalQuantities := map[string]decimal.Decimal{}
	totalFunds := extraCash
	for _, id := range ids {
		live := in.Prices.Get(id)
		h, ok := existing[id]
		if !ok {
			h = domain.Holding{
				InstrumentID: id,
				Price:        live,
			}
		}
		valuationPrice := h.ValuationPrice(live)

		livePrices[id] = live
		valuationPrices[id] = valuationPrice
		originalQuantities[id] = h.Quantity
		totalFunds = totalFunds.Add(h.ValueAt(valuationPrice))
	}

	idealPercents := NormalizeWeights(in.Targets)

	quantities := map[string]decimal.Decimal{}
	spent := decimal.Zero
	for _, id := range ids {
		price := livePrices[id]
		if !price.IsPositive() {
			quantities[id] = decimal.Zero
			continue
		}
		// floor(weight * funds / weightSum / price) without intermediate rounding
		numerator := weightOf(in.Targets[id]).Mul(totalFunds)
		denominator := weightSum.Mul(price)
		quantity, _ := numerator.QuoRem(denominator, 0)
		quantities[id] = quantity
		spent = spent.Add(quantity.Mul(price))
	}
	remaining := totalFunds.Sub(spent)

	remaining = fillGreedy(ids, quantities, livePrices, idealPercents, remaining)

	trades := diffQuantities(ids, originalQuantities, quantities, valuationPrices)

	positions := make([]domain.PlanRow, 0, len(ids))
	newTotal := decimal.Zero
	for _, id := range ids {
		value := quantities[id].Mul(livePrices[id])
		newTotal = newTotal.Add(value)
		positions = append(positions, domain.PlanRow{
			InstrumentID:           id,
			DisplayName:            id,
			Quantity:               quantities[id],
			Price:                  livePrices[id],
			Value:                  value,
			IdealAllocationPercent: idealPercents[id],
			IsTarget:               true,
		})
	}
	for i := range positions {
		positions[i].ActualAllocationPercent = percentOf(positions[i].Value, newTotal)
	}

	return domain.AllocationPlan{
		Trades: trades,
		Funds: domain.FundsStatus{
			Status:  domain.FundsStatusExcessFunds,
			Amount:  remaining,
			Message: fmt.Sprintf("%s%s remains unused after rebalancing.", CurrencySymbol, remaining.StringFixed(2)),
		},
		Positions:           positions,
		IdealPercents:       idealPercents,
		TotalAvailableFunds: totalFunds,
		LeftoverCash:        remaining,
	}
}

// fillGreedy spends the remaining cash on the affordable instrument that is
// furthest below its ideal percent, one share at a time, and returns the cash
// left over. quantities is updated in place.
//
// Deficits are compared scaled by the total value (positions plus cash),
// which stays constant as cash turns into shares. The comparison is exact,
// and the shares a leader would win back to back are bought in one step.
func fillGreedy(
	ids []string,
	quantities map[string]decimal.Decimal,
	prices domain.PriceSnapshot,
	idealPercents map[string]decimal.Decimal,
	remaining decimal.Decimal,
) decimal.Decimal {
	one := decimal.NewFromInt(1)

	totalValue := remaining
	for _, id := range ids {
		totalValue = totalValue.Add(quantities[id].Mul(prices.Get(id)))
	}

	for {
		minPrice, ok := prices.MinTradablePrice(ids)
		if !ok || minPrice.GreaterThan(remaining) {
			return remaining
		}

		var (
			best, runnerUp               string
			bestDeficit, runnerUpDeficit decimal.Decimal
			hasBest, hasRunnerUp         bool
		)
		for _, id := range ids {
			price := prices.Get(id)
			if !price.IsPositive() || price.GreaterThan(remaining) {
				continue
			}
			deficit := idealPercents[id].Mul(totalValue).Sub(quantities[id].Mul(price).Mul(hundred))
			switch {
			case !hasBest:
				best, bestDeficit, hasBest = id, deficit, true
			case deficit.GreaterThan(bestDeficit):
				runnerUp, runnerUpDeficit, hasRunnerUp = best, bestDeficit, true
				best, bestDeficit = id, deficit
			case !hasRunnerUp || deficit.GreaterThan(runnerUpDeficit):
				runnerUp, runnerUpDeficit, hasRunnerUp = id, deficit, true
			}
		}
		if !hasBest {
			return remaining
		}

		price := prices.Get(best)
		shares, _ := remaining.QuoRem(price, 0)
		if hasRunnerUp {
			// each share lowers best's scaled deficit by 100*price; it keeps
			// winning while it stays above the runner-up, or level with it and
			// sorting first
			wins, rem := bestDeficit.Sub(runnerUpDeficit).QuoRem(price.Mul(hundred), 0)
			if !rem.IsZero() || best < runnerUp {
				wins = wins.Add(one)
			}
			if wins.IsPositive() && wins.LessThan(shares) {
				shares = wins
			}
		}

		quantities[best] = quantities[best].Add(shares)
		remaining = remaining.Sub(shares.Mul(price))
	}
}

func diffQuantities(
	ids []string,
	original map[string]decimal.Decimal,
	updated map[string]decimal.Decimal,
	prices map[string]decimal.Decimal,
) []domain.Trade {
	trades := []domain.Trade{}
	for _, id := range ids {
		originalQuantity := original[id]
		newQuantity := updated[id]

		var (
			action domain.TradeAction
			shares decimal.Decimal
		)
		switch {
		case newQuantity.GreaterThan(originalQuantity):
			action = domain.TradeActionBuy
			shares = newQuantity.Sub(originalQuantity).Floor()
		case newQuantity.LessThan(originalQuantity):
			action = domain.TradeActionSell
			shares = originalQuantity.Sub(newQuantity).Floor()
		default:
			continue
		}
		if !shares.IsPositive() {
			continue
		}

		trades = append(trades, domain.Trade{
			InstrumentID:     id,
			OriginalQuantity: originalQuantity,
			Action:           action,
			Shares:           shares,
			Price:            prices[id],
			TradedValue:      shares.Mul(prices[id]),
			NewQuantity:      newQuantity,
		})
	}
	return trades
}
