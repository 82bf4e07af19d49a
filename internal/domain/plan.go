package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TradeAction string

const (
	TradeActionBuy  TradeAction = "Buy"
	TradeActionSell TradeAction = "Sell"
)

type Trade struct {
	InstrumentID     string          `json:"instrumentId"`
	OriginalQuantity decimal.Decimal `json:"originalQuantity"`
	Action           TradeAction     `json:"action"`
	Shares           decimal.Decimal `json:"shares"`
	Price            decimal.Decimal `json:"price"`
	TradedValue      decimal.Decimal `json:"tradedValue"`
	NewQuantity      decimal.Decimal `json:"newQuantity"`
}

const (
	FundsStatusNoAction    = "No Action"
	FundsStatusExcessFunds = "Excess Funds"
)

type FundsStatus struct {
	Status  string          `json:"status"`
	Amount  decimal.Decimal `json:"amount"`
	Message string          `json:"message"`
}

// PlanRow is one line of the post-rebalance holdings view.
type PlanRow struct {
	InstrumentID            string          `json:"instrumentId"`
	DisplayName             string          `json:"displayName"`
	Quantity                decimal.Decimal `json:"quantity"`
	Price                   decimal.Decimal `json:"price"`
	Value                   decimal.Decimal `json:"value"`
	IdealAllocationPercent  decimal.Decimal `json:"idealAllocationPercent"`
	ActualAllocationPercent decimal.Decimal `json:"actualAllocationPercent"`
	IsTarget                bool            `json:"isTarget"`
}

// AllocationPlan is the allocator output for the target instruments only.
// Positions are ordered by instrument id.
type AllocationPlan struct {
	Trades              []Trade                    `json:"trades"`
	Funds               FundsStatus                `json:"funds"`
	Positions           []PlanRow                  `json:"positions"`
	IdealPercents       map[string]decimal.Decimal `json:"idealPercents"`
	TotalAvailableFunds decimal.Decimal            `json:"totalAvailableFunds"`
	LeftoverCash        decimal.Decimal            `json:"leftoverCash"`
}

func (p AllocationPlan) IsNoOp() bool {
	return p.Funds.Status == FundsStatusNoAction
}

// TotalValue sums the value of every planned position.
func (p AllocationPlan) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, row := range p.Positions {
		total = total.Add(row.Value)
	}
	return total
}

type Drift struct {
	MaxAbsDeviation  float64 `json:"maxAbsDeviation"`
	MeanAbsDeviation float64 `json:"meanAbsDeviation"`
	StdevDeviation   float64 `json:"stdevDeviation"`
}

type RebalanceRun struct {
	ID                      uuid.UUID       `json:"runId"`
	CreatedAt               time.Time       `json:"createdAt"`
	ExtraCash               decimal.Decimal `json:"extraCash"`
	AllocationMarginPercent float64         `json:"allocationMarginPercent"`
	Plan                    AllocationPlan  `json:"plan"`
	Holdings                []PlanRow       `json:"holdings"`
	Drift                   Drift           `json:"drift"`
	UnpricedInstruments     []string        `json:"unpricedInstruments,omitempty"`
}
