package api

import (
	"fmt"
	"rebalancer/internal/domain"
	l3_service "rebalancer/internal/service/l3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type rebalanceHolding struct {
	InstrumentID string          `json:"instrumentId"`
	Quantity     decimal.Decimal `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Value        decimal.Decimal `json:"value"`
}

type rebalanceRequest struct {
	Holdings                []rebalanceHolding         `json:"holdings"`
	Targets                 map[string]float64         `json:"targets"`
	ExtraCash               decimal.Decimal            `json:"extraCash"`
	AllocationMarginPercent *float64                   `json:"allocationMarginPercent"`
	Prices                  map[string]decimal.Decimal `json:"prices"`
}

type RebalanceResponse struct {
	RunID               uuid.UUID                  `json:"runId"`
	Actions             []domain.Trade             `json:"actions"`
	Funds               domain.FundsStatus         `json:"funds"`
	Holdings            []domain.PlanRow           `json:"holdings"`
	IdealAllocations    map[string]decimal.Decimal `json:"idealAllocations"`
	TotalAvailableFunds decimal.Decimal            `json:"totalAvailableFunds"`
	LeftoverCash        decimal.Decimal            `json:"leftoverCash"`
	Drift               domain.Drift               `json:"drift"`
	UnpricedInstruments []string                   `json:"unpricedInstruments"`
}

func (m ApiHandler) rebalance(c *gin.Context) {
	var requestBody rebalanceRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid request body: %w", err), c, 400)
		return
	}

	in := l3_service.RebalanceInput{
		Holdings:                []domain.Holding{},
		Targets:                 domain.TargetWeights{},
		ExtraCash:               requestBody.ExtraCash,
		AllocationMarginPercent: m.DefaultAllocationMarginPercent,
	}
	for _, h := range requestBody.Holdings {
		holding := domain.Holding{
			InstrumentID: h.InstrumentID,
			Quantity:     h.Quantity,
			Price:        h.Price,
			Value:        h.Value,
		}
		if err := holding.Validate(); err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid holding: %w", err), c, 400)
			return
		}
		in.Holdings = append(in.Holdings, holding)
	}
	for id, weight := range requestBody.Targets {
		in.Targets[id] = weight
	}
	if requestBody.AllocationMarginPercent != nil {
		in.AllocationMarginPercent = *requestBody.AllocationMarginPercent
	}
	if requestBody.Prices != nil {
		in.Prices = domain.PriceSnapshot(requestBody.Prices)
	}

	run, err := m.RebalanceService.Rebalance(c.Request.Context(), in)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to rebalance: %w", err), c)
		return
	}

	c.JSON(200, rebalanceResponseFromRun(*run))
}

func rebalanceResponseFromRun(run domain.RebalanceRun) RebalanceResponse {
	unpriced := run.UnpricedInstruments
	if unpriced == nil {
		unpriced = []string{}
	}
	return RebalanceResponse{
		RunID:               run.ID,
		Actions:             run.Plan.Trades,
		Funds:               run.Plan.Funds,
		Holdings:            run.Holdings,
		IdealAllocations:    run.Plan.IdealPercents,
		TotalAvailableFunds: run.Plan.TotalAvailableFunds,
		LeftoverCash:        run.Plan.LeftoverCash,
		Drift:               run.Drift,
		UnpricedInstruments: unpriced,
	}
}
