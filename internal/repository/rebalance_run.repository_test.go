package repository

import (
	"rebalancer/internal/domain"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestRun() domain.RebalanceRun {
	return domain.RebalanceRun{
		ID:                      uuid.New(),
		CreatedAt:               time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC),
		ExtraCash:               decimal.NewFromInt(1000),
		AllocationMarginPercent: 2,
		Plan: domain.AllocationPlan{
			Trades: []domain.Trade{
				{
					InstrumentID: "X",
					Action:       domain.TradeActionBuy,
					Shares:       decimal.NewFromInt(6),
					Price:        decimal.NewFromInt(100),
					TradedValue:  decimal.NewFromInt(600),
					NewQuantity:  decimal.NewFromInt(6),
				},
			},
			Funds: domain.FundsStatus{
				Status:  domain.FundsStatusExcessFunds,
				Amount:  decimal.Zero,
				Message: "₹0.00 remains unused after rebalancing.",
			},
			TotalAvailableFunds: decimal.NewFromInt(1000),
			LeftoverCash:        decimal.Zero,
		},
		Drift: domain.Drift{MaxAbsDeviation: 10, MeanAbsDeviation: 10},
	}
}

func Test_runToModel(t *testing.T) {
	run := newTestRun()

	m, err := runToModel(run)
	require.NoError(t, err)
	require.Equal(t, run.ID, m.RebalanceRunID)
	require.Equal(t, domain.FundsStatusExcessFunds, m.FundsStatus)
	require.Equal(t, "2", m.AllocationMarginPercent.String())
	require.Equal(t, "10", m.MaxAbsDeviation.String())

	back, err := modelToRun(*m)
	require.NoError(t, err)
	require.Equal(t, run.ID, back.ID)
	require.Equal(t, "", cmp.Diff(
		run.Plan.Trades[0].TradedValue.String(),
		back.Plan.Trades[0].TradedValue.String(),
	))
	require.Equal(t, run.Plan.Funds.Message, back.Plan.Funds.Message)
}

func Test_tradesToModels(t *testing.T) {
	run := newTestRun()
	trades := tradesToModels(run)
	require.Len(t, trades, 1)
	require.Equal(t, run.ID, trades[0].RebalanceRunID)
	require.Equal(t, "Buy", trades[0].Action.String())
	require.Equal(t, run.CreatedAt, trades[0].CreatedAt)
}

func Test_insertQueries(t *testing.T) {
	run := newTestRun()
	m, err := runToModel(run)
	require.NoError(t, err)

	query, args := insertRunQuery(*m).Sql()
	require.Contains(t, query, "INSERT INTO public.rebalance_run")
	require.Contains(t, query, "RETURNING")
	require.Len(t, args, 11)

	query, args = insertTradesQuery(tradesToModels(run)).Sql()
	require.Contains(t, query, "INSERT INTO public.rebalance_trade")
	require.NotContains(t, query, "rebalance_trade_id")
	require.Len(t, args, 9)
}
