package l3_service

import (
	"context"
	"errors"
	"rebalancer/internal/domain"
	mock_repository "rebalancer/internal/repository/mocks"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleRun() domain.RebalanceRun {
	return domain.RebalanceRun{
		ID:        uuid.MustParse("7f1c1e52-3b7a-4c43-9d5c-8b1f1c2d3e4f"),
		CreatedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		ExtraCash: dec(1000),
		Plan: domain.AllocationPlan{
			Trades: []domain.Trade{
				{
					InstrumentID:     "INFY",
					OriginalQuantity: dec(0),
					Action:           domain.TradeActionBuy,
					Shares:           dec(6),
					Price:            dec(100),
					TradedValue:      dec(600),
					NewQuantity:      dec(6),
				},
			},
			Funds: domain.FundsStatus{
				Status:  domain.FundsStatusExcessFunds,
				Amount:  dec(0),
				Message: "₹0.00 remains unused after rebalancing.",
			},
			TotalAvailableFunds: dec(1000),
			LeftoverCash:        dec(0),
		},
		Holdings: []domain.PlanRow{
			{
				InstrumentID:            "INFY",
				DisplayName:             "Infosys",
				Quantity:                dec(6),
				Price:                   dec(100),
				Value:                   dec(600),
				IdealAllocationPercent:  dec(50),
				ActualAllocationPercent: dec(60),
				IsTarget:                true,
			},
		},
		Drift: domain.Drift{MaxAbsDeviation: 10, MeanAbsDeviation: 10, StdevDeviation: 10},
	}
}

func TestReportService_Markdown(t *testing.T) {
	handler := NewReportService(nil)

	t.Run("includes trades, holdings and drift", func(t *testing.T) {
		out := handler.Markdown(sampleRun())

		require.Contains(t, out, "# Rebalance Plan")
		require.Contains(t, out, "7f1c1e52-3b7a-4c43-9d5c-8b1f1c2d3e4f")
		require.Contains(t, out, "₹0.00 remains unused after rebalancing.")
		require.Contains(t, out, "## Trades")
		require.Contains(t, out, "INFY")
		require.Contains(t, out, "Buy")
		require.Contains(t, out, "₹600.00")
		require.Contains(t, out, "Infosys")
		require.Contains(t, out, "60.00%")
		require.Contains(t, out, "Max deviation: 10.00 pp")
		require.NotContains(t, out, "Unpriced")
	})

	t.Run("no-op run", func(t *testing.T) {
		run := domain.RebalanceRun{
			Plan: domain.AllocationPlan{
				Funds: domain.FundsStatus{
					Status:  domain.FundsStatusNoAction,
					Message: "no target ratios provided",
				},
			},
		}
		out := handler.Markdown(run)

		require.Contains(t, out, "no target ratios provided")
		require.Contains(t, out, "No trades.")
		require.Contains(t, out, "No holdings.")
		require.NotContains(t, out, "## Drift")
	})

	t.Run("lists unpriced instruments", func(t *testing.T) {
		run := sampleRun()
		run.UnpricedInstruments = []string{"DELISTED"}
		out := handler.Markdown(run)

		require.Contains(t, out, "## Unpriced Instruments")
		require.Contains(t, out, "DELISTED")
	})
}

func TestReportService_Render(t *testing.T) {
	handler := NewReportService(nil)

	t.Run("html", func(t *testing.T) {
		out, err := handler.HTML(sampleRun())
		require.NoError(t, err)
		require.Contains(t, out, "<h1>Rebalance Plan</h1>")
		require.Contains(t, out, "<table>")
		require.Contains(t, out, "<strong>Excess Funds</strong>")
	})

	t.Run("terminal", func(t *testing.T) {
		out, err := handler.RenderTerminal(sampleRun())
		require.NoError(t, err)
		require.Contains(t, out, "Rebalance Plan")
		require.Contains(t, out, "INFY")
	})
}

func TestReportService_Email(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the html report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emailRepository := mock_repository.NewMockEmailRepository(ctrl)
		emailRepository.EXPECT().
			SendEmail(gomock.Any(), "me@example.com", "Rebalance plan for Mar 15, 2024", gomock.Any()).
			DoAndReturn(func(ctx context.Context, to, subject, body string) error {
				require.True(t, strings.Contains(body, "<table>"))
				return nil
			})

		err := NewReportService(emailRepository).Email(ctx, sampleRun(), "me@example.com")
		require.NoError(t, err)
	})

	t.Run("send failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emailRepository := mock_repository.NewMockEmailRepository(ctrl)
		emailRepository.EXPECT().
			SendEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("throttled"))

		err := NewReportService(emailRepository).Email(ctx, sampleRun(), "me@example.com")
		require.ErrorContains(t, err, "throttled")
	})

	t.Run("email not configured", func(t *testing.T) {
		err := NewReportService(nil).Email(ctx, sampleRun(), "me@example.com")
		require.ErrorIs(t, err, ErrEmailDisabled)
	})
}
