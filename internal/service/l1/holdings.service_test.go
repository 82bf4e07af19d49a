package l1_service

import (
	"context"
	"fmt"
	"rebalancer/internal/domain"
	mock_repository "rebalancer/internal/repository/mocks"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func holding(id string, qty, price, value int64) domain.Holding {
	return domain.Holding{
		InstrumentID: id,
		Quantity:     decimal.NewFromInt(qty),
		Price:        decimal.NewFromInt(price),
		Value:        decimal.NewFromInt(value),
	}
}

func holdingStrings(holdings []domain.Holding) [][]string {
	out := [][]string{}
	for _, h := range holdings {
		out = append(out, []string{h.InstrumentID, h.Quantity.String(), h.Price.String(), h.Value.String()})
	}
	return out
}

func TestAggregate(t *testing.T) {
	got := Aggregate([]domain.Holding{
		holding("B", 1, 10, 10),
		holding("A", 2, 20, 40),
		holding("B", 3, 12, 36),
		holding("", 9, 9, 81),
	})

	require.Equal(t, "", cmp.Diff(
		[][]string{
			{"B", "4", "10", "46"},
			{"A", "2", "20", "40"},
		},
		holdingStrings(got),
	))
}

func Test_holdingsServiceHandler(t *testing.T) {
	t.Run("load merges files and skips unreadable ones", func(t *testing.T) {
		ctx := context.Background()
		ctrl := gomock.NewController(t)
		fileRepository := mock_repository.NewMockHoldingsFileRepository(ctrl)

		fileRepository.EXPECT().
			Read(gomock.Any(), "stocks.csv").
			Return([]domain.Holding{holding("INFY", 10, 1500, 15000)}, nil)
		fileRepository.EXPECT().
			Read(gomock.Any(), "broken.json").
			Return(nil, fmt.Errorf("failed to parse holdings json"))
		fileRepository.EXPECT().
			Read(gomock.Any(), "more.csv").
			Return([]domain.Holding{holding("INFY", 5, 1510, 7550)}, nil)

		service := NewHoldingsService(fileRepository, nil)
		got := service.Load(ctx, []string{"stocks.csv", "broken.json", "more.csv"})

		require.Equal(t, "", cmp.Diff(
			[][]string{{"INFY", "15", "1500", "22550"}},
			holdingStrings(got),
		))
	})

	t.Run("broker holdings", func(t *testing.T) {
		ctx := context.Background()
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		alpacaRepository.EXPECT().
			GetHoldings(gomock.Any()).
			Return([]domain.Holding{holding("AAPL", 1, 190, 190)}, nil)

		service := NewHoldingsService(nil, alpacaRepository)
		require.Len(t, service.LoadFromBroker(ctx), 1)
	})

	t.Run("broker failure degrades to empty", func(t *testing.T) {
		ctx := context.Background()
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		alpacaRepository.EXPECT().
			GetHoldings(gomock.Any()).
			Return(nil, fmt.Errorf("get positions: unauthorized"))

		service := NewHoldingsService(nil, alpacaRepository)
		require.Empty(t, service.LoadFromBroker(ctx))
		require.Empty(t, NewHoldingsService(nil, nil).LoadFromBroker(ctx))
	})
}
