package integration_tests

import (
	"context"
	"rebalancer/internal/domain"
	"rebalancer/internal/repository"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/shopspring/decimal"
)

// NewMockAlpacaRepositoryForTests serves fixed quotes and positions so the
// broker path can run without credentials.
func NewMockAlpacaRepositoryForTests() repository.AlpacaRepository {
	return mockAlpacaForTestsHandler{}
}

type mockAlpacaForTestsHandler struct{}

var mockQuotes = map[string]decimal.Decimal{
	"AAPL": decimal.RequireFromString("130.04"),
	"META": decimal.RequireFromString("272.87"),
	"GOOG": decimal.RequireFromString("87.59"),
}

func (m mockAlpacaForTestsHandler) GetLatestPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	return mockQuotes[symbol], nil
}

func (m mockAlpacaForTestsHandler) GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	for _, symbol := range symbols {
		out[symbol] = mockQuotes[symbol]
	}
	return out, nil
}

func (m mockAlpacaForTestsHandler) GetPositions() ([]alpaca.Position, error) {
	price := decimal.RequireFromString("130.04")
	value := decimal.RequireFromString("1300.4")
	stalePrice := decimal.RequireFromString("12.5")
	staleValue := decimal.RequireFromString("125")
	return []alpaca.Position{
		{
			Symbol:       "AAPL",
			Qty:          decimal.NewFromInt(10),
			CurrentPrice: &price,
			MarketValue:  &value,
		},
		{
			Symbol:       "XYZ",
			Qty:          decimal.NewFromInt(10),
			CurrentPrice: &stalePrice,
			MarketValue:  &staleValue,
		},
	}, nil
}

func (m mockAlpacaForTestsHandler) GetHoldings(ctx context.Context) ([]domain.Holding, error) {
	positions, err := m.GetPositions()
	if err != nil {
		return nil, err
	}
	return repository.PositionsToHoldings(positions), nil
}
