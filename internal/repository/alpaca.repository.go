package repository

import (
	"context"
	"fmt"
	"rebalancer/internal/domain"
	"rebalancer/internal/logger"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

// AlpacaRepository reads quotes and open positions from the broker. It is
// both a PriceRepository and a holdings source.
type AlpacaRepository interface {
	PriceRepository
	GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
	GetPositions() ([]alpaca.Position, error)
	GetHoldings(ctx context.Context) ([]domain.Holding, error)
}

func NewAlpacaRepository(apiKey, apiSecret string, endpoint string) AlpacaRepository {
	client := alpaca.NewClient(alpaca.ClientOpts{
		APIKey:     apiKey,
		APISecret:  apiSecret,
		BaseURL:    endpoint,
		RetryLimit: 3,
	})

	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return &alpacaRepositoryHandler{
		Client:   client,
		MdClient: mdClient,
	}
}

type alpacaRepositoryHandler struct {
	Client   *alpaca.Client
	MdClient *marketdata.Client
}

func (h alpacaRepositoryHandler) GetLatestPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	prices, err := h.GetLatestPrices(ctx, []string{symbol})
	if err != nil {
		return decimal.Zero, err
	}
	return prices[symbol], nil
}

// GetLatestPrices uses the bid of the latest quote. Symbols without a quote
// are reported as zero.
func (h alpacaRepositoryHandler) GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	out := map[string]decimal.Decimal{}
	if len(symbols) == 0 {
		return out, nil
	}

	results, err := h.MdClient.GetLatestQuotes(symbols, marketdata.GetLatestQuoteRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to get latest quotes: %w", err)
	}
	for _, symbol := range symbols {
		result, ok := results[symbol]
		if !ok || result.BidPrice <= 0 {
			log.Warnf("no bid price for %s", symbol)
			out[symbol] = decimal.Zero
			continue
		}
		out[symbol] = decimal.NewFromFloat(result.BidPrice)
	}

	return out, nil
}

func (h alpacaRepositoryHandler) GetPositions() ([]alpaca.Position, error) {
	positions, err := h.Client.GetPositions()
	if err != nil {
		return nil, fmt.Errorf("get positions: %w", err)
	}
	return positions, nil
}

func (h alpacaRepositoryHandler) GetHoldings(ctx context.Context) ([]domain.Holding, error) {
	positions, err := h.GetPositions()
	if err != nil {
		return nil, err
	}
	return PositionsToHoldings(positions), nil
}

// PositionsToHoldings maps broker positions onto holdings. Short positions
// are skipped.
func PositionsToHoldings(positions []alpaca.Position) []domain.Holding {
	out := []domain.Holding{}
	for _, p := range positions {
		if p.Qty.IsNegative() {
			continue
		}
		price := decimal.Zero
		if p.CurrentPrice != nil {
			price = *p.CurrentPrice
		}
		value := p.Qty.Mul(price)
		if p.MarketValue != nil {
			value = *p.MarketValue
		}
		out = append(out, domain.Holding{
			InstrumentID: p.Symbol,
			Quantity:     p.Qty,
			Price:        price,
			Value:        value,
		})
	}
	return out
}
