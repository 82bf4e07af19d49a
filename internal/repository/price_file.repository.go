package repository

import (
	"context"
	"fmt"
	"os"
	"rebalancer/internal/domain"
	"strings"
	"sync"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

type priceFileRow struct {
	InstrumentID string `csv:"instrument_id"`
	Price        string `csv:"price"`
}

// priceFileRepositoryHandler serves prices from a frozen CSV snapshot, for
// offline runs and reproducible plans. The file is read once.
type priceFileRepositoryHandler struct {
	Path string

	once   sync.Once
	prices domain.PriceSnapshot
	err    error
}

func NewPriceFileRepository(path string) PriceRepository {
	return &priceFileRepositoryHandler{Path: path}
}

func (h *priceFileRepositoryHandler) load() {
	h.prices, h.err = ReadPriceSnapshot(h.Path)
}

// ReadPriceSnapshot reads an instrument_id,price CSV into a snapshot.
func ReadPriceSnapshot(path string) (domain.PriceSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open price file %s: %w", path, err)
	}
	defer f.Close()

	rows := []priceFileRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse price file %s: %w", path, err)
	}

	out := domain.PriceSnapshot{}
	for _, row := range rows {
		price, err := decimal.NewFromString(strings.TrimSpace(row.Price))
		if err != nil {
			return nil, fmt.Errorf("invalid price %q for %s in %s: %w", row.Price, row.InstrumentID, path, err)
		}
		out[strings.TrimSpace(row.InstrumentID)] = price
	}
	return out, nil
}

func (h *priceFileRepositoryHandler) GetLatestPrice(ctx context.Context, instrumentID string) (decimal.Decimal, error) {
	h.once.Do(h.load)
	if h.err != nil {
		return decimal.Zero, h.err
	}
	price, ok := h.prices[instrumentID]
	if !ok {
		return decimal.Zero, fmt.Errorf("no price for %s in %s", instrumentID, h.Path)
	}
	return price, nil
}
