package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"
)

// PriceRepository returns the latest known price of a single instrument.
// A zero price with a nil error means the source had no usable quote.
type PriceRepository interface {
	GetLatestPrice(ctx context.Context, instrumentID string) (decimal.Decimal, error)
}

// SymbolMapper converts an instrument id into the symbol a provider expects.
type SymbolMapper struct {
	Overrides map[string]string
	Suffix    string
}

func (m SymbolMapper) Symbol(instrumentID string) string {
	if override, ok := m.Overrides[instrumentID]; ok && override != "" {
		return override
	}
	return instrumentID + m.Suffix
}

const yahooLookbackDays = 7

type yahooPriceRepositoryHandler struct {
	Mapper SymbolMapper
	// overridable for tests
	now func() time.Time
}

// NewYahooPriceRepository prices listed equities from daily bars.
func NewYahooPriceRepository(mapper SymbolMapper) PriceRepository {
	return yahooPriceRepositoryHandler{
		Mapper: mapper,
		now:    time.Now,
	}
}

func (h yahooPriceRepositoryHandler) GetLatestPrice(ctx context.Context, instrumentID string) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}

	symbol := h.Mapper.Symbol(instrumentID)
	end := h.now()
	start := end.AddDate(0, 0, -yahooLookbackDays)
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	// bars are oldest first; keep the last non-zero close
	latest := decimal.Zero
	for iter.Next() {
		if close := iter.Bar().Close; close.IsPositive() {
			latest = close
		}
	}
	if err := iter.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("failed to get chart for %s: %w", symbol, err)
	}

	return latest, nil
}
