package l1_service

import (
	"context"
	"rebalancer/internal/domain"
	"rebalancer/internal/logger"
	"rebalancer/internal/repository"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// PriceService builds a price snapshot for a set of instruments. It never
// fails: an instrument that cannot be priced is reported at zero.
type PriceService interface {
	GetPrices(ctx context.Context, instrumentIDs []string) domain.PriceSnapshot
}

type priceServiceHandler struct {
	EquityPriceRepository repository.PriceRepository
	NavRepository         repository.PriceRepository
	SchemeIds             map[string]string
	Limiter               *rate.Limiter
}

// NewPriceService issues at most one request per interval. Instruments with
// a scheme id are priced by NAV, everything else by the equity source. A
// zero interval disables the limit.
func NewPriceService(
	equityPriceRepository repository.PriceRepository,
	navRepository repository.PriceRepository,
	schemeIds map[string]string,
	interval time.Duration,
) PriceService {
	if schemeIds == nil {
		schemeIds = map[string]string{}
	}
	return priceServiceHandler{
		EquityPriceRepository: equityPriceRepository,
		NavRepository:         navRepository,
		SchemeIds:             schemeIds,
		Limiter:               rate.NewLimiter(rate.Every(interval), 1),
	}
}

func (h priceServiceHandler) repositoryFor(instrumentID string) repository.PriceRepository {
	if _, ok := h.SchemeIds[instrumentID]; ok && h.NavRepository != nil {
		return h.NavRepository
	}
	return h.EquityPriceRepository
}

// GetPrices fetches one instrument at a time. Once ctx is done the remaining
// instruments are left at zero.
func (h priceServiceHandler) GetPrices(ctx context.Context, instrumentIDs []string) domain.PriceSnapshot {
	log := logger.FromContext(ctx)

	ids := uniqueSorted(instrumentIDs)
	out := make(domain.PriceSnapshot, len(ids))
	for _, id := range ids {
		out[id] = decimal.Zero
	}

	for i, id := range ids {
		if err := h.Limiter.Wait(ctx); err != nil {
			log.Warnf("stopped fetching prices after %d of %d instruments: %v", i, len(ids), err)
			break
		}

		repo := h.repositoryFor(id)
		if repo == nil {
			log.Warnf("no price source configured for %s", id)
			continue
		}

		price, err := repo.GetLatestPrice(ctx, id)
		if err != nil {
			log.Warnf("failed to get price for %s: %v", id, err)
			continue
		}
		if !price.IsPositive() {
			log.Warnf("no price available for %s", id)
			continue
		}
		out[id] = price
	}

	return out
}

func uniqueSorted(ids []string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
