package l1_service

import (
	"context"
	"rebalancer/internal/domain"
	"rebalancer/internal/logger"
	"rebalancer/internal/repository"
)

type HoldingsService interface {
	// Load reads and aggregates every export. Unreadable files are skipped.
	Load(ctx context.Context, paths []string) []domain.Holding
	LoadFromBroker(ctx context.Context) []domain.Holding
}

type holdingsServiceHandler struct {
	HoldingsFileRepository repository.HoldingsFileRepository
	AlpacaRepository       repository.AlpacaRepository
}

func NewHoldingsService(
	holdingsFileRepository repository.HoldingsFileRepository,
	alpacaRepository repository.AlpacaRepository,
) HoldingsService {
	return holdingsServiceHandler{
		HoldingsFileRepository: holdingsFileRepository,
		AlpacaRepository:       alpacaRepository,
	}
}

func (h holdingsServiceHandler) Load(ctx context.Context, paths []string) []domain.Holding {
	log := logger.FromContext(ctx)

	all := []domain.Holding{}
	for _, path := range paths {
		holdings, err := h.HoldingsFileRepository.Read(ctx, path)
		if err != nil {
			log.Warnf("skipping holdings file %s: %v", path, err)
			continue
		}
		all = append(all, holdings...)
	}

	return Aggregate(all)
}

func (h holdingsServiceHandler) LoadFromBroker(ctx context.Context) []domain.Holding {
	log := logger.FromContext(ctx)

	if h.AlpacaRepository == nil {
		log.Warn("broker holdings requested but no broker is configured")
		return []domain.Holding{}
	}
	holdings, err := h.AlpacaRepository.GetHoldings(ctx)
	if err != nil {
		log.Warnf("failed to load broker holdings: %v", err)
		return []domain.Holding{}
	}

	return Aggregate(holdings)
}

// Aggregate merges holdings of the same instrument: quantities and values
// are summed and the first price seen is kept. Order of first appearance is
// preserved.
func Aggregate(holdings []domain.Holding) []domain.Holding {
	index := map[string]int{}
	out := []domain.Holding{}
	for _, h := range holdings {
		if h.InstrumentID == "" {
			continue
		}
		i, ok := index[h.InstrumentID]
		if !ok {
			index[h.InstrumentID] = len(out)
			out = append(out, h)
			continue
		}
		out[i].Quantity = out[i].Quantity.Add(h.Quantity)
		out[i].Value = out[i].Value.Add(h.Value)
	}
	return out
}
