package l1_service

import (
	"context"
	"rebalancer/internal/domain"
	"rebalancer/internal/logger"
	"rebalancer/internal/repository"
)

type TargetService interface {
	// Load returns an empty map when the file is missing or malformed.
	Load(ctx context.Context, path string) domain.TargetWeights
}

type targetServiceHandler struct {
	TargetWeightsRepository repository.TargetWeightsRepository
}

func NewTargetService(targetWeightsRepository repository.TargetWeightsRepository) TargetService {
	return targetServiceHandler{
		TargetWeightsRepository: targetWeightsRepository,
	}
}

func (h targetServiceHandler) Load(ctx context.Context, path string) domain.TargetWeights {
	log := logger.FromContext(ctx)

	out := domain.TargetWeights{}
	if path == "" {
		log.Warn("no target weights file provided")
		return out
	}

	entries, err := h.TargetWeightsRepository.Read(path)
	if err != nil {
		log.Warnf("ignoring target weights: %v", err)
		return out
	}

	for _, entry := range entries {
		switch {
		case entry.Symbol == "" || entry.Weight == nil:
			log.Warnf("skipping target weight entry %q: missing symbol or weight", entry.Symbol)
		case *entry.Weight < 0:
			log.Warnf("skipping negative target weight %f for %s", *entry.Weight, entry.Symbol)
		default:
			out[entry.Symbol] += *entry.Weight
		}
	}

	return out
}
