package l2_service

import (
	"context"
	"fmt"
	"rebalancer/internal/domain"
	"rebalancer/internal/logger"
	"rebalancer/internal/repository"
)

type BuildLookThroughInput struct {
	AllocationPath string
	EquityListPath string
	// OutputPath is optional; when set the rows are written as a target file.
	OutputPath string
}

// LookThroughService turns an asset allocation that includes mutual funds
// into per-stock target weights.
type LookThroughService interface {
	BuildLookThrough(ctx context.Context, in BuildLookThroughInput) ([]domain.TargetWeightRow, error)
}

type lookThroughServiceHandler struct {
	AllocationSourceRepository repository.AllocationSourceRepository
	TargetWeightsRepository    repository.TargetWeightsRepository
	FuzzyMatchThreshold        float64
	MinimumTargetWeight        float64
}

func NewLookThroughService(
	allocationSourceRepository repository.AllocationSourceRepository,
	targetWeightsRepository repository.TargetWeightsRepository,
	fuzzyMatchThreshold float64,
	minimumTargetWeight float64,
) LookThroughService {
	return lookThroughServiceHandler{
		AllocationSourceRepository: allocationSourceRepository,
		TargetWeightsRepository:    targetWeightsRepository,
		FuzzyMatchThreshold:        fuzzyMatchThreshold,
		MinimumTargetWeight:        minimumTargetWeight,
	}
}

func (h lookThroughServiceHandler) BuildLookThrough(ctx context.Context, in BuildLookThroughInput) ([]domain.TargetWeightRow, error) {
	log := logger.FromContext(ctx)

	allocation, err := h.AllocationSourceRepository.ReadAssetAllocation(in.AllocationPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load asset allocation: %w", err)
	}
	equities, err := h.AllocationSourceRepository.ReadEquityList(in.EquityListPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load equity list: %w", err)
	}

	funds := []FundAllocation{}
	for _, fund := range allocation.Funds {
		if fund.Weight <= 0 {
			continue
		}
		if fund.HoldingsFile == "" {
			log.Warnf("fund %s has weight %.2f%% but no holdings file, skipping", fund.Name, fund.Weight)
			continue
		}
		constituents, err := h.AllocationSourceRepository.ReadFundConstituents(fund.HoldingsFile)
		if err != nil {
			log.Warnf("skipping fund %s: %v", fund.Name, err)
			continue
		}
		funds = append(funds, FundAllocation{
			Name:         fund.Name,
			Weight:       fund.Weight,
			Constituents: constituents,
		})
	}

	resolver := NewSymbolResolver(equities, h.FuzzyMatchThreshold)
	rows := BuildLookThroughWeights(allocation.Direct, funds, resolver.Resolve, h.MinimumTargetWeight)

	if in.OutputPath != "" {
		if err := h.TargetWeightsRepository.Write(in.OutputPath, rows); err != nil {
			return nil, err
		}
		log.Infof("wrote %d target weights to %s", len(rows), in.OutputPath)
	}

	return rows, nil
}
