package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"rebalancer/internal/domain"
	"sort"
)

// TargetWeightEntry is one raw entry of a target-weight file. Weight is nil
// when the entry did not carry one.
type TargetWeightEntry struct {
	Symbol string
	Weight *float64
}

type TargetWeightsRepository interface {
	Read(path string) ([]TargetWeightEntry, error)
	Write(path string, rows []domain.TargetWeightRow) error
}

type targetWeightsRepositoryHandler struct{}

func NewTargetWeightsRepository() TargetWeightsRepository {
	return targetWeightsRepositoryHandler{}
}

type targetWeightListItem struct {
	Symbol      string   `json:"Stock Symbol"`
	TotalWeight *float64 `json:"Total Weight (%)"`
}

// Read accepts either the breakdown list format
// [{"Stock Symbol": "X", "Total Weight (%)": 10}] or a plain {"X": 10} object.
func (h targetWeightsRepositoryHandler) Read(path string) ([]TargetWeightEntry, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read target weights %s: %w", path, err)
	}
	f = bytes.TrimSpace(f)
	if len(f) == 0 {
		return nil, fmt.Errorf("target weights %s is empty", path)
	}

	out := []TargetWeightEntry{}
	if f[0] == '[' {
		items := []targetWeightListItem{}
		if err := json.Unmarshal(f, &items); err != nil {
			return nil, fmt.Errorf("failed to parse target weights %s: %w", path, err)
		}
		for _, item := range items {
			out = append(out, TargetWeightEntry{
				Symbol: item.Symbol,
				Weight: item.TotalWeight,
			})
		}
		return out, nil
	}

	weights := map[string]*float64{}
	if err := json.Unmarshal(f, &weights); err != nil {
		return nil, fmt.Errorf("failed to parse target weights %s: %w", path, err)
	}
	symbols := make([]string, 0, len(weights))
	for symbol := range weights {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	for _, symbol := range symbols {
		out = append(out, TargetWeightEntry{
			Symbol: symbol,
			Weight: weights[symbol],
		})
	}

	return out, nil
}

func (h targetWeightsRepositoryHandler) Write(path string, rows []domain.TargetWeightRow) error {
	data, err := json.MarshalIndent(rows, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal target weights: %w", err)
	}
	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write target weights %s: %w", path, err)
	}
	return nil
}
