package calculator

import (
	"fmt"
	"math"
	"rebalancer/internal/domain"

	"github.com/montanaflynn/stats"
)

// ComputeDrift measures how far the target rows sit from their ideal
// allocation, in percentage points. Non-target rows are ignored.
func ComputeDrift(rows []domain.PlanRow) (domain.Drift, error) {
	deviations := []float64{}
	absDeviations := []float64{}
	for _, row := range rows {
		if !row.IsTarget {
			continue
		}
		deviation := row.IdealAllocationPercent.Sub(row.ActualAllocationPercent).InexactFloat64()
		deviations = append(deviations, deviation)
		absDeviations = append(absDeviations, math.Abs(deviation))
	}
	if len(deviations) == 0 {
		return domain.Drift{}, nil
	}

	maxDeviation, err := stats.Max(absDeviations)
	if err != nil {
		return domain.Drift{}, fmt.Errorf("failed to calculate max deviation: %w", err)
	}
	mean, err := stats.Mean(absDeviations)
	if err != nil {
		return domain.Drift{}, fmt.Errorf("failed to calculate mean deviation: %w", err)
	}
	stdev, err := stats.StandardDeviationPopulation(deviations)
	if err != nil {
		return domain.Drift{}, fmt.Errorf("failed to calculate stdev: %w", err)
	}

	return domain.Drift{
		MaxAbsDeviation:  round(maxDeviation, 4),
		MeanAbsDeviation: round(mean, 4),
		StdevDeviation:   round(stdev, 4),
	}, nil
}

func round(f float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(f*scale) / scale
}
