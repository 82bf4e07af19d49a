package l2_service

import (
	"rebalancer/internal/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBuildLookThroughWeights(t *testing.T) {
	symbols := map[string]string{
		"Infosys Limited":         "INFY",
		"Reliance Industries Ltd": "RELIANCE",
	}
	resolve := func(name string) string {
		if s, ok := symbols[name]; ok {
			return s
		}
		return name
	}

	rows := BuildLookThroughWeights(
		domain.TargetWeights{"INFY": 10, "TCS": 5, "TINY": 0.005},
		[]FundAllocation{
			{
				Name:   "Flexi Cap",
				Weight: 40,
				Constituents: []domain.FundConstituent{
					{Name: "Infosys Limited", Fraction: 0.1},
					{Name: "Reliance Industries Ltd", Fraction: 0.05},
					{Name: "Cash", Fraction: 0.00001},
				},
			},
			{
				Name:   "Unallocated",
				Weight: 0,
				Constituents: []domain.FundConstituent{
					{Name: "Infosys Limited", Fraction: 1},
				},
			},
		},
		resolve,
		DefaultMinimumTargetWeight,
	)

	require.Equal(t, "", cmp.Diff(
		[]domain.TargetWeightRow{
			{Symbol: "INFY", DirectWeight: 10, FundWeight: 4, TotalWeight: 14, ActualName: "INFY"},
			{Symbol: "TCS", DirectWeight: 5, TotalWeight: 5, ActualName: "TCS"},
			{Symbol: "RELIANCE", FundWeight: 2, TotalWeight: 2, ActualName: "Reliance Industries Ltd"},
		},
		rows,
	))

	require.Equal(t, "", cmp.Diff(
		domain.TargetWeights{"INFY": 14, "TCS": 5, "RELIANCE": 2},
		TargetWeightsFromRows(rows),
	))
}
