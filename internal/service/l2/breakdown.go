package l2_service

import (
	"sort"

	"rebalancer/internal/domain"

	"github.com/shopspring/decimal"
)

// DefaultMinimumTargetWeight drops negligible look-through positions.
const DefaultMinimumTargetWeight = 0.01

type FundAllocation struct {
	Name string
	// Weight is the fund's share of the portfolio, in percent.
	Weight       float64
	Constituents []domain.FundConstituent
}

// BuildLookThroughWeights combines direct stock weights with the stocks held
// through mutual funds. A constituent contributes its fraction of the fund
// times the fund's weight. Rows at or below minWeight are dropped.
func BuildLookThroughWeights(
	direct domain.TargetWeights,
	funds []FundAllocation,
	resolve func(name string) string,
	minWeight float64,
) []domain.TargetWeightRow {
	rows := map[string]*domain.TargetWeightRow{}

	for _, symbol := range sortedInstrumentIDs(direct) {
		rows[symbol] = &domain.TargetWeightRow{
			Symbol:       symbol,
			DirectWeight: direct[symbol],
			ActualName:   symbol,
		}
	}

	for _, fund := range funds {
		if fund.Weight <= 0 {
			continue
		}
		for _, c := range fund.Constituents {
			symbol := resolve(c.Name)
			row, ok := rows[symbol]
			if !ok {
				row = &domain.TargetWeightRow{
					Symbol:     symbol,
					ActualName: c.Name,
				}
				rows[symbol] = row
			}
			row.FundWeight += c.Fraction * fund.Weight
		}
	}

	out := []domain.TargetWeightRow{}
	for _, row := range rows {
		row.TotalWeight = row.DirectWeight + row.FundWeight
		if row.TotalWeight <= minWeight {
			continue
		}
		out = append(out, domain.TargetWeightRow{
			Symbol:       row.Symbol,
			DirectWeight: round2(row.DirectWeight),
			FundWeight:   round2(row.FundWeight),
			TotalWeight:  round2(row.TotalWeight),
			ActualName:   row.ActualName,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalWeight != out[j].TotalWeight {
			return out[i].TotalWeight > out[j].TotalWeight
		}
		return out[i].Symbol < out[j].Symbol
	})

	return out
}

// TargetWeightsFromRows is the inverse view used by the allocator.
func TargetWeightsFromRows(rows []domain.TargetWeightRow) domain.TargetWeights {
	out := domain.TargetWeights{}
	for _, row := range rows {
		out[row.Symbol] = row.TotalWeight
	}
	return out
}

func round2(f float64) float64 {
	return decimal.NewFromFloat(f).Round(PercentPlaces).InexactFloat64()
}
