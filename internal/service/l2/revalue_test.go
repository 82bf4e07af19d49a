package l2_service

import (
	"rebalancer/internal/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRevalue(t *testing.T) {
	holdings := []domain.Holding{
		{InstrumentID: "INFY", Quantity: dec(10), Price: dec(1400), Value: dec(14000)},
		{InstrumentID: "PPFAS", Price: dec(8040), Value: dec(8040)},
		{InstrumentID: "STALE", Quantity: dec(3), Price: dec(50), Value: dec(150)},
		{InstrumentID: "EMPTY"},
	}

	got := Revalue(holdings, prices(map[string]float64{
		"INFY":  1502.35,
		"PPFAS": 84.12,
		"EMPTY": 10,
	}))

	view := [][]string{}
	for _, h := range got {
		view = append(view, []string{h.InstrumentID, h.Quantity.String(), h.Price.String(), h.Value.String()})
	}
	require.Equal(t, "", cmp.Diff(
		[][]string{
			{"INFY", "10", "1502.35", "15023.5"},
			{"PPFAS", "95.5777", "84.12", "8040"},
			{"STALE", "3", "50", "150"},
			{"EMPTY", "0", "10", "0"},
		},
		view,
	))
	require.Equal(t, "1400", holdings[0].Price.String())
}
