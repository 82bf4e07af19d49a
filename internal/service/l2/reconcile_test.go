package l2_service

import (
	"rebalancer/internal/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type reconciledRow struct {
	InstrumentID string
	DisplayName  string
	Quantity     string
	Value        string
	Actual       string
	IsTarget     bool
}

func summarize(rows []domain.PlanRow) []reconciledRow {
	out := []reconciledRow{}
	for _, row := range rows {
		out = append(out, reconciledRow{
			InstrumentID: row.InstrumentID,
			DisplayName:  row.DisplayName,
			Quantity:     row.Quantity.String(),
			Value:        row.Value.String(),
			Actual:       row.ActualAllocationPercent.String(),
			IsTarget:     row.IsTarget,
		})
	}
	return out
}

func TestReconcile(t *testing.T) {
	t.Run("merges plan with non-target holdings", func(t *testing.T) {
		original := []domain.Holding{
			{InstrumentID: "X", Quantity: dec(1), Price: dec(90), Value: dec(90)},
			{InstrumentID: "Z", Quantity: dec(2), Price: dec(50), Value: dec(100)},
		}
		targets := domain.TargetWeights{"X": 50, "Y": 50}
		snapshot := prices(map[string]float64{"X": 100, "Y": 200, "Z": 60})

		plan := Allocate(AllocateInput{
			Holdings:  original,
			Targets:   targets,
			Prices:    snapshot,
			ExtraCash: dec(900),
		})

		rows := Reconcile(ReconcileInput{
			Original:     original,
			Plan:         plan,
			Targets:      targets,
			Prices:       snapshot,
			DisplayNames: map[string]string{"Z": "Alpha Corp"},
		})

		require.Equal(t, "", cmp.Diff(
			[]reconciledRow{
				{InstrumentID: "Z", DisplayName: "Alpha Corp", Quantity: "2", Value: "120", Actual: "10.71"},
				{InstrumentID: "X", DisplayName: "X", Quantity: "6", Value: "600", Actual: "53.57", IsTarget: true},
				{InstrumentID: "Y", DisplayName: "Y", Quantity: "2", Value: "400", Actual: "35.71", IsTarget: true},
			},
			summarize(rows),
		))
	})

	t.Run("unpriced non-target keeps its stale value", func(t *testing.T) {
		original := []domain.Holding{
			{InstrumentID: "FUND", Value: dec(250)},
		}
		rows := Reconcile(ReconcileInput{
			Original: original,
			Plan:     noAction(noTargetsMessage),
			Targets:  domain.TargetWeights{},
			Prices:   domain.PriceSnapshot{},
		})

		require.Equal(t, "", cmp.Diff(
			[]reconciledRow{
				{InstrumentID: "FUND", DisplayName: "FUND", Quantity: "0", Value: "250", Actual: "100"},
			},
			summarize(rows),
		))
	})

	t.Run("no-op plan returns every original holding", func(t *testing.T) {
		original := []domain.Holding{
			{InstrumentID: "B", Quantity: dec(1), Price: dec(10), Value: dec(10)},
			{InstrumentID: "A", Quantity: dec(3), Price: dec(10), Value: dec(30)},
		}
		rows := Reconcile(ReconcileInput{
			Original: original,
			Plan:     noAction(zeroSumMessage),
			Targets:  domain.TargetWeights{"A": 0, "B": 0},
			Prices:   prices(map[string]float64{"A": 10, "B": 10}),
		})

		require.Equal(t, "", cmp.Diff(
			[]reconciledRow{
				{InstrumentID: "A", DisplayName: "A", Quantity: "3", Value: "30", Actual: "75"},
				{InstrumentID: "B", DisplayName: "B", Quantity: "1", Value: "10", Actual: "25"},
			},
			summarize(rows),
		))
	})

	t.Run("zero total yields zero percents", func(t *testing.T) {
		rows := Reconcile(ReconcileInput{
			Original: []domain.Holding{{InstrumentID: "A"}},
			Plan:     noAction(noTargetsMessage),
			Prices:   domain.PriceSnapshot{},
		})
		require.Len(t, rows, 1)
		require.True(t, rows[0].ActualAllocationPercent.IsZero())
	})
}
