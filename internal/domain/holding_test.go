package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestHolding_Validate(t *testing.T) {
	require.NoError(t, Holding{InstrumentID: "A"}.Validate())
	require.NoError(t, Holding{
		InstrumentID: "A",
		Quantity:     decimal.NewFromInt(2),
		Price:        decimal.NewFromInt(10),
		Value:        decimal.NewFromInt(20),
	}.Validate())

	require.ErrorContains(t, Holding{InstrumentID: "A", Quantity: decimal.NewFromInt(-5)}.Validate(), "negative quantity -5")
	require.ErrorContains(t, Holding{InstrumentID: "A", Price: decimal.NewFromInt(-1)}.Validate(), "negative price -1")
	require.ErrorContains(t, Holding{InstrumentID: "A", Value: decimal.NewFromInt(-1000)}.Validate(), "negative value -1000")
}
