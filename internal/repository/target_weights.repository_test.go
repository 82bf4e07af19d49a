package repository

import (
	"path/filepath"
	"rebalancer/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_targetWeightsRepositoryHandler(t *testing.T) {
	repo := NewTargetWeightsRepository()

	t.Run("list format", func(t *testing.T) {
		path := writeFile(t, "targets.json", `[
			{"Stock Symbol": "RELIANCE", "Direct Holding Weight (%)": 6, "Total Weight (%)": 8.5},
			{"Stock Symbol": "INFY"},
			{"Total Weight (%)": 3}
		]`)
		entries, err := repo.Read(path)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		require.Equal(t, "RELIANCE", entries[0].Symbol)
		require.Equal(t, 8.5, *entries[0].Weight)
		require.Nil(t, entries[1].Weight)
		require.Equal(t, "", entries[2].Symbol)
	})

	t.Run("object format", func(t *testing.T) {
		path := writeFile(t, "targets.json", `{"TCS": 10, "INFY": 5}`)
		entries, err := repo.Read(path)
		require.NoError(t, err)
		require.Equal(t, "INFY", entries[0].Symbol)
		require.Equal(t, 5.0, *entries[0].Weight)
		require.Equal(t, "TCS", entries[1].Symbol)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := repo.Read(writeFile(t, "targets.json", `[{"Stock Symbol": 1`))
		require.Error(t, err)
		_, err = repo.Read(writeFile(t, "targets.json", ``))
		require.Error(t, err)
		_, err = repo.Read(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
	})

	t.Run("written rows read back as weights", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "breakdown.json")
		err := repo.Write(path, []domain.TargetWeightRow{
			{Symbol: "INFY", DirectWeight: 10, FundWeight: 4, TotalWeight: 14, ActualName: "INFY"},
		})
		require.NoError(t, err)

		entries, err := repo.Read(path)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, "INFY", entries[0].Symbol)
		require.Equal(t, 14.0, *entries[0].Weight)
	})
}
