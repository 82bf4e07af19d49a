package l1_service

import (
	"context"
	"fmt"
	"rebalancer/internal/domain"
	"rebalancer/internal/repository"
	mock_repository "rebalancer/internal/repository/mocks"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func floatPointer(f float64) *float64 {
	return &f
}

func Test_targetServiceHandler_Load(t *testing.T) {
	t.Run("skips invalid entries", func(t *testing.T) {
		ctx := context.Background()
		ctrl := gomock.NewController(t)
		targetWeightsRepository := mock_repository.NewMockTargetWeightsRepository(ctrl)

		targetWeightsRepository.EXPECT().
			Read("targets.json").
			Return([]repository.TargetWeightEntry{
				{Symbol: "RELIANCE", Weight: floatPointer(6)},
				{Symbol: "INFY", Weight: floatPointer(0)},
				{Symbol: "TCS", Weight: floatPointer(-1)},
				{Symbol: "", Weight: floatPointer(5)},
				{Symbol: "WIPRO"},
			}, nil)

		got := NewTargetService(targetWeightsRepository).Load(ctx, "targets.json")
		require.Equal(t, "", cmp.Diff(domain.TargetWeights{"RELIANCE": 6, "INFY": 0}, got))
	})

	t.Run("malformed file yields empty weights", func(t *testing.T) {
		ctx := context.Background()
		ctrl := gomock.NewController(t)
		targetWeightsRepository := mock_repository.NewMockTargetWeightsRepository(ctrl)

		targetWeightsRepository.EXPECT().
			Read("targets.json").
			Return(nil, fmt.Errorf("failed to parse target weights"))

		service := NewTargetService(targetWeightsRepository)
		require.Empty(t, service.Load(ctx, "targets.json"))
		require.Empty(t, service.Load(ctx, ""))
	})
}
