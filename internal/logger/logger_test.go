package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFromContext(t *testing.T) {
	t.Run("returns stored logger", func(t *testing.T) {
		log := zap.NewNop().Sugar()
		ctx := WithContext(context.Background(), log)

		require.Same(t, log, FromContext(ctx))
	})

	t.Run("falls back to global logger", func(t *testing.T) {
		got := FromContext(context.Background())
		require.NotNil(t, got)
	})

	t.Run("ignores wrong value type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), ContextKey, "not a logger")
		require.NotNil(t, FromContext(ctx))
	})
}
