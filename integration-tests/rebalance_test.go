package integration_tests_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"rebalancer/api"
	"rebalancer/cmd"
	"rebalancer/internal/domain"
	"rebalancer/internal/logger"
	l3_service "rebalancer/internal/service/l3"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func initializeForTests(t *testing.T) *cmd.Dependencies {
	t.Setenv(logger.EnvVar, "test")
	t.Setenv("REBALANCER_DB_URL", "")
	t.Setenv("SES_REGION", "")

	configPath := filepath.Join(t.TempDir(), "config-test.json")
	err := os.WriteFile(configPath, []byte(`{
		"priceSource": "alpaca",
		"priceRequestIntervalMs": 0,
		"displayNames": {"AAPL": "Apple"}
	}`), 0o644)
	require.NoError(t, err)

	deps, err := cmd.InitializeDependencies(configPath)
	require.NoError(t, err)
	t.Cleanup(func() { cmd.CloseDependencies(deps) })

	return deps
}

func TestRebalanceFromBroker(t *testing.T) {
	deps := initializeForTests(t)
	ctx := logger.WithContext(context.Background(), zap.NewNop().Sugar())

	holdings := deps.HoldingsService.LoadFromBroker(ctx)
	require.Len(t, holdings, 2)

	run, err := deps.RebalanceService.Rebalance(ctx, l3_service.RebalanceInput{
		Holdings: holdings,
		Targets:  domain.TargetWeights{"AAPL": 50, "META": 50},
	})
	require.NoError(t, err)

	trades := map[string]string{}
	for _, trade := range run.Plan.Trades {
		trades[trade.InstrumentID] = string(trade.Action) + " " + trade.Shares.String()
	}
	require.Equal(t, "", cmp.Diff(
		map[string]string{"AAPL": "Sell 5", "META": "Buy 2"},
		trades,
	))
	require.Equal(t, "104.46", run.Plan.LeftoverCash.String())
	require.Equal(t, "104.46", run.Plan.Funds.Amount.String())

	rows := map[string]domain.PlanRow{}
	for _, row := range run.Holdings {
		rows[row.InstrumentID] = row
	}
	require.Equal(t, "Apple", rows["AAPL"].DisplayName)
	require.Equal(t, "125", rows["XYZ"].Value.String())
	require.False(t, rows["XYZ"].IsTarget)
}

func TestRebalanceApi(t *testing.T) {
	deps := initializeForTests(t)
	gin.SetMode(gin.TestMode)
	engine := deps.ApiHandler.InitializeRouterEngine()

	body := `{
		"holdings": [{"instrumentId": "GOOG", "quantity": 1, "price": 80, "value": 80}],
		"targets": {"GOOG": 1, "UNKNOWN": 1},
		"extraCash": "100"
	}`
	req := httptest.NewRequest(http.MethodPost, "/rebalance", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	response := api.RebalanceResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	require.Equal(t, []string{"UNKNOWN"}, response.UnpricedInstruments)
	require.Len(t, response.Actions, 1)
	require.Equal(t, "GOOG", response.Actions[0].InstrumentID)
	require.Equal(t, "1", response.Actions[0].Shares.String())
	require.True(t, response.LeftoverCash.LessThan(decimal.RequireFromString("87.59")))
}
