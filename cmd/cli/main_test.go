package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"rebalancer/internal/domain"
	"rebalancer/internal/logger"
	"rebalancer/internal/repository"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func runCLI(args ...string) (string, error) {
	root := newRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

type fixture struct {
	config   string
	holdings string
	targets  string
	prices   string
	dir      string
}

func newFixture(t *testing.T) fixture {
	t.Setenv("REBALANCER_DB_URL", "")
	t.Setenv("SES_REGION", "")
	dir := t.TempDir()
	prices := writeFile(t, dir, "prices.csv", "instrument_id,price\nX,100\nY,200\n")
	return fixture{
		dir:      dir,
		prices:   prices,
		config:   writeFile(t, dir, "config.json", `{"priceSource": "file", "priceFile": "`+prices+`", "priceRequestIntervalMs": 0}`),
		holdings: writeFile(t, dir, "holdings.csv", "Instrument,Qty.,LTP,Cur. val\nX,2,100,200\n"),
		targets:  writeFile(t, dir, "targets.json", `{"X": 50, "Y": 50}`),
	}
}

func TestRebalanceCommand(t *testing.T) {
	t.Run("json output and plan file", func(t *testing.T) {
		f := newFixture(t)
		planPath := filepath.Join(f.dir, "plan.json")

		out, err := runCLI(
			"--config", f.config,
			"rebalance",
			"--holdings", f.holdings,
			"--targets", f.targets,
			"--extra-cash", "800",
			"--out", planPath,
			"--format", "json",
		)
		require.NoError(t, err)

		run := domain.RebalanceRun{}
		require.NoError(t, json.Unmarshal([]byte(out), &run))
		quantities := map[string]string{}
		for _, row := range run.Holdings {
			quantities[row.InstrumentID] = row.Quantity.String()
		}
		require.Equal(t, "", cmp.Diff(map[string]string{"X": "6", "Y": "2"}, quantities))
		require.Len(t, run.Plan.Trades, 2)
		require.Equal(t, "4", run.Plan.Trades[0].Shares.String())
		require.Equal(t, 2.0, run.AllocationMarginPercent)

		saved, err := os.ReadFile(planPath)
		require.NoError(t, err)
		require.Contains(t, string(saved), run.ID.String())
	})

	t.Run("frozen prices and markdown", func(t *testing.T) {
		f := newFixture(t)
		config := writeFile(t, f.dir, "empty.json", `{}`)

		out, err := runCLI(
			"--config", config,
			"rebalance",
			"--targets", f.targets,
			"--extra-cash", "1000",
			"--prices", f.prices,
			"--margin", "5",
			"--format", "markdown",
		)
		require.NoError(t, err)
		require.Contains(t, out, "# Rebalance Plan")
		require.Contains(t, out, "₹0.00 remains unused after rebalancing.")
		require.Contains(t, out, "5.00%")
	})

	t.Run("invalid extra cash", func(t *testing.T) {
		f := newFixture(t)
		_, err := runCLI("--config", f.config, "rebalance", "--targets", f.targets, "--extra-cash", "lots")
		require.ErrorContains(t, err, "invalid --extra-cash")
	})

	t.Run("persist needs a database", func(t *testing.T) {
		f := newFixture(t)
		_, err := runCLI("--config", f.config, "rebalance", "--targets", f.targets, "--persist")
		require.ErrorContains(t, err, "no database configured")
	})

	t.Run("targets are required", func(t *testing.T) {
		f := newFixture(t)
		_, err := runCLI("--config", f.config, "rebalance")
		require.Error(t, err)
	})
}

func TestHoldingsCommand(t *testing.T) {
	f := newFixture(t)
	second := writeFile(t, f.dir, "more.json", `[{"Symbol": "Y", "Value": 600}]`)

	out, err := runCLI("--config", f.config, "holdings", "--holdings", f.holdings, "--holdings", second)
	require.NoError(t, err)
	require.Equal(t, "X\t2\t200.00\t25.00%\nY\t0\t600.00\t75.00%\n", out)
}

func TestHoldingsCommand_brokerOverlap(t *testing.T) {
	f := newFixture(t)
	t.Setenv(logger.EnvVar, "test")
	exported := writeFile(t, f.dir, "aapl.csv", "Instrument,Qty.,LTP,Cur. val\nAAPL,5,130.04,650.2\n")

	out, err := runCLI("--config", f.config, "holdings", "--holdings", exported, "--broker")
	require.NoError(t, err)
	require.Equal(t, "AAPL\t15\t1950.60\t93.98%\nXYZ\t10\t125.00\t6.02%\n", out)
}

func TestHoldingsCommand_refresh(t *testing.T) {
	f := newFixture(t)
	stale := writeFile(t, f.dir, "stale.csv", "Instrument,Qty.,LTP,Cur. val\nX,2,90,180\nZ,1,50,50\n")
	valueOnly := writeFile(t, f.dir, "y.json", `[{"Symbol": "Y", "Value": 600}]`)
	refreshed := filepath.Join(f.dir, "refreshed.json")

	out, err := runCLI(
		"--config", f.config,
		"holdings",
		"--holdings", stale,
		"--holdings", valueOnly,
		"--refresh",
		"--out", refreshed,
	)
	require.NoError(t, err)
	require.Equal(t, "X\t2\t200.00\t23.53%\nY\t3\t600.00\t70.59%\nZ\t1\t50.00\t5.88%\n", out)

	holdings, err := repository.NewHoldingsFileRepository().Read(context.Background(), refreshed)
	require.NoError(t, err)
	view := [][]string{}
	for _, h := range holdings {
		view = append(view, []string{h.InstrumentID, h.Quantity.String(), h.Price.String(), h.Value.String()})
	}
	require.Equal(t, "", cmp.Diff(
		[][]string{
			{"X", "2", "100", "200"},
			{"Y", "3", "200", "600"},
			{"Z", "1", "50", "50"},
		},
		view,
	))
}

func TestPricesCommand(t *testing.T) {
	f := newFixture(t)

	out, err := runCLI("--config", f.config, "prices", "X", "Z")
	require.NoError(t, err)
	require.Equal(t, "X\t100\nZ\tunavailable\n", out)
}

func TestBreakdownCommand(t *testing.T) {
	f := newFixture(t)
	writeFile(t, f.dir, "fund_a.json", `[
		{"Stock": "Tata Consultancy Services Ltd.", "Percentage_of_Total_Holdings": 0.5, "Sector": "IT"},
		{"Stock": "Infosys Ltd", "Percentage_of_Total_Holdings": 0.5, "Sector": "IT"}
	]`)
	allocation := writeFile(t, f.dir, "allocation.json", `{
		"Stock": {"INFY": {"Wt (%)": 40}},
		"MF": {"Fund A": {"Wt (%)": 60, "holdings": "fund_a.json"}}
	}`)
	equityList := writeFile(t, f.dir, "equity.csv", "SYMBOL,NAME OF COMPANY\nINFY,Infosys Limited\nTCS,Tata Consultancy Services Limited\n")

	out, err := runCLI("--config", f.config, "breakdown", "--allocation", allocation, "--equity-list", equityList)
	require.NoError(t, err)

	rows := []domain.TargetWeightRow{}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	require.Equal(t, "INFY", rows[0].Symbol)
	require.Equal(t, 70.0, rows[0].TotalWeight)
	require.Equal(t, "TCS", rows[1].Symbol)
	require.Equal(t, 30.0, rows[1].TotalWeight)
}
