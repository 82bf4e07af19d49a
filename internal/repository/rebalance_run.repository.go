package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"rebalancer/internal/db/models/postgres/public/model"
	"rebalancer/internal/db/models/postgres/public/table"
	"rebalancer/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RebalanceRunRepository stores computed plans. The full run is kept as
// JSON alongside a flattened trade table for querying.
type RebalanceRunRepository interface {
	Add(tx *sql.Tx, run domain.RebalanceRun) (*domain.RebalanceRun, error)
	Get(id uuid.UUID) (*domain.RebalanceRun, error)
	List() ([]domain.RebalanceRun, error)
}

type rebalanceRunRepositoryHandler struct {
	Db *sql.DB
}

func NewRebalanceRunRepository(db *sql.DB) RebalanceRunRepository {
	return rebalanceRunRepositoryHandler{Db: db}
}

func (h rebalanceRunRepositoryHandler) Add(tx *sql.Tx, run domain.RebalanceRun) (*domain.RebalanceRun, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	runModel, err := runToModel(run)
	if err != nil {
		return nil, err
	}

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.RebalanceRun{}
	err = insertRunQuery(*runModel).Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert rebalance run: %w", err)
	}

	trades := tradesToModels(run)
	if len(trades) > 0 {
		var exec qrm.Executable = h.Db
		if tx != nil {
			exec = tx
		}
		_, err = insertTradesQuery(trades).Exec(exec)
		if err != nil {
			return nil, fmt.Errorf("failed to insert trades for rebalance run %s: %w", run.ID.String(), err)
		}
	}

	return modelToRun(out)
}

func (h rebalanceRunRepositoryHandler) Get(id uuid.UUID) (*domain.RebalanceRun, error) {
	query := table.RebalanceRun.
		SELECT(table.RebalanceRun.AllColumns).
		WHERE(table.RebalanceRun.RebalanceRunID.EQ(postgres.UUID(id)))

	result := model.RebalanceRun{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get rebalance run: %w", err)
	}

	return modelToRun(result)
}

func (h rebalanceRunRepositoryHandler) List() ([]domain.RebalanceRun, error) {
	query := table.RebalanceRun.
		SELECT(table.RebalanceRun.AllColumns).
		ORDER_BY(table.RebalanceRun.CreatedAt.DESC())

	result := []model.RebalanceRun{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list rebalance runs: %w", err)
	}

	out := []domain.RebalanceRun{}
	for _, m := range result {
		run, err := modelToRun(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *run)
	}

	return out, nil
}

func insertRunQuery(m model.RebalanceRun) postgres.InsertStatement {
	return table.RebalanceRun.
		INSERT(table.RebalanceRun.AllColumns).
		MODEL(m).
		RETURNING(table.RebalanceRun.AllColumns)
}

func insertTradesQuery(trades []model.RebalanceTrade) postgres.InsertStatement {
	return table.RebalanceTrade.
		INSERT(table.RebalanceTrade.MutableColumns).
		MODELS(trades)
}

func runToModel(run domain.RebalanceRun) (*model.RebalanceRun, error) {
	result, err := json.Marshal(run)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rebalance run %s: %w", run.ID.String(), err)
	}

	return &model.RebalanceRun{
		RebalanceRunID:          run.ID,
		CreatedAt:               run.CreatedAt,
		ExtraCash:               run.ExtraCash,
		AllocationMarginPercent: decimal.NewFromFloat(run.AllocationMarginPercent),
		FundsStatus:             run.Plan.Funds.Status,
		TotalAvailableFunds:     run.Plan.TotalAvailableFunds,
		LeftoverCash:            run.Plan.LeftoverCash,
		MaxAbsDeviation:         decimal.NewFromFloat(run.Drift.MaxAbsDeviation),
		MeanAbsDeviation:        decimal.NewFromFloat(run.Drift.MeanAbsDeviation),
		StdevDeviation:          decimal.NewFromFloat(run.Drift.StdevDeviation),
		Result:                  string(result),
	}, nil
}

func tradesToModels(run domain.RebalanceRun) []model.RebalanceTrade {
	out := []model.RebalanceTrade{}
	for _, t := range run.Plan.Trades {
		out = append(out, model.RebalanceTrade{
			RebalanceRunID:   run.ID,
			InstrumentID:     t.InstrumentID,
			Action:           model.TradeAction(t.Action),
			Shares:           t.Shares,
			Price:            t.Price,
			TradedValue:      t.TradedValue,
			OriginalQuantity: t.OriginalQuantity,
			NewQuantity:      t.NewQuantity,
			CreatedAt:        run.CreatedAt,
		})
	}
	return out
}

func modelToRun(m model.RebalanceRun) (*domain.RebalanceRun, error) {
	run := domain.RebalanceRun{}
	err := json.Unmarshal([]byte(m.Result), &run)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal rebalance run %s: %w", m.RebalanceRunID.String(), err)
	}
	run.ID = m.RebalanceRunID
	run.CreatedAt = m.CreatedAt
	return &run, nil
}
