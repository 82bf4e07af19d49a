package l3_service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"rebalancer/internal/calculator"
	"rebalancer/internal/domain"
	"rebalancer/internal/logger"
	"rebalancer/internal/repository"
	l1_service "rebalancer/internal/service/l1"
	l2_service "rebalancer/internal/service/l2"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RebalanceInput struct {
	Holdings  []domain.Holding
	Targets   domain.TargetWeights
	ExtraCash decimal.Decimal
	// AllocationMarginPercent is recorded on the run only.
	AllocationMarginPercent float64
	// Prices freezes the snapshot used for the run. When nil, prices are
	// fetched for the target instruments.
	Prices domain.PriceSnapshot
}

type RebalanceService interface {
	Rebalance(ctx context.Context, in RebalanceInput) (*domain.RebalanceRun, error)
	GetRun(id uuid.UUID) (*domain.RebalanceRun, error)
	ListRuns() ([]domain.RebalanceRun, error)
}

type rebalanceServiceHandler struct {
	Db                     *sql.DB
	PriceService           l1_service.PriceService
	RebalanceRunRepository repository.RebalanceRunRepository
	DisplayNames           map[string]string
	RefreshNonTargetPrices bool
}

// NewRebalanceService persists runs only when runRepository is non-nil.
// db may be nil, in which case the run is written without a transaction.
func NewRebalanceService(
	db *sql.DB,
	priceService l1_service.PriceService,
	runRepository repository.RebalanceRunRepository,
	displayNames map[string]string,
	refreshNonTargetPrices bool,
) RebalanceService {
	if displayNames == nil {
		displayNames = map[string]string{}
	}
	return rebalanceServiceHandler{
		Db:                     db,
		PriceService:           priceService,
		RebalanceRunRepository: runRepository,
		DisplayNames:           displayNames,
		RefreshNonTargetPrices: refreshNonTargetPrices,
	}
}

var ErrRunStorageDisabled = errors.New("run storage is not configured")

func (h rebalanceServiceHandler) Rebalance(ctx context.Context, in RebalanceInput) (*domain.RebalanceRun, error) {
	log := logger.FromContext(ctx)

	holdings := l1_service.Aggregate(in.Holdings)

	prices := domain.PriceSnapshot{}
	if in.Prices != nil {
		for id, p := range in.Prices {
			prices[id] = p
		}
	} else if l2_service.TargetsAllocatable(in.Targets) {
		prices = h.PriceService.GetPrices(ctx, h.instrumentsToPrice(holdings, in.Targets))
	}

	plan := l2_service.Allocate(l2_service.AllocateInput{
		Holdings:  holdings,
		Targets:   in.Targets,
		Prices:    prices,
		ExtraCash: in.ExtraCash,
	})
	for i := range plan.Positions {
		if name, ok := h.DisplayNames[plan.Positions[i].InstrumentID]; ok && name != "" {
			plan.Positions[i].DisplayName = name
		}
	}

	rows := l2_service.Reconcile(l2_service.ReconcileInput{
		Original:     holdings,
		Plan:         plan,
		Targets:      in.Targets,
		Prices:       prices,
		DisplayNames: h.DisplayNames,
	})

	drift, err := calculator.ComputeDrift(plan.Positions)
	if err != nil {
		return nil, fmt.Errorf("failed to compute drift: %w", err)
	}

	extraCash := in.ExtraCash
	if extraCash.IsNegative() {
		extraCash = decimal.Zero
	}

	run := domain.RebalanceRun{
		ID:                      uuid.New(),
		CreatedAt:               time.Now().UTC(),
		ExtraCash:               extraCash,
		AllocationMarginPercent: in.AllocationMarginPercent,
		Plan:                    plan,
		Holdings:                rows,
		Drift:                   drift,
		UnpricedInstruments:     unpricedTargets(prices, in.Targets),
	}

	log.Infow("computed rebalance plan",
		"runId", run.ID.String(),
		"status", plan.Funds.Status,
		"numTrades", len(plan.Trades),
		"totalAvailableFunds", plan.TotalAvailableFunds.String(),
		"leftoverCash", plan.LeftoverCash.String(),
	)
	for _, id := range run.UnpricedInstruments {
		log.Warnf("no price for target %s, it will not be bought", id)
	}

	if h.RebalanceRunRepository == nil {
		return &run, nil
	}

	saved, err := h.persist(run)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (h rebalanceServiceHandler) instrumentsToPrice(holdings []domain.Holding, targets domain.TargetWeights) []string {
	ids := []string{}
	for id := range targets {
		ids = append(ids, id)
	}
	if h.RefreshNonTargetPrices {
		for _, holding := range holdings {
			if !targets.Contains(holding.InstrumentID) {
				ids = append(ids, holding.InstrumentID)
			}
		}
	}
	sort.Strings(ids)
	return ids
}

// unpricedTargets lists the target instruments the snapshot has no usable
// price for. Nothing is reported for a no-op plan since nothing was priced.
func unpricedTargets(prices domain.PriceSnapshot, targets domain.TargetWeights) []string {
	out := []string{}
	if !l2_service.TargetsAllocatable(targets) {
		return out
	}
	for id := range targets {
		if !prices.Tradable(id) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

func (h rebalanceServiceHandler) persist(run domain.RebalanceRun) (*domain.RebalanceRun, error) {
	if h.Db == nil {
		saved, err := h.RebalanceRunRepository.Add(nil, run)
		if err != nil {
			return nil, fmt.Errorf("failed to save rebalance run: %w", err)
		}
		return saved, nil
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	saved, err := h.RebalanceRunRepository.Add(tx, run)
	if err != nil {
		return nil, fmt.Errorf("failed to save rebalance run: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit rebalance run: %w", err)
	}

	return saved, nil
}

func (h rebalanceServiceHandler) GetRun(id uuid.UUID) (*domain.RebalanceRun, error) {
	if h.RebalanceRunRepository == nil {
		return nil, ErrRunStorageDisabled
	}
	return h.RebalanceRunRepository.Get(id)
}

func (h rebalanceServiceHandler) ListRuns() ([]domain.RebalanceRun, error) {
	if h.RebalanceRunRepository == nil {
		return nil, ErrRunStorageDisabled
	}
	return h.RebalanceRunRepository.List()
}
