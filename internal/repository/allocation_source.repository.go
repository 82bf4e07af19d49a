package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"rebalancer/internal/domain"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
)

// AllocationSourceRepository reads the inputs of the look-through
// breakdown: the exchange equity list, the asset allocation and the
// per-fund holdings.
type AllocationSourceRepository interface {
	ReadEquityList(path string) ([]domain.Equity, error)
	ReadAssetAllocation(path string) (*domain.AssetAllocation, error)
	ReadFundConstituents(path string) ([]domain.FundConstituent, error)
}

type allocationSourceRepositoryHandler struct{}

func NewAllocationSourceRepository() AllocationSourceRepository {
	return allocationSourceRepositoryHandler{}
}

type equityListRow struct {
	Symbol string `csv:"SYMBOL"`
	Name   string `csv:"NAME OF COMPANY"`
}

func (h allocationSourceRepositoryHandler) ReadEquityList(path string) ([]domain.Equity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open equity list %s: %w", path, err)
	}
	defer f.Close()

	rows := []equityListRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse equity list %s: %w", path, err)
	}

	out := []domain.Equity{}
	for _, row := range rows {
		symbol := strings.TrimSpace(row.Symbol)
		if symbol == "" {
			continue
		}
		out = append(out, domain.Equity{
			Symbol: symbol,
			Name:   strings.TrimSpace(row.Name),
		})
	}
	return out, nil
}

type weightEntry struct {
	Weight   float64 `json:"Wt (%)"`
	Holdings string  `json:"holdings,omitempty"`
}

type assetAllocationFile struct {
	Stock map[string]weightEntry `json:"Stock"`
	MF    map[string]weightEntry `json:"MF"`
}

// ReadAssetAllocation reads {"Stock": {...}, "MF": {...}} where every entry
// carries "Wt (%)" and funds name their holdings file. Holdings paths are
// relative to the allocation file.
func (h allocationSourceRepositoryHandler) ReadAssetAllocation(path string) (*domain.AssetAllocation, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset allocation %s: %w", path, err)
	}

	file := assetAllocationFile{}
	if err := json.Unmarshal(f, &file); err != nil {
		return nil, fmt.Errorf("failed to parse asset allocation %s: %w", path, err)
	}

	out := &domain.AssetAllocation{
		Direct: domain.TargetWeights{},
		Funds:  []domain.FundWeight{},
	}
	for symbol, entry := range file.Stock {
		out.Direct[symbol] = entry.Weight
	}

	dir := filepath.Dir(path)
	for name, entry := range file.MF {
		holdingsFile := entry.Holdings
		if holdingsFile != "" && !filepath.IsAbs(holdingsFile) {
			holdingsFile = filepath.Join(dir, holdingsFile)
		}
		out.Funds = append(out.Funds, domain.FundWeight{
			Name:         name,
			Weight:       entry.Weight,
			HoldingsFile: holdingsFile,
		})
	}
	sort.Slice(out.Funds, func(i, j int) bool {
		return out.Funds[i].Name < out.Funds[j].Name
	})

	return out, nil
}

type fundConstituentRow struct {
	Stock    string   `json:"Stock"`
	Fraction *float64 `json:"Percentage_of_Total_Holdings"`
	Sector   string   `json:"Sector"`
}

// ReadFundConstituents reads a scraped fund holdings file. Percentages are
// fractions of the fund; rows without one are skipped.
func (h allocationSourceRepositoryHandler) ReadFundConstituents(path string) ([]domain.FundConstituent, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fund holdings %s: %w", path, err)
	}

	rows := []fundConstituentRow{}
	if err := json.Unmarshal(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse fund holdings %s: %w", path, err)
	}

	out := []domain.FundConstituent{}
	for _, row := range rows {
		if row.Stock == "" || row.Fraction == nil {
			continue
		}
		out = append(out, domain.FundConstituent{
			Name:     row.Stock,
			Fraction: *row.Fraction,
			Sector:   row.Sector,
		})
	}
	return out, nil
}
