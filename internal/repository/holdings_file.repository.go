package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"rebalancer/internal/domain"
	"rebalancer/internal/logger"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// HoldingsFileRepository reads holdings exports. Supported formats:
//
//	.csv  broker export with Instrument, Qty., LTP and Cur. val columns
//	.json a list of {Symbol, Value, Qty} or {"holdings": [{Security, Qty, Value, NAV}]}
//
// Rows are returned as read, duplicates included. Rows with a negative
// quantity, price or value are skipped with a warning.
//
// Write stores revalued rows in the {"holdings": [...]} shape, so the file
// can be read back.
type HoldingsFileRepository interface {
	Read(ctx context.Context, path string) ([]domain.Holding, error)
	Write(path string, rows []domain.PlanRow) error
}

type holdingsFileRepositoryHandler struct{}

func NewHoldingsFileRepository() HoldingsFileRepository {
	return holdingsFileRepositoryHandler{}
}

const (
	csvInstrumentColumn = "Instrument"
	csvQuantityColumn   = "Qty."
	csvPriceColumn      = "LTP"
	csvValueColumn      = "Cur. val"
)

func (h holdingsFileRepositoryHandler) Read(ctx context.Context, path string) ([]domain.Holding, error) {
	log := logger.FromContext(ctx)

	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read holdings file %s: %w", path, err)
	}

	var holdings []domain.Holding
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		holdings, err = parseHoldingsCsv(f)
	case ".json":
		holdings, err = parseHoldingsJson(f)
	default:
		return nil, fmt.Errorf("unsupported holdings file type %s", path)
	}
	if err != nil {
		return nil, err
	}

	out := make([]domain.Holding, 0, len(holdings))
	for _, holding := range holdings {
		if err := holding.Validate(); err != nil {
			log.Warnf("skipping holding in %s: %v", path, err)
			continue
		}
		out = append(out, holding)
	}

	return out, nil
}

func (h holdingsFileRepositoryHandler) Write(path string, rows []domain.PlanRow) error {
	doc := securityHoldings{
		Holdings: make([]securityHolding, 0, len(rows)),
	}
	for _, row := range rows {
		nav := row.Price
		percentage := row.ActualAllocationPercent
		doc.Holdings = append(doc.Holdings, securityHolding{
			Security:   row.InstrumentID,
			Qty:        row.Quantity,
			Value:      row.Value,
			Nav:        &nav,
			Percentage: &percentage,
		})
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal holdings: %w", err)
	}
	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write holdings %s: %w", path, err)
	}
	return nil
}

func parseHoldingsCsv(f []byte) ([]domain.Holding, error) {
	rows, err := gocsv.CSVToMaps(bytes.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to parse holdings csv: %w", err)
	}

	out := []domain.Holding{}
	if len(rows) == 0 {
		return out, nil
	}
	if _, ok := rows[0][csvInstrumentColumn]; !ok {
		return nil, fmt.Errorf("holdings csv is missing the %q column", csvInstrumentColumn)
	}
	_, hasQuantity := rows[0][csvQuantityColumn]
	_, hasValue := rows[0][csvValueColumn]
	if !hasQuantity && !hasValue {
		return nil, fmt.Errorf("holdings csv needs a %q or %q column", csvQuantityColumn, csvValueColumn)
	}

	for i, row := range rows {
		instrument := strings.TrimSpace(row[csvInstrumentColumn])
		if instrument == "" {
			continue
		}
		quantity, err := parseAmount(row[csvQuantityColumn])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid quantity: %w", i+2, err)
		}
		price, err := parseAmount(row[csvPriceColumn])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price: %w", i+2, err)
		}
		value, err := parseAmount(row[csvValueColumn])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid value: %w", i+2, err)
		}
		if !hasValue {
			value = quantity.Mul(price)
		}
		out = append(out, domain.Holding{
			InstrumentID: instrument,
			Quantity:     quantity,
			Price:        price,
			Value:        value,
		})
	}

	return out, nil
}

// parseAmount accepts thousands separators and treats blanks as zero.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" || s == "-" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

type symbolHolding struct {
	Symbol string           `json:"Symbol"`
	Value  decimal.Decimal  `json:"Value"`
	Qty    *decimal.Decimal `json:"Qty"`
}

type securityHolding struct {
	Security   string           `json:"Security"`
	Qty        decimal.Decimal  `json:"Qty"`
	Value      decimal.Decimal  `json:"Value"`
	Nav        *decimal.Decimal `json:"NAV,omitempty"`
	Percentage *decimal.Decimal `json:"Percentage,omitempty"`
}

type securityHoldings struct {
	Holdings []securityHolding `json:"holdings"`
}

func parseHoldingsJson(f []byte) ([]domain.Holding, error) {
	trimmed := bytes.TrimSpace(f)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("holdings json is empty")
	}

	out := []domain.Holding{}
	if trimmed[0] == '[' {
		rows := []symbolHolding{}
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, fmt.Errorf("failed to parse holdings json: %w", err)
		}
		for _, row := range rows {
			if row.Symbol == "" {
				continue
			}
			quantity := decimal.Zero
			if row.Qty != nil {
				quantity = *row.Qty
			}
			// the export only carries market value; the live price replaces it
			out = append(out, domain.Holding{
				InstrumentID: row.Symbol,
				Quantity:     quantity,
				Price:        row.Value,
				Value:        row.Value,
			})
		}
		return out, nil
	}

	doc := securityHoldings{}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse holdings json: %w", err)
	}
	for _, row := range doc.Holdings {
		if row.Security == "" {
			continue
		}
		price := decimal.Zero
		if row.Nav != nil && row.Nav.IsPositive() {
			price = *row.Nav
		} else if row.Qty.IsPositive() {
			price = row.Value.Div(row.Qty)
		}
		out = append(out, domain.Holding{
			InstrumentID: row.Security,
			Quantity:     row.Qty,
			Price:        price,
			Value:        row.Value,
		})
	}

	return out, nil
}
