package l3_service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"rebalancer/internal/domain"
	"rebalancer/internal/logger"
	"rebalancer/internal/repository"
	l2_service "rebalancer/internal/service/l2"

	"github.com/charmbracelet/glamour"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ReportService turns a run into something a person reads. The markdown
// document is the source for both the terminal and the HTML rendering.
type ReportService interface {
	Markdown(run domain.RebalanceRun) string
	RenderTerminal(run domain.RebalanceRun) (string, error)
	HTML(run domain.RebalanceRun) (string, error)
	Email(ctx context.Context, run domain.RebalanceRun, to string) error
}

type reportServiceHandler struct {
	EmailRepository repository.EmailRepository
	WordWrap        int
}

// NewReportService accepts a nil emailRepository; Email then fails.
func NewReportService(emailRepository repository.EmailRepository) ReportService {
	return reportServiceHandler{
		EmailRepository: emailRepository,
		WordWrap:        120,
	}
}

var ErrEmailDisabled = errors.New("email is not configured")

func money(d decimal.Decimal) string {
	return l2_service.CurrencySymbol + d.StringFixed(2)
}

func percent(d decimal.Decimal) string {
	return d.StringFixed(l2_service.PercentPlaces) + "%"
}

func (h reportServiceHandler) Markdown(run domain.RebalanceRun) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Rebalance Plan")
	doc.PlainText(fmt.Sprintf("Run %s at %s", run.ID.String(), run.CreatedAt.Format("2006-01-02 15:04:05 MST")))
	doc.PlainText("")
	doc.PlainText(fmt.Sprintf("%s: %s", md.Bold(run.Plan.Funds.Status), run.Plan.Funds.Message))
	doc.PlainText("")

	doc.Table(md.TableSet{
		Header: []string{"Summary", ""},
		Rows: [][]string{
			{"Extra cash", money(run.ExtraCash)},
			{"Total available funds", money(run.Plan.TotalAvailableFunds)},
			{"Leftover cash", money(run.Plan.LeftoverCash)},
			{"Allocation margin", fmt.Sprintf("%.2f%%", run.AllocationMarginPercent)},
		},
	})

	doc.H2("Trades")
	if len(run.Plan.Trades) == 0 {
		doc.PlainText("No trades.")
	} else {
		table := md.TableSet{
			Header: []string{"Instrument", "Action", "Shares", "Price", "Value", "Before", "After"},
		}
		for _, trade := range run.Plan.Trades {
			table.Rows = append(table.Rows, []string{
				trade.InstrumentID,
				string(trade.Action),
				trade.Shares.String(),
				money(trade.Price),
				money(trade.TradedValue),
				trade.OriginalQuantity.String(),
				trade.NewQuantity.String(),
			})
		}
		doc.Table(table)
	}

	doc.H2("Holdings After Rebalancing")
	if len(run.Holdings) == 0 {
		doc.PlainText("No holdings.")
	} else {
		table := md.TableSet{
			Header: []string{"Name", "Quantity", "Price", "Value", "Ideal", "Actual"},
		}
		for _, row := range run.Holdings {
			table.Rows = append(table.Rows, []string{
				row.DisplayName,
				row.Quantity.String(),
				money(row.Price),
				money(row.Value),
				percent(row.IdealAllocationPercent),
				percent(row.ActualAllocationPercent),
			})
		}
		doc.Table(table)
	}

	if !run.Plan.IsNoOp() {
		doc.H2("Drift")
		doc.BulletList(
			fmt.Sprintf("Max deviation: %.2f pp", run.Drift.MaxAbsDeviation),
			fmt.Sprintf("Mean deviation: %.2f pp", run.Drift.MeanAbsDeviation),
			fmt.Sprintf("Std. deviation: %.2f pp", run.Drift.StdevDeviation),
		)
	}

	if len(run.UnpricedInstruments) > 0 {
		doc.H2("Unpriced Instruments")
		doc.PlainText("These targets had no price and were not bought.")
		doc.PlainText("")
		doc.BulletList(run.UnpricedInstruments...)
	}

	return doc.String()
}

func (h reportServiceHandler) RenderTerminal(run domain.RebalanceRun) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(h.WordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create terminal renderer: %w", err)
	}

	out, err := renderer.Render(h.Markdown(run))
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return out, nil
}

func (h reportServiceHandler) HTML(run domain.RebalanceRun) (string, error) {
	converter := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var buf bytes.Buffer
	err := converter.Convert([]byte(h.Markdown(run)), &buf)
	if err != nil {
		return "", fmt.Errorf("failed to convert report to html: %w", err)
	}
	return buf.String(), nil
}

func (h reportServiceHandler) Email(ctx context.Context, run domain.RebalanceRun, to string) error {
	if h.EmailRepository == nil {
		return ErrEmailDisabled
	}

	body, err := h.HTML(run)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Rebalance plan for %s", run.CreatedAt.Format("Jan 2, 2006"))
	err = h.EmailRepository.SendEmail(ctx, to, subject, body)
	if err != nil {
		return fmt.Errorf("failed to email report to %s: %w", to, err)
	}

	logger.FromContext(ctx).Infof("emailed rebalance plan %s to %s", run.ID.String(), to)
	return nil
}
