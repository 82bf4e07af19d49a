package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"rebalancer/cmd"
	"rebalancer/internal/domain"
	"rebalancer/internal/logger"
	"rebalancer/internal/repository"
	l1_service "rebalancer/internal/service/l1"
	l2_service "rebalancer/internal/service/l2"
	l3_service "rebalancer/internal/service/l3"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	formatTerminal = "terminal"
	formatMarkdown = "markdown"
	formatHTML     = "html"
	formatJSON     = "json"
)

func commandContext(c *cobra.Command) context.Context {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logger.WithContext(ctx, zap.S())
}

func writeJSON(w io.Writer, v interface{}) error {
	bytes, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bytes))
	return err
}

type rebalanceOptions struct {
	holdings  []string
	broker    bool
	targets   string
	extraCash string
	margin    float64
	prices    string
	out       string
	email     string
	persist   bool
	format    string
}

func newRebalanceCommand(root *rootOptions) *cobra.Command {
	opts := &rebalanceOptions{}

	c := &cobra.Command{
		Use:   "rebalance",
		Short: "Compute a rebalance plan from holdings exports and a target-weight file",
		RunE: func(c *cobra.Command, args []string) error {
			return runRebalance(c, root, opts)
		},
	}

	f := c.Flags()
	f.StringArrayVar(&opts.holdings, "holdings", nil, "holdings export (.csv or .json), repeatable")
	f.BoolVar(&opts.broker, "broker", false, "include open positions from the broker")
	f.StringVar(&opts.targets, "targets", "", "target-weight file")
	f.StringVar(&opts.extraCash, "extra-cash", "0", "cash to invest on top of current holdings")
	f.Float64Var(&opts.margin, "margin", 0, "allocation margin percent, recorded on the run (defaults to config)")
	f.StringVar(&opts.prices, "prices", "", "instrument_id,price CSV to use instead of fetching prices")
	f.StringVar(&opts.out, "out", "", "write the plan as JSON to this file")
	f.StringVar(&opts.email, "email", "", "email the report to this address")
	f.BoolVar(&opts.persist, "persist", false, "store the run in the database")
	f.StringVar(&opts.format, "format", formatTerminal, "output format: terminal, markdown, html or json")
	_ = c.MarkFlagRequired("targets")

	return c
}

func runRebalance(c *cobra.Command, root *rootOptions, opts *rebalanceOptions) error {
	extraCash, err := decimal.NewFromString(strings.TrimSpace(opts.extraCash))
	if err != nil {
		return fmt.Errorf("invalid --extra-cash %q: %w", opts.extraCash, err)
	}

	deps, err := cmd.InitializeDependencies(root.configPath)
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(deps)

	ctx := commandContext(c)

	holdings := deps.HoldingsService.Load(ctx, opts.holdings)
	if opts.broker {
		holdings = append(holdings, deps.HoldingsService.LoadFromBroker(ctx)...)
	}
	targets := deps.TargetService.Load(ctx, opts.targets)

	margin := deps.Config.AllocationMarginPercent
	if c.Flags().Changed("margin") {
		margin = opts.margin
	}

	var prices domain.PriceSnapshot
	if opts.prices != "" {
		prices, err = repository.ReadPriceSnapshot(opts.prices)
		if err != nil {
			return err
		}
	}

	rebalanceService, err := deps.NewRebalanceService(opts.persist)
	if err != nil {
		return err
	}

	run, err := rebalanceService.Rebalance(ctx, l3_service.RebalanceInput{
		Holdings:                holdings,
		Targets:                 targets,
		ExtraCash:               extraCash,
		AllocationMarginPercent: margin,
		Prices:                  prices,
	})
	if err != nil {
		return err
	}

	if opts.out != "" {
		err = deps.PlanFileRepository.Write(opts.out, *run)
		if err != nil {
			return err
		}
	}

	err = printRun(c.OutOrStdout(), deps.ReportService, *run, opts.format)
	if err != nil {
		return err
	}

	if opts.email != "" {
		err = deps.ReportService.Email(ctx, *run, opts.email)
		if err != nil {
			return err
		}
	}

	return nil
}

func printRun(w io.Writer, reportService l3_service.ReportService, run domain.RebalanceRun, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, run)
	case formatMarkdown:
		_, err := fmt.Fprintln(w, reportService.Markdown(run))
		return err
	case formatHTML:
		out, err := reportService.HTML(run)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, out)
		return err
	case formatTerminal:
		out, err := reportService.RenderTerminal(run)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, out)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func newPricesCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "prices ID...",
		Short: "Fetch the latest price for each instrument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies(root.configPath)
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			prices := deps.PriceService.GetPrices(commandContext(c), args)
			for _, id := range args {
				price := prices.Get(id)
				if !price.IsPositive() {
					fmt.Fprintf(c.OutOrStdout(), "%s\tunavailable\n", id)
					continue
				}
				fmt.Fprintf(c.OutOrStdout(), "%s\t%s\n", id, price.String())
			}
			return nil
		},
	}
}

func newHoldingsCommand(root *rootOptions) *cobra.Command {
	var (
		paths   []string
		broker  bool
		refresh bool
		out     string
	)

	c := &cobra.Command{
		Use:   "holdings",
		Short: "Show aggregated holdings with their share of the portfolio",
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies(root.configPath)
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			ctx := commandContext(c)
			holdings := deps.HoldingsService.Load(ctx, paths)
			if broker {
				holdings = l1_service.Aggregate(append(holdings, deps.HoldingsService.LoadFromBroker(ctx)...))
			}

			prices := domain.PriceSnapshot{}
			if refresh {
				prices = deps.PriceService.GetPrices(ctx, domain.InstrumentIDs(holdings))
				holdings = l2_service.Revalue(holdings, prices)
			}

			// With no targets the plan is a no-op and the view is the holdings
			// valued at their own prices.
			rows := l2_service.Reconcile(l2_service.ReconcileInput{
				Original:     holdings,
				Plan:         l2_service.Allocate(l2_service.AllocateInput{Holdings: holdings}),
				Prices:       prices,
				DisplayNames: deps.Config.DisplayNames,
			})
			for _, row := range rows {
				fmt.Fprintf(c.OutOrStdout(), "%s\t%s\t%s\t%s%%\n",
					row.DisplayName,
					row.Quantity.String(),
					row.Value.StringFixed(2),
					row.ActualAllocationPercent.StringFixed(2),
				)
			}

			if out != "" {
				return deps.HoldingsFileRepository.Write(out, rows)
			}
			return nil
		},
	}
	f := c.Flags()
	f.StringArrayVar(&paths, "holdings", nil, "holdings export (.csv or .json), repeatable")
	f.BoolVar(&broker, "broker", false, "include open positions from the broker")
	f.BoolVar(&refresh, "refresh", false, "revalue holdings at the latest prices")
	f.StringVar(&out, "out", "", "write the holdings as JSON to this file")

	return c
}

func newBreakdownCommand(root *rootOptions) *cobra.Command {
	in := l2_service.BuildLookThroughInput{}

	c := &cobra.Command{
		Use:   "breakdown",
		Short: "Build look-through target weights from direct stocks and mutual fund holdings",
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies(root.configPath)
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			rows, err := deps.LookThroughService.BuildLookThrough(commandContext(c), in)
			if err != nil {
				return err
			}
			if in.OutputPath == "" {
				return writeJSON(c.OutOrStdout(), rows)
			}
			fmt.Fprintf(c.OutOrStdout(), "wrote %d target weights to %s\n", len(rows), in.OutputPath)
			return nil
		},
	}
	c.Flags().StringVar(&in.AllocationPath, "allocation", "", "asset allocation JSON")
	c.Flags().StringVar(&in.EquityListPath, "equity-list", "", "SYMBOL,NAME OF COMPANY CSV")
	c.Flags().StringVar(&in.OutputPath, "out", "", "target-weight file to write")
	_ = c.MarkFlagRequired("allocation")
	_ = c.MarkFlagRequired("equity-list")

	return c
}

func newServeCommand(root *rootOptions) *cobra.Command {
	var port int

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies(root.configPath)
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			if !c.Flags().Changed("port") {
				port = deps.Config.Port
			}
			return deps.ApiHandler.StartApi(port)
		},
	}
	c.Flags().IntVar(&port, "port", 0, "port to listen on (defaults to config)")

	return c
}
