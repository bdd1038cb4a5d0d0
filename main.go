package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"indicatorfetcher/internal/chart"
	"indicatorfetcher/internal/config"
	"indicatorfetcher/internal/coordinator"
	"indicatorfetcher/internal/logger"
	"indicatorfetcher/internal/worldbank"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "indicatorfetcher --country AFG --indicator NY.GDP.MKTP.CN [--export gdp_afg] [--show]",
		Short:        "Fetch a World Bank indicator series and chart it",
		Long:         "Fetch one World Bank indicator series for one country, extend it with a linear forecast and chart it as HTML or in the terminal.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			// Handle interrupt signals for graceful shutdown
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log := logger.New(cfg.LogLevel)
			defer log.Sync()

			return run(ctx, cfg, cmd.OutOrStdout(), log)
		},
	}

	config.BindFlags(cmd.Flags())

	return cmd
}

func run(ctx context.Context, cfg *config.Config, out io.Writer, log *zap.SugaredLogger) error {
	req, err := worldbank.NewRequest(cfg.Country, cfg.Indicator, cfg.Format)
	if err != nil {
		return err
	}

	f := worldbank.NewIndicatorFetcher(req, cfg.BaseURL, log)
	defer f.Close()

	var renderers []chart.Renderer
	var exporter *chart.HTMLExporter
	if cfg.ExportName != "" {
		exporter = &chart.HTMLExporter{
			Dir:      cfg.OutputDir,
			Filename: cfg.ExportName,
			Width:    cfg.ChartWidth,
			Height:   cfg.ChartHeight,
		}
		renderers = append(renderers, exporter)
	}
	if cfg.Show {
		renderers = append(renderers, chart.Terminal{})
	}

	coord := coordinator.New(f, coordinator.Options{
		IndicatorCode:   req.Indicator(),
		ForecastHorizon: cfg.ForecastHorizon,
		Renderers:       renderers,
		Out:             out,
		Log:             log,
	})

	if _, err := coord.Run(ctx); err != nil {
		return err
	}

	if exporter != nil {
		log.Infow("chart exported", "path", exporter.Path())
	}
	return nil
}
