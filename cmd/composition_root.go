package cmd

import (
	"io"
	"log/slog"

	"freight/internal/adapters/in/cli"
	httpin "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/metrics"
	"freight/internal/core/application/journal"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CompositionRoot struct {
	config   Config
	logger   *slog.Logger
	store    ports.ActivityStore
	registry *prometheus.Registry
	metrics  *metrics.QuoteMetrics
	journal  *journal.Journal
}

func NewCompositionRoot(config Config, store ports.ActivityStore, logger *slog.Logger) (CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	quoteMetrics, err := metrics.NewQuoteMetrics(registry)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:   config,
		logger:   logger,
		store:    store,
		registry: registry,
		metrics:  quoteMetrics,
		journal:  journal.New(store, logger),
	}, nil
}

func (c *CompositionRoot) CreateQuoteShipmentCommandHandler() commands.QuoteShipmentCommandHandler {
	return commands.NewQuoteShipmentCommandHandler(services.NewQuoteService(), c.journal, c.metrics)
}

func (c *CompositionRoot) CreatePruneActivityCommandHandler() commands.PruneActivityCommandHandler {
	return commands.NewPruneActivityCommandHandler(c.store)
}

func (c *CompositionRoot) CreateGetRecentActivityQueryHandler() queries.GetRecentActivityQueryHandler {
	return queries.NewGetRecentActivityQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler()
}

func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server := httpin.NewServer(
		c.CreateQuoteShipmentCommandHandler(),
		c.CreateGetRecentActivityQueryHandler(),
		c.CreateGetCatalogQueryHandler(),
	)

	e, err := httpin.NewRouter(server, promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}))
	if err != nil {
		return nil, err
	}
	e.Logger.SetLevel(EchoLogLevel(c.config.LogLevel))

	return e, nil
}

func (c *CompositionRoot) CreateCLIApp(in io.Reader, out io.Writer) *cli.App {
	return cli.NewApp(
		c.CreateQuoteShipmentCommandHandler(),
		c.CreateGetRecentActivityQueryHandler(),
		in,
		out,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePruneActivityCommandHandler(),
		c.config.ActivityRetention,
		c.config.ActivityRetentionSchedule,
		c.logger,
	)
}
