package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/samvad-hq/samvad-status-probe/internal/config"
	"github.com/samvad-hq/samvad-status-probe/internal/domain"
	"github.com/samvad-hq/samvad-status-probe/internal/logger"
	"github.com/samvad-hq/samvad-status-probe/internal/metrics"
	"github.com/samvad-hq/samvad-status-probe/internal/probe"
	"github.com/samvad-hq/samvad-status-probe/internal/storage"
	"github.com/samvad-hq/samvad-status-probe/pkg/httpclient"
	"github.com/samvad-hq/samvad-status-probe/pkg/publishers"
)

// Prober is the status probe runtime. It owns the probe catalog, the runner,
// the report journal, the report sinks and the optional metrics endpoint.
type Prober struct {
	cfg      *config.Config
	catalog  *probe.Catalog
	runner   *probe.Runner
	fanout   *publishers.Fanout
	store    storage.Store
	metrics  *metrics.Collector
	server   *metrics.Server
	interval time.Duration
	log      logger.Logger
}

// NewProber builds a prober runtime from config files.
func NewProber(ctx context.Context, cfg *config.Config, log logger.Logger) (*Prober, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	log = logger.Ensure(log)
	if ctx == nil {
		ctx = context.Background()
	}

	catalog, err := probe.LoadCatalog(cfg.ProbesFile)
	if err != nil {
		return nil, fmt.Errorf("load probe catalog: %w", err)
	}
	probeIDs := make([]string, 0, len(catalog.All()))
	for _, p := range catalog.All() {
		probeIDs = append(probeIDs, p.ID)
	}
	log.InfoObj("probe catalog loaded", "probes_meta", map[string]any{
		"count": len(probeIDs),
		"ids":   probeIDs,
	})

	fanout, err := buildFanout(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	store, err := OpenJournal(cfg, log)
	if err != nil {
		_ = fanout.Close()
		return nil, err
	}

	collector := metrics.New(prometheus.NewRegistry())
	var server *metrics.Server
	if cfg.MetricsAddr != "" {
		server = metrics.NewServer(collector, cfg.MetricsAddr)
	}

	client := httpclient.NewRestyClient(httpclient.Options{
		Timeout:         cfg.RequestTimeout,
		FollowRedirects: cfg.FollowRedirects,
		UserAgent:       cfg.AppName,
	})
	runner := probe.NewRunner(client,
		probe.WithBaseURL(cfg.BaseURL),
		probe.WithStrictJSON(cfg.StrictJSON),
		probe.WithJournal(store),
		probe.WithPublisher(fanout),
		probe.WithRecorder(collector),
		probe.WithLogger(log),
	)

	return &Prober{
		cfg:      cfg,
		catalog:  catalog,
		runner:   runner,
		fanout:   fanout,
		store:    store,
		metrics:  collector,
		server:   server,
		interval: cfg.ProbeInterval,
		log:      log,
	}, nil
}

// buildFanout loads the reporters file, falling back to a single log sink.
func buildFanout(ctx context.Context, cfg *config.Config, log logger.Logger) (*publishers.Fanout, error) {
	if cfg.ReportersFile == "" {
		log.InfoObj("no reporters file configured; reporting to log", "reporters_file", cfg.ReportersFile)
		return publishers.NewFanout([]publishers.Publisher{publishers.NewLogPublisher("log", log)}), nil
	}

	reg, err := publishers.LoadRegistry(cfg.ReportersFile)
	if err != nil {
		return nil, fmt.Errorf("load reporters registry: %w", err)
	}
	enabled := reg.Enabled()
	if len(enabled) == 0 {
		return nil, fmt.Errorf("no reporters enabled in %s", cfg.ReportersFile)
	}

	clients, err := publishers.BuildAll(ctx, publishers.DefaultRegistry(), enabled, log)
	if err != nil {
		return nil, fmt.Errorf("build reporters: %w", err)
	}
	summaries := make([]map[string]string, 0, len(enabled))
	for _, c := range enabled {
		summaries = append(summaries, map[string]string{"id": c.ID, "type": c.Type})
	}
	log.InfoObj("reporters registry loaded", "reporters_meta", map[string]any{
		"count":     len(summaries),
		"reporters": summaries,
	})
	return publishers.NewFanout(clients), nil
}

// OpenJournal opens the configured report journal.
func OpenJournal(cfg *config.Config, log logger.Logger) (storage.Store, error) {
	store, err := storage.NewStore(cfg.JournalType, cfg.BBoltPath, storage.Options{
		ReportTTL:       cfg.JournalTTL,
		CleanupInterval: cfg.JournalCleanupInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("init journal: %w", err)
	}
	logger.Ensure(log).InfoObj("journal initialized", "journal_config", map[string]any{
		"type":                     cfg.JournalType,
		"path":                     cfg.BBoltPath,
		"ttl_seconds":              int(cfg.JournalTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.JournalCleanupInterval.Seconds()),
	})
	return store, nil
}

// Probes returns the catalog entries.
func (p *Prober) Probes() []probe.Probe {
	if p == nil {
		return nil
	}
	return p.catalog.All()
}

// Check runs the given probes once.
func (p *Prober) Check(ctx context.Context, probes []probe.Probe) ([]domain.Report, error) {
	if p == nil || p.runner == nil {
		return nil, fmt.Errorf("prober is not initialized")
	}
	start := time.Now()
	p.log.InfoObj("probe pass started", "pass_meta", map[string]any{
		"probes_count": len(probes),
		"started_at":   start.UTC(),
	})
	reports, err := p.runner.Run(ctx, probes)

	failed := 0
	for _, r := range reports {
		if r.Failed() {
			failed++
		}
	}
	p.log.InfoObj("probe pass completed", "pass_meta", map[string]any{
		"probes_count": len(reports),
		"failed":       failed,
		"elapsed_ms":   time.Since(start).Milliseconds(),
	})
	return reports, err
}

// Run probes the whole catalog on the configured interval until ctx is
// cancelled. With no interval it performs a single pass and returns its reports.
func (p *Prober) Run(ctx context.Context) ([]domain.Report, error) {
	if p == nil || p.runner == nil {
		return nil, fmt.Errorf("prober is not initialized")
	}

	stopMetrics := p.startMetrics()
	defer stopMetrics()

	probes := p.catalog.All()
	if p.interval <= 0 {
		return p.Check(ctx, probes)
	}

	p.log.InfoObj("probe loop starting", "prober_state", map[string]any{
		"probes_count":    len(probes),
		"reporters_count": p.fanout.Size(),
		"interval":        p.interval.String(),
	})

	if _, err := p.Check(ctx, probes); err != nil && ctx.Err() == nil {
		p.log.ErrorObj("initial probe pass failed", "error", err)
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.InfoObj("probe loop exiting", "reason", ctx.Err())
			return nil, nil
		case <-ticker.C:
			if _, err := p.Check(ctx, probes); err != nil && ctx.Err() == nil {
				p.log.ErrorObj("scheduled probe pass failed", "error", err)
			}
		}
	}
}

func (p *Prober) startMetrics() func() {
	if p.server == nil {
		return func() {}
	}
	go func() {
		p.log.InfoObj("metrics server listening", "metrics_addr", p.cfg.MetricsAddr)
		if err := p.server.Start(); err != nil {
			p.log.ErrorObj("metrics server failed", "error", err)
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.server.Stop(ctx); err != nil {
			p.log.ErrorObj("metrics server shutdown failed", "error", err)
		}
	}
}

// Close releases the journal and report sinks.
func (p *Prober) Close() error {
	if p == nil {
		return nil
	}
	var errs []error
	if p.store != nil {
		if err := p.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close journal: %w", err))
		}
	}
	if err := p.fanout.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
