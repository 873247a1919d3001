package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kilianp07/plugkit/config"
	"github.com/kilianp07/plugkit/core/model"
	coresink "github.com/kilianp07/plugkit/core/sink"
	coresource "github.com/kilianp07/plugkit/core/source"
	corestore "github.com/kilianp07/plugkit/core/store"
	"github.com/kilianp07/plugkit/infra/logger"
	"github.com/kilianp07/plugkit/infra/metrics"

	// Built-in plugins register themselves on import.
	_ "github.com/kilianp07/plugkit/infra/sink"
	_ "github.com/kilianp07/plugkit/infra/source"
	_ "github.com/kilianp07/plugkit/infra/store"
)

// Service orchestrates one configured pipeline: a source feeding sinks and
// an optional store.
type Service struct {
	source coresource.Source
	sink   coresink.Sink
	store  corestore.Store

	buffer      int
	log         logger.Logger
	promEnabled bool
	promPort    string
}

// New constructs the pipeline components from the configuration through the
// family registries.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	if cfg.Metrics.PrometheusEnabled {
		obs, err := metrics.NewRegistryObserver()
		if err != nil {
			return nil, fmt.Errorf("registry observer: %w", err)
		}
		coresink.Registry().SetObserver(obs)
		coresource.Registry().SetObserver(obs)
		corestore.Registry().SetObserver(obs)
	}

	src, err := coresource.NewSource(cfg.Pipeline.Source)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	snk, err := coresink.NewSink(cfg.Pipeline.Sinks)
	if err != nil {
		return nil, fmt.Errorf("sinks: %w", err)
	}
	var st corestore.Store
	if cfg.Pipeline.Store != nil {
		st, err = corestore.NewStore(*cfg.Pipeline.Store)
		if err != nil {
			return nil, fmt.Errorf("store: %w", err)
		}
	}

	return &Service{
		source:      src,
		sink:        snk,
		store:       st,
		buffer:      cfg.Pipeline.Buffer,
		log:         logg,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
	}, nil
}

// Run starts the pipeline and blocks until the source finishes or the
// context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	events := make(chan model.Event, s.buffer)
	errc := make(chan error, 1)
	go func() { errc <- s.source.Run(ctx, events) }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			s.handle(ctx, ev)
		case err := <-errc:
			s.drain(ctx, events)
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		}
	}
}

func (s *Service) handle(ctx context.Context, ev model.Event) {
	if err := s.sink.Record(ev); err != nil {
		s.log.Errorf("record %s: %v", ev.Name, err)
	}
	if s.store != nil {
		if err := s.store.Append(ctx, ev); err != nil {
			s.log.Errorf("append %s: %v", ev.Name, err)
		}
	}
}

func (s *Service) drain(ctx context.Context, events <-chan model.Event) {
	for {
		select {
		case ev := <-events:
			s.handle(ctx, ev)
		default:
			return
		}
	}
}

// Store exposes the configured store, or nil.
func (s *Service) Store() corestore.Store { return s.store }

// Close releases resources held by the pipeline components.
func (s *Service) Close() error {
	var first error
	if c, ok := s.sink.(io.Closer); ok {
		if err := c.Close(); err != nil {
			first = err
		}
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
