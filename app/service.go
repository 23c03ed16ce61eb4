// Package app wires the rules engine, the prediction monitor and the
// configured metrics sinks into one service consumed by the CLI.
package app

import (
	"context"
	"fmt"
	"time"

	"fleetpredict/config"
	coremetrics "fleetpredict/core/metrics"
	"fleetpredict/core/model"
	"fleetpredict/core/monitoring"
	"fleetpredict/core/rules"
	"fleetpredict/infra/logger"
	"fleetpredict/infra/metrics"
)

// Service couples one rules engine with one prediction monitor.
type Service struct {
	Engine  *rules.Engine
	Monitor *monitoring.Monitor

	log      logger.Logger
	promAddr string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")
	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	return &Service{
		Engine:   rules.New(cfg.Rules),
		Monitor:  monitoring.NewMonitor(sink),
		log:      logg,
		promAddr: cfg.Metrics.PrometheusListen,
	}, nil
}

// StartMetrics launches the Prometheus endpoint when one is configured.
// It returns immediately; the server stops with the context.
func (s *Service) StartMetrics(ctx context.Context) {
	if s.promAddr == "" {
		return
	}
	addr := s.promAddr
	go func() {
		if err := metrics.StartPromServer(ctx, addr); err != nil {
			s.log.Errorf("prom server: %v", err)
		}
	}()
}

// Predict runs one rule function and logs the result to the monitor.
func (s *Service) Predict(kind model.ModelKind, rec model.FeatureRecord) (model.PredictionResult, error) {
	out, err := s.Engine.Predict(kind, rec)
	if err != nil {
		return nil, err
	}
	s.Monitor.LogPrediction(kind, rec, out, time.Time{})
	return out, nil
}

// Batch runs one rule function over all records in order, logging each
// result. An unknown kind fails before anything is logged.
func (s *Service) Batch(records []model.FeatureRecord, kind model.ModelKind) ([]rules.Pair, error) {
	pairs, err := s.Engine.BatchPredict(records, kind)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		s.Monitor.LogPrediction(kind, p.Input, p.Output, time.Time{})
	}
	return pairs, nil
}
