package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/simwire/simwire-go/pkg/codec"
	"github.com/simwire/simwire-go/pkg/log"
	"github.com/simwire/simwire-go/pkg/metrics"
	"github.com/simwire/simwire-go/pkg/template"
)

// app bundles the codec and the loggers built from a Config.
type app struct {
	logger   *slog.Logger
	table    *template.Table
	codec    *codec.Codec
	registry *prometheus.Registry
	closers  []func() error
}

// newApp loads the catalogue and wires logging, protocol capture and
// metrics into a codec.
func newApp(cfg Config, stderr io.Writer) (*app, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	a := &app{
		logger:   slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		registry: prometheus.NewRegistry(),
	}

	if cfg.Templates != "" {
		a.table, err = template.Load(cfg.Templates)
	} else {
		a.table, err = template.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}
	a.logger.Debug("templates loaded", "source", cfg.Templates, "messages", a.table.Len())

	loggers := []log.Logger{metrics.New(metrics.WithRegistry(a.registry))}
	if level <= slog.LevelDebug {
		loggers = append(loggers, log.NewSlogAdapter(a.logger))
	}
	if cfg.ProtocolLog != "" {
		var fl *log.FileLogger
		if cfg.ProtocolLogMaxMB > 0 {
			fl = log.NewRotatingFileLogger(log.RotateConfig{
				Path:      cfg.ProtocolLog,
				MaxSizeMB: cfg.ProtocolLogMaxMB,
			})
		} else {
			fl, err = log.NewFileLogger(cfg.ProtocolLog)
			if err != nil {
				return nil, fmt.Errorf("creating protocol logger: %w", err)
			}
		}
		loggers = append(loggers, fl)
		a.closers = append(a.closers, fl.Close)
		a.logger.Info("protocol logging enabled", "path", cfg.ProtocolLog)
	}

	capture := log.NewMultiLogger(loggers...)
	a.logger.Debug("protocol capture configured", "loggers", capture.Len())

	opts := []codec.Option{
		codec.WithLogger(a.logger),
		codec.WithProtocolLogger(capture),
		codec.WithCircuitID(cfg.Circuit),
	}
	if cfg.Lenient {
		opts = append(opts, codec.WithLenientTrailingBytes())
	}
	if cfg.StrictStrings {
		opts = append(opts, codec.WithStrictStrings())
	}
	a.codec = codec.New(a.table, opts...)
	return a, nil
}

// serveMetrics exposes the codec counters on addr until Close.
func (a *app) serveMetrics(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server failed", "error", err)
		}
	}()
	a.logger.Info("serving metrics", "addr", ln.Addr().String())

	a.closers = append(a.closers, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	})
	return nil
}

// Close releases the protocol log and the metrics server.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
