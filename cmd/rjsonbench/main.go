// Copyright 2024 The rjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rjsonbench repeatedly decodes and encodes a corpus of JSON
// documents and exposes the timings as Prometheus histograms on a
// /metrics HTTP endpoint, so the codec's steady-state throughput can be
// watched with a scraper instead of read off a one-shot benchmark run.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/rjson/rjson"
)

func main() {
	benchFlags := flag.NewFlagSet("rjsonbench", flag.ExitOnError)
	dir := benchFlags.String("dir", "", "directory of .json files to cycle through as the corpus")
	addr := benchFlags.String("listen", ":9101", "address to serve /metrics on")
	iterations := benchFlags.Int("iterations", 0, "stop after this many decode/encode cycles (0 = run until killed)")
	benchFlags.Parse(os.Args[1:])

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	corpus, err := loadCorpus(*dir)
	if err != nil {
		logger.Fatal("loading corpus failed", zap.Error(err))
	}

	runID := uuid.New().String()
	m := newMetrics(runID)
	registry := prometheus.NewRegistry()
	if err := m.register(registry); err != nil {
		logger.Fatal("registering metrics failed", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: *addr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server stopped", zap.Error(err))
		}
	}()
	logger.Info("rjsonbench started",
		zap.String("run_id", runID),
		zap.String("listen", *addr),
		zap.Int("corpus_size", len(corpus)),
	)

	for i := 0; *iterations == 0 || i < *iterations; i++ {
		doc := corpus[i%len(corpus)]
		runCycle(m, doc)
	}
}

// metrics holds the Prometheus collectors this tool exposes. It is the
// one component in this module that gives the pack's observability
// dependency a home: the core codec itself stays metrics-free.
type metrics struct {
	decodeSeconds  prometheus.Histogram
	encodeSeconds  prometheus.Histogram
	decodeFailures prometheus.Counter
	encodeFailures prometheus.Counter
}

func newMetrics(runID string) *metrics {
	constLabels := prometheus.Labels{"run_id": runID}
	return &metrics{
		decodeSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "rjson_decode_duration_seconds",
			Help:        "Time to decode one document from the corpus.",
			Buckets:     prometheus.ExponentialBuckets(1e-7, 4, 12),
			ConstLabels: constLabels,
		}),
		encodeSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "rjson_encode_duration_seconds",
			Help:        "Time to encode one decoded document back to text.",
			Buckets:     prometheus.ExponentialBuckets(1e-7, 4, 12),
			ConstLabels: constLabels,
		}),
		decodeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "rjson_decode_failures_total",
			Help:        "Number of corpus documents that failed to decode.",
			ConstLabels: constLabels,
		}),
		encodeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "rjson_encode_failures_total",
			Help:        "Number of corpus documents that decoded but failed to re-encode.",
			ConstLabels: constLabels,
		}),
	}
}

func (m *metrics) register(r *prometheus.Registry) error {
	for _, c := range []prometheus.Collector{m.decodeSeconds, m.encodeSeconds, m.decodeFailures, m.encodeFailures} {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func runCycle(m *metrics, doc []byte) {
	start := time.Now()
	v, err := rjson.Decode(doc)
	m.decodeSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		m.decodeFailures.Inc()
		return
	}

	start = time.Now()
	_, err = rjson.Encode(v)
	m.encodeSeconds.Observe(time.Since(start).Seconds())
	rjson.Release(v)
	if err != nil {
		m.encodeFailures.Inc()
	}
}

// defaultCorpus is used when -dir is empty, so the binary is runnable
// without any setup.
var defaultCorpus = [][]byte{
	[]byte(`{"name":"rjsonbench","tags":["a","b","c"],"count":3,"ratio":3.14159,"enabled":true,"nested":{"x":1,"y":[1,2,3]}}`),
	[]byte(`[1,2,3,4,5,6,7,8,9,10]`),
	[]byte(`"a plain string value"`),
	[]byte(`{"empty_array":[],"empty_object":{},"null_value":null}`),
}

func loadCorpus(dir string) ([][]byte, error) {
	if dir == "" {
		return defaultCorpus, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading corpus directory: %w", err)
	}
	var corpus [][]byte
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		corpus = append(corpus, data)
	}
	if len(corpus) == 0 {
		return nil, fmt.Errorf("no .json files found under %s", dir)
	}
	return corpus, nil
}
