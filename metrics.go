// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"bytes"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics collects counters of one generation run in a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry       *prometheus.Registry
	documents      *prometheus.CounterVec
	documentBytes  prometheus.Counter
	writeFailures  prometheus.Counter
	renderDuration prometheus.Histogram
	schemaTypes    prometheus.Gauge
}

// NewMetrics registers generator metrics in a new registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		documents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphqldoc_documents_written_total",
				Help: "Total number of documents written, by document kind",
			},
			[]string{"kind"},
		),
		documentBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "graphqldoc_document_bytes_total",
			Help: "Total number of bytes written to documents",
		}),
		writeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "graphqldoc_write_failures_total",
			Help: "Total number of failed document writes",
		}),
		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "graphqldoc_render_duration_seconds",
			Help:    "Time spent rendering one document",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		schemaTypes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "graphqldoc_schema_types",
			Help: "Number of types in the loaded schema",
		}),
	}

	m.registry.MustRegister(m.documents, m.documentBytes, m.writeFailures, m.renderDuration, m.schemaTypes)
	return m
}

func (m *Metrics) observeDocument(kind string, size int) {
	if m == nil {
		return
	}

	m.documents.WithLabelValues(kind).Inc()
	m.documentBytes.Add(float64(size))
}

func (m *Metrics) observeWriteFailure() {
	if m == nil {
		return
	}

	m.writeFailures.Inc()
}

func (m *Metrics) observeRender(started time.Time) {
	if m == nil {
		return
	}

	m.renderDuration.Observe(time.Since(started).Seconds())
}

func (m *Metrics) setSchemaTypes(count int) {
	if m == nil {
		return
	}

	m.schemaTypes.Set(float64(count))
}

// Registry exposes the underlying registry, for example to serve it over HTTP.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Encode gathers all metrics in the Prometheus text exposition format.
func (m *Metrics) Encode() (string, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodeMetrics, err)
	}

	var buf bytes.Buffer
	encoder := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := encoder.Encode(family); err != nil {
			return "", fmt.Errorf("%w: %w", ErrEncodeMetrics, err)
		}
	}

	return buf.String(), nil
}
