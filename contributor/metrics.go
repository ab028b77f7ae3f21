// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package contributor

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values of the computations counter.
const (
	resultOK              = "ok"
	resultToolNotFound    = "tool_not_found"
	resultNodeUnavailable = "node_unavailable"
	resultTranslation     = "translation_failed"
)

type metrics struct {
	computations      *prometheus.CounterVec
	connectionLookups *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		computations: registerCounterVec(reg, prometheus.CounterOpts{
			Namespace: "coverity_env",
			Name:      "computations_total",
			Help:      "Environment computations by result.",
		}, "result"),
		connectionLookups: registerCounterVec(reg, prometheus.CounterOpts{
			Namespace: "coverity_env",
			Name:      "connection_lookups_total",
			Help:      "Connection profile lookups by outcome.",
		}, "outcome"),
	}
}

// registerCounterVec registers a counter, reusing one already registered
// under the same name.
func registerCounterVec(reg prometheus.Registerer, opts prometheus.CounterOpts, label string) *prometheus.CounterVec {
	cv := prometheus.NewCounterVec(opts, []string{label})
	if err := reg.Register(cv); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
	}
	return cv
}

func (m *metrics) observeComputation(result string) {
	if m == nil {
		return
	}
	m.computations.WithLabelValues(result).Inc()
}

func (m *metrics) observeLookup(found bool) {
	if m == nil {
		return
	}
	outcome := "missing"
	if found {
		outcome = "found"
	}
	m.connectionLookups.WithLabelValues(outcome).Inc()
}
