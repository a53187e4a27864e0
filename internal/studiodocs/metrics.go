// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	ometric "go.opentelemetry.io/otel/metric"
)

// newCounter creates an integer counter instrument.
// It panics if the counter cannot be created.
func (s *Studiodocs) newCounter(name, description string) ometric.Int64Counter {
	c, err := s.meter.Int64Counter(metricName(name), ometric.WithDescription(description))
	if err != nil {
		s.slog.Error("counter creation failed", "name", name)
		panic(err)
	}
	return c
}

// newEndpointCounter creates an integer counter instrument, intended
// to count the number of times the given endpoint is requested.
// It panics if the counter cannot be created.
func (s *Studiodocs) newEndpointCounter(endpoint string) ometric.Int64Counter {
	name, desc := fmt.Sprintf("%s-requests", endpoint), fmt.Sprintf("number of /%s requests", endpoint)
	return s.newCounter(name, desc)
}

// registerPagesMetric adds a gauge reporting the number of loaded pages.
func (s *Studiodocs) registerPagesMetric() {
	_, err := s.meter.Int64ObservableGauge(metricName("pages"),
		ometric.WithDescription("number of loaded documentation pages"),
		ometric.WithInt64Callback(func(_ context.Context, observer ometric.Int64Observer) error {
			observer.Observe(int64(s.docs.Len()))
			return nil
		}))
	if err != nil {
		s.slog.Error("pages gauge creation failed")
		panic(err)
	}
}

// metricName returns the full metric name for the given short name.
// Names group under "studiodocs" in metric explorers.
func metricName(shortName string) string {
	return "studiodocs/" + shortName
}
