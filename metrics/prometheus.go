/*
Copyright (c) 2019 Maxim Konakov
All rights reserved.

Redistribution and use in source and binary forms, with or without modification,
are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice,
   this list of conditions and the following disclaimer.
2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.
3. Neither the name of the copyright holder nor the names of its contributors
   may be used to endorse or promote products derived from this software without
   specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS" AND
ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED
WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED.
IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT,
INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING,
BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY
OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING
NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE,
EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

// Package metrics provides a Prometheus implementation of bbhtml.Recorder.
package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/maxim2266/bbhtml"
)

var _ bbhtml.Recorder = (*PrometheusRecorder)(nil)

// PrometheusRecorder implements bbhtml.Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	duration   prom.Histogram
	iterations prom.Histogram
	outcomes   *prom.CounterVec
	tags       *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them with reg,
// or with a fresh registry when reg is nil.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	pr := &PrometheusRecorder{
		duration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "bbhtml",
			Name:      "conversion_duration_seconds",
			Help:      "Duration of successful conversions",
			Buckets:   prom.ExponentialBuckets(0.0001, 4, 8),
		}),
		iterations: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "bbhtml",
			Name:      "conversion_iterations",
			Help:      "Substitutions performed per successful conversion",
			Buckets:   prom.ExponentialBuckets(1, 4, 8),
		}),
		outcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "bbhtml",
			Name:      "conversions_total",
			Help:      "Conversions by outcome",
		}, []string{"outcome"}),
		tags: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "bbhtml",
			Name:      "tags_rendered_total",
			Help:      "Rendered tag occurrences by tag name",
		}, []string{"tag"}),
	}

	reg.MustRegister(pr.duration, pr.iterations, pr.outcomes, pr.tags)
	return pr
}

// ObserveConversion records the duration and iteration count of a conversion.
func (p *PrometheusRecorder) ObserveConversion(d time.Duration, iterations int) {
	if p == nil {
		return
	}
	p.duration.Observe(d.Seconds())
	p.iterations.Observe(float64(iterations))
}

// IncOutcome counts a conversion outcome.
func (p *PrometheusRecorder) IncOutcome(outcome string) {
	if p == nil {
		return
	}
	p.outcomes.WithLabelValues(outcome).Inc()
}

// AddTags counts rendered occurrences of a tag.
func (p *PrometheusRecorder) AddTags(tag string, n int) {
	if p == nil {
		return
	}
	p.tags.WithLabelValues(tag).Add(float64(n))
}
