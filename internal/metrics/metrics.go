// Package metrics provides Prometheus instrumentation for directory walks.
package metrics

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/vvka-141/dirtree/pkg/dirtree"
)

// Walk outcomes.
const (
	OutcomeCompleted = "completed"
	OutcomeStopped   = "stopped"
	OutcomeFailed    = "failed"
)

// Entry kinds.
const (
	KindFile      = "file"
	KindDirectory = "directory"
)

// Collector owns the walk metrics registered on one registry.
type Collector struct {
	entriesVisited *prometheus.CounterVec
	bytesVisited   prometheus.Counter
	walksTotal     *prometheus.CounterVec
	walkDuration   prometheus.Histogram
}

// NewCollector registers the walk metrics on reg.
// Panics if the metrics are already registered there, as promauto does.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		entriesVisited: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dirtree_entries_visited_total",
				Help: "Total number of entries dispatched to visitors",
			},
			[]string{"kind"},
		),
		bytesVisited: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "dirtree_bytes_visited_total",
				Help: "Total size in bytes of files dispatched to visitors",
			},
		),
		walksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dirtree_walks_total",
				Help: "Total number of walks by outcome",
			},
			[]string{"outcome"},
		),
		walkDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dirtree_walk_duration_seconds",
				Help:    "Duration of a walk in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// Instrument returns a visitor that counts entries before delegating to v.
func (c *Collector) Instrument(v dirtree.FileVisitor) dirtree.FileVisitor {
	return &instrumentedVisitor{collector: c, next: v}
}

// Walk runs visit with an instrumented visitor and records its duration and outcome.
// The error of visit is returned unchanged.
func (c *Collector) Walk(v dirtree.FileVisitor, visit func(dirtree.FileVisitor) error) error {
	iv := &instrumentedVisitor{collector: c, next: v}

	start := time.Now()
	err := visit(iv)
	c.walkDuration.Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		c.walksTotal.WithLabelValues(OutcomeFailed).Inc()
	case iv.stopped.Load():
		c.walksTotal.WithLabelValues(OutcomeStopped).Inc()
	default:
		c.walksTotal.WithLabelValues(OutcomeCompleted).Inc()
	}
	return err
}

// WriteText writes every metric gathered from g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	var errs []error
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type instrumentedVisitor struct {
	collector *Collector
	next      dirtree.FileVisitor
	stopped   atomic.Bool
}

func (v *instrumentedVisitor) VisitDir(details dirtree.FileVisitDetails) error {
	v.collector.entriesVisited.WithLabelValues(KindDirectory).Inc()
	return v.next.VisitDir(&stopTracking{FileVisitDetails: details, stopped: &v.stopped})
}

func (v *instrumentedVisitor) VisitFile(details dirtree.FileVisitDetails) error {
	v.collector.entriesVisited.WithLabelValues(KindFile).Inc()
	v.collector.bytesVisited.Add(float64(details.Size()))
	return v.next.VisitFile(&stopTracking{FileVisitDetails: details, stopped: &v.stopped})
}

// stopTracking notes a StopVisiting call before passing it on.
type stopTracking struct {
	dirtree.FileVisitDetails
	stopped *atomic.Bool
}

func (s *stopTracking) StopVisiting() {
	s.stopped.Store(true)
	s.FileVisitDetails.StopVisiting()
}
