package metrics

import (
	"time"

	gometrics "github.com/armon/go-metrics"
	"github.com/pkg/errors"

	"github.com/trickstertwo/lvlog"
)

// InmemConfig describes an in-memory go-metrics pipeline.
type InmemConfig struct {
	ServiceName string        // default "lvlog"
	Interval    time.Duration // default 10s
	Retain      time.Duration // default 1m
}

// NewInmem builds a Collector backed by a fresh InmemSink. The sink is
// returned so callers can read or dump the aggregated data.
func NewInmem(cfg InmemConfig) (*Collector, *gometrics.InmemSink, error) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "lvlog"
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Second
	}
	if cfg.Retain <= 0 {
		cfg.Retain = time.Minute
	}
	sink := gometrics.NewInmemSink(cfg.Interval, cfg.Retain)
	mc := gometrics.DefaultConfig(cfg.ServiceName)
	mc.EnableRuntimeMetrics = false
	m, err := gometrics.New(mc, sink)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create metrics")
	}
	return New(m), sink, nil
}

// Use installs c as l's metrics collector.
func Use(l *lvlog.Logger, c *Collector) {
	l.SetMetricsCollector(c)
}
