// Package metrics reports lvlog sink writes to github.com/armon/go-metrics.
package metrics

import (
	"strconv"
	"time"

	gometrics "github.com/armon/go-metrics"

	"github.com/trickstertwo/lvlog"
)

// Metric keys, relative to the go-metrics service name.
var (
	KeyWrites      = []string{"lvlog", "writes"}
	KeyWriteErrors = []string{"lvlog", "write_errors"}
	KeyWriteTime   = []string{"lvlog", "write_ms"}
)

// Collector implements lvlog.MetricsCollector on top of a *gometrics.Metrics.
// Every write counts toward KeyWrites, failures also toward KeyWriteErrors,
// and write durations are sampled in milliseconds. Labels are "level" and "sink"
// ("console" or the registry handle).
type Collector struct {
	m *gometrics.Metrics
}

var _ lvlog.MetricsCollector = (*Collector)(nil)

// New wraps m; nil uses the go-metrics global instance.
func New(m *gometrics.Metrics) *Collector {
	if m == nil {
		m = gometrics.Default()
	}
	return &Collector{m: m}
}

func (c *Collector) SinkWrite(h lvlog.SinkHandle, level lvlog.Level, dur time.Duration, err error) {
	labels := []gometrics.Label{
		{Name: "level", Value: level.String()},
		{Name: "sink", Value: sinkName(h)},
	}
	c.m.IncrCounterWithLabels(KeyWrites, 1, labels)
	if err != nil {
		c.m.IncrCounterWithLabels(KeyWriteErrors, 1, labels)
	}
	c.m.AddSampleWithLabels(KeyWriteTime, float32(dur)/float32(time.Millisecond), labels)
}

func sinkName(h lvlog.SinkHandle) string {
	if h == lvlog.ConsoleHandle {
		return "console"
	}
	return strconv.Itoa(int(h))
}
