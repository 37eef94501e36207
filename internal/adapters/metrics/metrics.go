package metrics

import (
	"net/http"
	"time"

	"github.com/bnema/labdesk/internal/domain"
	"github.com/bnema/labdesk/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Commands collects per-command invocation metrics on its own registry.
type Commands struct {
	registry    *prometheus.Registry
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	inFlight    prometheus.Gauge
}

var _ ports.CommandObserver = (*Commands)(nil)

func NewCommands() *Commands {
	c := &Commands{
		registry: prometheus.NewRegistry(),
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "labdesk",
				Name:      "commands_total",
				Help:      "Total number of command invocations by outcome.",
			},
			[]string{"command", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "labdesk",
				Name:      "command_duration_seconds",
				Help:      "Duration of command invocations.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
			},
			[]string{"command"},
		),
		inFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "labdesk",
				Subsystem: "bridge",
				Name:      "inflight_requests",
				Help:      "Current number of in-flight bridge requests.",
			},
		),
	}

	c.registry.MustRegister(
		c.invocations,
		c.duration,
		c.inFlight,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)

	return c
}

// ObserveCommand records one finished invocation. Failures are labelled
// with their kind so transport and business failures stay apart.
func (c *Commands) ObserveCommand(name string, status domain.OutcomeStatus, kind domain.FailureKind, elapsed time.Duration) {
	outcome := string(status)
	if status == domain.OutcomeFailure && kind != "" {
		outcome = string(kind)
	}

	c.invocations.WithLabelValues(name, outcome).Inc()
	c.duration.WithLabelValues(name).Observe(elapsed.Seconds())
}

// Track marks one bridge request as in flight until the returned func runs.
func (c *Commands) Track() func() {
	c.inFlight.Inc()
	return c.inFlight.Dec
}

func (c *Commands) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
