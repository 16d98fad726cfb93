// Package metrics exports engine step statistics to Prometheus.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"layered-ca/internal/engine"
)

const namespace = "ca"

// Collector records step statistics for one scene. It implements
// engine.Observer.
type Collector struct {
	steps    prometheus.Counter
	fps      prometheus.Gauge
	interval prometheus.Observer
}

// vecs holds the labelled metric families registered once per registry.
type vecs struct {
	steps    *prometheus.CounterVec
	fps      *prometheus.GaugeVec
	interval *prometheus.HistogramVec
}

// Registry owns a Prometheus registry and hands out per-scene collectors.
type Registry struct {
	reg *prometheus.Registry
	v   vecs
}

// NewRegistry creates a registry with the ca_* metric families registered.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		v: vecs{
			steps: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "steps_total",
				Help:      "Completed engine steps.",
			}, []string{"scene"}),
			fps: prometheus.NewGaugeVec(prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "fps",
				Help:      "Smoothed frame-rate estimate reported by the engine.",
			}, []string{"scene"}),
			interval: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "frame_interval_ms",
				Help:      "Elapsed time passed to each step, in milliseconds.",
				Buckets:   []float64{1, 2, 4, 8, 16, 33, 66, 125, 250, 500, 1000},
			}, []string{"scene"}),
		},
	}
	r.reg.MustRegister(r.v.steps, r.v.fps, r.v.interval)
	return r
}

// Collector returns the observer for the named scene.
func (r *Registry) Collector(scene string) *Collector {
	return &Collector{
		steps:    r.v.steps.WithLabelValues(scene),
		fps:      r.v.fps.WithLabelValues(scene),
		interval: r.v.interval.WithLabelValues(scene),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Serve starts an HTTP server exposing /metrics on addr in a goroutine.
// Callers shut it down through the returned server.
func (r *Registry) Serve(addr string, log *zap.Logger) *http.Server {
	if log == nil {
		log = zap.NewNop()
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Info("metrics listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", zap.Error(err))
		}
	}()
	return srv
}

// ObserveStep implements engine.Observer.
func (c *Collector) ObserveStep(s engine.StepStats) {
	c.steps.Inc()
	c.fps.Set(s.FPS)
	if s.DT > 0 {
		c.interval.Observe(s.DT)
	}
}
