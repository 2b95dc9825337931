// Package metrics implements the PipelineRecorder port with Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/victorcollective/showcase/internal/domain/model"
	"github.com/victorcollective/showcase/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.PipelineRecorder = (*Recorder)(nil)

// Recorder counts project pipeline runs and topic fetch failures.
type Recorder struct {
	runs          *prometheus.CounterVec
	duration      prometheus.Histogram
	topicFailures prometheus.Counter
}

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "showcase",
			Name:      "project_pipeline_runs_total",
			Help:      "Project pipeline runs by data source (live or fallback).",
		}, []string{"source"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "showcase",
			Name:      "project_pipeline_duration_seconds",
			Help:      "Wall time of one project pipeline run.",
			Buckets:   prometheus.DefBuckets,
		}),
		topicFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "showcase",
			Name:      "topic_fetch_failures_total",
			Help:      "Repository topic requests that failed and degraded to no topics.",
		}),
	}

	for _, c := range []prometheus.Collector{r.runs, r.duration, r.topicFailures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// RecordRun counts one pipeline run and observes its duration.
func (r *Recorder) RecordRun(source model.ProjectSource, duration time.Duration) {
	r.runs.WithLabelValues(string(source)).Inc()
	r.duration.Observe(duration.Seconds())
}

// RecordTopicFailure counts one failed topic request.
func (r *Recorder) RecordTopicFailure() {
	r.topicFailures.Inc()
}
