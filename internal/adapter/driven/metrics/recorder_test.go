package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorcollective/showcase/internal/domain/model"
)

func TestRecorder_CountsRunsBySource(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	r.RecordRun(model.SourceLive, 20*time.Millisecond)
	r.RecordRun(model.SourceLive, 30*time.Millisecond)
	r.RecordRun(model.SourceFallback, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.runs.WithLabelValues("live")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs.WithLabelValues("fallback")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.duration))
}

func TestRecorder_TopicFailures(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	r.RecordTopicFailure()
	r.RecordTopicFailure()

	assert.Equal(t, 2.0, testutil.ToFloat64(r.topicFailures))
}

func TestNewRecorder_DoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	assert.Error(t, err)
}
