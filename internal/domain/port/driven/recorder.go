package driven

import (
	"time"

	"github.com/victorcollective/showcase/internal/domain/model"
)

// PipelineRecorder receives observations from the project pipeline.
type PipelineRecorder interface {
	RecordRun(source model.ProjectSource, duration time.Duration)
	RecordTopicFailure()
}

// NopRecorder discards all observations.
type NopRecorder struct{}

func (NopRecorder) RecordRun(model.ProjectSource, time.Duration) {}
func (NopRecorder) RecordTopicFailure()                          {}
