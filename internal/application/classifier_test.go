package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/victorcollective/showcase/internal/application"
	"github.com/victorcollective/showcase/internal/domain/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		topics   []string
		language string
		want     model.Category
	}{
		{"ai topic", []string{"gpt"}, "Go", model.CategoryAIML},
		{"ai topic case-insensitive", []string{"Machine-Learning"}, "", model.CategoryAIML},
		{"ai beats react", []string{"react", "nlp"}, "TypeScript", model.CategoryAIML},
		{"ai beats python", []string{"deep-learning"}, "Python", model.CategoryAIML},
		{"react with typescript", []string{"nextjs"}, "TypeScript", model.CategoryReact},
		{"react with javascript", []string{"Frontend"}, "JavaScript", model.CategoryReact},
		{"react topic wrong language", []string{"react"}, "Go", model.CategoryFullStack},
		{"typescript without framework", []string{"cli"}, "TypeScript", model.CategoryFullStack},
		{"python", nil, "Python", model.CategoryPython},
		{"python with react topic", []string{"react"}, "Python", model.CategoryPython},
		{"empty", nil, "", model.CategoryFullStack},
		{"language case-sensitive", nil, "python", model.CategoryFullStack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := application.Classify(tt.topics, tt.language)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}
