package application

import (
	"strings"

	"github.com/victorcollective/showcase/internal/domain/model"
)

var (
	aiTopics = map[string]bool{
		"ai":                      true,
		"ml":                      true,
		"machine-learning":        true,
		"artificial-intelligence": true,
		"gpt":                     true,
		"nlp":                     true,
		"deep-learning":           true,
	}

	webFrameworkTopics = map[string]bool{
		"react":        true,
		"nextjs":       true,
		"react-native": true,
		"frontend":     true,
	}
)

// Classify derives a project category from a repository's topics and primary
// language. Rules are checked in order and the first match wins:
//  1. any AI/ML topic
//  2. TypeScript or JavaScript with a web-framework topic
//  3. Python
//  4. Full Stack
//
// Topic comparison is case-insensitive; language comparison is exact.
func Classify(topics []string, language string) model.Category {
	if hasAnyTopic(topics, aiTopics) {
		return model.CategoryAIML
	}

	if language == "TypeScript" || language == "JavaScript" {
		if hasAnyTopic(topics, webFrameworkTopics) {
			return model.CategoryReact
		}
	}

	if language == "Python" {
		return model.CategoryPython
	}

	return model.CategoryFullStack
}

func hasAnyTopic(topics []string, set map[string]bool) bool {
	for _, t := range topics {
		if set[strings.ToLower(t)] {
			return true
		}
	}
	return false
}
