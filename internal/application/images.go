package application

import (
	"math/rand/v2"

	"github.com/victorcollective/showcase/internal/domain/model"
)

// ImagePicker chooses a card image for a project of the given category.
type ImagePicker func(category model.Category) string

// categoryImages is the fixed image pool per category, relative to the static
// asset root.
var categoryImages = map[model.Category][]string{
	model.CategoryAIML: {
		"/static/img/ai-app-1.svg",
		"/static/img/ai-app-2.svg",
		"/static/img/ai-app-3.svg",
		"/static/img/ai-app-4.svg",
	},
	model.CategoryReact: {
		"/static/img/web-app-1.svg",
		"/static/img/web-app-2.svg",
		"/static/img/web-app-3.svg",
	},
	model.CategoryFullStack: {
		"/static/img/general-app-1.svg",
		"/static/img/general-app-2.svg",
		"/static/img/general-app-3.svg",
	},
	model.CategoryPython: {
		"/static/img/general-app-1.svg",
		"/static/img/general-app-2.svg",
		"/static/img/general-app-3.svg",
	},
}

// CategoryImages returns a copy of the image pool for category. Unknown
// categories use the Full Stack pool.
func CategoryImages(category model.Category) []string {
	pool, ok := categoryImages[category]
	if !ok {
		pool = categoryImages[model.CategoryFullStack]
	}
	out := make([]string, len(pool))
	copy(out, pool)
	return out
}

// RandomImage picks uniformly from the category's pool. Repeated calls may
// return different images for the same category.
func RandomImage(category model.Category) string {
	pool := CategoryImages(category)
	return pool[rand.IntN(len(pool))]
}

// FirstImage always picks the first image of the category's pool.
func FirstImage(category model.Category) string {
	return CategoryImages(category)[0]
}
