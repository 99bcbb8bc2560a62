// Package model loads pre-trained classifier artifacts and exposes them as
// opaque prediction handles. Artifacts are produced by an external training
// pipeline; this package only evaluates their fitted parameters.
package model

import (
	"context"
	"fmt"
)

// Row is the single-row named-field record matching a model's expected
// feature schema. Values are float64 for numeric columns and string for
// categorical ones. A Row is created fresh per prediction and never mutated.
type Row map[string]interface{}

// Classifier is the handle over a pre-trained model.
type Classifier interface {
	Predict(ctx context.Context, row Row) (string, error)
	Classes() []string
}

// ProbabilityClassifier is implemented by handles that can also report the
// per-class probability distribution. Callers type-assert; not every
// artifact kind supports it.
type ProbabilityClassifier interface {
	Classifier
	PredictProba(ctx context.Context, row Row) ([]float64, error)
}

// Feature describes one input column of the fitted pipeline. Categorical
// columns carry their fitted one-hot category order so that encoding
// travels inside the artifact.
type Feature struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories,omitempty"`
}

// vectorize expands the named-field row into the flat feature vector the
// fitted parameters were trained against.
func vectorize(features []Feature, row Row) ([]float64, error) {
	vec := make([]float64, 0, len(features))
	for _, f := range features {
		raw, ok := row[f.Name]
		if !ok {
			return nil, fmt.Errorf("missing feature %q", f.Name)
		}
		if len(f.Categories) == 0 {
			num, ok := raw.(float64)
			if !ok {
				return nil, fmt.Errorf("feature %q: expected number, got %T", f.Name, raw)
			}
			vec = append(vec, num)
			continue
		}

		str, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("feature %q: expected string, got %T", f.Name, raw)
		}
		matched := -1
		for i, cat := range f.Categories {
			if cat == str {
				matched = i
				break
			}
		}
		if matched < 0 {
			return nil, fmt.Errorf("feature %q: unexpected value %q", f.Name, str)
		}
		for i := range f.Categories {
			if i == matched {
				vec = append(vec, 1)
			} else {
				vec = append(vec, 0)
			}
		}
	}
	return vec, nil
}

func argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}
