// Package apps defines the surface shared by the predictor applications.
// Each app lives in its own subpackage and implements the same
// collect -> predict -> render pipeline over its own record schema.
package apps

import (
	"context"
	"math"

	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/validation"
)

// App is one interactive predictor application.
type App interface {
	ID() string
	Meta() Meta
	Form() validation.Form
	// Ready reports whether the model handle was loaded at startup.
	// When false, Predict is short-circuited before inference.
	Ready() bool
	Predict(ctx context.Context, values map[string]interface{}) (*Result, error)
}

// Meta carries the static explanatory copy an external front-end renders
// around the form.
type Meta struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	HowTo       []string `json:"howTo,omitempty"`
	About       string   `json:"about,omitempty"`
}

// Result is the rendered outcome of one prediction run.
type Result struct {
	Label   string `json:"label"`
	Display string `json:"display"`

	// Probability of the positive class as a percentage rounded to one
	// decimal. Only set by apps whose model exposes predict_proba.
	Probability *float64 `json:"probability,omitempty"`

	// Factors are the ordered, additive annotation lines produced by the
	// threshold rules over the input record.
	Factors []string `json:"factors,omitempty"`

	// Static domain commentary keyed to the predicted label.
	Description string `json:"description,omitempty"`
	FunFact     string `json:"funFact,omitempty"`

	// Summary echoes selected input fields in display form.
	Summary map[string]string `json:"summary,omitempty"`

	// Recommendations is static closing advice, independent of the input.
	Recommendations []string `json:"recommendations,omitempty"`
}

// RoundPercent converts a probability in [0,1] to a percentage rounded to
// one decimal place.
func RoundPercent(p float64) float64 {
	return math.Round(p*1000) / 10
}
