package model

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Logistic evaluates a pre-fitted logistic regression artifact. Binary
// models carry one weight row (sigmoid); multiclass models carry one row
// per class (softmax).
type Logistic struct {
	features     []Feature
	classes      []string
	coefficients [][]float64
	intercepts   []float64
}

func (lr *Logistic) Classes() []string {
	return lr.classes
}

func (lr *Logistic) Predict(ctx context.Context, row Row) (string, error) {
	proba, err := lr.PredictProba(ctx, row)
	if err != nil {
		return "", err
	}
	return lr.classes[argmax(proba)], nil
}

func (lr *Logistic) PredictProba(ctx context.Context, row Row) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	vec, err := vectorize(lr.features, row)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, len(lr.coefficients))
	for i, weights := range lr.coefficients {
		if len(weights) != len(vec) {
			return nil, fmt.Errorf("weight row %d: dimension mismatch", i)
		}
		s := lr.intercepts[i]
		for j, w := range weights {
			s += w * vec[j]
		}
		scores[i] = s
	}

	if len(scores) == 1 {
		// Binary model: single weight row, sigmoid over the decision value.
		p1 := 1.0 / (1.0 + math.Exp(-scores[0]))
		return []float64{1 - p1, p1}, nil
	}
	return softmax(scores), nil
}

func softmax(scores []float64) []float64 {
	max := scores[argmax(scores)]
	total := 0.0
	out := make([]float64, len(scores))
	for i, s := range scores {
		out[i] = math.Exp(s - max)
		total += out[i]
	}
	for i := range out {
		out[i] /= total
	}
	return out
}

func validateLogistic(features []Feature, classes []string, coefficients [][]float64, intercepts []float64) error {
	if len(coefficients) == 0 {
		return errors.New("logistic artifact has no coefficients")
	}
	if len(coefficients) != len(intercepts) {
		return errors.New("coefficient and intercept counts differ")
	}
	dims := 0
	for _, f := range features {
		if len(f.Categories) > 0 {
			dims += len(f.Categories)
		} else {
			dims++
		}
	}
	for i, weights := range coefficients {
		if len(weights) != dims {
			return fmt.Errorf("weight row %d: expected %d weights, got %d", i, dims, len(weights))
		}
	}
	if len(coefficients) == 1 {
		if len(classes) != 2 {
			return errors.New("binary logistic artifact must declare exactly two classes")
		}
	} else if len(coefficients) != len(classes) {
		return errors.New("coefficient rows do not match class count")
	}
	return nil
}
