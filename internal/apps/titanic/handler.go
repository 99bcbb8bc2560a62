// internal/apps/titanic/handler.go
package titanic

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/apps"
	apperrors "github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/errors"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/logger"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/validation"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/model"
)

const AppID = "titanic"

type Handler struct {
	config *Config
	model  model.Classifier
	form   validation.Form
	logger logger.Logger
}

// NewHandler wires the survival predictor. A nil model handle is allowed
// and disables prediction for this process run.
func NewHandler(config *Config, m model.Classifier, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		model:  m,
		form:   Form(),
		logger: log.WithFields(map[string]interface{}{"app": AppID}),
	}
}

func (h *Handler) ID() string { return AppID }

func (h *Handler) Meta() apps.Meta {
	return apps.Meta{
		Title:       "Titanic Survival Predictor",
		Description: "Predicts passenger survival on the Titanic based on historical data. Enter the passenger information below to get a prediction.",
		HowTo: []string{
			"Enter passenger information in all fields",
			"Click 'Predict Survival' to see results",
			"Review the analysis of survival factors",
		},
		About: "Features: Passenger Class (1st, 2nd or 3rd), Sex, Age, SibSp (siblings/spouses aboard), Parch (parents/children aboard), Fare in pounds, and Port of Embarkation (C = Cherbourg, Q = Queenstown, S = Southampton).",
	}
}

func (h *Handler) Form() validation.Form { return h.form }

func (h *Handler) Ready() bool { return h.model != nil }

// Predict runs the full pipeline: collect the record, invoke the model,
// render the survival result with factor analysis.
func (h *Handler) Predict(ctx context.Context, values map[string]interface{}) (*apps.Result, error) {
	if !h.Ready() {
		return nil, apperrors.NewModelUnavailableError(AppID)
	}

	record, vres := h.form.Collect(values)
	if !vres.Valid {
		return nil, apperrors.NewInputValidationFailedError(vres.ErrorString())
	}

	return h.Execute(ctx, inputFromRecord(record))
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*apps.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	row := input.row()
	label, err := h.model.Predict(ctx, row)
	if err != nil {
		h.logger.Error("prediction failed", map[string]interface{}{"error": err.Error()})
		return nil, apperrors.NewInferenceFailedError(err)
	}

	result := &apps.Result{
		Label:   label,
		Display: displayForLabel(label),
		Factors: survivalFactors(input),
		Summary: passengerSummary(input),
	}

	if proba, ok := h.model.(model.ProbabilityClassifier); ok {
		p, err := proba.PredictProba(ctx, row)
		if err != nil {
			h.logger.Error("prediction failed", map[string]interface{}{"error": err.Error()})
			return nil, apperrors.NewInferenceFailedError(err)
		}
		pct := apps.RoundPercent(p[1])
		result.Probability = &pct
	}

	h.logger.Info("survival predicted", map[string]interface{}{
		"label":  label,
		"pclass": input.Pclass,
		"sex":    input.Sex,
	})

	return result, nil
}

// displayForLabel is a closed mapping over the model's known output domain
// with a defined fallback for anything else.
func displayForLabel(label string) string {
	switch label {
	case "1":
		return "SURVIVED"
	case "0":
		return "DID NOT SURVIVE"
	default:
		return fmt.Sprintf("UNRECOGNIZED OUTCOME (%s)", label)
	}
}

// survivalFactors applies the independent threshold rules over the record.
// Each satisfied rule contributes one line; declaration order is preserved.
func survivalFactors(input *Input) []string {
	factors := []string{}

	classRisk := map[int]string{
		1: "Higher chance of survival in 1st class",
		2: "Moderate chance of survival in 2nd class",
		3: "Lower chance of survival in 3rd class",
	}
	if note, ok := classRisk[input.Pclass]; ok {
		factors = append(factors, note)
	}

	if input.Sex == "female" {
		factors = append(factors, "Being female significantly increased survival chances")
	} else {
		factors = append(factors, "Being male significantly decreased survival chances")
	}

	if input.Age < 18 {
		factors = append(factors, "Children had better survival chances")
	}

	totalFamily := input.SibSp + input.Parch
	if totalFamily == 0 {
		factors = append(factors, "Traveling alone affected survival chances")
	} else if totalFamily > 4 {
		factors = append(factors, "Large family groups had more difficulty staying together")
	}

	return factors
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func passengerSummary(input *Input) map[string]string {
	port := input.Embarked
	if name, ok := portNames[input.Embarked]; ok {
		port = name
	}
	return map[string]string{
		"class":         strconv.Itoa(input.Pclass),
		"gender":        titleCase(input.Sex),
		"age":           fmt.Sprintf("%d years", input.Age),
		"port":          port,
		"familyMembers": strconv.Itoa(input.SibSp + input.Parch),
		"ticketFare":    fmt.Sprintf("£%.2f", input.Fare),
	}
}
