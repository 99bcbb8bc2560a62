// internal/apps/diabetes/handler.go
package diabetes

import (
	"context"
	"fmt"

	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/apps"
	apperrors "github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/errors"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/logger"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/validation"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/model"
)

const AppID = "diabetes"

const noRiskFactorsNote = "No major risk factors identified in the provided metrics"

var recommendations = []string{
	"Maintain a healthy weight",
	"Exercise regularly (at least 150 minutes per week)",
	"Eat a balanced diet rich in whole grains, lean proteins, and vegetables",
	"Monitor blood glucose levels regularly if you're at risk",
	"Get regular medical check-ups",
}

type Handler struct {
	config *Config
	model  model.Classifier
	form   validation.Form
	logger logger.Logger
}

// NewHandler wires the risk predictor. A nil model handle is allowed and
// disables prediction for this process run.
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
		Title:       "Diabetes Risk Predictor",
		Description: "Estimates diabetes risk based on various health metrics. The model is trained on the Pima Indians Diabetes Dataset from the National Institute of Diabetes and Digestive and Kidney Diseases. This tool is for educational purposes only and should not replace professional medical advice.",
		HowTo: []string{
			"Enter your health metrics in all fields",
			"Click 'Analyze Risk' to see results",
			"Review the risk analysis and recommendations",
		},
		About: "This is a screening tool only. All measurements should be taken after 8 hours of fasting; glucose values are from a 2-hour oral glucose tolerance test. Please consult healthcare professionals for proper medical advice and diagnosis.",
	}
}

func (h *Handler) Form() validation.Form { return h.form }

func (h *Handler) Ready() bool { return h.model != nil }

// Predict runs the full pipeline: collect the record, invoke the model,
// render the risk assessment.
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

	factors := AssessRiskFactors(input)
	if len(factors) == 0 {
		factors = []string{noRiskFactorsNote}
	}

	result := &apps.Result{
		Label:           label,
		Display:         displayForLabel(label),
		Factors:         factors,
		Recommendations: recommendations,
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

	h.logger.Info("risk assessed", map[string]interface{}{
		"label":   label,
		"glucose": input.Glucose,
		"bmi":     input.BMI,
	})

	return result, nil
}

// displayForLabel is a closed mapping over the model's known output domain
// with a defined fallback for anything else.
func displayForLabel(label string) string {
	switch label {
	case "1":
		return "Higher Risk of Diabetes"
	case "0":
		return "Lower Risk of Diabetes"
	default:
		return fmt.Sprintf("Unrecognized assessment (%s)", label)
	}
}

// AssessRiskFactors applies the medical-guideline threshold rules over the
// record. Rules are independent of each other and of the model outcome;
// declaration order is preserved.
func AssessRiskFactors(input *Input) []string {
	riskFactors := []string{}

	if input.Glucose >= 140 {
		riskFactors = append(riskFactors, "High glucose level indicates increased risk")
	} else if input.Glucose >= 100 {
		riskFactors = append(riskFactors, "Borderline glucose level")
	}

	if input.BMI >= 30 {
		riskFactors = append(riskFactors, "BMI indicates obesity (BMI >= 30)")
	} else if input.BMI >= 25 {
		riskFactors = append(riskFactors, "BMI indicates overweight (BMI 25-29.9)")
	}

	if input.BloodPressure >= 90 {
		riskFactors = append(riskFactors, "Elevated blood pressure")
	}

	if input.Age >= 45 {
		riskFactors = append(riskFactors, "Age is a risk factor (>= 45 years)")
	}

	if input.DiabetesPedigreeFunction >= 0.8 {
		riskFactors = append(riskFactors, "Strong family history of diabetes")
	}

	return riskFactors
}
