// internal/apps/titanic/handler_test.go
package titanic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/errors"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/logger"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/model"
)

// ==========================
// Test Helper Functions
// ==========================

type fakeModel struct {
	label   string
	err     error
	lastRow model.Row
}

func (f *fakeModel) Predict(ctx context.Context, row model.Row) (string, error) {
	f.lastRow = row
	return f.label, f.err
}

func (f *fakeModel) Classes() []string {
	return []string{"0", "1"}
}

// fakeProbaModel also answers the probability interface.
type fakeProbaModel struct {
	fakeModel
	proba []float64
}

func (f *fakeProbaModel) PredictProba(ctx context.Context, row model.Row) ([]float64, error) {
	return f.proba, f.err
}

func createTestHandler(t *testing.T, m model.Classifier) *Handler {
	return NewHandler(LoadConfig(), m, logger.NewTestLogger(t))
}

func createTestValues() map[string]interface{} {
	return map[string]interface{}{
		"Pclass":   1,
		"Sex":      "female",
		"Age":      10,
		"SibSp":    0,
		"Parch":    0,
		"Fare":     50.0,
		"Embarked": "S",
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Predict_SurvivedWithFactors(t *testing.T) {
	handler := createTestHandler(t, &fakeModel{label: "1"})

	result, err := handler.Predict(context.Background(), createTestValues())

	require.NoError(t, err)
	assert.Equal(t, "1", result.Label)
	assert.Equal(t, "SURVIVED", result.Display)
	assert.Equal(t, []string{
		"Higher chance of survival in 1st class",
		"Being female significantly increased survival chances",
		"Children had better survival chances",
		"Traveling alone affected survival chances",
	}, result.Factors)
}

func TestHandler_Predict_DisplayForLabel(t *testing.T) {
	tests := []struct {
		name            string
		label           string
		expectedDisplay string
	}{
		{name: "survived", label: "1", expectedDisplay: "SURVIVED"},
		{name: "did not survive", label: "0", expectedDisplay: "DID NOT SURVIVE"},
		{name: "unmapped label does not crash", label: "2", expectedDisplay: "UNRECOGNIZED OUTCOME (2)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := createTestHandler(t, &fakeModel{label: tt.label})

			result, err := handler.Predict(context.Background(), createTestValues())

			require.NoError(t, err)
			assert.Equal(t, tt.expectedDisplay, result.Display)
		})
	}
}

func TestHandler_Predict_Probability(t *testing.T) {
	m := &fakeProbaModel{fakeModel: fakeModel{label: "1"}, proba: []float64{0.214, 0.786}}
	handler := createTestHandler(t, m)

	result, err := handler.Predict(context.Background(), createTestValues())

	require.NoError(t, err)
	require.NotNil(t, result.Probability)
	assert.Equal(t, 78.6, *result.Probability)
}

func TestHandler_Predict_NoProbabilityWithoutInterface(t *testing.T) {
	handler := createTestHandler(t, &fakeModel{label: "0"})

	result, err := handler.Predict(context.Background(), createTestValues())

	require.NoError(t, err)
	assert.Nil(t, result.Probability)
}

func TestHandler_Predict_PassengerSummary(t *testing.T) {
	handler := createTestHandler(t, &fakeModel{label: "1"})

	values := map[string]interface{}{
		"Pclass":   3,
		"Sex":      "male",
		"Age":      40,
		"SibSp":    1,
		"Parch":    2,
		"Fare":     7.25,
		"Embarked": "Q",
	}

	result, err := handler.Predict(context.Background(), values)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"class":         "3",
		"gender":        "Male",
		"age":           "40 years",
		"port":          "Queenstown",
		"familyMembers": "3",
		"ticketFare":    "£7.25",
	}, result.Summary)
}

func TestSurvivalFactors_FamilyRules(t *testing.T) {
	tests := []struct {
		name     string
		sibsp    int
		parch    int
		expected string
	}{
		{name: "traveling alone", sibsp: 0, parch: 0, expected: "Traveling alone affected survival chances"},
		{name: "large family group", sibsp: 4, parch: 2, expected: "Large family groups had more difficulty staying together"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &Input{Pclass: 2, Sex: "male", Age: 30, SibSp: tt.sibsp, Parch: tt.parch}

			factors := survivalFactors(input)

			assert.Contains(t, factors, tt.expected)
		})
	}
}

func TestSurvivalFactors_SmallFamilyHasNoFamilyNote(t *testing.T) {
	input := &Input{Pclass: 2, Sex: "male", Age: 30, SibSp: 1, Parch: 1}

	factors := survivalFactors(input)

	assert.NotContains(t, factors, "Traveling alone affected survival chances")
	assert.NotContains(t, factors, "Large family groups had more difficulty staying together")
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Predict_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(values map[string]interface{})
	}{
		{
			name:   "class out of range",
			mutate: func(v map[string]interface{}) { v["Pclass"] = 4 },
		},
		{
			name:   "negative age",
			mutate: func(v map[string]interface{}) { v["Age"] = -1 },
		},
		{
			name:   "fare above maximum",
			mutate: func(v map[string]interface{}) { v["Fare"] = 601.0 },
		},
		{
			name:   "unknown port",
			mutate: func(v map[string]interface{}) { v["Embarked"] = "X" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := createTestHandler(t, &fakeModel{label: "1"})
			values := createTestValues()
			tt.mutate(values)

			result, err := handler.Predict(context.Background(), values)

			assert.Nil(t, result)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeInputValidationFailed, apperrors.AsStandardError(err).Code)
		})
	}
}

func TestHandler_Predict_ModelNotLoaded(t *testing.T) {
	handler := createTestHandler(t, nil)

	assert.False(t, handler.Ready())

	result, err := handler.Predict(context.Background(), createTestValues())

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeModelUnavailable, apperrors.AsStandardError(err).Code)
}

func TestHandler_Predict_InferenceFailure(t *testing.T) {
	handler := createTestHandler(t, &fakeModel{err: errors.New("broken handle")})

	result, err := handler.Predict(context.Background(), createTestValues())

	assert.Nil(t, result)
	require.Error(t, err)
	stdErr := apperrors.AsStandardError(err)
	assert.Equal(t, apperrors.ErrCodeInferenceFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}
