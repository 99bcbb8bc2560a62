package model

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/errors"
)

// ==========================
// Test Helper Functions
// ==========================

func writeArtifact(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))
	return path
}

// treeArtifact splits on the numeric feature at 5, with the categorical
// feature one-hot expanded after it.
const treeArtifact = `{
  "schema_version": 1,
  "kind": "decision_tree",
  "features": [
    {"name": "x"},
    {"name": "c", "categories": ["a", "b"]}
  ],
  "classes": ["no", "yes"],
  "nodes": [
    {"feature_idx": 0, "threshold": 5, "left_child": 1, "right_child": 2},
    {"is_leaf": true, "counts": [8, 2]},
    {"is_leaf": true, "counts": [1, 9]}
  ]
}`

const logisticArtifact = `{
  "schema_version": 1,
  "kind": "logistic",
  "features": [
    {"name": "x"},
    {"name": "c", "categories": ["a", "b"]}
  ],
  "classes": ["no", "yes"],
  "coefficients": [[1.0, 0.5, -0.5]],
  "intercepts": [-4.0]
}`

// ==========================
// Loader Tests
// ==========================

func TestLoad_DecisionTree(t *testing.T) {
	handle, err := Load(writeArtifact(t, treeArtifact))

	require.NoError(t, err)
	assert.Equal(t, []string{"no", "yes"}, handle.Classes())
	assert.IsType(t, &DecisionTree{}, handle)
}

func TestLoad_Logistic(t *testing.T) {
	handle, err := Load(writeArtifact(t, logisticArtifact))

	require.NoError(t, err)
	assert.Equal(t, []string{"no", "yes"}, handle.Classes())
	assert.IsType(t, &Logistic{}, handle)
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "corrupt payload",
			payload: `{"schema_version": 1, "kind": `,
		},
		{
			name:    "schema version mismatch",
			payload: `{"schema_version": 2, "kind": "decision_tree", "features": [{"name": "x"}], "classes": ["a"], "nodes": [{"is_leaf": true, "counts": [1]}]}`,
		},
		{
			name:    "unsupported kind",
			payload: `{"schema_version": 1, "kind": "random_forest", "features": [{"name": "x"}], "classes": ["a"]}`,
		},
		{
			name:    "no features",
			payload: `{"schema_version": 1, "kind": "decision_tree", "features": [], "classes": ["a"], "nodes": [{"is_leaf": true, "counts": [1]}]}`,
		},
		{
			name:    "no classes",
			payload: `{"schema_version": 1, "kind": "decision_tree", "features": [{"name": "x"}], "classes": [], "nodes": []}`,
		},
		{
			name:    "leaf counts mismatch classes",
			payload: `{"schema_version": 1, "kind": "decision_tree", "features": [{"name": "x"}], "classes": ["a", "b"], "nodes": [{"is_leaf": true, "counts": [1]}]}`,
		},
		{
			name:    "logistic coefficient width mismatch",
			payload: `{"schema_version": 1, "kind": "logistic", "features": [{"name": "x"}], "classes": ["a", "b"], "coefficients": [[1.0, 2.0]], "intercepts": [0.0]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handle, err := Load(writeArtifact(t, tt.payload))

			assert.Nil(t, handle)
			require.Error(t, err)
			stdErr := apperrors.AsStandardError(err)
			assert.Equal(t, apperrors.ErrCodeModelLoadFailed, stdErr.Code)
			assert.False(t, stdErr.Retryable)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	handle, err := Load(filepath.Join(t.TempDir(), "absent.json"))

	assert.Nil(t, handle)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeModelLoadFailed, apperrors.AsStandardError(err).Code)
}

// ==========================
// Decision Tree Tests
// ==========================

func TestDecisionTree_Predict(t *testing.T) {
	handle, err := Load(writeArtifact(t, treeArtifact))
	require.NoError(t, err)

	tests := []struct {
		name     string
		row      Row
		expected string
	}{
		{
			name:     "left branch at boundary",
			row:      Row{"x": 5.0, "c": "a"},
			expected: "no",
		},
		{
			name:     "right branch",
			row:      Row{"x": 5.1, "c": "b"},
			expected: "yes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, err := handle.Predict(context.Background(), tt.row)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, label)
		})
	}
}

func TestDecisionTree_PredictProba(t *testing.T) {
	handle, err := Load(writeArtifact(t, treeArtifact))
	require.NoError(t, err)

	proba, ok := handle.(ProbabilityClassifier)
	require.True(t, ok)

	p, err := proba.PredictProba(context.Background(), Row{"x": 10.0, "c": "a"})

	require.NoError(t, err)
	require.Len(t, p, 2)
	assert.InDelta(t, 0.1, p[0], 1e-9)
	assert.InDelta(t, 0.9, p[1], 1e-9)
}

func TestDecisionTree_RowErrors(t *testing.T) {
	handle, err := Load(writeArtifact(t, treeArtifact))
	require.NoError(t, err)

	tests := []struct {
		name string
		row  Row
	}{
		{name: "missing feature", row: Row{"x": 1.0}},
		{name: "wrong numeric type", row: Row{"x": "big", "c": "a"}},
		{name: "unexpected category", row: Row{"x": 1.0, "c": "z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handle.Predict(context.Background(), tt.row)
			assert.Error(t, err)
		})
	}
}

func TestDecisionTree_CancelledContext(t *testing.T) {
	handle, err := Load(writeArtifact(t, treeArtifact))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = handle.Predict(ctx, Row{"x": 1.0, "c": "a"})
	assert.ErrorIs(t, err, context.Canceled)
}

// ==========================
// Logistic Tests
// ==========================

func TestLogistic_Predict(t *testing.T) {
	handle, err := Load(writeArtifact(t, logisticArtifact))
	require.NoError(t, err)

	// score = 1.0*x + 0.5*[c=a] - 0.5*[c=b] - 4.0
	tests := []struct {
		name     string
		row      Row
		expected string
	}{
		{
			name:     "strongly negative score",
			row:      Row{"x": 0.0, "c": "b"},
			expected: "no",
		},
		{
			name:     "strongly positive score",
			row:      Row{"x": 10.0, "c": "a"},
			expected: "yes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, err := handle.Predict(context.Background(), tt.row)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, label)
		})
	}
}

func TestLogistic_PredictProba_SumsToOne(t *testing.T) {
	handle, err := Load(writeArtifact(t, logisticArtifact))
	require.NoError(t, err)

	proba, ok := handle.(ProbabilityClassifier)
	require.True(t, ok)

	p, err := proba.PredictProba(context.Background(), Row{"x": 4.0, "c": "a"})

	require.NoError(t, err)
	require.Len(t, p, 2)
	assert.InDelta(t, 1.0, p[0]+p[1], 1e-9)
	assert.Greater(t, p[1], 0.0)
	assert.Less(t, p[1], 1.0)
}
