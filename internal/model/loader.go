package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	apperrors "github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/errors"
)

const artifactSchemaVersion = 1

// artifact is the on-disk JSON envelope produced by the external training
// pipeline.
type artifact struct {
	SchemaVersion int         `json:"schema_version"`
	Kind          string      `json:"kind"`
	Features      []Feature   `json:"features"`
	Classes       []string    `json:"classes"`
	Nodes         []TreeNode  `json:"nodes,omitempty"`
	Coefficients  [][]float64 `json:"coefficients,omitempty"`
	Intercepts    []float64   `json:"intercepts,omitempty"`
}

// Load reads one serialized model artifact and returns the prediction
// handle. The handle is loaded once per process and held read-only for the
// process lifetime. Any failure (missing file, corrupt payload, version
// mismatch) yields a MODEL_LOAD_FAILED error and no handle.
func Load(path string) (Classifier, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewModelLoadFailedError(path, err)
	}

	var art artifact
	if err := json.Unmarshal(payload, &art); err != nil {
		return nil, apperrors.NewModelLoadFailedError(path, err)
	}

	handle, err := build(&art)
	if err != nil {
		return nil, apperrors.NewModelLoadFailedError(path, err)
	}
	return handle, nil
}

func build(art *artifact) (Classifier, error) {
	if art.SchemaVersion != artifactSchemaVersion {
		return nil, fmt.Errorf("unsupported artifact schema version %d", art.SchemaVersion)
	}
	if len(art.Features) == 0 {
		return nil, errors.New("artifact declares no features")
	}
	if len(art.Classes) == 0 {
		return nil, errors.New("artifact declares no classes")
	}

	switch art.Kind {
	case "decision_tree":
		if err := validateTree(art.Features, art.Classes, art.Nodes); err != nil {
			return nil, err
		}
		return &DecisionTree{
			features: art.Features,
			classes:  art.Classes,
			nodes:    art.Nodes,
		}, nil

	case "logistic":
		if err := validateLogistic(art.Features, art.Classes, art.Coefficients, art.Intercepts); err != nil {
			return nil, err
		}
		return &Logistic{
			features:     art.Features,
			classes:      art.Classes,
			coefficients: art.Coefficients,
			intercepts:   art.Intercepts,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported model kind %q", art.Kind)
	}
}
