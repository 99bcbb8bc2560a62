// pkg/registry/registry.go
package registry

import (
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/apps"
	apperrors "github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/errors"
)

// Build assembles the registry from the wired apps. Schemas are derived
// from each app's form so the registry can never drift from the declared
// bounds.
func Build(version string, list []apps.App) *AppRegistry {
	reg := &AppRegistry{Version: version}
	for _, app := range list {
		reg.Apps = append(reg.Apps, Application{
			ID:          app.ID(),
			DisplayName: app.Meta().Title,
			Description: app.Meta().Description,
			Category:    "prediction",
			Ready:       app.Ready(),
			InputSchema: app.Form().JSONSchema(),
			OutputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"label":       map[string]interface{}{"type": "string"},
					"display":     map[string]interface{}{"type": "string"},
					"probability": map[string]interface{}{"type": "number"},
					"factors": map[string]interface{}{
						"type":  "array",
						"items": map[string]interface{}{"type": "string"},
					},
				},
			},
			ErrorCodes: []string{
				string(apperrors.ErrCodeModelUnavailable),
				string(apperrors.ErrCodeInputValidationFailed),
				string(apperrors.ErrCodeInferenceFailed),
			},
		})
	}
	return reg
}

// Find returns the registry entry for an app id.
func (r *AppRegistry) Find(id string) (*Application, bool) {
	for i := range r.Apps {
		if r.Apps[i].ID == id {
			return &r.Apps[i], true
		}
	}
	return nil, false
}
