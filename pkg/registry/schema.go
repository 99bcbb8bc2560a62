// pkg/registry/schema.go
package registry

// AppRegistry lists every predictor application the service exposes.
type AppRegistry struct {
	Version string        `json:"version"`
	Apps    []Application `json:"apps"`
}

// Application is the registry entry for one predictor app: enough for an
// external front-end to render the form and for the server to validate
// incoming predict payloads.
type Application struct {
	ID           string                 `json:"id"`
	DisplayName  string                 `json:"displayName"`
	Description  string                 `json:"description"`
	Category     string                 `json:"category"`
	Ready        bool                   `json:"ready"`
	InputSchema  map[string]interface{} `json:"inputSchema"`
	OutputSchema map[string]interface{} `json:"outputSchema"`
	ErrorCodes   []string               `json:"errorCodes"`
}
