// internal/apps/penguins/handler.go
package penguins

import (
	"context"

	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/apps"
	apperrors "github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/errors"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/logger"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/validation"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/model"
)

const AppID = "penguins"

var speciesCatalog = map[string]speciesInfo{
	"Adelie": {
		Description: "Adelie penguins are the smallest of the Palmer penguins, known for their distinctive white ring around their eyes.",
		FunFact:     "They can swim up to 45 miles per hour!",
	},
	"Gentoo": {
		Description: "Gentoo penguins are the largest of the Palmer penguins, recognized by their bright orange-red bill and white stripe across the top of their head.",
		FunFact:     "They're the fastest underwater swimming penguins, reaching speeds of 22 mph!",
	},
	"Chinstrap": {
		Description: "Chinstrap penguins are named for the narrow black band under their heads, making them appear to wear a tiny black helmet.",
		FunFact:     "They make nests out of small stones and can be quite aggressive in defending them!",
	},
}

type Handler struct {
	config *Config
	model  model.Classifier
	form   validation.Form
	logger logger.Logger
}

// NewHandler wires the species predictor. A nil model handle is allowed
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
		Title:       "Palmer Penguins Species Predictor",
		Description: "Predicts the species of Palmer Archipelago penguins based on their physical characteristics. The model is trained on the Palmer Penguins dataset, which includes measurements from three penguin species: Adelie, Gentoo and Chinstrap.",
		HowTo: []string{
			"Enter the penguin's physical measurements",
			"Select the sex and island location",
			"The app will predict the penguin species",
			"Learn interesting facts about the predicted species!",
		},
		About: "This app uses machine learning to predict Palmer Archipelago penguin species based on their physical characteristics. Data source: Palmer Penguins Dataset.",
	}
}

func (h *Handler) Form() validation.Form { return h.form }

func (h *Handler) Ready() bool { return h.model != nil }

// Predict runs the full pipeline: collect the record, invoke the model,
// render the species result.
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

	species, err := h.model.Predict(ctx, input.row())
	if err != nil {
		h.logger.Error("prediction failed", map[string]interface{}{"error": err.Error()})
		return nil, apperrors.NewInferenceFailedError(err)
	}

	h.logger.Info("species predicted", map[string]interface{}{
		"species": species,
		"island":  input.Island,
	})

	result := &apps.Result{
		Label:   species,
		Display: "This penguin is predicted to be a " + species + " penguin!",
	}
	// Unknown labels still render; they just carry no commentary.
	if info, ok := speciesCatalog[species]; ok {
		result.Description = info.Description
		result.FunFact = info.FunFact
	}
	return result, nil
}
