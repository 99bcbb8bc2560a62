// internal/apps/penguins/models.go
package penguins

import (
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/validation"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/model"
)

// Input is the complete one-row measurement record for one prediction.
type Input struct {
	BillLengthMM    float64 `json:"bill_length_mm"`
	BillDepthMM     float64 `json:"bill_depth_mm"`
	FlipperLengthMM float64 `json:"flipper_length_mm"`
	BodyMassG       float64 `json:"body_mass_g"`
	Sex             string  `json:"sex"`
	Island          string  `json:"island"`
}

// speciesInfo is the static commentary shown with a predicted species.
type speciesInfo struct {
	Description string
	FunFact     string
}

// Form declares the measurement controls with their bounds and defaults.
func Form() validation.Form {
	return validation.Form{Fields: []validation.FieldSpec{
		{
			Name:    "bill_length_mm",
			Label:   "Bill Length (mm)",
			Help:    "The length of the penguin's bill in millimeters",
			Kind:    validation.KindFloat,
			Control: validation.ControlNumber,
			Min:     30, Max: 60,
			Default: 45.0,
		},
		{
			Name:    "bill_depth_mm",
			Label:   "Bill Depth (mm)",
			Help:    "The depth of the penguin's bill in millimeters",
			Kind:    validation.KindFloat,
			Control: validation.ControlNumber,
			Min:     13, Max: 22,
			Default: 17.0,
		},
		{
			Name:    "flipper_length_mm",
			Label:   "Flipper Length (mm)",
			Help:    "The length of the penguin's flipper in millimeters",
			Kind:    validation.KindInt,
			Control: validation.ControlSlider,
			Min:     170, Max: 240,
			Default: 200,
		},
		{
			Name:    "body_mass_g",
			Label:   "Body Mass (g)",
			Help:    "The penguin's body mass in grams",
			Kind:    validation.KindInt,
			Control: validation.ControlSlider,
			Min:     2700, Max: 6300, Step: 100,
			Default: 4000,
		},
		{
			Name:      "sex",
			Label:     "Sex",
			Kind:      validation.KindEnum,
			Control:   validation.ControlRadio,
			Default:   "male",
			Lowercase: true,
			Options: []validation.Option{
				{Value: "male", Label: "Male"},
				{Value: "female", Label: "Female"},
			},
		},
		{
			Name:    "island",
			Label:   "Island",
			Help:    "The island where the penguin was observed",
			Kind:    validation.KindEnum,
			Control: validation.ControlSelect,
			Default: "Torgersen",
			Options: []validation.Option{
				{Value: "Torgersen"},
				{Value: "Biscoe"},
				{Value: "Dream"},
			},
		},
	}}
}

func inputFromRecord(record map[string]interface{}) *Input {
	return &Input{
		BillLengthMM:    record["bill_length_mm"].(float64),
		BillDepthMM:     record["bill_depth_mm"].(float64),
		FlipperLengthMM: record["flipper_length_mm"].(float64),
		BodyMassG:       record["body_mass_g"].(float64),
		Sex:             record["sex"].(string),
		Island:          record["island"].(string),
	}
}

func (in *Input) row() model.Row {
	return model.Row{
		"bill_length_mm":    in.BillLengthMM,
		"bill_depth_mm":     in.BillDepthMM,
		"flipper_length_mm": in.FlipperLengthMM,
		"body_mass_g":       in.BodyMassG,
		"sex":               in.Sex,
		"island":            in.Island,
	}
}
