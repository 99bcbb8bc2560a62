// internal/apps/diabetes/models.go
package diabetes

import (
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/validation"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/model"
)

// Input is the complete health-metric record matching the model features.
type Input struct {
	Pregnancies              int     `json:"Pregnancies"`
	Glucose                  int     `json:"Glucose"`
	BloodPressure            int     `json:"BloodPressure"`
	SkinThickness            int     `json:"SkinThickness"`
	Insulin                  int     `json:"Insulin"`
	BMI                      float64 `json:"BMI"`
	DiabetesPedigreeFunction float64 `json:"DiabetesPedigreeFunction"`
	Age                      int     `json:"Age"`
}

// Form declares the health-metric controls with their bounds and defaults.
func Form() validation.Form {
	return validation.Form{Fields: []validation.FieldSpec{
		{
			Name:    "Pregnancies",
			Label:   "Number of Pregnancies",
			Help:    "Number of times pregnant",
			Kind:    validation.KindInt,
			Control: validation.ControlNumber,
			Min:     0, Max: 20,
			Default: 0,
		},
		{
			Name:    "Glucose",
			Label:   "Glucose Level (mg/dL)",
			Help:    "Plasma glucose concentration after 2 hours in an oral glucose tolerance test",
			Kind:    validation.KindInt,
			Control: validation.ControlSlider,
			Min:     0, Max: 200,
			Default: 85,
		},
		{
			Name:    "BloodPressure",
			Label:   "Blood Pressure (mm Hg)",
			Help:    "Diastolic blood pressure",
			Kind:    validation.KindInt,
			Control: validation.ControlSlider,
			Min:     0, Max: 200,
			Default: 70,
		},
		{
			Name:    "SkinThickness",
			Label:   "Skin Thickness (mm)",
			Help:    "Triceps skin fold thickness",
			Kind:    validation.KindInt,
			Control: validation.ControlSlider,
			Min:     0, Max: 100,
			Default: 20,
		},
		{
			Name:    "Insulin",
			Label:   "Insulin Level (mu U/ml)",
			Help:    "2-Hour serum insulin",
			Kind:    validation.KindInt,
			Control: validation.ControlSlider,
			Min:     0, Max: 846,
			Default: 79,
		},
		{
			Name:    "BMI",
			Label:   "BMI",
			Help:    "Body Mass Index",
			Kind:    validation.KindFloat,
			Control: validation.ControlNumber,
			Min:     0, Max: 70, Step: 0.1,
			Default: 23.0,
		},
		{
			Name:    "DiabetesPedigreeFunction",
			Label:   "Diabetes Pedigree Function",
			Help:    "A function which scores likelihood of diabetes based on family history",
			Kind:    validation.KindFloat,
			Control: validation.ControlNumber,
			Min:     0, Max: 2.5, Step: 0.01,
			Default: 0.32,
		},
		{
			Name:    "Age",
			Label:   "Age",
			Help:    "Age in years",
			Kind:    validation.KindInt,
			Control: validation.ControlNumber,
			Min:     0, Max: 120, Step: 1,
			Default: 30,
		},
	}}
}

func inputFromRecord(record map[string]interface{}) *Input {
	return &Input{
		Pregnancies:              int(record["Pregnancies"].(float64)),
		Glucose:                  int(record["Glucose"].(float64)),
		BloodPressure:            int(record["BloodPressure"].(float64)),
		SkinThickness:            int(record["SkinThickness"].(float64)),
		Insulin:                  int(record["Insulin"].(float64)),
		BMI:                      record["BMI"].(float64),
		DiabetesPedigreeFunction: record["DiabetesPedigreeFunction"].(float64),
		Age:                      int(record["Age"].(float64)),
	}
}

func (in *Input) row() model.Row {
	return model.Row{
		"Pregnancies":              float64(in.Pregnancies),
		"Glucose":                  float64(in.Glucose),
		"BloodPressure":            float64(in.BloodPressure),
		"SkinThickness":            float64(in.SkinThickness),
		"Insulin":                  float64(in.Insulin),
		"BMI":                      in.BMI,
		"DiabetesPedigreeFunction": in.DiabetesPedigreeFunction,
		"Age":                      float64(in.Age),
	}
}
