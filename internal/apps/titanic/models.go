// internal/apps/titanic/models.go
package titanic

import (
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/validation"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/model"
)

// Input is the complete passenger record matching the model features.
type Input struct {
	Pclass   int     `json:"Pclass"`
	Sex      string  `json:"Sex"`
	Age      int     `json:"Age"`
	SibSp    int     `json:"SibSp"`
	Parch    int     `json:"Parch"`
	Fare     float64 `json:"Fare"`
	Embarked string  `json:"Embarked"`
}

// portNames maps embarkation codes to their display names.
var portNames = map[string]string{
	"C": "Cherbourg",
	"Q": "Queenstown",
	"S": "Southampton",
}

// Form declares the passenger controls with their bounds and defaults.
func Form() validation.Form {
	return validation.Form{Fields: []validation.FieldSpec{
		{
			Name:    "Pclass",
			Label:   "Passenger Class",
			Help:    "1st = Upper Class, 2nd = Middle Class, 3rd = Lower Class",
			Kind:    validation.KindInt,
			Control: validation.ControlSelect,
			Min:     1, Max: 3,
			Default: 1,
		},
		{
			Name:      "Sex",
			Label:     "Sex",
			Kind:      validation.KindEnum,
			Control:   validation.ControlRadio,
			Default:   "male",
			Lowercase: true,
			Options: []validation.Option{
				{Value: "male"},
				{Value: "female"},
			},
		},
		{
			Name:    "Age",
			Label:   "Age",
			Help:    "Age in years",
			Kind:    validation.KindInt,
			Control: validation.ControlNumber,
			Min:     0, Max: 100, Step: 1,
			Default: 30,
		},
		{
			Name:    "Embarked",
			Label:   "Port of Embarkation",
			Help:    "Port where passenger boarded the Titanic",
			Kind:    validation.KindEnum,
			Control: validation.ControlSelect,
			Default: "C",
			Options: []validation.Option{
				{Value: "C", Label: "Cherbourg"},
				{Value: "Q", Label: "Queenstown"},
				{Value: "S", Label: "Southampton"},
			},
		},
		{
			Name:    "SibSp",
			Label:   "Number of Siblings/Spouses Aboard",
			Help:    "Number of siblings or spouses traveling with the passenger",
			Kind:    validation.KindInt,
			Control: validation.ControlNumber,
			Min:     0, Max: 8,
			Default: 0,
		},
		{
			Name:    "Parch",
			Label:   "Number of Parents/Children Aboard",
			Help:    "Number of parents or children traveling with the passenger",
			Kind:    validation.KindInt,
			Control: validation.ControlNumber,
			Min:     0, Max: 6,
			Default: 0,
		},
		{
			Name:    "Fare",
			Label:   "Ticket Fare (in £)",
			Help:    "Ticket fare in pounds (£)",
			Kind:    validation.KindFloat,
			Control: validation.ControlSlider,
			Min:     0, Max: 600, Step: 0.5,
			Default: 32.0,
		},
	}}
}

func inputFromRecord(record map[string]interface{}) *Input {
	return &Input{
		Pclass:   int(record["Pclass"].(float64)),
		Sex:      record["Sex"].(string),
		Age:      int(record["Age"].(float64)),
		SibSp:    int(record["SibSp"].(float64)),
		Parch:    int(record["Parch"].(float64)),
		Fare:     record["Fare"].(float64),
		Embarked: record["Embarked"].(string),
	}
}

func (in *Input) row() model.Row {
	return model.Row{
		"Pclass":   float64(in.Pclass),
		"Sex":      in.Sex,
		"Age":      float64(in.Age),
		"SibSp":    float64(in.SibSp),
		"Parch":    float64(in.Parch),
		"Fare":     in.Fare,
		"Embarked": in.Embarked,
	}
}
