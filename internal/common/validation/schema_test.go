package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestForm() Form {
	return Form{Fields: []FieldSpec{
		{
			Name:    "weight",
			Label:   "Weight",
			Kind:    KindFloat,
			Control: ControlNumber,
			Min:     10, Max: 100,
			Default: 50.0,
		},
		{
			Name:    "count",
			Label:   "Count",
			Kind:    KindInt,
			Control: ControlSlider,
			Min:     0, Max: 10,
			Default: 3,
		},
		{
			Name:      "color",
			Label:     "Color",
			Kind:      KindEnum,
			Control:   ControlRadio,
			Default:   "red",
			Lowercase: true,
			Options: []Option{
				{Value: "red"},
				{Value: "blue"},
			},
		},
	}}
}

// ==========================
// Collect Tests
// ==========================

func TestForm_Collect_AppliesDefaults(t *testing.T) {
	form := createTestForm()

	record, result := form.Collect(map[string]interface{}{})

	require.True(t, result.Valid)
	assert.Equal(t, 50.0, record["weight"])
	assert.Equal(t, 3.0, record["count"])
	assert.Equal(t, "red", record["color"])
}

func TestForm_Collect_AcceptsSubmittedValues(t *testing.T) {
	form := createTestForm()

	record, result := form.Collect(map[string]interface{}{
		"weight": 72.5,
		"count":  7,
		"color":  "blue",
	})

	require.True(t, result.Valid)
	assert.Equal(t, 72.5, record["weight"])
	assert.Equal(t, 7.0, record["count"])
	assert.Equal(t, "blue", record["color"])
}

func TestForm_Collect_NormalizesEnumCasing(t *testing.T) {
	form := createTestForm()

	record, result := form.Collect(map[string]interface{}{"color": "Blue"})

	require.True(t, result.Valid)
	assert.Equal(t, "blue", record["color"])
}

func TestForm_Collect_DoesNotMutateInput(t *testing.T) {
	form := createTestForm()
	values := map[string]interface{}{"weight": 72.5}

	record, result := form.Collect(values)

	require.True(t, result.Valid)
	assert.Len(t, values, 1)
	record["weight"] = 99.0
	assert.Equal(t, 72.5, values["weight"])
}

func TestForm_Collect_ValidationErrors(t *testing.T) {
	tests := []struct {
		name         string
		values       map[string]interface{}
		expectedCode string
		field        string
	}{
		{
			name:         "below minimum",
			values:       map[string]interface{}{"weight": 5.0},
			expectedCode: "OUT_OF_RANGE",
			field:        "weight",
		},
		{
			name:         "above maximum",
			values:       map[string]interface{}{"count": 11},
			expectedCode: "OUT_OF_RANGE",
			field:        "count",
		},
		{
			name:         "boundary values pass",
			values:       map[string]interface{}{"weight": 10.0, "count": 10},
			expectedCode: "",
		},
		{
			name:         "fractional value for int field",
			values:       map[string]interface{}{"count": 2.5},
			expectedCode: "INVALID_TYPE",
			field:        "count",
		},
		{
			name:         "non-numeric value",
			values:       map[string]interface{}{"weight": "heavy"},
			expectedCode: "INVALID_TYPE",
			field:        "weight",
		},
		{
			name:         "unknown enum value",
			values:       map[string]interface{}{"color": "green"},
			expectedCode: "INVALID_ENUM_VALUE",
			field:        "color",
		},
		{
			name:         "extra field rejected",
			values:       map[string]interface{}{"height": 180},
			expectedCode: "EXTRA_FIELD",
			field:        "height",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := createTestForm()

			record, result := form.Collect(tt.values)

			if tt.expectedCode == "" {
				require.True(t, result.Valid)
				assert.NotNil(t, record)
				return
			}

			require.False(t, result.Valid)
			assert.Nil(t, record)
			require.NotEmpty(t, result.Errors)
			assert.Equal(t, tt.expectedCode, result.Errors[0].Code)
			assert.Equal(t, tt.field, result.Errors[0].Field)
			assert.NotEmpty(t, result.ErrorString())
		})
	}
}

func TestForm_Collect_CollectsAllErrors(t *testing.T) {
	form := createTestForm()

	_, result := form.Collect(map[string]interface{}{
		"weight": 5.0,
		"color":  "green",
	})

	require.False(t, result.Valid)
	assert.Len(t, result.Errors, 2)
}

// ==========================
// JSONSchema Tests
// ==========================

func TestForm_JSONSchema(t *testing.T) {
	form := createTestForm()

	schema := form.JSONSchema()

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, false, schema["additionalProperties"])

	properties := schema["properties"].(map[string]interface{})
	require.Len(t, properties, 3)

	weight := properties["weight"].(map[string]interface{})
	assert.Equal(t, "number", weight["type"])
	assert.Equal(t, 10.0, weight["minimum"])
	assert.Equal(t, 100.0, weight["maximum"])

	count := properties["count"].(map[string]interface{})
	assert.Equal(t, "integer", count["type"])

	color := properties["color"].(map[string]interface{})
	assert.Equal(t, "string", color["type"])
	assert.Equal(t, "red", color["default"])
}
