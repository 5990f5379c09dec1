package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPayload() map[string]any {
	return map[string]any{
		"name":        "Lamp",
		"description": "Desk lamp",
		"price":       19.99,
		"category":    "home",
		"inStock":     true,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		want    []string
	}{
		{
			name:    "valid",
			payload: validPayload(),
			want:    []string{},
		},
		{
			name:    "empty payload reports every required field",
			payload: map[string]any{},
			want: []string{
				"'name' is required.",
				"'price' is required.",
				"'category' is required.",
				"'inStock' is required.",
			},
		},
		{
			name:    "all checks accumulate",
			payload: map[string]any{"name": "a", "price": -1.0, "category": "x", "inStock": "yes"},
			want: []string{
				"'name' must be at least 2 characters long.",
				"'price' must be at least 0.",
				"'category' must be at least 2 characters long.",
				"'inStock' must be of type boolean.",
			},
		},
		{
			name:    "null and empty string count as missing",
			payload: map[string]any{"name": "", "price": nil, "category": "home", "inStock": false},
			want:    []string{"'name' is required.", "'price' is required."},
		},
		{
			name:    "wrong type skips the length check",
			payload: map[string]any{"name": 7.0, "price": 1.0, "category": []any{"a"}, "inStock": true},
			want:    []string{"'name' must be of type string.", "'category' must be of type string."},
		},
		{
			name:    "optional description may be absent or null",
			payload: map[string]any{"name": "ab", "description": nil, "price": 0.0, "category": "cd", "inStock": false},
			want:    []string{},
		},
		{
			name:    "description must be a string when present",
			payload: map[string]any{"name": "ab", "description": 3.0, "price": 0.0, "category": "cd", "inStock": false},
			want:    []string{"'description' must be of type string."},
		},
		{
			name:    "numeric string price is accepted",
			payload: map[string]any{"name": "ab", "price": "12.50", "category": "cd", "inStock": true},
			want:    []string{},
		},
		{
			name:    "negative numeric string price",
			payload: map[string]any{"name": "ab", "price": "-3", "category": "cd", "inStock": true},
			want:    []string{"'price' must be at least 0."},
		},
		{
			name:    "non numeric price",
			payload: map[string]any{"name": "ab", "price": "cheap", "category": "cd", "inStock": true},
			want:    []string{"'price' must be of type number."},
		},
		{
			name:    "non finite price",
			payload: map[string]any{"name": "ab", "price": "NaN", "category": "cd", "inStock": true},
			want:    []string{"'price' must be of type number."},
		},
		{
			name:    "json number price",
			payload: map[string]any{"name": "ab", "price": json.Number("5"), "category": "cd", "inStock": true},
			want:    []string{},
		},
		{
			name:    "unknown fields are ignored",
			payload: map[string]any{"name": "ab", "price": 1.0, "category": "cd", "inStock": true, "color": "red", "id": "x"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.payload))
		})
	}
}

func TestValidatePatch(t *testing.T) {
	assert.Empty(t, ValidatePatch(map[string]any{}))
	assert.Empty(t, ValidatePatch(map[string]any{"price": 10.0}))
	assert.Equal(t, []string{"'name' is required."}, ValidatePatch(map[string]any{"name": ""}))
	assert.Equal(t, []string{"'price' must be at least 0."}, ValidatePatch(map[string]any{"price": -5.0}))
	assert.Equal(t, []string{"'inStock' must be of type boolean."}, ValidatePatch(map[string]any{"inStock": "no"}))
}

func TestValidateMultibyteLength(t *testing.T) {
	payload := validPayload()
	payload["name"] = "日本"
	assert.Empty(t, Validate(payload))

	payload["name"] = "日"
	assert.Equal(t, []string{"'name' must be at least 2 characters long."}, Validate(payload))
}

func TestToFields(t *testing.T) {
	fields := toFields(map[string]any{
		"name":     "Lamp",
		"price":    "7.5",
		"category": "home",
		"inStock":  false,
		"extra":    1,
	})

	if assert.NotNil(t, fields.Name) {
		assert.Equal(t, "Lamp", *fields.Name)
	}
	if assert.NotNil(t, fields.Price) {
		assert.Equal(t, 7.5, *fields.Price)
	}
	if assert.NotNil(t, fields.InStock) {
		assert.False(t, *fields.InStock)
	}
	assert.Nil(t, fields.Description)
}
