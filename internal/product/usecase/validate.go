package usecase

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shandysiswandi/goproduct/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goproduct/internal/product/entity"
)

type valueType string

const (
	typeString  valueType = "string"
	typeNumber  valueType = "number"
	typeBoolean valueType = "boolean"
)

type fieldRule struct {
	field    string
	required bool
	typ      valueType
	tag      string // validator tag for the length/range check, empty when none
	limit    int    // bound used in the tag, echoed in the violation message
}

//nolint:gochecknoglobals // static rule table
var productRules = []fieldRule{
	{field: "name", required: true, typ: typeString, tag: "min=2", limit: 2},
	{field: "description", typ: typeString},
	{field: "price", required: true, typ: typeNumber, tag: "gte=0", limit: 0},
	{field: "category", required: true, typ: typeString, tag: "min=2", limit: 2},
	{field: "inStock", required: true, typ: typeBoolean},
}

//nolint:gochecknoglobals // validator caches struct metadata, one instance is enough
var validate = validator.New()

// Validate checks a full product payload and returns every violation found.
// An empty result means the payload is valid.
func Validate(candidate map[string]any) []string {
	return validateFields(candidate, false)
}

// ValidatePatch checks only the fields present in candidate.
func ValidatePatch(candidate map[string]any) []string {
	return validateFields(candidate, true)
}

func validateFields(candidate map[string]any, patch bool) []string {
	violations := make([]string, 0)

	for _, rule := range productRules {
		raw, present := candidate[rule.field]
		if patch && !present {
			continue
		}

		if isBlank(raw) {
			if rule.required {
				violations = append(violations, fmt.Sprintf("'%s' is required.", rule.field))
			}
			continue
		}

		value, ok := coerce(rule.typ, raw)
		if !ok {
			violations = append(violations, fmt.Sprintf("'%s' must be of type %s.", rule.field, rule.typ))
			continue
		}

		if rule.tag == "" {
			continue
		}

		if err := validate.Var(value, rule.tag); err != nil {
			violations = append(violations, boundViolation(rule))
		}
	}

	return violations
}

func boundViolation(rule fieldRule) string {
	if rule.typ == typeString {
		return fmt.Sprintf("'%s' must be at least %d characters long.", rule.field, rule.limit)
	}
	return fmt.Sprintf("'%s' must be at least %d.", rule.field, rule.limit)
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

func coerce(typ valueType, v any) (any, bool) {
	switch typ {
	case typeString:
		s, ok := v.(string)
		return s, ok
	case typeBoolean:
		b, ok := v.(bool)
		return b, ok
	case typeNumber:
		return toNumber(v)
	default:
		return nil, false
	}
}

// toNumber accepts JSON numbers and numeric strings. Non-finite values are rejected.
func toNumber(v any) (float64, bool) {
	var (
		f   float64
		err error
	)

	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		f, err = n.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, false
	}

	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// validationError folds violations into the single error reported to clients.
func validationError(violations []string) error {
	return pkgerror.NewValidation("Validation failed: " + strings.Join(violations, " "))
}

// toFields converts an already validated payload. Blank or absent values stay nil.
func toFields(candidate map[string]any) entity.ProductFields {
	var fields entity.ProductFields

	if s, ok := candidate["name"].(string); ok && s != "" {
		fields.Name = &s
	}
	if s, ok := candidate["description"].(string); ok {
		fields.Description = &s
	}
	if f, ok := toNumber(candidate["price"]); ok {
		fields.Price = &f
	}
	if s, ok := candidate["category"].(string); ok && s != "" {
		fields.Category = &s
	}
	if b, ok := candidate["inStock"].(bool); ok {
		fields.InStock = &b
	}

	return fields
}
