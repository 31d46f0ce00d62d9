// ABOUTME: Input floor validation for design parameters
// ABOUTME: Reports every violated field by its JSON name before a calculation runs

package services

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/markalston/drone-design-calculator/backend/models"
)

// ErrInvalidInput is returned when design inputs fall outside the accepted floors
var ErrInvalidInput = errors.New("invalid design inputs")

// FieldViolation describes one rejected input field
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// InvalidInputError lists every field that failed validation
type InvalidInputError struct {
	Fields []FieldViolation
}

func (e *InvalidInputError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

// Unwrap lets errors.Is match ErrInvalidInput
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func inputValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidateInputs checks the inputs against the presentation floors. It returns
// nil or an *InvalidInputError wrapping ErrInvalidInput.
func ValidateInputs(in models.DesignInputs) error {
	err := inputValidator().Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	out := &InvalidInputError{}
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		out.Fields = append(out.Fields, FieldViolation{
			Field:   field,
			Rule:    fe.Tag() + "=" + fe.Param(),
			Message: violationMessage(field, fe),
		})
	}
	return out
}

// CheckFinite rejects results that overflowed float64. The floors have no
// ceilings, so very large inputs can push a metric to ±Inf, which JSON
// cannot carry.
func CheckFinite(metrics models.DesignMetrics) error {
	out := &InvalidInputError{}
	for _, m := range metrics.Metrics {
		if math.IsInf(m.Value, 0) || math.IsNaN(m.Value) {
			out.Fields = append(out.Fields, FieldViolation{
				Field:   string(m.Key),
				Rule:    "finite",
				Message: fmt.Sprintf("%s overflows; inputs are too large", m.Key),
			})
		}
	}
	if len(out.Fields) == 0 {
		return nil
	}
	return out
}

// fieldPath drops the struct type prefix from a validator namespace
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func violationMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be at least %s (got %v)", field, fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s (got %v)", field, strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
