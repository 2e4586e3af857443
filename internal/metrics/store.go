package metrics

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/csm-portfolio/internal/schemas"
	"github.com/jonathan/csm-portfolio/internal/types"
	schemafiles "github.com/jonathan/csm-portfolio/schemas"
)

var (
	documentSchema     *schemas.Schema
	documentSchemaErr  error
	documentSchemaOnce sync.Once

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func metricsSchema() (*schemas.Schema, error) {
	documentSchemaOnce.Do(func() {
		content, err := schemafiles.Load(schemafiles.MetricsSchema)
		if err != nil {
			documentSchemaErr = err
			return
		}
		documentSchema, documentSchemaErr = schemas.Compile(schemafiles.MetricsSchema, content)
	})
	return documentSchema, documentSchemaErr
}

// Store is the read-only collection of metrics, in authored order.
// It never changes after construction and is safe for concurrent use.
type Store struct {
	metrics []types.Metric
	byID    map[string]int
}

// LoadFile loads a metric store from a JSON file
func LoadFile(path string) (*Store, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	store, err := Load(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store, nil
}

// Load validates a metrics document and builds a store from it.
// Schema violations and broken invariants are reported as *IntegrityError,
// unreadable input as *LoadError.
func Load(content []byte) (*Store, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, &LoadError{Message: "metrics document is empty"}
	}

	schema, err := metricsSchema()
	if err != nil {
		return nil, &LoadError{Message: "metrics schema unavailable", Cause: err}
	}

	if err := schema.Validate(content); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, schemaIntegrityError(validationErr)
		}
		return nil, &LoadError{Message: "failed to parse metrics document", Cause: err}
	}

	var doc types.MetricsDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return NewStore(doc.Metrics)
}

// NewStore builds a store from in-memory metrics, enforcing the same invariants as Load.
// The slice is copied.
func NewStore(metrics []types.Metric) (*Store, error) {
	var violations []Violation
	byID := make(map[string]int, len(metrics))

	for i := range metrics {
		violations = append(violations, checkMetric(i, &metrics[i])...)

		id := metrics[i].ID
		if id == "" {
			continue
		}
		if first, dup := byID[id]; dup {
			violations = append(violations, Violation{
				Index:   i,
				Field:   "id",
				Message: fmt.Sprintf("duplicate id %q (first used by metrics[%d])", id, first),
			})
			continue
		}
		byID[id] = i
	}

	if len(violations) > 0 {
		return nil, &IntegrityError{Violations: violations}
	}

	owned := make([]types.Metric, len(metrics))
	copy(owned, metrics)

	return &Store{metrics: owned, byID: byID}, nil
}

// checkMetric applies the struct-tag rules plus the value rule the tags cannot express.
func checkMetric(index int, m *types.Metric) []Violation {
	var violations []Violation

	if err := validate.Struct(m); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				violations = append(violations, Violation{
					Index:   index,
					Field:   fe.Field(),
					Message: describeFieldError(fe),
				})
			}
		} else {
			violations = append(violations, Violation{Index: index, Field: "(record)", Message: err.Error()})
		}
	}

	if m.Value.IsZero() {
		violations = append(violations, Violation{Index: index, Field: "value", Message: "is required"})
	}

	return violations
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("%q is not one of [%s]", fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func schemaIntegrityError(err *schemas.ValidationError) *IntegrityError {
	violations := make([]Violation, 0, len(err.Errors))
	for _, fe := range err.Errors {
		violations = append(violations, Violation{
			Index:   -1,
			Field:   fe.Field,
			Message: fe.Message,
		})
	}
	return &IntegrityError{Violations: violations}
}

// All returns every metric in authored order
func (s *Store) All() []types.Metric {
	out := make([]types.Metric, len(s.metrics))
	copy(out, s.metrics)
	return out
}

// Len returns the number of metrics in the store
func (s *Store) Len() int {
	return len(s.metrics)
}

// ByID looks up a single metric
func (s *Store) ByID(id string) (types.Metric, bool) {
	i, ok := s.byID[id]
	if !ok {
		return types.Metric{}, false
	}
	return s.metrics[i], true
}
