package dto

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/leapyear-service/internal/domain"
	"github.com/jsamuelsen11/leapyear-service/internal/domain/calendar"
)

const (
	msgRequired   = "is required"
	msgNotInteger = "must be a valid integer"
)

var validate = newValidator()

// newValidator returns a validator that reports fields by their JSON name so
// that problem responses use the same names clients send.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// BatchRequest represents the JSON body of a batch query.
type BatchRequest struct {
	Years []int64 `json:"years" validate:"required,min=1"`
}

// Validate checks that at least one year is present.
// Returns a *domain.ValidationError if any checks fail.
func (r *BatchRequest) Validate() error {
	return structErrors(validate.Struct(r), "body.")
}

// RangeQuery holds the from/to query parameters of range and count queries.
type RangeQuery struct {
	From *int64 `json:"from" validate:"required"`
	To   *int64 `json:"to" validate:"required"`

	malformed map[string]string
}

// ParseRangeQuery reads from and to out of the query string. Non-integer
// values are remembered and reported by Validate alongside missing ones.
func ParseRangeQuery(values url.Values) *RangeQuery {
	q := &RangeQuery{malformed: make(map[string]string)}
	q.From = q.parse(values, "from")
	q.To = q.parse(values, "to")
	return q
}

func (q *RangeQuery) parse(values url.Values, name string) *int64 {
	raw := values.Get(name)
	if raw == "" {
		return nil
	}
	n, err := ParseYear(raw)
	if err != nil {
		q.malformed["query."+name] = msgNotInteger
		return nil
	}
	return &n
}

// Validate reports missing and malformed parameters together.
// Returns a *domain.ValidationError if any checks fail.
func (q *RangeQuery) Validate() error {
	fields := make(map[string]string, len(q.malformed))
	for k, v := range q.malformed {
		fields[k] = v
	}

	var verr *domain.ValidationError
	if err := structErrors(validate.Struct(q), "query."); errors.As(err, &verr) {
		for k, v := range verr.Fields {
			if _, ok := fields[k]; !ok {
				fields[k] = v
			}
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Range returns the parsed range. Only meaningful after Validate returns nil.
func (q *RangeQuery) Range() calendar.Range {
	return calendar.Range{From: *q.From, To: *q.To}
}

// ParseYear parses a base-10 year. Leading '+' and '-' signs are accepted.
func ParseYear(raw string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing year %q: %w", raw, err)
	}
	return n, nil
}

// structErrors translates validator errors into a *domain.ValidationError
// whose field names carry the given location prefix.
func structErrors(err error, prefix string) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[prefix+fe.Field()] = fieldMessage(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "min":
		return "must contain at least " + fe.Param() + " item(s)"
	case "max":
		return "must contain at most " + fe.Param() + " item(s)"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
