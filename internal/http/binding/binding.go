package binding

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var (
	// ErrNoData means the body was empty, not JSON, or not a non-empty object.
	ErrNoData = errors.New("no data provided")
	// ErrInvalidFields means the object decoded but failed field validation.
	ErrInvalidFields = errors.New("invalid fields")
	// ErrTooLarge means the body exceeded the configured size limit.
	ErrTooLarge = errors.New("request body too large")
)

// BindAndValidate reads a JSON object into dst and runs validation with
// tags `validate:"..."`. Values of the wrong JSON type count as invalid
// fields, not as missing data.
func BindAndValidate[T any](r *http.Request, dst *T) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return ErrTooLarge
		}
		return ErrNoData
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil || len(obj) == 0 {
		return ErrNoData
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return errors.Join(ErrInvalidFields, err)
	}

	if err := validate.Struct(dst); err != nil {
		return errors.Join(ErrInvalidFields, err)
	}

	return nil
}
