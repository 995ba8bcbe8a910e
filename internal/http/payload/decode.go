package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

var ErrEmptyBody error = errors.New("request body is empty")

type Decoder struct{}

// DecodeJSONPayload decodes the request body into object and runs its
// Validate method when it has one.
func (d Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	if err = json.NewDecoder(r.Body).Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return validatePayload(object)
}

func validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
