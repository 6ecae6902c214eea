package client

import (
	"github.com/antonio-alexander/go-bizadmin/internal/data"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeResponse converts an envelope into the backend response union and
// validates it at the boundary.
func decodeResponse(envelope Envelope) (*data.Response, error) {
	response := &data.Response{}
	if err := envelope.Decode(response); err != nil {
		return nil, err
	}
	if err := validate.Struct(response); err != nil {
		return nil, malformed("%s", err)
	}
	return response, nil
}

// validateItem validates a single item extracted from a response, nil
// counts as missing.
func validateItem[T any](item *T, name string) (*T, error) {
	if item == nil {
		return nil, malformed("missing %s", name)
	}
	if err := validate.Struct(item); err != nil {
		return nil, malformed("%s: %s", name, err)
	}
	return item, nil
}
