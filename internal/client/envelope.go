package client

import (
	"bytes"
	"encoding/json"
	"mime"
	"strings"

	"github.com/pkg/errors"
)

// Envelope is the raw JSON value of a response, nil when the response body
// was empty or not JSON.
type Envelope json.RawMessage

func (e Envelope) Empty() bool {
	return len(e) == 0
}

// Decode unmarshals the envelope into v; an empty envelope can't satisfy a
// typed caller and is reported as malformed.
func (e Envelope) Decode(v any) error {
	if e.Empty() {
		return malformed("empty response")
	}
	if err := json.Unmarshal(e, v); err != nil {
		return malformed("%s", err)
	}
	return nil
}

// Value returns the untyped JSON value (map, slice, string, float64, bool
// or nil).
func (e Envelope) Value() (any, error) {
	var value any

	if e.Empty() {
		return nil, nil
	}
	if err := json.Unmarshal(e, &value); err != nil {
		return nil, malformed("%s", err)
	}
	return value, nil
}

func (e Envelope) MarshalJSON() ([]byte, error) {
	if e.Empty() {
		return []byte("null"), nil
	}
	return e, nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}
	return strings.Contains(mediaType, "application/json") ||
		strings.HasSuffix(mediaType, "+json")
}

func parseEnvelope(contentType string, body []byte) (Envelope, error) {
	if !isJSON(contentType) {
		return nil, nil
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}
	if !json.Valid(body) {
		return nil, errors.Wrap(ErrMalformedResponse, "invalid json body")
	}
	return Envelope(body), nil
}
