package service

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/antonio-alexander/go-bizadmin/internal"
	"github.com/antonio-alexander/go-bizadmin/internal/data"
	"github.com/antonio-alexander/go-bizadmin/internal/logic"

	"github.com/pkg/errors"
)

// maxBodySize bounds JSON request bodies.
const maxBodySize int64 = 1 << 20

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func getCorrelationId(request *http.Request) string {
	if correlationId := request.Header.Get(data.HeaderCorrelationId); correlationId != "" {
		return correlationId
	}
	return internal.GenerateId()
}

func sessionToken(request *http.Request) string {
	cookie, err := request.Cookie(data.CookieSession)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func readJSON(request *http.Request, item any) error {
	defer request.Body.Close()

	byts, err := io.ReadAll(io.LimitReader(request.Body, maxBodySize))
	if err != nil {
		return errors.Wrap(logic.ErrInvalid, "unable to read request body")
	}
	if len(byts) == 0 {
		return errors.Wrap(logic.ErrInvalid, "request body is empty")
	}
	if err := json.Unmarshal(byts, item); err != nil {
		return errors.Wrapf(logic.ErrInvalid, "malformed request body: %s", err)
	}
	return nil
}

func errorStatus(err error) int {
	switch {
	default:
		return http.StatusInternalServerError
	case errors.Is(err, logic.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, logic.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, logic.ErrForbidden), errors.Is(err, logic.ErrMutateDisabled):
		return http.StatusForbidden
	case errors.Is(err, logic.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, logic.ErrConflict):
		return http.StatusConflict
	}
}

// handleResponse writes err as a {"message"} body with a status derived from
// it; otherwise it writes the first item with statusCode, or 204 when there
// is no item.
func handleResponse(writer http.ResponseWriter, statusCode int, err error, items ...any) {
	var byts []byte

	if err == nil {
		if len(items) == 0 {
			writer.WriteHeader(http.StatusNoContent)
			return
		}
		byts, err = json.Marshal(items[0])
	}
	if err != nil {
		statusCode = errorStatus(err)
		if byts, err = json.Marshal(&data.Message{Message: err.Error()}); err != nil {
			writer.WriteHeader(http.StatusInternalServerError)
			return
		}
	}
	writer.Header().Set(data.HeaderContentType, data.ContentTypeJSONCharsetUTF8)
	writer.WriteHeader(statusCode)
	_, _ = writer.Write(byts)
}
