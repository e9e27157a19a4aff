package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// maxRequestBody caps request bodies. All API payloads are small JSON
// documents, so 1 MiB is generous.
const maxRequestBody = 1 << 20

// Validator is implemented by request DTOs that check their own fields.
// A nil or empty slice means the request is valid.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate decodes the JSON request body into dest, rejecting
// unknown fields and trailing content, then runs Validate when dest
// implements Validator. On any failure it writes a 400 envelope and
// returns false; the caller should return immediately.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		msg := err.Error()
		if errors.Is(err, io.EOF) {
			msg = "request body is required"
		}
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, msg)
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "request body must contain a single JSON object")
		return false
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(errs, "; "))
			return false
		}
	}
	return true
}
