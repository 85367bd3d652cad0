package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"quotedesk/apperr"
)

// ErrorBody is the JSON envelope of every failed API response.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine-readable code and a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorJSON writes err as an error envelope with the matching status code.
// Internal causes are logged but never sent to the client.
func ErrorJSON(e *core.RequestEvent, err error) error {
	status := apperr.HTTPStatus(err)
	log := RequestLogger(e)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
	} else {
		log.Debug("request rejected", zap.Int("status", status), zap.Error(err))
	}
	return e.JSON(status, ErrorBody{Error: ErrorDetail{
		Code:    apperr.Code(err),
		Message: apperr.Message(err),
	}})
}

// readJSON decodes the request body into dst and, when dst can validate
// itself, validates it. Both failures are INPUT_ERROR.
func readJSON(e *core.RequestEvent, dst any) error {
	decoder := json.NewDecoder(e.Request.Body)
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Input("request body is empty")
		}
		return apperr.Wrap(apperr.TypeInput, "malformed JSON body", err)
	}
	if v, ok := dst.(validation.Validatable); ok {
		if err := v.Validate(); err != nil {
			return apperr.Wrap(apperr.TypeInput, err.Error(), err)
		}
	}
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// sanitizeFilename keeps a download name to a safe character set.
func sanitizeFilename(name string) string {
	clean := unsafeFilenameChars.ReplaceAllString(name, "_")
	if clean == "" {
		return "export"
	}
	return clean
}
