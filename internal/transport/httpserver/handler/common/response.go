package common

import (
	"encoding/json"
	"net/http"

	"volunteer-tracker-go/pkg/logger"
)

var internalErrorBody = []byte(`{"error":{"code":"internal_error","message":"internal error"}}` + "\n")

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Error envelopes hold only strings, so they always encode.
func writeError(w http.ResponseWriter, status int, code, message string) {
	_ = writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func writeFieldError(w http.ResponseWriter, field, message string) {
	_ = writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: errorBody{
		Code:    "validation_failed",
		Message: message,
		Field:   field,
	}})
}

// writeJSON encodes payload before touching the response. A payload that
// cannot be encoded is answered with 500 internal_error and the encode error
// is returned.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		writeBody(w, http.StatusInternalServerError, internalErrorBody)
		return err
	}
	writeBody(w, status, append(body, '\n'))
	return nil
}

func writeBody(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	writeError(w, status, code, message)
}

func WriteJSON(w http.ResponseWriter, log logger.Logger, status int, payload interface{}) {
	if err := writeJSON(w, status, payload); err != nil {
		log.InternalError("http: encode response failed", err, "status", status)
	}
}

func DecodeJSON(r *http.Request, dst interface{}) error {
	return decodeJSON(r, dst)
}

func Unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
}
