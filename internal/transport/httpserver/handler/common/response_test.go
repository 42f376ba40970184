package common

import (
	"bytes"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"volunteer-tracker-go/internal/domain/accounting"
	"volunteer-tracker-go/pkg/logger"
)

func TestWriteJSONRendersPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, logger.NewNop(), http.StatusCreated, map[string]accounting.Cents{"penalty": 40000})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"penalty":400.00}`, rec.Body.String())
}

func TestWriteJSONUnencodablePayloadIsInternalError(t *testing.T) {
	var logs bytes.Buffer
	rec := httptest.NewRecorder()
	WriteJSON(rec, logger.New(&logs, slog.LevelDebug, "text"), http.StatusOK, map[string]float64{"totalHours": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"internal_error","message":"internal error"}}`, rec.Body.String())
	assert.Contains(t, logs.String(), "encode response failed")
	assert.Contains(t, logs.String(), "level=ERROR")
}
