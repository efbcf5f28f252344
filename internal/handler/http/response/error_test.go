package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hazari-app/hazari-backend-go/internal/domain/attendance"
	"github.com/hazari-app/hazari-backend-go/internal/domain/auth"
	"github.com/hazari-app/hazari-backend-go/internal/domain/labour"
	"github.com/hazari-app/hazari-backend-go/internal/domain/leave"
	"github.com/hazari-app/hazari-backend-go/internal/domain/user"
	"github.com/hazari-app/hazari-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"username taken", auth.ErrUsernameTaken, http.StatusConflict, "CONFLICT"},
		{"contractor access required", user.ErrContractorAccessRequired, http.StatusForbidden, "FORBIDDEN"},
		{"labour not found", labour.ErrLabourNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"phone already registered", labour.ErrPhoneAlreadyRegistered, http.StatusConflict, "CONFLICT"},
		{"no check-in today", attendance.ErrNoCheckInToday, http.StatusNotFound, "NOT_FOUND"},
		{"leave not found", leave.ErrLeaveNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"leave already processed", leave.ErrLeaveAlreadyProcessed, http.StatusConflict, "CONFLICT"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()

	errs := validator.ValidationErrors{
		{Field: "labourId", Message: "labourId is required"},
		{Field: "latitude", Message: "latitude must be between -90 and 90"},
	}

	HandleError(rec, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "labourId is required", body.Error.Details["labourId"])
	assert.Equal(t, "latitude must be between -90 and 90", body.Error.Details["latitude"])
}
