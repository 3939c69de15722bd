package commons

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "laundrypos/internal/errors"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{100, "100.00"},
		{1234.5, "1,234.50"},
		{1234567.891, "1,234,567.89"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.in))
		})
	}
}

type sampleRequest struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact" validate:"required,numeric"`
}

func TestValidateStruct(t *testing.T) {
	err := ValidateStruct(sampleRequest{Name: "Juan", Contact: "0917"}, nil)
	assert.NoError(t, err)

	err = ValidateStruct(sampleRequest{Contact: "abc"}, map[string]string{
		"name": "Please fill in all customer details.",
	})
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Please fill in all customer details.", ve.Message)
	require.Len(t, ve.Details, 2)
	assert.Equal(t, "name", ve.Details[0].Field)
	assert.Equal(t, "contact", ve.Details[1].Field)
	assert.Equal(t, "contact must contain only digits", ve.Details[1].Message)
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Load int `json:"load"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"load": 2}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, 2, dst.Load)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"load": 1.5}`))
	ve, ok := apperrors.IsValidationError(DecodeJSON(r, &dst))
	require.True(t, ok)
	assert.Equal(t, "load", ve.Details[0].Field)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	ve, ok = apperrors.IsValidationError(DecodeJSON(r, &dst))
	require.True(t, ok)
	assert.Equal(t, "request body must not be empty", ve.Details[0].Message)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	_, ok = apperrors.IsValidationError(DecodeJSON(r, &dst))
	assert.True(t, ok)
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", apperrors.NewNotFoundError("order not found"), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", apperrors.NewConflictError(`Customer name "Juan" already exists!`), http.StatusConflict, "CONFLICT"},
		{"calculation", apperrors.NewCalculationError("Calculation failed."), http.StatusUnprocessableEntity, "CALCULATION_FAILED"},
		{"internal", InternalSaveError(errors.New("disk full")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleError(w, "trace-1", tt.err, zap.NewNop())

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, "trace-1", resp.TraceID)
		})
	}
}

func TestHandleError_InternalHidesCause(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, "t", InternalSaveError(errors.New("disk full")), zap.NewNop())

	assert.NotContains(t, w.Body.String(), "disk full")
	assert.Contains(t, w.Body.String(), "Please try again.")
}

func TestHandleError_Validation(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, "t", apperrors.NewValidationError("Please enter a valid weight.", apperrors.ValidationDetail{
		Field: "weight", Message: "Please enter a valid weight.",
	}), zap.NewNop())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error)
	assert.Equal(t, "weight", resp.Details[0].Field)
}
