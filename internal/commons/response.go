package commons

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	apperrors "laundrypos/internal/errors"
)

const genericSaveMessage = "An error occurred while saving. Please try again."

type ErrorResponse struct {
	TraceID   string    `json:"traceId"`
	Status    int       `json:"status"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationErrorResponse struct {
	TraceID string                       `json:"traceId"`
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func WriteJSON(w http.ResponseWriter, status int, data any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func WriteValidationError(w http.ResponseWriter, traceID, message string, logger *zap.Logger, details ...apperrors.ValidationDetail) {
	if details == nil {
		details = []apperrors.ValidationDetail{}
	}
	WriteJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		TraceID: traceID,
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	}, logger)
}

func WriteErrorResponse(w http.ResponseWriter, traceID string, status int, code, message string, logger *zap.Logger) {
	WriteJSON(w, status, ErrorResponse{
		TraceID:   traceID,
		Status:    status,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}, logger)
}

// HandleError maps a use case error onto its HTTP status. Unknown errors are
// logged and answered with a generic message.
func HandleError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		WriteValidationError(w, traceID, ve.Message, logger, ve.Details...)
		return
	}
	if _, ok := apperrors.IsNotFoundError(err); ok {
		WriteErrorResponse(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error(), logger)
		return
	}
	if _, ok := apperrors.IsConflictError(err); ok {
		WriteErrorResponse(w, traceID, http.StatusConflict, "CONFLICT", err.Error(), logger)
		return
	}
	if _, ok := apperrors.IsCalculationError(err); ok {
		WriteErrorResponse(w, traceID, http.StatusUnprocessableEntity, "CALCULATION_FAILED", err.Error(), logger)
		return
	}
	if ie, ok := apperrors.IsInternalError(err); ok {
		logger.Error("internal error", zap.Error(err))
		WriteErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", ie.Message, logger)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	WriteErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred", logger)
}

// DecodeJSON reads a JSON body into dst. An empty body is rejected, unknown
// fields are not.
func DecodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   typeErr.Field,
			Message: typeErr.Field + " has an invalid type, expected " + typeErr.Type.String(),
		})
	}

	msg := "request body must be valid JSON"
	if errors.Is(err, io.EOF) {
		msg = "request body must not be empty"
	}
	return apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
		Field:   "body",
		Message: msg,
	})
}

// InternalSaveError wraps a persistence failure with the message shown to
// the user.
func InternalSaveError(cause error) error {
	return apperrors.NewInternalError(genericSaveMessage, cause)
}
