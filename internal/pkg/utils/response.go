package utils

import (
	"errors"
	"medplan-service/internal/pkg/constvars"
	"medplan-service/internal/pkg/dto/responses"
	"medplan-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication
	var details map[string]interface{}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		details = customErr.Details
		log.Error("request failed",
			zap.Int(constvars.LoggingStatusCodeKey, code),
			zap.String("dev_message", customErr.DevMessage),
		)
	} else {
		log.Error("request failed with unhandled error", zap.Error(err))
	}

	response := responses.ResponseDTO{
		Success: false,
		Message: clientMessage,
		Details: details,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}
