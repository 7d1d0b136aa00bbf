package controllers

import (
	"fmt"
	"net/http"

	"family-health-service/internal/app/contracts"
	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/exceptions"
	"family-health-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// requestIDFromContext logs the "called" line for operation and answers the
// request itself when the id is missing.
func requestIDFromContext(log *zap.Logger, w http.ResponseWriter, r *http.Request, operation string) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		log.Error(operation + " requestID not found in context")
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return requestID, true
}

func decodeJSON(log *zap.Logger, w http.ResponseWriter, r *http.Request, operation, requestID string, request interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		log.Error(operation+" error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrCannotParseJSON(err))
		return false
	}
	return true
}

func validateRequest(log *zap.Logger, w http.ResponseWriter, operation, requestID string, request interface{}) bool {
	if err := utils.ValidateStruct(request); err != nil {
		log.Error(operation+" validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrInputValidation(err))
		return false
	}
	return true
}

func respondError(log *zap.Logger, w http.ResponseWriter, operation, requestID string, err error) {
	log.Error(operation+" error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	utils.BuildErrorResponse(log, w, err)
}

func respondSuccess(log *zap.Logger, w http.ResponseWriter, operation, requestID string, code int, message string, data interface{}) {
	log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, code, message, data)
}

// currentMember resolves the member every member-scoped endpoint works on.
func currentMember(log *zap.Logger, w http.ResponseWriter, store contracts.HouseholdStore, operation, requestID string) (models.FamilyMember, bool) {
	member, err := store.CurrentMember()
	if err != nil {
		respondError(log, w, operation, requestID, err)
		return models.FamilyMember{}, false
	}
	return member, true
}

func entityMessage(format, entity string) string {
	return fmt.Sprintf(format, entity)
}
