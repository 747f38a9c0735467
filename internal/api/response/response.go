// Package response renders the JSON envelope shared by every endpoint.
package response

import (
	"errors"
	"net/http"
	"strings"

	apperrors "identity-org-backend/internal/errors"
	"identity-org-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess    = "success"
	StatusBadRequest = "Bad request"

	MessageValidationFailed     = "Validation failed"
	MessageInvalidBody          = "Invalid request body"
	MessageInternalError        = "Internal server error"
	MessageAuthenticationFailed = "Authentication failed"
	MessageUnauthenticated      = "Authentication required"
	MessageRegistrationFailed   = "Registration unsuccessful"
	MessageEmailExists          = "Email already exists"
	MessageOrganisationExists   = "Organisation with this name already exists"
	MessageAlreadyMember        = "User already in organisation"
)

// Envelope is the body of every response
type Envelope struct {
	Status     string                      `json:"status" example:"success"`
	Message    string                      `json:"message" example:"Organisation retrieved"`
	Data       interface{}                 `json:"data,omitempty"`
	Errors     []apperrors.ValidationError `json:"errors,omitempty"`
	StatusCode int                         `json:"statusCode,omitempty" example:"200"`
}

// Success writes a success envelope
func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Failure writes a failure envelope carrying the status code in the body
func Failure(c *gin.Context, status int, message string, fieldErrors []apperrors.ValidationError) {
	c.JSON(status, Envelope{
		Status:     StatusBadRequest,
		Message:    message,
		Errors:     fieldErrors,
		StatusCode: status,
	})
}

// InvalidBody answers a request whose JSON could not be decoded
func InvalidBody(c *gin.Context) {
	Failure(c, http.StatusBadRequest, MessageInvalidBody, nil)
}

// Error maps err onto the envelope. Not-found and access-denied share one 404 message
// so callers cannot learn whether records they may not see exist.
func Error(c *gin.Context, err error) {
	status, message, fieldErrors := Classify(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("request failed")
	}
	Failure(c, status, message, fieldErrors)
}

// Classify returns the HTTP status, message and field errors for err
func Classify(err error) (int, string, []apperrors.ValidationError) {
	if fieldErrors, ok := apperrors.AsValidationErrors(err); ok {
		return http.StatusUnprocessableEntity, MessageValidationFailed, fieldErrors
	}

	switch {
	case apperrors.IsAlreadyExists(err):
		return classifyConflict(err)
	case apperrors.IsAuthentication(err):
		if errors.Is(err, apperrors.ErrUnauthenticated) {
			return http.StatusUnauthorized, MessageUnauthenticated, nil
		}
		return http.StatusUnauthorized, MessageAuthenticationFailed, nil
	case apperrors.IsNotFound(err), apperrors.IsAuthorization(err):
		return http.StatusNotFound, notFoundOrDenied(err), nil
	}

	return http.StatusInternalServerError, MessageInternalError, nil
}

func classifyConflict(err error) (int, string, []apperrors.ValidationError) {
	switch {
	case errors.Is(err, apperrors.ErrEmailExists):
		return http.StatusBadRequest, MessageRegistrationFailed, []apperrors.ValidationError{
			{Field: "email", Message: MessageEmailExists},
		}
	case errors.Is(err, apperrors.ErrOrganisationNameExists):
		return http.StatusBadRequest, MessageOrganisationExists, nil
	case errors.Is(err, apperrors.ErrAlreadyMember):
		return http.StatusBadRequest, MessageAlreadyMember, nil
	}
	return http.StatusBadRequest, err.Error(), nil
}

// notFoundOrDenied renders "<Entity> not found or access denied"
func notFoundOrDenied(err error) string {
	var entity string
	var notFound *apperrors.NotFoundError
	var denied *apperrors.AuthorizationError
	switch {
	case errors.As(err, &notFound):
		entity = notFound.Entity
	case errors.As(err, &denied):
		entity = denied.Entity
	}
	if entity == "" {
		return "Resource not found or access denied"
	}
	return strings.ToUpper(entity[:1]) + entity[1:] + " not found or access denied"
}
