package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "identity-org-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Error(c, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	return recorder, env
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", apperrors.ValidationErrors{{Field: "email", Message: "Email is required"}}, http.StatusUnprocessableEntity, MessageValidationFailed},
		{"duplicate email", apperrors.ErrEmailExists, http.StatusBadRequest, MessageRegistrationFailed},
		{"duplicate organisation name", apperrors.ErrOrganisationNameExists, http.StatusBadRequest, MessageOrganisationExists},
		{"already member", fmt.Errorf("add: %w", apperrors.ErrAlreadyMember), http.StatusBadRequest, MessageAlreadyMember},
		{"authentication failed", apperrors.ErrAuthenticationFailed, http.StatusUnauthorized, MessageAuthenticationFailed},
		{"unauthenticated", apperrors.ErrUnauthenticated, http.StatusUnauthorized, MessageUnauthenticated},
		{"organisation not found", apperrors.ErrOrganisationNotFound, http.StatusNotFound, "Organisation not found or access denied"},
		{"organisation denied", apperrors.ErrOrganisationAccessDenied, http.StatusNotFound, "Organisation not found or access denied"},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, "User not found or access denied"},
		{"user denied", apperrors.ErrUserAccessDenied, http.StatusNotFound, "User not found or access denied"},
		{"unexpected", fmt.Errorf("connection reset"), http.StatusInternalServerError, MessageInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, env := render(t, tt.err)
			assert.Equal(t, tt.status, recorder.Code)
			assert.Equal(t, StatusBadRequest, env.Status)
			assert.Equal(t, tt.message, env.Message)
			assert.Equal(t, tt.status, env.StatusCode)
			assert.Nil(t, env.Data)
		})
	}
}

func TestDuplicateEmailCarriesFieldError(t *testing.T) {
	_, env := render(t, apperrors.ErrEmailExists)
	assert.Equal(t, []apperrors.ValidationError{{Field: "email", Message: MessageEmailExists}}, env.Errors)
}

func TestValidationKeepsEveryField(t *testing.T) {
	_, env := render(t, apperrors.ValidationErrors{
		{Field: "firstName", Message: "First name is required"},
		{Field: "password", Message: "Password is required"},
	})
	require.Len(t, env.Errors, 2)
	assert.Equal(t, "firstName", env.Errors[0].Field)
	assert.Equal(t, "password", env.Errors[1].Field)
}

func TestSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	Success(c, http.StatusCreated, "Organisation created successfully", gin.H{"name": "Acme"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"status":"success","message":"Organisation created successfully","data":{"name":"Acme"}}`, recorder.Body.String())
}

func TestInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	InvalidBody(c)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"status":"Bad request","message":"Invalid request body","statusCode":400}`, recorder.Body.String())
}
