package handlers

import (
	"net/http"

	"identity-org-backend/internal/api/response"
	apperrors "identity-org-backend/internal/errors"
	"identity-org-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles HTTP requests for user records
type UserHandler struct {
	service service.OrganisationServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.OrganisationServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// GetUser handles GET /api/users/:id
// @Summary Get user by ID
// @Description Get the caller or a user sharing an organisation with the caller
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} response.Envelope{data=service.UserResponse} "User retrieved successfully"
// @Failure 401 {object} response.Envelope "Authentication required"
// @Failure 404 {object} response.Envelope "User not found or access denied"
// @Security BearerAuth
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperrors.ErrUserNotFound)
		return
	}

	resp, err := h.service.GetUser(c.Request.Context(), subject, targetID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved successfully", resp)
}
