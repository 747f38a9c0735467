package handlers

import (
	"net/http"

	"identity-org-backend/internal/api/response"
	"identity-org-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	service service.IdentityServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service service.IdentityServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /auth/register
// @Summary Register a new user
// @Description Create a user together with a default organisation and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param user body service.RegisterRequest true "Registration data"
// @Success 201 {object} response.Envelope{data=service.AuthResponse} "Registration successful"
// @Failure 400 {object} response.Envelope "Registration unsuccessful"
// @Failure 422 {object} response.Envelope "Validation failed"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidBody(c)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", resp)
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Exchange email and password for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Login credentials"
// @Success 200 {object} response.Envelope{data=service.AuthResponse} "Login successful"
// @Failure 401 {object} response.Envelope "Authentication failed"
// @Failure 422 {object} response.Envelope "Validation failed"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidBody(c)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", resp)
}
