package handlers

import (
	"net/http"

	"identity-org-backend/internal/api/response"
	"identity-org-backend/internal/auth"
	apperrors "identity-org-backend/internal/errors"
	"identity-org-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrganisationHandler handles HTTP requests for organisations and their members
type OrganisationHandler struct {
	service service.OrganisationServiceInterface
}

// NewOrganisationHandler creates a new organisation handler
func NewOrganisationHandler(service service.OrganisationServiceInterface) *OrganisationHandler {
	return &OrganisationHandler{service: service}
}

// ListOrganisations handles GET /api/organisations
// @Summary List organisations
// @Description List every organisation the caller owns or belongs to
// @Tags organisations
// @Produce json
// @Success 200 {object} response.Envelope{data=service.OrganisationListResponse} "Organisations retrieved"
// @Failure 401 {object} response.Envelope "Authentication required"
// @Security BearerAuth
// @Router /api/organisations [get]
func (h *OrganisationHandler) ListOrganisations(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	resp, err := h.service.ListOrganisations(c.Request.Context(), subject)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Organisations retrieved", resp)
}

// GetOrganisation handles GET /api/organisations/:orgId
// @Summary Get organisation by ID
// @Description Get an organisation the caller owns or belongs to
// @Tags organisations
// @Produce json
// @Param orgId path string true "Organisation ID (UUID)"
// @Success 200 {object} response.Envelope{data=service.OrganisationResponse} "Organisation retrieved"
// @Failure 401 {object} response.Envelope "Authentication required"
// @Failure 404 {object} response.Envelope "Organisation not found or access denied"
// @Security BearerAuth
// @Router /api/organisations/{orgId} [get]
func (h *OrganisationHandler) GetOrganisation(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}
	// A malformed id cannot name an organisation
	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		response.Error(c, apperrors.ErrOrganisationNotFound)
		return
	}

	resp, err := h.service.GetOrganisation(c.Request.Context(), subject, orgID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Organisation retrieved", resp)
}

// CreateOrganisation handles POST /api/organisations
// @Summary Create an organisation
// @Description Create an organisation owned by the caller
// @Tags organisations
// @Accept json
// @Produce json
// @Param organisation body service.CreateOrganisationRequest true "Organisation data"
// @Success 201 {object} response.Envelope{data=service.OrganisationResponse} "Organisation created successfully"
// @Failure 400 {object} response.Envelope "Organisation with this name already exists"
// @Failure 401 {object} response.Envelope "Authentication required"
// @Failure 422 {object} response.Envelope "Validation failed"
// @Security BearerAuth
// @Router /api/organisations [post]
func (h *OrganisationHandler) CreateOrganisation(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	var req service.CreateOrganisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidBody(c)
		return
	}

	resp, err := h.service.CreateOrganisation(c.Request.Context(), subject, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Organisation created successfully", resp)
}

// AddMember handles POST /api/organisations/:orgId/users
// @Summary Add a user to an organisation
// @Description Add an existing user to an organisation owned by the caller
// @Tags organisations
// @Accept json
// @Produce json
// @Param orgId path string true "Organisation ID (UUID)"
// @Param member body service.AddMemberRequest true "User to add"
// @Success 200 {object} response.Envelope "User added to organisation successfully"
// @Failure 400 {object} response.Envelope "User already in organisation"
// @Failure 401 {object} response.Envelope "Authentication required"
// @Failure 404 {object} response.Envelope "Organisation not found or access denied"
// @Failure 422 {object} response.Envelope "Validation failed"
// @Security BearerAuth
// @Router /api/organisations/{orgId}/users [post]
func (h *OrganisationHandler) AddMember(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}
	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		response.Error(c, apperrors.ErrOrganisationNotFound)
		return
	}

	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidBody(c)
		return
	}

	if err := h.service.AddMember(c.Request.Context(), subject, orgID, &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User added to organisation successfully", nil)
}

// requireSubject reads the caller set by the auth middleware
func requireSubject(c *gin.Context) (uuid.UUID, bool) {
	subject, ok := auth.GetUserID(c)
	if !ok {
		response.Error(c, apperrors.ErrUnauthenticated)
		return uuid.Nil, false
	}
	return subject, true
}
