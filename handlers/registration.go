package handlers

import (
	"errors"
	"net/http"

	"medcrew/models"
	"medcrew/services/registration"
	"medcrew/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegistrationHandler exposes the registration wizard over HTTP.
type RegistrationHandler struct {
	Svc registration.RegistrationService
}

// NewRegistrationHandler creates a new RegistrationHandler instance.
func NewRegistrationHandler(svc registration.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{Svc: svc}
}

type selectRoleRequest struct {
	SessionID string      `json:"sessionId,omitempty"`
	Role      models.Role `json:"role" binding:"required"`
}

// SelectRoleHandler starts (or restarts) a wizard session with the chosen role.
func (h *RegistrationHandler) SelectRoleHandler(c *gin.Context) {
	var req selectRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	session, err := h.Svc.SelectRole(c.Request.Context(), req.SessionID, req.Role)
	if err != nil {
		respondRegistrationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": session.TempID, "step": session.Step})
}

type advanceRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	models.RoleDetailsRequest
}

// AdvanceHandler validates role details and moves to the credentials step.
func (h *RegistrationHandler) AdvanceHandler(c *gin.Context) {
	var req advanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	session, err := h.Svc.Advance(c.Request.Context(), req.SessionID, req.RoleDetailsRequest)
	if err != nil {
		respondRegistrationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": session.TempID, "step": session.Step})
}

type retreatRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// RetreatHandler moves the wizard one step back.
func (h *RegistrationHandler) RetreatHandler(c *gin.Context) {
	var req retreatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	session, err := h.Svc.Retreat(c.Request.Context(), req.SessionID)
	if err != nil {
		respondRegistrationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": session.TempID, "step": session.Step})
}

type submitRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	models.CredentialsRequest
}

// SubmitHandler finalizes registration and returns the auth response.
func (h *RegistrationHandler) SubmitHandler(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Svc.Submit(c.Request.Context(), req.SessionID, req.CredentialsRequest)
	if err != nil {
		respondRegistrationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func respondRegistrationError(c *gin.Context, err error) {
	var validationErr registration.ValidationError
	var serviceErr registration.ExternalServiceError

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusUnprocessableEntity, validationErr.Message, validationErr.Field)
	case errors.Is(err, registration.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Registration session not found", "start again by selecting a role")
	case errors.Is(err, registration.ErrSubmitInFlight):
		utils.JSONError(c, http.StatusConflict, "A submission is already in progress", "")
	case errors.As(err, &serviceErr):
		utils.JSONError(c, http.StatusBadGateway, serviceErr.Message, "")
	default:
		utils.GetLogger().Error("registration handler failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "")
	}
}
