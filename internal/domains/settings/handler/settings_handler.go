package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minutes-backend/internal/domains/settings"
	"minutes-backend/internal/shared/response"
)

// SettingsHandler handles HTTP requests for login and passwords
type SettingsHandler struct {
	service settings.Service
}

// NewSettingsHandler creates a new settings handler instance
func NewSettingsHandler(service settings.Service) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Login handles POST /auth/login
func (h *SettingsHandler) Login(c *gin.Context) {
	var req settings.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, settings.GetHTTPStatusCode(err), "LOGIN_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, result)
}

// UpdatePassword handles PUT /settings/password
func (h *SettingsHandler) UpdatePassword(c *gin.Context) {
	var req settings.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := h.service.UpdatePassword(c.Request.Context(), &req); err != nil {
		response.ErrorResponse(c, settings.GetHTTPStatusCode(err), "PASSWORD_UPDATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, nil)
}
