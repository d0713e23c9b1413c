package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"minutes-backend/internal/domains/faculty"
	"minutes-backend/internal/shared/response"
)

// FacultyHandler handles HTTP requests for the roster domain
type FacultyHandler struct {
	service faculty.Service
}

// NewFacultyHandler creates a new roster handler instance
func NewFacultyHandler(service faculty.Service) *FacultyHandler {
	return &FacultyHandler{service: service}
}

// List handles GET /faculty
func (h *FacultyHandler) List(c *gin.Context) {
	members, err := h.service.List(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, faculty.GetHTTPStatusCode(err), "FACULTY_LIST_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, members)
}

// Options handles GET /faculty/options
func (h *FacultyHandler) Options(c *gin.Context) {
	options, err := h.service.Options(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, faculty.GetHTTPStatusCode(err), "FACULTY_OPTIONS_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, options)
}

// Create handles POST /faculty
func (h *FacultyHandler) Create(c *gin.Context) {
	var req faculty.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	member, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, faculty.GetHTTPStatusCode(err), "FACULTY_CREATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, member)
}

// Update handles PUT /faculty/:no
func (h *FacultyHandler) Update(c *gin.Context) {
	seqNo, err := strconv.Atoi(c.Param("no"))
	if err != nil || seqNo < 1 {
		response.BadRequest(c, "Invalid sequence number")
		return
	}

	var req faculty.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	member, err := h.service.Update(c.Request.Context(), seqNo, &req)
	if err != nil {
		response.ErrorResponse(c, faculty.GetHTTPStatusCode(err), "FACULTY_UPDATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, member)
}

// Delete handles DELETE /faculty/:no
func (h *FacultyHandler) Delete(c *gin.Context) {
	seqNo, err := strconv.Atoi(c.Param("no"))
	if err != nil || seqNo < 1 {
		response.BadRequest(c, "Invalid sequence number")
		return
	}

	if err := h.service.Delete(c.Request.Context(), seqNo); err != nil {
		response.ErrorResponse(c, faculty.GetHTTPStatusCode(err), "FACULTY_DELETE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, nil)
}
