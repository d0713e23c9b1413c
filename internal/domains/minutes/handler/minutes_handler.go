package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minutes-backend/internal/domains/minutes"
	"minutes-backend/internal/shared/response"
)

// MinutesHandler handles HTTP requests for meeting minutes
type MinutesHandler struct {
	service minutes.Service
}

// NewMinutesHandler creates a new minutes handler instance
func NewMinutesHandler(service minutes.Service) *MinutesHandler {
	return &MinutesHandler{service: service}
}

// List handles GET /minutes
func (h *MinutesHandler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, minutes.GetHTTPStatusCode(err), "MINUTES_LIST_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, records)
}

// Search handles GET /minutes/search?field=...&q=...
func (h *MinutesHandler) Search(c *gin.Context) {
	field := minutes.SearchField(c.DefaultQuery("field", string(minutes.SearchAll)))
	if !field.IsValid() {
		response.BadRequest(c, "Invalid search field")
		return
	}

	records, err := h.service.Search(c.Request.Context(), field, c.Query("q"))
	if err != nil {
		response.ErrorResponse(c, minutes.GetHTTPStatusCode(err), "MINUTES_SEARCH_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, records)
}

// Get handles GET /minutes/:id
func (h *MinutesHandler) Get(c *gin.Context) {
	record, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, minutes.GetHTTPStatusCode(err), "MINUTES_GET_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, record)
}

// Submit handles POST /minutes. A submission without a resolution that
// needs one (duplicate date, or plain save confirmation) returns the
// pending wizard state with nothing written; the client re-submits the
// same payload with a resolution to complete or abandon the save.
func (h *MinutesHandler) Submit(c *gin.Context) {
	var req minutes.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	outcome, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, minutes.GetHTTPStatusCode(err), "MINUTES_SUBMIT_FAILED", err.Error())
		return
	}

	status := http.StatusOK
	if outcome.Saved != nil {
		status = http.StatusCreated
	}
	response.Success(c, status, outcome)
}

// Update handles PUT /minutes/:id
func (h *MinutesHandler) Update(c *gin.Context) {
	var req minutes.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	record, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.ErrorResponse(c, minutes.GetHTTPStatusCode(err), "MINUTES_UPDATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, record)
}

// Delete handles DELETE /minutes/:id
func (h *MinutesHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.ErrorResponse(c, minutes.GetHTTPStatusCode(err), "MINUTES_DELETE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// Draft handles POST /minutes/draft
func (h *MinutesHandler) Draft(c *gin.Context) {
	var req minutes.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	draft, err := h.service.Draft(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, minutes.GetHTTPStatusCode(err), "MINUTES_DRAFT_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, draft)
}
