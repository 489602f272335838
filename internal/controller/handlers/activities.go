package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) ListActivities(c *gin.Context) {
	c.JSON(http.StatusOK, h.activityService.ListActivities())
}

func (h *Handlers) Signup(c *gin.Context) {
	email, ok := c.GetQuery("email")
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, codeInvalidInput, "email is required")
		return
	}

	result, err := h.activityService.Signup(c.Request.Context(), newSession(c), c.Param("name"), email)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handlers) Unregister(c *gin.Context) {
	email, ok := c.GetQuery("email")
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, codeInvalidInput, "email is required")
		return
	}

	result, err := h.activityService.Unregister(c.Request.Context(), newSession(c), c.Param("name"), email)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// History журнал записей занятия, только для учителей
func (h *Handlers) History(c *gin.Context) {
	limit := 0
	if raw, ok := c.GetQuery("limit"); ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.errorResponse(c, http.StatusBadRequest, codeInvalidInput, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	events, err := h.activityService.History(c.Request.Context(), newSession(c), c.Param("name"), limit)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}
