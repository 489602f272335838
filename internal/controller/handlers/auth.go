package handlers

import (
	"net/http"

	"github.com/Freeeeeet/mergington_activities/internal/model"
	"github.com/gin-gonic/gin"
)

func (h *Handlers) AuthStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.authService.Status(newSession(c)))
}

func (h *Handlers) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, codeInvalidInput, "invalid request body")
		return
	}

	result, err := h.authService.Login(newSession(c), req.Username, req.Password)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handlers) Logout(c *gin.Context) {
	result, err := h.authService.Logout(newSession(c))
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
