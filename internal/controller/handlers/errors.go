package handlers

import (
	"errors"
	"net/http"

	"github.com/Freeeeeet/mergington_activities/internal/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// serviceError переводит ошибку сервиса в HTTP ответ
func (h *Handlers) serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrUnauthenticated):
		h.errorResponse(c, http.StatusUnauthorized, codeUnauthenticated, err.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		h.errorResponse(c, http.StatusUnauthorized, codeInvalidCredentials, err.Error())
	case errors.Is(err, model.ErrActivityNotFound):
		h.errorResponse(c, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, model.ErrAlreadyRegistered):
		h.errorResponse(c, http.StatusBadRequest, codeAlreadyRegistered, err.Error())
	case errors.Is(err, model.ErrNotRegistered):
		h.errorResponse(c, http.StatusBadRequest, codeNotRegistered, err.Error())
	default:
		h.logger.Error("Unhandled service error",
			zap.String("path", c.FullPath()),
			zap.String(requestIDKey, c.GetString(requestIDKey)),
			zap.Error(err),
		)
		h.errorResponse(c, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

func (h *Handlers) errorResponse(c *gin.Context, status int, code, detail string) {
	h.logger.Debug("Request failed",
		zap.Int("status", status),
		zap.String("code", code),
		zap.String("detail", detail),
	)
	c.AbortWithStatusJSON(status, model.ErrorResponse{
		Detail: detail,
		Code:   code,
	})
}
