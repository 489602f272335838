package handlers

import (
	"github.com/Freeeeeet/mergington_activities/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости HTTP обработчиков
type Handlers struct {
	activityService *service.ActivityService
	authService     *service.AuthService
	logger          *zap.Logger
}

// NewHandlers создаёт набор HTTP обработчиков
func NewHandlers(
	activityService *service.ActivityService,
	authService *service.AuthService,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		activityService: activityService,
		authService:     authService,
		logger:          logger,
	}
}

// RouterOptions настройки HTTP слоя
type RouterOptions struct {
	SessionSecret  string
	SecureCookie   bool // Secure флаг cookie, включается в production
	StaticDir      string
	AllowedOrigins []string
}
