package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// InitRoutes собирает gin роутер со всеми маршрутами
func (h *Handlers) InitRoutes(opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(h.requestID(), h.requestLogger(), gin.Recovery())

	if len(opts.AllowedOrigins) > 0 {
		config := cors.DefaultConfig()
		config.AllowOrigins = opts.AllowedOrigins
		config.AllowCredentials = true // cookie сессии
		config.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete}
		config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", requestIDHeader}
		router.Use(cors.New(config))
	}

	store := cookie.NewStore([]byte(opts.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(sessionCookieName, store))

	router.GET("/", h.Root)
	router.GET("/healthz", h.Health)
	if opts.StaticDir != "" {
		router.Static("/static", opts.StaticDir)
	}

	activities := router.Group("/activities")
	{
		activities.GET("", h.ListActivities)
		activities.POST("/:name/signup", h.Signup)
		activities.DELETE("/:name/unregister", h.Unregister)
		activities.GET("/:name/events", h.History)
	}

	auth := router.Group("/auth")
	{
		auth.GET("/status", h.AuthStatus)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
	}

	return router
}

func (h *Handlers) Root(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, indexPage)
}

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
