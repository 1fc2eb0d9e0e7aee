package handlers

import (
	"github.com/srhafid/BookApi/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter) *gin.Engine {
	r := gin.Default()

	// Middleware
	r.Use(RequestID())
	if rateLimiter != nil {
		r.Use(h.RateLimitMiddleware(rateLimiter))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Public Routes
	r.POST("/login", h.Login)

	// User Routes (registration stays public so first users can be created)
	users := r.Group("/users")
	users.POST("/", h.CreateUser)
	if h.cfg.AuthEnabled {
		users.Use(h.AuthRequired())
	}
	users.GET("/:id", h.GetUser)
	users.PUT("/:id", h.UpdateUser)
	users.DELETE("/:id", h.DeleteUser)

	// URL Routes
	urls := r.Group("/urls")
	if h.cfg.AuthEnabled {
		urls.Use(h.AuthRequired())
	}
	urls.POST("/", h.CreateURL)
	urls.GET("/:id", h.GetURL)
	urls.PUT("/:id", h.UpdateURL)
	urls.DELETE("/:id", h.DeleteURL)

	return r
}
