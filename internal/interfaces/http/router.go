// Package http assembles the gin engine: middleware, handlers and the
// route table.
package http

import (
	"github.com/gin-gonic/gin"

	"helperdesk/internal/infrastructure/config"
	"helperdesk/internal/interfaces/http/handlers"
	"helperdesk/internal/interfaces/http/middleware"
	"helperdesk/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	authMiddleware *middleware.SessionAuthMiddleware

	authHandler   *handlers.AuthHandler
	helperHandler *handlers.HelperHandler
	ticketHandler *handlers.TicketHandler
	adminHandler  *handlers.AdminHandler
	auditHandler  *handlers.AuditHandler
	backupHandler *handlers.BackupHandler
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) SetupRoutes() {
	registerValidations()

	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.setupAuthRoutes()
	r.setupHelperRoutes()
	r.setupTicketRoutes()
	r.setupAdminRoutes()
}

func (r *Router) setupAuthRoutes() {
	auth := r.engine.Group("/auth")
	{
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
		auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
	}
}

func (r *Router) setupHelperRoutes() {
	helpers := r.engine.Group("/helpers")
	helpers.Use(r.authMiddleware.RequireAuth())
	{
		helpers.GET("", r.helperHandler.List)
		helpers.GET("/export", r.helperHandler.Export)
		helpers.GET("/:id", r.helperHandler.Get)
		helpers.POST("", r.helperHandler.Create)
		helpers.PUT("/:id", r.helperHandler.Update)
		helpers.POST("/:id/warnings", r.helperHandler.AdjustWarnings)
		helpers.DELETE("/:id", r.helperHandler.Delete)
	}
}

func (r *Router) setupTicketRoutes() {
	tickets := r.engine.Group("/tickets")
	tickets.Use(r.authMiddleware.RequireAuth())
	{
		tickets.GET("", r.ticketHandler.List)
		tickets.GET("/export", r.ticketHandler.Export)
		tickets.GET("/:id", r.ticketHandler.Get)
		tickets.POST("", r.ticketHandler.Create)
		tickets.DELETE("/:id", r.ticketHandler.Delete)
	}
}

// setupAdminRoutes wires the SuperAdmin-only surfaces: account
// management, the audit trail and backups.
func (r *Router) setupAdminRoutes() {
	admins := r.engine.Group("/admins")
	admins.Use(r.authMiddleware.RequireAuth(), middleware.RequireSuperAdmin())
	{
		admins.GET("", r.adminHandler.List)
		admins.POST("", r.adminHandler.Create)
		admins.PUT("/:id", r.adminHandler.Update)
		admins.DELETE("/:id", r.adminHandler.Delete)
	}

	audit := r.engine.Group("/audit")
	audit.Use(r.authMiddleware.RequireAuth(), middleware.RequireSuperAdmin())
	{
		audit.GET("", r.auditHandler.List)
	}

	backup := r.engine.Group("/backup")
	backup.Use(r.authMiddleware.RequireAuth(), middleware.RequireSuperAdmin())
	{
		backup.POST("", r.backupHandler.Trigger)
		backup.GET("/status", r.backupHandler.Status)
	}
}
