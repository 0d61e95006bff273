// Package server wires the portal together and runs the HTTP server.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ocn-community/volunteer-portal/internal/actions"
	"github.com/ocn-community/volunteer-portal/internal/auth"
	"github.com/ocn-community/volunteer-portal/internal/config"
	"github.com/ocn-community/volunteer-portal/internal/forms"
	"github.com/ocn-community/volunteer-portal/internal/handlers"
	"github.com/ocn-community/volunteer-portal/internal/i18n"
	"github.com/ocn-community/volunteer-portal/internal/logger"
	"github.com/ocn-community/volunteer-portal/internal/metrics"
	"github.com/ocn-community/volunteer-portal/internal/middleware"
	"github.com/ocn-community/volunteer-portal/internal/upstream"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	config     *config.Config
	client     *upstream.Client
	metrics    *metrics.Metrics
}

// New creates a new server instance
func New(cfg *config.Config, client *upstream.Client) *Server {
	return &Server{
		config:  cfg,
		client:  client,
		metrics: metrics.New(),
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	router := s.setupRouter()

	s.httpServer = &http.Server{
		Addr:    ":" + s.config.Server.Port,
		Handler: router,

		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Get().Info("Starting HTTP server", "port", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	logger.Get().Info("Shutting down HTTP server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *gin.Engine {
	gin.SetMode(s.config.Server.GinMode)

	router := gin.New()

	router.Use(middleware.RequestLog())
	router.Use(gin.Recovery())
	router.Use(s.metrics.Middleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(s.config.CORS.AllowOrigins, ",")
	if len(corsConfig.AllowOrigins) == 1 && corsConfig.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowOrigins = nil
	} else {
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = strings.Split(s.config.CORS.AllowMethods, ",")
	corsConfig.AllowHeaders = strings.Split(s.config.CORS.AllowHeaders, ",")
	router.Use(cors.New(corsConfig))

	router.Use(auth.Middleware(s.config.Auth.JWTSecret))

	deps := &handlers.Deps{
		Client:          s.client,
		Confirm:         actions.NewConfirmer(actions.DefaultConfirmTTL),
		Validate:        forms.New(),
		Labels:          i18n.Default(),
		Metrics:         s.metrics,
		UTCOffsetHours:  s.config.Display.UTCOffsetHours,
		RowsPerPage:     s.config.Display.RowsPerPage,
		DefaultLanguage: s.config.Display.DefaultLanguage,
	}

	eventsHandler := handlers.NewEventsHandler(deps)
	applicationsHandler := handlers.NewApplicationsHandler(deps)
	workingHoursHandler := handlers.NewWorkingHoursHandler(deps)
	myApplicationsHandler := handlers.NewMyApplicationsHandler(deps)
	accountHandler := handlers.NewAccountHandler(deps)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Volunteer portal is running",
			"status":  "healthy",
		})
	})
	router.GET("/metrics", s.metrics.Handler())

	s.setupAPIRoutes(router,
		eventsHandler, applicationsHandler, workingHoursHandler,
		myApplicationsHandler, accountHandler)

	return router
}

// setupAPIRoutes configures all API routes
func (s *Server) setupAPIRoutes(
	router *gin.Engine,
	eventsHandler *handlers.EventsHandler,
	applicationsHandler *handlers.ApplicationsHandler,
	workingHoursHandler *handlers.WorkingHoursHandler,
	myApplicationsHandler *handlers.MyApplicationsHandler,
	accountHandler *handlers.AccountHandler,
) {
	api := router.Group("/api")
	{
		events := api.Group("/events")
		{
			events.GET("/view", eventsHandler.View)
			events.GET("/:id", eventsHandler.Get)

			admin := events.Group("", auth.RequireAdmin())
			{
				admin.POST("", eventsHandler.Create)
				admin.PUT("/:id", eventsHandler.Update)
				admin.POST("/:id/delete-request", eventsHandler.RequestDelete)
				admin.POST("/delete-confirm", eventsHandler.ConfirmDelete)
				admin.POST("/delete-cancel", eventsHandler.CancelDelete)
			}
		}

		applications := api.Group("/applications")
		{
			applications.POST("/submit", applicationsHandler.Submit)

			admin := applications.Group("", auth.RequireAdmin())
			{
				admin.GET("/view", applicationsHandler.View)
				admin.GET("/event/:eventId", applicationsHandler.EventApplications)
				admin.GET("/event-sub/:uniqueId", applicationsHandler.GetParticipation)
				admin.PUT("/:uniqueId/status", applicationsHandler.UpdateStatus)
				admin.POST("/certificate/issue", applicationsHandler.IssueCertificate)
				admin.POST("/certificate/reject", applicationsHandler.RejectCertificate)
				admin.POST("/:eventId/:uniqueId/delete-request", applicationsHandler.RequestDelete)
				admin.POST("/delete-confirm", applicationsHandler.ConfirmDelete)
				admin.POST("/delete-cancel", applicationsHandler.CancelDelete)
			}
		}

		workingHours := api.Group("/working-hours")
		{
			workingHours.POST("/events/:eventId/entries", auth.RequireAuth(), workingHoursHandler.SubmitEntry)

			admin := workingHours.Group("", auth.RequireAdmin())
			{
				admin.GET("/view", workingHoursHandler.View)
				admin.GET("/entries/:id", workingHoursHandler.GetEntry)
				admin.PUT("/entries/:id", workingHoursHandler.UpdateEntry)
				admin.POST("/entries/:id/delete-request", workingHoursHandler.RequestDelete)
				admin.POST("/delete-confirm", workingHoursHandler.ConfirmDelete)
				admin.POST("/delete-cancel", workingHoursHandler.CancelDelete)
			}
		}

		myApplications := api.Group("/my-applications", auth.RequireAuth())
		{
			myApplications.GET("/view", myApplicationsHandler.View)
			myApplications.GET("/:eventId/entries", myApplicationsHandler.EventEntries)
			myApplications.POST("/:eventId/certificate", myApplicationsHandler.ApplyCertificate)
		}

		account := api.Group("/account", auth.RequireAuth())
		{
			account.POST("/set-password", accountHandler.SetPassword)
		}
	}
}
