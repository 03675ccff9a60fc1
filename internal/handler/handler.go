// Package handler contains the Gin HTTP handlers and route registration for
// the recruitd API.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/recruitd/internal/auth"
	apperrors "github.com/skillsenselab/recruitd/internal/errors"
	"github.com/skillsenselab/recruitd/internal/logger"
	"github.com/skillsenselab/recruitd/internal/server"
	"github.com/skillsenselab/recruitd/internal/server/endpoint"
	"github.com/skillsenselab/recruitd/internal/server/middleware"
	"github.com/skillsenselab/recruitd/internal/service"
)

// Handlers bundles everything route registration needs.
type Handlers struct {
	Auth         *AuthHandler
	Recruitments *RecruitmentHandler
	Applications *ApplicationHandler
	Tokens       *auth.TokenService
	DB           endpoint.Pinger
	Log          *logger.Logger
	ServiceName  string
	Version      string
}

// Register wires all routes onto the engine. Reads are public; every
// mutation sits behind the Bearer token guard.
func Register(engine *gin.Engine, h Handlers) {
	engine.Use(middleware.RequestID(), middleware.Recovery())

	engine.GET("/health", endpoint.Health(h.ServiceName, h.Version, h.DB))

	api := engine.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", h.Auth.SignUp)
			authGroup.POST("/signin", h.Auth.SignIn)
		}

		api.GET("/recruitments", h.Recruitments.List)
		api.GET("/applications/recruitment/:id", h.Applications.ListByRecruitment)

		guard := middleware.RequireAuth(h.Tokens, h.Log)
		api.POST("/recruitments", guard, h.Recruitments.Create)
		api.POST("/recruitments/:id/status", guard, h.Recruitments.SetStatus)
		api.POST("/applications/apply", guard, h.Applications.Apply)
	}
}

// bindJSON decodes the request body into dst, translating decode failures
// into a 400 validation error.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		server.RespondWithError(c, apperrors.Validation("Invalid request body").WithCause(err))
		return false
	}
	return true
}

// pathID parses the numeric :id path parameter.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		server.RespondWithError(c, apperrors.Validation("id: must be a positive integer"))
		return 0, false
	}
	return uint(id), true
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// NewRecruitmentHandler constructs a RecruitmentHandler.
func NewRecruitmentHandler(svc *service.RecruitmentService) *RecruitmentHandler {
	return &RecruitmentHandler{svc: svc}
}

// NewApplicationHandler constructs an ApplicationHandler.
func NewApplicationHandler(svc *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}
