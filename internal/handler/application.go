package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/recruitd/internal/auth"
	"github.com/skillsenselab/recruitd/internal/server"
	"github.com/skillsenselab/recruitd/internal/service"
)

// ApplicationHandler serves the application routes.
type ApplicationHandler struct {
	svc *service.ApplicationService
}

// Apply handles POST /api/applications/apply. The applicant id comes from
// the authenticated identity bound by the guard, not from the body.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var in service.ApplyInput
	if !bindJSON(c, &in) {
		return
	}

	identity := auth.MustIdentity(c.Request.Context())
	app, err := h.svc.Apply(c.Request.Context(), identity, in)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondCreated(c, app)
}

// ListByRecruitment handles GET /api/applications/recruitment/:id.
func (h *ApplicationHandler) ListByRecruitment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rows, err := h.svc.ListByRecruitment(c.Request.Context(), id)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, rows)
}
