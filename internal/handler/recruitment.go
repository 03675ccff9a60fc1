package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/recruitd/internal/server"
	"github.com/skillsenselab/recruitd/internal/service"
)

// RecruitmentHandler serves the recruitment routes.
type RecruitmentHandler struct {
	svc *service.RecruitmentService
}

// List handles GET /api/recruitments.
func (h *RecruitmentHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, list)
}

// Create handles POST /api/recruitments.
func (h *RecruitmentHandler) Create(c *gin.Context) {
	var in service.CreateRecruitmentInput
	if !bindJSON(c, &in) {
		return
	}

	rec, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondCreated(c, rec)
}

// SetStatus handles POST /api/recruitments/:id/status.
func (h *RecruitmentHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in service.SetStatusInput
	if !bindJSON(c, &in) {
		return
	}

	rec, err := h.svc.SetStatus(c.Request.Context(), id, in)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, rec)
}
