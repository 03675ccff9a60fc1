package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/recruitd/internal/server"
	"github.com/skillsenselab/recruitd/internal/service"
)

// AuthHandler serves the sign-up and sign-in routes.
type AuthHandler struct {
	svc *service.AuthService
}

// SignUp handles POST /api/auth/signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var in service.SignUpInput
	if !bindJSON(c, &in) {
		return
	}

	result, err := h.svc.SignUp(c.Request.Context(), in)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, result)
}

// SignIn handles POST /api/auth/signin.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var in service.SignInInput
	if !bindJSON(c, &in) {
		return
	}

	result, err := h.svc.SignIn(c.Request.Context(), in)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, result)
}
