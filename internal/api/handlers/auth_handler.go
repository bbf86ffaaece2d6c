package handlers

import (
	"github.com/JosephVasc/arenameta/internal/services"
	"github.com/JosephVasc/arenameta/models"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes registers all routes for authentication
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/battlenet", h.Authorize)
		auth.POST("/battlenet/callback", h.Callback)
	}
}

// Authorize hands the frontend the Battle.net redirect URL. The state value
// is opaque here; the frontend verifies it when the user comes back.
func (h *AuthHandler) Authorize(c *gin.Context) {
	req := BindModel[models.AuthorizeRequest](c)
	if req == nil {
		return
	}

	url, err := h.authService.BuildAuthorizeURL(req.State)
	if err != nil {
		UpstreamFailure(c, err)
		return
	}

	Ok(c, models.AuthorizeResponse{URL: url})
}

// Callback finishes the login by exchanging the authorization code.
func (h *AuthHandler) Callback(c *gin.Context) {
	req := BindModel[models.CallbackRequest](c)
	if req == nil {
		return
	}

	result, err := h.authService.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		UpstreamFailure(c, err)
		return
	}

	Ok(c, result)
}
