package handlers

import (
	"github.com/JosephVasc/arenameta/internal/api/middleware"
	"github.com/JosephVasc/arenameta/internal/services"
	"github.com/JosephVasc/arenameta/models"
	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	characterService *services.CharacterService
	accountService   *services.AccountService
}

func NewAccountHandler(characterService *services.CharacterService, accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{
		characterService: characterService,
		accountService:   accountService,
	}
}

// RegisterRoutes registers the account profile and social-link routes
func (h *AccountHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	router.GET("/account/profile", authMiddleware, h.GetProfile)
	router.POST("/social-links", authMiddleware, h.UpsertSocialLinks)
	router.GET("/social-links/:tag", h.GetSocialLinks)
}

// GetProfile returns the account's WoW profiles for both game versions.
// Either side is null when its upstream fetch fails; that is not an error.
func (h *AccountHandler) GetProfile(c *gin.Context) {
	profiles := h.characterService.GetAccountProfiles(c.Request.Context(), middleware.Token(c))
	Ok(c, profiles)
}

func (h *AccountHandler) UpsertSocialLinks(c *gin.Context) {
	req := BindModel[models.SocialLinksRequest](c)
	if req == nil {
		return
	}

	tag := c.GetString(middleware.BattleTagKey)
	if err := h.accountService.UpsertSocialLinks(c.Request.Context(), tag, req); err != nil {
		InternalServerError(c, err.Error())
		return
	}

	Message(c, "Social links updated successfully")
}

func (h *AccountHandler) GetSocialLinks(c *gin.Context) {
	links, err := h.accountService.GetSocialLinks(c.Request.Context(), c.Param("tag"))
	if err != nil {
		InternalServerError(c, err.Error())
		return
	}

	if links == nil {
		Message(c, "No social links found for this tag")
		return
	}

	Ok(c, links)
}
