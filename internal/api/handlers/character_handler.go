package handlers

import (
	"github.com/JosephVasc/arenameta/internal/api/middleware"
	"github.com/JosephVasc/arenameta/internal/services"
	"github.com/JosephVasc/arenameta/models"
	"github.com/gin-gonic/gin"
)

type CharacterHandler struct {
	characterService *services.CharacterService
	accountService   *services.AccountService
}

func NewCharacterHandler(characterService *services.CharacterService, accountService *services.AccountService) *CharacterHandler {
	return &CharacterHandler{
		characterService: characterService,
		accountService:   accountService,
	}
}

// RegisterRoutes registers all routes for character lookups and the main
// character selection
func (h *CharacterHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	character := router.Group("/character")
	{
		character.GET("/:region/:realm/:name", h.GetCharacterProfile)
		character.POST("", authMiddleware, h.GetCharacter)
		character.POST("/set-main", authMiddleware, h.SetMain)
		character.GET("/main", authMiddleware, h.GetMain)
	}
}

// GetCharacterProfile is the public, unauthenticated character fetch backed
// by an application token.
func (h *CharacterHandler) GetCharacterProfile(c *gin.Context) {
	version, err := models.ParseGameVersion(c.Query("game_version"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	profile, err := h.characterService.GetCharacterProfile(
		c.Request.Context(),
		c.Param("region"),
		c.Param("realm"),
		c.Param("name"),
		version,
	)
	if err != nil {
		UpstreamFailure(c, err)
		return
	}

	Ok(c, profile)
}

// GetCharacter returns the aggregated character view for the signed-in user.
func (h *CharacterHandler) GetCharacter(c *gin.Context) {
	req := BindModel[models.CharacterRequest](c)
	if req == nil {
		return
	}

	version, err := models.ParseGameVersion(req.GameVersion)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	view, err := h.characterService.GetCharacter(c.Request.Context(), middleware.Token(c), req.Realm, req.Name, version)
	if err != nil {
		UpstreamFailure(c, err)
		return
	}

	Ok(c, view)
}

func (h *CharacterHandler) SetMain(c *gin.Context) {
	req := BindModel[models.SetMainRequest](c)
	if req == nil {
		return
	}

	version, err := models.ParseGameVersion(req.GameVersion)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	err = h.accountService.SetMain(c.Request.Context(), middleware.Profile(c), req.Realm, req.Name, version)
	if err != nil {
		InternalServerError(c, err.Error())
		return
	}

	Message(c, "Main character set successfully")
}

func (h *CharacterHandler) GetMain(c *gin.Context) {
	selection, err := h.accountService.GetMain(c.Request.Context(), c.GetString(middleware.AccountIDKey))
	if err != nil {
		InternalServerError(c, err.Error())
		return
	}

	if selection == nil {
		Message(c, "No main character set")
		return
	}

	Ok(c, gin.H{
		"realm":        selection.Realm,
		"name":         selection.Name,
		"game_version": selection.GameVersion,
	})
}
