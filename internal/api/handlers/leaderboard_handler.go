package handlers

import (
	"github.com/JosephVasc/arenameta/internal/services"
	"github.com/JosephVasc/arenameta/models"
	"github.com/gin-gonic/gin"
)

var validBrackets = map[string]bool{
	"2v2": true,
	"3v3": true,
	"5v5": true,
}

type LeaderboardHandler struct {
	characterService *services.CharacterService
}

func NewLeaderboardHandler(characterService *services.CharacterService) *LeaderboardHandler {
	return &LeaderboardHandler{
		characterService: characterService,
	}
}

// RegisterRoutes registers all routes for PvP leaderboards
func (h *LeaderboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/pvp-leaderboard/:bracket", h.GetLeaderboard)
}

// GetLeaderboard rejects unknown brackets before anything goes upstream.
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	bracket := c.Param("bracket")
	if !validBrackets[bracket] {
		BadRequest(c, "Invalid bracket. Please use 2v2, 3v3, or 5v5")
		return
	}

	version, err := models.ParseGameVersion(c.Query("game_version"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	leaderboard, err := h.characterService.GetLeaderboard(c.Request.Context(), bracket, version)
	if err != nil {
		UpstreamFailure(c, err)
		return
	}

	Ok(c, leaderboard)
}
