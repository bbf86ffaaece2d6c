package api

import (
	"context"
	"net/http"
	"time"

	"github.com/JosephVasc/arenameta/common/data"
	"github.com/JosephVasc/arenameta/internal/api/handlers"
	"github.com/JosephVasc/arenameta/internal/api/middleware"
	"github.com/JosephVasc/arenameta/internal/blizzard"
	"github.com/JosephVasc/arenameta/internal/services"
	"github.com/JosephVasc/arenameta/internal/services/account"
	"github.com/JosephVasc/arenameta/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	router           *gin.Engine
	httpServer       *http.Server
	authService      *services.AuthService
	characterService *services.CharacterService
	accountService   *services.AccountService
	logger           *zap.Logger
}

func NewServer(config *models.Config, db *data.PgDbContext, logger *zap.Logger) *Server {
	client := blizzard.NewClient(config.BlizzardConfig, logger)
	authService := services.NewAuthService(client, logger)
	characterService := services.NewCharacterService(client, authService, logger)
	accountService := services.NewAccountService(account.NewPgAccountStore(db), logger)

	server := &Server{
		router:           gin.New(),
		authService:      authService,
		characterService: characterService,
		accountService:   accountService,
		logger:           logger,
	}

	server.router.Use(gin.Recovery())
	server.router.Use(middleware.RequestLogger(logger))
	server.router.Use(middleware.CORSMiddleware(config.FrontendOrigin))
	server.router.Use(middleware.ErrorMiddleware())
	server.router.Use(middleware.RateLimit(100, 200))

	authHandler := handlers.NewAuthHandler(authService)
	characterHandler := handlers.NewCharacterHandler(characterService, accountService)
	leaderboardHandler := handlers.NewLeaderboardHandler(characterService)
	accountHandler := handlers.NewAccountHandler(characterService, accountService)
	healthHandler := handlers.NewHealthHandler()
	authMiddleware := middleware.AuthMiddleware(authService)

	healthHandler.RegisterRoutes(server.router.Group(""))

	apiGroup := server.router.Group("/api")
	{
		authHandler.RegisterRoutes(apiGroup)
		characterHandler.RegisterRoutes(apiGroup, authMiddleware)
		leaderboardHandler.RegisterRoutes(apiGroup)
		accountHandler.RegisterRoutes(apiGroup, authMiddleware)
	}

	return server
}

func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
