package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JosephVasc/arenameta/internal/api/middleware"
	"github.com/JosephVasc/arenameta/internal/blizzard"
	"github.com/JosephVasc/arenameta/internal/services"
	"github.com/JosephVasc/arenameta/internal/services/account"
	"github.com/JosephVasc/arenameta/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fakeStore is an in-memory account.Store with the same semantics as the
// Postgres one.
type fakeStore struct {
	mains map[string]*models.MainCharacter
	links map[string]*models.SocialLinks
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		mains: make(map[string]*models.MainCharacter),
		links: make(map[string]*models.SocialLinks),
	}
}

func (s *fakeStore) SetMain(_ context.Context, selection *models.MainCharacter) error {
	s.mains[selection.AccountID+"|"+selection.GameVersion.String()] = selection
	return nil
}

func (s *fakeStore) GetMain(_ context.Context, accountID string) (*models.MainCharacter, error) {
	for _, selection := range s.mains {
		if selection.AccountID == accountID {
			return selection, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) UpsertSocialLinks(_ context.Context, tag string, req *models.SocialLinksRequest) error {
	links, ok := s.links[tag]
	if !ok {
		links = &models.SocialLinks{Tag: tag}
		s.links[tag] = links
	}
	if req.Discord != nil {
		links.Discord = req.Discord
	}
	if req.Twitch != nil {
		links.Twitch = req.Twitch
	}
	if req.Twitter != nil {
		links.Twitter = req.Twitter
	}
	if req.Youtube != nil {
		links.Youtube = req.Youtube
	}
	if req.Instagram != nil {
		links.Instagram = req.Instagram
	}
	return nil
}

func (s *fakeStore) GetSocialLinks(_ context.Context, tag string) (*models.SocialLinks, error) {
	links, ok := s.links[tag]
	if !ok {
		return nil, nil
	}
	return links, nil
}

// newTestRouter wires the real handlers and middleware against a fake
// Battle.net server.
func newTestRouter(t *testing.T, upstream http.Handler, store account.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	client := blizzard.NewClient(models.BlizzardConfig{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		RedirectURI:  "http://localhost:3000/auth/callback",
		OAuthBaseURL: srv.URL,
		APIBaseURL:   srv.URL,
	}, zap.NewNop())

	logger := zap.NewNop()
	authService := services.NewAuthService(client, logger)
	characterService := services.NewCharacterService(client, authService, logger)
	accountService := services.NewAccountService(store, logger)
	authMiddleware := middleware.AuthMiddleware(authService)

	router := gin.New()
	NewHealthHandler().RegisterRoutes(router.Group(""))

	apiGroup := router.Group("/api")
	NewAuthHandler(authService).RegisterRoutes(apiGroup)
	NewCharacterHandler(characterService, accountService).RegisterRoutes(apiGroup, authMiddleware)
	NewLeaderboardHandler(characterService).RegisterRoutes(apiGroup)
	NewAccountHandler(characterService, accountService).RegisterRoutes(apiGroup, authMiddleware)

	return router
}

// registerUserInfo adds the userinfo endpoint that the auth middleware hits
// for every bearer token.
func registerUserInfo(mux *http.ServeMux) {
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer user-token" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"sub": "acct-1", "battletag": "Tester#1234"}`))
	})
}

func doRequest(router *gin.Engine, method, path, body string, authorized bool) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer user-token")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
