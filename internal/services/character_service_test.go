package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JosephVasc/arenameta/internal/blizzard"
	"github.com/JosephVasc/arenameta/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCharacterService(t *testing.T, handler http.Handler) *CharacterService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := blizzard.NewClient(models.BlizzardConfig{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		RedirectURI:  "http://localhost:3000/auth/callback",
		OAuthBaseURL: srv.URL,
		APIBaseURL:   srv.URL,
	}, zap.NewNop())

	auth := NewAuthService(client, zap.NewNop())
	return NewCharacterService(client, auth, zap.NewNop())
}

func TestGetCharacterAggregatesSubResources(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/profile/wow/character/tichondrius/arthas", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "profile-us", r.URL.Query().Get("namespace"))
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"name": "Arthas", "level": 80}`))
	})
	mux.HandleFunc("/profile/wow/character/tichondrius/arthas/equipment", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"equipped_items": []}`))
	})
	mux.HandleFunc("/profile/wow/character/tichondrius/arthas/pvp-summary", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no pvp history", http.StatusNotFound)
	})
	mux.HandleFunc("/profile/wow/character/tichondrius/arthas/character-media", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"assets": [{"key": "avatar"}]}`))
	})

	service := newCharacterService(t, mux)

	// Mixed case in, slug form out.
	view, err := service.GetCharacter(context.Background(), "user-token", "Tichondrius", "Arthas", models.GameVersionRetail)
	require.NoError(t, err)

	assert.Equal(t, "Arthas", view.Profile["name"])
	assert.NotNil(t, view.Profile["media"], "media should be merged into the profile object")
	assert.NotNil(t, view.Equipment)
	assert.Nil(t, view.PvP, "failed pvp fetch should degrade to null")
}

func TestGetCharacterMandatoryProfileFailure(t *testing.T) {
	service := newCharacterService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Character not found", http.StatusNotFound)
	}))

	_, err := service.GetCharacter(context.Background(), "user-token", "tichondrius", "ghost", models.GameVersionRetail)
	require.Error(t, err)

	var upstreamErr *blizzard.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusNotFound, upstreamErr.StatusCode)
}

func TestGetCharacterAllOptionalFetchesFail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/profile/wow/character/tichondrius/arthas", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "Arthas"}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	service := newCharacterService(t, mux)

	view, err := service.GetCharacter(context.Background(), "user-token", "tichondrius", "arthas", models.GameVersionRetail)
	require.NoError(t, err, "optional sub-resource failures must not fail the request")

	assert.Nil(t, view.Profile["media"])
	assert.Nil(t, view.Equipment)
	assert.Nil(t, view.PvP)
}

func TestGetCharacterClassicNamespace(t *testing.T) {
	var gotNamespace string
	mux := http.NewServeMux()
	mux.HandleFunc("/profile/wow/character/whitemane/leeroy", func(w http.ResponseWriter, r *http.Request) {
		gotNamespace = r.URL.Query().Get("namespace")
		w.Write([]byte(`{"name": "Leeroy"}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	service := newCharacterService(t, mux)

	_, err := service.GetCharacter(context.Background(), "user-token", "whitemane", "leeroy", models.GameVersionClassic)
	require.NoError(t, err)
	assert.Equal(t, "profile-classic-us", gotNamespace)
}

func TestGetLeaderboardUsesAppToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		w.Write([]byte(`{"access_token": "app-token"}`))
	})
	mux.HandleFunc("/data/wow/pvp-region/us/pvp-season/1/pvp-leaderboard/2v2", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer app-token", r.Header.Get("Authorization"))
		assert.Equal(t, "dynamic-classic-us", r.URL.Query().Get("namespace"))
		w.Write([]byte(`{"entries": [{"rank": 1}]}`))
	})

	service := newCharacterService(t, mux)

	leaderboard, err := service.GetLeaderboard(context.Background(), "2v2", models.GameVersionClassic)
	require.NoError(t, err)
	assert.Contains(t, string(leaderboard), "rank")
}

func TestGetAccountProfilesDegradesPerVersion(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/profile/user/wow", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("namespace") == "profile-us" {
			w.Write([]byte(`{"wow_accounts": []}`))
			return
		}
		http.Error(w, "no classic profile", http.StatusNotFound)
	})

	service := newCharacterService(t, mux)

	profiles := service.GetAccountProfiles(context.Background(), "user-token")
	assert.NotNil(t, profiles.Retail)
	assert.Nil(t, profiles.Classic)
}
