package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/JosephVasc/arenameta/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeReturnsRedirectURL(t *testing.T) {
	router := newTestRouter(t, http.NewServeMux(), newFakeStore())

	w := doRequest(router, http.MethodPost, "/api/auth/battlenet", `{"state": "xyz"}`, false)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AuthorizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.URL, "state=xyz")
	assert.Contains(t, resp.URL, "scope=wow.profile+openid")
	assert.Contains(t, resp.URL, "client_id=test-client")
}

func TestAuthorizeRequiresState(t *testing.T) {
	router := newTestRouter(t, http.NewServeMux(), newFakeStore())

	w := doRequest(router, http.MethodPost, "/api/auth/battlenet", `{}`, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCallbackExchangesCodeAndFetchesProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		w.Write([]byte(`{"access_token": "user-token"}`))
	})
	registerUserInfo(mux)

	router := newTestRouter(t, mux, newFakeStore())

	w := doRequest(router, http.MethodPost, "/api/auth/battlenet/callback", `{"code": "the-code", "state": "xyz"}`, false)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CallbackResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user-token", resp.AccessToken)
	assert.Equal(t, "acct-1", resp.Profile.ID)
	assert.Equal(t, "Tester#1234", resp.Profile.Tag)
}

func TestCallbackForwardsTokenExchangeFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid_grant"}`, http.StatusForbidden)
	})

	router := newTestRouter(t, mux, newFakeStore())

	w := doRequest(router, http.MethodPost, "/api/auth/battlenet/callback", `{"code": "stale", "state": "xyz"}`, false)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "detail")
}
