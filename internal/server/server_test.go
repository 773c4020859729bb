package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Scoreline_Go/internal/handler"
)

const testAPIKey = "test-key"

type stubPool struct{ err error }

func (p stubPool) Ping(context.Context) error { return p.err }
func (p stubPool) Close()                     {}

// Routes exercised here reject the request before any service is called,
// so an empty Services value is enough.
func newTestRouter() http.Handler {
	return NewRouter(testAPIKey, nil, stubPool{}, Services{})
}

func serve(h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter(t *testing.T) {
	router := newTestRouter()
	authed := map[string]string{HeaderAPIKey: testAPIKey}

	t.Run("Healthz is public", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/healthz", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	})

	t.Run("Readyz is public", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/readyz", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("API requires key", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/api/v1/leaderboards/all_time", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Submit without caller", func(t *testing.T) {
		rec := serve(router, http.MethodPost, "/api/v1/predictions", `{"match_id":1,"home_score":1,"away_score":0}`, authed)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), handler.ErrMsgMissingUserHeader)
	})

	t.Run("Malformed caller", func(t *testing.T) {
		rec := serve(router, http.MethodPost, "/api/v1/predictions", `{}`, map[string]string{
			HeaderAPIKey: testAPIKey,
			HeaderUserID: "not-a-uuid",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unknown leaderboard scope", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/api/v1/leaderboards/weekly", "", authed)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Bad match id on admin route", func(t *testing.T) {
		rec := serve(router, http.MethodPost, "/api/v1/admin/matches/zero/score", "", authed)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Bad user filter on admin events", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/api/v1/admin/events?user_id=bob", "", authed)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), handler.ErrMsgInvalidUserFilter)
	})

	t.Run("Unknown route", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/api/v1/nope", "", authed)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Wrong method", func(t *testing.T) {
		rec := serve(router, http.MethodDelete, "/api/v1/predictions/1", "", authed)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
