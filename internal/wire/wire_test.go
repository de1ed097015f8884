package wire

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movieflix/internal/data/repository"
	"movieflix/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	repo, err := repository.NewRepository(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	config := &utils.Config{App: utils.AppConfig{Name: "movieflix-app", Port: "3000"}}
	return Wiring(repo, config, zap.NewNop())
}

func doJSON(t *testing.T, app *App, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestCatalogEndToEnd(t *testing.T) {
	app := newTestApp(t)

	// Create a movie.
	rec, env := doJSON(t, app, http.MethodPost, "/api/movies", `{"title":"Dune","genre":"Sci-Fi"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	movie := env["data"].(map[string]any)
	assert.Equal(t, float64(1), movie["id"])
	assert.Equal(t, "", movie["year"])

	// No ratings yet: sentinel average, zero count.
	rec, env = doJSON(t, app, http.MethodGet, "/api/movies", "")
	require.Equal(t, http.StatusOK, rec.Code)
	listed := env["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "—", listed["avgRating"])
	assert.Equal(t, float64(0), listed["ratingsCount"])
	assert.Equal(t, "s/ano", listed["year"])

	// Rate it twice; floored average of 5 and 3 is 4.
	rec, _ = doJSON(t, app, http.MethodPost, "/api/ratings", `{"movieId":1,"score":5}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, env = doJSON(t, app, http.MethodPost, "/api/ratings", `{"movieId":"1","score":"3","user":"alice"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rating := env["data"].(map[string]any)
	assert.Equal(t, float64(1), rating["user_id"])

	rec, env = doJSON(t, app, http.MethodGet, "/api/movies", "")
	require.Equal(t, http.StatusOK, rec.Code)
	listed = env["data"].([]any)[0].(map[string]any)
	assert.Equal(t, float64(4), listed["avgRating"])
	assert.Equal(t, float64(2), listed["ratingsCount"])

	// The rating under a new name created that user.
	rec, env = doJSON(t, app, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	users := env["data"].([]any)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].(map[string]any)["name"])
}

func TestErrorStatusCodes(t *testing.T) {
	app := newTestApp(t)

	rec, _ := doJSON(t, app, http.MethodPost, "/api/movies", `{"title":"Dune","genre":"Sci-Fi"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("validation error is 400", func(t *testing.T) {
		rec, env := doJSON(t, app, http.MethodPost, "/api/ratings", `{"movieId":1,"score":6}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, env["status"])
	})

	t.Run("unknown movie is 404", func(t *testing.T) {
		rec, _ := doJSON(t, app, http.MethodPost, "/api/ratings", `{"movieId":99,"score":5}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("duplicate user id is 409", func(t *testing.T) {
		rec, _ := doJSON(t, app, http.MethodPost, "/api/users", `{"id":7,"name":"Frank"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec, _ = doJSON(t, app, http.MethodPost, "/api/users", `{"id":7,"name":"Grace"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		rec, _ := doJSON(t, app, http.MethodPost, "/api/movies", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec, env := doJSON(t, app, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, env["status"])
	assert.Equal(t, "ok", env["message"])

	data := env["data"].(map[string]any)
	assert.Equal(t, "movieflix-app", data["service"])

	// Every response carries a request id.
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
