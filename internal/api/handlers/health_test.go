package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"identity-org-backend/internal/api/handlers"
	"identity-org-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthRouter(t *testing.T) (*testutils.HTTPTestSuite, func()) {
	db := testutils.NewSQLiteDB(t)
	router := testutils.SetupHTTPTest()
	handler := handlers.NewHealthHandler(db, "1.2.3")
	router.Router.GET("/health", handler.Health)
	router.Router.GET("/health/ready", handler.Ready)
	router.Router.GET("/health/live", handler.Live)

	closeDB := func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())
	}
	return router, closeDB
}

func TestHealthHealthy(t *testing.T) {
	router, _ := newHealthRouter(t)

	rec := router.MakeRequest(http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body handlers.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "1.2.3", body.Version)
	assert.Equal(t, "healthy", body.Services["database"])
}

func TestHealthUnhealthyWhenDatabaseClosed(t *testing.T) {
	router, closeDB := newHealthRouter(t)
	closeDB()

	health := router.MakeRequest(http.MethodGet, "/health", nil)
	ready := router.MakeRequest(http.MethodGet, "/health/ready", nil)

	assert.Equal(t, http.StatusServiceUnavailable, health.Code)
	assert.Equal(t, http.StatusServiceUnavailable, ready.Code)
	assert.Contains(t, ready.Body.String(), `"ready":false`)
}

func TestLive(t *testing.T) {
	router, _ := newHealthRouter(t)

	rec := router.MakeRequest(http.MethodGet, "/health/live", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"alive":true`)
}
