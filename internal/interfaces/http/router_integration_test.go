package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	admindomain "helperdesk/internal/domain/admin"
	"helperdesk/internal/infrastructure/auth"
	"helperdesk/internal/infrastructure/config"
	"helperdesk/internal/infrastructure/persistence/models"
	"helperdesk/internal/infrastructure/repository"
	"helperdesk/internal/shared/authorization"
	sharedConfig "helperdesk/internal/shared/config"
	"helperdesk/internal/shared/logger"
)

func setupTestServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.HelperModel{},
		&models.TicketModel{},
		&models.AdminAccountModel{},
		&models.SessionModel{},
		&models.AuditEntryModel{},
	))

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{Host: "127.0.0.1", Port: 0, Mode: "test"},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			Session:  sharedConfig.SessionConfig{ExpiresHours: 1},
			Cookie:   sharedConfig.CookieConfig{Path: "/", SameSite: "Lax"},
		},
		Backup: sharedConfig.BackupConfig{DumpCommand: "mysqldump", OutputDir: t.TempDir(), TimeoutMin: 1},
	}

	router := NewRouter(db, cfg, logger.NewLogger())
	router.SetupRoutes()

	srv := httptest.NewServer(router.Engine())
	t.Cleanup(srv.Close)

	return srv, db
}

func seedAccount(t *testing.T, db *gorm.DB, username, password string, rank authorization.Rank) {
	t.Helper()
	hasher := auth.NewBcryptPasswordHasher(4)
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	account, err := admindomain.NewAccount(username, hash, rank)
	require.NoError(t, err)
	require.NoError(t, repository.NewAdminAccountRepository(db).Save(t.Context(), account))
}

// login signs in and returns the session cookie.
func login(t *testing.T, srv *httptest.Server, username, password string) *http.Cookie {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := http.Post(srv.URL+"/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session_token" {
			return cookie
		}
	}
	t.Fatal("no session cookie in login response")
	return nil
}

func doRequest(t *testing.T, srv *httptest.Server, method, path string, cookie *http.Cookie, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data
}

func TestRouter_RequiresAuthentication(t *testing.T) {
	srv, _ := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/helpers")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_LoginAndMe(t *testing.T) {
	srv, db := setupTestServer(t)
	seedAccount(t, db, "root", "password123", authorization.RankSuperAdmin)

	cookie := login(t, srv, "root", "password123")

	resp := doRequest(t, srv, http.MethodGet, "/auth/me", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeData(t, resp)
	assert.Equal(t, "root", data["name"])
	assert.Equal(t, "SuperAdmin", data["rank"])
}

func TestRouter_WrongPasswordRejected(t *testing.T) {
	srv, db := setupTestServer(t)
	seedAccount(t, db, "root", "password123", authorization.RankSuperAdmin)

	body, _ := json.Marshal(map[string]string{"username": "root", "password": "nope"})
	resp, err := http.Post(srv.URL+"/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_HelperLifecycle(t *testing.T) {
	srv, db := setupTestServer(t)
	seedAccount(t, db, "root", "password123", authorization.RankSuperAdmin)
	cookie := login(t, srv, "root", "password123")

	resp := doRequest(t, srv, http.MethodPost, "/helpers", cookie, map[string]any{
		"name": "alice",
		"rank": "Moder",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeData(t, resp)
	helperID := uint(created["helper_id"].(float64))
	require.NotZero(t, helperID)

	resp = doRequest(t, srv, http.MethodPost, fmt.Sprintf("/helpers/%d/warnings", helperID), cookie, map[string]any{
		"delta": 2,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	adjusted := decodeData(t, resp)
	assert.Equal(t, float64(2), adjusted["warning_count"])

	resp = doRequest(t, srv, http.MethodDelete, fmt.Sprintf("/helpers/%d", helperID), cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, srv, http.MethodGet, fmt.Sprintf("/helpers/%d", helperID), cookie, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestRouter_AdminSurfaceGatedToSuperAdmin(t *testing.T) {
	srv, db := setupTestServer(t)
	seedAccount(t, db, "root", "password123", authorization.RankSuperAdmin)
	seedAccount(t, db, "manager", "password123", authorization.RankManager)

	managerCookie := login(t, srv, "manager", "password123")

	for _, path := range []string{"/admins", "/audit", "/backup/status"} {
		resp := doRequest(t, srv, http.MethodGet, path, managerCookie, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, "path %s", path)
		resp.Body.Close()
	}

	rootCookie := login(t, srv, "root", "password123")
	resp := doRequest(t, srv, http.MethodGet, "/admins", rootCookie, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestRouter_SelfDeletionRefused(t *testing.T) {
	srv, db := setupTestServer(t)
	seedAccount(t, db, "root", "password123", authorization.RankSuperAdmin)
	cookie := login(t, srv, "root", "password123")

	resp := doRequest(t, srv, http.MethodGet, "/auth/me", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decodeData(t, resp)
	selfID := uint(me["id"].(float64))

	resp = doRequest(t, srv, http.MethodDelete, fmt.Sprintf("/admins/%d", selfID), cookie, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestRouter_LogoutInvalidatesSession(t *testing.T) {
	srv, db := setupTestServer(t)
	seedAccount(t, db, "root", "password123", authorization.RankSuperAdmin)
	cookie := login(t, srv, "root", "password123")

	resp := doRequest(t, srv, http.MethodPost, "/auth/logout", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, srv, http.MethodGet, "/auth/me", cookie, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
