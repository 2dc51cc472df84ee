package app

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"awards_backend/internal/config"
	"awards_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	Server *httptest.Server
	Repo   *repositories.UserRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Project.Name = "Sharjah Assets API"
	cfg.Project.APIPrefix = "/api/v1"
	cfg.Server.Env = "development"
	cfg.CORS.Origins = []string{"http://localhost:3000"}
	cfg.Store.Path = filepath.Join(t.TempDir(), "users.json")

	repo := repositories.NewUserRepository(cfg.Store.Path)
	router := SetupRouter(cfg, repo)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testServer{Server: server, Repo: repo}
}

// sendRequest performs a JSON request against the test server and
// returns the response together with its body.
func (ts *testServer) sendRequest(t *testing.T, method, path string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.Server.URL+"/api/v1"+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(raw)
}

func TestHealth(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	res, body := ts.sendRequest(t, "GET", "/health", nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestCategoriesEndpoints(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	res, body := ts.sendRequest(t, "GET", "/categories", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var listing struct {
		Categories []struct {
			ID            string `json:"id"`
			Subcategories []any  `json:"subcategories"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Categories, 5)
	assert.Equal(t, "department", listing.Categories[0].ID)

	res, body = ts.sendRequest(t, "GET", "/categories/employee", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "الموظف المتميز")

	res, _ = ts.sendRequest(t, "GET", "/categories/unknown", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestContentEndpoints(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	res, body := ts.sendRequest(t, "GET", "/content/about", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "عن الجائزة")
	assert.Contains(t, body, "mission")

	res, body = ts.sendRequest(t, "GET", "/content/steps", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "How to Apply")

	var steps struct {
		Steps []struct {
			Number int `json:"number"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &steps))
	assert.Len(t, steps.Steps, 6)
}

func TestSignupAndLoginFlow(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	res, body := ts.sendRequest(t, "POST", "/auth/signup", map[string]interface{}{
		"email":    "model@test.com",
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, body, `"id":1`)
	// The password never leaves the server, hashed or not.
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "super_password123")

	// Duplicate email
	res, body = ts.sendRequest(t, "POST", "/auth/signup", map[string]interface{}{
		"email":    "model@test.com",
		"password": "other_password",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "Email already registered")

	// Wrong password
	res, _ = ts.sendRequest(t, "POST", "/auth/login", map[string]interface{}{
		"email":    "model@test.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Correct credentials
	res, body = ts.sendRequest(t, "POST", "/auth/login", map[string]interface{}{
		"email":    "model@test.com",
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "model@test.com")

	res, body = ts.sendRequest(t, "GET", "/auth/me/1", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"registered":false`)

	res, _ = ts.sendRequest(t, "GET", "/auth/me/42", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestSignup_InvalidBody(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	res, body := ts.sendRequest(t, "POST", "/auth/signup", map[string]interface{}{
		"email":    "not-an-email",
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "VALIDATION_FAILED")
	assert.Contains(t, body, "Must be a valid email address")

	res, body = ts.sendRequest(t, "POST", "/auth/signup", map[string]interface{}{
		"email": "a@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "VALIDATION_FAILED")
	assert.Contains(t, body, "This field is required")

	res, body = ts.sendRequest(t, "POST", "/auth/signup", map[string]interface{}{
		"email":    "a@x.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "VALIDATION_FAILED")
	assert.Contains(t, body, "password")
}

// Full application lifecycle over HTTP: signup, draft, registration,
// admin review, submission.
func TestApplicationWorkflow(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	res, _ := ts.sendRequest(t, "POST", "/auth/signup", map[string]interface{}{
		"email":    "a@x.com",
		"password": "password1",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	// Draft holds the per-category payload the admin view reads.
	res, body := ts.sendRequest(t, "POST", "/auth/draft/1", map[string]interface{}{
		"data": map[string]interface{}{
			"employee": map[string]interface{}{"name": "مقدم الطلب"},
		},
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Draft saved successfully")

	res, body = ts.sendRequest(t, "GET", "/auth/draft/1", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "مقدم الطلب")

	res, body = ts.sendRequest(t, "POST", "/auth/complete-registration/1", map[string]interface{}{
		"categorySlug": "employee",
		"data":         map[string]interface{}{"position": "engineer"},
		"status":       "waiting-approval",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Registration completed successfully")

	res, body = ts.sendRequest(t, "GET", "/auth/check-category/1/employee", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"hasApplied":true,"appliedCategories":["employee"]}`, body)

	// Second registration for the same category conflicts.
	res, _ = ts.sendRequest(t, "POST", "/auth/complete-registration/1", map[string]interface{}{
		"categorySlug": "employee",
		"data":         map[string]interface{}{},
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	res, body = ts.sendRequest(t, "GET", "/auth/admin/pending-registrations", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var pending struct {
		Pending []struct {
			UserID           int                    `json:"userId"`
			CategorySlug     string                 `json:"categorySlug"`
			RegistrationData map[string]interface{} `json:"registrationData"`
		} `json:"pending"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &pending))
	require.Len(t, pending.Pending, 1)
	assert.Equal(t, 1, pending.Pending[0].UserID)
	assert.Equal(t, "employee", pending.Pending[0].CategorySlug)
	assert.Equal(t, "مقدم الطلب", pending.Pending[0].RegistrationData["name"])

	res, body = ts.sendRequest(t, "POST", "/auth/admin/review-registration", map[string]interface{}{
		"userId":       1,
		"categorySlug": "employee",
		"action":       "approve",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"newStatus":"qualified"`)

	// Reviewing a terminal state again is a bad request.
	res, _ = ts.sendRequest(t, "POST", "/auth/admin/review-registration", map[string]interface{}{
		"userId":       1,
		"categorySlug": "employee",
		"action":       "reject",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, body = ts.sendRequest(t, "POST", "/auth/submit-application/1", map[string]interface{}{
		"categorySlug":    "employee",
		"referenceNumber": "SAM-2025-001",
		"submittedAt":     "2025-03-01T10:00:00Z",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Application submitted successfully")

	res, body = ts.sendRequest(t, "GET", "/auth/me/1", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "SAM-2025-001")
	assert.Contains(t, body, `"registered":true`)
}

func TestReviewRegistration_InvalidAction(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	res, body := ts.sendRequest(t, "POST", "/auth/admin/review-registration", map[string]interface{}{
		"userId":       1,
		"categorySlug": "employee",
		"action":       "publish",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Action must be 'approve' or 'reject'")
}

func TestSeedFirstAdmin(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Store.Path = filepath.Join(t.TempDir(), "users.json")
	cfg.FirstAdminEmail = "admin@test.com"
	cfg.FirstAdminPassword = "admin_password"

	repo := repositories.NewUserRepository(cfg.Store.Path)

	require.NoError(t, seedFirstAdmin(repo, cfg))
	// Idempotent across restarts.
	require.NoError(t, seedFirstAdmin(repo, cfg))

	db, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, db.Users, 1)
	assert.Equal(t, "admin@test.com", db.Users[0].Email)
	assert.True(t, db.Users[0].IsAdmin)
	assert.NotEqual(t, "admin_password", db.Users[0].Password)
}

func TestCORSHeaders(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	req, err := http.NewRequest("GET", ts.Server.URL+"/api/v1/health", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	res.Body.Close()

	assert.Equal(t, "http://localhost:3000", res.Header.Get("Access-Control-Allow-Origin"))

	// Unknown origins get nothing back.
	req.Header.Set("Origin", "http://evil.example")
	res, err = ts.Server.Client().Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Empty(t, res.Header.Get("Access-Control-Allow-Origin"))
}
