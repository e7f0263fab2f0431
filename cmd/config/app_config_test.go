package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"barnmonitor-backend/internal/middleware"
	"barnmonitor-backend/internal/testutil"
	"barnmonitor-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &utils.Config{
		AppPort:        "0",
		CORSOrigin:     "http://localhost:3000",
		LogLevel:       "error",
		DBType:         "sqlite",
		DBName:         ":memory:",
		SessionSecret:  "test-secret",
		SessionTTLDays: 30,
	}
	app, err := NewApp(testutil.NewDB(t), cfg, zap.NewNop())
	require.NoError(t, err)
	return app
}

func call(t *testing.T, app *fiber.App, method, path string, body any, token string) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

type authPayload struct {
	Farmer struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
	} `json:"farmer"`
	Token string `json:"token"`
}

func signup(t *testing.T, app *fiber.App, email string) authPayload {
	t.Helper()
	resp, env := call(t, app, fiber.MethodPost, "/signup", map[string]string{
		"name":     "Ana",
		"email":    email,
		"phone":    "555-0100",
		"password": "hunter22",
		"address":  "1 Farm Road",
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, env.Error)

	var s authPayload
	require.NoError(t, json.Unmarshal(env.Data, &s))
	require.NotEmpty(t, s.Token)
	return s
}

func TestPing(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/ping", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "pong", body["message"])
}

func TestSwaggerDocumentsEveryRoute(t *testing.T) {
	app := newTestApp(t)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(swag.GetSwagger(swag.Name).ReadDoc()), &doc))

	documented := 0
	for _, route := range app.GetRoutes(true) {
		if route.Method == fiber.MethodHead || strings.HasPrefix(route.Path, "/swagger") {
			continue
		}
		path := strings.ReplaceAll(route.Path, ":id", "{id}")
		_, ok := doc.Paths[path][strings.ToLower(route.Method)]
		assert.True(t, ok, "%s %s is not documented", route.Method, route.Path)
		documented++
	}
	assert.Equal(t, 40, documented)
}

func TestSessionLifecycle(t *testing.T) {
	app := newTestApp(t)

	created := signup(t, app, "ana@example.com")

	resp, env := call(t, app, fiber.MethodPost, "/login", map[string]string{
		"email":    "ana@example.com",
		"password": "hunter22",
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, env.Error)

	var loggedIn authPayload
	require.NoError(t, json.Unmarshal(env.Data, &loggedIn))
	assert.Equal(t, created.Farmer.ID, loggedIn.Farmer.ID)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	resp, env = call(t, app, fiber.MethodGet, "/check_session", nil, loggedIn.Token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"email":"ana@example.com"`)
	assert.NotContains(t, string(env.Data), "password")

	resp, _ = call(t, app, fiber.MethodDelete, "/logout", nil, loggedIn.Token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, env = call(t, app, fiber.MethodGet, "/check_session", nil, loggedIn.Token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Status)

	// the signup session is independent of the login session
	resp, _ = call(t, app, fiber.MethodGet, "/check_session", nil, created.Token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = call(t, app, fiber.MethodDelete, "/clear_session", nil, created.Token)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "ana@example.com")

	_, wrongPassword := call(t, app, fiber.MethodPost, "/login", map[string]string{
		"email": "ana@example.com", "password": "nope",
	}, "")
	resp, unknownEmail := call(t, app, fiber.MethodPost, "/login", map[string]string{
		"email": "bob@example.com", "password": "nope",
	}, "")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, wrongPassword, unknownEmail)
	assert.Equal(t, "Invalid email or password", unknownEmail.Error)
}

func TestSignupDuplicateEmail(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "ana@example.com")

	resp, env := call(t, app, fiber.MethodPost, "/signup", map[string]string{
		"name": "Ana", "email": "ana@example.com", "phone": "1", "password": "x", "address": "y",
	}, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.False(t, env.Status)
}

func TestSignupOverlongPassword(t *testing.T) {
	app := newTestApp(t)

	resp, env := call(t, app, fiber.MethodPost, "/signup", map[string]string{
		"name": "Ana", "email": "ana@example.com", "phone": "1", "password": strings.Repeat("p", 73), "address": "y",
	}, "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "password must be at most 72 bytes", env.Error)
}

func TestWritesRequireSession(t *testing.T) {
	app := newTestApp(t)

	resp, env := call(t, app, fiber.MethodPost, "/animal_types", map[string]string{"type_name": "Goat"}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Status)

	resp, _ = call(t, app, fiber.MethodPost, "/animal_types", map[string]string{"type_name": "Goat"}, "not-a-token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = call(t, app, fiber.MethodGet, "/animal_types", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRecordLifecycle(t *testing.T) {
	app := newTestApp(t)
	s := signup(t, app, "ana@example.com")

	resp, env := call(t, app, fiber.MethodPost, "/animals", map[string]any{"breed": "Jersey"}, s.Token)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing field: name", env.Error)

	resp, env = call(t, app, fiber.MethodPost, "/animals", map[string]any{
		"name": "Bessie", "birth_date": "2021-04-01", "breed": "Jersey",
	}, s.Token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, env.Error)

	var animal struct {
		ID       uint    `json:"id"`
		Breed    *string `json:"breed"`
		FarmerID *uint   `json:"farmer_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &animal))
	require.NotNil(t, animal.FarmerID)
	assert.Equal(t, s.Farmer.ID, *animal.FarmerID)

	animalPath := fmt.Sprintf("/animals/%d", animal.ID)
	resp, env = call(t, app, fiber.MethodPatch, animalPath, map[string]any{"breed": "Holstein"}, s.Token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, env.Error)
	assert.Contains(t, string(env.Data), `"breed":"Holstein"`)
	assert.Contains(t, string(env.Data), `"name":"Bessie"`)

	resp, env = call(t, app, fiber.MethodPost, "/productions", map[string]any{
		"animal_id": animal.ID, "product_type": "milk", "quantity": 20, "production_date": "2024-01-03",
	}, s.Token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, env.Error)

	resp, env = call(t, app, fiber.MethodPost, "/sales", map[string]any{
		"animal_id": animal.ID, "product_type": "milk", "quantity_sold": -1, "sale_date": "2024-01-04", "amount": 3.5,
	}, s.Token)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode, env.Error)

	resp, env = call(t, app, fiber.MethodPost, "/health_records", map[string]any{
		"name": "Bessie", "checkup_date": "2024-01-02", "treatment": "vaccine", "vet_name": "Dr. K",
	}, s.Token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, env.Error)

	resp, env = call(t, app, fiber.MethodGet, animalPath, nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"treatment":"vaccine"`)
	assert.Contains(t, string(env.Data), `"product_type":"milk"`)

	resp, _ = call(t, app, fiber.MethodGet, "/animals/abc", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp, _ = call(t, app, fiber.MethodGet, "/animals/999", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, env = call(t, app, fiber.MethodDelete, fmt.Sprintf("/farmers/%d", s.Farmer.ID), nil, s.Token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, env.Error)

	for _, path := range []string{"/animals", "/productions", "/health_records", "/sales"} {
		resp, env = call(t, app, fiber.MethodGet, path, nil, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		assert.JSONEq(t, `[]`, string(env.Data), path)
	}

	resp, _ = call(t, app, fiber.MethodGet, "/check_session", nil, s.Token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
