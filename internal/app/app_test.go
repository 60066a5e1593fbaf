package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ctl "support-desk/internal/controller"
	complaintService "support-desk/internal/service/complaint"
	csrfService "support-desk/internal/service/csrf"
	"support-desk/pkg/config"
	"support-desk/pkg/email"
	"support-desk/pkg/model"
	"support-desk/pkg/ratelimit"
	"support-desk/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider stands in for the mail relay.
type stubProvider struct {
	err   error
	sends int
}

func (s *stubProvider) SendEmail(ctx context.Context, to []string, subject string, body email.EmailBody) error {
	return s.err
}

func (s *stubProvider) SendTemplateEmail(ctx context.Context, to []string, templateName string, data interface{}) error {
	s.sends++
	return s.err
}

func (s *stubProvider) ValidateProvider(ctx context.Context) error {
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Port:        "8080",
		Environment: config.EnvDevelopment,
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Origin"},
		},
		CSRF: config.CSRFConfig{
			Enabled:  true,
			TokenTTL: 30 * time.Minute,
		},
		RateLimit: config.RateLimitConfig{
			MaxRequests: 10,
			Window:      15 * time.Minute,
		},
	}
}

func newTestServer(t *testing.T, provider email.Provider, limit int) *gin.Engine {
	t.Helper()

	cfg := testConfig()
	cfg.RateLimit.MaxRequests = limit

	csrfSvc := csrfService.NewService(token.NewMemoryStore(), cfg.CSRF.TokenTTL)
	complaintSvc := complaintService.NewService(provider, "support@example.com")
	controller := ctl.NewController(csrfSvc, complaintSvc, cfg.CSRF.Enabled, cfg.IsProduction())

	server := &appServer{
		config:     cfg,
		controller: controller,
		limiter:    ratelimit.NewMemoryLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window),
	}
	return server.RegisterHandlers()
}

func validBody() []byte {
	body, _ := json.Marshal(model.ComplaintRequest{
		Username:    "player_one",
		Email:       "player@example.com",
		GameID:      "abc-123",
		Platform:    model.PlatformPC,
		IssueType:   model.IssueTechnical,
		Description: "The game crashes on startup.",
		DateOfIssue: time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
		PhoneNumber: "+1234567890",
	})
	return body
}

// fetchToken calls GET /get-csrf-token and returns the issued cookies.
func fetchToken(t *testing.T, handler *gin.Engine) []*http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get-csrf-token", nil)
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	return cookies
}

func submit(handler *gin.Engine, body []byte, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/send-complaint", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	handler.ServeHTTP(w, req)
	return w
}

type complaintResponse struct {
	Success         bool              `json:"success"`
	Message         string            `json:"message"`
	ReferenceNumber string            `json:"referenceNumber"`
	Errors          map[string]string `json:"errors"`
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) complaintResponse {
	t.Helper()

	var resp complaintResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCSRFTokenCookieAttributes(t *testing.T) {
	handler := newTestServer(t, &stubProvider{}, 10)

	cookies := fetchToken(t, handler)

	names := map[string]bool{}
	for _, c := range cookies {
		names[c.Name] = true
		assert.True(t, c.HttpOnly, "cookie %s must be http-only", c.Name)
		assert.Equal(t, http.SameSiteStrictMode, c.SameSite, "cookie %s must be same-site strict", c.Name)
		assert.False(t, c.Secure, "secure flag is reserved for production")
		assert.Equal(t, int(30*time.Minute/time.Second), c.MaxAge)
	}
	assert.True(t, names[ctl.CookieSessionID])
	assert.True(t, names[ctl.CookieCSRFToken])
}

func TestComplaintFlowSucceeds(t *testing.T) {
	provider := &stubProvider{}
	handler := newTestServer(t, provider, 10)

	cookies := fetchToken(t, handler)
	w := submit(handler, validBody(), cookies)

	require.Equal(t, http.StatusOK, w.Code)
	resp := parseResponse(t, w)
	assert.True(t, resp.Success)
	assert.Regexp(t, `^REF-\d{8}$`, resp.ReferenceNumber)
	assert.Equal(t, 1, provider.sends)
}

func TestTokenCannotBeReplayed(t *testing.T) {
	handler := newTestServer(t, &stubProvider{}, 10)

	cookies := fetchToken(t, handler)

	w := submit(handler, validBody(), cookies)
	require.Equal(t, http.StatusOK, w.Code)

	// the token was consumed by the successful submission
	w = submit(handler, validBody(), cookies)
	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := parseResponse(t, w)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
}

func TestSubmitWithoutTokenIsForbidden(t *testing.T) {
	provider := &stubProvider{}
	handler := newTestServer(t, provider, 10)

	w := submit(handler, validBody(), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := parseResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, 0, provider.sends)
}

func TestValidationFailureListsOnlyInvalidFields(t *testing.T) {
	provider := &stubProvider{}
	handler := newTestServer(t, provider, 10)

	cookies := fetchToken(t, handler)

	var req model.ComplaintRequest
	require.NoError(t, json.Unmarshal(validBody(), &req))
	req.Username = "ab"
	req.PhoneNumber = "123"
	body, _ := json.Marshal(req)

	w := submit(handler, body, cookies)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := parseResponse(t, w)
	assert.False(t, resp.Success)
	assert.Len(t, resp.Errors, 2)
	assert.Contains(t, resp.Errors, "username")
	assert.Contains(t, resp.Errors, "phoneNumber")
	assert.Equal(t, 0, provider.sends)

	// a failed submission does not consume the token
	w = submit(handler, validBody(), cookies)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMalformedJSONIsBadRequest(t *testing.T) {
	handler := newTestServer(t, &stubProvider{}, 10)

	cookies := fetchToken(t, handler)
	w := submit(handler, []byte("{not json"), cookies)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := parseResponse(t, w)
	assert.False(t, resp.Success)
}

func TestRelayFailureIsOpaqueServerError(t *testing.T) {
	handler := newTestServer(t, &stubProvider{err: errors.New("smtp: 554 rejected")}, 10)

	cookies := fetchToken(t, handler)
	w := submit(handler, validBody(), cookies)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	resp := parseResponse(t, w)
	assert.False(t, resp.Success)
	assert.NotContains(t, resp.Message, "smtp", "relay internals must not leak")

	// the token survives a relay failure
	w = submit(handler, validBody(), cookies)
	assert.NotEqual(t, http.StatusForbidden, w.Code)
}

func TestRateLimitRejectsExcessSubmissions(t *testing.T) {
	handler := newTestServer(t, &stubProvider{}, 10)

	// every submission counts against the source address, valid or not
	for i := 0; i < 10; i++ {
		w := submit(handler, validBody(), nil)
		require.Equal(t, http.StatusForbidden, w.Code, "request %d should pass the limiter", i+1)
	}

	w := submit(handler, validBody(), nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	resp := parseResponse(t, w)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
}

func TestHealthCheck(t *testing.T) {
	handler := newTestServer(t, &stubProvider{}, 10)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	handler := newTestServer(t, &stubProvider{}, 10)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get-csrf-token", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	handler := newTestServer(t, &stubProvider{}, 10)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get-csrf-token", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	handler.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
