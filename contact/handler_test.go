package contact_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/contact"
)

type handlerEnv struct {
	handler *contact.Handler
	sender  *stubSender
}

func newHandlerEnv(t *testing.T, cfg contact.Config) handlerEnv {
	t.Helper()
	if cfg.RecipientEmail == "" {
		cfg.RecipientEmail = "owner@example.com"
	}
	if cfg.RateLimitRequests == 0 {
		cfg.RateLimitRequests = 5
	}

	sender := &stubSender{}
	svc := contact.NewService(sender, newLimiter(t, cfg.RateLimitRequests), cfg.RecipientEmail)
	return handlerEnv{
		handler: contact.NewHandler(svc, cfg, nil),
		sender:  sender,
	}
}

func postJSON(env handlerEnv, body string, headers map[string]string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, r)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) contact.Response {
	t.Helper()
	var resp contact.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandler_Submit(t *testing.T) {
	t.Parallel()

	t.Run("valid submission", func(t *testing.T) {
		t.Parallel()
		env := newHandlerEnv(t, contact.Config{})

		w := postJSON(env, `{"name":"Jane Doe","email":"jane@example.com","message":"Hello, I would like to get in touch."}`, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, "Message sent successfully!", resp.Message)

		calls := env.sender.sent()
		require.Len(t, calls, 1)
		assert.Equal(t, "jane@example.com", calls[0].ReplyTo)
		assert.Equal(t, "owner@example.com", calls[0].To)
	})

	t.Run("validation failure reports every complaint", func(t *testing.T) {
		t.Parallel()
		env := newHandlerEnv(t, contact.Config{})

		w := postJSON(env, `{"name":"J","email":"not-an-email","message":"short"}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, "Validation failed", resp.Message)

		complaints := strings.Split(resp.Error, ", ")
		assert.Len(t, complaints, 3)
		assert.Contains(t, resp.Error, "name must be at least 2 characters long")
		assert.Contains(t, resp.Error, "email must be a valid email address")
		assert.Contains(t, resp.Error, "message must be at least 10 characters long")

		assert.Empty(t, env.sender.sent(), "dispatcher must not run for invalid submissions")
	})

	t.Run("unparseable body", func(t *testing.T) {
		t.Parallel()
		env := newHandlerEnv(t, contact.Config{})

		w := postJSON(env, `{"name":`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid JSON in request body", resp.Message)
		assert.Empty(t, env.sender.sent())
	})

	t.Run("provider failure returns generic message", func(t *testing.T) {
		t.Parallel()
		env := newHandlerEnv(t, contact.Config{})
		env.sender.err = assert.AnError

		w := postJSON(env, `{"name":"Jane Doe","email":"jane@example.com","message":"Hello, I would like to get in touch."}`, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeResponse(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, "Failed to send email. Please try again.", resp.Message)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error(), "provider detail must not leak")
	})
}

func TestHandler_MethodGating(t *testing.T) {
	t.Parallel()

	t.Run("options preflight", func(t *testing.T) {
		t.Parallel()
		env := newHandlerEnv(t, contact.Config{})

		r := httptest.NewRequest(http.MethodOptions, "/contact", nil)
		w := httptest.NewRecorder()
		env.handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"CORS preflight successful"}`, w.Body.String())
		assert.Empty(t, env.sender.sent())
	})

	t.Run("non-post rejected", func(t *testing.T) {
		t.Parallel()
		env := newHandlerEnv(t, contact.Config{})

		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			r := httptest.NewRequest(method, "/contact", nil)
			w := httptest.NewRecorder()
			env.handler.ServeHTTP(w, r)

			assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, "Method not allowed. Use POST.", resp.Message)
		}
	})
}

func TestHandler_RateLimiting(t *testing.T) {
	t.Parallel()

	body := `{"name":"Jane Doe","email":"jane@example.com","message":"Hello, I would like to get in touch."}`
	clientHeaders := map[string]string{"X-Forwarded-For": "203.0.113.7"}

	t.Run("sixth request within the window is denied", func(t *testing.T) {
		t.Parallel()
		env := newHandlerEnv(t, contact.Config{RateLimitRequests: 5})

		for i := 0; i < 5; i++ {
			w := postJSON(env, body, clientHeaders)
			assert.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
		}

		w := postJSON(env, body, clientHeaders)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		resp := decodeResponse(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, "Too many requests. Please try again later.", resp.Message)

		assert.Len(t, env.sender.sent(), 5, "dispatcher must not run for rate-limited requests")
	})

	t.Run("unresolvable clients share the unknown bucket", func(t *testing.T) {
		t.Parallel()
		env := newHandlerEnv(t, contact.Config{RateLimitRequests: 1})

		send := func() *httptest.ResponseRecorder {
			r := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
			r.Header.Set("Content-Type", "application/json")
			r.RemoteAddr = "unresolvable"
			w := httptest.NewRecorder()
			env.handler.ServeHTTP(w, r)
			return w
		}

		assert.Equal(t, http.StatusOK, send().Code)
		assert.Equal(t, http.StatusTooManyRequests, send().Code)
	})
}

func TestHandler_CORS(t *testing.T) {
	t.Parallel()

	t.Run("wildcard when no allow-list configured", func(t *testing.T) {
		t.Parallel()
		env := newHandlerEnv(t, contact.Config{})

		w := postJSON(env, `{}`, map[string]string{"Origin": "https://anywhere.example"})
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("listed origin echoed back", func(t *testing.T) {
		t.Parallel()
		env := newHandlerEnv(t, contact.Config{AllowedOrigins: []string{"https://site.example"}})

		w := postJSON(env, `{}`, map[string]string{"Origin": "https://site.example"})
		assert.Equal(t, "https://site.example", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin denied with sentinel", func(t *testing.T) {
		t.Parallel()
		env := newHandlerEnv(t, contact.Config{AllowedOrigins: []string{"https://site.example"}})

		w := postJSON(env, `{}`, map[string]string{"Origin": "https://evil.example"})
		assert.Equal(t, "null", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("headers attached to every response kind", func(t *testing.T) {
		t.Parallel()
		env := newHandlerEnv(t, contact.Config{})

		for _, method := range []string{http.MethodOptions, http.MethodGet, http.MethodPost} {
			r := httptest.NewRequest(method, "/contact", strings.NewReader("{}"))
			r.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			env.handler.ServeHTTP(w, r)

			assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"), method)
			assert.Equal(t, "Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"), method)
			assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"), method)
		}
	})
}
