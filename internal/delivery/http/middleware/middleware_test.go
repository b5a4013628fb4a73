package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/josephsae/healthhub-app/config"
	"github.com/josephsae/healthhub-app/pkg/jwt"
	"github.com/josephsae/healthhub-app/pkg/response"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-secret"

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorPayload {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

func TestAuthenticate(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: testSecret, Expiry: time.Hour})
	expiredService := jwt.NewJWTService(config.JWTConfig{Secret: testSecret, Expiry: -time.Minute})
	otherService := jwt.NewJWTService(config.JWTConfig{Secret: "other-secret", Expiry: time.Hour})

	valid, err := jwtService.GenerateAccessToken(4)
	require.NoError(t, err)
	expired, err := expiredService.GenerateAccessToken(4)
	require.NoError(t, err)
	forged, err := otherService.GenerateAccessToken(4)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized, code: "ACCESS_DENIED"},
		{name: "scheme only", header: "Bearer", status: http.StatusUnauthorized, code: "ACCESS_DENIED"},
		{name: "empty token", header: "Bearer  ", status: http.StatusUnauthorized, code: "ACCESS_DENIED"},
		{name: "wrong scheme", header: "Basic " + valid, status: http.StatusUnauthorized, code: "ACCESS_DENIED"},
		{name: "garbage token", header: "Bearer not-a-jwt", status: http.StatusUnauthorized, code: "INVALID_TOKEN"},
		{name: "expired token", header: "Bearer " + expired, status: http.StatusUnauthorized, code: "INVALID_TOKEN"},
		{name: "wrong secret", header: "Bearer " + forged, status: http.StatusUnauthorized, code: "INVALID_TOKEN"},
	}

	m := NewAuthMiddleware(jwtService)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			m.Authenticate(okHandler(&called)).ServeHTTP(rec, req)

			assert.False(t, called)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestAuthenticate_PutsUserIDOnContext(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: testSecret, Expiry: time.Hour})
	token, err := jwtService.GenerateAccessToken(42)
	require.NoError(t, err)

	var gotID uint
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = GetUserIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	NewAuthMiddleware(jwtService).Authenticate(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, gotOK)
	assert.Equal(t, uint(42), gotID)
}

func TestAuthenticate_SchemeIsCaseInsensitive(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: testSecret, Expiry: time.Hour})
	token, err := jwtService.GenerateAccessToken(7)
	require.NoError(t, err)

	for _, scheme := range []string{"bearer", "BEARER", "BeArEr"} {
		t.Run(scheme, func(t *testing.T) {
			called := false
			req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
			req.Header.Set("Authorization", scheme+" "+token)
			rec := httptest.NewRecorder()

			NewAuthMiddleware(jwtService).Authenticate(okHandler(&called)).ServeHTTP(rec, req)

			assert.True(t, called)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestCORS(t *testing.T) {
	called := false
	handler := NewCORSMiddleware("https://app.example.com, https://admin.example.com").Handle(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/specialists", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "https://admin.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/specialists", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	called = false
	req = httptest.NewRequest(http.MethodOptions, "/api/specialists", nil)
	rec = httptest.NewRecorder()
	NewCORSMiddleware("*").Handle(okHandler(&called)).ServeHTTP(rec, req)
	assert.False(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	log, hook := test.NewNullLogger()
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	NewRecoveryMiddleware(log).Handle(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", decodeError(t, rec).Code)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestLogging(t *testing.T) {
	log, hook := test.NewNullLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetRequestIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "req-1", id)
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/appointments/9", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	rec := httptest.NewRecorder()
	NewLoggingMiddleware(log).Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, "req-1", rec.Header().Get(RequestIDHeader))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, http.StatusNotFound, entry.Data["status"])
	assert.Equal(t, "/api/appointments/9", entry.Data["path"])
}

func TestLogging_GeneratesRequestID(t *testing.T) {
	log, _ := test.NewNullLogger()
	rec := httptest.NewRecorder()
	called := false

	NewLoggingMiddleware(log).Handle(okHandler(&called)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.True(t, called)
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}

func TestRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	log, _ := test.NewNullLogger()

	called := false
	handler := NewRateLimitMiddleware(client, "login", 2, time.Minute, log).Handle(okHandler(&called))

	do := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/users/login", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:1111").Code)
	assert.Equal(t, http.StatusOK, do("10.0.0.1:2222").Code)

	blocked := do("10.0.0.1:3333")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeError(t, blocked).Code)
	assert.Equal(t, "60", blocked.Header().Get("Retry-After"))

	// Other clients have their own window.
	assert.Equal(t, http.StatusOK, do("10.0.0.2:1111").Code)

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, do("10.0.0.1:4444").Code)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	mr.Close()
	log, _ := test.NewNullLogger()

	called := false
	rec := httptest.NewRecorder()
	NewRateLimitMiddleware(client, "login", 1, time.Minute, log).Handle(okHandler(&called)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/users/login", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_DisabledWithoutRedis(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()
	NewRateLimitMiddleware(nil, "login", 1, time.Minute, logrus.New()).Handle(okHandler(&called)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/users/login", nil))

	assert.True(t, called)
}

// failExpireHook rejects every EXPIRE sent through the client.
type failExpireHook struct{}

func (failExpireHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (failExpireHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		if cmd.Name() == "expire" {
			cmd.SetErr(errors.New("expire rejected"))
			return cmd.Err()
		}
		return next(ctx, cmd)
	}
}

func (failExpireHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		for _, cmd := range cmds {
			if cmd.Name() == "expire" {
				cmd.SetErr(errors.New("expire rejected"))
				return cmd.Err()
			}
		}
		return next(ctx, cmds)
	}
}

func TestRateLimit_WindowAlwaysExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	client.AddHook(failExpireHook{})
	t.Cleanup(func() { client.Close() })
	log, _ := test.NewNullLogger()

	called := false
	handler := NewRateLimitMiddleware(client, "login", 2, time.Minute, log).Handle(okHandler(&called))

	do := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/users/login", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do())
	assert.Greater(t, mr.TTL(RateLimitKeyPrefix+"login:10.0.0.9"), time.Duration(0))
	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())

	mr.FastForward(time.Minute + time.Second)
	assert.False(t, mr.Exists(RateLimitKeyPrefix+"login:10.0.0.9"))
	assert.Equal(t, http.StatusOK, do())
}
