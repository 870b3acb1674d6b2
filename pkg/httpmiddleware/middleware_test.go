package httpmiddleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-faster/sdk/zctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWrap_Order(t *testing.T) {
	var calls []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Wrap(okHandler(), mark("outer"), mark("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner"}, calls)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	t.Run("reuses incoming", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "req-42")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, "req-42", seen)
		assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))
	})

	t.Run("replaces malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, strings.Repeat("x", 200))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Len(t, seen, 36)
		assert.Equal(t, seen, w.Header().Get(HeaderRequestID))
	})
}

func TestInjectLoggerAndLogRequests(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	h := Wrap(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			zctx.From(r.Context()).Info("Handling")
			w.WriteHeader(http.StatusBadGateway)
		}),
		RequestID(),
		InjectLogger(zap.New(core)),
		LogRequests(),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	req.Header.Set(HeaderRequestID, "req-7")
	h.ServeHTTP(httptest.NewRecorder(), req)

	handled := logs.FilterMessage("Handling").All()
	require.Len(t, handled, 1)
	assert.Equal(t, "req-7", handled[0].ContextMap()["request_id"])

	entries := logs.FilterMessage("Request failed").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, http.StatusBadGateway, entries[0].ContextMap()["status"])
}

func TestRecovery(t *testing.T) {
	h := Recovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":500,"error":"INTERNAL","message":"internal server error, please try again"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name      string
		cfg       CORSConfig
		method    string
		origin    string
		preflight bool
		wantCode  int
		wantAllow string
	}{
		{
			name:      "wildcard",
			cfg:       CORSConfig{AllowOrigins: []string{"*"}},
			method:    http.MethodGet,
			origin:    "https://shop.example.com",
			wantCode:  http.StatusOK,
			wantAllow: "*",
		},
		{
			name:      "listed origin echoes configured case",
			cfg:       CORSConfig{AllowOrigins: []string{"https://Shop.example.com"}},
			method:    http.MethodGet,
			origin:    "https://shop.example.com",
			wantCode:  http.StatusOK,
			wantAllow: "https://Shop.example.com",
		},
		{
			name:     "unlisted origin",
			cfg:      CORSConfig{AllowOrigins: []string{"https://shop.example.com"}},
			method:   http.MethodGet,
			origin:   "https://evil.example.com",
			wantCode: http.StatusOK,
		},
		{
			name:      "preflight with credentials echoes origin",
			cfg:       CORSConfig{AllowCredentials: true, MaxAge: 600},
			method:    http.MethodOptions,
			origin:    "https://admin.example.com",
			preflight: true,
			wantCode:  http.StatusNoContent,
			wantAllow: "https://admin.example.com",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/cart", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
			}
			w := httptest.NewRecorder()
			CORS(tt.cfg)(okHandler()).ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantAllow, w.Header().Get("Access-Control-Allow-Origin"))
			if tt.preflight {
				assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
				assert.Equal(t, "600", w.Header().Get("Access-Control-Max-Age"))
			}
		})
	}
}
