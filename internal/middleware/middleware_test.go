package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func decodeError(t *testing.T, body []byte) string {
	t.Helper()
	var out map[string]string
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json %q: %v", string(body), err)
	}
	return out["error"]
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name    string
		inbound string
		reuse   bool
	}{
		{name: "generated when absent", inbound: "", reuse: false},
		{name: "generated when malformed", inbound: "not-a-uuid", reuse: false},
		{name: "reused when valid", inbound: "123e4567-e89b-12d3-a456-426614174000", reuse: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RequestID())
			var seen string
			r.GET("/", func(c *gin.Context) {
				seen = c.GetString(RequestIDKey)
				c.String(200, "ok")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.inbound != "" {
				req.Header.Set(RequestIDHeader, tc.inbound)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if got == "" || got != seen {
				t.Fatalf("header %q, context %q", got, seen)
			}
			if tc.reuse && got != tc.inbound {
				t.Fatalf("expected inbound id reused, got %q", got)
			}
			if !tc.reuse && got == tc.inbound {
				t.Fatalf("expected fresh id, got inbound %q", got)
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name    string
		handler gin.HandlerFunc
		want    int
		wantErr string
	}{
		{
			name:    "handler error becomes 500",
			handler: func(c *gin.Context) { _ = c.Error(errors.New("boom")) },
			want:    http.StatusInternalServerError,
			wantErr: "boom",
		},
		{
			name: "last error wins",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("first"))
				_ = c.Error(errors.New("second"))
			},
			want:    http.StatusInternalServerError,
			wantErr: "second",
		},
		{
			name:    "success untouched",
			handler: func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) },
			want:    http.StatusOK,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler)
			r.GET("/", tc.handler)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			if w.Code != tc.want {
				t.Fatalf("code=%d want %d", w.Code, tc.want)
			}
			if tc.wantErr != "" {
				if got := decodeError(t, w.Body.Bytes()); got != tc.wantErr {
					t.Fatalf("error=%q want %q", got, tc.wantErr)
				}
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	if got := statusFor(errors.New("anything")); got != http.StatusInternalServerError {
		t.Fatalf("statusFor=%d", got)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != 500 {
		t.Fatalf("code=%d", w.Code)
	}
	if got := decodeError(t, w.Body.Bytes()); got != "boom" {
		t.Fatalf("error=%q", got)
	}
}

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/err", func(c *gin.Context) {
		AbortWithError(c, http.StatusServiceUnavailable, errors.New("bad stuff"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/err", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("code=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct == "" {
		t.Fatalf("expected content-type set")
	}
	if got := decodeError(t, w.Body.Bytes()); got != "bad stuff" {
		t.Fatalf("error=%q", got)
	}
}

func TestCORS_AnyOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS())
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://example.org")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin=%q", got)
	}

	pre := httptest.NewRequest(http.MethodOptions, "/", nil)
	pre.Header.Set("Origin", "https://example.org")
	pre.Header.Set("Access-Control-Request-Method", "GET")
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, pre)
	if w2.Code != http.StatusNoContent {
		t.Fatalf("preflight code=%d", w2.Code)
	}
}

func TestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name         string
		d            time.Duration
		wantDeadline bool
	}{
		{name: "applied", d: time.Second, wantDeadline: true},
		{name: "disabled", d: 0, wantDeadline: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(Timeout(tc.d))
			var has bool
			r.GET("/", func(c *gin.Context) {
				_, has = c.Request.Context().Deadline()
				c.Status(200)
			})
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
			if has != tc.wantDeadline {
				t.Fatalf("deadline=%v want %v", has, tc.wantDeadline)
			}
		})
	}
}
