package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	middleware := AuthMiddleware(apiKey, nil, NewSuspiciousActivityDetector())

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{
			name:           "Valid API Key",
			providedKey:    apiKey,
			path:           "/api/v1/plan/count",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid API Key",
			providedKey:    "wrong-key",
			path:           "/api/v1/plan/count",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing API Key",
			providedKey:    "",
			path:           "/api/v1/plan/count",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Public Path - Healthz",
			providedKey:    "",
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Public Path - Metrics",
			providedKey:    "",
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Public Path - Version",
			providedKey:    "",
			path:           "/version",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	middleware := SecurityHeadersMiddleware()

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}

	for header, expected := range expectedHeaders {
		if got := rec.Header().Get(header); got != expected {
			t.Errorf("expected header %s to be %q, got %q", header, expected, got)
		}
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	middleware := RateLimitMiddleware(nil, detector)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ip := "192.168.1.100"
	req := httptest.NewRequest("GET", "/api/v1/plan", nil)
	req.RemoteAddr = ip + ":1234"

	// Limit is 1000 requests per window
	for i := 0; i < 1000; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429 Too Many Requests, got %d", rec.Code)
	}

	detector.mu.Lock()
	count := detector.requestCountByIP[ip]
	detector.mu.Unlock()

	if count != 1001 {
		t.Errorf("expected count 1001, got %d", count)
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		forwardedFor   string
		trustedProxies []string
		want           string
	}{
		{
			name:       "direct connection",
			remoteAddr: "10.0.0.5:4321",
			want:       "10.0.0.5",
		},
		{
			name:           "forwarded header from untrusted source is ignored",
			remoteAddr:     "10.0.0.5:4321",
			forwardedFor:   "1.2.3.4",
			trustedProxies: []string{"10.0.0.9"},
			want:           "10.0.0.5",
		},
		{
			name:           "forwarded header from trusted proxy is used",
			remoteAddr:     "10.0.0.9:4321",
			forwardedFor:   "1.2.3.4, 10.0.0.7",
			trustedProxies: []string{"10.0.0.9"},
			want:           "10.0.0.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwardedFor)
			}

			if got := extractIP(req, tt.trustedProxies); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
