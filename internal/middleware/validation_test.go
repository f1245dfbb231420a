package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benx421/simple-banking/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidation(t *testing.T) {
	router, err := api.NewRouter()
	require.NoError(t, err)

	tests := []struct {
		name        string
		method      string
		path        string
		body        string
		contentType string
		wantStatus  int
		wantReached bool
	}{
		{
			name:        "valid income",
			method:      http.MethodPost,
			path:        "/api/v1/cards/4000008449433403/income",
			body:        `{"amount":500}`,
			contentType: "application/json",
			wantStatus:  http.StatusOK,
			wantReached: true,
		},
		{
			name:        "zero income",
			method:      http.MethodPost,
			path:        "/api/v1/cards/4000008449433403/income",
			body:        `{"amount":0}`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "income as string",
			method:      http.MethodPost,
			path:        "/api/v1/cards/4000008449433403/income",
			body:        `{"amount":"500"}`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "unknown body field",
			method:      http.MethodPost,
			path:        "/api/v1/cards/4000008449433403/transfers",
			body:        `{"target_card_number":"4000001234567899","amount":5,"memo":"rent"}`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "short card number in path",
			method:      http.MethodGet,
			path:        "/api/v1/cards/4000/balance",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "short target card",
			method:      http.MethodPost,
			path:        "/api/v1/cards/4000008449433403/transfers",
			body:        `{"target_card_number":"12345","amount":5}`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "undocumented route passes through",
			method:      http.MethodGet,
			path:        "/docs",
			wantStatus:  http.StatusOK,
			wantReached: true,
		},
		{
			name:       "wrong method",
			method:     http.MethodPut,
			path:       "/api/v1/cards/4000008449433403/balance",
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			var seenBody string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				if r.Body != nil {
					var sb strings.Builder
					_, _ = sb.ReadFrom(r.Body) //nolint:errcheck // test helper
					seenBody = sb.String()
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()

			Validation(router, testLogger())(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantReached, reached)
			if tt.wantReached {
				assert.Equal(t, tt.body, seenBody, "body must still be readable downstream")
				return
			}

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "invalid_request", body["error"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Len(t, rec.Header().Get("X-Request-ID"), 36)
		assert.Equal(t, rec.Header().Get("X-Request-ID"), seen)
	})

	t.Run("keeps a valid client id", func(t *testing.T) {
		const clientID = "0b9e4f0e-6a4c-4d1b-9a57-3b5c9f1f2e11"
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", clientID)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, clientID, rec.Header().Get("X-Request-ID"))
		assert.Equal(t, clientID, seen)
	})

	t.Run("replaces a malformed client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "<script>")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.NotEqual(t, "<script>", rec.Header().Get("X-Request-ID"))
		assert.Len(t, seen, 36)
	})
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
