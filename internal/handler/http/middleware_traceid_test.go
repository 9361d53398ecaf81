package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	const incoming = "6f1c2a8e-4b1d-4c6e-9a53-1e2f3a4b5c6d"

	tests := []struct {
		name      string
		header    string
		wantKeeps bool
	}{
		{name: "generated when absent"},
		{name: "kept when a uuid", header: incoming, wantKeeps: true},
		{name: "replaced when garbage", header: "<script>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				meta := utils.GetRequestMetaFromContext(r.Context())
				assert.Equal(t, "203.0.113.7", meta.IPAddress)
				assert.Equal(t, "curl/8", meta.UserAgent)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "203.0.113.7:5555"
			req.Header.Set("User-Agent", "curl/8")
			if tt.header != "" {
				req.Header.Set(traceIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			_, err := uuid.Parse(got)
			require.NoError(t, err)
			if tt.wantKeeps {
				assert.Equal(t, incoming, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestResponseWriter_RecordsFirstStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte("hello"))
	_, _ = w.Write([]byte(" world"))

	assert.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
