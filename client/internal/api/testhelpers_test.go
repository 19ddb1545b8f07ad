package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/jeevavj/megam-api/client/internal/types"
	"github.com/rs/zerolog"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// newServer starts a test server with routes registered under /v1 and
// returns a Conn pointed at it.
func newServer(t *testing.T, register func(r *mux.Router)) Conn {
	t.Helper()
	root := mux.NewRouter()
	register(root.PathPrefix(APIVersion).Subrouter())
	srv := httptest.NewServer(root)
	t.Cleanup(srv.Close)
	return Conn{
		HTTP:      srv.Client(),
		BaseURL:   srv.URL,
		Registry:  types.Registry(),
		Logger:    zerolog.Nop(),
		UserAgent: "megam-api-go/test",
	}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
