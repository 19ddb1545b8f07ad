//go:build integration
// +build integration

package client_test

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/jeevavj/megam-api/client"
)

// TestMain waits for the gateway to accept connections before running tests.
func TestMain(m *testing.M) {
	cfg, err := client.LoadConfig()
	if err != nil {
		panic(err)
	}
	waitForListening(cfg.BaseURL(), 30*time.Second)
	os.Exit(m.Run())
}

// waitForListening polls until the gateway answers anything at all. The
// unsigned request is expected to be rejected.
func waitForListening(baseURL string, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(baseURL + "/v1/auth")
		if err == nil {
			_ = resp.Body.Close()
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	panic("Megam gateway did not come up within " + timeout.String())
}

func credentials(t *testing.T) client.Credentials {
	t.Helper()
	creds := client.Credentials{
		AccountID: os.Getenv("MEGAM_TEST_ACCOUNT"),
		SecretKey: os.Getenv("MEGAM_TEST_API_KEY"),
	}
	if creds.AccountID == "" || creds.SecretKey == "" {
		t.Skip("MEGAM_TEST_ACCOUNT and MEGAM_TEST_API_KEY are required")
	}
	return creds
}
