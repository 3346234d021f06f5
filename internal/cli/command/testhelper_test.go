package command

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// recordedRequest captures one request the mock server handled.
type recordedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]any
}

// newMockServer runs an API stub whose responses are keyed by
// "METHOD /path". Requests for routes without a canned response fail the
// test.
func newMockServer(t *testing.T, responses map[string]any) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Auth:   r.Header.Get("Authorization"),
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			rec.Body = body
		}
		requests = append(requests, rec)

		response, ok := responses[r.Method+" "+r.URL.Path]
		if !ok {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

// runApp invokes the CLI against the given server using environment
// credentials and a throwaway config path.
func runApp(t *testing.T, serverURL string, args ...string) error {
	t.Helper()
	t.Setenv("PLANKA_URL", serverURL)
	t.Setenv("PLANKA_TOKEN", "test-token")
	return runAppBare(t, args...)
}

// runAppBare invokes the CLI without touching credential variables.
func runAppBare(t *testing.T, args ...string) error {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	argv := append([]string{"planka", "--config", cfgPath}, args...)
	return App().Run(argv)
}

// clearCredentialEnv makes sure ambient PLANKA_* variables do not leak
// into a test that asserts unauthenticated behavior.
func clearCredentialEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PLANKA_URL", "")
	t.Setenv("PLANKA_TOKEN", "")
	os.Unsetenv("PLANKA_URL")
	os.Unsetenv("PLANKA_TOKEN")
}

func item(fields map[string]any) map[string]any {
	return map[string]any{"item": fields}
}

func items(entries ...map[string]any) map[string]any {
	list := make([]any, len(entries))
	for i, e := range entries {
		list[i] = e
	}
	return map[string]any{"items": list}
}
