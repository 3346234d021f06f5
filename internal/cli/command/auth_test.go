package command

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/hauxir/planka-cli/internal/cli/config"
	"github.com/hauxir/planka-cli/internal/planka"
)

func TestLoginSavesCredentials(t *testing.T) {
	clearCredentialEnv(t)
	server, requests := newMockServer(t, map[string]any{
		"POST /api/access-tokens": map[string]any{"item": "tok-abc"},
		"GET /api/projects":       items(),
	})
	cfgPath := filepath.Join(t.TempDir(), "config.json")

	err := App().Run([]string{
		"planka", "--config", cfgPath,
		"login", "-s", server.URL, "-u", "demo@example.com", "-p", "hunter2",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	login := (*requests)[0]
	if login.Auth != "" {
		t.Errorf("login sent Authorization %q", login.Auth)
	}
	if login.Body["emailOrUsername"] != "demo@example.com" || login.Body["password"] != "hunter2" {
		t.Errorf("login body = %v", login.Body)
	}

	stored, err := config.LoadFile(cfgPath)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if stored.URL != server.URL || stored.Token != "tok-abc" {
		t.Errorf("stored = %+v", stored)
	}

	info, err := os.Stat(cfgPath)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config mode = %o, want 600", perm)
	}

	// The saved credentials authenticate follow-up invocations.
	err = App().Run([]string{"planka", "--config", cfgPath, "projects"})
	if err != nil {
		t.Fatalf("projects after login: %v", err)
	}
	if got := (*requests)[1].Auth; got != "Bearer tok-abc" {
		t.Errorf("Authorization = %q, want saved token", got)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	clearCredentialEnv(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code": "E_UNAUTHORIZED", "message": "Invalid email or username"}`))
	}))
	defer server.Close()
	cfgPath := filepath.Join(t.TempDir(), "config.json")

	err := App().Run([]string{
		"planka", "--config", cfgPath,
		"login", "-s", server.URL, "-u", "demo", "-p", "wrong",
	})
	if !errors.Is(err, planka.ErrAuthenticationFailed) {
		t.Fatalf("err = %v, want ErrAuthenticationFailed", err)
	}
	if _, statErr := os.Stat(cfgPath); !os.IsNotExist(statErr) {
		t.Error("config file written despite failed login")
	}
}

func TestLogoutClearsTokenKeepsURL(t *testing.T) {
	clearCredentialEnv(t)
	server, requests := newMockServer(t, map[string]any{
		"DELETE /api/access-tokens/me": item(map[string]any{}),
	})
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	if err := config.Save(config.Config{URL: server.URL, Token: "tok-abc"}, cfgPath); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := App().Run([]string{"planka", "--config", cfgPath, "logout"}); err != nil {
		t.Fatalf("logout: %v", err)
	}

	// The token is revoked server-side before being dropped locally.
	if len(*requests) != 1 || (*requests)[0].Auth != "Bearer tok-abc" {
		t.Errorf("requests = %+v, want one authenticated revocation", *requests)
	}

	stored, err := config.LoadFile(cfgPath)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if stored.Token != "" {
		t.Errorf("Token = %q, want cleared", stored.Token)
	}
	if stored.URL != server.URL {
		t.Errorf("URL = %q, want kept", stored.URL)
	}
}

func TestLogoutWithoutCredentials(t *testing.T) {
	clearCredentialEnv(t)

	err := runAppBare(t, "logout")
	if err == nil {
		t.Fatal("logout without credentials should fail")
	}
}

func TestConfigSetURL(t *testing.T) {
	clearCredentialEnv(t)
	cfgPath := filepath.Join(t.TempDir(), "config.json")

	err := App().Run([]string{
		"planka", "--config", cfgPath,
		"config-set-url", "https://planka.example.com",
	})
	if err != nil {
		t.Fatalf("config-set-url: %v", err)
	}

	stored, err := config.LoadFile(cfgPath)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if stored.URL != "https://planka.example.com" {
		t.Errorf("URL = %q", stored.URL)
	}
	if stored.Token != "" {
		t.Errorf("Token = %q, want empty", stored.Token)
	}
}

func TestConfigSetURLDoesNotPersistEnvToken(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("PLANKA_TOKEN", "env-token")

	err := App().Run([]string{
		"planka", "--config", cfgPath,
		"config-set-url", "https://planka.example.com",
	})
	if err != nil {
		t.Fatalf("config-set-url: %v", err)
	}

	stored, err := config.LoadFile(cfgPath)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if stored.Token != "" {
		t.Errorf("Token = %q, environment value must not be persisted", stored.Token)
	}
}

func TestConfigShow(t *testing.T) {
	clearCredentialEnv(t)
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	if err := config.Save(config.Config{URL: "https://planka.example.com", Token: "tok-abc"}, cfgPath); err != nil {
		t.Fatalf("Save: %v", err)
	}

	err := App().Run([]string{"planka", "--config", cfgPath, "config-show"})
	if err != nil {
		t.Fatalf("config-show: %v", err)
	}
}
