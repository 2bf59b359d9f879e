package cmd

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/maxfit-project/maxfit/internal/output"
)

func resetLoginFlags() {
	_ = loginCmd.Flags().Set("email", "")
	_ = loginCmd.Flags().Set("password", "")
	_ = whoamiCmd.Flags().Set("json", "false")
}

func TestLogin_PersistsSessionAcrossInvocations(t *testing.T) {
	resetLoginFlags()
	mux := http.NewServeMux()
	addLoginRoute(mux, "ALUNO")
	srv := newBackend(t, mux)
	cfgPath := writeTestConfig(t, srv.URL)

	signIn(t, cfgPath)

	// A separate invocation must restore the session from disk.
	out, err := runCommand(t, cfgPath, "whoami", "--json")
	if err != nil {
		t.Fatalf("whoami after login failed: %v", err)
	}

	var identity map[string]any
	if err := json.Unmarshal([]byte(out), &identity); err != nil {
		t.Fatalf("invalid JSON output: %v\nGot: %s", err, out)
	}
	if identity["name"] != "Ana" {
		t.Errorf("whoami name = %v, want Ana", identity["name"])
	}
	if identity["role"] != "ALUNO" {
		t.Errorf("whoami role = %v, want ALUNO", identity["role"])
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	resetLoginFlags()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"credenciais inválidas"}`, http.StatusUnauthorized)
	})
	srv := newBackend(t, mux)
	cfgPath := writeTestConfig(t, srv.URL)

	_, err := runCommand(t, cfgPath, "login", "--email", "ana@example.com", "--password", "wrongpass")
	if err == nil {
		t.Fatal("expected login to fail")
	}

	var cliErr *output.CLIError
	if !errors.As(err, &cliErr) {
		t.Fatalf("expected CLIError, got %T: %v", err, err)
	}
	if cliErr.Summary != "credenciais inválidas" {
		t.Errorf("summary = %q, want the backend message", cliErr.Summary)
	}
	if cliErr.ExitCode != output.ExitAuthError {
		t.Errorf("exit code = %d, want %d", cliErr.ExitCode, output.ExitAuthError)
	}

	// A failed login must leave the session signed out.
	if _, err := runCommand(t, cfgPath, "whoami"); err == nil {
		t.Error("expected whoami to fail after rejected login")
	}
}

func TestLogin_InvalidForm(t *testing.T) {
	resetLoginFlags()
	called := false
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	srv := newBackend(t, mux)
	cfgPath := writeTestConfig(t, srv.URL)

	_, err := runCommand(t, cfgPath, "login", "--email", "not-an-email", "--password", "secret123")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "invalid login form") {
		t.Errorf("unexpected error: %v", err)
	}
	if called {
		t.Error("backend must not be called when the form is invalid")
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	resetLoginFlags()
	mux := http.NewServeMux()
	addLoginRoute(mux, "ALUNO")
	srv := newBackend(t, mux)
	cfgPath := writeTestConfig(t, srv.URL)

	signIn(t, cfgPath)

	if _, err := runCommand(t, cfgPath, "logout"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := runCommand(t, cfgPath, "whoami"); err == nil {
		t.Error("expected whoami to fail after logout")
	}

	// Logging out twice is fine.
	if _, err := runCommand(t, cfgPath, "logout"); err != nil {
		t.Errorf("second logout failed: %v", err)
	}
}
