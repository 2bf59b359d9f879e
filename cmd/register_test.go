package cmd

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func resetRegisterFlags() {
	for _, name := range []string{"role", "name", "email", "password", "city", "goal", "cref", "specialty"} {
		_ = registerCmd.Flags().Set(name, "")
	}
	_ = registerCmd.Flags().Set("weight", "0")
	_ = registerCmd.Flags().Set("height", "0")
}

func TestRegister_Trainee(t *testing.T) {
	resetRegisterFlags()
	mux := http.NewServeMux()

	var gotBody map[string]any
	mux.HandleFunc("POST /cadastro", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding register body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	})
	srv := newBackend(t, mux)
	cfgPath := writeTestConfig(t, srv.URL)

	_, err := runCommand(t, cfgPath, "register",
		"--role", "aluno",
		"--name", "Ana",
		"--email", "ana@example.com",
		"--password", "secret123",
		"--city", "Recife",
		"--weight", "72.4",
		"--height", "168",
		"--goal", "PERDER_PESO",
	)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if gotBody["tipo"] != "ALUNO" {
		t.Errorf("tipo = %v, want ALUNO", gotBody["tipo"])
	}
	if gotBody["peso"] != 72.4 {
		t.Errorf("peso = %v, want 72.4", gotBody["peso"])
	}
	if _, hasCREF := gotBody["cref"]; hasCREF {
		t.Error("trainee payload must not carry trainer fields")
	}

	// Registration must not sign the user in.
	if _, err := runCommand(t, cfgPath, "whoami"); err == nil {
		t.Error("expected whoami to fail right after registration")
	}
}

func TestRegister_TraineeNeedsGoal(t *testing.T) {
	resetRegisterFlags()
	called := false
	mux := http.NewServeMux()
	mux.HandleFunc("POST /cadastro", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	srv := newBackend(t, mux)
	cfgPath := writeTestConfig(t, srv.URL)

	_, err := runCommand(t, cfgPath, "register",
		"--role", "aluno",
		"--name", "Ana",
		"--email", "ana@example.com",
		"--password", "secret123",
		"--city", "Recife",
	)
	if err == nil {
		t.Fatal("expected validation error for missing goal")
	}
	if !strings.Contains(err.Error(), "invalid registration form") {
		t.Errorf("unexpected error: %v", err)
	}
	if called {
		t.Error("backend must not be called when the form is invalid")
	}
}

func TestRegister_UnknownRole(t *testing.T) {
	resetRegisterFlags()
	srv := newBackend(t, http.NewServeMux())
	cfgPath := writeTestConfig(t, srv.URL)

	_, err := runCommand(t, cfgPath, "register",
		"--role", "admin",
		"--name", "Ana",
		"--email", "ana@example.com",
		"--password", "secret123",
		"--city", "Recife",
	)
	if err == nil {
		t.Fatal("expected error for unknown role")
	}
}
