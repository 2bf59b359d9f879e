package cmd

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestChallengesJoin(t *testing.T) {
	resetLoginFlags()
	mux := http.NewServeMux()
	addLoginRoute(mux, "ALUNO")

	var gotBody map[string]any
	mux.HandleFunc("POST /desafios/12/participar", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding join body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	})
	srv := newBackend(t, mux)
	cfgPath := writeTestConfig(t, srv.URL)

	signIn(t, cfgPath)

	if _, err := runCommand(t, cfgPath, "challenges", "join", "12"); err != nil {
		t.Fatalf("challenges join failed: %v", err)
	}
	if gotBody["alunoId"] != float64(7) {
		t.Errorf("alunoId = %v, want 7", gotBody["alunoId"])
	}
}

func TestChallengesJoin_InvalidID(t *testing.T) {
	resetLoginFlags()
	mux := http.NewServeMux()
	addLoginRoute(mux, "ALUNO")
	srv := newBackend(t, mux)
	cfgPath := writeTestConfig(t, srv.URL)

	signIn(t, cfgPath)

	_, err := runCommand(t, cfgPath, "challenges", "join", "abc")
	if err == nil {
		t.Fatal("expected error for non-numeric challenge id")
	}
	if !strings.Contains(err.Error(), "invalid challenge id") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestChallengesCreate_RejectsBackwardsDates(t *testing.T) {
	resetLoginFlags()
	mux := http.NewServeMux()
	addLoginRoute(mux, "ALUNO")
	srv := newBackend(t, mux)
	cfgPath := writeTestConfig(t, srv.URL)

	signIn(t, cfgPath)

	_, err := runCommand(t, cfgPath, "challenges", "create",
		"--title", "30 dias",
		"--start", "2026-09-30",
		"--end", "2026-09-01",
	)
	if err == nil {
		t.Fatal("expected error for end before start")
	}
	if !strings.Contains(err.Error(), "invalid dates") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestChallengesComplete(t *testing.T) {
	resetLoginFlags()
	mux := http.NewServeMux()
	addLoginRoute(mux, "ALUNO")

	var gotQuery string
	mux.HandleFunc("POST /desafios/12/concluir", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("alunoId")
		w.WriteHeader(http.StatusOK)
	})
	srv := newBackend(t, mux)
	cfgPath := writeTestConfig(t, srv.URL)

	signIn(t, cfgPath)

	if _, err := runCommand(t, cfgPath, "challenges", "complete", "12"); err != nil {
		t.Fatalf("challenges complete failed: %v", err)
	}
	if gotQuery != "7" {
		t.Errorf("alunoId query = %q, want 7", gotQuery)
	}
}
