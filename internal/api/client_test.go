package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxfit-project/maxfit/internal/session"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second, slog.New(slog.DiscardHandler))
}

func TestBearerInjection(t *testing.T) {
	var gotAuth, gotRequestID string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	}))
	client.SetTokenSource(staticToken("tok1"))

	_, err := client.ListWorkouts(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok1", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestNoBearerWhenLoggedOut(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	client.SetTokenSource(staticToken(""))

	_, err := client.ListChallenges(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedFiresHook(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"token expirado"}`, http.StatusUnauthorized)
	}))

	hookFired := false
	client.SetUnauthorizedHook(func() { hookFired = true })

	_, err := client.ListWorkouts(context.Background(), 7)

	require.Error(t, err)
	assert.True(t, hookFired, "unauthorized hook must fire before the call returns")
	assert.ErrorIs(t, err, ErrUnauthorized)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "token expirado", apiErr.UserMessage())
}

func TestServerMessageExtraction(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"email já cadastrado"}`))
	}))

	err := client.SignUp(context.Background(), session.RoleTrainee, session.Registration{})

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "email já cadastrado", apiErr.UserMessage())
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestServerErrorWithoutMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`oops`))
	}))

	_, err := client.ListChallenges(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, apiErr.UserMessage())
	assert.Contains(t, apiErr.Error(), "500")
}

func TestAuthenticateMapsIdentity(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		w.Write([]byte(`{"token":"tok1","id":7,"nome":"Ana","email":"a@b.com","tipo":"aluno","cidade":"Recife"}`))
	}))

	creds, err := client.Authenticate(context.Background(), "a@b.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "tok1", creds.Token)
	assert.Equal(t, int64(7), creds.Identity.ID)
	assert.Equal(t, session.RoleTrainee, creds.Identity.Role)
	assert.Equal(t, "Recife", creds.Identity.City)
}

func TestEnvelopeUnwrap(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/progresso/7", r.URL.Path)
		w.Write([]byte(`{"data":[{"id":1,"peso":72.4},{"id":2,"peso":71.9}]}`))
	}))

	entries, err := client.ListProgress(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 72.4, entries[0].WeightKG)
}

func TestTransportErrorIsWrapped(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond, slog.New(slog.DiscardHandler))

	_, err := client.ListChallenges(context.Background())
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr), "transport failures are not backend errors")
}

func TestSignUpPayloadShapes(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotBody = body
		w.WriteHeader(http.StatusCreated)
	}))

	reg := session.Registration{
		Name: "Ana", Email: "a@b.com", Password: "secret123", City: "Recife",
		WeightKG: 72.4, HeightCM: 168, Goal: "PERDER_PESO",
		CREF: "12345-G/PE", Specialty: "hipertrofia",
	}

	require.NoError(t, client.SignUp(context.Background(), session.RoleTrainee, reg))
	assert.Equal(t, "ALUNO", gotBody["tipo"])
	assert.Equal(t, 72.4, gotBody["peso"])
	_, hasCREF := gotBody["cref"]
	assert.False(t, hasCREF, "trainee payload must not carry trainer fields")

	require.NoError(t, client.SignUp(context.Background(), session.RoleTrainer, reg))
	assert.Equal(t, "PERSONAL", gotBody["tipo"])
	assert.Equal(t, "12345-G/PE", gotBody["cref"])
	_, hasWeight := gotBody["peso"]
	assert.False(t, hasWeight, "trainer payload must not carry trainee fields")
}
