package gate

import (
	"testing"

	"github.com/maxfit-project/maxfit/internal/session"
)

type fakeSession struct {
	state    session.HydrationState
	identity *session.Identity
}

func (f *fakeSession) State() session.HydrationState { return f.state }

func (f *fakeSession) Identity() (session.Identity, bool) {
	if f.identity == nil {
		return session.Identity{}, false
	}
	return *f.identity, true
}

func pendingSession() *fakeSession {
	return &fakeSession{state: session.HydrationPending}
}

func anonymousSession() *fakeSession {
	return &fakeSession{state: session.HydrationReady}
}

func traineeSession() *fakeSession {
	return &fakeSession{
		state:    session.HydrationReady,
		identity: &session.Identity{ID: 7, Role: session.RoleTrainee},
	}
}

func TestCheckPendingBeatsEverything(t *testing.T) {
	sess := pendingSession()
	g := New(sess)

	// Even with no identity and a role requirement, hydration-pending must
	// win: no redirect before the persisted session has been checked.
	if got := g.Check(session.RoleTrainer); got != DecisionLoading {
		t.Errorf("expected loading, got %s", got)
	}
	if got := g.Check(session.RoleNone); got != DecisionLoading {
		t.Errorf("expected loading, got %s", got)
	}
}

func TestCheckUnauthenticatedRedirectsToLogin(t *testing.T) {
	g := New(anonymousSession())

	if got := g.Check(session.RoleNone); got != DecisionRedirectLogin {
		t.Errorf("expected redirect-login, got %s", got)
	}
	if got := g.Check(session.RoleTrainee); got != DecisionRedirectLogin {
		t.Errorf("expected redirect-login before role check, got %s", got)
	}
}

func TestCheckRoleGating(t *testing.T) {
	g := New(traineeSession())

	cases := []struct {
		name     string
		required session.Role
		want     Decision
	}{
		{"no requirement", session.RoleNone, DecisionAllow},
		{"matching role", session.RoleTrainee, DecisionAllow},
		{"wrong role", session.RoleTrainer, DecisionRedirectHome},
		{"requirement needing normalization", session.Role("  aluno "), DecisionAllow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Check(tc.required); got != tc.want {
				t.Errorf("Check(%q) = %s, want %s", tc.required, got, tc.want)
			}
		})
	}
}

func TestCheckMalformedIdentityTreatedAsUnauthenticated(t *testing.T) {
	sess := &fakeSession{
		state:    session.HydrationReady,
		identity: &session.Identity{ID: 7, Role: session.Role("ADMIN")},
	}
	g := New(sess)

	if got := g.Check(session.RoleNone); got != DecisionRedirectLogin {
		t.Errorf("expected redirect-login for unusable identity, got %s", got)
	}
}

func TestCheckIsStateless(t *testing.T) {
	sess := anonymousSession()
	g := New(sess)

	if got := g.Check(session.RoleTrainee); got != DecisionRedirectLogin {
		t.Fatalf("expected redirect-login, got %s", got)
	}

	// The same gate re-evaluated after the session changes must follow the
	// new state, not the previous decision.
	sess.identity = &session.Identity{ID: 7, Role: session.RoleTrainee}
	if got := g.Check(session.RoleTrainee); got != DecisionAllow {
		t.Errorf("expected allow after login, got %s", got)
	}
}
