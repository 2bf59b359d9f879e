// Package gate decides, per protected screen, whether the current session may
// render it. It is a pure function of session state plus the screen's declared
// role requirement, re-evaluated on every invocation.
package gate

import (
	"github.com/maxfit-project/maxfit/internal/session"
)

// Session is the read-only slice of the session store the gate consumes.
type Session interface {
	State() session.HydrationState
	Identity() (session.Identity, bool)
}

// Decision is the outcome of a gate check, in strict precedence order:
// hydration-pending beats the auth check, which beats the role check.
type Decision uint8

const (
	// DecisionLoading renders a neutral placeholder; hydration has not
	// finished, so redirecting now would flash the login screen.
	DecisionLoading Decision = iota
	// DecisionRedirectLogin sends the user to the login screen, replacing
	// history.
	DecisionRedirectLogin
	// DecisionRedirectHome sends an authenticated user with the wrong role
	// back to the application root, replacing history.
	DecisionRedirectHome
	// DecisionAllow renders the protected screen.
	DecisionAllow
)

func (d Decision) String() string {
	switch d {
	case DecisionLoading:
		return "loading"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionRedirectHome:
		return "redirect-home"
	case DecisionAllow:
		return "allow"
	default:
		return "unknown"
	}
}

// Gate checks access against a session store.
type Gate struct {
	session Session
}

// New creates a gate over the given session.
func New(sess Session) *Gate {
	return &Gate{session: sess}
}

// Check evaluates the access decision for a screen requiring the given role.
// RoleNone means any authenticated user may enter. An identity that is
// present but unusable (no valid role) counts as unauthenticated: a protected
// screen never renders with a malformed identity.
func (g *Gate) Check(required session.Role) Decision {
	if g.session.State() == session.HydrationPending {
		return DecisionLoading
	}

	identity, ok := g.session.Identity()
	if !ok || !identity.Role.Valid() {
		return DecisionRedirectLogin
	}

	if required == session.RoleNone {
		return DecisionAllow
	}
	if session.ParseRole(required.String()) != identity.Role {
		return DecisionRedirectHome
	}
	return DecisionAllow
}
