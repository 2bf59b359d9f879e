package gate

import "github.com/maxfit-project/maxfit/internal/session"

// ResolveLandingRoute maps the current session to its landing screen: login
// when logged out, the role's home otherwise. A session carrying a role this
// build does not recognize also lands on login rather than a screen it may
// not be allowed to see.
func ResolveLandingRoute(sess Session) string {
	identity, ok := sess.Identity()
	if !ok {
		return PathLogin
	}

	switch identity.Role {
	case session.RoleTrainee:
		return PathTraineeHome
	case session.RoleTrainer:
		return PathTrainerHome
	default:
		return PathLogin
	}
}
