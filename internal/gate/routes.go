package gate

import (
	"sort"

	"github.com/maxfit-project/maxfit/internal/session"
)

// Well-known route paths.
const (
	PathRoot        = "/"
	PathLogin       = "/login"
	PathRegister    = "/cadastro"
	PathTraineeHome = "/home-aluno"
	PathTrainerHome = "/home-personal"
)

// Route declares one navigable screen: its backend-era path, the CLI command
// that renders it, and the access requirement the gate enforces. A zero
// RequiredRole on a non-public route means any authenticated user.
type Route struct {
	Path         string       `json:"path"`
	Command      string       `json:"command"`
	Description  string       `json:"description"`
	Public       bool         `json:"public"`
	RequiredRole session.Role `json:"required_role,omitempty"`
}

// Protected reports whether the gate must be consulted before rendering.
func (r *Route) Protected() bool {
	return !r.Public
}

// defaultRoutes mirrors the application's route table.
var defaultRoutes = []Route{
	{
		Path:        PathRoot,
		Command:     "home",
		Description: "Landing screen, resolved by role",
		Public:      true,
	},
	{
		Path:        PathLogin,
		Command:     "login",
		Description: "Sign in with email and password",
		Public:      true,
	},
	{
		Path:        PathRegister,
		Command:     "register",
		Description: "Create a trainee or trainer account",
		Public:      true,
	},
	{
		Path:         PathTraineeHome,
		Command:      "home",
		Description:  "Trainee dashboard",
		RequiredRole: session.RoleTrainee,
	},
	{
		Path:         "/treinos",
		Command:      "workouts",
		Description:  "Workout plans and completion log",
		RequiredRole: session.RoleTrainee,
	},
	{
		Path:         "/diario",
		Command:      "diary",
		Description:  "Training diary entries",
		RequiredRole: session.RoleTrainee,
	},
	{
		Path:         "/meu-progresso",
		Command:      "progress",
		Description:  "Physical progress history",
		RequiredRole: session.RoleTrainee,
	},
	{
		Path:        "/desafios",
		Command:     "challenges",
		Description: "Community challenges",
	},
	{
		Path:        "/comunidade",
		Command:     "feed",
		Description: "Community feed",
	},
	{
		Path:        "/suporte",
		Command:     "support",
		Description: "Support professionals by city",
	},
	{
		Path:         PathTrainerHome,
		Command:      "home",
		Description:  "Trainer dashboard",
		RequiredRole: session.RoleTrainer,
	},
	{
		Path:         "/meus-alunos",
		Command:      "trainees",
		Description:  "Manage linked trainees",
		RequiredRole: session.RoleTrainer,
	},
}

// Registry holds the route declarations.
type Registry struct {
	routes map[string]*Route
}

// NewRegistry creates a registry with the default route table.
func NewRegistry() *Registry {
	r := &Registry{routes: make(map[string]*Route)}
	for i := range defaultRoutes {
		r.routes[defaultRoutes[i].Path] = &defaultRoutes[i]
	}
	return r
}

// Get returns a route by path.
func (r *Registry) Get(path string) (*Route, bool) {
	rt, ok := r.routes[path]
	return rt, ok
}

// All returns all routes sorted by path.
func (r *Registry) All() []*Route {
	result := make([]*Route, 0, len(r.routes))
	for _, rt := range r.routes {
		result = append(result, rt)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Path < result[j].Path
	})
	return result
}

// Protected returns the routes the gate guards, sorted by path.
func (r *Registry) Protected() []*Route {
	var result []*Route
	for _, rt := range r.All() {
		if rt.Protected() {
			result = append(result, rt)
		}
	}
	return result
}

// FindByCommand returns the routes rendered by the given CLI command.
func (r *Registry) FindByCommand(command string) []*Route {
	var result []*Route
	for _, rt := range r.All() {
		if rt.Command == command {
			result = append(result, rt)
		}
	}
	return result
}
