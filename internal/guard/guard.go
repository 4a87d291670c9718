package guard

import (
	"context"
	"errors"
	"slices"

	"github.com/carehive/ats-admin/internal/session"
)

type State int

const (
	StateChecking State = iota
	StateAuthorized
	StateRedirecting
)

type Route string

const (
	RouteNone       Route = ""
	RouteSignIn     Route = "/sign-in"
	RouteOnboarding Route = "/onboarding"
)

// Decision is the outcome of a shell mount: either render the guarded pages
// or navigate away. While the check runs the shell stays in StateChecking and
// renders nothing but a placeholder.
type Decision struct {
	State      State
	RedirectTo Route
}

var operationalRoles = []string{"admin", "owner", "recruiter", "hiringManager"}

type sessionSource interface {
	Token(ctx context.Context) string
	Claims(ctx context.Context) *session.Claims
}

// Shell wraps every protected surface. The session is checked once per mount;
// a token expiring mid-session is only caught when a backend call rejects it.
type Shell struct {
	session  sessionSource
	decision *Decision
}

func NewShell(source sessionSource) (*Shell, error) {

	if source == nil {
		return nil, errors.New("session source is nil")
	}

	return &Shell{session: source}, nil
}

// Mount evaluates the session gate. Repeated calls return the decision made
// on the first mount without re-checking.
func (s *Shell) Mount(ctx context.Context) Decision {

	if s.decision != nil {
		return *s.decision
	}

	decision := check(ctx, s.session)
	s.decision = &decision
	return decision
}

// State reports the shell's current state; StateChecking before Mount ran.
func (s *Shell) State() State {
	if s.decision == nil {
		return StateChecking
	}
	return s.decision.State
}

func check(ctx context.Context, source sessionSource) Decision {

	token := source.Token(ctx)
	if token == "" {
		return Decision{State: StateRedirecting, RedirectTo: RouteSignIn}
	}

	claims := source.Claims(ctx)
	if claims == nil || claims.Role == "" || claims.Role == session.RoleOnboarding {
		return Decision{State: StateRedirecting, RedirectTo: RouteOnboarding}
	}

	if !slices.Contains(operationalRoles, claims.Role) {
		return Decision{State: StateRedirecting, RedirectTo: RouteOnboarding}
	}

	return Decision{State: StateAuthorized, RedirectTo: RouteNone}
}
