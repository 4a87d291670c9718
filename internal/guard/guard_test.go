package guard

import (
	"context"
	"github.com/carehive/ats-admin/internal/session"
	"github.com/stretchr/testify/assert"
	"testing"
)

type mockSession struct {
	token  string
	claims *session.Claims
}

func (m *mockSession) Token(_ context.Context) string {
	return m.token
}

func (m *mockSession) Claims(_ context.Context) *session.Claims {
	return m.claims
}

func Test_Shell_WhenNoToken_ShouldRedirectToSignIn(t *testing.T) {

	shell, err := NewShell(&mockSession{})
	assert.NoError(t, err)

	decision := shell.Mount(context.Background())
	assert.Equal(t, StateRedirecting, decision.State)
	assert.Equal(t, RouteSignIn, decision.RedirectTo)
}

func Test_Shell_WhenOnboardingOrRolelessToken_ShouldRedirectToOnboarding(t *testing.T) {

	cases := []*session.Claims{
		{Role: session.RoleOnboarding},
		{Role: ""},
		nil, // token present but undecodable
		{Role: "somethingUnrecognized"},
	}

	for _, claims := range cases {
		shell, err := NewShell(&mockSession{token: "tok", claims: claims})
		assert.NoError(t, err)

		decision := shell.Mount(context.Background())
		assert.Equal(t, StateRedirecting, decision.State)
		assert.Equal(t, RouteOnboarding, decision.RedirectTo)
	}
}

func Test_Shell_WhenOperationalRole_ShouldAuthorize(t *testing.T) {

	for _, role := range []string{"admin", "owner", "recruiter", "hiringManager"} {
		shell, err := NewShell(&mockSession{token: "tok", claims: &session.Claims{Role: role}})
		assert.NoError(t, err)

		decision := shell.Mount(context.Background())
		assert.Equal(t, StateAuthorized, decision.State, "role %s", role)
		assert.Equal(t, RouteNone, decision.RedirectTo)
	}
}

func Test_Shell_ChecksOnlyOnce(t *testing.T) {

	assert := assert.New(t)
	source := &mockSession{token: "tok", claims: &session.Claims{Role: "recruiter"}}

	shell, err := NewShell(source)
	assert.NoError(err)
	assert.Equal(StateChecking, shell.State())

	first := shell.Mount(context.Background())
	assert.Equal(StateAuthorized, first.State)

	// token vanishing mid-session is not noticed until the next shell mount
	source.token = ""
	source.claims = nil

	second := shell.Mount(context.Background())
	assert.Equal(StateAuthorized, second.State)
}
