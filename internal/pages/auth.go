package pages

import (
	"context"

	"github.com/carehive/ats-admin/internal/clients/ats"
	"github.com/carehive/ats-admin/internal/forms"
	"github.com/carehive/ats-admin/internal/logger"
	"github.com/carehive/ats-admin/internal/notify"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type authAPI interface {
	SignIn(ctx context.Context, email string, password string) (string, error)
	CompleteRegistration(ctx context.Context, registrationToken string, request ats.CompleteRegistrationRequest) error
}

type sessionWriter interface {
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// AuthPage drives the sign-in and invitation screens. Form validation runs
// first and a failing form never reaches the network; field errors are
// returned to the caller for inline display rather than posted as banners.
type AuthPage struct {
	api           authAPI
	session       sessionWriter
	notifications *notify.Channel
}

func NewAuthPage(api authAPI, session sessionWriter, notifications *notify.Channel) (*AuthPage, error) {

	if api == nil {
		return nil, errors.New("api client is nil")
	}

	if session == nil {
		return nil, errors.New("session writer is nil")
	}

	if notifications == nil {
		return nil, errors.New("notification channel is nil")
	}

	return &AuthPage{api: api, session: session, notifications: notifications}, nil
}

// SignIn validates the form, exchanges the credentials for a token and
// persists it; the session-changed event from the store does the rest.
func (p *AuthPage) SignIn(ctx context.Context, form forms.SignInForm) error {

	if err := form.Validate(); err != nil {
		return err
	}

	token, err := p.api.SignIn(ctx, form.Email, form.Password)
	if err != nil {
		p.fail("Error signing in", err)
		return err
	}

	return p.session.SetToken(ctx, token)
}

func (p *AuthPage) SignOut(ctx context.Context) error {
	return p.session.Clear(ctx)
}

// CompleteRegistration finishes an invitation using its one-time token. The
// user still signs in afterwards; no session is created here.
func (p *AuthPage) CompleteRegistration(ctx context.Context, registrationToken string, form forms.RegistrationForm) error {

	if err := form.Validate(); err != nil {
		return err
	}

	err := p.api.CompleteRegistration(ctx, registrationToken, ats.CompleteRegistrationRequest{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Password:  form.Password,
	})
	if err != nil {
		p.fail("Error completing registration", err)
		return err
	}

	p.notifications.Set(notify.SlotSuccess, "Registration complete, you can sign in now")
	return nil
}

func (p *AuthPage) fail(prefix string, err error) {
	log.WithField(logger.ErrorTypeField, logger.ErrorTypeAuth).
		Errorf("%s: %v", prefix, err)
	p.notifications.Set(notify.SlotError, prefix+": "+errorMessage(err))
}
