// Package auth drives the two-step console login: the server first mails a
// password to the given address, then the pair is exchanged for a session
// cookie. Session issuance itself is entirely the server's concern.
package auth

import (
	"context"
	"errors"

	"github.com/kisaanstar/console/internal/app/entity"
	"github.com/kisaanstar/console/internal/app/usecase/validator"
	"go.uber.org/zap"
)

var (
	ErrEmailInvalid     = errors.New("email address invalid")
	ErrPasswordRequired = errors.New("password is required")
	ErrWrongStep        = errors.New("login step out of order")
)

type Step int

const (
	StepEmail Step = iota
	StepPassword
	StepDone
)

// Authenticator is the role-scoped authentication surface of the API.
type Authenticator interface {
	SendPassword(ctx context.Context, email string) (string, error)
	Login(ctx context.Context, email, password string) error
	Dashboard(ctx context.Context) (entity.Profile, error)
	Logout(ctx context.Context) error
}

// Flow walks one login attempt through its steps. A failed call leaves the
// flow on the current step so the user can retry.
type Flow struct {
	auth  Authenticator
	step  Step
	email string
}

func NewFlow(auth Authenticator) *Flow {
	return &Flow{auth: auth}
}

func (f *Flow) Step() Step {
	return f.step
}

// SubmitEmail validates the address and requests the one-time password. On
// success the flow advances to the password step and the server's
// confirmation message is returned.
func (f *Flow) SubmitEmail(ctx context.Context, email string) (string, error) {
	if f.step != StepEmail {
		return "", ErrWrongStep
	}
	if !validator.Email(email) {
		return "", ErrEmailInvalid
	}

	message, err := f.auth.SendPassword(ctx, email)
	if err != nil {
		zap.L().Error("error while requesting login password", zap.Error(err))
		return "", err
	}

	f.email = email
	f.step = StepPassword

	return message, nil
}

// SubmitPassword exchanges the credentials for a session.
func (f *Flow) SubmitPassword(ctx context.Context, password string) error {
	if f.step != StepPassword {
		return ErrWrongStep
	}
	if len(password) == 0 {
		return ErrPasswordRequired
	}

	err := f.auth.Login(ctx, f.email, password)
	if err != nil {
		zap.L().Error("error while logging in", zap.Error(err))
		return err
	}

	f.step = StepDone

	return nil
}

// Profile probes the session after login and returns the authenticated
// identity.
func (f *Flow) Profile(ctx context.Context) (entity.Profile, error) {
	return f.auth.Dashboard(ctx)
}

func (f *Flow) Logout(ctx context.Context) error {
	err := f.auth.Logout(ctx)
	if err != nil {
		zap.L().Error("error while logging out", zap.Error(err))
		return err
	}

	f.step = StepEmail
	f.email = ""

	return nil
}
