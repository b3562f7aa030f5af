// Package services contains application services for the study guide
// client. This file defines the authentication service: register, login,
// logout, liveness check and the remembered login name.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/studyguide/internal/client/client"
	"github.com/dmitrijs2005/studyguide/internal/client/models"
	"github.com/dmitrijs2005/studyguide/internal/client/repositories/prefs"
	"github.com/dmitrijs2005/studyguide/internal/common"
	"github.com/dmitrijs2005/studyguide/internal/logging"
)

// AuthService defines authentication operations for the screens.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, email, username, password string) error
	Login(ctx context.Context, login, password string) (*models.Session, error)
	Logout()
	// LastLogin returns the login name of the last successful login, or "".
	LastLogin(ctx context.Context) string
	Ping(ctx context.Context) error
	Close() error
}

type authService struct {
	client client.Client
	prefs  prefs.Repository
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and local preferences store.
func NewAuthService(c client.Client, p prefs.Repository, log logging.Logger) AuthService {
	return &authService{client: c, prefs: p, log: log.With("module", "auth")}
}

// Register checks the fields are filled in before calling the server; the
// server owns domain and uniqueness checks.
func (a *authService) Register(ctx context.Context, email, username, password string) error {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)
	if email == "" || username == "" || password == "" {
		return common.ErrValidation
	}
	return a.client.Register(ctx, email, username, password)
}

func (a *authService) Login(ctx context.Context, login, password string) (*models.Session, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, common.ErrValidation
	}

	sess, err := a.client.Login(ctx, login, password)
	if err != nil {
		return nil, err
	}

	if err := a.prefs.Set(ctx, prefs.KeyLastLogin, login); err != nil {
		a.log.Warn(ctx, "remember login failed", "error", err)
	}
	return sess, nil
}

func (a *authService) Logout() {
	a.client.Logout()
}

func (a *authService) LastLogin(ctx context.Context) string {
	v, err := a.prefs.Get(ctx, prefs.KeyLastLogin)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			a.log.Warn(ctx, "read last login failed", "error", err)
		}
		return ""
	}
	return v
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close() error {
	return a.client.Close()
}
