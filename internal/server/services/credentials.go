// Package services contains server-side business logic. This file implements
// CredentialService: institutional-domain registration and login with lazy
// upgrade of legacy password records.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/studyguide/internal/common"
	"github.com/dmitrijs2005/studyguide/internal/cryptox"
	"github.com/dmitrijs2005/studyguide/internal/dbx"
	"github.com/dmitrijs2005/studyguide/internal/logging"
	"github.com/dmitrijs2005/studyguide/internal/server/models"
	"github.com/dmitrijs2005/studyguide/internal/server/repositories/repomanager"
)

// CredentialService registers and authenticates accounts. It issues no
// tokens; session handling belongs to the transport.
type CredentialService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	domainRe    *regexp.Regexp
	log         logging.Logger
}

// NewCredentialService accepts emails of exactly one institutional domain,
// e.g. "ugto.mx". Subdomains are not accepted.
func NewCredentialService(db *sql.DB, m repomanager.RepositoryManager, domain string, log logging.Logger) *CredentialService {
	domain = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(domain), "@"))
	return &CredentialService{
		db:          db,
		repomanager: m,
		domainRe:    regexp.MustCompile(`^[^@\s]+@` + regexp.QuoteMeta(domain) + `$`),
		log:         log.With("module", "credentials"),
	}
}

// Register creates an account. The email must belong to the institutional
// domain and must not be registered yet.
func (s *CredentialService) Register(ctx context.Context, email, username, password string) (*models.User, error) {
	email = common.NormalizeEmail(email)
	if !s.domainRe.MatchString(email) {
		return nil, common.ErrInvalidDomain
	}

	// an "@" would make the username collide with email logins
	username = strings.TrimSpace(username)
	if username == "" || password == "" || strings.Contains(username, "@") {
		return nil, common.ErrValidation
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, common.ErrDuplicateUser
	case !errors.Is(err, common.ErrNotFound):
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u, err := repo.Create(ctx, &models.User{Email: email, UserName: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUser) || errors.Is(err, common.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.log.Info(ctx, "user registered", "email", email)
	return u, nil
}

// Login authenticates by email or username. An identifier containing "@" is
// only matched against emails. Usernames are not unique, so every account
// with that username is tried and the oldest one the password opens wins.
// Records still holding a bcrypt or plaintext password are rewritten with a
// current hash on success; a failed rewrite is logged and does not fail the
// login.
func (s *CredentialService) Login(ctx context.Context, identifier, password string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, common.ErrNotFound
	}

	candidates, err := s.candidates(ctx, identifier)
	if err != nil {
		return nil, err
	}

	for _, user := range candidates {
		ok, err := cryptox.VerifyPassword(user.PasswordHash, password)
		if err != nil {
			s.log.Error(ctx, "stored password hash is malformed", "user_id", user.ID, "error", err)
			continue
		}
		if !ok {
			continue
		}

		if cryptox.NeedsRehash(user.PasswordHash) {
			s.upgradeHash(ctx, user, password)
		}
		return user, nil
	}

	return nil, common.ErrBadCredential
}

// candidates returns the accounts identifier may refer to, or
// common.ErrNotFound when there are none.
func (s *CredentialService) candidates(ctx context.Context, identifier string) ([]*models.User, error) {
	repo := s.repomanager.Users(s.db)

	if strings.Contains(identifier, "@") {
		user, err := repo.GetByEmail(ctx, common.NormalizeEmail(identifier))
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil, common.ErrNotFound
			}
			return nil, fmt.Errorf("error looking up user: %w", err)
		}
		return []*models.User{user}, nil
	}

	users, err := repo.ListByUsername(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if len(users) == 0 {
		return nil, common.ErrNotFound
	}
	return users, nil
}

func (s *CredentialService) upgradeHash(ctx context.Context, user *models.User, password string) {
	from := cryptox.DetectFormat(user.PasswordHash)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		s.log.Warn(ctx, "password upgrade failed", "user_id", user.ID, "error", err)
		return
	}
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Users(tx).UpdatePasswordHash(ctx, user.ID, hash)
	})
	if err != nil {
		s.log.Warn(ctx, "password upgrade failed", "user_id", user.ID, "error", err)
		return
	}

	user.PasswordHash = hash
	s.log.Info(ctx, "password hash upgraded", "user_id", user.ID, "from", from.String())
}
