package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/studyguide/internal/common"
	"github.com/dmitrijs2005/studyguide/internal/cryptox"
	"github.com/dmitrijs2005/studyguide/internal/logging"
	"github.com/dmitrijs2005/studyguide/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newCredentialService(t *testing.T, rm *fakeRepoManager) (*CredentialService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewCredentialService(db, rm, "ugto.mx", logging.NewNop()), mock
}

func TestRegister_InvalidDomain(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newCredentialService(t, rm)

	for _, email := range []string{
		"ana@gmail.com",
		"ana@ugto.mx.evil.com",
		"ana@alumnos.ugto.mx",
		"ana@ugtoxmx",
		"@ugto.mx",
		"ana lopez@ugto.mx",
		"ana",
		"",
	} {
		_, err := s.Register(context.Background(), email, "ana", "secreto")
		assert.ErrorIs(t, err, common.ErrInvalidDomain, email)

		// even with otherwise invalid fields
		_, err = s.Register(context.Background(), email, "", "")
		assert.ErrorIs(t, err, common.ErrInvalidDomain, email)
	}
	assert.Empty(t, rm.u.byEmail)
}

func TestRegister_Success(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newCredentialService(t, rm)

	u, err := s.Register(context.Background(), "  Ana@UGTO.MX ", " ana ", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "ana@ugto.mx", u.Email)
	assert.Equal(t, "ana", u.UserName)

	stored := rm.u.stored("ana@ugto.mx")
	assert.Equal(t, cryptox.FormatArgon2id, cryptox.DetectFormat(stored.PasswordHash))
	assert.NotContains(t, stored.PasswordHash, "secreto")
}

func TestRegister_Duplicate(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newCredentialService(t, rm)

	_, err := s.Register(context.Background(), "ana@ugto.mx", "ana", "uno")
	require.NoError(t, err)

	_, err = s.Register(context.Background(), "ANA@ugto.mx", "otra", "dos")
	assert.ErrorIs(t, err, common.ErrDuplicateUser)
}

func TestRegister_DuplicateFromStore(t *testing.T) {
	// the lookup misses but the unique index fires (concurrent registration)
	rm := newFakeRepoManager()
	rm.u.createErr = common.ErrDuplicateUser
	s, _ := newCredentialService(t, rm)

	_, err := s.Register(context.Background(), "ana@ugto.mx", "ana", "uno")
	assert.ErrorIs(t, err, common.ErrDuplicateUser)
}

func TestRegister_ValidationAndStoreErrors(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newCredentialService(t, rm)

	_, err := s.Register(context.Background(), "ana@ugto.mx", "  ", "x")
	assert.ErrorIs(t, err, common.ErrValidation)
	_, err = s.Register(context.Background(), "ana@ugto.mx", "ana", "")
	assert.ErrorIs(t, err, common.ErrValidation)

	rm.u.getErr = errBoom{}
	_, err = s.Register(context.Background(), "ana@ugto.mx", "ana", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	rm.u.getErr = nil
	rm.u.createErr = errBoom{}
	_, err = s.Register(context.Background(), "ana@ugto.mx", "ana", "x")
	assert.True(t, errors.Is(err, errBoom{}))
}

func TestLogin(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newCredentialService(t, rm)
	ctx := context.Background()

	_, err := s.Register(ctx, "ana@ugto.mx", "ana", "correcta")
	require.NoError(t, err)

	t.Run("by email", func(t *testing.T) {
		u, err := s.Login(ctx, "ANA@ugto.mx", "correcta")
		require.NoError(t, err)
		assert.Equal(t, "ana@ugto.mx", u.Email)
	})

	t.Run("by username", func(t *testing.T) {
		u, err := s.Login(ctx, "ana", "correcta")
		require.NoError(t, err)
		assert.Equal(t, "ana@ugto.mx", u.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.Login(ctx, "ana@ugto.mx", "incorrecta")
		assert.ErrorIs(t, err, common.ErrBadCredential)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := s.Login(ctx, "nadie@ugto.mx", "x")
		assert.ErrorIs(t, err, common.ErrNotFound)
		_, err = s.Login(ctx, "  ", "x")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("current hash is not rewritten", func(t *testing.T) {
		before := rm.u.updates
		_, err := s.Login(ctx, "ana", "correcta")
		require.NoError(t, err)
		assert.Equal(t, before, rm.u.updates)
	})

	t.Run("store error", func(t *testing.T) {
		rm.u.getErr = errBoom{}
		defer func() { rm.u.getErr = nil }()
		_, err := s.Login(ctx, "ana", "correcta")
		assert.True(t, errors.Is(err, errBoom{}))
	})
}

func TestLogin_LegacyPlaintextUpgradedOnce(t *testing.T) {
	rm := newFakeRepoManager()
	rm.u.put(models.User{Email: "luis@ugto.mx", UserName: "luis", PasswordHash: "hunter2"})
	s, mock := newCredentialService(t, rm)
	mock.ExpectBegin()
	mock.ExpectCommit()
	ctx := context.Background()

	_, err := s.Login(ctx, "luis@ugto.mx", "wrong")
	assert.ErrorIs(t, err, common.ErrBadCredential)
	assert.Equal(t, "hunter2", rm.u.stored("luis@ugto.mx").PasswordHash, "failed login must not touch the record")

	u, err := s.Login(ctx, "luis@ugto.mx", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, cryptox.FormatArgon2id, cryptox.DetectFormat(u.PasswordHash))

	stored := rm.u.stored("luis@ugto.mx").PasswordHash
	assert.Equal(t, cryptox.FormatArgon2id, cryptox.DetectFormat(stored))
	assert.Equal(t, 1, rm.u.updates)

	// later logins verify against the hash and do not rewrite again
	_, err = s.Login(ctx, "luis", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, 1, rm.u.updates)
	assert.Equal(t, stored, rm.u.stored("luis@ugto.mx").PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_BcryptUpgraded(t *testing.T) {
	raw, err := bcrypt.GenerateFromPassword([]byte("vieja"), bcrypt.MinCost)
	require.NoError(t, err)

	rm := newFakeRepoManager()
	rm.u.put(models.User{Email: "eva@ugto.mx", UserName: "eva", PasswordHash: string(raw)})
	s, mock := newCredentialService(t, rm)
	mock.ExpectBegin()
	mock.ExpectCommit()

	_, err = s.Login(context.Background(), "eva", "vieja")
	require.NoError(t, err)
	assert.Equal(t, cryptox.FormatArgon2id, cryptox.DetectFormat(rm.u.stored("eva@ugto.mx").PasswordHash))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_UpgradeFailureDoesNotFailLogin(t *testing.T) {
	rm := newFakeRepoManager()
	rm.u.put(models.User{Email: "luis@ugto.mx", UserName: "luis", PasswordHash: "hunter2"})
	rm.u.updateErr = errBoom{}
	s, mock := newCredentialService(t, rm)
	mock.ExpectBegin()
	mock.ExpectRollback()

	u, err := s.Login(context.Background(), "luis@ugto.mx", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", u.PasswordHash)
	assert.Equal(t, "hunter2", rm.u.stored("luis@ugto.mx").PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_UpgradeBeginFails(t *testing.T) {
	rm := newFakeRepoManager()
	rm.u.put(models.User{Email: "luis@ugto.mx", UserName: "luis", PasswordHash: "hunter2"})
	s, mock := newCredentialService(t, rm)
	mock.ExpectBegin().WillReturnError(errBoom{})

	_, err := s.Login(context.Background(), "luis@ugto.mx", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, 0, rm.u.updates)
}

func TestLogin_MalformedHash(t *testing.T) {
	rm := newFakeRepoManager()
	rm.u.put(models.User{Email: "x@ugto.mx", UserName: "x", PasswordHash: "$argon2id$broken"})
	s, _ := newCredentialService(t, rm)

	_, err := s.Login(context.Background(), "x", "$argon2id$broken")
	assert.ErrorIs(t, err, common.ErrBadCredential)

	rm.u.put(models.User{Email: "y@ugto.mx", UserName: "y", PasswordHash: "$argon2id$v=19$m=65536,t=0,p=4$c2FsdA$a2V5"})
	_, err = s.Login(context.Background(), "y@ugto.mx", "x")
	assert.ErrorIs(t, err, common.ErrBadCredential)
}

func TestRegister_UsernameWithAt(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newCredentialService(t, rm)

	_, err := s.Register(context.Background(), "otra@ugto.mx", "ana@ugto.mx", "x")
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, rm.u.order)
}

func TestLogin_EmailNotShadowedByUsername(t *testing.T) {
	other, err := cryptox.HashPassword("ajena")
	require.NoError(t, err)

	rm := newFakeRepoManager()
	// older account whose username looks like ana's email
	rm.u.put(models.User{Email: "otra@ugto.mx", UserName: "ana@ugto.mx", PasswordHash: other})
	s, _ := newCredentialService(t, rm)
	ctx := context.Background()

	_, err = s.Register(ctx, "ana@ugto.mx", "ana", "correcta")
	require.NoError(t, err)

	u, err := s.Login(ctx, "ana@ugto.mx", "correcta")
	require.NoError(t, err)
	assert.Equal(t, "ana@ugto.mx", u.Email)

	_, err = s.Login(ctx, "ana@ugto.mx", "ajena")
	assert.ErrorIs(t, err, common.ErrBadCredential)
}

func TestLogin_SharedUsername(t *testing.T) {
	rm := newFakeRepoManager()
	s, _ := newCredentialService(t, rm)
	ctx := context.Background()

	_, err := s.Register(ctx, "ana@ugto.mx", "ana", "primera")
	require.NoError(t, err)
	_, err = s.Register(ctx, "ana.lopez@ugto.mx", "ana", "segunda")
	require.NoError(t, err)

	u, err := s.Login(ctx, "ana", "segunda")
	require.NoError(t, err)
	assert.Equal(t, "ana.lopez@ugto.mx", u.Email)

	u, err = s.Login(ctx, "ana", "primera")
	require.NoError(t, err)
	assert.Equal(t, "ana@ugto.mx", u.Email)

	_, err = s.Login(ctx, "ana", "otra")
	assert.ErrorIs(t, err, common.ErrBadCredential)
}

func TestLogin_MalformedHashSkipsToNextAccount(t *testing.T) {
	rm := newFakeRepoManager()
	rm.u.put(models.User{Email: "x@ugto.mx", UserName: "x", PasswordHash: "$argon2id$broken"})
	s, _ := newCredentialService(t, rm)
	ctx := context.Background()

	_, err := s.Register(ctx, "x2@ugto.mx", "x", "bien")
	require.NoError(t, err)

	u, err := s.Login(ctx, "x", "bien")
	require.NoError(t, err)
	assert.Equal(t, "x2@ugto.mx", u.Email)
}

func TestNewCredentialService_DomainNormalized(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewCredentialService(db, newFakeRepoManager(), " @UGTO.MX ", logging.NewNop())
	_, err = s.Register(context.Background(), "ana@ugto.mx", "ana", "x")
	assert.NoError(t, err)
}
