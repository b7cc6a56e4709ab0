package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/SERMEX0/sermex-backend/internal/domain"
	"github.com/SERMEX0/sermex-backend/internal/password"
	"github.com/SERMEX0/sermex-backend/internal/token"
)

// memoryUserRepo is an in-memory UserRepository used across service tests.
type memoryUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]domain.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[int64]domain.User)}
}

func (r *memoryUserRepo) GetByCorreo(_ context.Context, correo string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Correo == correo {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (r *memoryUserRepo) GetByID(_ context.Context, userID int64) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *memoryUserRepo) Create(_ context.Context, correo, passwordHash string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Correo == correo {
			return domain.User{}, domain.ErrDuplicateEmail
		}
	}
	r.nextID++
	u := domain.User{
		ID:           r.nextID,
		Correo:       correo,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *memoryUserRepo) UpdatePassword(_ context.Context, userID int64, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	r.users[userID] = u
	return nil
}

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	repo := newMemoryUserRepo()
	hasher := password.NewBcryptHasher(bcrypt.MinCost)
	issuer := token.NewIssuer([]byte("test-secret"), time.Hour)
	return NewAuthService(repo, hasher, issuer, zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", user.Correo)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	result, err := svc.Login(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, user.ID, result.User.ID)
}

func TestRegisterNormalizesCorreo(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "  Alice@X.COM ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", user.Correo)

	// Login with a differently cased address reaches the same account.
	_, err = svc.Login(ctx, "ALICE@x.com", "secret1")
	require.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice@x.com", "other-password")
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestLoginDistinguishesUnknownUserFromWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "nobody@x.com", "secret1")
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.Login(ctx, "alice@x.com", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestChangePassword(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, "secret1", "secret2"))

	_, err = svc.Login(ctx, "alice@x.com", "secret1")
	require.ErrorIs(t, err, domain.ErrInvalidPassword)

	_, err = svc.Login(ctx, "alice@x.com", "secret2")
	require.NoError(t, err)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, "wrong", "secret2")
	require.ErrorIs(t, err, domain.ErrInvalidPassword)

	// The stored digest is untouched.
	_, err = svc.Login(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)
}

func TestChangePasswordUnknownUser(t *testing.T) {
	svc := newTestAuthService(t)

	err := svc.ChangePassword(context.Background(), 999, "secret1", "secret2")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
