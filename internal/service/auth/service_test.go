package auth

import (
	"context"
	"testing"

	domain "github.com/RostrApp/rostr-backend-go/internal/domain/auth"
	"github.com/RostrApp/rostr-backend-go/internal/domain/user"
	"github.com/RostrApp/rostr-backend-go/internal/pkg/jwt"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	createFn        func(ctx context.Context, newUser user.User) (user.User, error)
	getByIDFn       func(ctx context.Context, id string) (user.User, error)
	getByUsernameFn func(ctx context.Context, username string) (user.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	return f.createFn(ctx, newUser)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return f.getByUsernameFn(ctx, username)
}

func (f *fakeUserRepo) GetByIDs(ctx context.Context, ids []string) ([]user.User, error) {
	panic("not implemented")
}

func (f *fakeUserRepo) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	panic("not implemented")
}

func (f *fakeUserRepo) Update(ctx context.Context, id string, req user.UpdateUserRequest) error {
	panic("not implemented")
}

func newTestJWTService() jwt.Service {
	return jwt.NewJWTService("test-secret-key", "1h", "24h")
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister(t *testing.T) {
	var created user.User
	userRepo := &fakeUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (user.User, error) {
			return user.User{}, pgx.ErrNoRows
		},
		createFn: func(ctx context.Context, newUser user.User) (user.User, error) {
			newUser.ID = "user-1"
			created = newUser
			return newUser, nil
		},
	}
	svc := NewAuthService(userRepo, newTestJWTService())

	err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "alice",
		Password: "password123",
		FullName: "Alice Veldt",
		Role:     "staff",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, user.RoleStaff, created.Role)

	// Stored hash verifies against the original password
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	userRepo := &fakeUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (user.User, error) {
			return user.User{ID: "user-1", Username: username}, nil
		},
	}
	svc := NewAuthService(userRepo, newTestJWTService())

	err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "alice",
		Password: "password123",
		FullName: "Alice Veldt",
		Role:     "staff",
	})
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, newTestJWTService())

	err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "alice",
		Password: "short",
		FullName: "Alice Veldt",
		Role:     "manager",
	})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	userRepo := &fakeUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (user.User, error) {
			return user.User{
				ID:           "user-1",
				Username:     username,
				PasswordHash: hashOf(t, "password123"),
				FullName:     "Alice Veldt",
				Role:         user.RoleAdmin,
			}, nil
		},
	}
	svc := NewAuthService(userRepo, newTestJWTService())

	resp, err := svc.Login(context.Background(), domain.LoginRequest{
		Username: "alice",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "admin", resp.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := &fakeUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (user.User, error) {
			return user.User{
				ID:           "user-1",
				Username:     username,
				PasswordHash: hashOf(t, "password123"),
				Role:         user.RoleStaff,
			}, nil
		},
	}
	svc := NewAuthService(userRepo, newTestJWTService())

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Username: "alice",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	userRepo := &fakeUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (user.User, error) {
			return user.User{}, pgx.ErrNoRows
		},
	}
	svc := NewAuthService(userRepo, newTestJWTService())

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Username: "ghost",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	jwtService := newTestJWTService()
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id string) (user.User, error) {
			return user.User{ID: id, Username: "alice", FullName: "Alice Veldt", Role: user.RoleStaff}, nil
		},
	}
	svc := NewAuthService(userRepo, jwtService)

	refreshToken, _, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), refreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	jwtService := newTestJWTService()
	svc := NewAuthService(&fakeUserRepo{}, jwtService)

	accessToken, _, err := jwtService.GenerateAccessToken("user-1", "alice", "Alice Veldt", user.RoleStaff)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), accessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	jwtService := newTestJWTService()
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id string) (user.User, error) {
			return user.User{ID: id, Role: user.RoleStaff}, nil
		},
	}
	svc := NewAuthService(userRepo, jwtService)

	refreshToken, _, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), refreshToken))

	_, err = svc.Refresh(context.Background(), refreshToken)
	assert.ErrorIs(t, err, domain.ErrRefreshTokenRevoked)
}

func TestLogoutEmptyToken(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, newTestJWTService())
	assert.ErrorIs(t, svc.Logout(context.Background(), ""), domain.ErrInvalidToken)
}
