package identity

import (
	"context"
	"testing"
	"time"

	"artisan-market/internal/marketerrors"
	"artisan-market/internal/models"
	"artisan-market/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService() (*Service, *repository.MemoryRepo) {
	repo := repository.NewMemoryRepo()
	svc := NewService(repo, JWT{Secret: []byte("test-secret"), TokenTTL: time.Hour}).WithHashCost(bcrypt.MinCost)
	return svc, repo
}

func validInput(email string) RegisterInput {
	return RegisterInput{Email: email, Password: "s3cret!", FirstName: "Ada", LastName: "Lovelace"}
}

// Test Register
func TestService_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    models.PrincipalKind
		input   RegisterInput
		wantErr error
	}{
		{name: "buyer", kind: models.KindBuyer, input: validInput("ada@x.io")},
		{name: "email_is_normalized", kind: models.KindSeller, input: validInput("  ADA@X.io ")},
		{name: "bad_email", kind: models.KindBuyer, input: validInput("not-an-email"), wantErr: marketerrors.ErrInvalidInput},
		{name: "short_password", kind: models.KindBuyer, input: RegisterInput{Email: "a@x.io", Password: "123", FirstName: "A"}, wantErr: marketerrors.ErrInvalidInput},
		{name: "missing_first_name", kind: models.KindBuyer, input: RegisterInput{Email: "a@x.io", Password: "s3cret!"}, wantErr: marketerrors.ErrInvalidInput},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, _ := newTestService()
			p, err := svc.Register(context.Background(), tc.kind, tc.input, nil)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.NotEmpty(t, marketerrors.Detail(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, "ada@x.io", p.Email)
			require.Equal(t, tc.kind, p.Kind)
			require.NotEqual(t, tc.input.Password, p.PasswordHash)
		})
	}

	t.Run("duplicate_email_same_kind", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService()
		_, err := svc.Register(context.Background(), models.KindBuyer, validInput("dup@x.io"), nil)
		require.NoError(t, err)
		_, err = svc.Register(context.Background(), models.KindBuyer, validInput("dup@x.io"), nil)
		require.ErrorIs(t, err, marketerrors.ErrDuplicatePrincipal)
		_, err = svc.Register(context.Background(), models.KindSeller, validInput("dup@x.io"), nil)
		require.NoError(t, err)
	})

	t.Run("admin_bootstrap", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService()
		ctx := context.Background()

		_, err := svc.Register(ctx, models.KindAdmin, validInput("root@x.io"), nil)
		require.NoError(t, err, "first admin may self-register")

		_, err = svc.Register(ctx, models.KindAdmin, validInput("second@x.io"), nil)
		require.ErrorIs(t, err, marketerrors.ErrForbidden)

		_, err = svc.Register(ctx, models.KindAdmin, validInput("second@x.io"), &models.Caller{Identity: "buyer@x.io", Role: models.KindBuyer})
		require.ErrorIs(t, err, marketerrors.ErrForbidden)

		_, err = svc.Register(ctx, models.KindAdmin, validInput("second@x.io"), &models.Caller{Identity: "root@x.io", Role: models.KindAdmin})
		require.NoError(t, err)
	})
}

// Test Login and Authenticate
func TestService_LoginAuthenticate(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService()
	ctx := context.Background()

	buyer, err := svc.Register(ctx, models.KindBuyer, validInput("ada@x.io"), nil)
	require.NoError(t, err)
	instructor, err := svc.Register(ctx, models.KindInstructor, validInput("teach@x.io"), nil)
	require.NoError(t, err)

	t.Run("buyer_token_subject_is_email", func(t *testing.T) {
		session, err := svc.Login(ctx, models.KindBuyer, "ADA@x.io", "s3cret!")
		require.NoError(t, err)
		require.Equal(t, "Ada Lovelace", session.Name)

		caller, err := svc.Authenticate(session.Token)
		require.NoError(t, err)
		require.Equal(t, models.Caller{Identity: buyer.Email, Role: models.KindBuyer}, caller)
	})

	t.Run("instructor_token_subject_is_id", func(t *testing.T) {
		session, err := svc.Login(ctx, models.KindInstructor, "teach@x.io", "s3cret!")
		require.NoError(t, err)

		caller, err := svc.Authenticate(session.Token)
		require.NoError(t, err)
		require.Equal(t, instructor.ID, caller.Identity)

		p, err := svc.Profile(ctx, caller)
		require.NoError(t, err)
		require.Equal(t, "teach@x.io", p.Email)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := svc.Login(ctx, models.KindBuyer, "ada@x.io", "nope-nope")
		require.ErrorIs(t, err, marketerrors.ErrInvalidCredentials)
	})

	t.Run("wrong_kind", func(t *testing.T) {
		_, err := svc.Login(ctx, models.KindSeller, "ada@x.io", "s3cret!")
		require.ErrorIs(t, err, marketerrors.ErrInvalidCredentials)
	})

	t.Run("blocked_cannot_login", func(t *testing.T) {
		blocked, err := svc.Register(ctx, models.KindSeller, validInput("banned@x.io"), nil)
		require.NoError(t, err)
		require.NoError(t, svc.SetBlocked(ctx, models.KindSeller, blocked.ID, true))

		_, err = svc.Login(ctx, models.KindSeller, "banned@x.io", "s3cret!")
		require.ErrorIs(t, err, marketerrors.ErrPrincipalBlocked)

		require.NoError(t, svc.SetBlocked(ctx, models.KindSeller, blocked.ID, false))
		_, err = svc.Login(ctx, models.KindSeller, "banned@x.io", "s3cret!")
		require.NoError(t, err)
	})

	t.Run("admins_cannot_be_blocked", func(t *testing.T) {
		require.ErrorIs(t, svc.SetBlocked(ctx, models.KindAdmin, "any", true), marketerrors.ErrForbidden)
	})

	t.Run("tampered_token", func(t *testing.T) {
		other := JWT{Secret: []byte("other-secret"), TokenTTL: time.Hour}
		token, _, err := other.Sign(Claims{Role: "admin", RegisteredClaims: jwt.RegisteredClaims{Subject: "evil@x.io"}})
		require.NoError(t, err)

		_, err = svc.Authenticate(token)
		require.ErrorIs(t, err, marketerrors.ErrUnauthorized)
	})

	t.Run("unknown_role_claim", func(t *testing.T) {
		token, _, err := svc.jwt.Sign(Claims{Role: "superuser", RegisteredClaims: jwt.RegisteredClaims{Subject: "x@x.io"}})
		require.NoError(t, err)

		_, err = svc.Authenticate(token)
		require.ErrorIs(t, err, marketerrors.ErrUnauthorized)
	})

	t.Run("counts", func(t *testing.T) {
		counts, err := svc.CountPrincipals(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 1, counts[models.KindBuyer])
		require.EqualValues(t, 1, counts[models.KindInstructor])

		sellers, err := repo.ListPrincipals(ctx, models.KindSeller)
		require.NoError(t, err)
		require.Len(t, sellers, 1)
	})
}

// Test JWT expiry
func TestJWT_Expired(t *testing.T) {
	t.Parallel()

	j := JWT{Secret: []byte("k"), TokenTTL: time.Hour}
	past := time.Now().Add(-time.Minute)
	token, _, err := j.Sign(Claims{Role: "buyer", RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "a@x.io",
		ExpiresAt: jwt.NewNumericDate(past),
	}})
	require.NoError(t, err)

	_, err = j.Verify(token)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}
