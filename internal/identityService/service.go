package identity

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"artisan-market/internal/marketerrors"
	"artisan-market/internal/models"
	"artisan-market/internal/repository"
	"artisan-market/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 72 // bcrypt input limit
)

// RegisterInput is the payload of a registration request
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Mobile    string
}

// Session is the result of a successful login
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Role      string    `json:"role"`
	Identity  string    `json:"identity"`
	Name      string    `json:"name"`
}

// Service registers and authenticates principals of every kind
type Service struct {
	store repository.PrincipalStore
	jwt   JWT
	cost  int
	names NameCache
}

// NewService creates a new identity Service
func NewService(store repository.PrincipalStore, tokens JWT) *Service {
	return &Service{store: store, jwt: tokens, cost: bcrypt.DefaultCost}
}

// WithHashCost overrides the bcrypt cost, mainly to keep tests fast
func (s *Service) WithHashCost(cost int) *Service {
	s.cost = cost
	return s
}

// WithNameCache makes profile changes drop the cached display name
func (s *Service) WithNameCache(names NameCache) *Service {
	s.names = names
	return s
}

// Register creates an account of kind. Admin accounts can only be created by an
// existing admin, except for the very first one.
func (s *Service) Register(ctx context.Context, kind models.PrincipalKind, in RegisterInput, caller *models.Caller) (models.Principal, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validateRegistration(in); err != nil {
		return models.Principal{}, err
	}

	if kind == models.KindAdmin {
		if err := s.authorizeAdminRegistration(ctx, caller); err != nil {
			return models.Principal{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return models.Principal{}, fmt.Errorf("service: hash password: %w", err)
	}

	p := models.Principal{
		ID:           utils.GenerateID(),
		Kind:         kind,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Mobile:       strings.TrimSpace(in.Mobile),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.CreatePrincipal(ctx, p); err != nil {
		return models.Principal{}, fmt.Errorf("service: failed to register %s %s: %w", kind, in.Email, err)
	}
	return p, nil
}

func validateRegistration(in RegisterInput) error {
	if _, err := mail.ParseAddress(in.Email); err != nil || in.Email == "" {
		return marketerrors.WithDetail(marketerrors.ErrInvalidInput, "a valid email is required")
	}
	if len(in.Password) < minPasswordLength || len(in.Password) > maxPasswordLength {
		return marketerrors.WithDetail(marketerrors.ErrInvalidInput, fmt.Sprintf("password must be %d to %d characters", minPasswordLength, maxPasswordLength))
	}
	if strings.TrimSpace(in.FirstName) == "" {
		return marketerrors.WithDetail(marketerrors.ErrInvalidInput, "first_name is required")
	}
	return nil
}

func (s *Service) authorizeAdminRegistration(ctx context.Context, caller *models.Caller) error {
	if caller != nil && caller.Role == models.KindAdmin {
		return nil
	}
	admins, err := s.store.CountPrincipals(ctx, models.KindAdmin)
	if err != nil {
		return fmt.Errorf("service: count admins: %w", err)
	}
	if admins > 0 {
		return fmt.Errorf("service: admin registration requires an admin: %w", marketerrors.ErrForbidden)
	}
	return nil
}

// Login checks credentials and issues a bearer token
func (s *Service) Login(ctx context.Context, kind models.PrincipalKind, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	p, err := s.store.FindPrincipalByEmail(ctx, kind, email)
	if errors.Is(err, marketerrors.ErrPrincipalNotFound) {
		return Session{}, fmt.Errorf("service: login %s %s: %w", kind, email, marketerrors.ErrInvalidCredentials)
	}
	if err != nil {
		return Session{}, fmt.Errorf("service: login %s %s: %w", kind, email, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return Session{}, fmt.Errorf("service: login %s %s: %w", kind, email, marketerrors.ErrInvalidCredentials)
	}
	if p.Blocked {
		return Session{}, fmt.Errorf("service: login %s %s: %w", kind, email, marketerrors.ErrPrincipalBlocked)
	}

	token, expiresAt, err := s.jwt.Sign(Claims{
		Role:             string(p.Kind),
		RegisteredClaims: jwt.RegisteredClaims{Subject: p.Identity()},
	})
	if err != nil {
		return Session{}, fmt.Errorf("service: sign token: %w", err)
	}

	return Session{
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      string(p.Kind),
		Identity:  p.Identity(),
		Name:      p.DisplayName(),
	}, nil
}

// Authenticate turns a bearer token into the calling principal
func (s *Service) Authenticate(token string) (models.Caller, error) {
	claims, err := s.jwt.Verify(token)
	if err != nil {
		return models.Caller{}, fmt.Errorf("service: verify token: %v: %w", err, marketerrors.ErrUnauthorized)
	}
	role, ok := models.ParsePrincipalKind(claims.Role)
	if !ok || claims.Subject == "" {
		return models.Caller{}, fmt.Errorf("service: malformed token claims: %w", marketerrors.ErrUnauthorized)
	}
	return models.Caller{Identity: claims.Subject, Role: role}, nil
}

// Profile loads the principal behind caller
func (s *Service) Profile(ctx context.Context, caller models.Caller) (models.Principal, error) {
	var (
		p   models.Principal
		err error
	)
	if caller.Role == models.KindInstructor {
		p, err = s.store.GetPrincipal(ctx, caller.Identity)
	} else {
		p, err = s.store.FindPrincipalByEmail(ctx, caller.Role, caller.Identity)
	}
	if err != nil {
		return models.Principal{}, fmt.Errorf("service: load profile of %s: %w", caller.Identity, err)
	}
	return p, nil
}

// UpdateProfile changes the caller's name or mobile number and forgets the
// cached display name so listings and invoices pick up the new one.
func (s *Service) UpdateProfile(ctx context.Context, caller models.Caller, update models.ProfileUpdate) (models.Principal, error) {
	update.FirstName = trimmed(update.FirstName)
	update.LastName = trimmed(update.LastName)
	update.Mobile = trimmed(update.Mobile)
	if update.FirstName != nil && *update.FirstName == "" {
		return models.Principal{}, marketerrors.WithDetail(marketerrors.ErrInvalidInput, "first_name cannot be empty")
	}

	current, err := s.Profile(ctx, caller)
	if err != nil {
		return models.Principal{}, err
	}
	p, err := s.store.UpdateProfile(ctx, current.ID, update)
	if err != nil {
		return models.Principal{}, fmt.Errorf("service: update profile of %s: %w", caller.Identity, err)
	}

	if s.names != nil {
		s.names.Invalidate(ctx, nameKey(p.Kind, p.Identity()))
	}
	return p, nil
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}

// ListPrincipals returns every account of kind
func (s *Service) ListPrincipals(ctx context.Context, kind models.PrincipalKind) ([]models.Principal, error) {
	principals, err := s.store.ListPrincipals(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("service: list %s principals: %w", kind, err)
	}
	return principals, nil
}

// SetBlocked bans or unbans an account. Admins cannot be banned.
func (s *Service) SetBlocked(ctx context.Context, kind models.PrincipalKind, id string, blocked bool) error {
	if kind == models.KindAdmin {
		return fmt.Errorf("service: block admin %s: %w", id, marketerrors.ErrForbidden)
	}
	if err := s.store.SetBlocked(ctx, kind, id, blocked); err != nil {
		return fmt.Errorf("service: set blocked=%t on %s %s: %w", blocked, kind, id, err)
	}
	return nil
}

// CountPrincipals returns the number of accounts per kind
func (s *Service) CountPrincipals(ctx context.Context) (map[models.PrincipalKind]int64, error) {
	counts := make(map[models.PrincipalKind]int64, 4)
	for _, kind := range []models.PrincipalKind{models.KindBuyer, models.KindSeller, models.KindInstructor, models.KindAdmin} {
		n, err := s.store.CountPrincipals(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("service: count %s principals: %w", kind, err)
		}
		counts[kind] = n
	}
	return counts, nil
}
