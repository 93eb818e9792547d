package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"coffeeshop_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailAlreadyExists or
	// ErrShopNameAlreadyExists when a unique constraint is violated.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the given email address.
	// Returns ErrUserNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the given ID.
	// Returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// PhoneValidator checks that a phone number is valid under some national or
// international numbering plan.
type PhoneValidator interface {
	// Validate returns a non-nil error describing why the number is invalid.
	Validate(number string) error
}

// TokenSource mints opaque session tokens.
type TokenSource interface {
	// NewToken returns a new cryptographically random token.
	NewToken() (string, error)
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Email    string
	Password string
	ShopName string
	Address  string
	Phone    string
}

// LoginMeta carries per-request client metadata stored on the session.
type LoginMeta struct {
	UserAgent string
	IPAddress string
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users      UserRepository
	sessions   SessionRepository
	phones     PhoneValidator
	tokens     TokenSource
	sessionTTL time.Duration
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, phones PhoneValidator, tokens TokenSource, sessionTTL time.Duration) *authUsecase {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &authUsecase{
		users:      users,
		sessions:   sessions,
		phones:     phones,
		tokens:     tokens,
		sessionTTL: sessionTTL,
	}
}

// Register creates a new coffee-shop owner with a hashed password and
// returns the new user's ID.
//
// Email is normalized to lowercase and the address is title-cased before
// storage. Uniqueness of email and shop name is enforced by the repository's
// unique constraints, never by a separate existence check, so two concurrent
// registrations with the same email cannot both succeed.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (uint, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	shopName := strings.TrimSpace(in.ShopName)
	address := strings.TrimSpace(in.Address)
	phone := strings.TrimSpace(in.Phone)

	switch {
	case email == "":
		return 0, fmt.Errorf("%w: email is required", ErrInvalidInput)
	case in.Password == "":
		return 0, fmt.Errorf("%w: password is required", ErrInvalidInput)
	case len(in.Password) < minPasswordLength:
		return 0, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	case shopName == "":
		return 0, fmt.Errorf("%w: coffee shop name is required", ErrInvalidInput)
	case address == "":
		return 0, fmt.Errorf("%w: address is required", ErrInvalidInput)
	case phone == "":
		return 0, fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}

	if err := u.phones.Validate(phone); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		ShopName: shopName,
		Address:  cases.Title(language.English).String(address),
		Phone:    phone,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Verify checks an email/password pair and returns the matching user's ID.
// Unknown email and wrong password both return ErrInvalidCredentials. To
// prevent timing attacks, a bcrypt comparison runs even when the user does
// not exist.
func (u *authUsecase) Verify(ctx context.Context, email, password string) (uint, error) {
	user, err := u.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))

	// Dummy hash so bcrypt.CompareHashAndPassword always runs.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return 0, ErrInvalidCredentials
	}
	return user.ID, nil
}

// Login authenticates a user and creates a new session, returning the opaque
// session token to be set as a cookie.
func (u *authUsecase) Login(ctx context.Context, email, password string, meta LoginMeta) (string, error) {
	userID, err := u.Verify(ctx, email, password)
	if err != nil {
		return "", err
	}

	token, err := u.tokens.NewToken()
	if err != nil {
		return "", fmt.Errorf("failed to mint session token: %w", err)
	}

	now := time.Now()
	session := &entity.Session{
		ID:        token,
		UserID:    userID,
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return token, nil
}

// Logout revokes the session for the given token. Revoking a token that no
// longer exists is not an error: the client's cookie is cleared either way.
func (u *authUsecase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := u.sessions.Revoke(ctx, token); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}

// Resolve maps a session token to the owning user's ID.
// Unknown, expired, and revoked tokens all return ErrSessionNotFound.
func (u *authUsecase) Resolve(ctx context.Context, token string) (uint, error) {
	if token == "" {
		return 0, ErrSessionNotFound
	}
	session, err := u.sessions.FindByID(ctx, token)
	if err != nil {
		return 0, err
	}
	if !session.IsValid() {
		return 0, ErrSessionNotFound
	}
	return session.UserID, nil
}
