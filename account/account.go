package account

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"storefront/models"
	"storefront/store"
)

var (
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("name, email and password are required")
)

// Hasher is the opaque password digest capability. Check must be
// constant-time with respect to the password.
type Hasher interface {
	Hash(password string) (string, error)
	Check(digest, password string) bool
}

// BcryptHasher is the production Hasher. Zero Cost means bcrypt's default.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h BcryptHasher) Check(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

type Service struct {
	users  store.UserStore
	hasher Hasher
}

func NewService(users store.UserStore, hasher Hasher) *Service {
	return &Service{users: users, hasher: hasher}
}

// NormalizeEmail lowercases and trims an address so that Test@x.com and
// test@x.com refer to the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user with a one-way password digest and returns its
// id. The raw password is never stored or logged.
func (s *Service) Register(name, email, password string) (uint, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return 0, ErrMissingFields
	}

	if _, err := s.users.FindByEmail(email); err == nil {
		return 0, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return 0, err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return 0, err
	}

	user := &models.User{Name: name, Email: email, PasswordHash: digest}
	if err := s.users.Create(user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Authenticate returns the user for a matching email/password pair. An
// unknown email and a wrong password produce the same error, so the
// response never reveals whether an address is registered.
func (s *Service) Authenticate(email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Check(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
