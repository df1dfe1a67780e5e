package identity

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nidamehendi/storefront-backend/internal/obs"
)

const tokenTTL = 24 * time.Hour

type service struct {
	accounts  AccountRepository
	customers CustomerRepository
	jwtKey    []byte

	mu        sync.Mutex
	callbacks []func(*Session)
}

// NewService creates a new identity service.
func NewService(accounts AccountRepository, customers CustomerRepository, jwtSecret string) Service {
	return &service{
		accounts:  accounts,
		customers: customers,
		jwtKey:    []byte(jwtSecret),
	}
}

func (s *service) SignUp(ctx context.Context, email, password, fullName string) (string, *Session, error) {
	if existing, err := s.accounts.GetAccountByEmail(ctx, email); err == nil && existing != nil {
		return "", nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	a := &Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.accounts.CreateAccount(ctx, a); err != nil {
		return "", nil, err
	}

	// Profile provisioning failure does not roll back the account; a
	// missing profile is tolerated downstream as "no admin rights".
	if err := s.customers.CreateCustomer(ctx, &Customer{
		ID:       a.ID,
		Email:    a.Email,
		FullName: fullName,
	}); err != nil {
		obs.Logger.Error("customer profile provisioning failed",
			"account_id", a.ID.String(), "error", err.Error())
	}

	return s.issue(ctx, a)
}

func (s *service) SignIn(ctx context.Context, email, password string) (string, *Session, error) {
	a, err := s.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	return s.issue(ctx, a)
}

func (s *service) SignOut(ctx context.Context) {
	// Tokens are stateless, so there is nothing to revoke server-side;
	// the transition still has to reach session-change listeners.
	s.notify(nil)
}

func (s *service) SessionFromToken(ctx context.Context, tokenString string) *Session {
	if tokenString == "" {
		return nil
	}

	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil
	}

	a, err := s.accounts.GetAccountByID(ctx, id)
	if err != nil {
		return nil
	}

	return s.session(ctx, a)
}

func (s *service) OnChange(fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = append(s.callbacks, fn)
}

// session resolves the admin flag from the customer profile. A missing or
// unreadable profile means no admin rights, never a failure.
func (s *service) session(ctx context.Context, a *Account) *Session {
	sess := &Session{CustomerID: a.ID, Email: a.Email}
	if c, err := s.customers.GetCustomerByID(ctx, a.ID); err == nil && c != nil {
		sess.IsAdmin = c.IsAdmin
	}
	return sess
}

func (s *service) issue(ctx context.Context, a *Account) (string, *Session, error) {
	claims := &jwt.StandardClaims{
		Subject:   a.ID.String(),
		ExpiresAt: time.Now().Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return "", nil, err
	}

	sess := s.session(ctx, a)
	s.notify(sess)
	return token, sess, nil
}

func (s *service) notify(sess *Session) {
	s.mu.Lock()
	cbs := make([]func(*Session), len(s.callbacks))
	copy(cbs, s.callbacks)
	s.mu.Unlock()
	for _, fn := range cbs {
		fn(sess)
	}
}
