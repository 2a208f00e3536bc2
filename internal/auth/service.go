package auth

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/AminElhag/Elixir/internal/session"
)

var (
	// ErrInvalidCredentials is the single generic authentication failure.
	// With the mock backend it is only reachable when a local account
	// exists and the password does not match, but the channel stays in
	// place for a real backend.
	ErrInvalidCredentials = errors.New("invalid email/phone or password")
	ErrInvalidOTP         = errors.New("invalid OTP code, please try again")
	ErrEmailTaken         = errors.New("an account with this email already exists")
)

// Service implements the mock authentication flows: any syntactically
// plausible credential succeeds after a fixed synthetic delay, a token
// is minted locally, and the session store becomes the source of truth.
type Service struct {
	sessions *session.Manager
	accounts AccountRepository
	secret   string
	delay    time.Duration
}

func NewService(sessions *session.Manager, accounts AccountRepository, secret string, delay time.Duration) *Service {
	return &Service{
		sessions: sessions,
		accounts: accounts,
		secret:   secret,
		delay:    delay,
	}
}

type LoginResult struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	UserEmail *string   `json:"user_email,omitempty"`
	UserName  *string   `json:"user_name,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// sleep applies the synthetic network delay. Navigating away cancels
// the context and abandons the attempt with nothing committed.
func (s *Service) sleep(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.delay):
		return nil
	}
}

func mockUserID() string {
	return fmt.Sprintf("user_%d", rand.Intn(9000)+1000)
}

// Login authenticates the login form. Callers run Validate first; this
// only performs the (mock) credential check and session save.
func (s *Service) Login(ctx context.Context, form LoginForm) (*LoginResult, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	var (
		userID    = mockUserID()
		userEmail *string
		userName  *string
	)

	if form.IsEmail() {
		email := form.EmailOrPhone
		userEmail = &email

		// A local account, if one exists, is authoritative for the
		// password.
		if acct, err := s.accounts.FindByEmail(ctx, email); err == nil {
			if !CheckPassword(acct.PasswordHash, form.Password) {
				return nil, ErrInvalidCredentials
			}
			userID = fmt.Sprintf("user_%d", acct.ID)
			userName = &acct.Name
		} else {
			local := strings.SplitN(email, "@", 2)[0]
			userName = &local
		}
	}

	token, expiresAt, err := GenerateToken(userID, deref(userEmail), deref(userName), s.secret)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.SaveSession(ctx, token, &userID, userEmail, userName, &expiresAt); err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		UserID:    userID,
		UserEmail: userEmail,
		UserName:  userName,
		ExpiresAt: expiresAt,
	}, nil
}

// Register creates the local account record. The session is not saved
// until OTP verification completes.
func (s *Service) Register(ctx context.Context, form SignUpForm) (*Account, error) {
	taken, err := s.accounts.EmailExists(ctx, form.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(form.Password)
	if err != nil {
		return nil, err
	}

	account := Account{
		Name:         form.Name,
		Email:        form.Email,
		Phone:        form.Phone,
		PasswordHash: hash,
		IDNumber:     form.IDNumber,
	}
	if form.Address != "" {
		account.Address = &form.Address
	}
	if form.MedicalInfo != "" {
		account.MedicalInfo = &form.MedicalInfo
	}

	return s.accounts.Create(ctx, account)
}

// VerifyOTP completes signup. The mock accepts any six-digit code
// (validation guarantees the shape), mirroring the simulated backend.
func (s *Service) VerifyOTP(ctx context.Context, form VerifyOTPForm) (*LoginResult, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	if !otpPattern.MatchString(form.OTPCode) {
		return nil, ErrInvalidOTP
	}

	userID := mockUserID()
	token, expiresAt, err := GenerateToken(userID, form.Email, form.Name, s.secret)
	if err != nil {
		return nil, err
	}

	email := form.Email
	name := form.Name
	if err := s.sessions.SaveSession(ctx, token, &userID, &email, &name, &expiresAt); err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		UserID:    userID,
		UserEmail: &email,
		UserName:  &name,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.ClearSession(ctx)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
