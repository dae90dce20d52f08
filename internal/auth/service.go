package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/abcde-dev/abcdecom/internal/telemetry/tracing"
	"github.com/abcde-dev/abcdecom/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth_test

type adminRepo interface {
	Add(ctx context.Context, username, passwordHash string) (*Admin, error)
	ByUsername(ctx context.Context, username string) (*Admin, error)
	ByID(ctx context.Context, id int) (*Admin, error)
}

type Service struct {
	repo   adminRepo
	tokens *TokenIssuer

	// compared against when the username is unknown, so both failure paths cost one bcrypt run
	dummyHashOnce sync.Once
	dummyHash     string
}

func NewService(repo adminRepo, tokens *TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
	}
}

// Register stores a new admin with a salted bcrypt hash of the raw password.
func (s *Service) Register(ctx context.Context, username, password string) (_ *Admin, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	// advisory only, the unique constraint decides on concurrent inserts
	existing, err := s.repo.ByUsername(ctx, username)
	if err != nil && !errors.Is(err, ErrAdminNotFound) {
		return nil, fmt.Errorf("check existing admin: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	passwordHash, err := pkg.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin, err := s.repo.Add(ctx, username, passwordHash)
	if err != nil {
		if errors.Is(err, ErrDuplicateUsername) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("add admin: %w", err)
	}

	log.Debugf("admin [%s] registered with id %d", admin.Username, admin.ID)
	return admin, nil
}

// Verify fails with ErrInvalidCredentials both for unknown users and wrong passwords.
func (s *Service) Verify(ctx context.Context, username, password string) (_ *Admin, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.verify")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	admin, err := s.repo.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			pkg.CheckPasswordHash(password, s.getDummyHash())
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}

	if !pkg.CheckPasswordHash(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.Verify(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(admin.ID)
}

func (s *Service) Admin(ctx context.Context, id int) (*Admin, error) {
	return s.repo.ByID(ctx, id)
}

// VerifyToken resolves a bearer token to the admin id it was issued for.
func (s *Service) VerifyToken(token string) (int, error) {
	return s.tokens.Verify(token)
}

func (s *Service) getDummyHash() string {
	s.dummyHashOnce.Do(func() {
		hash, err := pkg.HashPassword("dummy-password-for-unknown-users")
		if err != nil {
			log.Errorf("generate dummy password hash: %s", err)
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
