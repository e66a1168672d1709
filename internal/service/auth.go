package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/and161185/epic-events/internal/errs"
	"github.com/and161185/epic-events/internal/limiter"
	"github.com/and161185/epic-events/internal/model"
	"github.com/and161185/epic-events/internal/notify"
	"github.com/and161185/epic-events/internal/repository"
	"go.uber.org/zap"
)

// AuthService defines login and session resolution.
type AuthService interface {
	// Login applies rate-limiting and authenticates the user by email and password.
	Login(ctx context.Context, email, password, addr string) (model.Session, *model.User, error)
	// Authenticate resolves a bearer token into the current user record.
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type AuthServiceImpl struct {
	users    repository.UserRepository
	hasher   PasswordHasher
	sessions SessionCodec
	lim      limiter.Limiter
	sink     notify.Sink
	log      *zap.Logger

	// dummyHash is verified for unknown emails so both failure paths cost one hash.
	dummyHash string
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, hasher PasswordHasher, sessions SessionCodec, lim limiter.Limiter, sink notify.Sink, log *zap.Logger) *AuthServiceImpl {
	s := &AuthServiceImpl{users: users, hasher: hasher, sessions: sessions, lim: lim, sink: sink, log: log}
	h, err := hasher.Hash("no-such-user")
	if err != nil {
		log.Warn("dummy password hash", zap.Error(err))
	}
	s.dummyHash = h
	return s
}

// Login authenticates with rate limiting by (email, client address).
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password, addr string) (model.Session, *model.User, error) {
	ipHash := limiter.HashIP(addr)

	allowed, _, err := s.lim.Allow(ctx, email, ipHash)
	if err != nil {
		return model.Session{}, nil, err
	}
	if !allowed {
		return model.Session{}, nil, errs.ErrRateLimited
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return model.Session{}, nil, err
	}
	encoded := s.dummyHash
	if u != nil {
		encoded = u.PwdHash
	}
	if ok := s.hasher.Verify(encoded, password); !ok || u == nil {
		if blocked, _, ferr := s.lim.Failure(ctx, email, ipHash); ferr == nil && blocked {
			s.log.Warn("login blocked", zap.String("email", email))
			emit(ctx, s.sink, s.log, notify.Notification{
				Kind:     "login.locked",
				Message:  fmt.Sprintf("login locked for %s after repeated failures", email),
				Severity: notify.Warning,
				Fields:   map[string]string{"email": email},
			})
			return model.Session{}, nil, errs.ErrRateLimited
		}
		return model.Session{}, nil, fmt.Errorf("%w: bad credentials", errs.ErrUnauthenticated)
	}

	// best-effort reset
	_ = s.lim.Success(ctx, email, ipHash)

	sess, err := s.sessions.Issue(u.ID, u.Role)
	if err != nil {
		return model.Session{}, nil, err
	}
	s.log.Info("login", zap.Stringer("user", u.ID), zap.String("role", string(u.Role)))
	return sess, u, nil
}

// Authenticate returns the user behind token. The role comes from the stored
// record, so role changes apply to live sessions.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.sessions.Resolve(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnauthenticated, err)
	}
	u, err := s.users.GetByID(ctx, claims.UserID)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return nil, fmt.Errorf("%w: user no longer exists", errs.ErrUnauthenticated)
	case err != nil:
		return nil, err
	}
	return u, nil
}
