package session

import (
	"context"
	"errors"
	"time"

	"barnmonitor-backend/domain"
	"barnmonitor-backend/entities"
	"barnmonitor-backend/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	SessionService interface {
		Start(ctx context.Context, farmerID uint) (string, time.Time, error)
		Resolve(ctx context.Context, token string) (uint, time.Time, error)
		End(ctx context.Context, token string) error
		TTL() time.Duration
	}

	sessionService struct {
		sessionRepository SessionRepository
		jwtService        jwt.JWTService
		ttl               time.Duration
		logger            *zap.Logger
		now               func() time.Time
	}
)

func NewSessionService(
	sessionRepository SessionRepository,
	jwtService jwt.JWTService,
	ttl time.Duration,
	logger *zap.Logger,
) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		jwtService:        jwtService,
		ttl:               ttl,
		logger:            logger,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

func (s *sessionService) TTL() time.Duration {
	return s.ttl
}

// Start opens a new session bound to farmerID and returns its signed token.
func (s *sessionService) Start(ctx context.Context, farmerID uint) (string, time.Time, error) {
	now := s.now()

	if purged, err := s.sessionRepository.DeleteExpiredSessions(ctx, now); err != nil {
		s.logger.Warn("failed to purge expired sessions", zap.Error(err))
	} else if purged > 0 {
		s.logger.Debug("purged expired sessions", zap.Int64("count", purged))
	}

	session := entities.Session{
		ID:        uuid.NewString(),
		FarmerID:  &farmerID,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessionRepository.CreateSession(ctx, &session); err != nil {
		return "", time.Time{}, domain.NewInternal(err)
	}

	token, err := s.jwtService.GenerateSessionToken(session.ID)
	if err != nil {
		return "", time.Time{}, domain.NewInternal(err)
	}
	return token, session.ExpiresAt, nil
}

// Resolve returns the farmer bound to token and slides the session expiry
// forward. Unknown, expired and logged out sessions all fail with a
// NotAuthorized error.
func (s *sessionService) Resolve(ctx context.Context, token string) (uint, time.Time, error) {
	sessionID, err := s.jwtService.GetSessionIDByToken(token)
	if err != nil {
		return 0, time.Time{}, err
	}

	session, err := s.sessionRepository.GetSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, time.Time{}, domain.ErrSessionNotFound
		}
		return 0, time.Time{}, domain.NewInternal(err)
	}

	now := s.now()
	if !session.ExpiresAt.After(now) {
		return 0, time.Time{}, domain.ErrSessionExpired
	}
	if session.FarmerID == nil {
		return 0, time.Time{}, domain.ErrNotAuthorized
	}

	expiresAt := now.Add(s.ttl)
	if err := s.sessionRepository.TouchSession(ctx, session.ID, expiresAt); err != nil {
		return 0, time.Time{}, domain.NewInternal(err)
	}
	return *session.FarmerID, expiresAt, nil
}

// End clears the identity bound to token. Ending a session that is unknown,
// already cleared or carried by a bad token is a no-op.
func (s *sessionService) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	sessionID, err := s.jwtService.GetSessionIDByToken(token)
	if err != nil {
		return nil
	}
	if err := s.sessionRepository.ClearSession(ctx, sessionID); err != nil {
		return domain.NewInternal(err)
	}
	return nil
}
