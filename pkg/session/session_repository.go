package session

import (
	"context"
	"time"

	"barnmonitor-backend/entities"

	"gorm.io/gorm"
)

type (
	SessionRepository interface {
		CreateSession(ctx context.Context, session *entities.Session) error
		GetSessionByID(ctx context.Context, id string) (*entities.Session, error)
		TouchSession(ctx context.Context, id string, expiresAt time.Time) error
		ClearSession(ctx context.Context, id string) error
		DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
	}

	sessionRepository struct {
		db *gorm.DB
	}
)

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session *entities.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetSessionByID(ctx context.Context, id string) (*entities.Session, error) {
	var session entities.Session
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) TouchSession(ctx context.Context, id string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entities.Session{}).
		Where("id = ?", id).
		Update("expires_at", expiresAt).Error
}

// ClearSession unbinds the farmer from the session. The row is kept so the
// token keeps resolving to an anonymous session until it expires.
func (r *sessionRepository) ClearSession(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Session{}).
		Where("id = ?", id).
		Update("farmer_id", nil).Error
}

func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&entities.Session{})
	return res.RowsAffected, res.Error
}
