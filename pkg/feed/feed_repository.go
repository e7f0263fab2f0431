package feed

import (
	"context"

	"barnmonitor-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	FeedRepository interface {
		GetFeeds(ctx context.Context) ([]*entities.Feed, error)
		GetFeedByID(ctx context.Context, id uint) (*entities.Feed, error)
		CreateFeed(ctx context.Context, feed *entities.Feed) error
		DeleteFeed(ctx context.Context, id uint) error
	}

	feedRepository struct {
		db *gorm.DB
	}
)

func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) GetFeeds(ctx context.Context) ([]*entities.Feed, error) {
	var feeds []*entities.Feed
	if err := r.db.WithContext(ctx).Order("id").Find(&feeds).Error; err != nil {
		return nil, err
	}
	return feeds, nil
}

func (r *feedRepository) GetFeedByID(ctx context.Context, id uint) (*entities.Feed, error) {
	var feed entities.Feed
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&feed).Error; err != nil {
		return nil, err
	}
	return &feed, nil
}

func (r *feedRepository) CreateFeed(ctx context.Context, feed *entities.Feed) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(feed).Error
	})
}

func (r *feedRepository) DeleteFeed(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&entities.Feed{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
