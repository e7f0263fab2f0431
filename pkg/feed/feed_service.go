package feed

import (
	"context"
	"errors"

	"barnmonitor-backend/domain"
	"barnmonitor-backend/entities"
	"barnmonitor-backend/internal/utils"
	"barnmonitor-backend/pkg/animal"

	"gorm.io/gorm"
)

type (
	FeedService interface {
		GetFeeds(ctx context.Context) ([]domain.FeedResponse, error)
		GetFeedByID(ctx context.Context, id uint) (domain.FeedResponse, error)
		CreateFeed(ctx context.Context, req domain.CreateFeedRequest) (domain.FeedResponse, error)
		DeleteFeed(ctx context.Context, id uint) error
	}

	feedService struct {
		feedRepository   FeedRepository
		animalRepository animal.AnimalRepository
	}
)

func NewFeedService(feedRepository FeedRepository, animalRepository animal.AnimalRepository) FeedService {
	return &feedService{
		feedRepository:   feedRepository,
		animalRepository: animalRepository,
	}
}

func (s *feedService) GetFeeds(ctx context.Context) ([]domain.FeedResponse, error) {
	feeds, err := s.feedRepository.GetFeeds(ctx)
	if err != nil {
		return nil, domain.NewInternal(err)
	}

	res := make([]domain.FeedResponse, 0, len(feeds))
	for _, f := range feeds {
		res = append(res, domain.NewFeedResponse(f))
	}
	return res, nil
}

func (s *feedService) GetFeedByID(ctx context.Context, id uint) (domain.FeedResponse, error) {
	feed, err := s.feedRepository.GetFeedByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FeedResponse{}, domain.ErrFeedNotFound
		}
		return domain.FeedResponse{}, domain.NewInternal(err)
	}
	return domain.NewFeedResponse(feed), nil
}

func (s *feedService) CreateFeed(ctx context.Context, req domain.CreateFeedRequest) (domain.FeedResponse, error) {
	feed := entities.Feed{
		AnimalID: *req.AnimalID,
		FeedType: *req.FeedType,
		Quantity: *req.Quantity,
		Date:     *req.Date,
	}
	if err := domain.ValidateFeed(&feed); err != nil {
		return domain.FeedResponse{}, err
	}

	exists, err := s.animalRepository.AnimalExists(ctx, feed.AnimalID)
	if err != nil {
		return domain.FeedResponse{}, domain.NewInternal(err)
	}
	if !exists {
		return domain.FeedResponse{}, domain.ErrUnknownAnimal
	}

	if err := s.feedRepository.CreateFeed(ctx, &feed); err != nil {
		return domain.FeedResponse{}, utils.TranslateStorageError(err)
	}
	return domain.NewFeedResponse(&feed), nil
}

func (s *feedService) DeleteFeed(ctx context.Context, id uint) error {
	err := s.feedRepository.DeleteFeed(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrFeedNotFound
	}
	return utils.TranslateStorageError(err)
}
