package domain

import "barnmonitor-backend/entities"

var (
	MessageSuccessAddFeed    = "feed record added successfully"
	MessageSuccessDeleteFeed = "Feed deleted successfully"
	MessageSuccessGetFeeds   = "feed records retrieved successfully"

	MessageFailedAddFeed    = "failed to add feed record"
	MessageFailedDeleteFeed = "failed to delete feed record"
	MessageFailedGetFeeds   = "failed to retrieve feed records"

	ErrFeedNotFound = &AppError{Kind: KindNotFound, Message: "Feed not found"}
)

type (
	CreateFeedRequest struct {
		AnimalID *uint   `json:"animal_id" validate:"required"`
		FeedType *string `json:"feed_type" validate:"required"`
		Quantity *int    `json:"quantity" validate:"required"`
		Date     *string `json:"date" validate:"required"`
	}

	FeedResponse struct {
		ID       uint   `json:"id"`
		AnimalID uint   `json:"animal_id"`
		FeedType string `json:"feed_type"`
		Quantity int    `json:"quantity"`
		Date     string `json:"date"`
	}
)

func NewFeedResponse(f *entities.Feed) FeedResponse {
	return FeedResponse{
		ID:       f.ID,
		AnimalID: f.AnimalID,
		FeedType: f.FeedType,
		Quantity: f.Quantity,
		Date:     f.Date,
	}
}
