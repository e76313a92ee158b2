package service

import (
	"fmt"

	"englearn/internal/domain"
	"englearn/internal/repository"

	"go.uber.org/zap"
)

const defaultReviewLimit = 50

// ReviewService manages the deduplicated review queue
type ReviewService struct {
	reviews repository.ReviewRepository
	logger  *zap.Logger
}

// NewReviewService creates a new review queue service
func NewReviewService(reviews repository.ReviewRepository, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		logger:  logger,
	}
}

// Enqueue flags items for re-study and returns how many entries were
// actually created. Items with a pending entry are silently skipped,
// so duplicates in the input collapse to one entry.
func (s *ReviewService) Enqueue(itemIDs []int) (int, error) {
	added := 0
	for _, id := range itemIDs {
		if id <= 0 {
			continue
		}

		inserted, err := s.reviews.InsertUnreviewedIfAbsent(id)
		if err != nil {
			s.logger.Error("Failed to enqueue review item",
				zap.Int("item_id", id),
				zap.Error(err),
			)
			return added, err
		}
		if inserted {
			added++
		}
	}

	return added, nil
}

// ListPending returns unreviewed entries with their items, oldest
// pending first
func (s *ReviewService) ListPending(limit int) ([]domain.PendingReview, error) {
	if limit <= 0 {
		limit = defaultReviewLimit
	}
	return s.reviews.ListPending(limit)
}

// MarkReviewed flips the pending entry for an item. Reports whether an
// entry was actually changed; no pending entry is not an error.
func (s *ReviewService) MarkReviewed(itemID int) (bool, error) {
	if itemID <= 0 {
		return false, fmt.Errorf("invalid item id: %d", itemID)
	}
	return s.reviews.MarkReviewed(itemID)
}
