package service

import (
	"fmt"

	"englearn/internal/domain"
	"englearn/internal/repository"
)

const (
	defaultLearningLimit = 50
	defaultTestLimit     = 20
)

// SelectorService composes learning and test sessions
type SelectorService struct {
	items   repository.ItemRepository
	reviews repository.ReviewRepository
}

// NewSelectorService creates a new item selector
func NewSelectorService(items repository.ItemRepository, reviews repository.ReviewRepository) *SelectorService {
	return &SelectorService{
		items:   items,
		reviews: reviews,
	}
}

// ForLearning returns up to limit items of the requested type that
// have not been attempted today, newest first
func (s *SelectorService) ForLearning(itemType domain.ItemType, limit int) ([]domain.LearningItem, error) {
	if limit <= 0 {
		limit = defaultLearningLimit
	}
	if itemType == "" {
		itemType = domain.TypeAll
	}
	if itemType != domain.TypeAll && !itemType.Valid() {
		return nil, fmt.Errorf("unknown item type %q", itemType)
	}

	return s.items.ListForLearning(itemType, limit)
}

// ForTest composes a test session biased toward pending review: up to
// half the limit comes from the review queue oldest-pending first, the
// remainder is a uniform random sample of items outside the queue.
// A shortfall in review items is made up from the random pool.
func (s *SelectorService) ForTest(limit int) ([]domain.LearningItem, error) {
	if limit <= 0 {
		limit = defaultTestLimit
	}

	pending, err := s.reviews.ListPending(limit / 2)
	if err != nil {
		return nil, err
	}

	session := make([]domain.LearningItem, 0, limit)
	for _, p := range pending {
		session = append(session, p.Item)
	}

	remainder := limit - len(session)
	if remainder <= 0 {
		return session, nil
	}

	fresh, err := s.items.ListRandomOutsideQueue(remainder)
	if err != nil {
		return nil, err
	}

	return append(session, fresh...), nil
}
