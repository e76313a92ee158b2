package service

import (
	"fmt"

	"englearn/internal/domain"
	"englearn/internal/repository"

	"go.uber.org/zap"
)

// ImportService bulk-loads study content
type ImportService struct {
	items  repository.ItemRepository
	logger *zap.Logger
}

// NewImportService creates a new import service
func NewImportService(items repository.ItemRepository, logger *zap.Logger) *ImportService {
	return &ImportService{
		items:  items,
		logger: logger,
	}
}

// Import stores a batch of items of one type and returns how many were
// saved. Items that fail to insert are logged and skipped, the rest of
// the batch continues.
func (s *ImportService) Import(itemType domain.ItemType, items []domain.LearningItem) (int, error) {
	if !itemType.Valid() {
		return 0, fmt.Errorf("unknown item type %q", itemType)
	}

	count := 0
	for i := range items {
		item := items[i]
		item.Type = itemType

		if item.English == "" || item.Chinese == "" {
			continue
		}

		if err := s.items.InsertItem(&item); err != nil {
			s.logger.Warn("Failed to import item",
				zap.String("english", item.English),
				zap.Error(err),
			)
			continue
		}
		count++
	}

	return count, nil
}
