package service

import (
	"fmt"

	"englearn/internal/repository"

	"go.uber.org/zap"
)

// ProgressService records learning attempts
type ProgressService struct {
	records repository.RecordRepository
	logger  *zap.Logger
}

// NewProgressService creates a new progress recorder
func NewProgressService(records repository.RecordRepository, logger *zap.Logger) *ProgressService {
	return &ProgressService{
		records: records,
		logger:  logger,
	}
}

// Record counts one attempt on an item for today. Repeated calls for
// the same item on the same day merge into one record; the upsert is
// atomic at the store level, so concurrent attempts lose nothing.
func (s *ProgressService) Record(itemID int, isCorrect bool) error {
	if itemID <= 0 {
		return fmt.Errorf("invalid item id: %d", itemID)
	}

	if err := s.records.UpsertRecord(itemID, isCorrect); err != nil {
		s.logger.Error("Failed to record learning attempt",
			zap.Int("item_id", itemID),
			zap.Bool("is_correct", isCorrect),
			zap.Error(err),
		)
		return err
	}

	return nil
}
